package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/portfolio-content-api/internal/models"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	verifier := NewLocalVerifier("test-secret")

	user := &models.User{ID: 42, Email: "admin@example.com"}
	token, err := issuer.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	subject, err := verifier.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject.UserID != 42 {
		t.Errorf("UserID = %d, want 42", subject.UserID)
	}
	if subject.Email != "admin@example.com" {
		t.Errorf("Email = %q, want admin@example.com", subject.Email)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewIssuer("secret-a", time.Hour)
	verifier := NewLocalVerifier("secret-b")

	token, err := issuer.IssueToken(&models.User{ID: 1, Email: "a@b.co"})
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	if _, err := verifier.Verify(context.Background(), token); err != ErrInvalidToken {
		t.Errorf("Verify with wrong secret = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)
	verifier := NewLocalVerifier("test-secret")

	token, err := issuer.IssueToken(&models.User{ID: 1, Email: "a@b.co"})
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	if _, err := verifier.Verify(context.Background(), token); err != ErrInvalidToken {
		t.Errorf("Verify of expired token = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	verifier := NewLocalVerifier("test-secret")
	if _, err := verifier.Verify(context.Background(), "not-a-token"); err != ErrInvalidToken {
		t.Errorf("Verify of garbage = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyMissingUserID(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@b.co",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString returned error: %v", err)
	}

	verifier := NewLocalVerifier("test-secret")
	if _, err := verifier.Verify(context.Background(), signed); err != ErrInvalidToken {
		t.Errorf("Verify without user_id = %v, want ErrInvalidToken", err)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2-but-longer")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "hunter2-but-longer" {
		t.Error("hash should not equal the plaintext password")
	}

	if !CheckPassword(hash, "hunter2-but-longer") {
		t.Error("CheckPassword with correct password = false, want true")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("CheckPassword with wrong password = true, want false")
	}
}
