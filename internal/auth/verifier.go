package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/portfolio-content-api/internal/models"
)

// ErrInvalidToken covers every verification failure: bad signature,
// expired token, malformed claims. Callers surface all of them as a
// single unauthenticated response.
var ErrInvalidToken = errors.New("invalid token")

// Subject identifies the principal a verified credential belongs to.
// Local tokens carry the numeric user id; the remote provider only
// returns an email, so either field may be set.
type Subject struct {
	UserID int64
	Email  string
}

// Verifier resolves a bearer token to a subject. Two implementations
// exist: LocalVerifier for HMAC-signed tokens issued by this service,
// and RemoteVerifier for tokens issued by an external auth provider.
// The rest of the system is agnostic to which is active.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Subject, error)
}

// LocalVerifier verifies HMAC-signed tokens issued by this service
type LocalVerifier struct {
	secret []byte
}

// NewLocalVerifier creates a verifier for locally issued tokens
func NewLocalVerifier(secret string) *LocalVerifier {
	return &LocalVerifier{secret: []byte(secret)}
}

// Verify checks the token signature and expiry and extracts the subject
func (v *LocalVerifier) Verify(_ context.Context, tokenString string) (*Subject, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	subject := &Subject{UserID: int64(userID)}
	if email, ok := claims["email"].(string); ok {
		subject.Email = email
	}
	return subject, nil
}

// Issuer signs session tokens for successful logins
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates a token issuer
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// IssueToken signs a token for the given user
func (i *Issuer) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(i.ttl).Unix(),
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
