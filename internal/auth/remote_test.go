package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRemoteVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("apikey") != "service-key" {
			t.Errorf("apikey header = %q, want service-key", r.Header.Get("apikey"))
		}
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email":"admin@example.com"}`))
	}))
	defer srv.Close()

	verifier := NewRemoteVerifier(srv.URL, "service-key")

	subject, err := verifier.Verify(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject.Email != "admin@example.com" {
		t.Errorf("Email = %q, want admin@example.com", subject.Email)
	}

	if _, err := verifier.Verify(context.Background(), "bad-token"); err != ErrInvalidToken {
		t.Errorf("Verify of rejected token = %v, want ErrInvalidToken", err)
	}
}

func TestRemoteVerifyEmptyEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	verifier := NewRemoteVerifier(srv.URL, "key")
	if _, err := verifier.Verify(context.Background(), "token"); err != ErrInvalidToken {
		t.Errorf("Verify with empty email = %v, want ErrInvalidToken", err)
	}
}

func TestRemoteVerifyProviderDown(t *testing.T) {
	verifier := NewRemoteVerifier("http://127.0.0.1:1", "key")
	if _, err := verifier.Verify(context.Background(), "token"); err != ErrInvalidToken {
		t.Errorf("Verify with unreachable provider = %v, want ErrInvalidToken", err)
	}
}
