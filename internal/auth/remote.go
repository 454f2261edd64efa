package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// RemoteVerifier delegates token verification to an external auth
// provider's user endpoint. The provider validates the token and
// returns the identity it belongs to; the local user store is still
// the source of truth for roles.
type RemoteVerifier struct {
	providerURL string
	serviceKey  string
	client      *http.Client
}

// NewRemoteVerifier creates a verifier backed by the external provider
func NewRemoteVerifier(providerURL, serviceKey string) *RemoteVerifier {
	return &RemoteVerifier{
		providerURL: providerURL,
		serviceKey:  serviceKey,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify asks the provider who the token belongs to
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*Subject, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.providerURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, ErrInvalidToken
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.serviceKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, ErrInvalidToken
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Email == "" {
		return nil, ErrInvalidToken
	}

	return &Subject{Email: body.Email}, nil
}
