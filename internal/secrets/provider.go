package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/portfolio-content-api/internal/config"
	"github.com/rs/zerolog"
)

// Provider resolves sensitive configuration values from a secrets
// backend, falling back to the environment-derived defaults when the
// backend is disabled or unreachable. Lookups never fail outright so
// local development works without a backend.
type Provider struct {
	cfg    config.SecretsConfig
	client *http.Client
	log    zerolog.Logger
}

// BootstrapAdmin holds the seed credentials for the initial admin user.
type BootstrapAdmin struct {
	Email    string
	Password string
	Name     string
}

// New creates a secrets provider
func New(cfg config.SecretsConfig, log zerolog.Logger) *Provider {
	return &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.With().Str("component", "secrets").Logger(),
	}
}

// DatabaseDSN resolves the database connection string
func (p *Provider) DatabaseDSN(ctx context.Context, fallback string) string {
	if v, ok := p.lookup(ctx, "DATABASE_URL"); ok {
		return v
	}
	return fallback
}

// SigningSecret resolves the token signing secret
func (p *Provider) SigningSecret(ctx context.Context, fallback string) string {
	if v, ok := p.lookup(ctx, "JWT_SECRET"); ok {
		return v
	}
	return fallback
}

// Bootstrap resolves the initial admin credentials
func (p *Provider) Bootstrap(ctx context.Context, fallback BootstrapAdmin) BootstrapAdmin {
	out := fallback
	if v, ok := p.lookup(ctx, "ADMIN_EMAIL"); ok {
		out.Email = v
	}
	if v, ok := p.lookup(ctx, "ADMIN_PASSWORD"); ok {
		out.Password = v
	}
	return out
}

// lookup fetches a single named secret from the backend. Any failure
// (disabled backend, network error, missing key) reports !ok so the
// caller falls back to its default.
func (p *Provider) lookup(ctx context.Context, name string) (string, bool) {
	if !p.cfg.Enabled || p.cfg.URL == "" {
		return "", false
	}

	endpoint := fmt.Sprintf("%s/v1/secrets/%s", p.cfg.URL, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		p.log.Warn().Err(err).Str("secret", name).Msg("Secrets backend request failed, using fallback")
		return "", false
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.Token)

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Warn().Err(err).Str("secret", name).Msg("Secrets backend unreachable, using fallback")
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.log.Warn().Int("status", resp.StatusCode).Str("secret", name).Msg("Secrets backend returned non-OK, using fallback")
		return "", false
	}

	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		p.log.Warn().Err(err).Str("secret", name).Msg("Secrets backend returned malformed body, using fallback")
		return "", false
	}
	if body.Value == "" {
		return "", false
	}

	return body.Value, true
}
