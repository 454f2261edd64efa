package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/portfolio-content-api/internal/api"
	"github.com/portfolio-content-api/internal/auth"
	"github.com/portfolio-content-api/internal/config"
	"github.com/portfolio-content-api/internal/mocks"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/rs/zerolog"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-signing-secret"

type testEnv struct {
	router    *gin.Engine
	issuer    *auth.Issuer
	projects  *mocks.MockProjectRepository
	blog      *mocks.MockBlogRepository
	learning  *mocks.MockLearningRepository
	certs     *mocks.MockCertificationRepository
	flags     *mocks.MockFeatureFlagRepository
	analytics *mocks.MockAnalyticsRepository
	users     *mocks.MockUserRepository
	admin     *models.User
	regular   *models.User
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		projects:  mocks.NewMockProjectRepository(),
		blog:      mocks.NewMockBlogRepository(),
		learning:  mocks.NewMockLearningRepository(),
		certs:     mocks.NewMockCertificationRepository(),
		flags:     mocks.NewMockFeatureFlagRepository(),
		analytics: mocks.NewMockAnalyticsRepository(),
		users:     mocks.NewMockUserRepository(),
	}

	adminHash, err := auth.HashPassword("admin-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	env.admin = env.users.Add(&models.User{
		Name:         "Admin",
		Email:        "admin@example.com",
		Role:         "admin",
		PasswordHash: adminHash,
	})
	userHash, err := auth.HashPassword("user-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	env.regular = env.users.Add(&models.User{
		Name:         "Visitor",
		Email:        "user@example.com",
		Role:         "user",
		PasswordHash: userHash,
	})

	repos := &repository.Repositories{
		Project:     env.projects,
		Blog:        env.blog,
		WorkHistory: mocks.NewMockWorkHistoryRepository(),
		Education:   mocks.NewMockEducationRepository(),
		Cert:        env.certs,
		Learning:    env.learning,
		Skill:       mocks.NewMockSkillRepository(),
		Flag:        env.flags,
		Analytics:   env.analytics,
		User:        env.users,
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	log := zerolog.Nop()
	env.issuer = auth.NewIssuer(testSecret, time.Hour)
	verifier := auth.NewLocalVerifier(testSecret)
	env.router = api.NewRouter(nil, repos, verifier, env.issuer, cfg, log)
	return env
}

func (env *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := env.issuer.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	return token
}

func (env *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) api.Response {
	t.Helper()
	var resp api.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return resp
}

func dataMap(t *testing.T, resp api.Response) map[string]interface{} {
	t.Helper()
	m, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("response data is %T, want object", resp.Data)
	}
	return m
}

func TestHealthEndpoint(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
	if body["service"] != "portfolio-content-api" {
		t.Errorf("service = %v", body["service"])
	}
}

func TestProjectMutationAuth(t *testing.T) {
	env := setupTestRouter(t)
	payload := map[string]interface{}{
		"title":        "Demo",
		"description":  "x",
		"date":         "2024-01-01",
		"technologies": []string{"Go", "Rust"},
	}

	// No token
	w := env.do(t, "POST", "/api/projects", "", payload)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated create = %d, want 401", w.Code)
	}

	// Authenticated but not admin
	w = env.do(t, "POST", "/api/projects", env.tokenFor(t, env.regular), payload)
	if w.Code != http.StatusForbidden {
		t.Errorf("non-admin create = %d, want 403", w.Code)
	}

	// Admin
	w = env.do(t, "POST", "/api/projects", env.tokenFor(t, env.admin), payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin create = %d, want 201. Body: %s", w.Code, w.Body.String())
	}

	data := dataMap(t, decodeResponse(t, w))
	if data["id"].(float64) <= 0 {
		t.Errorf("id = %v, want positive", data["id"])
	}
	if data["featured"] != false {
		t.Errorf("featured = %v, want false default", data["featured"])
	}
	techs, _ := data["technologies"].([]interface{})
	if len(techs) != 2 || techs[0] != "Go" || techs[1] != "Rust" {
		t.Errorf("technologies = %v, want [Go Rust]", data["technologies"])
	}
}

func TestProjectPublicReads(t *testing.T) {
	env := setupTestRouter(t)
	env.projects.Create(nil, &models.ProjectInput{Title: "One", Description: "d", Date: "2024-01-01"})

	w := env.do(t, "GET", "/api/projects", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d, want 200", w.Code)
	}
	resp := decodeResponse(t, w)
	if !resp.Success {
		t.Error("success = false, want true")
	}

	w = env.do(t, "GET", "/api/projects/1", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("get = %d, want 200", w.Code)
	}

	w = env.do(t, "GET", "/api/projects/999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get missing = %d, want 404", w.Code)
	}

	w = env.do(t, "GET", "/api/projects/abc", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("get non-numeric id = %d, want 400", w.Code)
	}
}

func TestProjectValidation(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, "POST", "/api/projects", env.tokenFor(t, env.admin), map[string]interface{}{
		"title": "No description or date",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid create = %d, want 400", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Error != "validation failed" {
		t.Errorf("error = %q, want validation failed", resp.Error)
	}
	details, _ := resp.Details.([]interface{})
	if len(details) != 2 {
		t.Errorf("details = %v, want two field errors", resp.Details)
	}
}

func TestProjectDeleteTwice(t *testing.T) {
	env := setupTestRouter(t)
	env.projects.Create(nil, &models.ProjectInput{Title: "One", Description: "d", Date: "2024-01-01"})
	token := env.tokenFor(t, env.admin)

	w := env.do(t, "DELETE", "/api/projects/1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first delete = %d, want 200", w.Code)
	}
	w = env.do(t, "DELETE", "/api/projects/1", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", w.Code)
	}
}

func TestBlogSlugDerivation(t *testing.T) {
	env := setupTestRouter(t)
	token := env.tokenFor(t, env.admin)
	payload := map[string]interface{}{
		"title":   "Hello World",
		"content": "body",
		"author":  "me",
	}

	w := env.do(t, "POST", "/api/blog", token, payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d, want 201. Body: %s", w.Code, w.Body.String())
	}
	data := dataMap(t, decodeResponse(t, w))
	if data["slug"] != "hello-world" {
		t.Errorf("slug = %v, want hello-world", data["slug"])
	}

	// Same title again gets a -1 suffix
	w = env.do(t, "POST", "/api/blog", token, payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("second create = %d, want 201", w.Code)
	}
	data = dataMap(t, decodeResponse(t, w))
	if data["slug"] != "hello-world-1" {
		t.Errorf("slug = %v, want hello-world-1", data["slug"])
	}

	// And a third takes -2
	w = env.do(t, "POST", "/api/blog", token, payload)
	data = dataMap(t, decodeResponse(t, w))
	if data["slug"] != "hello-world-2" {
		t.Errorf("slug = %v, want hello-world-2", data["slug"])
	}
}

func TestBlogCreateSlugRace(t *testing.T) {
	env := setupTestRouter(t)
	env.blog.CreateErr = &pq.Error{Code: "23505"}

	w := env.do(t, "POST", "/api/blog", env.tokenFor(t, env.admin), map[string]interface{}{
		"title":   "Hello",
		"content": "body",
		"author":  "me",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("create under persistent unique violation = %d, want 409", w.Code)
	}
}

func TestBlogPublishedVisibility(t *testing.T) {
	env := setupTestRouter(t)
	env.blog.Create(nil, &models.BlogPostInput{Title: "Published", Content: "c", Author: "a", Published: true}, "published")
	env.blog.Create(nil, &models.BlogPostInput{Title: "Draft", Content: "c", Author: "a"}, "draft")

	// Public list excludes the draft
	w := env.do(t, "GET", "/api/blog", "", nil)
	resp := decodeResponse(t, w)
	posts, _ := resp.Data.([]interface{})
	if len(posts) != 1 {
		t.Errorf("public list has %d posts, want 1", len(posts))
	}

	// Draft is not readable by slug
	w = env.do(t, "GET", "/api/blog/draft", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get draft by slug = %d, want 404", w.Code)
	}

	w = env.do(t, "GET", "/api/blog/published", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("get published by slug = %d, want 200", w.Code)
	}

	// Admin listing includes both
	w = env.do(t, "GET", "/api/blog/admin/all", env.tokenFor(t, env.admin), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin list = %d, want 200", w.Code)
	}
	resp = decodeResponse(t, w)
	posts, _ = resp.Data.([]interface{})
	if len(posts) != 2 {
		t.Errorf("admin list has %d posts, want 2", len(posts))
	}

	// But not without credentials
	w = env.do(t, "GET", "/api/blog/admin/all", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("admin list without token = %d, want 401", w.Code)
	}
}

func TestLearningEmptyEstimatedCompletion(t *testing.T) {
	env := setupTestRouter(t)
	env.learning.Create(nil, &models.LearningItemInput{Title: "Learn SQL"})

	w := env.do(t, "PUT", "/api/learning/1", env.tokenFor(t, env.admin), map[string]interface{}{
		"estimated_completion": "",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update = %d, want 200. Body: %s", w.Code, w.Body.String())
	}

	patch := env.learning.LastPatch
	if patch == nil || patch.EstimatedCompletion == nil {
		t.Fatal("patch did not carry estimated_completion")
	}
	if *patch.EstimatedCompletion != "" {
		t.Errorf("estimated_completion = %q, want empty string", *patch.EstimatedCompletion)
	}
	// The empty string maps to a null column value
	if v := patch.Fields()["estimated_completion"]; v != nil {
		t.Errorf("fields estimated_completion = %v, want nil", v)
	}
}

func TestCertificationExpiredDerivation(t *testing.T) {
	env := setupTestRouter(t)
	past := "2020-01-01"
	future := "2099-01-01"
	env.certs.Create(nil, &models.CertificationInput{Name: "Old", Issuer: "x", IssueDate: "2019-01-01", ExpiryDate: &past})
	env.certs.Create(nil, &models.CertificationInput{Name: "Current", Issuer: "x", IssueDate: "2024-01-01", ExpiryDate: &future})

	w := env.do(t, "GET", "/api/certifications", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d, want 200", w.Code)
	}
	resp := decodeResponse(t, w)
	certs, _ := resp.Data.([]interface{})
	if len(certs) != 2 {
		t.Fatalf("list has %d certs, want 2", len(certs))
	}
	first := certs[0].(map[string]interface{})
	second := certs[1].(map[string]interface{})
	if first["is_expired"] != true {
		t.Errorf("past cert is_expired = %v, want true", first["is_expired"])
	}
	if second["is_expired"] != false {
		t.Errorf("future cert is_expired = %v, want false", second["is_expired"])
	}
}

func TestAnalyticsTrackUpsert(t *testing.T) {
	env := setupTestRouter(t)
	visit := map[string]interface{}{
		"page_path":  "/about",
		"session_id": "sess-1",
	}

	w := env.do(t, "POST", "/api/analytics/track", "", visit)
	if w.Code != http.StatusOK {
		t.Fatalf("track = %d, want 200. Body: %s", w.Code, w.Body.String())
	}

	visit["visit_duration"] = 42
	w = env.do(t, "POST", "/api/analytics/track", "", visit)
	if w.Code != http.StatusOK {
		t.Fatalf("second track = %d, want 200", w.Code)
	}

	if len(env.analytics.Events) != 1 {
		t.Fatalf("stored %d events, want 1", len(env.analytics.Events))
	}
	for _, e := range env.analytics.Events {
		if e.VisitDuration != 42 {
			t.Errorf("visit_duration = %d, want 42", e.VisitDuration)
		}
	}
}

func TestAnalyticsReportsRequireAdmin(t *testing.T) {
	env := setupTestRouter(t)

	for _, path := range []string{"/api/analytics/overview", "/api/analytics/detailed"} {
		w := env.do(t, "GET", path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token = %d, want 401", path, w.Code)
		}
		w = env.do(t, "GET", path, env.tokenFor(t, env.regular), nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("GET %s as non-admin = %d, want 403", path, w.Code)
		}
		w = env.do(t, "GET", path, env.tokenFor(t, env.admin), nil)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s as admin = %d, want 200", path, w.Code)
		}
	}
}

func TestMaintenanceFlagPublic(t *testing.T) {
	// Missing flag reads as disabled
	env := setupTestRouter(t)
	w := env.do(t, "GET", "/api/feature-flags/maintenance", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("maintenance = %d, want 200", w.Code)
	}
	data := dataMap(t, decodeResponse(t, w))
	if data["enabled"] != false {
		t.Errorf("enabled = %v, want false for missing flag", data["enabled"])
	}

	// Fresh router so the cached result above does not leak in
	env = setupTestRouter(t)
	env.flags.Create(nil, &models.FeatureFlagInput{Name: "maintenance", Enabled: true})
	w = env.do(t, "GET", "/api/feature-flags/maintenance", "", nil)
	data = dataMap(t, decodeResponse(t, w))
	if data["enabled"] != true {
		t.Errorf("enabled = %v, want true", data["enabled"])
	}

	// Flag CRUD stays admin-gated
	w = env.do(t, "GET", "/api/feature-flags", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("list flags without token = %d, want 401", w.Code)
	}
}

func TestFeatureFlagNameConflict(t *testing.T) {
	env := setupTestRouter(t)
	env.flags.CreateErr = &pq.Error{Code: "23505"}

	w := env.do(t, "POST", "/api/feature-flags", env.tokenFor(t, env.admin), map[string]interface{}{
		"name": "maintenance",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate flag name = %d, want 409. Body: %s", w.Code, w.Body.String())
	}
}

func TestLoginAndMe(t *testing.T) {
	env := setupTestRouter(t)

	// Wrong password
	w := env.do(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password = %d, want 401", w.Code)
	}

	// Unknown email gets the same answer
	w = env.do(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown email = %d, want 401", w.Code)
	}

	// Valid credentials
	w = env.do(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "admin-password",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d, want 200. Body: %s", w.Code, w.Body.String())
	}
	data := dataMap(t, decodeResponse(t, w))
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("login response has no token")
	}
	if strings.Contains(w.Body.String(), "password_hash") {
		t.Error("login response leaks the password hash")
	}

	// The token resolves the identity
	w = env.do(t, "GET", "/api/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me = %d, want 200", w.Code)
	}
	data = dataMap(t, decodeResponse(t, w))
	if data["email"] != "admin@example.com" {
		t.Errorf("me email = %v", data["email"])
	}
	if data["role"] != "admin" {
		t.Errorf("me role = %v", data["role"])
	}
}

func TestChangePassword(t *testing.T) {
	env := setupTestRouter(t)
	token := env.tokenFor(t, env.regular)

	// Wrong current password
	w := env.do(t, "PUT", "/api/auth/change-password", token, map[string]interface{}{
		"current_password": "not-it",
		"new_password":     "brand-new-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong current password = %d, want 401", w.Code)
	}

	// Too-short replacement
	w = env.do(t, "PUT", "/api/auth/change-password", token, map[string]interface{}{
		"current_password": "user-password",
		"new_password":     "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("short new password = %d, want 400", w.Code)
	}

	// Valid change
	w = env.do(t, "PUT", "/api/auth/change-password", token, map[string]interface{}{
		"current_password": "user-password",
		"new_password":     "brand-new-password",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("change password = %d, want 200. Body: %s", w.Code, w.Body.String())
	}
	if !auth.CheckPassword(env.regular.PasswordHash, "brand-new-password") {
		t.Error("stored hash does not match the new password")
	}
}

func TestUpdateProfile(t *testing.T) {
	env := setupTestRouter(t)
	token := env.tokenFor(t, env.regular)

	w := env.do(t, "PUT", "/api/auth/profile", token, map[string]interface{}{
		"name":  "Renamed",
		"email": "renamed@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update profile = %d, want 200. Body: %s", w.Code, w.Body.String())
	}
	data := dataMap(t, decodeResponse(t, w))
	if data["name"] != "Renamed" {
		t.Errorf("name = %v, want Renamed", data["name"])
	}

	w = env.do(t, "PUT", "/api/auth/profile", token, map[string]interface{}{
		"email": "not-an-email",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad email = %d, want 400", w.Code)
	}

	w = env.do(t, "PUT", "/api/auth/profile", "", map[string]interface{}{"name": "x"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token = %d, want 401", w.Code)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	env := setupTestRouter(t)
	expired := auth.NewIssuer(testSecret, -time.Minute)
	token, err := expired.IssueToken(env.admin)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := env.do(t, "GET", "/api/auth/me", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expired token = %d, want 401", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	env := setupTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/api/projects", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("missing Access-Control-Allow-Origin header")
	}
}
