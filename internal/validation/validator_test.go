package validation

import (
	"testing"

	"github.com/portfolio-content-api/internal/models"
)

func checkFieldErrors(t *testing.T, errors []FieldError, wantErrors int, wantFields []string) {
	t.Helper()
	if len(errors) != wantErrors {
		t.Errorf("got %d errors, want %d. Errors: %v", len(errors), wantErrors, errors)
	}
	for _, wantField := range wantFields {
		found := false
		for _, err := range errors {
			if err.Field == wantField {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected error for field '%s' but not found", wantField)
		}
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateProject(t *testing.T) {
	tests := []struct {
		name       string
		in         *models.ProjectInput
		wantErrors int
		wantFields []string
	}{
		{
			name: "valid project",
			in: &models.ProjectInput{
				Title:        "Demo",
				Description:  "x",
				Date:         "2024-01-01",
				Technologies: models.StringList{"Go", "Rust"},
			},
			wantErrors: 0,
		},
		{
			name:       "missing title and description",
			in:         &models.ProjectInput{Date: "2024-01-01"},
			wantErrors: 2,
			wantFields: []string{"title", "description"},
		},
		{
			name:       "invalid date format",
			in:         &models.ProjectInput{Title: "Demo", Description: "x", Date: "01/01/2024"},
			wantErrors: 1,
			wantFields: []string{"date"},
		},
		{
			name:       "rfc3339 timestamp accepted",
			in:         &models.ProjectInput{Title: "Demo", Description: "x", Date: "2024-01-01T12:00:00Z"},
			wantErrors: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFieldErrors(t, ValidateProject(tt.in), tt.wantErrors, tt.wantFields)
		})
	}
}

func TestValidateBlogPost(t *testing.T) {
	tests := []struct {
		name       string
		in         *models.BlogPostInput
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid post without slug",
			in:         &models.BlogPostInput{Title: "Hello World", Content: "body", Author: "me"},
			wantErrors: 0,
		},
		{
			name:       "valid post with explicit slug",
			in:         &models.BlogPostInput{Title: "Hello", Content: "body", Author: "me", Slug: "hello-world-2"},
			wantErrors: 0,
		},
		{
			name:       "uppercase slug rejected",
			in:         &models.BlogPostInput{Title: "Hello", Content: "body", Author: "me", Slug: "Hello-World"},
			wantErrors: 1,
			wantFields: []string{"slug"},
		},
		{
			name:       "all required fields missing",
			in:         &models.BlogPostInput{},
			wantErrors: 3,
			wantFields: []string{"title", "content", "author"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFieldErrors(t, ValidateBlogPost(tt.in), tt.wantErrors, tt.wantFields)
		})
	}
}

func TestValidateLearningItem(t *testing.T) {
	tests := []struct {
		name       string
		in         *models.LearningItemInput
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid minimal item",
			in:         &models.LearningItemInput{Title: "Learn Postgres"},
			wantErrors: 0,
		},
		{
			name:       "valid with status and progress",
			in:         &models.LearningItemInput{Title: "Learn Postgres", Status: "in_progress", Progress: 40},
			wantErrors: 0,
		},
		{
			name:       "unknown status",
			in:         &models.LearningItemInput{Title: "x", Status: "done"},
			wantErrors: 1,
			wantFields: []string{"status"},
		},
		{
			name:       "progress out of range",
			in:         &models.LearningItemInput{Title: "x", Progress: 120},
			wantErrors: 1,
			wantFields: []string{"progress"},
		},
		{
			name:       "empty estimated completion is allowed",
			in:         &models.LearningItemInput{Title: "x", EstimatedCompletion: strPtr("")},
			wantErrors: 0,
		},
		{
			name:       "bad estimated completion date",
			in:         &models.LearningItemInput{Title: "x", EstimatedCompletion: strPtr("soon")},
			wantErrors: 1,
			wantFields: []string{"estimated_completion"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFieldErrors(t, ValidateLearningItem(tt.in), tt.wantErrors, tt.wantFields)
		})
	}
}

func TestValidateLearningItemPatch(t *testing.T) {
	tests := []struct {
		name       string
		patch      *models.LearningItemPatch
		wantErrors int
		wantFields []string
	}{
		{
			name:       "empty patch is valid",
			patch:      &models.LearningItemPatch{},
			wantErrors: 0,
		},
		{
			name:       "progress only",
			patch:      &models.LearningItemPatch{Progress: intPtr(100)},
			wantErrors: 0,
		},
		{
			name:       "negative progress",
			patch:      &models.LearningItemPatch{Progress: intPtr(-1)},
			wantErrors: 1,
			wantFields: []string{"progress"},
		},
		{
			name:       "empty title rejected",
			patch:      &models.LearningItemPatch{Title: strPtr("")},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFieldErrors(t, ValidateLearningItemPatch(tt.patch), tt.wantErrors, tt.wantFields)
		})
	}
}

func TestValidateSkill(t *testing.T) {
	tests := []struct {
		name       string
		in         *models.SkillInput
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid skill",
			in:         &models.SkillInput{Name: "Go", Category: "languages", Level: "expert"},
			wantErrors: 0,
		},
		{
			name:       "missing level",
			in:         &models.SkillInput{Name: "Go"},
			wantErrors: 1,
			wantFields: []string{"level"},
		},
		{
			name:       "level not in allowed values",
			in:         &models.SkillInput{Name: "Go", Level: "guru"},
			wantErrors: 1,
			wantFields: []string{"level"},
		},
		{
			name:       "missing name and level",
			in:         &models.SkillInput{},
			wantErrors: 2,
			wantFields: []string{"name", "level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFieldErrors(t, ValidateSkill(tt.in), tt.wantErrors, tt.wantFields)
		})
	}
}

func TestValidateFeatureFlag(t *testing.T) {
	tests := []struct {
		name       string
		in         *models.FeatureFlagInput
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid flag",
			in:         &models.FeatureFlagInput{Name: "maintenance", Enabled: true},
			wantErrors: 0,
		},
		{
			name:       "missing name",
			in:         &models.FeatureFlagInput{},
			wantErrors: 1,
			wantFields: []string{"name"},
		},
		{
			name:       "name with spaces rejected",
			in:         &models.FeatureFlagInput{Name: "dark mode"},
			wantErrors: 1,
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFieldErrors(t, ValidateFeatureFlag(tt.in), tt.wantErrors, tt.wantFields)
		})
	}
}

func TestValidateTrack(t *testing.T) {
	tests := []struct {
		name       string
		in         *models.TrackInput
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid visit",
			in:         &models.TrackInput{PagePath: "/about", SessionID: "abc123"},
			wantErrors: 0,
		},
		{
			name:       "missing page path and session",
			in:         &models.TrackInput{VisitDuration: 10},
			wantErrors: 2,
			wantFields: []string{"page_path", "session_id"},
		},
		{
			name:       "negative duration",
			in:         &models.TrackInput{PagePath: "/about", SessionID: "abc123", VisitDuration: -5},
			wantErrors: 1,
			wantFields: []string{"visit_duration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFieldErrors(t, ValidateTrack(tt.in), tt.wantErrors, tt.wantFields)
		})
	}
}

func TestValidatePasswordChange(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		next       string
		wantErrors int
		wantFields []string
	}{
		{name: "valid change", current: "old-secret", next: "new-secret-123", wantErrors: 0},
		{name: "missing current", current: "", next: "new-secret-123", wantErrors: 1, wantFields: []string{"current_password"}},
		{name: "new password too short", current: "old-secret", next: "short", wantErrors: 1, wantFields: []string{"new_password"}},
		{name: "both missing", current: "", next: "", wantErrors: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFieldErrors(t, ValidatePasswordChange(tt.current, tt.next), tt.wantErrors, tt.wantFields)
		})
	}
}

func TestValidateProfilePatch(t *testing.T) {
	tests := []struct {
		name       string
		patch      *models.ProfilePatch
		wantErrors int
		wantFields []string
	}{
		{name: "empty patch is valid", patch: &models.ProfilePatch{}, wantErrors: 0},
		{name: "valid email", patch: &models.ProfilePatch{Email: strPtr("me@example.com")}, wantErrors: 0},
		{name: "invalid email", patch: &models.ProfilePatch{Email: strPtr("not-an-email")}, wantErrors: 1, wantFields: []string{"email"}},
		{name: "empty name rejected", patch: &models.ProfilePatch{Name: strPtr("")}, wantErrors: 1, wantFields: []string{"name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFieldErrors(t, ValidateProfilePatch(tt.patch), tt.wantErrors, tt.wantFields)
		})
	}
}
