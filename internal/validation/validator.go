package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/portfolio-content-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const minPasswordLength = 8

// FieldError represents a single validation error
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// isValidDate accepts a bare date or a full RFC 3339 timestamp
func isValidDate(s string) bool {
	if _, err := time.Parse(models.DateLayout, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func requireString(errors []FieldError, field, value string) []FieldError {
	if value == "" {
		errors = append(errors, FieldError{Field: field, Message: field + " is required"})
	}
	return errors
}

func checkDate(errors []FieldError, field, value string, required bool) []FieldError {
	if value == "" {
		if required {
			errors = append(errors, FieldError{Field: field, Message: field + " is required"})
		}
		return errors
	}
	if !isValidDate(value) {
		errors = append(errors, FieldError{Field: field, Message: "invalid date, expected YYYY-MM-DD", Value: value})
	}
	return errors
}

// ValidateProject validates a project create payload
func ValidateProject(in *models.ProjectInput) []FieldError {
	var errors []FieldError
	errors = requireString(errors, "title", in.Title)
	errors = requireString(errors, "description", in.Description)
	errors = checkDate(errors, "date", in.Date, true)
	return errors
}

// ValidateProjectPatch validates only the supplied project fields
func ValidateProjectPatch(p *models.ProjectPatch) []FieldError {
	var errors []FieldError
	if p.Title != nil && *p.Title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title cannot be empty"})
	}
	if p.Description != nil && *p.Description == "" {
		errors = append(errors, FieldError{Field: "description", Message: "description cannot be empty"})
	}
	if p.Date != nil {
		errors = checkDate(errors, "date", *p.Date, true)
	}
	return errors
}

// ValidateBlogPost validates a blog post create payload
func ValidateBlogPost(in *models.BlogPostInput) []FieldError {
	var errors []FieldError
	errors = requireString(errors, "title", in.Title)
	errors = requireString(errors, "content", in.Content)
	errors = requireString(errors, "author", in.Author)
	if in.Slug != "" && !IsValidSlug(in.Slug) {
		errors = append(errors, FieldError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: in.Slug})
	}
	return errors
}

// ValidateBlogPostPatch validates only the supplied blog post fields
func ValidateBlogPostPatch(p *models.BlogPostPatch) []FieldError {
	var errors []FieldError
	if p.Title != nil && *p.Title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title cannot be empty"})
	}
	if p.Content != nil && *p.Content == "" {
		errors = append(errors, FieldError{Field: "content", Message: "content cannot be empty"})
	}
	if p.Slug != nil && *p.Slug != "" && !IsValidSlug(*p.Slug) {
		errors = append(errors, FieldError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: *p.Slug})
	}
	return errors
}

// ValidateWorkHistory validates a work history create payload
func ValidateWorkHistory(in *models.WorkHistoryInput) []FieldError {
	var errors []FieldError
	errors = requireString(errors, "company", in.Company)
	errors = requireString(errors, "position", in.Position)
	errors = checkDate(errors, "start_date", in.StartDate, true)
	if in.EndDate != nil {
		errors = checkDate(errors, "end_date", *in.EndDate, false)
	}
	return errors
}

// ValidateWorkHistoryPatch validates only the supplied work history fields
func ValidateWorkHistoryPatch(p *models.WorkHistoryPatch) []FieldError {
	var errors []FieldError
	if p.Company != nil && *p.Company == "" {
		errors = append(errors, FieldError{Field: "company", Message: "company cannot be empty"})
	}
	if p.Position != nil && *p.Position == "" {
		errors = append(errors, FieldError{Field: "position", Message: "position cannot be empty"})
	}
	if p.StartDate != nil {
		errors = checkDate(errors, "start_date", *p.StartDate, true)
	}
	if p.EndDate != nil {
		errors = checkDate(errors, "end_date", *p.EndDate, false)
	}
	return errors
}

// ValidateEducation validates an education create payload
func ValidateEducation(in *models.EducationInput) []FieldError {
	var errors []FieldError
	errors = requireString(errors, "institution", in.Institution)
	errors = requireString(errors, "degree", in.Degree)
	errors = checkDate(errors, "start_date", in.StartDate, true)
	if in.EndDate != nil {
		errors = checkDate(errors, "end_date", *in.EndDate, false)
	}
	return errors
}

// ValidateEducationPatch validates only the supplied education fields
func ValidateEducationPatch(p *models.EducationPatch) []FieldError {
	var errors []FieldError
	if p.Institution != nil && *p.Institution == "" {
		errors = append(errors, FieldError{Field: "institution", Message: "institution cannot be empty"})
	}
	if p.Degree != nil && *p.Degree == "" {
		errors = append(errors, FieldError{Field: "degree", Message: "degree cannot be empty"})
	}
	if p.StartDate != nil {
		errors = checkDate(errors, "start_date", *p.StartDate, true)
	}
	if p.EndDate != nil {
		errors = checkDate(errors, "end_date", *p.EndDate, false)
	}
	return errors
}

// ValidateCertification validates a certification create payload
func ValidateCertification(in *models.CertificationInput) []FieldError {
	var errors []FieldError
	errors = requireString(errors, "name", in.Name)
	errors = requireString(errors, "issuer", in.Issuer)
	errors = checkDate(errors, "issue_date", in.IssueDate, true)
	if in.ExpiryDate != nil {
		errors = checkDate(errors, "expiry_date", *in.ExpiryDate, false)
	}
	return errors
}

// ValidateCertificationPatch validates only the supplied certification fields
func ValidateCertificationPatch(p *models.CertificationPatch) []FieldError {
	var errors []FieldError
	if p.Name != nil && *p.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name cannot be empty"})
	}
	if p.Issuer != nil && *p.Issuer == "" {
		errors = append(errors, FieldError{Field: "issuer", Message: "issuer cannot be empty"})
	}
	if p.IssueDate != nil {
		errors = checkDate(errors, "issue_date", *p.IssueDate, true)
	}
	if p.ExpiryDate != nil {
		errors = checkDate(errors, "expiry_date", *p.ExpiryDate, false)
	}
	return errors
}

func checkProgress(errors []FieldError, progress int) []FieldError {
	if progress < 0 || progress > 100 {
		errors = append(errors, FieldError{Field: "progress", Message: "progress must be between 0 and 100", Value: progress})
	}
	return errors
}

func checkLearningStatus(errors []FieldError, status string) []FieldError {
	if !models.ValidLearningStatuses[status] {
		errors = append(errors, FieldError{
			Field:   "status",
			Message: "invalid status, must be one of: not_started, in_progress, completed, paused",
			Value:   status,
		})
	}
	return errors
}

// ValidateLearningItem validates a learning item create payload
func ValidateLearningItem(in *models.LearningItemInput) []FieldError {
	var errors []FieldError
	errors = requireString(errors, "title", in.Title)
	errors = checkProgress(errors, in.Progress)
	if in.Status != "" {
		errors = checkLearningStatus(errors, in.Status)
	}
	errors = checkDate(errors, "start_date", in.StartDate, false)
	if in.EstimatedCompletion != nil {
		errors = checkDate(errors, "estimated_completion", *in.EstimatedCompletion, false)
	}
	return errors
}

// ValidateLearningItemPatch validates only the supplied learning item fields
func ValidateLearningItemPatch(p *models.LearningItemPatch) []FieldError {
	var errors []FieldError
	if p.Title != nil && *p.Title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title cannot be empty"})
	}
	if p.Progress != nil {
		errors = checkProgress(errors, *p.Progress)
	}
	if p.Status != nil {
		errors = checkLearningStatus(errors, *p.Status)
	}
	if p.StartDate != nil {
		errors = checkDate(errors, "start_date", *p.StartDate, false)
	}
	if p.EstimatedCompletion != nil {
		errors = checkDate(errors, "estimated_completion", *p.EstimatedCompletion, false)
	}
	return errors
}

// ValidateSkill validates a skill create payload
func ValidateSkill(in *models.SkillInput) []FieldError {
	var errors []FieldError
	errors = requireString(errors, "name", in.Name)
	if in.Level == "" {
		errors = append(errors, FieldError{Field: "level", Message: "level is required"})
	} else if !models.ValidSkillLevels[in.Level] {
		errors = append(errors, FieldError{
			Field:   "level",
			Message: "invalid level, must be one of: beginner, intermediate, advanced, expert",
			Value:   in.Level,
		})
	}
	return errors
}

// ValidateSkillPatch validates only the supplied skill fields
func ValidateSkillPatch(p *models.SkillPatch) []FieldError {
	var errors []FieldError
	if p.Name != nil && *p.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name cannot be empty"})
	}
	if p.Level != nil && !models.ValidSkillLevels[*p.Level] {
		errors = append(errors, FieldError{
			Field:   "level",
			Message: "invalid level, must be one of: beginner, intermediate, advanced, expert",
			Value:   *p.Level,
		})
	}
	return errors
}

// ValidateFeatureFlag validates a feature flag create payload
func ValidateFeatureFlag(in *models.FeatureFlagInput) []FieldError {
	var errors []FieldError
	if in.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if !IsValidSlug(in.Name) {
		errors = append(errors, FieldError{Field: "name", Message: "name must be kebab-case (lowercase letters, numbers, hyphens)", Value: in.Name})
	}
	return errors
}

// ValidateFeatureFlagPatch validates only the supplied feature flag fields
func ValidateFeatureFlagPatch(p *models.FeatureFlagPatch) []FieldError {
	var errors []FieldError
	if p.Name != nil && !IsValidSlug(*p.Name) {
		errors = append(errors, FieldError{Field: "name", Message: "name must be kebab-case (lowercase letters, numbers, hyphens)", Value: *p.Name})
	}
	return errors
}

// ValidateTrack validates a public visit-report payload
func ValidateTrack(in *models.TrackInput) []FieldError {
	var errors []FieldError
	errors = requireString(errors, "page_path", in.PagePath)
	errors = requireString(errors, "session_id", in.SessionID)
	if in.VisitDuration < 0 {
		errors = append(errors, FieldError{Field: "visit_duration", Message: "visit_duration cannot be negative", Value: in.VisitDuration})
	}
	return errors
}

// ValidateEmail checks an email address format
func ValidateEmail(email string) []FieldError {
	var errors []FieldError
	if email == "" {
		errors = append(errors, FieldError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(email) {
		errors = append(errors, FieldError{Field: "email", Message: "invalid email format", Value: email})
	}
	return errors
}

// ValidateProfilePatch validates a self-service profile update
func ValidateProfilePatch(p *models.ProfilePatch) []FieldError {
	var errors []FieldError
	if p.Name != nil && *p.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name cannot be empty"})
	}
	if p.Email != nil {
		errors = append(errors, ValidateEmail(*p.Email)...)
	}
	return errors
}

// ValidatePasswordChange validates a change-password payload
func ValidatePasswordChange(current, next string) []FieldError {
	var errors []FieldError
	errors = requireString(errors, "current_password", current)
	if next == "" {
		errors = append(errors, FieldError{Field: "new_password", Message: "new_password is required"})
	} else if len(next) < minPasswordLength {
		errors = append(errors, FieldError{Field: "new_password", Message: fmt.Sprintf("new_password must be at least %d characters", minPasswordLength)})
	}
	return errors
}
