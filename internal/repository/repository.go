package repository

import (
	"context"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// BlogFilter narrows a blog post listing
type BlogFilter struct {
	Category           string
	Search             string
	Limit              int
	Offset             int
	IncludeUnpublished bool
}

// ProjectRepository defines project data operations
type ProjectRepository interface {
	List(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, in *models.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id int64, patch *models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// BlogRepository defines blog post data operations
type BlogRepository interface {
	List(ctx context.Context, filter BlogFilter) ([]*models.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	Create(ctx context.Context, in *models.BlogPostInput, slug string) (*models.BlogPost, error)
	Update(ctx context.Context, id int64, patch *models.BlogPostPatch) (*models.BlogPost, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// WorkHistoryRepository defines work history data operations
type WorkHistoryRepository interface {
	List(ctx context.Context) ([]*models.WorkHistory, error)
	GetByID(ctx context.Context, id int64) (*models.WorkHistory, error)
	Create(ctx context.Context, in *models.WorkHistoryInput) (*models.WorkHistory, error)
	Update(ctx context.Context, id int64, patch *models.WorkHistoryPatch) (*models.WorkHistory, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// EducationRepository defines education data operations
type EducationRepository interface {
	List(ctx context.Context) ([]*models.Education, error)
	GetByID(ctx context.Context, id int64) (*models.Education, error)
	Create(ctx context.Context, in *models.EducationInput) (*models.Education, error)
	Update(ctx context.Context, id int64, patch *models.EducationPatch) (*models.Education, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CertificationRepository defines certification data operations
type CertificationRepository interface {
	List(ctx context.Context) ([]*models.Certification, error)
	GetByID(ctx context.Context, id int64) (*models.Certification, error)
	Create(ctx context.Context, in *models.CertificationInput) (*models.Certification, error)
	Update(ctx context.Context, id int64, patch *models.CertificationPatch) (*models.Certification, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// LearningRepository defines learning item data operations
type LearningRepository interface {
	List(ctx context.Context) ([]*models.LearningItem, error)
	GetByID(ctx context.Context, id int64) (*models.LearningItem, error)
	Create(ctx context.Context, in *models.LearningItemInput) (*models.LearningItem, error)
	Update(ctx context.Context, id int64, patch *models.LearningItemPatch) (*models.LearningItem, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SkillRepository defines skill data operations
type SkillRepository interface {
	List(ctx context.Context) ([]*models.Skill, error)
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
	Create(ctx context.Context, in *models.SkillInput) (*models.Skill, error)
	Update(ctx context.Context, id int64, patch *models.SkillPatch) (*models.Skill, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// FeatureFlagRepository defines feature flag data operations
type FeatureFlagRepository interface {
	List(ctx context.Context) ([]*models.FeatureFlag, error)
	GetByID(ctx context.Context, id int64) (*models.FeatureFlag, error)
	GetByName(ctx context.Context, name string) (*models.FeatureFlag, error)
	Create(ctx context.Context, in *models.FeatureFlagInput) (*models.FeatureFlag, error)
	Update(ctx context.Context, id int64, patch *models.FeatureFlagPatch) (*models.FeatureFlag, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// AnalyticsRepository defines analytics event operations
type AnalyticsRepository interface {
	UpsertVisit(ctx context.Context, in *models.TrackInput) error
	Overview(ctx context.Context) (*models.AnalyticsOverview, error)
	Detailed(ctx context.Context, recentLimit int) (*models.AnalyticsDetailed, error)
}

// UserRepository defines user/account data operations
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, patch *models.ProfilePatch) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	EnsureBootstrapAdmin(ctx context.Context, email, name, passwordHash string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Project     ProjectRepository
	Blog        BlogRepository
	WorkHistory WorkHistoryRepository
	Education   EducationRepository
	Cert        CertificationRepository
	Learning    LearningRepository
	Skill       SkillRepository
	Flag        FeatureFlagRepository
	Analytics   AnalyticsRepository
	User        UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Project:     NewProjectRepo(db),
		Blog:        NewBlogRepo(db),
		WorkHistory: NewWorkHistoryRepo(db),
		Education:   NewEducationRepo(db),
		Cert:        NewCertificationRepo(db),
		Learning:    NewLearningRepo(db),
		Skill:       NewSkillRepo(db),
		Flag:        NewFeatureFlagRepo(db),
		Analytics:   NewAnalyticsRepo(db),
		User:        NewUserRepo(db),
	}
}
