package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	Projects map[int64]*models.Project
	NextID   int64
	Err      error
}

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{Projects: make(map[int64]*models.Project), NextID: 1}
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*models.Project, 0, len(m.Projects))
	for _, p := range m.Projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Projects[id], nil
}

func (m *MockProjectRepository) Create(ctx context.Context, in *models.ProjectInput) (*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	now := time.Now()
	p := &models.Project{
		ID:           m.NextID,
		Title:        in.Title,
		Description:  in.Description,
		Date:         in.Date,
		Featured:     in.Featured,
		Technologies: in.Technologies,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.Projects[p.ID] = p
	m.NextID++
	return p, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, id int64, patch *models.ProjectPatch) (*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.Projects[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Technologies != nil {
		p.Technologies = *patch.Technologies
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	p.UpdatedAt = time.Now()
	return p, nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Projects[id]; !ok {
		return false, nil
	}
	delete(m.Projects, id)
	return true, nil
}

// MockBlogRepository is a mock implementation of BlogRepository
type MockBlogRepository struct {
	Posts      map[int64]*models.BlogPost
	NextID     int64
	Err        error
	CreateErr  error
	UpdateFunc func(ctx context.Context, id int64, patch *models.BlogPostPatch) (*models.BlogPost, error)
}

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{Posts: make(map[int64]*models.BlogPost), NextID: 1}
}

func (m *MockBlogRepository) List(ctx context.Context, filter repository.BlogFilter) ([]*models.BlogPost, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*models.BlogPost, 0, len(m.Posts))
	for _, p := range m.Posts {
		if !filter.IncludeUnpublished && !p.Published {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Posts[id], nil
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.Posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockBlogRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, p := range m.Posts {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockBlogRepository) Create(ctx context.Context, in *models.BlogPostInput, slug string) (*models.BlogPost, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if m.Err != nil {
		return nil, m.Err
	}
	now := time.Now()
	p := &models.BlogPost{
		ID:        m.NextID,
		Slug:      slug,
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Author:    in.Author,
		Category:  in.Category,
		Published: in.Published,
		Featured:  in.Featured,
		Tags:      in.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.Posts[p.ID] = p
	m.NextID++
	return p, nil
}

func (m *MockBlogRepository) Update(ctx context.Context, id int64, patch *models.BlogPostPatch) (*models.BlogPost, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.Posts[id]
	if !ok {
		return nil, nil
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Published != nil {
		p.Published = *patch.Published
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	p.UpdatedAt = time.Now()
	return p, nil
}

func (m *MockBlogRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Posts[id]; !ok {
		return false, nil
	}
	delete(m.Posts, id)
	return true, nil
}

// MockWorkHistoryRepository is a mock implementation of WorkHistoryRepository
type MockWorkHistoryRepository struct {
	Entries map[int64]*models.WorkHistory
	NextID  int64
	Err     error
}

func NewMockWorkHistoryRepository() *MockWorkHistoryRepository {
	return &MockWorkHistoryRepository{Entries: make(map[int64]*models.WorkHistory), NextID: 1}
}

func (m *MockWorkHistoryRepository) List(ctx context.Context) ([]*models.WorkHistory, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*models.WorkHistory, 0, len(m.Entries))
	for _, e := range m.Entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockWorkHistoryRepository) GetByID(ctx context.Context, id int64) (*models.WorkHistory, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entries[id], nil
}

func (m *MockWorkHistoryRepository) Create(ctx context.Context, in *models.WorkHistoryInput) (*models.WorkHistory, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	now := time.Now()
	e := &models.WorkHistory{
		ID:           m.NextID,
		Company:      in.Company,
		Position:     in.Position,
		Location:     in.Location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Achievements: in.Achievements,
		Technologies: in.Technologies,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.Entries[e.ID] = e
	m.NextID++
	return e, nil
}

func (m *MockWorkHistoryRepository) Update(ctx context.Context, id int64, patch *models.WorkHistoryPatch) (*models.WorkHistory, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	e, ok := m.Entries[id]
	if !ok {
		return nil, nil
	}
	if patch.Company != nil {
		e.Company = *patch.Company
	}
	if patch.Position != nil {
		e.Position = *patch.Position
	}
	if patch.EndDate != nil {
		e.EndDate = patch.EndDate
	}
	e.UpdatedAt = time.Now()
	return e, nil
}

func (m *MockWorkHistoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Entries[id]; !ok {
		return false, nil
	}
	delete(m.Entries, id)
	return true, nil
}

// MockEducationRepository is a mock implementation of EducationRepository
type MockEducationRepository struct {
	Entries map[int64]*models.Education
	NextID  int64
	Err     error
}

func NewMockEducationRepository() *MockEducationRepository {
	return &MockEducationRepository{Entries: make(map[int64]*models.Education), NextID: 1}
}

func (m *MockEducationRepository) List(ctx context.Context) ([]*models.Education, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*models.Education, 0, len(m.Entries))
	for _, e := range m.Entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockEducationRepository) GetByID(ctx context.Context, id int64) (*models.Education, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entries[id], nil
}

func (m *MockEducationRepository) Create(ctx context.Context, in *models.EducationInput) (*models.Education, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	now := time.Now()
	e := &models.Education{
		ID:           m.NextID,
		Institution:  in.Institution,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Grade:        in.Grade,
		Achievements: in.Achievements,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.Entries[e.ID] = e
	m.NextID++
	return e, nil
}

func (m *MockEducationRepository) Update(ctx context.Context, id int64, patch *models.EducationPatch) (*models.Education, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	e, ok := m.Entries[id]
	if !ok {
		return nil, nil
	}
	if patch.Institution != nil {
		e.Institution = *patch.Institution
	}
	if patch.Degree != nil {
		e.Degree = *patch.Degree
	}
	if patch.Grade != nil {
		e.Grade = *patch.Grade
	}
	e.UpdatedAt = time.Now()
	return e, nil
}

func (m *MockEducationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Entries[id]; !ok {
		return false, nil
	}
	delete(m.Entries, id)
	return true, nil
}

// MockCertificationRepository is a mock implementation of CertificationRepository
type MockCertificationRepository struct {
	Entries map[int64]*models.Certification
	NextID  int64
	Err     error
}

func NewMockCertificationRepository() *MockCertificationRepository {
	return &MockCertificationRepository{Entries: make(map[int64]*models.Certification), NextID: 1}
}

func (m *MockCertificationRepository) List(ctx context.Context) ([]*models.Certification, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*models.Certification, 0, len(m.Entries))
	for _, e := range m.Entries {
		e.ComputeExpired(time.Now())
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockCertificationRepository) GetByID(ctx context.Context, id int64) (*models.Certification, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	e, ok := m.Entries[id]
	if !ok {
		return nil, nil
	}
	e.ComputeExpired(time.Now())
	return e, nil
}

func (m *MockCertificationRepository) Create(ctx context.Context, in *models.CertificationInput) (*models.Certification, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	now := time.Now()
	e := &models.Certification{
		ID:         m.NextID,
		Name:       in.Name,
		Issuer:     in.Issuer,
		IssueDate:  in.IssueDate,
		ExpiryDate: in.ExpiryDate,
		Skills:     in.Skills,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	e.ComputeExpired(now)
	m.Entries[e.ID] = e
	m.NextID++
	return e, nil
}

func (m *MockCertificationRepository) Update(ctx context.Context, id int64, patch *models.CertificationPatch) (*models.Certification, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	e, ok := m.Entries[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.ExpiryDate != nil {
		e.ExpiryDate = patch.ExpiryDate
	}
	e.ComputeExpired(time.Now())
	e.UpdatedAt = time.Now()
	return e, nil
}

func (m *MockCertificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Entries[id]; !ok {
		return false, nil
	}
	delete(m.Entries, id)
	return true, nil
}

// MockLearningRepository is a mock implementation of LearningRepository
type MockLearningRepository struct {
	Items  map[int64]*models.LearningItem
	NextID int64
	Err    error

	// LastPatch records the most recent update payload for assertions
	LastPatch *models.LearningItemPatch
}

func NewMockLearningRepository() *MockLearningRepository {
	return &MockLearningRepository{Items: make(map[int64]*models.LearningItem), NextID: 1}
}

func (m *MockLearningRepository) List(ctx context.Context) ([]*models.LearningItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*models.LearningItem, 0, len(m.Items))
	for _, e := range m.Items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockLearningRepository) GetByID(ctx context.Context, id int64) (*models.LearningItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Items[id], nil
}

func (m *MockLearningRepository) Create(ctx context.Context, in *models.LearningItemInput) (*models.LearningItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	now := time.Now()
	status := in.Status
	if status == "" {
		status = "not_started"
	}
	e := &models.LearningItem{
		ID:                  m.NextID,
		Title:               in.Title,
		Category:            in.Category,
		Progress:            in.Progress,
		Status:              status,
		StartDate:           in.StartDate,
		EstimatedCompletion: in.EstimatedCompletion,
		Resources:           in.Resources,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	m.Items[e.ID] = e
	m.NextID++
	return e, nil
}

func (m *MockLearningRepository) Update(ctx context.Context, id int64, patch *models.LearningItemPatch) (*models.LearningItem, error) {
	m.LastPatch = patch
	if m.Err != nil {
		return nil, m.Err
	}
	e, ok := m.Items[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	if patch.Progress != nil {
		e.Progress = *patch.Progress
	}
	if patch.EstimatedCompletion != nil {
		e.EstimatedCompletion = patch.EstimatedCompletion
	}
	e.UpdatedAt = time.Now()
	return e, nil
}

func (m *MockLearningRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Items[id]; !ok {
		return false, nil
	}
	delete(m.Items, id)
	return true, nil
}

// MockSkillRepository is a mock implementation of SkillRepository
type MockSkillRepository struct {
	Skills map[int64]*models.Skill
	NextID int64
	Err    error
}

func NewMockSkillRepository() *MockSkillRepository {
	return &MockSkillRepository{Skills: make(map[int64]*models.Skill), NextID: 1}
}

func (m *MockSkillRepository) List(ctx context.Context) ([]*models.Skill, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*models.Skill, 0, len(m.Skills))
	for _, e := range m.Skills {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockSkillRepository) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Skills[id], nil
}

func (m *MockSkillRepository) Create(ctx context.Context, in *models.SkillInput) (*models.Skill, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	now := time.Now()
	e := &models.Skill{
		ID:        m.NextID,
		Name:      in.Name,
		Category:  in.Category,
		Level:     in.Level,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.Skills[e.ID] = e
	m.NextID++
	return e, nil
}

func (m *MockSkillRepository) Update(ctx context.Context, id int64, patch *models.SkillPatch) (*models.Skill, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	e, ok := m.Skills[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.Level != nil {
		e.Level = *patch.Level
	}
	e.UpdatedAt = time.Now()
	return e, nil
}

func (m *MockSkillRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Skills[id]; !ok {
		return false, nil
	}
	delete(m.Skills, id)
	return true, nil
}

// MockFeatureFlagRepository is a mock implementation of FeatureFlagRepository
type MockFeatureFlagRepository struct {
	Flags     map[int64]*models.FeatureFlag
	NextID    int64
	Err       error
	CreateErr error
}

func NewMockFeatureFlagRepository() *MockFeatureFlagRepository {
	return &MockFeatureFlagRepository{Flags: make(map[int64]*models.FeatureFlag), NextID: 1}
}

func (m *MockFeatureFlagRepository) List(ctx context.Context) ([]*models.FeatureFlag, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*models.FeatureFlag, 0, len(m.Flags))
	for _, f := range m.Flags {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockFeatureFlagRepository) GetByID(ctx context.Context, id int64) (*models.FeatureFlag, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Flags[id], nil
}

func (m *MockFeatureFlagRepository) GetByName(ctx context.Context, name string) (*models.FeatureFlag, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, f := range m.Flags {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, nil
}

func (m *MockFeatureFlagRepository) Create(ctx context.Context, in *models.FeatureFlagInput) (*models.FeatureFlag, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if m.Err != nil {
		return nil, m.Err
	}
	now := time.Now()
	f := &models.FeatureFlag{
		ID:          m.NextID,
		Name:        in.Name,
		Enabled:     in.Enabled,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.Flags[f.ID] = f
	m.NextID++
	return f, nil
}

func (m *MockFeatureFlagRepository) Update(ctx context.Context, id int64, patch *models.FeatureFlagPatch) (*models.FeatureFlag, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	f, ok := m.Flags[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.Enabled != nil {
		f.Enabled = *patch.Enabled
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	f.UpdatedAt = time.Now()
	return f, nil
}

func (m *MockFeatureFlagRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Flags[id]; !ok {
		return false, nil
	}
	delete(m.Flags, id)
	return true, nil
}

// MockAnalyticsRepository is a mock implementation of AnalyticsRepository
type MockAnalyticsRepository struct {
	Events map[string]*models.AnalyticsEvent // keyed by session_id + "|" + page_path
	NextID int64
	Err    error
}

func NewMockAnalyticsRepository() *MockAnalyticsRepository {
	return &MockAnalyticsRepository{Events: make(map[string]*models.AnalyticsEvent), NextID: 1}
}

func (m *MockAnalyticsRepository) UpsertVisit(ctx context.Context, in *models.TrackInput) error {
	if m.Err != nil {
		return m.Err
	}
	key := in.SessionID + "|" + in.PagePath
	if e, ok := m.Events[key]; ok {
		if in.VisitDuration > 0 {
			e.VisitDuration = in.VisitDuration
		}
		return nil
	}
	m.Events[key] = &models.AnalyticsEvent{
		ID:            m.NextID,
		PagePath:      in.PagePath,
		SessionID:     in.SessionID,
		VisitDuration: in.VisitDuration,
		Referrer:      in.Referrer,
		CreatedAt:     time.Now(),
	}
	m.NextID++
	return nil
}

func (m *MockAnalyticsRepository) Overview(ctx context.Context) (*models.AnalyticsOverview, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	overview := &models.AnalyticsOverview{}
	sessions := make(map[string]bool)
	total := 0
	for _, e := range m.Events {
		overview.TotalVisits++
		sessions[e.SessionID] = true
		total += e.VisitDuration
	}
	overview.UniqueSessions = len(sessions)
	if overview.TotalVisits > 0 {
		overview.AvgDuration = float64(total) / float64(overview.TotalVisits)
	}
	return overview, nil
}

func (m *MockAnalyticsRepository) Detailed(ctx context.Context, recentLimit int) (*models.AnalyticsDetailed, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	detailed := &models.AnalyticsDetailed{}
	for _, e := range m.Events {
		detailed.Recent = append(detailed.Recent, *e)
		if len(detailed.Recent) >= recentLimit {
			break
		}
	}
	return detailed, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users  map[int64]*models.User
	NextID int64
	Err    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[int64]*models.User), NextID: 1}
}

// Add stores a user and assigns it an ID
func (m *MockUserRepository) Add(u *models.User) *models.User {
	if u.ID == 0 {
		u.ID = m.NextID
		m.NextID++
	}
	m.Users[u.ID] = u
	return u
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id int64, patch *models.ProfilePatch) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	u.UpdatedAt = time.Now()
	return u, nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	if m.Err != nil {
		return m.Err
	}
	u, ok := m.Users[id]
	if !ok {
		return nil
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *MockUserRepository) EnsureBootstrapAdmin(ctx context.Context, email, name, passwordHash string) error {
	if m.Err != nil {
		return m.Err
	}
	if existing, _ := m.GetByEmail(ctx, email); existing != nil {
		return nil
	}
	m.Add(&models.User{Email: email, Name: name, PasswordHash: passwordHash, Role: "admin"})
	return nil
}
