package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// skillRepo is the concrete implementation of SkillRepository
type skillRepo struct {
	db *database.DB
}

// NewSkillRepo creates a new skill repository
func NewSkillRepo(db *database.DB) SkillRepository {
	return &skillRepo{db: db}
}

const skillColumns = "id, name, category, level, created_at, updated_at"

// List retrieves all skills grouped by category then name
func (r *skillRepo) List(ctx context.Context) ([]*models.Skill, error) {
	query := "SELECT " + skillColumns + " FROM skills ORDER BY category, name"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []*models.Skill{}
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, &s)
	}
	return skills, rows.Err()
}

// GetByID retrieves a skill by ID
func (r *skillRepo) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	var s models.Skill
	err := r.db.QueryRowContext(ctx, "SELECT "+skillColumns+" FROM skills WHERE id = $1", id).
		Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new skill
func (r *skillRepo) Create(ctx context.Context, in *models.SkillInput) (*models.Skill, error) {
	now := time.Now()
	id, err := r.db.InsertRow(ctx, "skills", map[string]interface{}{
		"name":       in.Name,
		"category":   in.Category,
		"level":      in.Level,
		"created_at": now,
		"updated_at": now,
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update applies a partial update to a skill
func (r *skillRepo) Update(ctx context.Context, id int64, patch *models.SkillPatch) (*models.Skill, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	if err := r.db.UpdateRow(ctx, "skills", id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a skill, reporting whether it existed
func (r *skillRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.db.DeleteRow(ctx, "skills", id)
}
