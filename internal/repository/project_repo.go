package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// projectRepo is the concrete implementation of ProjectRepository
type projectRepo struct {
	db *database.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *database.DB) ProjectRepository {
	return &projectRepo{db: db}
}

// List retrieves all projects, featured first then newest
func (r *projectRepo) List(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT id, title, description, date, featured, technologies, created_at, updated_at
		FROM projects ORDER BY featured DESC, date DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Date, &p.Featured,
			&p.Technologies, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// GetByID retrieves a project by ID
func (r *projectRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `
		SELECT id, title, description, date, featured, technologies, created_at, updated_at
		FROM projects WHERE id = $1
	`
	var p models.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Date, &p.Featured,
		&p.Technologies, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new project
func (r *projectRepo) Create(ctx context.Context, in *models.ProjectInput) (*models.Project, error) {
	now := time.Now()
	id, err := r.db.InsertRow(ctx, "projects", map[string]interface{}{
		"title":        in.Title,
		"description":  in.Description,
		"date":         in.Date,
		"featured":     in.Featured,
		"technologies": in.Technologies,
		"created_at":   now,
		"updated_at":   now,
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update applies a partial update to a project
func (r *projectRepo) Update(ctx context.Context, id int64, patch *models.ProjectPatch) (*models.Project, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	if err := r.db.UpdateRow(ctx, "projects", id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a project, reporting whether it existed
func (r *projectRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.db.DeleteRow(ctx, "projects", id)
}
