package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// learningRepo is the concrete implementation of LearningRepository
type learningRepo struct {
	db *database.DB
}

// NewLearningRepo creates a new learning item repository
func NewLearningRepo(db *database.DB) LearningRepository {
	return &learningRepo{db: db}
}

const learningColumns = "id, title, category, progress, status, start_date, estimated_completion, resources, created_at, updated_at"

func scanLearningItem(scan func(dest ...interface{}) error) (*models.LearningItem, error) {
	var item models.LearningItem
	var estimated sql.NullString
	err := scan(
		&item.ID, &item.Title, &item.Category, &item.Progress, &item.Status,
		&item.StartDate, &estimated, &item.Resources, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if estimated.Valid {
		item.EstimatedCompletion = &estimated.String
	}
	return &item, nil
}

// List retrieves all learning items, newest first
func (r *learningRepo) List(ctx context.Context) ([]*models.LearningItem, error) {
	query := "SELECT " + learningColumns + " FROM learning_items ORDER BY created_at DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.LearningItem{}
	for rows.Next() {
		item, err := scanLearningItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetByID retrieves a learning item by ID
func (r *learningRepo) GetByID(ctx context.Context, id int64) (*models.LearningItem, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+learningColumns+" FROM learning_items WHERE id = $1", id)
	item, err := scanLearningItem(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return item, err
}

// Create inserts a new learning item
func (r *learningRepo) Create(ctx context.Context, in *models.LearningItemInput) (*models.LearningItem, error) {
	now := time.Now()
	status := in.Status
	if status == "" {
		status = "not_started"
	}
	var estimated interface{}
	if in.EstimatedCompletion != nil {
		estimated = models.NullableDate(*in.EstimatedCompletion)
	}
	id, err := r.db.InsertRow(ctx, "learning_items", map[string]interface{}{
		"title":                in.Title,
		"category":             in.Category,
		"progress":             in.Progress,
		"status":               status,
		"start_date":           in.StartDate,
		"estimated_completion": estimated,
		"resources":            in.Resources,
		"created_at":           now,
		"updated_at":           now,
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update applies a partial update to a learning item
func (r *learningRepo) Update(ctx context.Context, id int64, patch *models.LearningItemPatch) (*models.LearningItem, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	if err := r.db.UpdateRow(ctx, "learning_items", id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a learning item, reporting whether it existed
func (r *learningRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.db.DeleteRow(ctx, "learning_items", id)
}
