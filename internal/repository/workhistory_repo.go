package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// workHistoryRepo is the concrete implementation of WorkHistoryRepository
type workHistoryRepo struct {
	db *database.DB
}

// NewWorkHistoryRepo creates a new work history repository
func NewWorkHistoryRepo(db *database.DB) WorkHistoryRepository {
	return &workHistoryRepo{db: db}
}

const workHistoryColumns = "id, company, position, location, start_date, end_date, achievements, technologies, created_at, updated_at"

func scanWorkHistory(scan func(dest ...interface{}) error) (*models.WorkHistory, error) {
	var w models.WorkHistory
	var endDate sql.NullString
	err := scan(
		&w.ID, &w.Company, &w.Position, &w.Location, &w.StartDate, &endDate,
		&w.Achievements, &w.Technologies, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if endDate.Valid {
		w.EndDate = &endDate.String
	}
	return &w, nil
}

// List retrieves all work history entries, most recent first.
// Current positions (null end date) sort before finished ones.
func (r *workHistoryRepo) List(ctx context.Context) ([]*models.WorkHistory, error) {
	query := "SELECT " + workHistoryColumns + " FROM work_history ORDER BY end_date IS NULL DESC, start_date DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.WorkHistory{}
	for rows.Next() {
		entry, err := scanWorkHistory(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// GetByID retrieves a work history entry by ID
func (r *workHistoryRepo) GetByID(ctx context.Context, id int64) (*models.WorkHistory, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+workHistoryColumns+" FROM work_history WHERE id = $1", id)
	entry, err := scanWorkHistory(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return entry, err
}

// Create inserts a new work history entry
func (r *workHistoryRepo) Create(ctx context.Context, in *models.WorkHistoryInput) (*models.WorkHistory, error) {
	now := time.Now()
	var endDate interface{}
	if in.EndDate != nil {
		endDate = models.NullableDate(*in.EndDate)
	}
	id, err := r.db.InsertRow(ctx, "work_history", map[string]interface{}{
		"company":      in.Company,
		"position":     in.Position,
		"location":     in.Location,
		"start_date":   in.StartDate,
		"end_date":     endDate,
		"achievements": in.Achievements,
		"technologies": in.Technologies,
		"created_at":   now,
		"updated_at":   now,
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update applies a partial update to a work history entry
func (r *workHistoryRepo) Update(ctx context.Context, id int64, patch *models.WorkHistoryPatch) (*models.WorkHistory, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	if err := r.db.UpdateRow(ctx, "work_history", id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a work history entry, reporting whether it existed
func (r *workHistoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.db.DeleteRow(ctx, "work_history", id)
}
