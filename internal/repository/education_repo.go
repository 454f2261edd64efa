package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// educationRepo is the concrete implementation of EducationRepository
type educationRepo struct {
	db *database.DB
}

// NewEducationRepo creates a new education repository
func NewEducationRepo(db *database.DB) EducationRepository {
	return &educationRepo{db: db}
}

// The grade field reads from the legacy gpa column.
const educationColumns = "id, institution, degree, field_of_study, start_date, end_date, gpa, achievements, created_at, updated_at"

func scanEducation(scan func(dest ...interface{}) error) (*models.Education, error) {
	var e models.Education
	var endDate sql.NullString
	err := scan(
		&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &endDate,
		&e.Grade, &e.Achievements, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if endDate.Valid {
		e.EndDate = &endDate.String
	}
	return &e, nil
}

// List retrieves all education entries, most recent first
func (r *educationRepo) List(ctx context.Context) ([]*models.Education, error) {
	query := "SELECT " + educationColumns + " FROM education ORDER BY start_date DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.Education{}
	for rows.Next() {
		entry, err := scanEducation(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// GetByID retrieves an education entry by ID
func (r *educationRepo) GetByID(ctx context.Context, id int64) (*models.Education, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+educationColumns+" FROM education WHERE id = $1", id)
	entry, err := scanEducation(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return entry, err
}

// Create inserts a new education entry
func (r *educationRepo) Create(ctx context.Context, in *models.EducationInput) (*models.Education, error) {
	now := time.Now()
	var endDate interface{}
	if in.EndDate != nil {
		endDate = models.NullableDate(*in.EndDate)
	}
	id, err := r.db.InsertRow(ctx, "education", map[string]interface{}{
		"institution":    in.Institution,
		"degree":         in.Degree,
		"field_of_study": in.FieldOfStudy,
		"start_date":     in.StartDate,
		"end_date":       endDate,
		"gpa":            in.Grade,
		"achievements":   in.Achievements,
		"created_at":     now,
		"updated_at":     now,
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update applies a partial update to an education entry
func (r *educationRepo) Update(ctx context.Context, id int64, patch *models.EducationPatch) (*models.Education, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	if err := r.db.UpdateRow(ctx, "education", id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes an education entry, reporting whether it existed
func (r *educationRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.db.DeleteRow(ctx, "education", id)
}
