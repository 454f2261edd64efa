package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// featureFlagRepo is the concrete implementation of FeatureFlagRepository
type featureFlagRepo struct {
	db *database.DB
}

// NewFeatureFlagRepo creates a new feature flag repository
func NewFeatureFlagRepo(db *database.DB) FeatureFlagRepository {
	return &featureFlagRepo{db: db}
}

const featureFlagColumns = "id, name, description, enabled, created_at, updated_at"

// List retrieves all feature flags by name
func (r *featureFlagRepo) List(ctx context.Context) ([]*models.FeatureFlag, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+featureFlagColumns+" FROM feature_flags ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flags := []*models.FeatureFlag{}
	for rows.Next() {
		var f models.FeatureFlag
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Enabled, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		flags = append(flags, &f)
	}
	return flags, rows.Err()
}

// GetByID retrieves a feature flag by ID
func (r *featureFlagRepo) GetByID(ctx context.Context, id int64) (*models.FeatureFlag, error) {
	var f models.FeatureFlag
	err := r.db.QueryRowContext(ctx, "SELECT "+featureFlagColumns+" FROM feature_flags WHERE id = $1", id).
		Scan(&f.ID, &f.Name, &f.Description, &f.Enabled, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetByName retrieves a feature flag by its unique name
func (r *featureFlagRepo) GetByName(ctx context.Context, name string) (*models.FeatureFlag, error) {
	var f models.FeatureFlag
	err := r.db.QueryRowContext(ctx, "SELECT "+featureFlagColumns+" FROM feature_flags WHERE name = $1", name).
		Scan(&f.ID, &f.Name, &f.Description, &f.Enabled, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a new feature flag
func (r *featureFlagRepo) Create(ctx context.Context, in *models.FeatureFlagInput) (*models.FeatureFlag, error) {
	now := time.Now()
	id, err := r.db.InsertRow(ctx, "feature_flags", map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
		"enabled":     in.Enabled,
		"created_at":  now,
		"updated_at":  now,
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update applies a partial update to a feature flag
func (r *featureFlagRepo) Update(ctx context.Context, id int64, patch *models.FeatureFlagPatch) (*models.FeatureFlag, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	if err := r.db.UpdateRow(ctx, "feature_flags", id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a feature flag, reporting whether it existed
func (r *featureFlagRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.db.DeleteRow(ctx, "feature_flags", id)
}
