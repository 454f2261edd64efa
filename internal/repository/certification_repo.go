package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// certificationRepo is the concrete implementation of CertificationRepository
type certificationRepo struct {
	db *database.DB
}

// NewCertificationRepo creates a new certification repository
func NewCertificationRepo(db *database.DB) CertificationRepository {
	return &certificationRepo{db: db}
}

const certificationColumns = "id, name, issuer, issue_date, expiry_date, skills, created_at, updated_at"

func scanCertification(scan func(dest ...interface{}) error, now time.Time) (*models.Certification, error) {
	var c models.Certification
	var expiry sql.NullString
	err := scan(
		&c.ID, &c.Name, &c.Issuer, &c.IssueDate, &expiry,
		&c.Skills, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if expiry.Valid {
		c.ExpiryDate = &expiry.String
	}
	c.ComputeExpired(now)
	return &c, nil
}

// List retrieves all certifications, most recently issued first
func (r *certificationRepo) List(ctx context.Context) ([]*models.Certification, error) {
	query := "SELECT " + certificationColumns + " FROM certifications ORDER BY issue_date DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now()
	certs := []*models.Certification{}
	for rows.Next() {
		cert, err := scanCertification(rows.Scan, now)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}
	return certs, rows.Err()
}

// GetByID retrieves a certification by ID
func (r *certificationRepo) GetByID(ctx context.Context, id int64) (*models.Certification, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+certificationColumns+" FROM certifications WHERE id = $1", id)
	cert, err := scanCertification(row.Scan, time.Now())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return cert, err
}

// Create inserts a new certification
func (r *certificationRepo) Create(ctx context.Context, in *models.CertificationInput) (*models.Certification, error) {
	now := time.Now()
	var expiry interface{}
	if in.ExpiryDate != nil {
		expiry = models.NullableDate(*in.ExpiryDate)
	}
	id, err := r.db.InsertRow(ctx, "certifications", map[string]interface{}{
		"name":        in.Name,
		"issuer":      in.Issuer,
		"issue_date":  in.IssueDate,
		"expiry_date": expiry,
		"skills":      in.Skills,
		"created_at":  now,
		"updated_at":  now,
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update applies a partial update to a certification
func (r *certificationRepo) Update(ctx context.Context, id int64, patch *models.CertificationPatch) (*models.Certification, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	if err := r.db.UpdateRow(ctx, "certifications", id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a certification, reporting whether it existed
func (r *certificationRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.db.DeleteRow(ctx, "certifications", id)
}
