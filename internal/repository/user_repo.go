package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

const userColumns = "id, name, email, role, password_hash, created_at, updated_at"

func scanUser(scan func(dest ...interface{}) error) (*models.User, error) {
	var u models.User
	err := scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	user, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE LOWER(email) = LOWER($1)", email)
	user, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

// UpdateProfile applies a self-service profile update
func (r *userRepo) UpdateProfile(ctx context.Context, id int64, patch *models.ProfilePatch) (*models.User, error) {
	fields := patch.Fields()
	if email, ok := fields["email"].(string); ok {
		fields["email"] = strings.ToLower(email)
	}
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	if err := r.db.UpdateRow(ctx, "users", id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdatePassword replaces a user's password hash
func (r *userRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.db.UpdateRow(ctx, "users", id, map[string]interface{}{
		"password_hash": passwordHash,
	})
}

// EnsureBootstrapAdmin seeds the initial admin account if no user with
// the given email exists yet. Existing accounts are left untouched.
func (r *userRepo) EnsureBootstrapAdmin(ctx context.Context, email, name, passwordHash string) error {
	existing, err := r.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	now := time.Now()
	_, err = r.db.InsertRow(ctx, "users", map[string]interface{}{
		"name":          name,
		"email":         strings.ToLower(email),
		"role":          "admin",
		"password_hash": passwordHash,
		"created_at":    now,
		"updated_at":    now,
	})
	// A concurrent boot may win the race; the unique index makes that
	// harmless.
	if err != nil && database.IsUniqueViolation(err) {
		return nil
	}
	return err
}
