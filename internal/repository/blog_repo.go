package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// blogRepo is the concrete implementation of BlogRepository
type blogRepo struct {
	db *database.DB
}

// NewBlogRepo creates a new blog post repository
func NewBlogRepo(db *database.DB) BlogRepository {
	return &blogRepo{db: db}
}

const blogColumns = "id, slug, title, excerpt, content, author, category, published, featured, tags, created_at, updated_at"

func scanBlogPost(scan func(dest ...interface{}) error) (*models.BlogPost, error) {
	var p models.BlogPost
	err := scan(
		&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.Author,
		&p.Category, &p.Published, &p.Featured, &p.Tags, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List retrieves blog posts matching the filter, newest first.
// Unpublished posts are excluded unless the filter asks for them.
func (r *blogRepo) List(ctx context.Context, filter BlogFilter) ([]*models.BlogPost, error) {
	query := "SELECT " + blogColumns + " FROM blog_posts WHERE 1=1"
	args := []interface{}{}

	if !filter.IncludeUnpublished {
		query += " AND published = true"
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (title ILIKE $%d OR excerpt ILIKE $%d OR content ILIKE $%d)", n, n, n)
	}

	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*models.BlogPost{}
	for rows.Next() {
		post, err := scanBlogPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetByID retrieves a blog post by ID
func (r *blogRepo) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+blogColumns+" FROM blog_posts WHERE id = $1", id)
	post, err := scanBlogPost(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return post, err
}

// GetBySlug retrieves a blog post by slug
func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+blogColumns+" FROM blog_posts WHERE slug = $1", slug)
	post, err := scanBlogPost(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return post, err
}

// SlugExists checks whether another post already uses the slug
func (r *blogRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = $1 AND id <> $2)",
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new blog post with the given resolved slug
func (r *blogRepo) Create(ctx context.Context, in *models.BlogPostInput, slug string) (*models.BlogPost, error) {
	now := time.Now()
	id, err := r.db.InsertRow(ctx, "blog_posts", map[string]interface{}{
		"slug":       slug,
		"title":      in.Title,
		"excerpt":    in.Excerpt,
		"content":    in.Content,
		"author":     in.Author,
		"category":   in.Category,
		"published":  in.Published,
		"featured":   in.Featured,
		"tags":       in.Tags,
		"created_at": now,
		"updated_at": now,
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update applies a partial update to a blog post
func (r *blogRepo) Update(ctx context.Context, id int64, patch *models.BlogPostPatch) (*models.BlogPost, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	if err := r.db.UpdateRow(ctx, "blog_posts", id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a blog post, reporting whether it existed
func (r *blogRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.db.DeleteRow(ctx, "blog_posts", id)
}
