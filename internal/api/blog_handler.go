package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// slugCreateRetries bounds the retry loop when a concurrent create
// wins the race for the same slug and trips the unique index.
const slugCreateRetries = 3

// BlogHandler handles blog post endpoints
type BlogHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(repos *repository.Repositories, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		repos: repos,
		log:   log.With().Str("handler", "blog").Logger(),
	}
}

func blogFilterFromQuery(c *gin.Context) repository.BlogFilter {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	return repository.BlogFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    limit,
		Offset:   offset,
	}
}

// List handles GET /api/blog. Public; published posts only, with
// optional category/search filters and pagination.
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.repos.Blog.List(c.Request.Context(), blogFilterFromQuery(c))
	if err != nil {
		respondInternal(c, h.log, err, "list blog posts")
		return
	}
	respondOK(c, posts)
}

// ListAll handles GET /api/blog/admin/all. Admin only; includes
// unpublished posts.
func (h *BlogHandler) ListAll(c *gin.Context) {
	filter := blogFilterFromQuery(c)
	filter.IncludeUnpublished = true

	posts, err := h.repos.Blog.List(c.Request.Context(), filter)
	if err != nil {
		respondInternal(c, h.log, err, "list all blog posts")
		return
	}
	respondOK(c, posts)
}

// GetBySlug handles GET /api/blog/:slug. Public; published posts only.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.repos.Blog.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondInternal(c, h.log, err, "get blog post")
		return
	}
	if post == nil || !post.Published {
		respondError(c, http.StatusNotFound, "blog post not found")
		return
	}
	respondOK(c, post)
}

// uniqueSlug probes for a free slug, appending -1, -2, ... to the base
// until no other post holds it.
func (h *BlogHandler) uniqueSlug(ctx context.Context, base string, excludeID int64) (string, error) {
	slug := base
	for i := 1; ; i++ {
		exists, err := h.repos.Blog.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// Create handles POST /api/blog. Admin only. The slug is derived from
// the title when absent, probed for uniqueness, and retried if a
// concurrent create claims it first.
func (h *BlogHandler) Create(c *gin.Context) {
	var in models.BlogPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateBlogPost(&in); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	base := in.Slug
	if base == "" {
		base = validation.Slugify(in.Title)
	}
	if base == "" {
		respondValidation(c, []validation.FieldError{
			{Field: "slug", Message: "slug could not be derived from title", Value: in.Title},
		})
		return
	}

	ctx := c.Request.Context()
	for attempt := 0; attempt <= slugCreateRetries; attempt++ {
		slug, err := h.uniqueSlug(ctx, base, 0)
		if err != nil {
			respondInternal(c, h.log, err, "probe blog slug")
			return
		}

		post, err := h.repos.Blog.Create(ctx, &in, slug)
		if err == nil {
			respondCreated(c, post)
			return
		}
		if !database.IsUniqueViolation(err) {
			respondInternal(c, h.log, err, "create blog post")
			return
		}
		h.log.Warn().Str("slug", slug).Msg("Slug claimed concurrently, retrying")
	}

	respondError(c, http.StatusConflict, "slug already in use")
}

// Update handles PUT /api/blog/:id. Admin only. A supplied slug is
// re-probed for uniqueness against other posts; an explicitly empty
// slug is re-derived from the post title.
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.BlogPostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateBlogPostPatch(&patch); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	ctx := c.Request.Context()

	if patch.Slug != nil && *patch.Slug == "" {
		existing, err := h.repos.Blog.GetByID(ctx, id)
		if err != nil {
			respondInternal(c, h.log, err, "get blog post")
			return
		}
		if existing == nil {
			respondError(c, http.StatusNotFound, "blog post not found")
			return
		}
		title := existing.Title
		if patch.Title != nil {
			title = *patch.Title
		}
		derived := validation.Slugify(title)
		patch.Slug = &derived
	}

	if patch.Slug != nil {
		slug, err := h.uniqueSlug(ctx, *patch.Slug, id)
		if err != nil {
			respondInternal(c, h.log, err, "probe blog slug")
			return
		}
		patch.Slug = &slug
	}

	post, err := h.repos.Blog.Update(ctx, id, &patch)
	if err != nil {
		if database.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "slug already in use")
			return
		}
		respondInternal(c, h.log, err, "update blog post")
		return
	}
	if post == nil {
		respondError(c, http.StatusNotFound, "blog post not found")
		return
	}
	respondOK(c, post)
}

// Delete handles DELETE /api/blog/:id. Admin only.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.repos.Blog.Delete(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "delete blog post")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "blog post not found")
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
