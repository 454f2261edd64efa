package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// LearningHandler handles learning log endpoints
type LearningHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewLearningHandler creates a new LearningHandler
func NewLearningHandler(repos *repository.Repositories, log zerolog.Logger) *LearningHandler {
	return &LearningHandler{
		repos: repos,
		log:   log.With().Str("handler", "learning").Logger(),
	}
}

// List handles GET /api/learning. Public.
func (h *LearningHandler) List(c *gin.Context) {
	items, err := h.repos.Learning.List(c.Request.Context())
	if err != nil {
		respondInternal(c, h.log, err, "list learning items")
		return
	}
	respondOK(c, items)
}

// Get handles GET /api/learning/:id. Public.
func (h *LearningHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.repos.Learning.GetByID(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "get learning item")
		return
	}
	if item == nil {
		respondError(c, http.StatusNotFound, "learning item not found")
		return
	}
	respondOK(c, item)
}

// Create handles POST /api/learning. Admin only.
func (h *LearningHandler) Create(c *gin.Context) {
	var in models.LearningItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateLearningItem(&in); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	item, err := h.repos.Learning.Create(c.Request.Context(), &in)
	if err != nil {
		respondInternal(c, h.log, err, "create learning item")
		return
	}
	respondCreated(c, item)
}

// Update handles PUT /api/learning/:id. Admin only. An empty-string
// estimated_completion clears the stored date rather than failing to
// parse.
func (h *LearningHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.LearningItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateLearningItemPatch(&patch); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	item, err := h.repos.Learning.Update(c.Request.Context(), id, &patch)
	if err != nil {
		respondInternal(c, h.log, err, "update learning item")
		return
	}
	if item == nil {
		respondError(c, http.StatusNotFound, "learning item not found")
		return
	}
	respondOK(c, item)
}

// Delete handles DELETE /api/learning/:id. Admin only.
func (h *LearningHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.repos.Learning.Delete(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "delete learning item")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "learning item not found")
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
