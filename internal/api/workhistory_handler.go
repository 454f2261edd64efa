package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// WorkHistoryHandler handles work history endpoints
type WorkHistoryHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewWorkHistoryHandler creates a new WorkHistoryHandler
func NewWorkHistoryHandler(repos *repository.Repositories, log zerolog.Logger) *WorkHistoryHandler {
	return &WorkHistoryHandler{
		repos: repos,
		log:   log.With().Str("handler", "work-history").Logger(),
	}
}

// List handles GET /api/work-history. Public.
func (h *WorkHistoryHandler) List(c *gin.Context) {
	entries, err := h.repos.WorkHistory.List(c.Request.Context())
	if err != nil {
		respondInternal(c, h.log, err, "list work history")
		return
	}
	respondOK(c, entries)
}

// Get handles GET /api/work-history/:id. Public.
func (h *WorkHistoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entry, err := h.repos.WorkHistory.GetByID(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "get work history")
		return
	}
	if entry == nil {
		respondError(c, http.StatusNotFound, "work history entry not found")
		return
	}
	respondOK(c, entry)
}

// Create handles POST /api/work-history. Admin only.
func (h *WorkHistoryHandler) Create(c *gin.Context) {
	var in models.WorkHistoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateWorkHistory(&in); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	entry, err := h.repos.WorkHistory.Create(c.Request.Context(), &in)
	if err != nil {
		respondInternal(c, h.log, err, "create work history")
		return
	}
	respondCreated(c, entry)
}

// Update handles PUT /api/work-history/:id. Admin only.
func (h *WorkHistoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.WorkHistoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateWorkHistoryPatch(&patch); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	entry, err := h.repos.WorkHistory.Update(c.Request.Context(), id, &patch)
	if err != nil {
		respondInternal(c, h.log, err, "update work history")
		return
	}
	if entry == nil {
		respondError(c, http.StatusNotFound, "work history entry not found")
		return
	}
	respondOK(c, entry)
}

// Delete handles DELETE /api/work-history/:id. Admin only.
func (h *WorkHistoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.repos.WorkHistory.Delete(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "delete work history")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "work history entry not found")
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
