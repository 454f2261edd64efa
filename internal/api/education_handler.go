package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// EducationHandler handles education endpoints
type EducationHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewEducationHandler creates a new EducationHandler
func NewEducationHandler(repos *repository.Repositories, log zerolog.Logger) *EducationHandler {
	return &EducationHandler{
		repos: repos,
		log:   log.With().Str("handler", "education").Logger(),
	}
}

// List handles GET /api/education. Public.
func (h *EducationHandler) List(c *gin.Context) {
	entries, err := h.repos.Education.List(c.Request.Context())
	if err != nil {
		respondInternal(c, h.log, err, "list education")
		return
	}
	respondOK(c, entries)
}

// Get handles GET /api/education/:id. Public.
func (h *EducationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entry, err := h.repos.Education.GetByID(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "get education")
		return
	}
	if entry == nil {
		respondError(c, http.StatusNotFound, "education entry not found")
		return
	}
	respondOK(c, entry)
}

// Create handles POST /api/education. Admin only.
func (h *EducationHandler) Create(c *gin.Context) {
	var in models.EducationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateEducation(&in); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	entry, err := h.repos.Education.Create(c.Request.Context(), &in)
	if err != nil {
		respondInternal(c, h.log, err, "create education")
		return
	}
	respondCreated(c, entry)
}

// Update handles PUT /api/education/:id. Admin only.
func (h *EducationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.EducationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateEducationPatch(&patch); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	entry, err := h.repos.Education.Update(c.Request.Context(), id, &patch)
	if err != nil {
		respondInternal(c, h.log, err, "update education")
		return
	}
	if entry == nil {
		respondError(c, http.StatusNotFound, "education entry not found")
		return
	}
	respondOK(c, entry)
}

// Delete handles DELETE /api/education/:id. Admin only.
func (h *EducationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.repos.Education.Delete(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "delete education")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "education entry not found")
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
