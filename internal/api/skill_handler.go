package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// SkillHandler handles skill endpoints
type SkillHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(repos *repository.Repositories, log zerolog.Logger) *SkillHandler {
	return &SkillHandler{
		repos: repos,
		log:   log.With().Str("handler", "skills").Logger(),
	}
}

// List handles GET /api/skills. Public.
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.repos.Skill.List(c.Request.Context())
	if err != nil {
		respondInternal(c, h.log, err, "list skills")
		return
	}
	respondOK(c, skills)
}

// Get handles GET /api/skills/:id. Public.
func (h *SkillHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	skill, err := h.repos.Skill.GetByID(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "get skill")
		return
	}
	if skill == nil {
		respondError(c, http.StatusNotFound, "skill not found")
		return
	}
	respondOK(c, skill)
}

// Create handles POST /api/skills. Admin only.
func (h *SkillHandler) Create(c *gin.Context) {
	var in models.SkillInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateSkill(&in); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	skill, err := h.repos.Skill.Create(c.Request.Context(), &in)
	if err != nil {
		respondInternal(c, h.log, err, "create skill")
		return
	}
	respondCreated(c, skill)
}

// Update handles PUT /api/skills/:id. Admin only.
func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.SkillPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateSkillPatch(&patch); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	skill, err := h.repos.Skill.Update(c.Request.Context(), id, &patch)
	if err != nil {
		respondInternal(c, h.log, err, "update skill")
		return
	}
	if skill == nil {
		respondError(c, http.StatusNotFound, "skill not found")
		return
	}
	respondOK(c, skill)
}

// Delete handles DELETE /api/skills/:id. Admin only.
func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.repos.Skill.Delete(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "delete skill")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "skill not found")
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
