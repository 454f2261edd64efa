package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

const projectListCacheKey = "projects:list"

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	repos *repository.Repositories
	cache *cache.Cache
	log   zerolog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(repos *repository.Repositories, store *cache.Cache, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{
		repos: repos,
		cache: store,
		log:   log.With().Str("handler", "projects").Logger(),
	}
}

// List handles GET /api/projects. Public; featured projects first,
// then newest. The result is cached until the next mutation.
func (h *ProjectHandler) List(c *gin.Context) {
	if cached, found := h.cache.Get(projectListCacheKey); found {
		respondOK(c, cached)
		return
	}

	projects, err := h.repos.Project.List(c.Request.Context())
	if err != nil {
		respondInternal(c, h.log, err, "list projects")
		return
	}

	h.cache.Set(projectListCacheKey, projects, cache.DefaultExpiration)
	respondOK(c, projects)
}

// Get handles GET /api/projects/:id. Public.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	project, err := h.repos.Project.GetByID(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "get project")
		return
	}
	if project == nil {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}
	respondOK(c, project)
}

// Create handles POST /api/projects. Admin only.
func (h *ProjectHandler) Create(c *gin.Context) {
	var in models.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateProject(&in); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	project, err := h.repos.Project.Create(c.Request.Context(), &in)
	if err != nil {
		respondInternal(c, h.log, err, "create project")
		return
	}

	h.cache.Delete(projectListCacheKey)
	respondCreated(c, project)
}

// Update handles PUT /api/projects/:id. Admin only; only supplied
// fields change.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateProjectPatch(&patch); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	project, err := h.repos.Project.Update(c.Request.Context(), id, &patch)
	if err != nil {
		respondInternal(c, h.log, err, "update project")
		return
	}
	if project == nil {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}

	h.cache.Delete(projectListCacheKey)
	respondOK(c, project)
}

// Delete handles DELETE /api/projects/:id. Admin only.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.repos.Project.Delete(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "delete project")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}

	h.cache.Delete(projectListCacheKey)
	respondOK(c, gin.H{"deleted": true})
}
