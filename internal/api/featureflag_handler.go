package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

const maintenanceCacheKey = "flag:maintenance"

// maintenanceCacheTTL is short so flipping the flag takes effect
// quickly without hammering the database from the public site.
const maintenanceCacheTTL = 30 * time.Second

// FeatureFlagHandler handles feature flag endpoints
type FeatureFlagHandler struct {
	repos *repository.Repositories
	cache *cache.Cache
	log   zerolog.Logger
}

// NewFeatureFlagHandler creates a new FeatureFlagHandler
func NewFeatureFlagHandler(repos *repository.Repositories, store *cache.Cache, log zerolog.Logger) *FeatureFlagHandler {
	return &FeatureFlagHandler{
		repos: repos,
		cache: store,
		log:   log.With().Str("handler", "feature-flags").Logger(),
	}
}

// Maintenance handles GET /api/feature-flags/maintenance. Public and
// unauthenticated so the site can gate itself without admin
// credentials. A missing flag reads as disabled.
func (h *FeatureFlagHandler) Maintenance(c *gin.Context) {
	if cached, found := h.cache.Get(maintenanceCacheKey); found {
		respondOK(c, cached)
		return
	}

	flag, err := h.repos.Flag.GetByName(c.Request.Context(), models.MaintenanceFlagName)
	if err != nil {
		respondInternal(c, h.log, err, "get maintenance flag")
		return
	}

	result := gin.H{"name": models.MaintenanceFlagName, "enabled": false}
	if flag != nil {
		result["enabled"] = flag.Enabled
	}

	h.cache.Set(maintenanceCacheKey, result, maintenanceCacheTTL)
	respondOK(c, result)
}

// List handles GET /api/feature-flags. Admin only.
func (h *FeatureFlagHandler) List(c *gin.Context) {
	flags, err := h.repos.Flag.List(c.Request.Context())
	if err != nil {
		respondInternal(c, h.log, err, "list feature flags")
		return
	}
	respondOK(c, flags)
}

// Get handles GET /api/feature-flags/:id. Admin only.
func (h *FeatureFlagHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	flag, err := h.repos.Flag.GetByID(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "get feature flag")
		return
	}
	if flag == nil {
		respondError(c, http.StatusNotFound, "feature flag not found")
		return
	}
	respondOK(c, flag)
}

// Create handles POST /api/feature-flags. Admin only. Flag names are
// globally unique.
func (h *FeatureFlagHandler) Create(c *gin.Context) {
	var in models.FeatureFlagInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateFeatureFlag(&in); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	flag, err := h.repos.Flag.Create(c.Request.Context(), &in)
	if err != nil {
		if database.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "feature flag name already in use")
			return
		}
		respondInternal(c, h.log, err, "create feature flag")
		return
	}

	h.cache.Delete(maintenanceCacheKey)
	respondCreated(c, flag)
}

// Update handles PUT /api/feature-flags/:id. Admin only. A bare
// {"enabled": true} body toggles the flag without the full record.
func (h *FeatureFlagHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.FeatureFlagPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateFeatureFlagPatch(&patch); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	flag, err := h.repos.Flag.Update(c.Request.Context(), id, &patch)
	if err != nil {
		if database.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "feature flag name already in use")
			return
		}
		respondInternal(c, h.log, err, "update feature flag")
		return
	}
	if flag == nil {
		respondError(c, http.StatusNotFound, "feature flag not found")
		return
	}

	h.cache.Delete(maintenanceCacheKey)
	respondOK(c, flag)
}

// Delete handles DELETE /api/feature-flags/:id. Admin only.
func (h *FeatureFlagHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.repos.Flag.Delete(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "delete feature flag")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "feature flag not found")
		return
	}

	h.cache.Delete(maintenanceCacheKey)
	respondOK(c, gin.H{"deleted": true})
}
