package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

const defaultRecentEvents = 50

// AnalyticsHandler handles analytics endpoints
type AnalyticsHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(repos *repository.Repositories, log zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		repos: repos,
		log:   log.With().Str("handler", "analytics").Logger(),
	}
}

// Track handles POST /api/analytics/track. Public and unauthenticated.
// Reports for the same (session_id, page_path) accumulate into one row.
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var in models.TrackInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateTrack(&in); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	if err := h.repos.Analytics.UpsertVisit(c.Request.Context(), &in); err != nil {
		respondInternal(c, h.log, err, "track visit")
		return
	}
	respondOK(c, gin.H{"tracked": true})
}

// Overview handles GET /api/analytics/overview. Admin only.
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.repos.Analytics.Overview(c.Request.Context())
	if err != nil {
		respondInternal(c, h.log, err, "analytics overview")
		return
	}
	respondOK(c, overview)
}

// Detailed handles GET /api/analytics/detailed. Admin only.
func (h *AnalyticsHandler) Detailed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = defaultRecentEvents
	}

	detailed, err := h.repos.Analytics.Detailed(c.Request.Context(), limit)
	if err != nil {
		respondInternal(c, h.log, err, "analytics detailed")
		return
	}
	respondOK(c, detailed)
}
