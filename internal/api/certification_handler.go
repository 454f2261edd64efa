package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// CertificationHandler handles certification endpoints
type CertificationHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewCertificationHandler creates a new CertificationHandler
func NewCertificationHandler(repos *repository.Repositories, log zerolog.Logger) *CertificationHandler {
	return &CertificationHandler{
		repos: repos,
		log:   log.With().Str("handler", "certifications").Logger(),
	}
}

// List handles GET /api/certifications. Public. Each record carries a
// derived is_expired indicator computed against the current time.
func (h *CertificationHandler) List(c *gin.Context) {
	certs, err := h.repos.Cert.List(c.Request.Context())
	if err != nil {
		respondInternal(c, h.log, err, "list certifications")
		return
	}
	respondOK(c, certs)
}

// Get handles GET /api/certifications/:id. Public.
func (h *CertificationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cert, err := h.repos.Cert.GetByID(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "get certification")
		return
	}
	if cert == nil {
		respondError(c, http.StatusNotFound, "certification not found")
		return
	}
	respondOK(c, cert)
}

// Create handles POST /api/certifications. Admin only.
func (h *CertificationHandler) Create(c *gin.Context) {
	var in models.CertificationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateCertification(&in); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	cert, err := h.repos.Cert.Create(c.Request.Context(), &in)
	if err != nil {
		respondInternal(c, h.log, err, "create certification")
		return
	}
	respondCreated(c, cert)
}

// Update handles PUT /api/certifications/:id. Admin only.
func (h *CertificationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.CertificationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateCertificationPatch(&patch); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	cert, err := h.repos.Cert.Update(c.Request.Context(), id, &patch)
	if err != nil {
		respondInternal(c, h.log, err, "update certification")
		return
	}
	if cert == nil {
		respondError(c, http.StatusNotFound, "certification not found")
		return
	}
	respondOK(c, cert)
}

// Delete handles DELETE /api/certifications/:id. Admin only.
func (h *CertificationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.repos.Cert.Delete(c.Request.Context(), id)
	if err != nil {
		respondInternal(c, h.log, err, "delete certification")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "certification not found")
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
