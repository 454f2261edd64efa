package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/auth"
	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// AuthHandler handles login and self-service account endpoints
type AuthHandler struct {
	repos  *repository.Repositories
	issuer *auth.Issuer
	log    zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(repos *repository.Repositories, issuer *auth.Issuer, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		repos:  repos,
		issuer: issuer,
		log:    log.With().Str("handler", "auth").Logger(),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Login handles POST /api/auth/login. Unknown email and wrong password
// produce the same response so accounts cannot be enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.repos.User.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondInternal(c, h.log, err, "login lookup")
		return
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.issuer.IssueToken(user)
	if err != nil {
		respondInternal(c, h.log, err, "issue token")
		return
	}

	respondOK(c, gin.H{"token": token, "user": user})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	respondOK(c, ident)
}

// Logout handles POST /api/auth/logout. Sessions are stateless tokens,
// so the server only acknowledges; the client discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	respondOK(c, gin.H{"logged_out": true})
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateProfilePatch(&patch); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	user, err := h.repos.User.UpdateProfile(c.Request.Context(), ident.ID, &patch)
	if err != nil {
		if database.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "email already in use")
			return
		}
		respondInternal(c, h.log, err, "update profile")
		return
	}
	if user == nil {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}
	respondOK(c, user)
}

// ChangePassword handles PUT /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidatePasswordChange(req.CurrentPassword, req.NewPassword); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	user, err := h.repos.User.GetByID(c.Request.Context(), ident.ID)
	if err != nil {
		respondInternal(c, h.log, err, "change password lookup")
		return
	}
	if user == nil {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		respondError(c, http.StatusUnauthorized, "current password is incorrect")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		respondInternal(c, h.log, err, "hash password")
		return
	}
	if err := h.repos.User.UpdatePassword(c.Request.Context(), ident.ID, hash); err != nil {
		respondInternal(c, h.log, err, "update password")
		return
	}

	respondOK(c, gin.H{"changed": true})
}
