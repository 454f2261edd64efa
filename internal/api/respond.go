package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// Response is the uniform envelope for every endpoint
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Error: message})
}

// respondValidation reports every violated field, not just the first
func respondValidation(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Error:   "validation failed",
		Details: errs,
	})
}

// respondInternal logs the underlying failure server-side and returns
// a generic message so storage error text never crosses the boundary.
func respondInternal(c *gin.Context, log zerolog.Logger, err error, operation string) {
	log.Error().Err(err).Str("operation", operation).Msg("Internal error")
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Error:   "internal server error",
	})
}

// parseID extracts the numeric :id path parameter. Responds with 400
// and reports false when it is not a number.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
