package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/news-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// respond wraps data in the uniform success envelope
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondError wraps a message in the uniform failure envelope
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondServiceError maps the service error taxonomy onto HTTP status
// codes. Anything outside the taxonomy is an internal failure: the original
// error is logged and the client only sees a generic message.
func respondServiceError(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

// parseIntQuery reads an integer query parameter with a default
func parseIntQuery(c *gin.Context, key string, defaultValue int) int {
	if value := c.Query(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
