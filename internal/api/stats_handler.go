package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// StatsHandler handles view/like tracking endpoints
type StatsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(services *service.Services, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		services: services,
		log:      log.With().Str("handler", "stats").Logger(),
	}
}

// PostArticleStats handles POST /v1/articles/:id/stats
func (h *StatsHandler) PostArticleStats(c *gin.Context) {
	var req models.StatsEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "action is required")
		return
	}

	result, err := h.services.Stats.RecordArticleEvent(
		c.Request.Context(), c.Param("id"), req.Action, req.UserID, c.ClientIP())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, result)
}

// GetArticleStats handles GET /v1/articles/:id/stats
func (h *StatsHandler) GetArticleStats(c *gin.Context) {
	stats, err := h.services.Stats.GetArticleStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, stats)
}

// PostVideoStats handles POST /v1/videos/:id/stats
func (h *StatsHandler) PostVideoStats(c *gin.Context) {
	// Body is optional for video views; only userId is read from it
	var req struct {
		UserID string `json:"userId"`
	}
	_ = c.ShouldBindJSON(&req)

	result, err := h.services.Stats.RecordVideoView(
		c.Request.Context(), c.Param("id"), req.UserID, c.ClientIP())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, result)
}

// GetVideoStats handles GET /v1/videos/:id/stats
func (h *StatsHandler) GetVideoStats(c *gin.Context) {
	stats, err := h.services.Stats.GetVideoStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, stats)
}
