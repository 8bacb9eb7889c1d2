package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// DashboardHandler handles dashboard aggregation endpoints
type DashboardHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(services *service.Services, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		services: services,
		log:      log.With().Str("handler", "dashboard").Logger(),
	}
}

// Search handles GET /v1/dashboard/search?q=<text>
func (h *DashboardHandler) Search(c *gin.Context) {
	results, err := h.services.Search.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, results)
}

// Stats handles GET /v1/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.services.Dashboard.ComputeStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, stats)
}
