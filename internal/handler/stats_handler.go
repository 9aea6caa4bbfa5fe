package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memeboard-api/internal/response"
	"memeboard-api/internal/service"
)

// StatsHandler serves the launch statistics endpoint
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stats)
}
