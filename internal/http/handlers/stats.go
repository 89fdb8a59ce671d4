package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/relearnhq/relearn-backend/internal/http/response"
	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/services"
)

type StatsHandler struct {
	log   *logger.Logger
	stats services.StatsService
}

func NewStatsHandler(log *logger.Logger, stats services.StatsService) *StatsHandler {
	return &StatsHandler{
		log:   log.With("handler", "StatsHandler"),
		stats: stats,
	}
}

// GET /api/stats
func (h *StatsHandler) Weekly(c *gin.Context) {
	stats, err := h.stats.Weekly(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, stats)
}
