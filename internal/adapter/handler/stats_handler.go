package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dikdasmen/spmb-backend/internal/usecase/stats"
	"github.com/dikdasmen/spmb-backend/pkg/response"
)

// StatsHandler handles dashboard statistics requests
type StatsHandler struct {
	statsUseCase stats.UseCase
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsUseCase stats.UseCase) *StatsHandler {
	return &StatsHandler{statsUseCase: statsUseCase}
}

// Summary godoc
// @Summary Get role-shaped dashboard totals
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=stats.Summary}
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/stats/summary [get]
func (h *StatsHandler) Summary(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	summary, err := h.statsUseCase.Summary(c.Request.Context(), p)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, summary)
}
