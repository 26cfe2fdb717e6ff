// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoplist/backend/internal/application/usecase/stats"
	"github.com/shoplist/backend/internal/integration/entrypoint/dto"
	"github.com/shoplist/backend/internal/integration/entrypoint/middleware"
)

// StatsController handles personal statistics endpoints.
type StatsController struct {
	computeUseCase *stats.ComputeStatsUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(computeUseCase *stats.ComputeStatsUseCase) *StatsController {
	return &StatsController{
		computeUseCase: computeUseCase,
	}
}

// Get handles GET /stats requests.
func (c *StatsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.computeUseCase.Execute(ctx.Request.Context(), stats.ComputeStatsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatsResponse(output.Snapshot))
}
