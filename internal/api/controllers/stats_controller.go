package controllers

import (
	"github.com/gin-gonic/gin"

	"pico/internal/services"
	"pico/pkg/utils"
)

type StatsController struct {
	statsService services.StatsServiceInterface
}

func NewStatsController(statsService services.StatsServiceInterface) *StatsController {
	return &StatsController{statsService: statsService}
}

// AdminState godoc
// @Summary Platform-wide totals
// @Description User count, summed coin balances and summed payment volume
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin-state [get]
func (s *StatsController) AdminState(c *gin.Context) {
	state, err := s.statsService.AdminState(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Admin state fetched successfully")
}

// CreatorState godoc
// @Summary Totals for a task creator
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /task-creator-state/{email} [get]
func (s *StatsController) CreatorState(c *gin.Context) {
	state, err := s.statsService.CreatorState(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Creator state fetched successfully")
}

// WorkerState godoc
// @Summary Totals for a worker
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /worker-state/{email} [get]
func (s *StatsController) WorkerState(c *gin.Context) {
	state, err := s.statsService.WorkerState(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Worker state fetched successfully")
}
