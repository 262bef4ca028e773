package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pico/internal/models/request_models"
	"pico/internal/services"
	"pico/pkg/utils"
)

type WithdrawalController struct {
	withdrawalService services.WithdrawalServiceInterface
}

func NewWithdrawalController(withdrawalService services.WithdrawalServiceInterface) *WithdrawalController {
	return &WithdrawalController{withdrawalService: withdrawalService}
}

// Create godoc
// @Summary Request a withdrawal
// @Tags Withdrawals
// @Accept json
// @Produce json
// @Param request body request_models.CreateWithdrawalRequest true "Withdrawal payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /withdrawals [post]
func (w *WithdrawalController) Create(c *gin.Context) {
	var req request_models.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	withdrawal, err := w.withdrawalService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, withdrawal, "Withdrawal request created successfully")
}

// ListAll godoc
// @Summary List pending withdrawal requests
// @Tags Withdrawals
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /withdrawals [get]
func (w *WithdrawalController) ListAll(c *gin.Context) {
	withdrawals, err := w.withdrawalService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, withdrawals, "Withdrawal requests fetched successfully")
}

// Resolve godoc
// @Summary Resolve a withdrawal request
// @Description Delete the request and debit the worker by the stored coin amount
// @Tags Withdrawals
// @Accept json
// @Produce json
// @Param request body request_models.ResolveWithdrawalRequest true "Resolve payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /withdrawals/resolve [post]
func (w *WithdrawalController) Resolve(c *gin.Context) {
	var req request_models.ResolveWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	withdrawal, err := w.withdrawalService.Resolve(c.Request.Context(), req.WithdrawID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, withdrawal, "Withdrawal resolved successfully")
}
