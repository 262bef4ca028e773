package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pico/internal/models/request_models"
	"pico/internal/services"
	"pico/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreateIntent godoc
// @Summary Create a payment intent
// @Description Open a card payment intent for price*100 minor units and return its client secret
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateIntentRequest true "Intent payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /create-payment-intent [post]
func (p *PaymentController) CreateIntent(c *gin.Context) {
	var req request_models.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	clientSecret, err := p.paymentService.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"clientSecret": clientSecret}, "Payment intent created successfully")
}

// ListByEmail godoc
// @Summary List payments for an email
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payment/get/{email} [get]
func (p *PaymentController) ListByEmail(c *gin.Context) {
	payments, err := p.paymentService.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payments, "Payments fetched successfully")
}

// Record godoc
// @Summary Record a confirmed payment and credit coins
// @Description Verify the intent with the processor and credit coins derived from the confirmed amount
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.RecordPaymentRequest true "Record payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payment/update/{email} [patch]
func (p *PaymentController) Record(c *gin.Context) {
	var req request_models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	payment, err := p.paymentService.Record(c.Request.Context(), c.Param("email"), req.IntentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payment, "Payment recorded successfully")
}
