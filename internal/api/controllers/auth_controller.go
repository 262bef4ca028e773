package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pico/internal/models/request_models"
	"pico/pkg/utils"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// IssueToken godoc
// @Summary Issue an access token
// @Description Sign a bearer token for the given email, valid for 5 hours
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.TokenRequest true "Token payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /jwt [post]
func (a *AuthController) IssueToken(c *gin.Context) {
	var req request_models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := utils.CreateToken(req.Email)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not sign token")
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Token issued successfully")
}
