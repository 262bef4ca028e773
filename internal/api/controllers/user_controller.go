package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pico/internal/models/request_models"
	"pico/internal/services"
	"pico/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{userService: userService}
}

// Register godoc
// @Summary Register a user
// @Description Create a user account; registering an existing email is a no-op
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.RegisterUserRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users [post]
func (u *UserController) Register(c *gin.Context) {
	var req request_models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, existed, err := u.userService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if existed {
		utils.RespondSuccess(c, user, "user already existed")
		return
	}
	utils.RespondSuccess(c, user, "User registered successfully")
}

// GetByEmail godoc
// @Summary Get a user by email
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /user/{email} [get]
func (u *UserController) GetByEmail(c *gin.Context) {
	user, err := u.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

// GetAll godoc
// @Summary List all users
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users [get]
func (u *UserController) GetAll(c *gin.Context) {
	users, err := u.userService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// AdminStatus godoc
// @Summary Check whether a user is an admin
// @Description Callers may only query their own email
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/admin/{email} [get]
func (u *UserController) AdminStatus(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString("email") {
		utils.RespondError(c, http.StatusForbidden, "Forbidden: cannot query another user")
		return
	}

	admin, err := u.userService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"admin": admin}, "Admin status fetched successfully")
}

// UpdateRole godoc
// @Summary Update a user's role
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdateRoleRequest true "Role payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/updateRole/{id} [patch]
func (u *UserController) UpdateRole(c *gin.Context) {
	var req request_models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.UpdateRole(c.Request.Context(), c.Param("id"), req.UpdatedRole); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Role updated successfully")
}

// Delete godoc
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/delete/{id} [delete]
func (u *UserController) Delete(c *gin.Context) {
	if err := u.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}

// TopEarners godoc
// @Summary List the six highest-earning workers
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /top-earners [get]
func (u *UserController) TopEarners(c *gin.Context) {
	earners, err := u.userService.TopEarners(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, earners, "Top earners fetched successfully")
}
