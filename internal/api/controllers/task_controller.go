package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pico/internal/models/request_models"
	"pico/internal/services"
	"pico/pkg/utils"
)

type TaskController struct {
	taskService services.TaskServiceInterface
}

func NewTaskController(taskService services.TaskServiceInterface) *TaskController {
	return &TaskController{taskService: taskService}
}

// Create godoc
// @Summary Create a task
// @Description Insert a task and debit the creator by payableAmount*taskQuantity
// @Tags Tasks
// @Accept json
// @Produce json
// @Param request body request_models.CreateTaskRequest true "Task payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tasks [post]
func (t *TaskController) Create(c *gin.Context) {
	var req request_models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := t.taskService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, task, "Task created successfully")
}

// GetByID godoc
// @Summary Get a task by id
// @Tags Tasks
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /task/{id} [get]
func (t *TaskController) GetByID(c *gin.Context) {
	task, err := t.taskService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, task, "Task fetched successfully")
}

// ListAll godoc
// @Summary List all tasks
// @Tags Tasks
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tasks [get]
func (t *TaskController) ListAll(c *gin.Context) {
	tasks, err := t.taskService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tasks, "Tasks fetched successfully")
}

// ListByCreator godoc
// @Summary List a creator's tasks
// @Tags Tasks
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tasks/{email} [get]
func (t *TaskController) ListByCreator(c *gin.Context) {
	tasks, err := t.taskService.ListByCreator(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tasks, "Tasks fetched successfully")
}

// ListAvailable godoc
// @Summary List tasks open for submissions
// @Description Tasks with more than one remaining unit
// @Tags Tasks
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /task-list [get]
func (t *TaskController) ListAvailable(c *gin.Context) {
	tasks, err := t.taskService.ListAvailable(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tasks, "Tasks fetched successfully")
}

// Update godoc
// @Summary Update a task's descriptive fields
// @Tags Tasks
// @Accept json
// @Produce json
// @Param request body request_models.UpdateTaskRequest true "Partial task payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /task/update/{id} [patch]
func (t *TaskController) Update(c *gin.Context) {
	var req request_models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := t.taskService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Task updated successfully")
}

// Delete godoc
// @Summary Delete a task
// @Description Remove the task and refund the creator by the remaining quantity times payableAmount
// @Tags Tasks
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (t *TaskController) Delete(c *gin.Context) {
	task, err := t.taskService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, task, "Task deleted successfully")
}
