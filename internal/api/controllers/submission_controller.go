package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pico/internal/models/request_models"
	"pico/internal/services"
	"pico/pkg/utils"
)

type SubmissionController struct {
	submissionService services.SubmissionServiceInterface
}

func NewSubmissionController(submissionService services.SubmissionServiceInterface) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// Create godoc
// @Summary Submit work against a task
// @Description Insert a pending submission and decrement the task's remaining quantity
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubmissionRequest true "Submission payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /submissions [post]
func (s *SubmissionController) Create(c *gin.Context) {
	var req request_models.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := s.submissionService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Submission created successfully")
}

// ListByWorker godoc
// @Summary List a worker's submissions
// @Tags Submissions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /submissions/worker/{email} [get]
func (s *SubmissionController) ListByWorker(c *gin.Context) {
	subs, err := s.submissionService.ListByWorker(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "Submissions fetched successfully")
}

// ListMinePaged godoc
// @Summary Page through a worker's submissions
// @Description Fixed page size of two, zero-based page index
// @Tags Submissions
// @Produce json
// @Param workerEmail query string true "Worker email"
// @Param page query int false "Zero-based page"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /mySubmissions [get]
func (s *SubmissionController) ListMinePaged(c *gin.Context) {
	email := c.Query("workerEmail")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "workerEmail is required")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "page must be an integer")
		return
	}

	subs, svcErr := s.submissionService.ListByWorkerPaged(c.Request.Context(), email, page)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, subs, "Submissions fetched successfully")
}

// CountMine godoc
// @Summary Count a worker's submissions
// @Tags Submissions
// @Produce json
// @Param workerEmail query string true "Worker email"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /mySubmissionCount [get]
func (s *SubmissionController) CountMine(c *gin.Context) {
	email := c.Query("workerEmail")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "workerEmail is required")
		return
	}

	count, err := s.submissionService.CountByWorker(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"count": count}, "Submission count fetched successfully")
}

// ListByCreator godoc
// @Summary List submissions against a creator's tasks
// @Tags Submissions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /submissions/creator/{email} [get]
func (s *SubmissionController) ListByCreator(c *gin.Context) {
	subs, err := s.submissionService.ListByCreator(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "Submissions fetched successfully")
}

// Approve godoc
// @Summary Approve a submission
// @Description Set the status to approve and credit the worker by the submission's payableAmount
// @Tags Submissions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /submissions/approve/{id} [patch]
func (s *SubmissionController) Approve(c *gin.Context) {
	sub, err := s.submissionService.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Submission approved successfully")
}

// Reject godoc
// @Summary Reject a submission
// @Description Set the status to rejected; no coins are credited
// @Tags Submissions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /submissions/reject/{id} [patch]
func (s *SubmissionController) Reject(c *gin.Context) {
	sub, err := s.submissionService.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Submission rejected successfully")
}
