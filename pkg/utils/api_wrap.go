package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrTaskNotFound):
		RespondError(c, http.StatusNotFound, "Task not found")
	case errors.Is(err, ErrSubmissionNotFound):
		RespondError(c, http.StatusNotFound, "Submission not found")
	case errors.Is(err, ErrWithdrawalNotFound):
		RespondError(c, http.StatusNotFound, "Withdrawal request not found")
	case errors.Is(err, ErrIntentNotFound):
		RespondError(c, http.StatusNotFound, "Payment intent not found")
	case errors.Is(err, ErrIntentNotConfirmed):
		RespondError(c, http.StatusConflict, "Payment intent is not confirmed")
	case errors.Is(err, ErrSubmissionResolved):
		RespondError(c, http.StatusConflict, "Submission has already been resolved")
	case errors.Is(err, ErrInvalidID):
		RespondError(c, http.StatusBadRequest, "Invalid id parameter")
	case errors.Is(err, ErrInvalidRole):
		RespondError(c, http.StatusBadRequest, "Role must be worker, taskCreator or admin")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be zero or greater")
	case errors.Is(err, ErrNothingToUpdate):
		RespondError(c, http.StatusBadRequest, "No updatable fields submitted")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled service error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
