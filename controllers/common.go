package controllers

import (
	apperrors "pms/errors"
	"pms/response"
	"pms/utils"

	"github.com/gin-gonic/gin"
)

// handleAppError maps the engine's error taxonomy to HTTP responses.
func handleAppError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		utils.LogError("unclassified error: %v", err)
		response.ServerError(c)
		return
	}

	switch {
	case apperrors.IsValidation(err):
		response.ValidationError(c, appErr.Message)
	case apperrors.IsNotFound(err):
		response.NotFound(c, appErr.Message)
	case apperrors.IsConflict(err):
		response.Conflict(c, appErr.Message)
	default:
		utils.LogError("storage error: %v", err)
		response.ServerError(c)
	}
}
