package api

import (
	"errors"
	"net/http"

	"fitsphere/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors to status codes. Anything unknown is
// logged and reported as a generic 500.
func respondError(c *gin.Context, logger *zap.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidPlanParams),
		errors.Is(err, service.ErrInvalidImage),
		errors.Is(err, service.ErrRestDay):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrAchievementExists):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		_ = c.Error(err)
		logger.Error(internalMsg, zap.String("path", c.FullPath()), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, internalMsg)
	}
}
