package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// HandleAPIError maps an application error to a status code and error envelope.
// Store rejections are reported as 500 and never translated into conflicts.
func HandleAPIError(c *gin.Context, err error) {
	var (
		verr       *apperrors.ValidationError
		customErr  *apperrors.CustomError
		storageErr *apperrors.StorageError
	)

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewValidationErrorDetail(verr)))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"),
		))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		message := "Resource not found"
		if errors.As(err, &customErr) && customErr.Message != "" {
			message = customErr.Message
		}
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message).WithSeverity(dto.ErrorSeverityWarning),
		))
	case errors.Is(err, apperrors.ErrBadRequest):
		message := "Bad request"
		if errors.As(err, &customErr) && customErr.Message != "" {
			message = customErr.Message
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, message).WithSeverity(dto.ErrorSeverityWarning),
		))
	case errors.Is(err, apperrors.ErrConnection):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Store unreachable")
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unavailable").WithSeverity(dto.ErrorSeverityCritical),
		))
	case errors.As(err, &storageErr):
		logger.Error().Err(err).
			Str("path", c.FullPath()).
			Str("op", storageErr.Op).
			Str("constraint", storageErr.Constraint).
			Msg("Store rejected request")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
