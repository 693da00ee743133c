package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bde-polytech/backend/internal/app/models/dto"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
	"github.com/bde-polytech/backend/internal/pkg/auth"
	"github.com/bde-polytech/backend/internal/pkg/logger"
)

// HandleAPIError maps domain errors onto HTTP responses. Every controller
// funnels its errors through here so status codes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	status, code := classify(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Internal server error")
		// Internal causes stay out of responses
		c.JSON(status, dto.NewErrorResponse(code, "An internal error occurred"))
		return
	}

	c.JSON(status, dto.NewErrorResponse(code, err.Error()))
}

func classify(err error) (int, dto.ErrorCode) {
	switch {
	case apperrors.Is(err, apperrors.ErrOrganizationNotFound),
		apperrors.Is(err, apperrors.ErrUserNotFound),
		apperrors.Is(err, apperrors.ErrEventNotFound),
		apperrors.Is(err, apperrors.ErrBookingNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound

	case apperrors.Is(err, apperrors.ErrOrganizationAlreadyExists),
		apperrors.Is(err, apperrors.ErrUserAlreadyExists),
		apperrors.Is(err, apperrors.ErrBookingAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceExists

	case apperrors.Is(err, apperrors.ErrInvalidSpecialty),
		apperrors.Is(err, apperrors.ErrInvalidUser),
		apperrors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationError

	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials

	case apperrors.Is(err, apperrors.ErrTokenExpired),
		apperrors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.ErrorCodeUnauthorized

	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden

	case apperrors.Is(err, apperrors.ErrNotImplemented):
		return http.StatusNotImplemented, dto.ErrorCodeNotImplemented

	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalError
	}
}
