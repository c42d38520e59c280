package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/eduhub/internal/app/models/dto"
	"github.com/mertkaya/eduhub/internal/pkg/apperrors"
	"github.com/mertkaya/eduhub/internal/pkg/logger"
)

// HandleAPIError translates service errors into HTTP responses. Callers pass
// every non-nil service error here instead of building responses themselves.
func HandleAPIError(c *gin.Context, err error) {
	status, errorDetail := classifyError(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
	}

	c.JSON(status, dto.NewErrorResponse(errorDetail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	// Wrapped CustomError messages carry the operation-specific text.
	message := err.Error()

	switch {
	case isNotFound(err):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, message)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")

	case apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrCategoryHasCourses),
		errors.Is(err, apperrors.ErrUserIsNotInstructor),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)

	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound) ||
		errors.Is(err, apperrors.ErrUserNotFound) ||
		errors.Is(err, apperrors.ErrRoleNotFound) ||
		errors.Is(err, apperrors.ErrCourseNotFound) ||
		errors.Is(err, apperrors.ErrInstructorNotFound) ||
		errors.Is(err, apperrors.ErrCategoryNotFound) ||
		errors.Is(err, apperrors.ErrEnrollmentNotFound)
}
