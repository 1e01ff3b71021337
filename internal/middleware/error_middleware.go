package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// HandleAPIError maps an error to a status code and answers with a failure envelope.
// A CustomError message is passed through verbatim; bare sentinels get a fixed message.
func HandleAPIError(c *gin.Context, err error) {
	status, code, fallback := classify(err)

	message, ok := apperrors.Message(err)
	if !ok {
		message = fallback
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}

	c.AbortWithStatusJSON(status, dto.Fail(message, errorDetail(err, code)))
}

// errorDetail copies the field and details of a CustomError next to the error code.
func errorDetail(err error, code dto.ErrorCode) *dto.ErrorDetail {
	detail := dto.NewErrorDetail(code)
	var custom *apperrors.CustomError
	if !errors.As(err, &custom) {
		return detail
	}
	if custom.Field != "" {
		detail.WithField(custom.Field)
	}
	if len(custom.Details) > 0 {
		detail.WithDetails(custom.Details)
	}
	return detail
}

func classify(err error) (int, dto.ErrorCode, string) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Session expired, please log in again"
	case errors.Is(err, apperrors.ErrTokenMissing):
		return http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Authentication required"
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"
	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"
	}
}

// Recovery turns a panic into a 500 envelope instead of gin's empty body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.Fail("Internal server error", dto.NewErrorDetail(dto.ErrorCodeInternalServer)))
	})
}

// NoRoute answers unknown paths with the envelope.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.Fail("Endpoint not found", dto.NewErrorDetail(dto.ErrorCodeResourceNotFound)))
}
