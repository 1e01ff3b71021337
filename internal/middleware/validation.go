package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

// BindJSON decodes the request body into obj. On failure it answers with a 400 envelope naming the
// offending field and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleAPIError(c, bindingError(err))
		return false
	}
	return true
}

// bindingError turns a bind failure into a validation error naming the offending field.
func bindingError(err error) *apperrors.CustomError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		messages := make([]string, 0, len(validationErrs))
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			field := strings.ToLower(fe.Field())
			fields = append(fields, field)
			switch fe.Tag() {
			case "required":
				messages = append(messages, field+" is required")
			default:
				messages = append(messages, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
			}
		}
		invalid := apperrors.NewCustomError(apperrors.ErrValidationFailed, strings.Join(messages, ", ")).WithField(fields[0])
		if len(fields) > 1 {
			invalid.WithDetails(map[string]interface{}{"fields": fields})
		}
		return invalid
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, fmt.Sprintf("%s has the wrong type", typeErr.Field)).
			WithField(typeErr.Field)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Request body must be valid JSON")
	}

	return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid request: "+err.Error())
}
