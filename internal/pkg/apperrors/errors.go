package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenMissing       = errors.New("authorization token required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	ErrInternal = errors.New("internal server error")
)

// Domain lookups that surface their own message to the portal.
var (
	ErrStudentNotFound     = NewResourceNotFoundError("Student not found")
	ErrPlacementNotFound   = NewResourceNotFoundError("Placement record not found")
	ErrJobNotFound         = NewResourceNotFoundError("Job notification not found")
	ErrExaminationNotFound = NewResourceNotFoundError("Examination not found")
	ErrDepartmentNotFound  = NewCustomError(ErrValidationFailed, "Department does not exist").WithField("dept_id")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError wraps ErrValidationFailed with a message meant for the caller.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewRequiredFieldError reports a missing request field by name.
func NewRequiredFieldError(field string) error {
	return NewCustomError(ErrValidationFailed, field+" is required").WithField(field)
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Message returns the caller-facing message carried by the first CustomError in the chain, if any.
func Message(err error) (string, bool) {
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message, true
	}
	return "", false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	// Field names the request field at fault, when there is one.
	Field   string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithField names the request field the error is about.
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}
