package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPhoneAlreadyExists = errors.New("phone number already exists")
	ErrRoleNotFound       = errors.New("role not found")
)

// Course errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrInstructorNotFound  = errors.New("instructor not found")
	ErrUserIsNotInstructor = errors.New("referenced user does not hold the instructor role")
)

// Category errors
var (
	ErrCategoryNotFound      = errors.New("course category not found")
	ErrCategoryAlreadyExists = errors.New("course category with this name already exists")
	ErrCategoryHasCourses    = errors.New("course category has courses and cannot be deleted")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound      = errors.New("enrollment not found")
	ErrEnrollmentAlreadyExists = errors.New("user is already enrolled in this course")
)

// Content errors
var (
	ErrInvalidFormat = errors.New("invalid token format")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a new custom error for validation failures with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// IsAlreadyExists reports whether err represents a uniqueness violation.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrResourceAlreadyExists) ||
		errors.Is(err, ErrEmailAlreadyExists) ||
		errors.Is(err, ErrPhoneAlreadyExists) ||
		errors.Is(err, ErrCategoryAlreadyExists) ||
		errors.Is(err, ErrEnrollmentAlreadyExists)
}
