package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("username or email already exists")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Resource errors
	ErrBatchNotFound    = errors.New("batch not found")
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrMaterialNotFound = errors.New("material not found")

	// Validation errors
	ErrInvalidSubjectName = errors.New("invalid subject name")
	ErrBadRequest         = errors.New("bad request")
)
