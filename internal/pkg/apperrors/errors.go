package apperrors

import "errors"

// Organization errors
var (
	ErrOrganizationNotFound      = errors.New("organization not found")
	ErrOrganizationAlreadyExists = errors.New("organization with this id or name already exists")
)

// User and membership errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this id or email already exists")
	ErrInvalidSpecialty  = errors.New("specialty does not exist for this organization")
)

// Event and booking errors
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingAlreadyExists = errors.New("booking for this user and event already exists")
)

// Voting errors
var (
	ErrInvalidUser = errors.New("vote cast by unknown user")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// Infrastructure errors
var (
	// ErrInternal covers any unanticipated database failure, including
	// connectivity loss. Repositories never let a raw driver error escape
	// as the error identity; they wrap it under ErrInternal instead.
	ErrInternal = errors.New("internal error")

	// ErrNotImplemented marks operations whose semantics are undefined,
	// such as cascading organization deletion.
	ErrNotImplemented = errors.New("not implemented")
)

// Is reports whether err matches target or any error in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError carries additional context alongside a sentinel error.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping a sentinel error.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
