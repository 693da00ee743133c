package dto

// ErrorCode represents application error categories
type ErrorCode string

// Error codes
const (
	ErrorCodeValidationError    ErrorCode = "VALIDATION_ERROR"
	ErrorCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeResourceNotFound   ErrorCode = "RESOURCE_NOT_FOUND"
	ErrorCodeResourceExists     ErrorCode = "RESOURCE_ALREADY_EXISTS"
	ErrorCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrorCodeForbidden          ErrorCode = "FORBIDDEN"
	ErrorCodeNotImplemented     ErrorCode = "NOT_IMPLEMENTED"
	ErrorCodeInternalError      ErrorCode = "INTERNAL_SERVER_ERROR"
)

// ErrorDetail contains detailed error information
type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}
