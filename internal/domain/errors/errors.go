// Package errors defines the application error taxonomy shared by the remote
// and local data paths.
package errors

import (
	"net/http"

	"foodies/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// ErrNetworkUnavailable marks failures where no response reached the
	// client at all. The orchestration layer treats this kind, and only this
	// kind, as permission to fall back to the local dataset.
	ErrNetworkUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"NETWORK_UNAVAILABLE",
		"Backend server is not available",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"User not authenticated",
		"",
	)

	// Catalog-related errors
	ErrFoodNotFound = NewBaseError(
		http.StatusNotFound,
		"FOOD_NOT_FOUND",
		"Food item not found",
		"",
	)

	// Cart-related errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Item not found in cart",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"Unknown order status",
		"",
	)

	ErrPaymentVerificationFailed = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_VERIFICATION_FAILED",
		"Payment signature verification failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// HTTPError represents an error status returned by the remote backend,
// normalized to {message, status, data}. It implements the AppError interface.
type HTTPError struct {
	status  int
	message string
	data    any
}

// NewHTTPError creates an error from a backend response.
func NewHTTPError(status int, message string, data any) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}

	return &HTTPError{
		status:  status,
		message: message,
		data:    data,
	}
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *HTTPError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *HTTPError) ErrorCode() string {
	return "HTTP_ERROR"
}

// Message returns the user-friendly error message
func (e *HTTPError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *HTTPError) Details() string {
	return ""
}

// Data returns the decoded error payload, if the backend sent one.
func (e *HTTPError) Data() any {
	return e.data
}
