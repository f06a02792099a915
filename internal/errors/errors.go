// Package errors provides custom error types for the Rentbook API.
// All service-layer errors should use AppError so that handlers produce
// consistent responses without leaking internal detail to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors. ErrInvalidCredentials deliberately
// carries one message for both the unknown-subject and wrong-secret cases.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Unauthorized", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password.", StatusCode: http.StatusUnauthorized}
	ErrInvalidPIN         = &AppError{Code: "INVALID_CREDENTIALS", Message: "There was an error with your house/pin combination. Please try again", StatusCode: http.StatusUnauthorized}
	ErrTooManyAttempts    = &AppError{Code: "TOO_MANY_ATTEMPTS", Message: "Too many login attempts. Please try again later.", StatusCode: http.StatusTooManyRequests}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Something went wrong.", StatusCode: http.StatusInternalServerError}
)

// House errors.
var (
	ErrHouseNotFound  = &AppError{Code: "HOUSE_NOT_FOUND", Message: "House not found", StatusCode: http.StatusNotFound}
	ErrHouseHasRenter = &AppError{Code: "HOUSE_HAS_RENTERS", Message: "House still has renters assigned to it", StatusCode: http.StatusConflict}
)

// Renter errors.
var (
	ErrRenterNotFound = &AppError{Code: "RENTER_NOT_FOUND", Message: "Renter not found", StatusCode: http.StatusNotFound}
	ErrRenterHasBills = &AppError{Code: "RENTER_HAS_BILLS", Message: "Renter still has bills on record", StatusCode: http.StatusConflict}
	ErrDuplicatePIN   = &AppError{Code: "DUPLICATE_PIN", Message: "A renter with this PIN already exists", StatusCode: http.StatusConflict}
)

// Bill errors.
var (
	ErrBillNotFound      = &AppError{Code: "BILL_NOT_FOUND", Message: "Bill not found", StatusCode: http.StatusNotFound}
	ErrInvalidBillStatus = &AppError{Code: "INVALID_BILL_STATUS", Message: "Unknown bill status", StatusCode: http.StatusBadRequest}
)
