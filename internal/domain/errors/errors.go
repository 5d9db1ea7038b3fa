// Package errors defines the application error taxonomy surfaced to callers.
package errors

import (
	"fmt"
	"net/http"

	"medishare/internal/errors"
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

// Is matches errors by business error code, so a WithDetails copy still
// compares equal to its predefined sentinel.
func (e *BaseError) Is(target error) bool {
	var baseErr *BaseError
	if !errors.As(target, &baseErr) {
		return false
	}

	return baseErr.errorCode == e.errorCode
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors: rejected before touching the store.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Admission errors: business rejections from the matching engine.
	ErrNoDonorInCity = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_DONOR_IN_CITY",
		"no approved donor found in the requested city",
		"",
	)

	ErrMedicineUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"MEDICINE_UNAVAILABLE",
		"the requested medicine is not available",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"quantity could not be interpreted as a positive amount",
		"",
	)

	// State errors: illegal lifecycle transitions.
	ErrAlreadyResolved = NewBaseError(
		http.StatusConflict,
		"REQUEST_ALREADY_RESOLVED",
		"the request has already been approved or rejected",
		"",
	)

	ErrRequestNotApproved = NewBaseError(
		http.StatusConflict,
		"REQUEST_NOT_APPROVED",
		"contact disclosure is only available for approved requests",
		"",
	)

	ErrDonationNotPending = NewBaseError(
		http.StatusConflict,
		"DONATION_NOT_PENDING",
		"only pending donations can be approved",
		"",
	)

	ErrDonationDeleted = NewBaseError(
		http.StatusConflict,
		"DONATION_DELETED",
		"the donation has already been removed",
		"",
	)

	// Not-found errors.
	ErrDonationNotFound = NewBaseError(
		http.StatusNotFound,
		"DONATION_NOT_FOUND",
		"donation not found",
		"",
	)

	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"request not found",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// InsufficientQuantityError is the admission rejection raised when the
// matched donation cannot cover the requested quantity. It carries the
// available amount so the caller can adjust the request.
type InsufficientQuantityError struct {
	available int
}

// NewInsufficientQuantityError creates an insufficient-quantity rejection.
func NewInsufficientQuantityError(available int) *InsufficientQuantityError {
	return &InsufficientQuantityError{available: available}
}

// Available returns the quantity the matched donation can still serve.
func (e *InsufficientQuantityError) Available() int {
	return e.available
}

// Error implements the error interface
func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("insufficient quantity: only %d available", e.available)
}

// HTTPCode returns the HTTP status code
func (e *InsufficientQuantityError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *InsufficientQuantityError) ErrorCode() string {
	return "INSUFFICIENT_QUANTITY"
}

// Message returns the user-friendly error message
func (e *InsufficientQuantityError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *InsufficientQuantityError) Details() string {
	return fmt.Sprintf("available=%d", e.available)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
