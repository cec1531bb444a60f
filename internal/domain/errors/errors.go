// Package errors defines the application error taxonomy the delivery layer
// maps onto transport responses.
package errors

import (
	"fmt"
	"net/http"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
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
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Lookup errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
	)

	// Logical foreign key gate errors
	ErrSellerNotExists = NewBaseError(
		http.StatusBadRequest,
		"SELLER_NOT_FOUND",
		"Seller does not exist",
	)

	ErrWriterNotExists = NewBaseError(
		http.StatusBadRequest,
		"WRITER_NOT_FOUND",
		"Writer does not exist",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// BackendRejectedError represents a write refused by a backend's own
// validation, carrying the backend-supplied reason.
type BackendRejectedError struct {
	reason string
}

// NewBackendRejectedError creates a rejection error with the backend's reason
func NewBackendRejectedError(reason string) AppError {
	return &BackendRejectedError{reason: reason}
}

// Error implements the error interface
func (e *BackendRejectedError) Error() string {
	return e.reason
}

// HTTPCode returns the HTTP status code
func (e *BackendRejectedError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *BackendRejectedError) ErrorCode() string {
	return "BACKEND_REJECTED"
}

// Message returns the user-friendly error message
func (e *BackendRejectedError) Message() string {
	return e.reason
}

// Details returns detailed error information
func (e *BackendRejectedError) Details() any {
	return nil
}

// BackendUnavailableError represents an upstream backend that could not be
// reached or answered with a server error. It is transient but not retried.
type BackendUnavailableError struct {
	service string
}

// NewBackendUnavailableError creates an unavailable error for the named backend
func NewBackendUnavailableError(service string) AppError {
	return &BackendUnavailableError{service: service}
}

// Error implements the error interface
func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("%s service unavailable", e.service)
}

// HTTPCode returns the HTTP status code
func (e *BackendUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *BackendUnavailableError) ErrorCode() string {
	return "BACKEND_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *BackendUnavailableError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *BackendUnavailableError) Details() any {
	return nil
}

// DependencyCounts is the structured payload of a delete-user conflict.
type DependencyCounts struct {
	Products        int `json:"products"`
	WrittenReviews  int `json:"writtenReviews"`
	ReceivedReviews int `json:"receivedReviews"`
}

// DependencyConflictError is returned when a user cannot be deleted because
// other services still reference it.
type DependencyConflictError struct {
	Counts DependencyCounts
}

// NewDependencyConflictError creates a conflict error carrying the three
// dependency counts observed by the delete gate.
func NewDependencyConflictError(products, writtenReviews, receivedReviews int) *DependencyConflictError {
	return &DependencyConflictError{
		Counts: DependencyCounts{
			Products:        products,
			WrittenReviews:  writtenReviews,
			ReceivedReviews: receivedReviews,
		},
	}
}

// Error implements the error interface
func (e *DependencyConflictError) Error() string {
	return fmt.Sprintf("cannot delete user with dependencies (products: %d, written reviews: %d, received reviews: %d)",
		e.Counts.Products, e.Counts.WrittenReviews, e.Counts.ReceivedReviews)
}

// HTTPCode returns the HTTP status code
func (e *DependencyConflictError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *DependencyConflictError) ErrorCode() string {
	return "USER_HAS_DEPENDENCIES"
}

// Message returns the user-friendly error message
func (e *DependencyConflictError) Message() string {
	return "Cannot delete user with dependencies"
}

// Details returns the structured dependency counts
func (e *DependencyConflictError) Details() any {
	return e.Counts
}
