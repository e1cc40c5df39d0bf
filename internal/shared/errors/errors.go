// Package errors provides application-level error types and utilities.
// It defines the review error taxonomy (not found, already claimed, not
// claimant, invalid transition, stale state) on top of a generic AppError.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation         ErrorType = "validation_error"
	ErrorTypeNotFound           ErrorType = "not_found"
	ErrorTypeConflict           ErrorType = "conflict"
	ErrorTypeForbidden          ErrorType = "forbidden"
	ErrorTypeInternal           ErrorType = "internal_error"
	ErrorTypeBadRequest         ErrorType = "bad_request"
	ErrorTypeAlreadyClaimed     ErrorType = "already_claimed"
	ErrorTypeNotClaimant        ErrorType = "not_claimant"
	ErrorTypeInvalidTransition  ErrorType = "invalid_transition"
	ErrorTypeStaleState         ErrorType = "stale_state"
	ErrorTypeCodeSpaceExhausted ErrorType = "code_space_exhausted"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newError(errType ErrorType, code int, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newError(ErrorTypeValidation, http.StatusBadRequest, message, details...)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newError(ErrorTypeNotFound, http.StatusNotFound, message, details...)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newError(ErrorTypeConflict, http.StatusConflict, message, details...)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newError(ErrorTypeForbidden, http.StatusForbidden, message, details...)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newError(ErrorTypeInternal, http.StatusInternalServerError, message, details...)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newError(ErrorTypeBadRequest, http.StatusBadRequest, message, details...)
}

// NewAlreadyClaimedError signals a lost claim race: another staff member
// already holds the application.
func NewAlreadyClaimedError(message string, details ...string) *AppError {
	return newError(ErrorTypeAlreadyClaimed, http.StatusConflict, message, details...)
}

// NewNotClaimantError signals that the acting staff member does not hold
// the claim on the application.
func NewNotClaimantError(message string, details ...string) *AppError {
	return newError(ErrorTypeNotClaimant, http.StatusForbidden, message, details...)
}

// NewInvalidTransitionError signals a status state machine violation.
func NewInvalidTransitionError(message string, details ...string) *AppError {
	return newError(ErrorTypeInvalidTransition, http.StatusConflict, message, details...)
}

// NewStaleStateError signals that the application status no longer matches
// the state the caller observed before issuing the request.
func NewStaleStateError(message string, details ...string) *AppError {
	return newError(ErrorTypeStaleState, http.StatusConflict, message, details...)
}

// NewCodeSpaceExhaustedError signals that short-code generation ran out of
// retry attempts.
func NewCodeSpaceExhaustedError(message string, details ...string) *AppError {
	return newError(ErrorTypeCodeSpaceExhausted, http.StatusInternalServerError, message, details...)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsAlreadyClaimedError checks if the error is an already claimed error
func IsAlreadyClaimedError(err error) bool {
	return isType(err, ErrorTypeAlreadyClaimed)
}

// IsNotClaimantError checks if the error is a not claimant error
func IsNotClaimantError(err error) bool {
	return isType(err, ErrorTypeNotClaimant)
}

// IsInvalidTransitionError checks if the error is an invalid transition error
func IsInvalidTransitionError(err error) bool {
	return isType(err, ErrorTypeInvalidTransition)
}

// IsStaleStateError checks if the error is a stale state error
func IsStaleStateError(err error) bool {
	return isType(err, ErrorTypeStaleState)
}

// IsDuplicateError checks if the error is a database duplicate key error.
// The claim guard and the short-code assigner treat this as control flow:
// the constraint violation is the authoritative lost-the-race signal.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	// SQLite unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}
