package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"

	// Session lifecycle errors
	ErrSessionNotFound   ErrorCode = "SESSION_NOT_FOUND"
	ErrPaymentRequired   ErrorCode = "PAYMENT_REQUIRED"
	ErrSessionNotStarted ErrorCode = "SESSION_NOT_STARTED"
	ErrInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrReportNotReady    ErrorCode = "REPORT_NOT_READY"

	// Provider errors
	ErrExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
	ErrValidation      ErrorCode = "VALIDATION_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors

func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(ErrUnauthorized, message, nil)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(ErrSessionNotFound, fmt.Sprintf("Interview session not found with ID: %s", sessionID), nil)
}

func NewPaymentRequiredError(sessionID string) *DomainError {
	return NewError(ErrPaymentRequired, fmt.Sprintf("Payment has not been captured for session: %s", sessionID), nil)
}

func NewSessionNotStartedError(sessionID string) *DomainError {
	return NewError(ErrSessionNotStarted, fmt.Sprintf("Interview has not been started for session: %s", sessionID), nil)
}

func NewInvalidTransitionError(from, to SessionStatus) *DomainError {
	return NewError(ErrInvalidTransition, fmt.Sprintf("Session status cannot advance from %s to %s", from, to), nil)
}

func NewReportNotReadyError(sessionID string) *DomainError {
	return NewError(ErrReportNotReady, fmt.Sprintf("Report is not ready for session: %s", sessionID), nil)
}

func NewExternalServiceError(provider string, err error) *DomainError {
	return NewError(ErrExternalService, fmt.Sprintf("Call to %s provider failed", provider), err)
}

func NewValidationError(message string, err error) *DomainError {
	return NewError(ErrValidation, message, err)
}
