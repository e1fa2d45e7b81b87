// Package apperrors defines the error taxonomy shared by the PCB Lab engine.
// Every failure is local to one interaction: input problems are reported as
// validation errors, missing ids as not-found errors, aggregates over empty
// sets as empty-collection errors, and faults during a simulated delay as
// retryable simulation failures.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rotisserie/eris"
)

// Sentinel errors. Typed errors below report themselves as one of these via Is.
var (
	ErrValidation        = eris.New("validation failed")
	ErrNotFound          = eris.New("not found")
	ErrEmptyCollection   = eris.New("empty collection")
	ErrConflict          = eris.New("conflict")
	ErrUnauthorized      = eris.New("unauthorized")
	ErrSimulationFailure = eris.New("simulation failure")
)

// Reason classifies a validation failure
type Reason string

const (
	ReasonRequired         Reason = "Required"
	ReasonPasswordMismatch Reason = "PasswordMismatch"
	ReasonUnknown          Reason = "Unknown"
	ReasonInvalid          Reason = "Invalid"
)

// ValidationError is a pre-flight input problem tied to a single field.
type ValidationError struct {
	Field   string `json:"field"`
	Reason  Reason `json:"reason"`
	Message string `json:"message,omitempty"`
}

// NewValidationError creates a validation error for field.
func NewValidationError(field string, reason Reason, message string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError is returned when an id does not match any record.
type NotFoundError struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
}

// NotFound creates a NotFoundError for the given entity and id.
func NotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// SimulationFailure wraps an unexpected fault raised while a simulated
// operation was pending. It is always surfaced, never fatal.
type SimulationFailure struct {
	Op        string
	Err       error
	Retryable bool
}

// NewSimulationFailure wraps err as a retryable failure of op.
func NewSimulationFailure(op string, err error) *SimulationFailure {
	return &SimulationFailure{Op: op, Err: err, Retryable: true}
}

func (e *SimulationFailure) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: simulation failure", e.Op)
	}
	return fmt.Sprintf("%s: simulation failure: %v", e.Op, e.Err)
}

func (e *SimulationFailure) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSimulationFailure.
func (e *SimulationFailure) Is(target error) bool {
	return target == ErrSimulationFailure
}

// Conflict wraps ErrConflict with a message describing the busy resource.
func Conflict(message string) error {
	return fmt.Errorf("%s: %w", message, ErrConflict)
}

// Unauthorized wraps ErrUnauthorized with a message naming the missing credential.
func Unauthorized(message string) error {
	return fmt.Errorf("%s: %w", message, ErrUnauthorized)
}

// IsRetryable reports whether err is a simulation failure that may be retried.
func IsRetryable(err error) bool {
	var sf *SimulationFailure
	if errors.As(err, &sf) {
		return sf.Retryable
	}
	return false
}

// HTTPStatus maps an error from the engine to an HTTP status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrEmptyCollection):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrSimulationFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
