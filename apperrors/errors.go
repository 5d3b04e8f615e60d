package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Sentinel kinds for the error taxonomy. Every error produced by the
// services wraps exactly one of these, so callers can classify with
// errors.Is without knowing the concrete message.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrIntegrity  = errors.New("integrity error")
	ErrStorage    = errors.New("storage error")
)

// Error carries the kind, a human-readable message and an optional cause.
type Error struct {
	kind    error
	message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

func (e *Error) Is(target error) bool {
	return errors.Is(e.kind, target)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Validation creates a ValidationError (malformed input).
func Validation(format string, args ...interface{}) error {
	return newError(ErrValidation, format, args...)
}

// NotFound creates a NotFound error (unknown booking/order/item id).
func NotFound(format string, args ...interface{}) error {
	return newError(ErrNotFound, format, args...)
}

// Conflict creates a Conflict error (re-checkout, re-cancel, add to a
// non-open order).
func Conflict(format string, args ...interface{}) error {
	return newError(ErrConflict, format, args...)
}

// Integrity creates an IntegrityError (invariant violation observed in
// stored data, e.g. more than one primary guest).
func Integrity(format string, args ...interface{}) error {
	return newError(ErrIntegrity, format, args...)
}

// Storage wraps an underlying persistence failure with the operation that
// produced it. Callers log these with the id involved.
func Storage(op string, cause error) error {
	return &Error{kind: ErrStorage, message: op, cause: cause}
}

// Code returns the machine-readable error code used in API responses, so
// integrity failures stay diagnosable separately from generic 500s.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrIntegrity):
		return "integrity_error"
	case errors.Is(err, ErrStorage):
		return "storage_error"
	default:
		return "internal_error"
	}
}

// HTTPStatus maps an error to its HTTP status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Message returns the message part of a taxonomy error, or err.Error()
// for anything else.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.message
	}
	return err.Error()
}
