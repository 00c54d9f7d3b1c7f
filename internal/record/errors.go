package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no row matches the identifier.
var ErrNotFound = errors.New("record not found")

// ErrEmptyUpdate is returned when an update payload carries no updatable field.
var ErrEmptyUpdate = errors.New("no fields to update")

// ErrConflict is matched by every ConflictError.
var ErrConflict = errors.New("conflict")

// ErrValidation is matched by every ValidationError.
var ErrValidation = errors.New("validation failed")

// ErrSystem is matched by every SystemError.
var ErrSystem = errors.New("system error")

// ValidationError reports client input that cannot be stored as given.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConflictError reports an operation blocked by existing data.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// SystemError wraps a database or driver failure. Its message is safe to log but
// is not meant for clients.
type SystemError struct {
	Op     string
	Entity string
	Err    error
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *SystemError) Unwrap() error { return e.Err }

func (e *SystemError) Is(target error) bool { return target == ErrSystem }
