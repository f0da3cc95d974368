package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidationErrors collects per-field violations so callers can report all of them.
type ValidationErrors []*ValidationError

// Add appends err when it is a *ValidationError. Nil is ignored.
func (v *ValidationErrors) Add(err error) {
	if err == nil {
		return
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		*v = append(*v, ve)
		return
	}
	*v = append(*v, &ValidationError{Field: "", Message: err.Error()})
}

// OrNil returns nil for an empty collection so the result can be returned as error.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Fields maps each field to its first violation message.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) hold for any ValidationErrors.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// AsValidationErrors extracts field violations from err, if any.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var list ValidationErrors
	if errors.As(err, &list) {
		return list, true
	}
	var single *ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}, true
	}
	return nil, false
}
