package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidateRequired rejects empty or whitespace-only values.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: field + " is required"}
	}
	return nil
}

// ValidateLength checks that a required value has between min and max runes.
func ValidateLength(field, value string, min, max int) error {
	if err := ValidateRequired(field, value); err != nil {
		return err
	}

	n := utf8.RuneCountInString(strings.TrimSpace(value))
	if n < min {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is too short (minimum %d characters)", field, min),
		}
	}
	if n > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is too long (maximum %d characters)", field, max),
		}
	}
	return nil
}
