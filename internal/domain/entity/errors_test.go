package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "required field error",
			field:    "title",
			message:  "title is required",
			expected: "validation error on field 'title': title is required",
		},
		{
			name:     "length validation error",
			field:    "name",
			message:  "name is too long (maximum 100 characters)",
			expected: "validation error on field 'name': name is too long (maximum 100 characters)",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationErrors_AddIgnoresNil(t *testing.T) {
	var errs ValidationErrors
	errs.Add(nil)
	assert.Empty(t, errs)
	assert.NoError(t, errs.OrNil())
}

func TestValidationErrors_CollectsAll(t *testing.T) {
	var errs ValidationErrors
	errs.Add(&ValidationError{Field: "title", Message: "title is required"})
	errs.Add(&ValidationError{Field: "content", Message: "content is required"})
	errs.Add(&ValidationError{Field: "title", Message: "second title message"})

	err := errs.OrNil()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, map[string]string{
		"title":   "title is required",
		"content": "content is required",
	}, errs.Fields())
	assert.Contains(t, err.Error(), "field 'content'")
}

func TestValidationErrors_WrapsPlainErrors(t *testing.T) {
	var errs ValidationErrors
	errs.Add(errors.New("boom"))
	require.Len(t, errs, 1)
	assert.Equal(t, "", errs[0].Field)
	assert.Equal(t, "boom", errs[0].Message)
}

func TestAsValidationErrors(t *testing.T) {
	t.Run("list in chain", func(t *testing.T) {
		list := ValidationErrors{{Field: "name", Message: "name is required"}}
		got, ok := AsValidationErrors(fmt.Errorf("create: %w", list))
		require.True(t, ok)
		assert.Equal(t, "name", got[0].Field)
	})

	t.Run("single error", func(t *testing.T) {
		got, ok := AsValidationErrors(&ValidationError{Field: "content", Message: "x"})
		require.True(t, ok)
		assert.Len(t, got, 1)
	})

	t.Run("unrelated error", func(t *testing.T) {
		_, ok := AsValidationErrors(errors.New("db down"))
		assert.False(t, ok)
	})
}

func TestSentinelErrors_Uniqueness(t *testing.T) {
	assert.NotEqual(t, ErrNotFound, ErrInvalidInput)
	assert.NotEqual(t, ErrNotFound, ErrValidationFailed)
	assert.NotEqual(t, ErrInvalidInput, ErrValidationFailed)
	assert.True(t, errors.Is(fmt.Errorf("wrap: %w", ErrNotFound), ErrNotFound))
}
