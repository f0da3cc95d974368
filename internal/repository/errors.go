// Package repository declares the persistence contracts used by the usecases.
// Implementations live under internal/infra/adapter/persistence.
package repository

import "errors"

var (
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")

	// ErrReferenced is returned when a delete is blocked by rows that still
	// reference the record.
	ErrReferenced = errors.New("record is still referenced")
)
