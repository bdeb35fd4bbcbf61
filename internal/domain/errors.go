package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errors surfaced by post operations. Callers match them with errors.Is.
var (
	ErrValidationFailed        = errors.New("validation failed")
	ErrImageUploadFailed       = errors.New("image upload failed")
	ErrSlugAllocationExhausted = errors.New("slug allocation exhausted")
	ErrNotFound                = errors.New("post not found")
	ErrForbidden               = errors.New("forbidden")
	ErrStorageUnavailable      = errors.New("storage unavailable")
)

// ValidationError carries field-level validation failures.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
