package catalog

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrFetch is returned when the initial product load fails.
	// The collection is left empty.
	ErrFetch = errors.New("fetch products failed")

	// ErrUpdateFailed is returned when the API rejects an update or the
	// request fails in transport. Local state is left unchanged.
	ErrUpdateFailed = errors.New("update product failed")

	// ErrCreateFailed is returned when the API rejects a create or the
	// request fails in transport. Local state is left unchanged.
	ErrCreateFailed = errors.New("create product failed")

	// ErrMutationBusy is returned when a submission cannot obtain the
	// mutation slot before the wait timeout expires.
	ErrMutationBusy = errors.New("another change is still being saved")

	// ErrProductNotFound is returned when a selection targets an unknown id.
	ErrProductNotFound = errors.New("product not found")

	// ErrNoSelection is returned by detail operations when no product is selected.
	ErrNoSelection = errors.New("product not found: no product selected")

	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidPageSize is returned for a page size outside the allowed set.
	ErrInvalidPageSize = errors.New("invalid page size")

	// ErrInvalidSortField is returned for an unknown sort column.
	ErrInvalidSortField = errors.New("invalid sort field")
)

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

// ValidationError reports form fields that failed validation before any
// network call was made.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = e.Fields[k]
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) true for any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
