package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrConflict is returned when a stay interval overlaps an existing booking.
	ErrConflict = errors.New("dates conflict with an existing booking")
	// ErrNotFound is returned when no booking has the requested id.
	ErrNotFound = errors.New("booking not found")
)

// FieldErrors carries per-field validation messages. It is an error so
// callers can return it directly from TryAdd.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
