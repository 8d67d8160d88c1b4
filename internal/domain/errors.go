package domain

import (
	"fmt"
	"strings"
)

// ValidationError is returned when a translation request fails field
// validation. It maps to HTTP 400 at the server boundary.
type ValidationError struct {
	// Fields lists the names of the failing fields in request order.
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("field %q must be a non-empty string", f))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
