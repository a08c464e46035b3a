// Package validation checks order submissions against the order schema
// before they reach the order service.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Issue describes a single schema violation. Path is the dotted location
// of the offending value, e.g. "data.0.qty"; it is empty for the body itself.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError is returned when a payload does not match the schema.
// It carries every violation found, not just the first.
type ValidationError struct {
	Issues []Issue
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		if issue.Path == "" {
			parts[i] = issue.Message
			continue
		}
		parts[i] = fmt.Sprintf("%s: %s", issue.Path, issue.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
