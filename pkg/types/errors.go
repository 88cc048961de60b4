// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// ConfigurationError reports that the designated marker column is not in the
// input table. It aborts the batch before any extraction.
type ConfigurationError struct {
	Column    string
	Available []string
}

func (e *ConfigurationError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("could not detect marker column (available: %s); specify one with --column",
			strings.Join(e.Available, ", "))
	}
	return fmt.Sprintf("column %q not found in input (available: %s)", e.Column, strings.Join(e.Available, ", "))
}

// ValidationError reports that the marker column exists but holds no data.
// It aborts the batch before any extraction.
type ValidationError struct {
	Column string
	Rows   int
}

func (e *ValidationError) Error() string {
	if e.Rows == 0 {
		return fmt.Sprintf("column %q has no data: input has no rows", e.Column)
	}
	return fmt.Sprintf("column %q has no data in %d row(s)", e.Column, e.Rows)
}
