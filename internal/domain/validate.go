package domain

import (
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/teamboard/pkg/util/errorutil"
)

// NewID returns a client-generated record identifier.
func NewID() string {
	return uuid.NewString()
}

// fieldErrors collects per-field validation failures keyed by JSON field name.
type fieldErrors map[string]any

func (f fieldErrors) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = "required"
	}
}

func (f fieldErrors) percent(field string, value float64) {
	if value < 0 || value > 100 {
		f[field] = "must be between 0 and 100"
	}
}

func (f fieldErrors) nonNegative(field string, value float64) {
	if value < 0 {
		f[field] = "must not be negative"
	}
}

func (f fieldErrors) err(entity string) error {
	if len(f) == 0 {
		return nil
	}
	return errorutil.NewValidationError(entity+" validation failed", map[string]any(f))
}
