package status

import (
	"strings"

	"github.com/spec-kit/teamboard/internal/domain"
)

var projectStatusAliases = map[string]domain.ProjectStatus{
	"active":     domain.ProjectStatusActive,
	"planning":   domain.ProjectStatusActive,
	"inprogress": domain.ProjectStatusActive,
	"completed":  domain.ProjectStatusCompleted,
	"pipeline":   domain.ProjectStatusPipeline,
}

// NormalizeProjectStatus folds a free-form project status into the canonical vocabulary.
// Unrecognized values, including an empty string, land in On Hold.
func NormalizeProjectStatus(raw string) domain.ProjectStatus {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	if normalized, ok := projectStatusAliases[key]; ok {
		return normalized
	}
	return domain.ProjectStatusOnHold
}
