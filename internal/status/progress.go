package status

import (
	"math"

	"github.com/spec-kit/teamboard/internal/domain"
)

// TicketProgress returns spent/estimate as a whole percentage capped at 100.
func TicketProgress(timeSpent, timeEstimate float64) int {
	if timeEstimate <= 0 {
		return 0
	}
	return int(ClampProgress(math.Round(timeSpent / timeEstimate * 100)))
}

// ClampProgress bounds a percentage to [0, 100].
func ClampProgress(value float64) float64 {
	switch {
	case math.IsNaN(value), value < 0:
		return 0
	case value > 100:
		return 100
	default:
		return value
	}
}

// OverBudget reports whether more time was spent than estimated.
func OverBudget(ticket domain.Ticket) bool {
	return ticket.TimeEstimate > 0 && ticket.TimeSpent > ticket.TimeEstimate
}
