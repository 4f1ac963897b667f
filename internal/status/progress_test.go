package status_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/status"
)

func TestTicketProgress(t *testing.T) {
	gt.Equal(t, status.TicketProgress(5, 4), 100)
	gt.Equal(t, status.TicketProgress(2, 4), 50)
	gt.Equal(t, status.TicketProgress(1, 3), 33)
	gt.Equal(t, status.TicketProgress(0, 8), 0)
	gt.Equal(t, status.TicketProgress(3, 0), 0)
}

func TestClampProgress(t *testing.T) {
	gt.Equal(t, status.ClampProgress(-5), 0.0)
	gt.Equal(t, status.ClampProgress(42.5), 42.5)
	gt.Equal(t, status.ClampProgress(180), 100.0)
}

func TestOverBudget(t *testing.T) {
	gt.True(t, status.OverBudget(domain.Ticket{TimeSpent: 5, TimeEstimate: 4}))
	gt.False(t, status.OverBudget(domain.Ticket{TimeSpent: 4, TimeEstimate: 4}))
	gt.False(t, status.OverBudget(domain.Ticket{TimeSpent: 4}))
}
