package board_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/spec-kit/teamboard/internal/board"
	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/service"
	"github.com/spec-kit/teamboard/internal/status"
	"github.com/spec-kit/teamboard/internal/view"
	"github.com/spec-kit/teamboard/pkg/util/errorutil"
)

var fixedNow = time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

func newRenderer(buf *bytes.Buffer) *board.Renderer {
	return board.New(buf, status.NewClassifier(status.WithClock(func() time.Time { return fixedNow })))
}

func TestTicketsTable(t *testing.T) {
	var buf bytes.Buffer
	tickets := []domain.Ticket{
		{ID: "0d6f1c2e-aaaa", Title: "Login page", Status: domain.TicketStatusQA, Priority: domain.TicketPriorityHigh,
			Assignee: "Alice", Project: "Portal", TimeSpent: 6, TimeEstimate: 4},
		{ID: "t2", Title: "Logout", Status: domain.TicketStatusDevelopment, Priority: domain.TicketPriorityLow,
			Assignee: "Bob", Project: "Portal", TimeSpent: 1, TimeEstimate: 4},
	}
	gt.NoError(t, newRenderer(&buf).Tickets(tickets, false)).Required()

	out := buf.String()
	gt.S(t, out).Contains("Tickets")
	gt.S(t, out).Contains("(2)")
	gt.S(t, out).Contains("0d6f1c2e")
	gt.False(t, strings.Contains(out, "0d6f1c2e-aaaa"))
	gt.S(t, out).Contains("100%")
	gt.S(t, out).Contains("6/4 over")
	gt.S(t, out).Contains("25%")
}

func TestGroupedTicketsSkipEmptyBuckets(t *testing.T) {
	var buf bytes.Buffer
	tickets := []domain.Ticket{
		{ID: "t1", Title: "A", Status: domain.TicketStatusBlocked, TimeEstimate: 1},
		{ID: "t2", Title: "B", Status: domain.TicketStatusQA, TimeEstimate: 1},
	}
	gt.NoError(t, newRenderer(&buf).Tickets(tickets, true)).Required()

	out := buf.String()
	gt.S(t, out).Contains("blocked (1)")
	gt.S(t, out).Contains("qa (1)")
	gt.False(t, strings.Contains(out, "development"))
	gt.True(t, strings.Index(out, "qa (1)") < strings.Index(out, "blocked (1)"))
}

func TestCertificationsShowDerivedStatus(t *testing.T) {
	var buf bytes.Buffer
	soon := "2026-11-01"
	certs := []domain.Certification{
		{ID: "c1", Name: "CKA", Provider: "CNCF", AssignedTo: "Alice", ExpirationDate: &soon},
		{ID: "c2", Name: "AWS SA", Provider: "AWS", AssignedTo: "Bob", IsCompleted: true},
	}
	gt.NoError(t, newRenderer(&buf).Certifications(certs, true)).Required()

	out := buf.String()
	gt.S(t, out).Contains("expiring-soon (1)")
	gt.S(t, out).Contains("completed (1)")
	gt.S(t, out).Contains("never")
	gt.S(t, out).Contains("2026-11-01")
}

func TestStrictCertificationsRenderThenFail(t *testing.T) {
	var buf bytes.Buffer
	bad := "31/12/2026"
	certs := []domain.Certification{{ID: "c1", Name: "CKA", Provider: "CNCF", AssignedTo: "Alice", ExpirationDate: &bad}}
	classifier := status.NewClassifier(status.WithClock(func() time.Time { return fixedNow }), status.WithStrictDates(true))

	err := board.New(&buf, classifier).Certifications(certs, true)
	gt.True(t, errorutil.IsValidation(err))
	gt.S(t, buf.String()).Contains("in-progress (1)")
	gt.S(t, buf.String()).Contains(bad)
}

func TestProjectsUseCanonicalStatus(t *testing.T) {
	var buf bytes.Buffer
	projects := []domain.Project{
		{ID: "p1", Name: "Billing", Status: "Planning", Progress: 140, Budget: 10, Spent: 12, Team: []string{"Alice", "Bob"}},
	}
	gt.NoError(t, newRenderer(&buf).Projects(projects, false)).Required()

	out := buf.String()
	gt.S(t, out).Contains("Active")
	gt.S(t, out).Contains("100%")
	gt.S(t, out).Contains("Alice, Bob")
}

func TestEmptySections(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf)
	gt.NoError(t, r.Members(nil))
	gt.NoError(t, r.Holidays(nil))
	gt.NoError(t, r.Notices(nil))

	out := buf.String()
	gt.S(t, out).Contains("Team (0)")
	gt.S(t, out).Contains("Holidays (0)")
	gt.S(t, out).Contains("nothing to show")
}

func TestSummaryAndNotices(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf)
	summary := view.Summary{
		TicketsByStatus:        map[string]int{"qa": 2, "blocked": 1, "development": 0},
		OverBudgetTickets:      1,
		ProjectsByStatus:       map[string]int{"Active": 1},
		AverageProjectProgress: 42.5,
		CertificationsByStatus: map[string]int{},
		TeamUtilization:        112.5,
		UpcomingHolidays:       []domain.Holiday{{Date: "2026-10-31", Name: "Halloween"}},
	}
	gt.NoError(t, r.Summary(summary)).Required()
	gt.NoError(t, r.Notices([]service.Notice{{ID: "n1", Level: service.NoticeError, Message: "Could not save ticket"}})).Required()

	out := buf.String()
	gt.S(t, out).Contains("qa 2")
	gt.S(t, out).Contains("blocked 1")
	gt.False(t, strings.Contains(out, "development 0"))
	gt.S(t, out).Contains("42.5%")
	gt.S(t, out).Contains("112.5%")
	gt.S(t, out).Contains("Halloween")
	gt.S(t, out).Contains("Could not save ticket")
}
