package view_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/status"
	"github.com/spec-kit/teamboard/internal/view"
)

var fixedNow = time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)

func fixedClassifier() *status.Classifier {
	return status.NewClassifier(status.WithClock(func() time.Time { return fixedNow }))
}

func sampleProjects() []domain.Project {
	return []domain.Project{
		{ID: "p1", Name: "Portal Redesign", Status: "Active", Progress: 40, Team: []string{"Alice", "Bob"}},
		{ID: "p2", Name: "Billing", Status: "Planning", Progress: 75, Team: []string{"Carol"}},
		{ID: "p3", Name: "Mobile Portal", Status: "Completed", Progress: 100, Team: []string{"Alice"}},
		{ID: "p4", Name: "Data Lake", Status: "On Hold", Progress: 40, Team: []string{"Bob"}},
		{ID: "p5", Name: "Search", Status: "Pipeline", Progress: 0},
	}
}

func ids[T any](records []T, id func(T) string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, id(r))
	}
	return out
}

func projectIDs(projects []domain.Project) []string {
	return ids(projects, func(p domain.Project) string { return p.ID })
}

func TestFilterAllReturnsEverythingSortedStably(t *testing.T) {
	got := view.FilterProjects(sampleProjects(), view.Criteria{Search: "", Status: view.All, Member: view.All})
	// p1 and p4 tie at 40 and keep their input order
	gt.Equal(t, projectIDs(got), []string{"p3", "p2", "p1", "p4", "p5"})
}

func TestFilterPredicates(t *testing.T) {
	projects := sampleProjects()

	t.Run("search is case insensitive", func(t *testing.T) {
		got := view.FilterProjects(projects, view.Criteria{Search: "PORTAL"})
		gt.Equal(t, projectIDs(got), []string{"p3", "p1"})
	})

	t.Run("status uses normalized vocabulary", func(t *testing.T) {
		got := view.FilterProjects(projects, view.Criteria{Status: string(domain.ProjectStatusActive)})
		gt.Equal(t, projectIDs(got), []string{"p2", "p1"})
	})

	t.Run("member matches team", func(t *testing.T) {
		got := view.FilterProjects(projects, view.Criteria{Member: "Alice"})
		gt.Equal(t, projectIDs(got), []string{"p3", "p1"})
	})

	t.Run("predicates are combined", func(t *testing.T) {
		got := view.FilterProjects(projects, view.Criteria{Search: "portal", Status: "Active", Member: "Alice"})
		gt.Equal(t, projectIDs(got), []string{"p1"})
	})

	t.Run("no match is empty, not nil", func(t *testing.T) {
		got := view.FilterProjects(projects, view.Criteria{Member: "Zed"})
		gt.V(t, got).NotNil()
		gt.A(t, got).Length(0)
	})

	t.Run("empty input", func(t *testing.T) {
		got := view.FilterProjects(nil, view.Criteria{})
		gt.A(t, got).Length(0)
	})
}

func TestFilterIsIdempotentAndDoesNotMutateInput(t *testing.T) {
	projects := sampleProjects()
	criteria := view.Criteria{Search: "a", Status: view.All, Member: view.All}

	first := view.FilterProjects(projects, criteria)
	second := view.FilterProjects(projects, criteria)
	gt.Equal(t, projectIDs(first), projectIDs(second))

	again := view.FilterProjects(first, criteria)
	gt.Equal(t, projectIDs(again), projectIDs(first))

	gt.Equal(t, projectIDs(projects), []string{"p1", "p2", "p3", "p4", "p5"})
}

func TestFilterTickets(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "t1", Title: "Login", Description: "form", Status: domain.TicketStatusQA, Assignee: "Alice", TimeSpent: 1, TimeEstimate: 4},
		{ID: "t2", Title: "Logout", Description: "Session cleanup", Status: domain.TicketStatusQA, Assignee: "Bob", TimeSpent: 5, TimeEstimate: 4},
		{ID: "t3", Title: "Reports", Description: "export session data", Status: domain.TicketStatusBlocked, Assignee: "Alice", TimeSpent: 2, TimeEstimate: 4},
	}
	ticketIDs := func(in []domain.Ticket) []string {
		return ids(in, func(t domain.Ticket) string { return t.ID })
	}

	gt.Equal(t, ticketIDs(view.FilterTickets(tickets, view.Criteria{Search: "session"})), []string{"t2", "t3"})
	gt.Equal(t, ticketIDs(view.FilterTickets(tickets, view.Criteria{Status: "qa"})), []string{"t2", "t1"})
	gt.Equal(t, ticketIDs(view.FilterTickets(tickets, view.Criteria{Member: "Alice"})), []string{"t3", "t1"})
}

func TestFilterCertificationsByDerivedStatus(t *testing.T) {
	soon := "2026-10-30"
	past := "2026-01-01"
	certs := []domain.Certification{
		{ID: "c1", Name: "CKA", Provider: "CNCF", AssignedTo: "Alice", Progress: 20},
		{ID: "c2", Name: "AWS SA", Provider: "Amazon", AssignedTo: "Bob", ExpirationDate: &soon, Progress: 60},
		{ID: "c3", Name: "GCP ACE", Provider: "Google", AssignedTo: "Alice", ExpirationDate: &past},
		{ID: "c4", Name: "Terraform", Provider: "HashiCorp", AssignedTo: "Alice", IsCompleted: true},
	}
	certIDs := func(in []domain.Certification) []string {
		return ids(in, func(c domain.Certification) string { return c.ID })
	}
	filter := func(criteria view.Criteria) []string {
		out, err := view.FilterCertifications(certs, criteria, fixedClassifier())
		gt.NoError(t, err).Required()
		return certIDs(out)
	}

	gt.Equal(t, filter(view.Criteria{Status: "expiring-soon"}), []string{"c2"})
	gt.Equal(t, filter(view.Criteria{Status: "expired"}), []string{"c3"})
	gt.Equal(t, filter(view.Criteria{Member: "Alice"}), []string{"c4", "c1", "c3"})
	gt.Equal(t, filter(view.Criteria{Search: "google"}), []string{"c3"})
}

func TestFilterMembers(t *testing.T) {
	members := []domain.TeamMember{
		{ID: "m1", Name: "Alice", Role: "Engineer", Performance: 80},
		{ID: "m2", Name: "Bob", Role: "Designer", Performance: 92},
		{ID: "m3", Name: "Carol", Role: "Engineer", Performance: 70},
	}
	got := view.FilterMembers(members, view.Criteria{Search: "engineer"})
	gt.Equal(t, ids(got, func(m domain.TeamMember) string { return m.ID }), []string{"m1", "m3"})

	got = view.FilterMembers(members, view.Criteria{Status: "active"})
	gt.A(t, got).Length(0)
}
