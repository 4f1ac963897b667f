package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/internal/repository"
	"github.com/spec-kit/teamboard/internal/service"
	"github.com/spec-kit/teamboard/internal/status"
	"github.com/spec-kit/teamboard/internal/view"
	"github.com/spec-kit/teamboard/pkg/util/errorutil"
)

var fixedNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func newDeps(holidays ...domain.Holiday) service.Dependencies {
	clock := func() time.Time { return fixedNow }
	return service.Dependencies{
		TicketRepo:        repository.NewMemoryTicketRepository(),
		ProjectRepo:       repository.NewMemoryProjectRepository(),
		MemberRepo:        repository.NewMemoryMemberRepository(),
		CertificationRepo: repository.NewMemoryCertificationRepository(),
		HolidayRepo:       repository.NewMemoryHolidayRepository(holidays...),
		Dispatcher:        events.NewInMemoryDispatcher(nil),
		Classifier:        status.NewClassifier(status.WithClock(clock)),
		Clock:             clock,
	}
}

func TestTicketServiceCreate(t *testing.T) {
	deps := newDeps()
	var published []events.Event
	deps.Dispatcher.Subscribe(events.EventEntityCreated, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})
	svc := service.NewTicketService(deps)
	ctx := context.Background()

	ticket, err := svc.Create(ctx, domain.Ticket{
		ID:           "t1",
		Title:        "  Login page ",
		Description:  "Build the login form",
		Assignee:     "Alice",
		Project:      "Portal",
		TimeEstimate: 4,
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, ticket.ID, "t1")
	gt.Equal(t, ticket.Title, "Login page")
	gt.Equal(t, ticket.Status, domain.TicketStatusDevelopment)
	gt.Equal(t, ticket.CreatedAt, fixedNow)
	gt.A(t, published).Length(1)
	gt.Equal(t, published[0].EntityID, "t1")

	_, err = svc.Create(ctx, *ticket)
	gt.True(t, errorutil.IsValidation(err))

	_, err = svc.Create(ctx, domain.Ticket{Title: "No estimate"})
	gt.True(t, errorutil.IsValidation(err))
}

func TestTicketServiceUpdateAndDelete(t *testing.T) {
	svc := service.NewTicketService(newDeps())
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Ticket{
		Title: "Login page", Description: "d", Assignee: "Alice", Project: "Portal", TimeEstimate: 4,
	})
	gt.NoError(t, err).Required()

	changed := *created
	changed.CreatedAt = time.Time{}
	changed.Status = domain.TicketStatusQA
	updated, err := svc.Update(ctx, created.ID, changed)
	gt.NoError(t, err).Required()
	gt.Equal(t, updated.Status, domain.TicketStatusQA)
	gt.Equal(t, updated.CreatedAt, created.CreatedAt)

	_, err = svc.Update(ctx, "missing", changed)
	gt.True(t, errorutil.IsNotFound(err))

	gt.NoError(t, svc.Delete(ctx, created.ID))
	gt.True(t, errorutil.IsNotFound(svc.Delete(ctx, created.ID)))
	_, err = svc.Get(ctx, created.ID)
	gt.True(t, errorutil.IsNotFound(err))
}

func TestProjectServiceListFiltersByCanonicalStatus(t *testing.T) {
	svc := service.NewProjectService(newDeps())
	ctx := context.Background()

	for _, p := range []domain.Project{
		{Name: "Portal", Status: "Planning", Progress: 20, Team: []string{"Alice"}},
		{Name: "Billing", Status: "On Hold", Progress: 50},
		{Name: "Search", Status: "Active", Progress: 70, Team: []string{"Bob"}},
	} {
		_, err := svc.Create(ctx, p)
		gt.NoError(t, err).Required()
	}

	active, err := svc.List(ctx, view.Criteria{Status: string(domain.ProjectStatusActive)})
	gt.NoError(t, err).Required()
	gt.A(t, active).Length(2)
	gt.Equal(t, active[0].Name, "Search")

	alice, err := svc.List(ctx, view.Criteria{Member: "Alice"})
	gt.NoError(t, err).Required()
	gt.A(t, alice).Length(1)
	gt.Equal(t, alice[0].Name, "Portal")
}

func TestMemberServiceValidation(t *testing.T) {
	svc := service.NewMemberService(newDeps())
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.TeamMember{Name: "Alice"})
	gt.True(t, errorutil.IsValidation(err))

	member, err := svc.Create(ctx, domain.TeamMember{Name: "Alice", Role: "Engineer"})
	gt.NoError(t, err).Required()
	gt.A(t, member.Projects).Length(0)

	member.Role = "Lead"
	updated, err := svc.Update(ctx, member.ID, *member)
	gt.NoError(t, err).Required()
	gt.Equal(t, updated.Role, "Lead")
}

func TestCertificationServiceGroupsByDerivedStatus(t *testing.T) {
	svc := service.NewCertificationService(newDeps())
	ctx := context.Background()

	expired := "2026-10-16"
	soon := "2026-11-01"
	for _, c := range []domain.Certification{
		{Name: "CKA", Provider: "CNCF", AssignedTo: "Alice", ExpirationDate: &expired},
		{Name: "AWS SA", Provider: "AWS", AssignedTo: "Bob", ExpirationDate: &soon},
		{Name: "PMP", Provider: "PMI", AssignedTo: "Alice", IsCompleted: true},
	} {
		_, err := svc.Create(ctx, c)
		gt.NoError(t, err).Required()
	}

	groups, err := svc.Grouped(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, groups.Get(string(status.CertificationExpired))).Length(1)
	gt.A(t, groups.Get(string(status.CertificationExpiringSoon))).Length(1)
	gt.A(t, groups.Get(string(status.CertificationCompleted))).Length(1)

	aliceExpired, err := svc.List(ctx, view.Criteria{Member: "Alice", Status: string(status.CertificationExpired)})
	gt.NoError(t, err).Required()
	gt.A(t, aliceExpired).Length(1)
	gt.Equal(t, aliceExpired[0].Name, "CKA")
}

func TestCertificationServiceStrictDates(t *testing.T) {
	deps := newDeps()
	ctx := context.Background()
	bad := "31/12/2026"
	gt.NoError(t, deps.CertificationRepo.Create(ctx, &domain.Certification{
		ID: "c1", Name: "CKA", Provider: "CNCF", AssignedTo: "Alice", ExpirationDate: &bad,
	})).Required()
	deps.Classifier = status.NewClassifier(status.WithClock(func() time.Time { return fixedNow }), status.WithStrictDates(true))
	svc := service.NewCertificationService(deps)

	listed, err := svc.List(ctx, view.Criteria{})
	gt.True(t, errorutil.IsValidation(err))
	gt.A(t, listed).Length(1)

	_, err = svc.Grouped(ctx)
	gt.True(t, errorutil.IsValidation(err))

	_, err = svc.Create(ctx, domain.Certification{Name: "AWS SA", Provider: "AWS", AssignedTo: "Bob", ExpirationDate: &bad})
	gt.True(t, errorutil.IsValidation(err))
	all, err := deps.CertificationRepo.List(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, all).Length(1)

	_, err = service.NewBoardService(deps, 30).Summary(ctx)
	gt.True(t, errorutil.IsValidation(err))
}

func TestBoardServiceSummary(t *testing.T) {
	deps := newDeps(
		domain.Holiday{Date: "2026-10-20", Name: "Founders Day", Type: domain.HolidayTypeObservance},
		domain.Holiday{Date: "2027-03-01", Name: "Far away", Type: domain.HolidayTypePublic},
	)
	ctx := context.Background()

	_, err := service.NewTicketService(deps).Create(ctx, domain.Ticket{
		Title: "Over", Description: "d", Assignee: "Alice", Project: "Portal", TimeEstimate: 4, TimeSpent: 5,
	})
	gt.NoError(t, err).Required()
	_, err = service.NewMemberService(deps).Create(ctx, domain.TeamMember{
		Name: "Alice", Role: "Engineer", ActualHours: 30, PlannedHours: 40,
	})
	gt.NoError(t, err).Required()

	board := service.NewBoardService(deps, 30)
	board.RegisterHandlers()

	summary, err := board.Summary(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, summary.OverBudgetTickets, 1)
	gt.Equal(t, summary.TeamUtilization, 75.0)
	gt.A(t, summary.UpcomingHolidays).Length(1)
	gt.Equal(t, summary.TicketsByStatus[string(domain.TicketStatusDevelopment)], 1)

	holidays, err := board.Holidays(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, holidays).Length(2)
}
