package cli_test

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/m-mizutani/gt"

	"github.com/spec-kit/teamboard/internal/cli"
	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/pkg/util/errorutil"
)

type fakeAPI struct {
	created []domain.Project
}

func startAPI(t *testing.T) (string, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/tickets", func(c *fiber.Ctx) error {
		return c.JSON([]domain.Ticket{
			{ID: "t1", Title: "Login page", Status: domain.TicketStatusQA, Assignee: "Alice", Project: "Portal", TimeSpent: 2, TimeEstimate: 4},
			{ID: "t2", Title: "Audit log", Status: domain.TicketStatusBlocked, Assignee: "Bob", Project: "Core", TimeSpent: 1, TimeEstimate: 4},
		})
	})
	app.Get("/projects", func(c *fiber.Ctx) error {
		return c.JSON([]domain.Project{{ID: "p1", Name: "Portal", Status: "Planning", Progress: 30, Team: []string{"Alice"}}})
	})
	app.Get("/members", func(c *fiber.Ctx) error {
		return c.JSON([]domain.TeamMember{{ID: "m1", Name: "Alice", Role: "dev", ActualHours: 30, PlannedHours: 40}})
	})
	app.Get("/certifications", func(c *fiber.Ctx) error {
		malformed := "31/12/2026"
		return c.JSON([]domain.Certification{
			{ID: "c1", Name: "CKA", Provider: "CNCF", AssignedTo: "Alice", IsCompleted: true},
			{ID: "c2", Name: "AWS SA", Provider: "AWS", AssignedTo: "Bob"},
			{ID: "c3", Name: "GCP ACE", Provider: "Google", AssignedTo: "Carol", ExpirationDate: &malformed},
		})
	})
	app.Get("/holidays", func(c *fiber.Ctx) error {
		return c.JSON([]domain.Holiday{{Date: "2026-12-25", Name: "Christmas", Type: domain.HolidayTypePublic}})
	})
	app.Post("/projects", func(c *fiber.Ctx) error {
		var project domain.Project
		if err := c.BodyParser(&project); err != nil {
			return err
		}
		api.created = append(api.created, project)
		return c.Status(fiber.StatusCreated).JSON(project)
	})
	app.Delete("/tickets/:id", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{"code": "INTERNAL_ERROR", "message": "database unavailable"},
		})
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	gt.NoError(t, err).Required()
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String(), api
}

func run(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	full := append([]string{"boardctl", "--api-url", baseURL, "--log-level", "error"}, args...)
	err := cli.Run(context.Background(), full, &out)
	return out.String(), err
}

func TestTicketsCommandFilters(t *testing.T) {
	baseURL, _ := startAPI(t)

	out, err := run(t, baseURL, "tickets", "--status", "qa")
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("Login page")
	gt.False(t, strings.Contains(out, "Audit log"))

	out, err = run(t, baseURL, "tickets", "--member", "Bob", "--group")
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("blocked (1)")
	gt.False(t, strings.Contains(out, "Login page"))
}

func TestCertificationsCommandUsesDerivedStatus(t *testing.T) {
	baseURL, _ := startAPI(t)

	out, err := run(t, baseURL, "certs", "--status", "completed")
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("CKA")
	gt.False(t, strings.Contains(out, "AWS SA"))
}

func TestStrictDatesFailCertificationsCommand(t *testing.T) {
	baseURL, _ := startAPI(t)

	out, err := run(t, baseURL, "certs")
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("GCP ACE")

	out, err = run(t, baseURL, "--strict-dates", "certs")
	gt.True(t, errorutil.IsValidation(err))
	gt.S(t, err.Error()).Contains("c3")
	gt.S(t, out).Contains("GCP ACE")

	_, err = run(t, baseURL, "--strict-dates", "summary")
	gt.True(t, errorutil.IsValidation(err))
}

func TestProjectsMembersAndSummary(t *testing.T) {
	baseURL, _ := startAPI(t)

	out, err := run(t, baseURL, "projects")
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("Active")

	out, err = run(t, baseURL, "members", "--search", "ali")
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("Team (1)")

	out, err = run(t, baseURL, "summary")
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("Summary")
	gt.S(t, out).Contains("75%")

	out, err = run(t, baseURL, "holidays")
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("Christmas")
}

func TestAddProjectQuick(t *testing.T) {
	baseURL, api := startAPI(t)

	out, err := run(t, baseURL, "add-project", "--end-date", "2026-12-01", "Data", "Lake")
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("created project Data Lake")
	gt.A(t, api.created).Length(1)
	gt.Equal(t, api.created[0].Status, string(domain.ProjectStatusPipeline))

	_, err = run(t, baseURL, "add-project", "No End Date")
	gt.True(t, errorutil.IsValidation(err))
	gt.A(t, api.created).Length(1)
}

func TestFailedDeleteShowsNotice(t *testing.T) {
	baseURL, _ := startAPI(t)

	out, err := run(t, baseURL, "delete", "ticket", "t1")
	gt.True(t, errorutil.IsNetwork(err))
	gt.S(t, out).Contains("Could not delete ticket")
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	baseURL, _ := startAPI(t)

	out, err := run(t, baseURL, "delete", "ticket", "missing")
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("deleted ticket missing")
}

func TestUnreachableAPI(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	gt.NoError(t, err).Required()
	baseURL := "http://" + ln.Addr().String()
	gt.NoError(t, ln.Close()).Required()

	_, err = run(t, baseURL, "tickets")
	gt.True(t, errorutil.IsNetwork(err))
}

func TestInvalidAPIURLRejectedBeforeLoading(t *testing.T) {
	_, err := run(t, "ftp://board.internal", "tickets")
	gt.Error(t, err)
	gt.False(t, errorutil.IsNetwork(err))
}
