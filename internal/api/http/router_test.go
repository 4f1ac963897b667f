package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/m-mizutani/gt"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/teamboard/internal/api/http"
	"github.com/spec-kit/teamboard/internal/api/http/handlers"
	"github.com/spec-kit/teamboard/internal/config"
	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/internal/observability"
	"github.com/spec-kit/teamboard/internal/persistence"
	"github.com/spec-kit/teamboard/internal/repository"
	"github.com/spec-kit/teamboard/internal/service"
	"github.com/spec-kit/teamboard/internal/status"
)

var fixedNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()
	return newTestAppWith(t, repository.NewMemoryCertificationRepository())
}

func newTestAppWith(t *testing.T, certs repository.CertificationRepository, opts ...status.Option) (*fiber.App, *observability.Metrics) {
	t.Helper()
	clock := func() time.Time { return fixedNow }
	classifier := status.NewClassifier(append([]status.Option{status.WithClock(clock)}, opts...)...)
	deps := service.Dependencies{
		TicketRepo:        repository.NewMemoryTicketRepository(),
		ProjectRepo:       repository.NewMemoryProjectRepository(),
		MemberRepo:        repository.NewMemoryMemberRepository(),
		CertificationRepo: certs,
		HolidayRepo: repository.NewMemoryHolidayRepository(
			domain.Holiday{Date: "2026-10-20", Name: "Founders Day", Type: domain.HolidayTypeObservance},
		),
		Dispatcher: events.NewInMemoryDispatcher(nil),
		Classifier: classifier,
		Clock:      clock,
	}
	metrics := observability.NewMetrics()
	pg, err := persistence.NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())
	gt.NoError(t, err).Required()

	app := httptransport.NewApp("teamboard-test", zap.NewNop(), metrics, time.Second, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler("teamboard-test", "test", pg, nil, metrics),
		Tickets:        handlers.NewTicketsHandler(service.NewTicketService(deps)),
		Projects:       handlers.NewProjectsHandler(service.NewProjectService(deps)),
		Members:        handlers.NewMembersHandler(service.NewMemberService(deps)),
		Certifications: handlers.NewCertificationsHandler(service.NewCertificationService(deps), classifier),
		Board:          handlers.NewBoardHandler(service.NewBoardService(deps, 30)),
	})
	return app, metrics
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		gt.NoError(t, err).Required()
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	gt.NoError(t, err).Required()
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	gt.NoError(t, err).Required()
	return resp.StatusCode, payload
}

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func TestTicketLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	code, payload := doJSON(t, app, http.MethodPost, "/tickets", domain.Ticket{
		ID: "t1", Title: "Login page", Description: "Build it", Assignee: "Alice", Project: "Portal",
		TimeEstimate: 4, TimeSpent: 5,
	})
	gt.Equal(t, code, http.StatusCreated)

	var created struct {
		domain.Ticket
		Progress   int  `json:"progress"`
		OverBudget bool `json:"overBudget"`
	}
	gt.NoError(t, json.Unmarshal(payload, &created)).Required()
	gt.Equal(t, created.ID, "t1")
	gt.Equal(t, created.Progress, 100)
	gt.True(t, created.OverBudget)

	created.Ticket.Status = domain.TicketStatusQA
	code, _ = doJSON(t, app, http.MethodPut, "/tickets/t1", created.Ticket)
	gt.Equal(t, code, http.StatusOK)

	code, payload = doJSON(t, app, http.MethodGet, "/tickets?status=qa&member=Alice", nil)
	gt.Equal(t, code, http.StatusOK)
	var listed []domain.Ticket
	gt.NoError(t, json.Unmarshal(payload, &listed)).Required()
	gt.A(t, listed).Length(1)

	code, _ = doJSON(t, app, http.MethodDelete, "/tickets/t1", nil)
	gt.Equal(t, code, http.StatusNoContent)

	code, payload = doJSON(t, app, http.MethodDelete, "/tickets/t1", nil)
	gt.Equal(t, code, http.StatusNotFound)
	var notFound errorBody
	gt.NoError(t, json.Unmarshal(payload, &notFound)).Required()
	gt.Equal(t, notFound.Error.Code, "NOT_FOUND")
}

func TestValidationEnvelope(t *testing.T) {
	app, metrics := newTestApp(t)

	code, payload := doJSON(t, app, http.MethodPost, "/projects", domain.Project{})
	gt.Equal(t, code, http.StatusBadRequest)

	var body errorBody
	gt.NoError(t, json.Unmarshal(payload, &body)).Required()
	gt.Equal(t, body.Error.Code, "VALIDATION_FAILED")
	gt.Equal(t, body.Error.Details["name"], any("required"))

	gt.True(t, len(metrics.Snapshot().Errors) > 0)
}

func TestCertificationsCarryDerivedStatus(t *testing.T) {
	app, _ := newTestApp(t)

	expired := "2026-10-01"
	code, _ := doJSON(t, app, http.MethodPost, "/certifications", domain.Certification{
		Name: "CKA", Provider: "CNCF", AssignedTo: "Alice", ExpirationDate: &expired,
	})
	gt.Equal(t, code, http.StatusCreated)

	code, payload := doJSON(t, app, http.MethodGet, "/certifications?status=expired", nil)
	gt.Equal(t, code, http.StatusOK)
	var certs []struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	gt.NoError(t, json.Unmarshal(payload, &certs)).Required()
	gt.A(t, certs).Length(1)
	gt.Equal(t, certs[0].Status, "expired")

	code, payload = doJSON(t, app, http.MethodGet, "/certifications/grouped", nil)
	gt.Equal(t, code, http.StatusOK)
	gt.S(t, string(payload)).Contains(`"expiring-soon"`)
}

func TestStrictDatesRejectMalformedCertifications(t *testing.T) {
	certs := repository.NewMemoryCertificationRepository()
	bad := "31/12/2026"
	gt.NoError(t, certs.Create(context.Background(), &domain.Certification{
		ID: "c1", Name: "CKA", Provider: "CNCF", AssignedTo: "Alice", ExpirationDate: &bad,
	})).Required()
	app, _ := newTestAppWith(t, certs, status.WithStrictDates(true))

	for _, path := range []string{"/certifications", "/certifications/grouped", "/certifications/c1", "/dashboard"} {
		code, payload := doJSON(t, app, http.MethodGet, path, nil)
		gt.Equal(t, code, http.StatusUnprocessableEntity)
		var body errorBody
		gt.NoError(t, json.Unmarshal(payload, &body)).Required()
		gt.Equal(t, body.Error.Code, "VALIDATION_FAILED")
		gt.Equal(t, body.Error.Details["c1"], any(bad))
	}

	code, _ := doJSON(t, app, http.MethodPost, "/certifications", domain.Certification{
		Name: "AWS SA", Provider: "AWS", AssignedTo: "Bob", ExpirationDate: &bad,
	})
	gt.Equal(t, code, http.StatusUnprocessableEntity)
}

func TestLenientDatesStillList(t *testing.T) {
	certs := repository.NewMemoryCertificationRepository()
	bad := "31/12/2026"
	gt.NoError(t, certs.Create(context.Background(), &domain.Certification{
		ID: "c1", Name: "CKA", Provider: "CNCF", AssignedTo: "Alice", ExpirationDate: &bad,
	})).Required()
	app, _ := newTestAppWith(t, certs)

	code, payload := doJSON(t, app, http.MethodGet, "/certifications", nil)
	gt.Equal(t, code, http.StatusOK)
	gt.S(t, string(payload)).Contains(`"in-progress"`)
}

func TestDashboardAndHolidays(t *testing.T) {
	app, _ := newTestApp(t)

	code, payload := doJSON(t, app, http.MethodGet, "/holidays", nil)
	gt.Equal(t, code, http.StatusOK)
	gt.S(t, string(payload)).Contains("Founders Day")

	code, payload = doJSON(t, app, http.MethodGet, "/dashboard", nil)
	gt.Equal(t, code, http.StatusOK)
	gt.S(t, string(payload)).Contains(`"upcomingHolidays"`)
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	code, _ := doJSON(t, app, http.MethodGet, "/health/live", nil)
	gt.Equal(t, code, http.StatusOK)

	code, payload := doJSON(t, app, http.MethodGet, "/health/ready", nil)
	gt.Equal(t, code, http.StatusOK)
	gt.S(t, string(payload)).Contains(`"disabled"`)

	code, _ = doJSON(t, app, http.MethodGet, "/nowhere", nil)
	gt.Equal(t, code, http.StatusNotFound)

	code, payload = doJSON(t, app, http.MethodGet, "/health/metrics", nil)
	gt.Equal(t, code, http.StatusOK)
	gt.S(t, string(payload)).Contains(`"requests"`)
}
