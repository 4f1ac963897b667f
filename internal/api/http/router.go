package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/teamboard/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Tickets        *handlers.TicketsHandler
	Projects       *handlers.ProjectsHandler
	Members        *handlers.MembersHandler
	Certifications *handlers.CertificationsHandler
	Board          *handlers.BoardHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	tickets := app.Group("/tickets")
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Put("/:id", cfg.Tickets.UpdateTicket)
	tickets.Delete("/:id", cfg.Tickets.DeleteTicket)

	projects := app.Group("/projects")
	projects.Get("/", cfg.Projects.ListProjects)
	projects.Post("/", cfg.Projects.CreateProject)
	projects.Get("/:id", cfg.Projects.GetProject)
	projects.Put("/:id", cfg.Projects.UpdateProject)
	projects.Delete("/:id", cfg.Projects.DeleteProject)

	members := app.Group("/members")
	members.Get("/", cfg.Members.ListMembers)
	members.Post("/", cfg.Members.CreateMember)
	members.Get("/:id", cfg.Members.GetMember)
	members.Put("/:id", cfg.Members.UpdateMember)
	members.Delete("/:id", cfg.Members.DeleteMember)

	certifications := app.Group("/certifications")
	certifications.Get("/", cfg.Certifications.ListCertifications)
	certifications.Post("/", cfg.Certifications.CreateCertification)
	certifications.Get("/grouped", cfg.Certifications.GroupedCertifications)
	certifications.Get("/:id", cfg.Certifications.GetCertification)
	certifications.Put("/:id", cfg.Certifications.UpdateCertification)
	certifications.Delete("/:id", cfg.Certifications.DeleteCertification)

	app.Get("/holidays", cfg.Board.ListHolidays)
	app.Get("/dashboard", cfg.Board.Dashboard)
}
