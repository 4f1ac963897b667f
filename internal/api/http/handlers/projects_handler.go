package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/teamboard/internal/api/dto"
	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/service"
)

// ProjectsHandler serves /projects.
type ProjectsHandler struct {
	service *service.ProjectService
}

func NewProjectsHandler(projectService *service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{service: projectService}
}

// ListProjects GET /projects.
func (h *ProjectsHandler) ListProjects(c *fiber.Ctx) error {
	query, err := parseListQuery(c)
	if err != nil {
		return err
	}
	projects, err := h.service.List(c.UserContext(), query.Criteria())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProjectResponses(projects))
}

// GetProject GET /projects/:id.
func (h *ProjectsHandler) GetProject(c *fiber.Ctx) error {
	project, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProjectResponse(*project))
}

// CreateProject POST /projects.
func (h *ProjectsHandler) CreateProject(c *fiber.Ctx) error {
	var req domain.Project
	if err := parseBody(c, &req); err != nil {
		return err
	}
	project, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProjectResponse(*project))
}

// UpdateProject PUT /projects/:id.
func (h *ProjectsHandler) UpdateProject(c *fiber.Ctx) error {
	var req domain.Project
	if err := parseBody(c, &req); err != nil {
		return err
	}
	project, err := h.service.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProjectResponse(*project))
}

// DeleteProject DELETE /projects/:id.
func (h *ProjectsHandler) DeleteProject(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
