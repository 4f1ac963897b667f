package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/teamboard/internal/api/dto"
	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/service"
)

// TicketsHandler serves /tickets.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	query, err := parseListQuery(c)
	if err != nil {
		return err
	}
	tickets, err := h.service.List(c.UserContext(), query.Criteria())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponses(tickets))
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(*ticket))
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req domain.Ticket
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ticket, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTicketResponse(*ticket))
}

// UpdateTicket PUT /tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	var req domain.Ticket
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ticket, err := h.service.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(*ticket))
}

// DeleteTicket DELETE /tickets/:id.
func (h *TicketsHandler) DeleteTicket(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
