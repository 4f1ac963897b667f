package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/teamboard/internal/service"
)

// BoardHandler serves the holiday calendar and the dashboard summary.
type BoardHandler struct {
	service *service.BoardService
}

func NewBoardHandler(boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{service: boardService}
}

// ListHolidays GET /holidays.
func (h *BoardHandler) ListHolidays(c *fiber.Ctx) error {
	holidays, err := h.service.Holidays(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(holidays)
}

// Dashboard GET /dashboard.
func (h *BoardHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
