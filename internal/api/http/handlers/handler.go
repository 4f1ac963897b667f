package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/teamboard/internal/api/dto"
	"github.com/spec-kit/teamboard/pkg/util/errorutil"
)

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errorutil.NewValidationError("invalid payload", map[string]any{"body": err.Error()})
	}
	return nil
}

func parseListQuery(c *fiber.Ctx) (dto.ListQuery, error) {
	var query dto.ListQuery
	if err := c.QueryParser(&query); err != nil {
		return query, errorutil.NewValidationError("invalid query", map[string]any{"query": err.Error()})
	}
	return query, nil
}
