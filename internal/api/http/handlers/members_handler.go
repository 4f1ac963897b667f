package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/service"
)

// MembersHandler serves /members.
type MembersHandler struct {
	service *service.MemberService
}

func NewMembersHandler(memberService *service.MemberService) *MembersHandler {
	return &MembersHandler{service: memberService}
}

// ListMembers GET /members.
func (h *MembersHandler) ListMembers(c *fiber.Ctx) error {
	query, err := parseListQuery(c)
	if err != nil {
		return err
	}
	members, err := h.service.List(c.UserContext(), query.Criteria())
	if err != nil {
		return err
	}
	return c.JSON(members)
}

// GetMember GET /members/:id.
func (h *MembersHandler) GetMember(c *fiber.Ctx) error {
	member, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(member)
}

// CreateMember POST /members.
func (h *MembersHandler) CreateMember(c *fiber.Ctx) error {
	var req domain.TeamMember
	if err := parseBody(c, &req); err != nil {
		return err
	}
	member, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// UpdateMember PUT /members/:id.
func (h *MembersHandler) UpdateMember(c *fiber.Ctx) error {
	var req domain.TeamMember
	if err := parseBody(c, &req); err != nil {
		return err
	}
	member, err := h.service.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(member)
}

// DeleteMember DELETE /members/:id.
func (h *MembersHandler) DeleteMember(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
