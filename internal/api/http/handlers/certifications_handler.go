package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/teamboard/internal/api/dto"
	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/service"
	"github.com/spec-kit/teamboard/internal/status"
)

// CertificationsHandler serves /certifications. Responses carry the derived status.
type CertificationsHandler struct {
	service    *service.CertificationService
	classifier *status.Classifier
}

func NewCertificationsHandler(certService *service.CertificationService, classifier *status.Classifier) *CertificationsHandler {
	return &CertificationsHandler{service: certService, classifier: classifier}
}

func (h *CertificationsHandler) respond(c *fiber.Ctx, code int, cert domain.Certification) error {
	resp, err := dto.NewCertificationResponse(cert, h.classifier)
	if err != nil {
		return err
	}
	return c.Status(code).JSON(resp)
}

// ListCertifications GET /certifications.
func (h *CertificationsHandler) ListCertifications(c *fiber.Ctx) error {
	query, err := parseListQuery(c)
	if err != nil {
		return err
	}
	certs, err := h.service.List(c.UserContext(), query.Criteria())
	if err != nil {
		return err
	}
	resp, err := dto.NewCertificationResponses(certs, h.classifier)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GroupedCertifications GET /certifications/grouped.
func (h *CertificationsHandler) GroupedCertifications(c *fiber.Ctx) error {
	groups, err := h.service.Grouped(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(groups)
}

// GetCertification GET /certifications/:id.
func (h *CertificationsHandler) GetCertification(c *fiber.Ctx) error {
	cert, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return h.respond(c, fiber.StatusOK, *cert)
}

// CreateCertification POST /certifications.
func (h *CertificationsHandler) CreateCertification(c *fiber.Ctx) error {
	var req domain.Certification
	if err := parseBody(c, &req); err != nil {
		return err
	}
	cert, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return h.respond(c, fiber.StatusCreated, *cert)
}

// UpdateCertification PUT /certifications/:id.
func (h *CertificationsHandler) UpdateCertification(c *fiber.Ctx) error {
	var req domain.Certification
	if err := parseBody(c, &req); err != nil {
		return err
	}
	cert, err := h.service.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return h.respond(c, fiber.StatusOK, *cert)
}

// DeleteCertification DELETE /certifications/:id.
func (h *CertificationsHandler) DeleteCertification(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
