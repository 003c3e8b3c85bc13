package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/opportunity-service/internal/api/dto"
	"github.com/spec-kit/opportunity-service/internal/auth"
	"github.com/spec-kit/opportunity-service/internal/service"
	apperrors "github.com/spec-kit/opportunity-service/pkg/util"
)

// ApplicationsHandler serves user applications and admin review.
type ApplicationsHandler struct {
	service *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{service: applicationService}
}

// Submit POST /api/applications.
func (h *ApplicationsHandler) Submit(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("access token required")
	}

	var req dto.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid application data", err)
	}

	app, err := h.service.Submit(c.UserContext(), identity.ID, service.ApplicationInput{
		ScholarshipID: req.ScholarshipID,
		JobID:         req.JobID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(app)
}

// ListMine GET /api/applications.
func (h *ApplicationsHandler) ListMine(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("access token required")
	}
	items, err := h.service.ListForUser(c.UserContext(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// UpdateStatus PUT /api/admin/applications/:id/status.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid status", err)
	}

	app, err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(app)
}
