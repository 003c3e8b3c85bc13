package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/opportunity-service/internal/api/dto"
	"github.com/spec-kit/opportunity-service/internal/domain"
	"github.com/spec-kit/opportunity-service/internal/service"
	apperrors "github.com/spec-kit/opportunity-service/pkg/util"
)

// ScholarshipsHandler serves public scholarship listings and admin mutations.
type ScholarshipsHandler struct {
	service    *service.ContentService
	hub        service.Broadcaster
	production bool
}

// NewScholarshipsHandler constructs handler.
func NewScholarshipsHandler(contentService *service.ContentService, hub service.Broadcaster, production bool) *ScholarshipsHandler {
	return &ScholarshipsHandler{service: contentService, hub: hub, production: production}
}

// List GET /api/scholarships.
func (h *ScholarshipsHandler) List(c *fiber.Ctx) error {
	items, err := h.service.ListActiveScholarships(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Search GET /api/scholarships/search?q=term.
func (h *ScholarshipsHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return apperrors.NewValidationError("search term required", nil)
	}
	items, err := h.service.SearchScholarships(c.UserContext(), term)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create POST /api/scholarships. Broadcasts the stored entity on the
// scholarships channel.
func (h *ScholarshipsHandler) Create() fiber.Handler {
	return CreateBroadcast(
		func(ctx context.Context, createdBy string, req dto.CreateScholarshipRequest) (*domain.Scholarship, error) {
			return h.service.CreateScholarship(ctx, createdBy, service.ScholarshipInput{
				Title:       req.Title,
				Description: req.Description,
				Institution: req.Institution,
				Country:     req.Country,
				Amount:      req.Amount,
				Deadline:    req.Deadline,
				IsActive:    req.IsActive,
			})
		},
		h.hub, "scholarships", h.production,
	)
}

// Update PUT /api/scholarships/:id.
func (h *ScholarshipsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid scholarship data", err)
	}

	in := service.ScholarshipInput{
		Title:       req.Title,
		Description: req.Description,
		Institution: req.Institution,
		Country:     req.Country,
		Amount:      req.Amount,
		IsActive:    req.IsActive,
	}
	if req.Deadline != nil {
		in.Deadline = *req.Deadline
	}

	sch, err := h.service.UpdateScholarship(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(sch)
}

// Delete DELETE /api/scholarships/:id.
func (h *ScholarshipsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteScholarship(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Scholarship deleted"})
}
