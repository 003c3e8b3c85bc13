package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/opportunity-service/internal/api/dto"
	"github.com/spec-kit/opportunity-service/internal/service"
	apperrors "github.com/spec-kit/opportunity-service/pkg/util"
)

// TestimonialsHandler serves approved testimonials and user submissions.
type TestimonialsHandler struct {
	service *service.ContentService
}

// NewTestimonialsHandler constructs handler.
func NewTestimonialsHandler(contentService *service.ContentService) *TestimonialsHandler {
	return &TestimonialsHandler{service: contentService}
}

// List GET /api/testimonials.
func (h *TestimonialsHandler) List(c *fiber.Ctx) error {
	items, err := h.service.ListApprovedTestimonials(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create POST /api/testimonials.
func (h *TestimonialsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid testimonial data", err)
	}

	t, err := h.service.CreateTestimonial(c.UserContext(), req.Name, req.Content)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(t)
}
