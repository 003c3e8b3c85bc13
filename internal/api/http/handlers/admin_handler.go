package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/opportunity-service/internal/service"
)

// AdminHandler serves admin-only analytics endpoints.
type AdminHandler struct {
	activity *service.ActivityService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(activityService *service.ActivityService) *AdminHandler {
	return &AdminHandler{activity: activityService}
}

// ActivitySummary GET /api/admin/analytics/summary.
func (h *AdminHandler) ActivitySummary(c *fiber.Ctx) error {
	summary, err := h.activity.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
