package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/opportunity-service/internal/auth"
	"github.com/spec-kit/opportunity-service/internal/service"
	apperrors "github.com/spec-kit/opportunity-service/pkg/util"
)

// UsersHandler serves the authenticated user's own profile.
type UsersHandler struct {
	service *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{service: authService}
}

// Profile GET /api/user/profile.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("access token required")
	}
	user, err := h.service.Profile(c.UserContext(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(user)
}
