package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/opportunity-service/internal/api/dto"
	"github.com/spec-kit/opportunity-service/internal/service"
	apperrors "github.com/spec-kit/opportunity-service/pkg/util"
)

// AuthHandler manages registration, login and token refresh.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Register POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid registration data", err)
	}

	user, token, _, err := h.service.Register(c.UserContext(), service.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{Token: token, User: user})
}

// Login POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, _, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.AuthResponse{Token: token, User: user})
}

// Refresh POST /api/auth/refresh. Accepts an expired but signature-valid
// bearer token and issues a fresh one.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	raw := bearerToken(c)
	if raw == "" {
		return apperrors.NewUnauthenticated("access token required")
	}

	token, _, err := h.service.Refresh(c.UserContext(), raw)
	if err != nil {
		return err
	}
	return c.JSON(dto.AuthResponse{Token: token})
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
