package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/opportunity-service/internal/api/dto"
	"github.com/spec-kit/opportunity-service/internal/service"
	apperrors "github.com/spec-kit/opportunity-service/pkg/util"
)

// ChatHandler proxies assistant conversations.
type ChatHandler struct {
	service *service.ChatService
	logger  *zap.Logger
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{service: chatService, logger: logger}
}

// Chat POST /api/chat.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Message) == "" {
		return apperrors.NewValidationError("message required", nil)
	}

	reply, err := h.service.Chat(c.UserContext(), req.Message)
	if err != nil {
		h.logger.Error("chat completion failed", zap.Error(err))
		return apperrors.NewDomainError("upstream_error", "AI service error", fiber.StatusInternalServerError, nil)
	}
	return c.JSON(dto.ChatResponse{Response: reply})
}
