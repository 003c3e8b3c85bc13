package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/opportunity-service/internal/config"
)

// Handler upgrades HTTP requests on /ws and pumps frames between the
// transport and the hub.
type Handler struct {
	hub    *Hub
	logger *zap.Logger
	app    config.AppConfig
}

// NewHandler constructs the transport handler.
func NewHandler(hub *Hub, logger *zap.Logger, app config.AppConfig) *Handler {
	return &Handler{hub: hub, logger: logger, app: app}
}

// Upgrade gates the handshake. In production, when a frontend origin is
// configured, a mismatched Origin header refuses the connection; everything
// else is accepted unconditionally.
func (h *Handler) Upgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		if h.app.IsProduction() && h.app.FrontendURL != "" {
			if origin := c.Get("Origin"); origin != h.app.FrontendURL {
				h.logger.Warn("ws origin rejected", zap.String("origin", origin))
				return fiber.ErrForbidden
			}
		}
		return c.Next()
	}
}

// Serve runs the connection lifecycle: register, write pump, read loop,
// unregister on close or error.
func (h *Handler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := h.hub.Register()
		defer h.hub.Unregister(client)

		go func() {
			for msg := range client.Send() {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}()

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			h.hub.HandleMessage(client, raw)
		}
	})
}
