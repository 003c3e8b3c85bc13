package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/opportunity-service/internal/auth"
	"github.com/spec-kit/opportunity-service/internal/service"
)

// Validatable is implemented by request payloads that carry their own rules.
type Validatable interface {
	Validate() error
}

// CreateBroadcast builds a handler that parses and validates the body,
// creates the entity attributed to the caller, pushes it to every client
// subscribed to channel, and answers 201 with the stored entity. Any
// failure answers 400 with a generic message; the underlying error text is
// exposed only outside production.
func CreateBroadcast[Req Validatable, E any](
	create func(ctx context.Context, createdBy string, req Req) (*E, error),
	hub service.Broadcaster,
	channel string,
	production bool,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := auth.IdentityFromContext(c)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "access token required"})
		}

		var req Req
		if err := c.BodyParser(&req); err != nil {
			return operationFailed(c, err, production)
		}
		if err := req.Validate(); err != nil {
			return operationFailed(c, err, production)
		}

		entity, err := create(c.UserContext(), identity.ID, req)
		if err != nil {
			return operationFailed(c, err, production)
		}

		hub.Broadcast(channel, entity)
		return c.Status(http.StatusCreated).JSON(entity)
	}
}

func operationFailed(c *fiber.Ctx, err error, production bool) error {
	response := fiber.Map{"message": "Operation failed"}
	if err != nil && !production {
		response["error"] = err.Error()
	}
	return c.Status(http.StatusBadRequest).JSON(response)
}
