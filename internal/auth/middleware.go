package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/opportunity-service/pkg/util"
)

const identityKey = "auth_identity"

// RequireAuthenticated validates bearer tokens and attaches the decoded
// Identity to the request context. It never touches the store; the token is
// self-contained.
func RequireAuthenticated(tokens *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.NewUnauthenticated("access token required")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return apperrors.NewUnauthenticated("access token required")
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			return apperrors.NewForbidden("invalid or expired token")
		}

		identity := claims.Identity()
		c.Locals(identityKey, &identity)
		return c.Next()
	}
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
