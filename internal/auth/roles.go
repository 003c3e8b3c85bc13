package auth

import (
	"github.com/spec-kit/opportunity-service/internal/domain"
	apperrors "github.com/spec-kit/opportunity-service/pkg/util"

	"github.com/gofiber/fiber/v2"
)

// RequireRole ensures the authenticated identity holds one of the allowed
// roles. Must run after RequireAuthenticated.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewForbidden("access denied")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[identity.Role]; !exists {
			return apperrors.NewForbidden("admin access required")
		}
		return c.Next()
	}
}

// RequireAdmin restricts the route to admin and super_admin identities.
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin)
}
