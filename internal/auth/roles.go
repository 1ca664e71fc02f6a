package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/backoffice/internal/domain"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// RequireRole gates a route group to the given roles. With no roles it
// only requires an authenticated principal.
func RequireRole(allowed ...domain.ManagerRole) fiber.Handler {
	allowedSet := make(map[domain.ManagerRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Manager == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireAuthenticated gates a route to any logged-in manager.
func RequireAuthenticated() fiber.Handler {
	return RequireRole()
}
