package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/servicehub/internal/domain"
	apperrors "github.com/spec-kit/servicehub/pkg/util"
)

// RequireCustomer ensures a customer is authenticated.
func RequireCustomer() fiber.Handler {
	return requireRole(domain.RoleCustomer)
}

// RequireProfessional ensures a professional is authenticated.
func RequireProfessional() fiber.Handler {
	return requireRole(domain.RoleProfessional)
}

// RequireAnyRole ensures the caller is authenticated regardless of role.
func RequireAnyRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

func requireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.Role != role {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
