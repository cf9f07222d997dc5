package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ThellaPrasanthi/complain-system/internal/domain"
	apperrors "github.com/ThellaPrasanthi/complain-system/pkg/util"
)

// RequireRole ensures the authenticated caller holds the given role.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewTokenMissing()
		}
		if claims.Role != required {
			return apperrors.NewAccessDenied()
		}
		return c.Next()
	}
}
