package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/Rexesezka/ServiceDesk1/pkg/util"
)

// RequireActor ensures the caller is authenticated.
func RequireActor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := ActorFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireSupport ensures the caller is a support staff member.
func RequireSupport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !actor.IsSupport {
			return apperrors.NewForbidden("support staff role required")
		}
		return c.Next()
	}
}
