package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "techstore/internal/log"
	"techstore/internal/services"
)

// RequireUser enforces a logged-in caller and stashes the user in Locals.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return jsonError(c, fiber.StatusUnauthorized, "login required")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return jsonError(c, fiber.StatusUnauthorized, "login required")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireRole additionally checks the user's role.
func RequireRole(auth *services.AuthService, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return jsonError(c, fiber.StatusUnauthorized, "login required")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return jsonError(c, fiber.StatusUnauthorized, "login required")
		}
		if u.Role != role {
			applog.Security(c, "access.denied", map[string]any{"need": role, "have": u.Role})
			return jsonError(c, fiber.StatusForbidden, "access denied")
		}
		c.Locals("user", u)
		return c.Next()
	}
}
