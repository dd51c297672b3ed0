package handlers

import (
	"github.com/gofiber/fiber/v2"

	"techstore/internal/domain"
)

// Routes registers the API surface. Global middleware (request ids, logging)
// is the caller's concern so tests can mount the bare routes; loginGuards are
// prepended to the login route for per-route throttling.
func Routes(app *fiber.App, d *Deps, loginGuards ...fiber.Handler) {
	api := app.Group("/api")

	api.Post("/auth/login", append(loginGuards, d.AuthHandler.Login)...)
	api.Post("/auth/logout", d.AuthHandler.Logout)

	api.Get("/products", d.ProductHandler.List)
	api.Get("/products/:id", d.ProductHandler.Get)
	api.Post("/products", RequireRole(d.Auth, domain.RoleAdmin), d.ProductHandler.Create)
	api.Put("/products/:id", RequireRole(d.Auth, domain.RoleAdmin), d.ProductHandler.Update)
	api.Delete("/products/:id", RequireRole(d.Auth, domain.RoleAdmin), d.ProductHandler.Delete)

	api.Post("/orders", RequireUser(d.Auth), d.OrderHandler.Create)
	api.Get("/orders/my", RequireUser(d.Auth), d.OrderHandler.Mine)
	api.Get("/orders", RequireRole(d.Auth, domain.RoleAdmin), d.OrderHandler.All)
	api.Patch("/orders/:id/status", RequireRole(d.Auth, domain.RoleAdmin), d.OrderHandler.UpdateStatus)

	api.Get("/logs", RequireRole(d.Auth, domain.RoleOwner), d.LogHandler.List)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
}
