package handlers

import (
	"github.com/gofiber/fiber/v2"

	"techstore/internal/services"
)

type LogHandler struct {
	Audit *services.AuditService
}

// GET /api/logs (OWNER) — newest 100 audit entries.
func (h *LogHandler) List(c *fiber.Ctx) error {
	logs, err := h.Audit.List()
	if err != nil {
		return err
	}
	return c.JSON(logs)
}
