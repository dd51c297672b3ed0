package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"techstore/internal/domain"
)

func jsonError(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

// orderError maps the order engine's error taxonomy onto HTTP statuses:
// missing things are 404, conflicts with current state are 409, caller-input
// problems are 400.
func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrOrderNotFound):
		return jsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrProductUnavailable),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrTerminalState):
		return jsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrUnknownStatus):
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return err // falls through to the app error handler
	}
}
