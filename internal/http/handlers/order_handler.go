package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"techstore/internal/domain"
	applog "techstore/internal/log"
	"techstore/internal/services"
	"techstore/internal/validate"
)

type OrderHandler struct {
	Orders *services.OrderService
	Audit  *services.AuditService
}

type createOrderRequest struct {
	Items []services.OrderLine `json:"items"`
}

// POST /api/orders — place an order for the logged-in user.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	// The engine re-checks all of this inside its transaction; rejecting here
	// just gives the caller a cleaner message.
	for _, ln := range req.Items {
		if _, ok := validate.ID(ln.ProductID); !ok {
			return jsonError(c, fiber.StatusBadRequest, "invalid product id")
		}
		if !validate.Quantity(ln.Quantity, services.MaxLineQty) {
			return jsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("quantity must be between 1 and %d", services.MaxLineQty))
		}
	}

	order, err := h.Orders.Create(u.ID, req.Items)
	if err != nil {
		applog.Info(c, "order.place.fail", map[string]any{"user_id": u.ID, "error": err.Error()})
		return orderError(c, err)
	}

	applog.Audit(c, "order.place", map[string]any{
		"order_id": order.ID,
		"total":    order.Total.String(),
		"lines":    len(order.Items),
	})
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GET /api/orders/my — the caller's orders, newest first.
func (h *OrderHandler) Mine(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	orders, err := h.Orders.ListByUser(u.ID)
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// GET /api/orders (ADMIN) — every order, newest first.
func (h *OrderHandler) All(c *fiber.Ctx) error {
	orders, err := h.Orders.ListAll()
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// PATCH /api/orders/:id/status (ADMIN)
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if id == "" || req.Status == "" {
		return jsonError(c, fiber.StatusBadRequest, "missing id or status")
	}

	next, err := h.Orders.UpdateStatus(id, req.Status)
	if err != nil {
		applog.Info(c, "order.status.fail", map[string]any{"order_id": id, "error": err.Error()})
		return orderError(c, err)
	}

	// Audit trail is the caller's job, not the status machine's.
	actor, _ := c.Locals("user").(*domain.User)
	h.Audit.Record(actor.Email, "StatusChanged", "Order", id, "New Status: "+next.String())
	applog.Audit(c, "order.status", map[string]any{"order_id": id, "status": next.String()})
	return c.SendStatus(fiber.StatusNoContent)
}
