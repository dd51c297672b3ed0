package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"techstore/internal/domain"
	applog "techstore/internal/log"
	"techstore/internal/services"
	"techstore/internal/validate"
)

type ProductHandler struct {
	Catalog *services.ProductService
	Audit   *services.AuditService
}

// GET /api/products?page=&size=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", 10)
	products, err := h.Catalog.List(page, size)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"page": page, "products": products})
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	p, err := h.Catalog.Get(id)
	if errors.Is(err, domain.ErrProductNotFound) {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// POST /api/products (ADMIN)
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if _, ok := validate.Name(in.Name); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product name")
	}
	if !validate.Price(in.Price) {
		return jsonError(c, fiber.StatusBadRequest, "price must not be negative")
	}
	p, err := h.Catalog.Create(in)
	if errors.Is(err, services.ErrInvalidProduct) {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}

	actor, _ := c.Locals("user").(*domain.User)
	h.Audit.Record(actor.Email, "Created", "Product", p.ID,
		fmt.Sprintf("Name: %s, Price: %s", p.Name, p.Price))
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/products/:id (ADMIN)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	p, err := h.Catalog.Update(id, in)
	if errors.Is(err, services.ErrInvalidProduct) {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if errors.Is(err, domain.ErrProductNotFound) {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	actor, _ := c.Locals("user").(*domain.User)
	h.Audit.Record(actor.Email, "Updated", "Product", id,
		fmt.Sprintf("Updated Name: %s, Price: %s", p.Name, p.Price))
	applog.Audit(c, "product.update", map[string]any{"product_id": id})
	return c.JSON(p)
}

// DELETE /api/products/:id (ADMIN) — soft delete.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	err := h.Catalog.Delete(id)
	if errors.Is(err, domain.ErrProductNotFound) {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	actor, _ := c.Locals("user").(*domain.User)
	h.Audit.Record(actor.Email, "Deleted", "Product", id, "Soft deleted product")
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
