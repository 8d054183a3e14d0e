package handlers

import (
	applog "foodcart/internal/log"
	"foodcart/internal/services"
	"foodcart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// List serves the storefront listing, optionally filtered by category.
// Pass-through read: no caching, refetched per request.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	category, ok := validate.Category(c.Query("category"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return fail(c, fiber.StatusBadRequest, "invalid category")
	}
	products, err := h.Catalog.ListProducts(c.Context(), category)
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, map[string]any{"category": category})
		return fail(c, fiber.StatusBadGateway, "could not load products")
	}
	return c.JSON(fiber.Map{"products": products})
}

func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories(c.Context())
	if err != nil {
		applog.Error(c, "catalog.categories.fail", err, nil)
		return fail(c, fiber.StatusBadGateway, "could not load categories")
	}
	return c.JSON(fiber.Map{"categories": cats})
}
