package handlers

import (
	"errors"

	"foodcart/internal/api"
	applog "foodcart/internal/log"
	"foodcart/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart     *services.CartService
	Products *services.ProductService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cv, err := h.Cart.View(sid)
	if err != nil {
		applog.Error(c, "cart.view.fail", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not load your cart")
	}
	return c.JSON(cv)
}

type addToCartRequest struct {
	Article int `json:"article"`
}

// Add appends one unit of the article to the cart. Adding the same article
// again appends another line; lines are never merged.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Article <= 0 {
		return fail(c, fiber.StatusBadRequest, "missing article")
	}

	line, err := h.Products.AddToCart(c.Context(), sid, req.Article)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "this item is no longer available")
		}
		applog.Error(c, "cart.add.fail", err, map[string]any{"article": req.Article})
		return fail(c, fiber.StatusBadGateway, "could not add item to cart")
	}
	applog.Audit(c, "cart.add", map[string]any{"article": line.Article})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"line": line})
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Cart.Clear(sid); err != nil {
		applog.Error(c, "cart.clear.fail", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not clear your cart")
	}
	applog.Audit(c, "cart.clear", nil)
	return notice(c, "cart cleared")
}
