package handlers

import (
	"errors"

	applog "foodcart/internal/log"
	"foodcart/internal/services"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Order *services.OrderService
}

// Place submits the cart as an order batch. Precondition failures (no
// session, empty cart) never reach the upstream; an upstream failure leaves
// the cart untouched so the same submit can be retried.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)

	err := h.Order.Place(c.Context(), sid)
	switch {
	case err == nil:
		applog.Audit(c, "order.place", nil)
		return notice(c, "orders placed successfully")
	case errors.Is(err, services.ErrNotAuthenticated):
		applog.Security(c, "order.place.unauthenticated", nil)
		return fail(c, fiber.StatusUnauthorized, "user not authenticated")
	case errors.Is(err, services.ErrEmptyCart):
		return fail(c, fiber.StatusBadRequest, "cart is empty")
	default:
		applog.Error(c, "order.place.fail", err, nil)
		return fail(c, fiber.StatusBadGateway, "could not place order")
	}
}
