package handlers

import (
	"errors"

	"foodcart/internal/api"
	applog "foodcart/internal/log"
	"foodcart/internal/services"
	"foodcart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Products *services.ProductService
	Sessions *services.SessionService
}

// guard verifies the session upstream before a privileged page. A stale
// local flag gets cleared here instead of surfacing as a confusing failure
// on the first privileged request later.
func (h *ProductHandler) guard(c *fiber.Ctx, sid string) (string, error) {
	sess, err := h.Sessions.Verify(c.Context(), sid)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			return "", fail(c, fiber.StatusUnauthorized, "user not authenticated")
		}
		applog.Error(c, "session.verify.fail", err, nil)
		return "", fail(c, fiber.StatusBadGateway, "could not verify session")
	}
	return sess.Bearer, nil
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	sid := ensureSID(c)
	article, ok := validate.Article(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return fail(c, fiber.StatusNotFound, "this item is no longer available")
	}

	bearer, err := h.guard(c, sid)
	if err != nil || bearer == "" {
		return err
	}

	view, err := h.Products.Detail(c.Context(), bearer, article)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "this item is no longer available")
		}
		applog.Error(c, "product.detail.fail", err, map[string]any{"article": article})
		return fail(c, fiber.StatusBadGateway, "could not load product")
	}
	return c.JSON(view)
}

type reviewRequest struct {
	Review string `json:"review"`
}

func (h *ProductHandler) SubmitReview(c *fiber.Ctx) error {
	sid := ensureSID(c)
	article, ok := validate.Article(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusNotFound, "this item is no longer available")
	}

	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	text, ok := validate.ReviewText(req.Review)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "review text must not be empty")
	}

	sess, err := h.Sessions.Current(sid)
	if err != nil || !sess.LoggedIn || sess.Bearer == "" {
		return fail(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	review, err := h.Products.SubmitReview(c.Context(), sess.Bearer, sess.Username, article, text)
	if err != nil {
		applog.Error(c, "review.submit.fail", err, map[string]any{"article": article})
		return fail(c, fiber.StatusBadGateway, "could not submit review")
	}
	applog.Audit(c, "review.submit", map[string]any{"article": article})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"review": review})
}

type favoriteRequest struct {
	IsFavorite bool `json:"isFavorite"`
}

// ToggleFavorite flips the bookmark keyed on the state the client currently
// shows; the response carries the confirmed state.
func (h *ProductHandler) ToggleFavorite(c *fiber.Ctx) error {
	sid := ensureSID(c)
	article, ok := validate.Article(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusNotFound, "this item is no longer available")
	}

	var req favoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	sess, err := h.Sessions.Current(sid)
	if err != nil || !sess.LoggedIn || sess.Bearer == "" {
		return fail(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	state, err := h.Products.ToggleFavorite(c.Context(), sess.Bearer, article, req.IsFavorite)
	if err != nil {
		applog.Error(c, "favorite.toggle.fail", err, map[string]any{"article": article})
		return fail(c, fiber.StatusBadGateway, "could not change favorite status")
	}
	applog.Audit(c, "favorite.toggle", map[string]any{"article": article, "favorite": state})
	return c.JSON(fiber.Map{"isFavorite": state})
}
