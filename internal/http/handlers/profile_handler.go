package handlers

import (
	"errors"

	applog "foodcart/internal/log"
	"foodcart/internal/services"
	"foodcart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	Profile  *services.ProfileService
	Sessions *services.SessionService
}

func (h *ProfileHandler) guard(c *fiber.Ctx, sid string) (string, error) {
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

// Overview serves the whole profile page: fields, favorites, orders and
// reviews, with independent page cursors for the two paginated lists.
func (h *ProfileHandler) Overview(c *fiber.Ctx) error {
	sid := ensureSID(c)
	bearer, err := h.guard(c, sid)
	if err != nil || bearer == "" {
		return err
	}

	ordersPage := validate.Page(c.Query("ordersPage"))
	reviewsPage := validate.Page(c.Query("reviewsPage"))

	view, err := h.Profile.Overview(c.Context(), bearer, ordersPage, reviewsPage)
	if err != nil {
		applog.Error(c, "profile.load.fail", err, nil)
		return fail(c, fiber.StatusBadGateway, "could not load profile")
	}
	return c.JSON(view)
}

type descriptionRequest struct {
	Description string `json:"description"`
}

func (h *ProfileHandler) SaveDescription(c *fiber.Ctx) error {
	sid := ensureSID(c)
	bearer, err := h.guard(c, sid)
	if err != nil || bearer == "" {
		return err
	}

	var req descriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	desc, ok := validate.Description(req.Description)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "description is too long")
	}

	if err := h.Profile.SaveDescription(c.Context(), bearer, desc); err != nil {
		applog.Error(c, "profile.save.fail", err, nil)
		return fail(c, fiber.StatusBadGateway, "could not save description")
	}
	applog.Audit(c, "profile.save", nil)
	return notice(c, "description updated successfully")
}
