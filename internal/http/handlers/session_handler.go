package handlers

import (
	"errors"

	"foodcart/internal/api"
	applog "foodcart/internal/log"
	"foodcart/internal/services"
	"foodcart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	Sessions *services.SessionService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *SessionHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	username, ok := validate.Credential(req.Username)
	if !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_username"})
		return fail(c, fiber.StatusUnauthorized, "invalid username or password")
	}
	if _, ok := validate.Credential(req.Password); !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"username": username, "reason": "bad_password_format"})
		return fail(c, fiber.StatusUnauthorized, "invalid username or password")
	}

	if err := h.Sessions.Login(c.Context(), sid, username, req.Password); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			applog.Security(c, "auth.login.fail", map[string]any{"username": username})
			return fail(c, fiber.StatusUnauthorized, "invalid username or password")
		}
		applog.Error(c, "auth.login.upstream", err, map[string]any{"username": username})
		return fail(c, fiber.StatusBadGateway, "login failed, please try again")
	}

	applog.Audit(c, "auth.login.success", map[string]any{"username": username})
	return c.JSON(fiber.Map{"loggedIn": true, "username": username})
}

func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Sessions.Logout(c.Context(), sid); err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			return fail(c, fiber.StatusUnauthorized, "user not authenticated")
		}
		applog.Error(c, "auth.logout.fail", err, nil)
		return fail(c, fiber.StatusBadGateway, "logout failed, please try again")
	}
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"loggedIn": false, "redirect": "/login"})
}

// Current reports the persisted flag as-is. It is advisory: privileged pages
// re-verify against the upstream on entry.
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	sid := ensureSID(c)
	sess, err := h.Sessions.Current(sid)
	if err != nil {
		applog.Error(c, "session.read.fail", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not read session")
	}
	return c.JSON(fiber.Map{"loggedIn": sess.LoggedIn, "username": sess.Username})
}
