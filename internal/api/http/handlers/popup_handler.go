package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-directory/internal/api/dto"
	"github.com/spec-kit/org-directory/internal/service"
)

const (
	visitorCookie    = "visitor_id"
	visitorCookieTTL = 365 * 24 * time.Hour
)

// PopupHandler exposes the notice popup endpoints.
type PopupHandler struct {
	popups *service.PopupService
}

// NewPopupHandler constructs handler.
func NewPopupHandler(popups *service.PopupService) *PopupHandler {
	return &PopupHandler{popups: popups}
}

// visitorID reads the visitor cookie, issuing a new one when missing.
func visitorID(c *fiber.Ctx) string {
	if id := c.Cookies(visitorCookie); id != "" {
		return id
	}
	id := service.NewVisitorID()
	c.Cookie(&fiber.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(visitorCookieTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return id
}

// Visible handles GET /api/v1/popups.
func (h *PopupHandler) Visible(c *fiber.Ctx) error {
	vis, err := h.popups.Visible(c.UserContext(), visitorID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.PopupResponse{Date: vis.Date, Popups: vis.PopupIDs}})
}

// HideToday handles POST /api/v1/popups/:id/hide-today.
func (h *PopupHandler) HideToday(c *fiber.Ctx) error {
	if err := h.popups.HideToday(c.UserContext(), visitorID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
