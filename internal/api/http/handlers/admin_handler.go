package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/org-directory/internal/api/dto"
	"github.com/spec-kit/org-directory/internal/auth"
	"github.com/spec-kit/org-directory/internal/service"
	apperrors "github.com/spec-kit/org-directory/pkg/util/errorutil"
)

// AdminHandler exposes roster management endpoints.
type AdminHandler struct {
	directory *service.DirectoryService
	logger    *zap.Logger
}

// NewAdminHandler constructs handler.
func NewAdminHandler(directory *service.DirectoryService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{directory: directory, logger: logger}
}

func (h *AdminHandler) actor(c *fiber.Ctx) string {
	if p, ok := auth.PrincipalFromContext(c); ok {
		return p.SubjectID
	}
	return ""
}

// Reload handles POST /admin/roster/reload.
func (h *AdminHandler) Reload(c *fiber.Ctx) error {
	h.logger.Info("roster reload requested", zap.String("actor", h.actor(c)))
	if err := h.directory.Load(c.UserContext()); err != nil {
		return apperrors.NewDomainError("ROSTER_LOAD_FAILED", h.directory.Status().Message, http.StatusBadGateway, nil)
	}
	stats, _ := h.directory.Stats()
	return c.JSON(fiber.Map{"data": dto.RosterStatsResponse{Organizations: stats.Organizations, People: stats.People}})
}

// Replace handles PUT /admin/roster with a roster document as body.
func (h *AdminHandler) Replace(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return fiber.NewError(http.StatusBadRequest, "roster document required")
	}
	h.logger.Info("roster upload", zap.String("actor", h.actor(c)), zap.Int("bytes", len(body)))

	stats, err := h.directory.Replace(c.UserContext(), body)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.RosterStatsResponse{Organizations: stats.Organizations, People: stats.People}})
}
