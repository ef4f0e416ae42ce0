package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-directory/internal/api/dto"
	"github.com/spec-kit/org-directory/internal/service"
)

// DirectoryHandler exposes roster search endpoints.
type DirectoryHandler struct {
	directory *service.DirectoryService
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(directory *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// Search handles GET /api/v1/directory?q=&expand=.
func (h *DirectoryHandler) Search(c *fiber.Ctx) error {
	res, err := h.directory.Search(c.UserContext(), service.SearchInput{
		Query:     c.Query("q"),
		ExpandAll: c.QueryBool("expand", false),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDirectoryResponse(res)})
}

// Status handles GET /api/v1/status.
func (h *DirectoryHandler) Status(c *fiber.Ctx) error {
	stats, _ := h.directory.Stats()
	return c.JSON(fiber.Map{"data": dto.NewStatusResponse(h.directory.Status(), stats)})
}
