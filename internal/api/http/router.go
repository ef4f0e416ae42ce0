package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-directory/internal/api/http/handlers"
	"github.com/spec-kit/org-directory/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Directory      *handlers.DirectoryHandler
	Popups         *handlers.PopupHandler
	Admin          *handlers.AdminHandler
	Metrics        *handlers.MetricsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Snapshot)

	api := app.Group("/api/v1")
	api.Get("/status", cfg.Directory.Status)
	api.Get("/directory", cfg.Directory.Search)
	api.Get("/popups", cfg.Popups.Visible)
	api.Post("/popups/:id/hide-today", cfg.Popups.HideToday)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle)
	admin.Post("/roster/reload", cfg.Admin.Reload)
	admin.Put("/roster", cfg.Admin.Replace)
}
