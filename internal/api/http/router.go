package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ThellaPrasanthi/complain-system/internal/api/http/handlers"
	"github.com/ThellaPrasanthi/complain-system/internal/auth"
	"github.com/ThellaPrasanthi/complain-system/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Complaints     *handlers.ComplaintsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Status)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/login", cfg.Auth.Login)

	complaints := api.Group("/complaints", cfg.AuthMiddleware.Handle)
	complaints.Post("", cfg.Complaints.Create)
	complaints.Get("", cfg.Complaints.List)

	adminOnly := complaints.Group("", auth.RequireRole(domain.RoleAdmin))
	adminOnly.Put("/:id", cfg.Complaints.UpdateStatus)
	adminOnly.Delete("/:id", cfg.Complaints.Delete)
}
