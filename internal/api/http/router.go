package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/payswift/auth-service/internal/api/http/handlers"
	"github.com/payswift/auth-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.AuthMiddleware
	Idempotency    fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	if cfg.Idempotency != nil {
		app.Post("/register", cfg.Idempotency, cfg.Auth.Register)
	} else {
		app.Post("/register", cfg.Auth.Register)
	}
	app.Post("/login", cfg.Auth.Login)

	app.Get("/verifyToken", cfg.AuthMiddleware.Handle, cfg.Auth.VerifyToken)
}
