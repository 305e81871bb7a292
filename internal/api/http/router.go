package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/palindrome-service/internal/api/http/handlers"
	"github.com/spec-kit/palindrome-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Palindrome *handlers.PalindromeHandler
	// Metrics is served at MetricsPath when both are set.
	Metrics     *observability.Metrics
	MetricsPath string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	palindrome := app.Group("/palindrome")
	palindrome.Get("/counter/check/:input", cfg.Palindrome.CountedCheck)
	palindrome.Get("/timer/check/:input", cfg.Palindrome.TimedCheck)
	palindrome.Delete("/empty-list", cfg.Palindrome.EmptyList)
	palindrome.Get("/metrics", cfg.Palindrome.Metrics)

	if cfg.Metrics != nil && cfg.MetricsPath != "" {
		app.Get(cfg.MetricsPath, adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}
}
