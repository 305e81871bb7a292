package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/palindrome-service/internal/config"
	"github.com/spec-kit/palindrome-service/internal/observability"
)

// NewApp builds the Fiber application with middlewares and routes attached.
// The request timeout bounds reading the request and writing the response.
func NewApp(cfg config.AppConfig, logger *zap.Logger, metrics *observability.Metrics, routes RouteConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		ReadBufferSize:        cfg.ReadBufferSize,
		ReadTimeout:           cfg.RequestTimeout(),
		WriteTimeout:          cfg.RequestTimeout(),
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, logger, metrics)
	RegisterRoutes(app, routes)
	return app
}
