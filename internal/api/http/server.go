package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/teamboard/internal/observability"
)

// NewApp builds the fiber application with middlewares and routes registered.
func NewApp(appName string, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration, routes RouteConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, logger, metrics, timeout)
	RegisterRoutes(app, routes)
	return app
}
