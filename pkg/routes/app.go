package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/quickvest-go/pkg/configs"
	controller "github.com/sh5080/quickvest-go/pkg/controllers"
	_interface "github.com/sh5080/quickvest-go/pkg/interfaces"
)

// SetupAppRoutes registers health and, outside serverless, metrics.
func SetupAppRoutes(app *fiber.App, config *configs.EnvConfig, services *_interface.ServiceContainer, serverless bool) {
	app.Get("/api/health", controller.Health(services.ServerStatusService, config.Server.Version))

	if !serverless {
		app.Get("/metrics", controller.Metrics())
	}
}
