package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sh5080/quickvest-go/pkg/configs"
	controller "github.com/sh5080/quickvest-go/pkg/controllers"
	_interface "github.com/sh5080/quickvest-go/pkg/interfaces"
	middleware "github.com/sh5080/quickvest-go/pkg/middlewares"
)

// multipart framing on top of the largest accepted upload
const bodyLimitSlack = 1 << 20

// NewApp builds the fiber app with middleware and every route.
// Prometheus collection and /metrics are skipped when serverless is true.
func NewApp(config *configs.EnvConfig, services *_interface.ServiceContainer, serverless bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               config.Server.AppName,
		BodyLimit:             int(config.Upload.MaxBytes) + bodyLimitSlack,
		ErrorHandler:          controller.ErrorHandler,
		DisableStartupMessage: serverless,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Server.CorsAllowOrigins,
		AllowCredentials: config.Server.CorsAllowOrigins != "*",
	}))
	app.Use(middleware.RequestID())
	if !serverless {
		app.Use(middleware.Prometheus(config.Server.AppName))
	}

	SetupRoutes(app, config, services, serverless)

	return app
}

// SetupRoutes registers the application routes.
func SetupRoutes(app *fiber.App, config *configs.EnvConfig, services *_interface.ServiceContainer, serverless bool) {
	SetupAppRoutes(app, config, services, serverless)

	api := app.Group("/api")
	SetupOnboardingRoutes("/onboarding", api, config, services)
}
