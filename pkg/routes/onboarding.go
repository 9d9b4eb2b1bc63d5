package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/quickvest-go/pkg/configs"
	controller "github.com/sh5080/quickvest-go/pkg/controllers"
	_interface "github.com/sh5080/quickvest-go/pkg/interfaces"
)

func SetupOnboardingRoutes(endpoint string, api fiber.Router, config *configs.EnvConfig, services *_interface.ServiceContainer) {
	onboarding := api.Group(endpoint)
	maxBytes := config.Upload.MaxBytes

	onboarding.Get("/config", controller.OnboardingConfig())
	onboarding.Post("/account/create-from-license", controller.CreateAccountFromLicense(services.ExtractionService, maxBytes))
	onboarding.Post("/quiz/help", controller.QuizHelp(services.QuizService))

	// not implemented yet; they validate input and answer 501
	onboarding.Post("/chat/next-question", controller.ChatNextQuestion())
	onboarding.Post("/docs/extract", controller.DocsExtract(maxBytes))
	onboarding.Post("/kyc/verify", controller.KYCVerify())
	onboarding.Post("/account/create", controller.AccountCreate())
	onboarding.Post("/recommendation", controller.Recommendation())
}
