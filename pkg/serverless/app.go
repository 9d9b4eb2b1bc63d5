package serverless

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	client "github.com/sh5080/quickvest-go/pkg/clients"
	"github.com/sh5080/quickvest-go/pkg/configs"
	route "github.com/sh5080/quickvest-go/pkg/routes"
	service "github.com/sh5080/quickvest-go/pkg/services"
)

// BuildApp wires the app for a function runtime: no metrics endpoint and no
// status reporter, since instances are short-lived.
func BuildApp(ctx context.Context, config *configs.EnvConfig) (*fiber.App, error) {
	gemini, err := client.NewGeminiClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("init inference client: %w", err)
	}

	services := service.NewServiceContainer(config, gemini, nil)
	return route.NewApp(config, services, true), nil
}
