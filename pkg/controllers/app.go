package controller

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_interface "github.com/sh5080/quickvest-go/pkg/interfaces"
	responseDto "github.com/sh5080/quickvest-go/pkg/types/dtos/responses"
)

var GoVersion = runtime.Version()
var startTime = time.Now()

// Health reports liveness plus the current host load.
func Health(statusService _interface.ServerStatusService, version string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		response := responseDto.HealthResponse{
			Status:    "ok",
			Time:      time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime).String(),
			GoVersion: GoVersion,
		}

		if statusService != nil {
			if status := statusService.GetServerStatus(); status != nil {
				response.CpuUsage = status.CpuUsage
				response.MemoryUsage = status.MemoryUsage
			}
		}

		return c.JSON(response)
	}
}

// Metrics serves the default Prometheus registry.
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
