package middleware

import (
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/quickvest-go/pkg/utils"
)

const serverMetricInterval = 10 * time.Second

// Prometheus records request count and latency per route. Errors are rendered
// here so the recorded status matches what the client sees.
func Prometheus(appName string) fiber.Handler {
	var lastUpdate atomic.Int64

	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		utils.RecordRequest(c.Method(), c.Route().Path, c.Response().StatusCode(), time.Since(start).Seconds())

		// host gauges are refreshed at most once per interval
		now := time.Now().UnixNano()
		last := lastUpdate.Load()
		if now-last >= int64(serverMetricInterval) && lastUpdate.CompareAndSwap(last, now) {
			utils.UpdatePrometheusMetrics(appName, utils.GetServerLoad())
		}

		return nil
	}
}
