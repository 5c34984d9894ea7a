package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"counter-api/internal/metrics"
)

// Metrics records request counts and latencies per route.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		method := c.Method()

		m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response().StatusCode())).Inc()
		m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}
