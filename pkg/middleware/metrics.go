package middleware

import (
	"strconv"
	"time"

	"github.com/NeuralTrust/qa-service/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
)

type metricsMiddleware struct{}

func NewMetricsMiddleware() Middleware {
	return &metricsMiddleware{}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !prometheus.Config.EnableHTTP {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		method := c.Method()
		prometheus.HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
		prometheus.HTTPRequestLatency.WithLabelValues(method).Observe(float64(time.Since(start).Milliseconds()))
		return err
	}
}
