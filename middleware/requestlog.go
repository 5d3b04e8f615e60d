package middleware

import (
	"time"

	"hotel-frontdesk/logger"
	"hotel-frontdesk/types"

	"github.com/gofiber/fiber/v2"
)

// RequestLog pushes one entry per request into the async logger after the
// handler chain completes.
func RequestLog(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		asyncLogger.Log(types.LogEntry{
			Method:     c.Method(),
			URL:        c.OriginalURL(),
			StatusCode: c.Response().StatusCode(),
			Latency:    time.Since(start).Microseconds(),
			CreatedAt:  time.Now(),
		})
		return err
	}
}
