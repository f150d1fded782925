// internal/api/middleware.go
package api

import (
	"time"

	"career-match/internal/common/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderCache     = "X-Cache"

	localRequestID = "requestId"
)

// requestID propagates a caller supplied X-Request-ID or assigns a new one.
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Locals(localRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

func requestIDFrom(c *fiber.Ctx) string {
	if id, ok := c.Locals(localRequestID).(string); ok {
		return id
	}
	return ""
}

func accessLog(log logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug("http request", map[string]interface{}{
			"requestId": requestIDFrom(c),
			"method":    c.Method(),
			"path":      c.Path(),
			"status":    c.Response().StatusCode(),
			"latencyMs": float64(time.Since(start).Microseconds()) / 1000,
		})
		return err
	}
}
