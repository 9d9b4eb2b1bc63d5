package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocalsRequestID = "requestid"
)

// RequestID keeps an incoming X-Request-ID or assigns a new UUID.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(LocalsRequestID, id)
		c.Set(HeaderRequestID, id)

		return c.Next()
	}
}
