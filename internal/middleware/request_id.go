package middleware

import (
	"github.com/ISLASKRIGA/IMony3/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"time"
)

const RequestIDKey = "X-Request-ID"

func NewRequestIDMiddleware() fiber.Handler {
	utilsInstance := utils.New()

	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		// Client-supplied ids are honored but capped so log lines stay sane.
		if len(requestID) > 64 {
			requestID = ""
		}
		if requestID == "" {
			requestID, _ = utilsInstance.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}
