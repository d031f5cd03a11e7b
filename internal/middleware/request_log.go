package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"klopp/internal/logging"
)

const requestIDKey = "requestid"

// Common is the chain every route runs through: panic recovery, a request
// id, and an access log line written through logrus.
func Common() []fiber.Handler {
	return []fiber.Handler{
		recover.New(),
		requestid.New(requestid.Config{
			Generator:  uuid.NewString,
			ContextKey: requestIDKey,
		}),
		logger.New(logger.Config{
			Format: "${locals:requestid} ${status} ${method} ${path} ${latency}\n",
			Output: logging.Writer(),
		}),
	}
}

func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}
