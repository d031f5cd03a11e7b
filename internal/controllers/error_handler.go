package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"klopp/internal/logging"
	mid "klopp/internal/middleware"
)

// ErrorHandler maps *fiber.Error to its status and everything else to 500.
// Internal details never reach the response body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	entry := logging.Log.WithError(err).WithFields(logrus.Fields{
		"status":     code,
		"method":     c.Method(),
		"path":       c.Path(),
		"request_id": mid.RequestID(c),
	})
	if code >= fiber.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(msg)
}
