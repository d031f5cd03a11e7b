package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"klopp/internal/logging"
)

const (
	CSRFFormField  = "_csrf"
	CSRFCookieName = "csrf_"
	SessionCookie  = "session_id"

	csrfContextKey = "csrf"
)

// NewSessionStore keeps sessions in memory; CSRF tokens are bound to them.
func NewSessionStore(secure bool) *session.Store {
	return session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:" + SessionCookie,
		CookieSecure:   secure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		KeyGenerator:   uuid.NewString,
	})
}

// CSRF issues a token on safe requests and checks the _csrf form field on
// everything else. Tokens are single use, so every accepted POST gets a new
// one. Rejections never reach the handler.
func CSRF(sessions *session.Store, secure bool) fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:" + CSRFFormField,
		CookieName:     CSRFCookieName,
		CookieSecure:   secure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		Expiration:     time.Hour,
		SingleUseToken: true,
		Session:        sessions,
		SessionKey:     "fiber.csrf.token",
		ContextKey:     csrfContextKey,
		KeyGenerator:   uuid.NewString,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logging.Log.WithError(err).
				WithField("path", c.Path()).
				WithField("request_id", RequestID(c)).
				Warn("csrf check failed")
			return fiber.ErrForbidden
		},
	})
}

// CSRFToken returns the token issued for this request, if any.
func CSRFToken(c *fiber.Ctx) string {
	token, _ := c.Locals(csrfContextKey).(string)
	return token
}
