package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalsAccessors(t *testing.T) {
	tests := []struct {
		name      string
		handlers  []fiber.Handler
		wantToken bool
		wantID    bool
	}{
		{name: "nothing set"},
		{name: "common chain sets request id", handlers: Common(), wantID: true},
		{name: "csrf issues token on GET", handlers: []fiber.Handler{CSRF(NewSessionStore(false), false)}, wantToken: true},
		{
			name: "wrong types are ignored",
			handlers: []fiber.Handler{func(c *fiber.Ctx) error {
				c.Locals(csrfContextKey, 42)
				c.Locals(requestIDKey, []byte("id"))
				return c.Next()
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var token, id string
			app := fiber.New()
			for _, h := range tt.handlers {
				app.Use(h)
			}
			app.Get("/", func(c *fiber.Ctx) error {
				token = CSRFToken(c)
				id = RequestID(c)
				return c.SendStatus(fiber.StatusNoContent)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

			if tt.wantToken {
				_, err := uuid.Parse(token)
				assert.NoError(t, err)
			} else {
				assert.Empty(t, token)
			}
			if tt.wantID {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
				assert.Equal(t, id, resp.Header.Get(fiber.HeaderXRequestID))
			} else {
				assert.Empty(t, id)
			}
		})
	}
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	app := fiber.New()
	app.Post("/", CSRF(NewSessionStore(false), false), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
