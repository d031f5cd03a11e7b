package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klopp/internal/middleware"
	repo "klopp/internal/repository"
)

func TestRoutes(t *testing.T) {
	app := fiber.New()
	store := repo.NewMemoryTweetRepository(nil)
	SetupRoutesSystem(app)
	SetupRoutesTweet(app, Deps{
		Tweets:       store,
		Sessions:     middleware.NewSessionStore(false),
		Title:        "Klopp",
		StoreTimeout: time.Second,
	})

	form := url.Values{"user": {"Klopp"}, "content": {"Hello there, world!"}}.Encode()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "health", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "tweets api reserved", method: http.MethodGet, path: "/api/tweets", wantStatus: http.StatusNotImplemented, wantBody: `{"error":"not implemented"}`},
		{name: "post needs csrf token", method: http.MethodPost, path: "/", body: form, wantStatus: http.StatusForbidden},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}

	tweets, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tweets)
}
