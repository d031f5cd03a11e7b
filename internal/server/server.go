package server

import (
	"html"
	"net/http"

	"github.com/gofiber/fiber/v2"
	fiberhtml "github.com/gofiber/template/html/v2"

	"klopp/config"
	_ "klopp/docs"
	"klopp/internal/controllers"
	"klopp/internal/middleware"
	repo "klopp/internal/repository"
	"klopp/internal/routes"
	"klopp/views"
)

// NewViewEngine loads the embedded templates. Tweets are stored escaped, so
// "unescape" hands html/template the original text to escape exactly once.
func NewViewEngine() *fiberhtml.Engine {
	engine := fiberhtml.NewFileSystem(http.FS(views.FS), ".html")
	engine.AddFunc("unescape", html.UnescapeString)
	return engine
}

// New wires the Fiber app around the given tweet repository.
func New(cfg config.Config, tweets repo.TweetRepository) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.SiteTitle,
		Immutable:             true,
		Views:                 NewViewEngine(),
		ErrorHandler:          controllers.ErrorHandler,
		DisableStartupMessage: true,
	})

	for _, h := range middleware.Common() {
		app.Use(h)
	}

	if cfg.StaticDir != "" {
		app.Static("/static", cfg.StaticDir)
	}

	routes.SetupRoutesSystem(app)
	routes.SetupRoutesTweet(app, routes.Deps{
		Tweets:       tweets,
		Sessions:     middleware.NewSessionStore(cfg.CookieSecure),
		Title:        cfg.SiteTitle,
		StoreTimeout: cfg.StoreTimeout,
		CookieSecure: cfg.CookieSecure,
	})

	return app
}
