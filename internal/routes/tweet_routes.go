package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/swagger"

	"klopp/internal/controllers"
	"klopp/internal/middleware"
	repo "klopp/internal/repository"
)

type Deps struct {
	Tweets       repo.TweetRepository
	Sessions     *session.Store
	Title        string
	StoreTimeout time.Duration
	CookieSecure bool
}

func SetupRoutesTweet(app *fiber.App, deps Deps) {
	board := controllers.Board{
		Tweets:       deps.Tweets,
		Title:        deps.Title,
		StoreTimeout: deps.StoreTimeout,
	}
	csrf := middleware.CSRF(deps.Sessions, deps.CookieSecure)

	app.Get("/", csrf, controllers.IndexPage(board))
	app.Post("/", csrf, controllers.PostTweet(board))

	api := app.Group("/api")
	api.Get("/tweets", controllers.TweetsAPI())
}

func SetupRoutesSystem(app *fiber.App) {
	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", controllers.Healthz())
}
