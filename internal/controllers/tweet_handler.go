package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"klopp/dto"
	"klopp/internal/logging"
	mid "klopp/internal/middleware"
	repo "klopp/internal/repository"
	"klopp/internal/services"
	"klopp/internal/validation"
)

const (
	MsgTweetPosted = "You have successfully posted your tweet!"
	MsgTweetFailed = "We could not save your tweet. Please try again."
)

// Board is what the index handlers need.
type Board struct {
	Tweets       repo.TweetRepository
	Title        string
	StoreTimeout time.Duration
}

func (b Board) storeCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	timeout := b.StoreTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(c.UserContext(), timeout)
}

// renderIndex re-reads the full list and renders the page with a fresh
// CSRF token. A failed read is returned to the error handler.
func (b Board) renderIndex(c *fiber.Ctx, status int, view fiber.Map) error {
	ctx, cancel := b.storeCtx(c)
	defer cancel()

	tweets, err := b.Tweets.ListAll(ctx)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"Title":     b.Title,
		"Tweets":    tweets,
		"CSRFToken": mid.CSRFToken(c),
		"Form":      validation.Result{},
	}
	for k, v := range view {
		data[k] = v
	}
	return c.Status(status).Render("index", data)
}

// GET /

// IndexPage godoc
// @Summary      Tweet board
// @Description  Renders every tweet, newest first, with the submission form
// @Tags         tweets
// @Produce      html
// @Success      200  {string}  string  "HTML page"
// @Failure      500  {string}  string  "store unavailable"
// @Router       / [get]
func IndexPage(b Board) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return b.renderIndex(c, fiber.StatusOK, nil)
	}
}

// POST /

// PostTweet godoc
// @Summary      Post a tweet
// @Description  Validates and stores a tweet, then re-renders the board
// @Tags         tweets
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        user     formData  string  true  "Display name (min 3 chars)"
// @Param        content  formData  string  true  "Tweet text (min 10 chars)"
// @Param        _csrf    formData  string  true  "CSRF token from the page"
// @Success      200  {string}  string  "HTML page with success message or form errors"
// @Failure      403  {string}  string  "missing or invalid CSRF token"
// @Failure      500  {string}  string  "store unavailable"
// @Failure      503  {string}  string  "tweet could not be saved"
// @Router       / [post]
func PostTweet(b Board) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form dto.TweetForm
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid form")
		}

		ctx, cancel := b.storeCtx(c)
		sub, err := services.SubmitTweet(ctx, b.Tweets, form)
		cancel()

		switch {
		case err == nil:
			return b.renderIndex(c, fiber.StatusOK, fiber.Map{"Success": MsgTweetPosted})

		case errors.Is(err, services.ErrTweetInvalid):
			return b.renderIndex(c, fiber.StatusOK, fiber.Map{
				"Errors": sub.Form.Violations,
				"Form":   sub.Form,
			})

		default:
			logging.Log.WithError(err).
				WithField("request_id", mid.RequestID(c)).
				Error("tweet could not be stored")
			return b.renderIndex(c, fiber.StatusServiceUnavailable, fiber.Map{
				"Failure": MsgTweetFailed,
				"Form":    sub.Form,
			})
		}
	}
}

// GET /api/tweets

// TweetsAPI godoc
// @Summary      Tweets API (reserved)
// @Description  Reserved route; the JSON contract has not been designed yet
// @Tags         tweets
// @Produce      json
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /api/tweets [get]
func TweetsAPI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotImplemented).
			JSON(dto.ErrorResponse{Error: "not implemented"})
	}
}
