package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"klopp/dto"
	"klopp/internal/logging"
	"klopp/internal/models"
	repo "klopp/internal/repository"
	"klopp/internal/validation"
)

var ErrTweetInvalid = errors.New("tweet failed validation")

// Submission is what came out of one form post.
type Submission struct {
	Form  validation.Result
	Tweet models.Tweet
}

// SubmitTweet validates the form and, only when it passes, appends the
// sanitised values. Returns ErrTweetInvalid with the violations in
// Submission.Form, or the store error when the write fails.
func SubmitTweet(ctx context.Context, tweets repo.TweetRepository, form dto.TweetForm) (Submission, error) {
	sub := Submission{Form: validation.ValidateTweet(form.User, form.Content)}
	if !sub.Form.Valid() {
		return sub, ErrTweetInvalid
	}

	tweet, err := tweets.Append(ctx, sub.Form.User, sub.Form.Content)
	if err != nil {
		return sub, err
	}
	sub.Tweet = tweet

	logging.Log.WithFields(logrus.Fields{
		"tweet_id":       tweet.ID.Hex(),
		"tweet_datetime": tweet.DateTime,
	}).Info("tweet stored")
	return sub, nil
}
