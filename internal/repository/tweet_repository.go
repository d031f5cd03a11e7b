package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"klopp/internal/models"
)

// ErrStoreUnavailable matches every failed read or write against the store.
var ErrStoreUnavailable = errors.New("tweet store unavailable")

// StoreError records which operation failed and why.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "tweets " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStoreUnavailable }

// TweetRepository owns the read/write contract of the tweets collection.
type TweetRepository interface {
	// ListAll returns every tweet, newest first.
	ListAll(ctx context.Context) ([]models.Tweet, error)
	// Append stores one already validated tweet stamped with the current time.
	Append(ctx context.Context, user, content string) (models.Tweet, error)
}

// DatabaseProvider hands out the shared database handle.
type DatabaseProvider interface {
	Database(ctx context.Context) (*mongo.Database, error)
}
