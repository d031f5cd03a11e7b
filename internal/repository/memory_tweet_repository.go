package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"klopp/internal/models"
)

// MemoryTweetRepository keeps tweets in process. Used for local runs with
// STORE_DRIVER=memory and in tests.
type MemoryTweetRepository struct {
	mu     sync.RWMutex
	tweets []models.Tweet
	now    func() time.Time
}

// NewMemoryTweetRepository uses time.Now when now is nil.
func NewMemoryTweetRepository(now func() time.Time) *MemoryTweetRepository {
	if now == nil {
		now = time.Now
	}
	return &MemoryTweetRepository{now: now}
}

// ListAll orders by sort timestamp; equal timestamps keep the latest insert first.
func (r *MemoryTweetRepository) ListAll(ctx context.Context) ([]models.Tweet, error) {
	if err := ctx.Err(); err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}

	r.mu.RLock()
	out := make([]models.Tweet, 0, len(r.tweets))
	for i := len(r.tweets) - 1; i >= 0; i-- {
		out = append(out, r.tweets[i])
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateTime > out[j].DateTime
	})
	return out, nil
}

// Append copies user and content. Callers may pass strings that alias a
// request buffer which is reused after the handler returns.
func (r *MemoryTweetRepository) Append(ctx context.Context, user, content string) (models.Tweet, error) {
	if err := ctx.Err(); err != nil {
		return models.Tweet{}, &StoreError{Op: "append", Err: err}
	}

	tweet := models.NewTweet(strings.Clone(user), strings.Clone(content), r.now())
	tweet.ID = bson.NewObjectID()

	r.mu.Lock()
	r.tweets = append(r.tweets, tweet)
	r.mu.Unlock()
	return tweet, nil
}
