package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"klopp/internal/models"
)

type MongoTweetRepository struct {
	db         DatabaseProvider
	collection string
	now        func() time.Time
}

func NewMongoTweetRepository(db DatabaseProvider, collection string) *MongoTweetRepository {
	return &MongoTweetRepository{
		db:         db,
		collection: collection,
		now:        time.Now,
	}
}

func (r *MongoTweetRepository) col(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.db.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(r.collection), nil
}

func (r *MongoTweetRepository) ListAll(ctx context.Context) ([]models.Tweet, error) {
	col, err := r.col(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: models.FieldDateTime, Value: -1}})
	cursor, err := col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: errors.Wrap(err, "find")}
	}
	defer cursor.Close(ctx)

	tweets := make([]models.Tweet, 0)
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, &StoreError{Op: "list", Err: errors.Wrap(err, "decode")}
	}
	return tweets, nil
}

func (r *MongoTweetRepository) Append(ctx context.Context, user, content string) (models.Tweet, error) {
	col, err := r.col(ctx)
	if err != nil {
		return models.Tweet{}, err
	}

	tweet := models.NewTweet(user, content, r.now())
	res, err := col.InsertOne(ctx, tweet)
	if err != nil {
		return models.Tweet{}, &StoreError{Op: "append", Err: errors.Wrap(err, "insert")}
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		tweet.ID = id
	}
	return tweet, nil
}
