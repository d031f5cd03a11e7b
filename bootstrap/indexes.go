package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"klopp/internal/models"
)

const TweetDateTimeIndex = "tweet_datetime_desc"

// TweetIndexModels lists the indexes the tweets collection needs.
func TweetIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: models.FieldDateTime, Value: -1}},
			Options: options.Index().SetName(TweetDateTimeIndex),
		},
	}
}

// EnsureTweetIndexes backs the newest-first listing. Creating an index that
// already exists is a no-op on the server.
func EnsureTweetIndexes(ctx context.Context, db *mongo.Database, collection string) error {
	_, err := db.Collection(collection).Indexes().CreateMany(ctx, TweetIndexModels())
	return err
}
