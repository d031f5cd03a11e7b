package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"klopp/bootstrap"
	"klopp/database"
	"klopp/internal/logging"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create the tweets collection indexes and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := loadConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}

		conn := database.NewConnection(cfg.MongoURI, cfg.MongoDB)
		defer func() { _ = conn.Disconnect(context.Background()) }()

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.StoreTimeout*2)
		defer cancel()

		db, err := conn.Database(ctx)
		if err != nil {
			return err
		}
		if err := bootstrap.EnsureTweetIndexes(ctx, db, cfg.MongoCollection); err != nil {
			return err
		}

		logging.Log.WithField("collection", cfg.MongoCollection).
			WithField("index", bootstrap.TweetDateTimeIndex).
			Info("tweet indexes ensured")
		return nil
	},
}
