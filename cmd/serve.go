package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"klopp/bootstrap"
	"klopp/config"
	"klopp/database"
	"klopp/internal/logging"
	repo "klopp/internal/repository"
	"klopp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the HTTP server",
	RunE:    runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		if !errors.Is(err, config.ErrMongoURIMissing) {
			return err
		}
		// keep serving; every data operation reports the problem
		logging.Log.WithError(err).Error("The MONGO_URI environment variable is not set!")
	}

	tweets, closeStore := newTweetRepository(cmd.Context(), cfg)
	defer closeStore()

	app := server.New(cfg, tweets)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- app.Listen(":" + cfg.Port) }()
	logging.Log.Infof("listening at http://localhost:%s", cfg.Port)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logging.Log.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}

// newTweetRepository picks the store from STORE_DRIVER. For Mongo it tries
// to connect and ensure indexes up front; a failure there is only logged
// because the connection is retried on the first request.
func newTweetRepository(ctx context.Context, cfg config.Config) (repo.TweetRepository, func()) {
	if cfg.StoreDriver == config.DriverMemory {
		logging.Log.Warn("using in-memory tweet store, tweets are lost on restart")
		return repo.NewMemoryTweetRepository(nil), func() {}
	}

	conn := database.NewConnection(cfg.MongoURI, cfg.MongoDB)
	closeFn := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := conn.Disconnect(shutdownCtx); err != nil {
			logging.Log.WithError(err).Warn("mongo disconnect failed")
		}
	}

	if cfg.MongoURI == "" {
		return repo.NewMongoTweetRepository(conn, cfg.MongoCollection), closeFn
	}

	startCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()
	db, err := conn.Database(startCtx)
	if err != nil {
		logging.Log.WithError(err).Warn("mongo not reachable at startup, will retry on first request")
	} else if err := bootstrap.EnsureTweetIndexes(startCtx, db, cfg.MongoCollection); err != nil {
		logging.Log.WithError(err).Warn("ensure tweet indexes failed")
	}

	return repo.NewMongoTweetRepository(conn, cfg.MongoCollection), closeFn
}
