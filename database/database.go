package database

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"klopp/internal/logging"
)

// ErrNotConfigured means no MONGO_URI was given.
var ErrNotConfigured = errors.New("database: mongo uri is not configured")

// ConnectionError wraps a failed connect or ping.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "database: cannot reach mongo: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Connection lazily opens one client for the life of the process and hands
// out the same database handle to every caller. A failed attempt is not
// cached, so the next call tries again.
type Connection struct {
	uri            string
	dbName         string
	connectTimeout time.Duration

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

type Option func(*Connection)

// WithConnectTimeout bounds connect plus ping. Default 10s.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *Connection) {
		if d > 0 {
			c.connectTimeout = d
		}
	}
}

func NewConnection(uri, dbName string, opts ...Option) *Connection {
	c := &Connection{
		uri:            uri,
		dbName:         dbName,
		connectTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Database returns the cached handle, connecting on first use.
func (c *Connection) Database(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}
	if c.uri == "" {
		return nil, ErrNotConfigured
	}

	client, err := mongo.Connect(options.Client().ApplyURI(c.uri))
	if err != nil {
		return nil, &ConnectionError{Err: errors.Wrap(err, "connect")}
	}

	pingCtx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, &ConnectionError{Err: errors.Wrap(err, "ping primary")}
	}

	c.client = client
	c.db = client.Database(c.dbName)
	logging.Log.WithField("db", c.dbName).Info("connected to MongoDB")
	return c.db, nil
}

// Disconnect closes the client if one was opened. Safe to call twice.
func (c *Connection) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client, c.db = nil, nil
	return err
}
