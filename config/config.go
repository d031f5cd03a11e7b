package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"klopp/internal/logging"
)

// ErrMongoURIMissing is reported when MONGO_URI is not set. The server still
// starts, but every data operation fails until it is configured.
var ErrMongoURIMissing = errors.New("config: MONGO_URI environment variable is not set")

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	MongoURI        string
	MongoDB         string
	MongoCollection string
	Port            string
	StoreDriver     string
	StoreTimeout    time.Duration
	SiteTitle       string
	StaticDir       string
	LogLevel        string
	LogFormat       string
	CookieSecure    bool
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		logging.Log.Warnf("config: %s=%q is not a boolean, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		logging.Log.Warnf("config: %s=%q is not a positive duration, using %s", key, v, fallback)
		return fallback
	}
	return d
}

// LoadConfig reads the given env files (".env" when none are passed) and then
// the process environment. Values already present in the environment win.
func LoadConfig(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil {
		logging.Log.Info("no .env file found, using system environment variables")
	}

	return Config{
		MongoURI:        strings.TrimSpace(getEnv("MONGO_URI", "")),
		MongoDB:         getEnv("MONGO_DB", "Tweets_Serverless"),
		MongoCollection: getEnv("MONGO_COLLECTION", "tweets"),
		Port:            getEnv("PORT", "3000"),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		StoreTimeout:    getEnvDuration("STORE_TIMEOUT", 5*time.Second),
		SiteTitle:       getEnv("SITE_TITLE", "Klopp - a Public Tweeter"),
		StaticDir:       getEnv("STATIC_DIR", "./public"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),
	}
}

// Validate reports configuration problems. Only the Mongo driver needs a URI.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
		return nil
	case DriverMongo:
		if c.MongoURI == "" {
			return ErrMongoURIMissing
		}
		return nil
	default:
		return errors.New("config: unknown STORE_DRIVER " + strconv.Quote(c.StoreDriver))
	}
}
