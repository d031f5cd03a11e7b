package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"MONGO_URI", "MONGO_DB", "MONGO_COLLECTION", "PORT", "STORE_DRIVER",
	"STORE_TIMEOUT", "SITE_TITLE", "STATIC_DIR", "LOG_LEVEL", "LOG_FORMAT",
	"COOKIE_SECURE",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "", cfg.MongoURI)
	assert.Equal(t, "Tweets_Serverless", cfg.MongoDB)
	assert.Equal(t, "tweets", cfg.MongoCollection)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, "Klopp - a Public Tweeter", cfg.SiteTitle)
	assert.False(t, cfg.CookieSecure)
	assert.ErrorIs(t, cfg.Validate(), ErrMongoURIMissing)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "MONGO_URI=mongodb://localhost:27017\nPORT=8080\nSTORE_TIMEOUT=250ms\nCOOKIE_SECURE=true\nSTORE_DRIVER=Memory\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := LoadConfig(path)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.StoreTimeout)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigProcessEnvWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=8080\n"), 0o600))

	assert.Equal(t, "9000", LoadConfig(path).Port)
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_TIMEOUT", "soon")
	t.Setenv("COOKIE_SECURE", "maybe")

	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.False(t, cfg.CookieSecure)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "mongo with uri", cfg: Config{StoreDriver: DriverMongo, MongoURI: "mongodb://x"}},
		{name: "mongo without uri", cfg: Config{StoreDriver: DriverMongo}, wantErr: true},
		{name: "memory without uri", cfg: Config{StoreDriver: DriverMemory}},
		{name: "unknown driver", cfg: Config{StoreDriver: "redis"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
