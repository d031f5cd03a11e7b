package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init("info", "text") })

	t.Run("json format carries service field", func(t *testing.T) {
		Init("debug", "json")
		var buf bytes.Buffer
		SetOutput(&buf)

		Log.WithField("tweet_user", "Klopp").Debug("stored")

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "klopp", line["service"])
		assert.Equal(t, "Klopp", line["tweet_user"])
		assert.Equal(t, "stored", line["msg"])
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		Init("chatty", "text")
		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

		var buf bytes.Buffer
		SetOutput(&buf)
		Log.Debug("hidden")
		assert.Empty(t, buf.String())
	})
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWriterSharesOnePipe(t *testing.T) {
	t.Cleanup(func() { Init("info", "text") })

	early := Writer()
	Init("info", "text")
	out := &syncBuffer{}
	SetOutput(out)

	for i := 0; i < 50; i++ {
		_, err := Writer().Write([]byte("GET / 200\n"))
		require.NoError(t, err)
	}
	_, err := early.Write([]byte("POST / 403\n"))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		s := out.String()
		return strings.Count(s, "GET / 200") == 50 && strings.Contains(s, "POST / 403")
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, Writer(), early)
}
