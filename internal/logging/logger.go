package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const serviceName = "klopp"

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry

	accessMu   sync.Mutex
	accessPipe *io.PipeWriter
)

// Tests do not go through main, so the logger has to be usable right after
// the package is loaded.
func init() {
	Init("info", "text")
}

// Init (re)configures the global logger. Unknown levels fall back to info,
// any format other than "json" is text.
func Init(level, format string) {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	Log = logger.WithFields(logrus.Fields{"service": serviceName})

	accessMu.Lock()
	if accessPipe != nil {
		_ = accessPipe.Close()
	}
	accessPipe = Log.WriterLevel(logrus.InfoLevel)
	accessMu.Unlock()
}

// SetOutput redirects the global logger, mostly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

type accessWriter struct{}

func (accessWriter) Write(p []byte) (int, error) {
	accessMu.Lock()
	defer accessMu.Unlock()
	return accessPipe.Write(p)
}

// Writer returns an io.Writer that logs each line at info level. Fiber's
// access log middleware writes into it. All callers share the one pipe
// built by Init, so a later Init redirects writers handed out earlier.
func Writer() io.Writer {
	return accessWriter{}
}
