package logging

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type requestIDKey struct{}

var base = logrus.New()

// Init configures the process logger. Production uses JSON output for log
// aggregation, everything else the human-readable text formatter.
func Init(env, level string) {
	base.SetOutput(os.Stdout)
	if strings.EqualFold(env, "production") {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		base.WithField("log_level", level).Warn("invalid log level, using info")
	}
	base.SetLevel(lvl)
}

// Logger returns the process-wide logger.
func Logger() *logrus.Logger {
	return base
}

// WithRequestID stores rid so FromContext can tag log lines with it.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID set by WithRequestID.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// FromContext returns an entry carrying the request ID, or "unknown" when the
// context has none.
func FromContext(ctx context.Context) *logrus.Entry {
	rid := "unknown"
	if ctx != nil {
		if v := RequestID(ctx); v != "" {
			rid = v
		}
	}
	return base.WithField("request_id", rid)
}
