package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type ctxKey string

// RequestIDKey is the context key under which the request id is stored
const RequestIDKey ctxKey = "request_id"

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logrus logger: JSON output at the given level
func Setup(level string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// ContextWithRequestID stores the request id in ctx
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestIDFromContext returns the request id stored in ctx, if any
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithContext creates a logger carrying the request id found in ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if id := RequestIDFromContext(ctx); id != "" {
		logger.Entry = logger.Entry.WithField("request_id", id)
	}
	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
