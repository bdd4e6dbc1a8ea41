package logger

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// LoggerKey is the context key a *Logger is stored under.
type LoggerKey struct{}

// Logger wraps a klogr logger so it can travel inside a context.Context.
type Logger struct {
	Klogr logr.Logger
}

// NewLogger creates a new Logger instance with a klogr logger.
func NewLogger(ctx context.Context) *Logger {
	return &Logger{
		Klogr: klog.NewKlogr(),
	}
}

// WithMethod returns a Logger tagged with the method name and a fresh trace
// ID, a child of ctx carrying it, and a function that logs method completion.
func (l *Logger) WithMethod(ctx context.Context, method string) (*Logger, context.Context, func()) {
	traceID := uuid.New().String()
	newLogger := &Logger{
		Klogr: l.Klogr.WithValues("method", method, "traceID", traceID),
	}
	ctx = context.WithValue(ctx, LoggerKey{}, newLogger)

	newLogger.V(4).Info("Starting method")

	return newLogger, ctx, func() {
		newLogger.V(4).Info("Method completed")
	}
}

func (l *Logger) V(level int) logr.Logger {
	return l.Klogr.V(level)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Klogr.Info(msg, keysAndValues...)
}

func (l *Logger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.Klogr.Error(err, msg, keysAndValues...)
}

// GetLogger retrieves the Logger from the context, or creates a new one if not present.
func GetLogger(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(LoggerKey{}).(*Logger); ok {
		return logger
	}
	return NewLogger(ctx)
}
