package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ContextKey is the type for context keys used by the logger
type ContextKey string

const (
	// LoggerKey is the context key for the logger instance
	LoggerKey ContextKey = "logger"

	// FormatHuman selects the console writer
	FormatHuman = "human"
)

// New creates a logger writing to w. format "human" selects the console
// writer, anything else JSON lines. An unknown level falls back to info.
func New(w io.Writer, level, format string) zerolog.Logger {
	if format == FormatHuman {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return NewWithWriter(w).Level(lvl)
}

// NewWithWriter creates a new structured logger with a custom writer
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// WithContext adds the logger to the context
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext retrieves the logger from the context or returns a stderr
// logger. Stdout is never used since it carries the protocol stream.
func FromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(zerolog.Logger); ok {
		return logger
	}
	return NewWithWriter(os.Stderr)
}

// KV adapts a zerolog logger to the key/value Logger interface used by the
// API client.
type KV struct {
	log zerolog.Logger
}

// NewKV wraps log.
func NewKV(log zerolog.Logger) *KV {
	return &KV{log: log}
}

func (k *KV) Debug(msg string, keysAndValues ...interface{}) {
	k.write(k.log.Debug(), msg, keysAndValues)
}

func (k *KV) Info(msg string, keysAndValues ...interface{}) {
	k.write(k.log.Info(), msg, keysAndValues)
}

func (k *KV) Warn(msg string, keysAndValues ...interface{}) {
	k.write(k.log.Warn(), msg, keysAndValues)
}

func (k *KV) Error(msg string, keysAndValues ...interface{}) {
	k.write(k.log.Error(), msg, keysAndValues)
}

func (k *KV) write(event *zerolog.Event, msg string, keysAndValues []interface{}) {
	if event == nil {
		return
	}

	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = "arg"
		}
		if i+1 >= len(keysAndValues) {
			event = event.Interface(key, nil)
			break
		}

		switch v := keysAndValues[i+1].(type) {
		case error:
			event = event.AnErr(key, v)
		default:
			event = event.Interface(key, v)
		}
	}

	event.Msg(msg)
}
