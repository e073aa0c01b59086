package types

import "time"

// Logger is the key/value logger the client reports through.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RetryConfig turns on retries for transient HTTP failures. Zero
// MaxRetries leaves every call single-shot.
type RetryConfig struct {
	MaxRetries int
	RetryWait  time.Duration
	MaxWait    time.Duration
}
