package logging

import "context"

// NoopLogger discards all log entries.
type NoopLogger struct{}

// Debug implements Logger.
func (n *NoopLogger) Debug(context.Context, string, ...interface{}) {}

// Info implements Logger.
func (n *NoopLogger) Info(context.Context, string, ...interface{}) {}

// Warn implements Logger.
func (n *NoopLogger) Warn(context.Context, string, ...interface{}) {}

// Error implements Logger.
func (n *NoopLogger) Error(context.Context, string, ...interface{}) {}

// With implements Logger.
func (n *NoopLogger) With(...interface{}) Logger { return n }

// NewNoop returns a Logger that discards all log entries.
func NewNoop() Logger {
	return &NoopLogger{}
}
