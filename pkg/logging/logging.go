package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cblog "github.com/charmbracelet/log"
)

// Logger is the logging port used by the runtime, the scaffolder and the
// CLI. Fields are alternating key/value pairs.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

// Options configures the charmbracelet/log adapter.
type Options struct {
	Writer     io.Writer
	Level      string
	TimeFormat string
	Formatter  cblog.Formatter
	Component  string
}

// logger implements Logger using charmbracelet/log.
type logger struct {
	base   *cblog.Logger
	fields []interface{}
}

// New creates a Logger with the supplied options.
func New(opts Options) (Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	base := cblog.NewWithOptions(writer, cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: true,
		Formatter:       opts.Formatter,
	})

	fields := make([]interface{}, 0, 2)
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}

	return &logger{base: base, fields: fields}, nil
}

// Debug emits a debug log entry.
func (l *logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(cblog.DebugLevel, msg, fields...)
}

// Info emits an info log entry.
func (l *logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(cblog.InfoLevel, msg, fields...)
}

// Warn emits a warning log entry.
func (l *logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(cblog.WarnLevel, msg, fields...)
}

// Error emits an error log entry.
func (l *logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(cblog.ErrorLevel, msg, fields...)
}

// With derives a new logger carrying persistent fields.
func (l *logger) With(fields ...interface{}) Logger {
	if l == nil {
		return NewNoop()
	}
	next := make([]interface{}, len(l.fields), len(l.fields)+len(fields))
	copy(next, l.fields)
	next = append(next, fields...)
	return &logger{base: l.base, fields: next}
}

func (l *logger) log(level cblog.Level, msg string, fields ...interface{}) {
	if l == nil || l.base == nil {
		return
	}
	payload := make([]interface{}, 0, len(l.fields)+len(fields))
	payload = append(payload, l.fields...)
	payload = append(payload, fields...)

	switch level {
	case cblog.DebugLevel:
		l.base.Debug(msg, payload...)
	case cblog.WarnLevel:
		l.base.Warn(msg, payload...)
	case cblog.ErrorLevel:
		l.base.Error(msg, payload...)
	default:
		l.base.Info(msg, payload...)
	}
}

// compile-time assurance
var _ Logger = (*logger)(nil)
