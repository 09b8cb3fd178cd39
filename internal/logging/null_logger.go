package logging

import "github.com/vvka-141/winentity/pkg/winentity"

var _ winentity.Logger = (*NullLogger)(nil)

// NullLogger is a no-op logger that discards all log messages.
// Useful for library callers and tests that do not want output.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}

func (l *NullLogger) Info(format string, args ...interface{}) {}

func (l *NullLogger) Error(format string, args ...interface{}) {}
