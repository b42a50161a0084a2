package logging

import (
	"fmt"
	"log"
	"strings"
)

// StdLoggerAdapter adapts the standard library log.Logger to the Logger
// interface. It renders structured fields as trailing key=value pairs and is
// mainly useful in tests or in environments without zerolog output plumbing.
type StdLoggerAdapter struct {
	logger *log.Logger
}

var _ Logger = (*StdLoggerAdapter)(nil)

// NewStdLoggerAdapter wraps an existing log.Logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Debug logs a message at debug level.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.logger.Println("[DEBUG]", msg, formatFields(fields))
}

// Info logs a message at info level.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.logger.Println("[INFO]", msg, formatFields(fields))
}

// Error logs a message at error level with the causing error attached.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	all := fields
	if err != nil {
		all = append([]Field{Err(err)}, fields...)
	}
	a.logger.Println("[ERROR]", msg, formatFields(all))
}

// Printf logs a formatted message.
func (a *StdLoggerAdapter) Printf(format string, v ...any) {
	a.logger.Printf(format, v...)
}

// Println logs its arguments.
func (a *StdLoggerAdapter) Println(v ...any) {
	a.logger.Println(v...)
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%v", f.Key, f.Value))
	}
	return strings.Join(parts, " ")
}
