// Package logger provides logging functionality for the edit-path packages.
package logger

import (
	"github.com/rs/zerolog"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// zerologLogger forwards messages to a zerolog logger at info level.
type zerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a logger backed by zl.
func NewZerologLogger(zl zerolog.Logger) Logger {
	return &zerologLogger{logger: zl}
}

// Logf writes a formatted info message.
func (z *zerologLogger) Logf(format string, args ...interface{}) {
	z.logger.Info().Msgf(format, args...)
}
