// Package logging provides the CLI's structured logger, grounded on
// tomtom215-cartographus's internal/logging package (a package-level
// zerolog.Logger initialized once from verbosity/format settings, with a
// console writer for interactive terminals).
package logging

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/stylescan/stylescan/domain"
)

var logger = zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()

// Init (re)configures the package logger. verbose raises the level to debug
// and switches to a human-readable console writer; otherwise stderr gets
// compact JSON lines suitable for capture in CI.
func Init(verbose bool) {
	level := zerolog.InfoLevel
	var writer zerolog.ConsoleWriter
	if verbose {
		level = zerolog.DebugLevel
		writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
		return
	}
	logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// L returns the package logger for direct use by cmd/stylescan commands.
func L() *zerolog.Logger {
	return &logger
}

// domainLogger adapts the package logger to domain.Logger, which the
// analysis engine uses to report non-fatal warnings (e.g. invariant
// violations absorbed during clustering).
type domainLogger struct{}

// NewDomainLogger returns a domain.Logger backed by the package logger.
func NewDomainLogger() domain.Logger {
	return domainLogger{}
}

func (domainLogger) Warn(msg string, fields map[string]interface{}) {
	event := logger.Warn()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}
