package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
// quiet keeps only errors; debug wins over quiet.
func newLogger(w io.Writer, quiet, debug bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case debug:
		level = log.DebugLevel
	case quiet:
		level = log.ErrorLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
