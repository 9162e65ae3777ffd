package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mom2pdf"
	"github.com/alnah/go-mom2pdf/internal/config"
)

// Exit codes for mom2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful conversion
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitTemplate = 4 // Letterhead PDF missing or unusable
	ExitContent  = 5 // Text the built-in fonts cannot draw
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Template errors (exit 4)
	if errors.Is(err, mom2pdf.ErrTemplateUnavailable) ||
		errors.Is(err, ErrTemplateNotFound) {
		return ExitTemplate
	}

	// Content errors (exit 5)
	if errors.Is(err, mom2pdf.ErrMeasurement) {
		return ExitContent
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, mom2pdf.ErrEmptyDocument) ||
		errors.Is(err, mom2pdf.ErrInvalidMargin) ||
		errors.Is(err, mom2pdf.ErrInvalidFontSize) ||
		errors.Is(err, mom2pdf.ErrInvalidLayout) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputConflict) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
