package mom2pdf

import (
	"errors"

	"github.com/alnah/go-mom2pdf/internal/layout"
	"github.com/alnah/go-mom2pdf/internal/render"
)

// Sentinel errors for library operations.
var (
	ErrEmptyDocument = errors.New("document content cannot be empty")

	// ErrTemplateUnavailable is returned when the template PDF is missing,
	// unreadable, invalid, or has no pages.
	ErrTemplateUnavailable = render.ErrTemplateUnavailable

	// ErrMeasurement is returned when text cannot be measured with the core
	// fonts, typically because it contains characters outside Windows-1252.
	ErrMeasurement = layout.ErrMeasurement

	// ErrRender is returned when a page cannot be drawn or serialized.
	ErrRender = render.ErrRender

	// Layout settings validation errors.
	ErrInvalidMargin   = errors.New("invalid margin")
	ErrInvalidFontSize = errors.New("invalid font size")
	ErrInvalidLayout   = errors.New("invalid layout setting")
)
