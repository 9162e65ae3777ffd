package mom2pdf

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-mom2pdf/internal/layout"
)

// Margin bounds in points.
const (
	MinMargin = 0.0
	MaxMargin = 1000.0
)

// Font size bounds in points.
const (
	MinFontSize = 4.0
	MaxFontSize = 96.0
)

// Line height factor bounds.
const (
	MinLineHeight = 1.0
	MaxLineHeight = 3.0
)

// MaxSpacing bounds the list indent and blank line spacing, in points.
const MaxSpacing = 200.0

// Margins are distances in points from the page edges to the printable area.
type Margins struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// FontSizes are the font sizes in points per block kind.
type FontSizes struct {
	Body float64
	H1   float64
	H2   float64
}

// LayoutSettings configures the printable area and typography.
type LayoutSettings struct {
	Margins      Margins
	Fonts        FontSizes
	LineHeight   float64 // factor applied to the font size
	ListIndent   float64 // points per list depth level
	BlankSpacing float64 // points of vertical space for a blank line
}

// DefaultLayoutSettings returns layout settings with default values.
func DefaultLayoutSettings() *LayoutSettings {
	return &LayoutSettings{
		Margins: Margins{
			Left:   layout.DefaultMarginLeft,
			Right:  layout.DefaultMarginRight,
			Top:    layout.DefaultMarginTop,
			Bottom: layout.DefaultMarginBottom,
		},
		Fonts: FontSizes{
			Body: layout.DefaultBodySize,
			H1:   layout.DefaultH1Size,
			H2:   layout.DefaultH2Size,
		},
		LineHeight:   layout.DefaultLineHeight,
		ListIndent:   layout.DefaultListIndent,
		BlankSpacing: layout.DefaultBlankSpacing,
	}
}

// Validate checks that layout settings are within bounds.
// Returns nil if s is nil (nil means use defaults).
func (s *LayoutSettings) Validate() error {
	if s == nil {
		return nil
	}

	margins := []struct {
		name  string
		value float64
	}{
		{"left", s.Margins.Left},
		{"right", s.Margins.Right},
		{"top", s.Margins.Top},
		{"bottom", s.Margins.Bottom},
	}
	for _, m := range margins {
		if m.value < MinMargin || m.value > MaxMargin {
			return fmt.Errorf("%w: %s %.2f (must be between %.0f and %.0f)", ErrInvalidMargin, m.name, m.value, MinMargin, MaxMargin)
		}
	}

	sizes := []struct {
		name  string
		value float64
	}{
		{"body", s.Fonts.Body},
		{"h1", s.Fonts.H1},
		{"h2", s.Fonts.H2},
	}
	for _, f := range sizes {
		if f.value < MinFontSize || f.value > MaxFontSize {
			return fmt.Errorf("%w: %s %.2f (must be between %.0f and %.0f)", ErrInvalidFontSize, f.name, f.value, MinFontSize, MaxFontSize)
		}
	}

	if s.LineHeight < MinLineHeight || s.LineHeight > MaxLineHeight {
		return fmt.Errorf("%w: line height %.2f (must be between %.1f and %.1f)", ErrInvalidLayout, s.LineHeight, MinLineHeight, MaxLineHeight)
	}
	if s.ListIndent < 0 || s.ListIndent > MaxSpacing {
		return fmt.Errorf("%w: list indent %.2f (must be between 0 and %.0f)", ErrInvalidLayout, s.ListIndent, MaxSpacing)
	}
	if s.BlankSpacing < 0 || s.BlankSpacing > MaxSpacing {
		return fmt.Errorf("%w: blank spacing %.2f (must be between 0 and %.0f)", ErrInvalidLayout, s.BlankSpacing, MaxSpacing)
	}

	return nil
}

// layoutConfig builds the engine configuration for a page of the given size.
// The printable area must not be empty.
func (s *LayoutSettings) layoutConfig(pageWidth, pageHeight float64) (*layout.Config, error) {
	cfg := &layout.Config{
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		Margins: layout.Margins{
			Left:   s.Margins.Left,
			Right:  s.Margins.Right,
			Top:    s.Margins.Top,
			Bottom: s.Margins.Bottom,
		},
		BodySize:     s.Fonts.Body,
		H1Size:       s.Fonts.H1,
		H2Size:       s.Fonts.H2,
		LineHeight:   s.LineHeight,
		ListIndent:   s.ListIndent,
		BlankSpacing: s.BlankSpacing,
	}

	if cfg.ContentWidth() <= 0 {
		return nil, fmt.Errorf("%w: left+right margins %.2f leave no width on a %.2fpt page",
			ErrInvalidMargin, s.Margins.Left+s.Margins.Right, pageWidth)
	}
	if cfg.PrintableHeight() <= 0 {
		return nil, fmt.Errorf("%w: top+bottom margins %.2f leave no height on a %.2fpt page",
			ErrInvalidMargin, s.Margins.Top+s.Margins.Bottom, pageHeight)
	}
	return cfg, nil
}

// CheckPage reports whether the margins leave a printable area on a page
// of the given size. A nil receiver checks the defaults.
func (s *LayoutSettings) CheckPage(pageWidth, pageHeight float64) error {
	if s == nil {
		s = DefaultLayoutSettings()
	}
	_, err := s.layoutConfig(pageWidth, pageHeight)
	return err
}

// Input contains conversion parameters.
type Input struct {
	Text        string          // Document content (required)
	Template    *Template       // Background template (required)
	Layout      *LayoutSettings // Layout settings (optional, nil = defaults)
	ColonLabels bool            // Treat "Label:" paragraphs before lists as section headings
	Debug       bool            // Collect a diagnostic trace
}

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	PDF   []byte
	Pages int
	Trace *Trace // nil unless Input.Debug is set
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for debug traces and failures.
// Panics if l is nil (programmer error).
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("mom2pdf: WithLogger logger must not be nil")
	}
	return func(c *Converter) {
		c.logger = l
	}
}

// WithClock sets the clock used for the PDF creation date.
// A fixed clock makes repeated conversions byte-comparable in metadata.
// Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("mom2pdf: WithClock function must not be nil")
	}
	return func(c *Converter) {
		c.now = now
	}
}
