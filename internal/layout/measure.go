package layout

import (
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// FontFamily is the core font used for every run.
const FontFamily = "Times"

// ErrMeasurement is returned when text cannot be measured with the core fonts.
var ErrMeasurement = errors.New("text measurement failed")

// Style is the emphasis of a measured or drawn piece of text.
type Style struct {
	Bold   bool
	Italic bool
}

// FontStyle returns the fpdf style string for s.
func (s Style) FontStyle() string {
	switch {
	case s.Bold && s.Italic:
		return "BI"
	case s.Bold:
		return "B"
	case s.Italic:
		return "I"
	default:
		return ""
	}
}

// Measurer reports the rendered width of text.
type Measurer interface {
	Width(text string, style Style, size float64) (float64, error)
}

// EncodeWinAnsi converts text to the Windows-1252 bytes expected by the core
// fonts. Runes outside that code page are reported as ErrMeasurement.
func EncodeWinAnsi(text string) (string, error) {
	encoded, err := charmap.Windows1252.NewEncoder().String(text)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not representable in Windows-1252", ErrMeasurement, text)
	}
	return encoded, nil
}

type measureKey struct {
	text  string
	style Style
	size  float64
}

// FontMeasurer measures text with the metrics of the fpdf core fonts.
// A FontMeasurer is not safe for concurrent use; create one per run.
type FontMeasurer struct {
	pdf   *fpdf.Fpdf
	cache map[measureKey]float64
}

// NewFontMeasurer creates a measurer backed by an unused fpdf document.
func NewFontMeasurer() *FontMeasurer {
	return &FontMeasurer{
		pdf:   fpdf.New("P", "pt", "A4", ""),
		cache: make(map[measureKey]float64),
	}
}

// Width implements Measurer.
func (m *FontMeasurer) Width(text string, style Style, size float64) (float64, error) {
	if text == "" {
		return 0, nil
	}

	key := measureKey{text: text, style: style, size: size}
	if w, ok := m.cache[key]; ok {
		return w, nil
	}

	encoded, err := EncodeWinAnsi(text)
	if err != nil {
		return 0, err
	}

	m.pdf.SetFont(FontFamily, style.FontStyle(), size)
	w := m.pdf.GetStringWidth(encoded)
	if m.pdf.Err() {
		return 0, fmt.Errorf("%w: %v", ErrMeasurement, m.pdf.Error())
	}

	m.cache[key] = w
	return w, nil
}

// Compile-time interface check.
var _ Measurer = (*FontMeasurer)(nil)
