package layout

// Default layout values, in points unless stated otherwise.
const (
	DefaultMarginLeft   = 50.0
	DefaultMarginRight  = 50.0
	DefaultMarginTop    = 120.0
	DefaultMarginBottom = 100.0

	DefaultBodySize = 12.0
	DefaultH1Size   = 16.0
	DefaultH2Size   = 14.0

	// DefaultLineHeight is a factor applied to the font size.
	DefaultLineHeight   = 1.25
	DefaultListIndent   = 18.0
	DefaultBlankSpacing = 6.0
)

// Margins are distances from the page edges to the printable area.
type Margins struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Config is the immutable geometry and typography of one conversion run.
// It is passed by pointer and never mutated by the layout stages.
type Config struct {
	PageWidth  float64
	PageHeight float64
	Margins    Margins

	BodySize float64
	H1Size   float64
	H2Size   float64

	LineHeight   float64
	ListIndent   float64
	BlankSpacing float64
}

// NewConfig returns the default configuration for a page of the given size.
func NewConfig(pageWidth, pageHeight float64) *Config {
	return &Config{
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		Margins: Margins{
			Left:   DefaultMarginLeft,
			Right:  DefaultMarginRight,
			Top:    DefaultMarginTop,
			Bottom: DefaultMarginBottom,
		},
		BodySize:     DefaultBodySize,
		H1Size:       DefaultH1Size,
		H2Size:       DefaultH2Size,
		LineHeight:   DefaultLineHeight,
		ListIndent:   DefaultListIndent,
		BlankSpacing: DefaultBlankSpacing,
	}
}

// ContentWidth is the width available to text.
func (c *Config) ContentWidth() float64 {
	return c.PageWidth - c.Margins.Left - c.Margins.Right
}

// Limit is the lowest y coordinate a line may reach, measured from the top.
func (c *Config) Limit() float64 {
	return c.PageHeight - c.Margins.Bottom
}

// PrintableHeight is the vertical space of an empty page.
func (c *Config) PrintableHeight() float64 {
	return c.Limit() - c.Margins.Top
}

func (c *Config) lineHeight(size float64) float64 {
	return size * c.LineHeight
}
