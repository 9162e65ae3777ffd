package layout

import (
	"strconv"
	"strings"

	"github.com/alnah/go-mom2pdf/internal/markup"
)

// BulletMarker is drawn before bullet items.
const BulletMarker = "•"

// Fragment is a styled piece of a wrapped line.
// X is relative to the left edge of the printable area.
type Fragment struct {
	Text  string
	Style Style
	Size  float64
	X     float64
	Width float64
}

// WrappedLine is one visual line of a block.
type WrappedLine struct {
	Fragments []Fragment
	Height    float64
	Indent    float64
	Kind      markup.Kind
}

// Text concatenates the fragment texts.
func (l WrappedLine) Text() string {
	var b strings.Builder
	for _, f := range l.Fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}

// Right returns the x coordinate of the right edge of the last fragment.
func (l WrappedLine) Right() float64 {
	var right float64
	for _, f := range l.Fragments {
		right = max(right, f.X+f.Width)
	}
	return right
}

// Wrap breaks a block into lines no wider than width.
// A word wider than width sits alone on its own line. Blank blocks yield a
// single line of vertical space without fragments.
func Wrap(b markup.Block, width float64, cfg *Config, m Measurer) ([]WrappedLine, error) {
	var (
		lines []WrappedLine
		size  float64
		err   error
	)

	switch b.Kind {
	case markup.Blank:
		return []WrappedLine{{Height: cfg.BlankSpacing, Kind: b.Kind}}, nil

	case markup.Heading1:
		size = cfg.H1Size
		lines, err = wrapRuns(b.Runs, width, size, true, m)
		if err != nil {
			return nil, err
		}
		for i := range lines {
			center(&lines[i], width)
		}

	case markup.Heading2:
		size = cfg.H2Size
		lines, err = wrapRuns(b.Runs, width, size, true, m)

	case markup.BulletItem, markup.NumberedItem:
		size = cfg.BodySize
		lines, err = wrapListItem(b, width, cfg, m)

	default:
		size = cfg.BodySize
		lines, err = wrapRuns(b.Runs, width, size, false, m)
	}
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		lines = []WrappedLine{{}}
	}
	for i := range lines {
		lines[i].Kind = b.Kind
		lines[i].Height = cfg.lineHeight(lineSize(lines[i], size))
	}
	return lines, nil
}

// lineSize is the largest fragment size of l, or fallback for an empty line.
func lineSize(l WrappedLine, fallback float64) float64 {
	if len(l.Fragments) == 0 {
		return fallback
	}
	var size float64
	for _, f := range l.Fragments {
		size = max(size, f.Size)
	}
	return size
}

func center(l *WrappedLine, width float64) {
	offset := (width - l.Right()) / 2
	if offset <= 0 {
		return
	}
	for i := range l.Fragments {
		l.Fragments[i].X += offset
	}
}

// wrapListItem wraps the item text with a hanging indent and puts the marker
// on the first line. When a word fits width but not the indented width, the
// marker gets a line of its own and the text wraps at the full width with no
// indent.
func wrapListItem(b markup.Block, width float64, cfg *Config, m Measurer) ([]WrappedLine, error) {
	marker := BulletMarker
	if b.Kind == markup.NumberedItem {
		marker = strconv.Itoa(b.Index) + "."
	}

	markerWidth, err := m.Width(marker, Style{}, cfg.BodySize)
	if err != nil {
		return nil, err
	}
	gap, err := m.Width(" ", Style{}, cfg.BodySize)
	if err != nil {
		return nil, err
	}

	base := float64(b.Depth) * cfg.ListIndent
	indent := base + max(cfg.ListIndent, markerWidth+gap)

	lines, err := wrapRuns(b.Runs, width-indent, cfg.BodySize, false, m)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		lines = []WrappedLine{{}}
	}

	if overflows(lines, width-indent) {
		lines, err = wrapRuns(b.Runs, width, cfg.BodySize, false, m)
		if err != nil {
			return nil, err
		}
		markerLine := WrappedLine{Fragments: []Fragment{{
			Text:  marker,
			Size:  cfg.BodySize,
			X:     base,
			Width: markerWidth,
		}}}
		return append([]WrappedLine{markerLine}, lines...), nil
	}

	for i := range lines {
		lines[i].Indent = indent
		for j := range lines[i].Fragments {
			lines[i].Fragments[j].X += indent
		}
	}

	first := &lines[0]
	first.Fragments = append([]Fragment{{
		Text:  marker,
		Size:  cfg.BodySize,
		X:     base,
		Width: markerWidth,
	}}, first.Fragments...)

	return lines, nil
}

// widthTolerance absorbs rounding in widths summed piece by piece.
const widthTolerance = 1e-9

// overflows reports whether any line is wider than width. Only a line holding
// a single oversized word can be.
func overflows(lines []WrappedLine, width float64) bool {
	for _, l := range lines {
		if l.Right() > width+widthTolerance {
			return true
		}
	}
	return false
}

// piece is the part of a unit drawn in one style.
type piece struct {
	text  string
	style Style
	width float64
}

// unit is the atom of line breaking: a word or a gap of two or more spaces.
type unit struct {
	pieces []piece
	width  float64

	// spaceBefore marks a single separating space, dropped at line breaks.
	spaceBefore bool
	spaceStyle  Style
}

// wrapRuns packs the words of runs greedily into lines of at most width.
func wrapRuns(runs []markup.StyledRun, width, size float64, bold bool, m Measurer) ([]WrappedLine, error) {
	units := tokenize(runs, bold)
	if len(units) == 0 {
		return nil, nil
	}

	for i := range units {
		u := &units[i]
		for j := range u.pieces {
			w, err := m.Width(u.pieces[j].text, u.pieces[j].style, size)
			if err != nil {
				return nil, err
			}
			u.pieces[j].width = w
			u.width += w
		}
	}

	var (
		lines []WrappedLine
		cur   WrappedLine
		x     float64
	)
	for _, u := range units {
		var sep float64
		if len(cur.Fragments) > 0 && u.spaceBefore {
			w, err := m.Width(" ", u.spaceStyle, size)
			if err != nil {
				return nil, err
			}
			sep = w
		}

		if len(cur.Fragments) > 0 && x+sep+u.width > width {
			lines = append(lines, cur)
			cur, x, sep = WrappedLine{}, 0, 0
		}

		if sep > 0 {
			appendFragment(&cur, " ", u.spaceStyle, size, x, sep)
			x += sep
		}
		for _, p := range u.pieces {
			appendFragment(&cur, p.text, p.style, size, x, p.width)
			x += p.width
		}
	}
	if len(cur.Fragments) > 0 {
		lines = append(lines, cur)
	}

	return lines, nil
}

// appendFragment extends the last fragment when the style matches.
func appendFragment(l *WrappedLine, text string, style Style, size, x, width float64) {
	if n := len(l.Fragments); n > 0 {
		last := &l.Fragments[n-1]
		if last.Style == style && last.Size == size {
			last.Text += text
			last.Width += width
			return
		}
	}
	l.Fragments = append(l.Fragments, Fragment{Text: text, Style: style, Size: size, X: x, Width: width})
}

// tokenize splits runs into words and gaps. A word may span runs of
// different styles; a single space only separates words.
func tokenize(runs []markup.StyledRun, bold bool) []unit {
	var (
		units      []unit
		word       *unit
		spaces     int
		spaceStyle Style
		pending    bool
		pendStyle  Style
	)

	endWord := func() {
		if word != nil {
			units = append(units, *word)
			word = nil
		}
	}
	flushSpaces := func() {
		switch {
		case spaces >= 2:
			units = append(units, unit{pieces: []piece{{text: strings.Repeat(" ", spaces), style: spaceStyle}}})
			pending = false
		case spaces == 1:
			pending, pendStyle = true, spaceStyle
		}
		spaces = 0
	}

	for _, r := range runs {
		style := Style{Bold: r.Bold || bold, Italic: r.Italic}
		text := r.Text
		for text != "" {
			if text[0] == ' ' {
				n := len(text) - len(strings.TrimLeft(text, " "))
				endWord()
				if spaces == 0 {
					spaceStyle = style
				}
				spaces += n
				text = text[n:]
				continue
			}

			n := strings.IndexByte(text, ' ')
			if n < 0 {
				n = len(text)
			}
			if word == nil {
				flushSpaces()
				word = &unit{spaceBefore: pending, spaceStyle: pendStyle}
				pending = false
			}
			addPiece(word, text[:n], style)
			text = text[n:]
		}
	}
	endWord()
	if spaces >= 2 {
		flushSpaces()
	}

	return units
}

func addPiece(u *unit, text string, style Style) {
	if n := len(u.pieces); n > 0 && u.pieces[n-1].style == style {
		u.pieces[n-1].text += text
		return
	}
	u.pieces = append(u.pieces, piece{text: text, style: style})
}
