package layout

import "github.com/alnah/go-mom2pdf/internal/markup"

// State is the state of a Paginator.
type State int

// Paginator states.
const (
	AccumulatingGroup State = iota
	PageFull
	Done
)

func (s State) String() string {
	switch s {
	case AccumulatingGroup:
		return "accumulating"
	case PageFull:
		return "page-full"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// GroupLines is a section group after wrapping.
type GroupLines struct {
	Name  markup.SectionName
	Lines []WrappedLine
}

// Height is the sum of the line heights.
func (g GroupLines) Height() float64 {
	var h float64
	for _, l := range g.Lines {
		h += l.Height
	}
	return h
}

// PlacedLine is a wrapped line positioned on a page.
// Y is the top of the line, measured from the top of the page.
type PlacedLine struct {
	WrappedLine
	Y float64
}

// Page is a finalized output page.
type Page struct {
	Number int
	Lines  []PlacedLine
	Groups []markup.SectionName
}

// Paginator places groups on pages, keeping each group on one page when it
// fits on an empty page.
type Paginator struct {
	cfg     *Config
	state   State
	current Page
	cursor  float64
	pages   []Page
}

// NewPaginator returns a paginator positioned at the top of page 1.
func NewPaginator(cfg *Config) *Paginator {
	return &Paginator{
		cfg:     cfg,
		state:   AccumulatingGroup,
		current: Page{Number: 1},
		cursor:  cfg.Margins.Top,
	}
}

// State returns the current state.
func (p *Paginator) State() State {
	return p.state
}

// Add places every line of g. It panics if called after Finish.
func (p *Paginator) Add(g GroupLines) {
	if p.state == Done {
		panic("layout: Paginator.Add called after Finish")
	}

	total := g.Height()
	switch {
	case p.cursor+total <= p.cfg.Limit():
		p.placeAll(g)
	case total > p.cfg.PrintableHeight():
		p.placeEach(g)
	default:
		p.nextPage()
		p.placeAll(g)
	}
}

// Finish finalizes the in-progress page unless it is empty and returns all pages.
func (p *Paginator) Finish() []Page {
	if p.state != Done {
		p.flush()
		p.state = Done
	}
	return p.pages
}

func (p *Paginator) placeAll(g GroupLines) {
	for _, l := range g.Lines {
		p.place(g.Name, l)
	}
}

// placeEach splits a group taller than an empty page across pages.
func (p *Paginator) placeEach(g GroupLines) {
	for _, l := range g.Lines {
		if p.cursor+l.Height > p.cfg.Limit() && len(p.current.Lines) > 0 {
			p.nextPage()
		}
		p.place(g.Name, l)
	}
}

func (p *Paginator) place(name markup.SectionName, l WrappedLine) {
	p.current.Lines = append(p.current.Lines, PlacedLine{WrappedLine: l, Y: p.cursor})
	p.cursor += l.Height

	if n := len(p.current.Groups); n == 0 || p.current.Groups[n-1] != name {
		p.current.Groups = append(p.current.Groups, name)
	}
}

func (p *Paginator) nextPage() {
	p.state = PageFull
	p.flush()
	p.current = Page{Number: len(p.pages) + 1}
	p.cursor = p.cfg.Margins.Top
	p.state = AccumulatingGroup
}

func (p *Paginator) flush() {
	if len(p.current.Lines) > 0 {
		p.pages = append(p.pages, p.current)
	}
}

// Paginate places groups in order and returns the finalized pages.
func Paginate(groups []GroupLines, cfg *Config) []Page {
	p := NewPaginator(cfg)
	for _, g := range groups {
		p.Add(g)
	}
	return p.Finish()
}
