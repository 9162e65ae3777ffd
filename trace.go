package mom2pdf

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mom2pdf/internal/layout"
	"github.com/alnah/go-mom2pdf/internal/markup"
	"github.com/alnah/go-mom2pdf/internal/render"
)

// Trace limits.
const (
	// TraceSampleLength is the number of characters of extracted text kept per page.
	TraceSampleLength = 140

	// traceBlockLimit is the number of blocks listed by Trace.String.
	traceBlockLimit = 10
)

// Trace describes what each stage of a conversion produced.
type Trace struct {
	Blocks []TraceBlock
	Groups []TraceGroup
	Pages  []TracePage
}

// TraceBlock is one parsed source line.
type TraceBlock struct {
	Line int
	Kind string
	Text string
}

// TraceGroup is one section group after wrapping.
type TraceGroup struct {
	Name   string
	Blocks int
	Lines  int
	Height float64
}

// TracePage is one output page.
type TracePage struct {
	Number int
	Lines  int
	Groups []string
	Sample string // start of the text re-extracted from the PDF
}

func (t *Trace) addBlocks(blocks []markup.Block) {
	if t == nil {
		return
	}
	for _, b := range blocks {
		t.Blocks = append(t.Blocks, TraceBlock{Line: b.Line, Kind: b.Kind.String(), Text: b.Text()})
	}
}

func (t *Trace) addGroups(groups []markup.SectionGroup, wrapped []layout.GroupLines) {
	if t == nil {
		return
	}
	for i, g := range groups {
		t.Groups = append(t.Groups, TraceGroup{
			Name:   string(g.Name),
			Blocks: len(g.Blocks),
			Lines:  len(wrapped[i].Lines),
			Height: wrapped[i].Height(),
		})
	}
}

func (t *Trace) addPages(pages []layout.Page) {
	if t == nil {
		return
	}
	for _, p := range pages {
		names := make([]string, len(p.Groups))
		for i, n := range p.Groups {
			names[i] = string(n)
		}
		t.Pages = append(t.Pages, TracePage{Number: p.Number, Lines: len(p.Lines), Groups: names})
	}
}

// addSamples stores the start of each page's extracted text.
func (t *Trace) addSamples(texts []string) {
	if t == nil {
		return
	}
	for i := range t.Pages {
		if i < len(texts) {
			t.Pages[i].Sample = render.Sample(strings.TrimSpace(texts[i]), TraceSampleLength)
		}
	}
}

// String formats the trace for humans.
func (t *Trace) String() string {
	if t == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Parsed %d block(s)\n", len(t.Blocks))
	for i, blk := range t.Blocks {
		if i == traceBlockLimit {
			fmt.Fprintf(&b, "  ... %d more\n", len(t.Blocks)-traceBlockLimit)
			break
		}
		fmt.Fprintf(&b, "  line %d: %s %q\n", blk.Line, blk.Kind, blk.Text)
	}

	fmt.Fprintf(&b, "Grouped into %d section(s)\n", len(t.Groups))
	for _, g := range t.Groups {
		fmt.Fprintf(&b, "  %s: %d block(s), %d line(s), %.1fpt\n", g.Name, g.Blocks, g.Lines, g.Height)
	}

	fmt.Fprintf(&b, "Laid out %d page(s)\n", len(t.Pages))
	for _, p := range t.Pages {
		fmt.Fprintf(&b, "  page %d: %d line(s) [%s]\n", p.Number, p.Lines, strings.Join(p.Groups, ", "))
		if p.Sample != "" {
			fmt.Fprintf(&b, "    text: %q\n", p.Sample)
		}
	}
	return b.String()
}
