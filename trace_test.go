package mom2pdf

import (
	"strings"
	"testing"
)

func TestTrace_String(t *testing.T) {
	t.Parallel()

	trace := &Trace{
		Blocks: []TraceBlock{
			{Line: 1, Kind: "heading1", Text: "Title"},
			{Line: 2, Kind: "numbered", Text: "Alice"},
		},
		Groups: []TraceGroup{{Name: "attendees", Blocks: 2, Lines: 2, Height: 35}},
		Pages:  []TracePage{{Number: 1, Lines: 2, Groups: []string{"default", "attendees"}, Sample: "TitleAlice"}},
	}

	got := trace.String()
	want := []string{
		"Parsed 2 block(s)",
		`line 1: heading1 "Title"`,
		"Grouped into 1 section(s)",
		"attendees: 2 block(s), 2 line(s), 35.0pt",
		"Laid out 1 page(s)",
		"page 1: 2 line(s) [default, attendees]",
		`text: "TitleAlice"`,
	}
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("String() missing %q in:\n%s", w, got)
		}
	}
}

func TestTrace_StringTruncatesBlocks(t *testing.T) {
	t.Parallel()

	trace := &Trace{}
	for i := range 25 {
		trace.Blocks = append(trace.Blocks, TraceBlock{Line: i + 1, Kind: "paragraph", Text: "x"})
	}

	got := trace.String()
	if !strings.Contains(got, "... 15 more") {
		t.Errorf("String() should summarize hidden blocks:\n%s", got)
	}
	if strings.Contains(got, "line 11:") {
		t.Errorf("String() lists more than %d blocks:\n%s", traceBlockLimit, got)
	}
}

func TestTrace_NilSafe(t *testing.T) {
	t.Parallel()

	var trace *Trace
	trace.addBlocks(nil)
	trace.addPages(nil)
	trace.addSamples([]string{"x"})
	if trace.String() != "" {
		t.Error("nil Trace should format as empty string")
	}
}

func TestTrace_addSamples(t *testing.T) {
	t.Parallel()

	trace := &Trace{Pages: []TracePage{{Number: 1}, {Number: 2}}}
	long := strings.Repeat("a", TraceSampleLength+50)
	trace.addSamples([]string{"  short  ", long})

	if trace.Pages[0].Sample != "short" {
		t.Errorf("page 1 sample = %q, want %q", trace.Pages[0].Sample, "short")
	}
	if n := len(trace.Pages[1].Sample); n != TraceSampleLength {
		t.Errorf("page 2 sample length = %d, want %d", n, TraceSampleLength)
	}
}
