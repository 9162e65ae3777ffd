package markup

import (
	"regexp"
	"strings"
)

// Emphasis patterns. Bold is resolved first; italic applies to the text left
// once the bold markers are gone.
var (
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)
)

// StyledRun is a piece of one line sharing a single emphasis style.
type StyledRun struct {
	Text   string
	Bold   bool
	Italic bool
}

// emphasis tracks the flags of a single byte of the line being formatted.
type emphasis struct {
	bold   bool
	italic bool
}

// Format splits line into styled runs.
// Unterminated markers stay literal and whitespace is kept verbatim.
// Adjacent characters with identical flags form one run; an empty line yields no runs.
func Format(line string) []StyledRun {
	if line == "" {
		return nil
	}

	text := line
	flags := make([]emphasis, len(text))
	text, flags = applyEmphasis(text, flags, boldPattern, func(e *emphasis) { e.bold = true })
	text, flags = applyEmphasis(text, flags, italicPattern, func(e *emphasis) { e.italic = true })

	return collectRuns(text, flags)
}

// applyEmphasis removes the markers of every match of re and marks the
// enclosed bytes. flags stays aligned byte for byte with the returned text.
func applyEmphasis(text string, flags []emphasis, re *regexp.Regexp, mark func(*emphasis)) (string, []emphasis) {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, flags
	}

	var b strings.Builder
	b.Grow(len(text))
	out := make([]emphasis, 0, len(flags))

	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		innerStart, innerEnd := m[2], m[3]

		b.WriteString(text[last:start])
		out = append(out, flags[last:start]...)

		b.WriteString(text[innerStart:innerEnd])
		for i := innerStart; i < innerEnd; i++ {
			e := flags[i]
			mark(&e)
			out = append(out, e)
		}
		last = end
	}
	b.WriteString(text[last:])
	out = append(out, flags[last:]...)

	return b.String(), out
}

// collectRuns groups consecutive bytes with equal flags.
// Markers are ASCII, so run boundaries never split a multi-byte rune.
func collectRuns(text string, flags []emphasis) []StyledRun {
	if text == "" {
		return nil
	}

	var runs []StyledRun
	start := 0
	for i := 1; i <= len(text); i++ {
		if i < len(text) && flags[i] == flags[start] {
			continue
		}
		runs = append(runs, StyledRun{
			Text:   text[start:i],
			Bold:   flags[start].bold,
			Italic: flags[start].italic,
		})
		start = i
	}
	return runs
}

// PlainText concatenates the text of runs in visual order.
func PlainText(runs []StyledRun) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
