package markup

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind classifies a block.
type Kind int

// Block kinds.
const (
	Blank Kind = iota
	Paragraph
	Heading1
	Heading2
	BulletItem
	NumberedItem
)

var kindNames = [...]string{
	Blank:        "blank",
	Paragraph:    "paragraph",
	Heading1:     "heading1",
	Heading2:     "heading2",
	BulletItem:   "bullet",
	NumberedItem: "numbered",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsList reports whether k is a bullet or numbered item.
func (k Kind) IsList() bool {
	return k == BulletItem || k == NumberedItem
}

// Block is one classified source line.
type Block struct {
	Kind  Kind
	Runs  []StyledRun
	Index int // numbered items only
	Depth int // list items only
	Line  int // 1-based source line
}

// Text returns the block text without emphasis markers.
func (b Block) Text() string {
	return PlainText(b.Runs)
}

var (
	crlfOrCR        = regexp.MustCompile(`\r\n?`)
	bulletPattern   = regexp.MustCompile(`^[-*]\s+(.*)$`)
	numberedPattern = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)
)

// Parse classifies every physical line of text. Classification is total:
// a line that matches no prefix rule is a paragraph.
func Parse(text string) []Block {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}

	blocks := make([]Block, 0, len(lines))
	for i, line := range lines {
		b := classify(line)
		b.Line = i + 1
		blocks = append(blocks, b)
	}
	return blocks
}

// splitLines normalizes line endings and splits text into lines.
// A trailing newline does not produce an extra empty line.
func splitLines(text string) []string {
	text = crlfOrCR.ReplaceAllString(text, "\n")
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func classify(line string) Block {
	if strings.TrimSpace(line) == "" {
		return Block{Kind: Blank}
	}

	if rest, ok := strings.CutPrefix(line, "## "); ok {
		return Block{Kind: Heading2, Runs: Format(strings.TrimSpace(rest))}
	}
	if rest, ok := strings.CutPrefix(line, "# "); ok {
		return Block{Kind: Heading1, Runs: Format(strings.TrimSpace(rest))}
	}
	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return Block{Kind: BulletItem, Runs: Format(strings.TrimSpace(m[1]))}
	}
	if m := numberedPattern.FindStringSubmatch(line); m != nil {
		if index, err := strconv.Atoi(m[1]); err == nil {
			return Block{Kind: NumberedItem, Index: index, Runs: Format(strings.TrimSpace(m[2]))}
		}
	}

	return Block{Kind: Paragraph, Runs: Format(strings.TrimSpace(line))}
}
