package markup

import "strings"

// SectionName identifies a group of blocks kept together on a page.
type SectionName string

// Section names.
const (
	SectionDefault     SectionName = "default"
	SectionAttendees   SectionName = "attendees"
	SectionActionItems SectionName = "action-items"
	SectionDiscussion  SectionName = "discussion"
	SectionSignature   SectionName = "signature"
)

// sectionKeywords is searched in order; the first keyword contained in a
// lowercased heading wins.
var sectionKeywords = []struct {
	keyword string
	name    SectionName
}{
	{"attendee", SectionAttendees},
	{"action item", SectionActionItems},
	{"discussion", SectionDiscussion},
	{"signature", SectionSignature},
}

// ResolveSection maps heading text to a section name.
func ResolveSection(heading string) SectionName {
	lower := strings.ToLower(heading)
	for _, k := range sectionKeywords {
		if strings.Contains(lower, k.keyword) {
			return k.name
		}
	}
	return SectionDefault
}

// SectionGroup is a contiguous run of blocks resolved to the same section.
type SectionGroup struct {
	Name   SectionName
	Blocks []Block
}

// GroupOptions tunes section detection.
type GroupOptions struct {
	// ColonLabels treats a paragraph ending in ":" that is directly followed
	// by a list item as a section heading.
	ColonLabels bool
}

// Group partitions blocks into section groups in document order.
// Concatenating the blocks of every group yields blocks unchanged.
func Group(blocks []Block, opts GroupOptions) []SectionGroup {
	var groups []SectionGroup
	current := SectionDefault

	for i, b := range blocks {
		name := current
		switch {
		case b.Kind == Heading1:
			name = SectionDefault
		case b.Kind == Heading2:
			name = ResolveSection(b.Text())
		case opts.ColonLabels && isColonLabel(blocks, i):
			name = ResolveSection(b.Text())
		}

		if len(groups) == 0 || name != current {
			groups = append(groups, SectionGroup{Name: name})
			current = name
		}
		last := &groups[len(groups)-1]
		last.Blocks = append(last.Blocks, b)
	}

	return groups
}

func isColonLabel(blocks []Block, i int) bool {
	b := blocks[i]
	if b.Kind != Paragraph || !strings.HasSuffix(b.Text(), ":") {
		return false
	}
	return i+1 < len(blocks) && blocks[i+1].Kind.IsList()
}
