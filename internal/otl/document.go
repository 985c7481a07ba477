package otl

import (
	"otlview/internal/source"
)

// CursorLocator identifies a headline (by document order) and a byte offset
// within its text. Built once at decode time when the header declares a
// saved cursor position; never mutated afterwards.
type CursorLocator struct {
	Headline int
	Offset   int
}

// Headline is one outline entry. Text and Note hold the raw on-disk bytes;
// character-set interpretation is an output concern (see internal/outfmt).
type Headline struct {
	Level  int    // absolute nesting depth, 0 is top-level
	Text   []byte // may embed drawing control codes below 0x20
	Attr   byte   // raw attribute byte as read
	Open   bool   // descendants visible when true
	Marked bool   // block-mark state
	// Note is nil when the record has no note; a zero-length note decodes
	// to an empty non-nil slice. HasNote mirrors the attribute bit so the
	// validator can detect disagreement between flag and body.
	HasNote bool
	Note    []byte
	// Span covers the record's bytes in the input file.
	Span source.Span
}

// HasNextSibling reports the informational sibling bit of the raw attribute
// byte. The decoder does not use it to build hierarchy.
func (h *Headline) HasNextSibling() bool {
	return h.Attr&attrSibling != 0
}

// Document is the decoded outline: a flat, level-tagged headline sequence
// plus document metadata. Immutable once Decode returns it; hierarchy is a
// read-time property derived from Level.
type Document struct {
	// File identifies the decoded input within its FileSet, so findings
	// about the document as a whole can still name the right file.
	File source.FileID

	DeclaredHeadlines int
	DeclaredChars     int
	Cursor            *CursorLocator
	BlockMarks        []int
	Headlines         []Headline
}

// CharCount returns the decoded character volume: headline text plus note
// bodies, the quantity the declared character budget is validated against.
func (d *Document) CharCount() int {
	total := 0
	for i := range d.Headlines {
		total += len(d.Headlines[i].Text) + len(d.Headlines[i].Note)
	}
	return total
}

// Roots returns the indices of all level-0 entries in document order.
func (d *Document) Roots() []int {
	var roots []int
	for i := range d.Headlines {
		if d.Headlines[i].Level == 0 {
			roots = append(roots, i)
		}
	}
	return roots
}

// Children returns the indices of the immediate children of headline i:
// the contiguous run of subsequent entries one level deeper, terminated by
// the next entry at the parent's level or above. Entries that skip levels
// (a validator finding) still attach to the nearest shallower predecessor.
func (d *Document) Children(i int) []int {
	if i < 0 || i >= len(d.Headlines) {
		return nil
	}
	parent := d.Headlines[i].Level
	var kids []int
	minSeen := -1
	for j := i + 1; j < len(d.Headlines); j++ {
		lvl := d.Headlines[j].Level
		if lvl <= parent {
			break
		}
		if minSeen < 0 || lvl <= minSeen {
			kids = append(kids, j)
			minSeen = lvl
		}
	}
	return kids
}

// SubtreeEnd returns the exclusive end index of the subtree rooted at i:
// the first subsequent entry at the root's level or above.
func (d *Document) SubtreeEnd(i int) int {
	if i < 0 || i >= len(d.Headlines) {
		return len(d.Headlines)
	}
	lvl := d.Headlines[i].Level
	for j := i + 1; j < len(d.Headlines); j++ {
		if d.Headlines[j].Level <= lvl {
			return j
		}
	}
	return len(d.Headlines)
}
