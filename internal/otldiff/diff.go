// Package otldiff compares two decoded outline documents at the structural
// level. The comparison runs over canonical-rendered text with a
// line-oriented LCS (conservative: no subtree-move detection), zero context,
// and can overlay the second document's cursor locator without altering the
// diff itself.
package otldiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"otlview/internal/otl"
	"otlview/internal/outfmt"
)

// Kind classifies one reported edit.
type Kind uint8

const (
	// EditDelete: the line exists only in the first document.
	EditDelete Kind = iota
	// EditInsert: the line exists only in the second document.
	EditInsert
	// EditChange: a deletion paired with an insertion at the same position.
	EditChange
)

// Edit is one line-level difference. Line numbers are 1-based within the
// canonical text of the respective document.
type Edit struct {
	Kind    Kind
	ALine   int // line in the first document (Delete, Change)
	BLine   int // line in the second document (Insert, Change)
	OldText string
	NewText string
}

// Options configures a diff run.
type Options struct {
	Encoding outfmt.Encoding
	// StructureOnly elides note bodies from both canonical texts before
	// comparing, so note churn cannot obscure structural changes.
	StructureOnly bool
	// ShowCursor resolves the second document's cursor locator into the
	// report. It never changes the computed edits.
	ShowCursor bool
}

// ResolvedCursor is the overlay position reported with ShowCursor.
type ResolvedCursor struct {
	Headline int
	Offset   int
	Line     int    // 1-based canonical line of the owning headline
	Text     string // decoded text of that headline
	Valid    bool
	Reason   string // set when Valid is false
}

// Report is the result of one comparison.
type Report struct {
	Edits  []Edit
	Cursor *ResolvedCursor
}

// Empty reports whether the two documents rendered identically.
func (r *Report) Empty() bool {
	return len(r.Edits) == 0
}

// Counts returns the number of changed, inserted and deleted lines.
func (r *Report) Counts() (changed, inserted, deleted int) {
	for _, e := range r.Edits {
		switch e.Kind {
		case EditChange:
			changed++
		case EditInsert:
			inserted++
		case EditDelete:
			deleted++
		}
	}
	return
}

// Documents diffs two independently decoded documents. The documents share
// no state and are not mutated.
func Documents(a, b *otl.Document, opts Options) *Report {
	canonOpts := outfmt.CanonicalOpts{
		Encoding:   opts.Encoding,
		ElideNotes: opts.StructureOnly,
	}
	rep := &Report{
		Edits: Lines(outfmt.Canonical(a, canonOpts), outfmt.Canonical(b, canonOpts)),
	}
	if opts.ShowCursor {
		rep.Cursor = resolveCursor(b, canonOpts)
	}
	return rep
}

// Lines computes the line-level edit script between two canonical texts.
// Identical inputs always produce an empty script.
func Lines(aText, bText string) []Edit {
	if aText == bText {
		return nil
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	// Line-level reduction keeps the LCS on whole canonical lines and
	// avoids newline boundary artifacts.
	a, b, lineArray := dmp.DiffLinesToChars(aText, bText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	return toEdits(diffs)
}

// toEdits converts the raw diff chunks into per-line edits, pairing each
// deletion run with the insertion run that immediately follows it so a
// renamed headline reports as one changed line instead of delete+insert.
func toEdits(diffs []diffmatchpatch.Diff) []Edit {
	var edits []Edit
	aLine, bLine := 1, 1

	var pendingDel []Edit
	flush := func() {
		edits = append(edits, pendingDel...)
		pendingDel = nil
	}

	for _, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			aLine += len(lines)
			bLine += len(lines)
		case diffmatchpatch.DiffDelete:
			flush()
			for _, ln := range lines {
				pendingDel = append(pendingDel, Edit{Kind: EditDelete, ALine: aLine, OldText: ln})
				aLine++
			}
		case diffmatchpatch.DiffInsert:
			for _, ln := range lines {
				if len(pendingDel) > 0 {
					del := pendingDel[0]
					pendingDel = pendingDel[1:]
					edits = append(edits, Edit{
						Kind:    EditChange,
						ALine:   del.ALine,
						BLine:   bLine,
						OldText: del.OldText,
						NewText: ln,
					})
				} else {
					edits = append(edits, Edit{Kind: EditInsert, BLine: bLine, NewText: ln})
				}
				bLine++
			}
			flush()
		}
	}
	flush()
	return edits
}

// splitLines breaks a diff chunk into its lines without the trailing
// terminator artifact (canonical text always ends in '\n').
func splitLines(chunk string) []string {
	chunk = strings.TrimSuffix(chunk, "\n")
	if chunk == "" {
		return nil
	}
	return strings.Split(chunk, "\n")
}

// resolveCursor maps the second document's cursor locator onto its
// canonical text.
func resolveCursor(doc *otl.Document, canonOpts outfmt.CanonicalOpts) *ResolvedCursor {
	c := doc.Cursor
	if c == nil {
		return &ResolvedCursor{Valid: false, Reason: "document declares no cursor position"}
	}
	out := &ResolvedCursor{Headline: c.Headline, Offset: c.Offset}
	if c.Headline < 0 || c.Headline >= len(doc.Headlines) {
		out.Reason = "cursor names an out-of-range headline"
		return out
	}
	h := &doc.Headlines[c.Headline]
	if c.Offset < 0 || c.Offset > len(h.Text) {
		out.Reason = "cursor offset exceeds headline text"
		return out
	}
	out.Valid = true
	out.Text = outfmt.DecodeText(h.Text, canonOpts.Encoding)
	out.Line = headlineLine(doc, c.Headline, canonOpts)
	return out
}

// headlineLine returns the 1-based canonical line number of headline i
// under the given render options.
func headlineLine(doc *otl.Document, i int, canonOpts outfmt.CanonicalOpts) int {
	line := 1
	for j := 0; j < i && j < len(doc.Headlines); j++ {
		line += headlineBlockLines(&doc.Headlines[j], canonOpts)
	}
	return line
}

func headlineBlockLines(h *otl.Headline, canonOpts outfmt.CanonicalOpts) int {
	lines := 1
	if h.Note != nil {
		if canonOpts.ElideNotes {
			lines += 3 // note, placeholder, /note
		} else {
			lines += 2 + noteBodyLines(h.Note, canonOpts.Encoding)
		}
	}
	return lines
}

func noteBodyLines(note []byte, enc outfmt.Encoding) int {
	if len(note) == 0 {
		return 0
	}
	text := outfmt.DecodeText(note, enc)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Count(text, "\n") + 1
}
