// Package validate walks a decoded outline document and confirms its
// structural invariants. It is a pure report generator: it never fails and
// never mutates the document, so callers can render best-effort output even
// for non-conformant files and decide themselves whether findings block
// further processing.
package validate

import (
	"fmt"

	"otlview/internal/diag"
	"otlview/internal/otl"
	"otlview/internal/source"
)

// Document runs every structural check against doc and reports findings.
// The checks are independent: one violation never suppresses another.
func Document(doc *otl.Document, rep diag.Reporter) {
	if doc == nil || rep == nil {
		return
	}
	checkLevelNesting(doc, rep)
	checkNotes(doc, rep)
	checkCursor(doc, rep)
	checkDeclaredCounts(doc, rep)
	checkBlockMarks(doc, rep)
}

// Bag is a convenience wrapper: validate into a fresh sorted bag.
func Bag(doc *otl.Document, max int) *diag.Bag {
	bag := diag.NewBag(max)
	Document(doc, diag.BagReporter{Bag: bag})
	bag.Sort()
	return bag
}

// checkLevelNesting: no entry may nest more than one level deeper than its
// immediate predecessor. Deeper skips are damage left by editors or
// corruption; position is still resolvable, so this is advisory.
func checkLevelNesting(doc *otl.Document, rep diag.Reporter) {
	prev := 0
	for i := range doc.Headlines {
		h := &doc.Headlines[i]
		if i == 0 {
			if h.Level != 0 {
				diag.ReportError(rep, diag.ValLevelSkip, h.Span,
					fmt.Sprintf("first headline starts at level %d, expected 0", h.Level))
			}
		} else if h.Level > prev+1 {
			diag.ReportError(rep, diag.ValLevelSkip, h.Span,
				fmt.Sprintf("headline %d jumps from level %d to %d", i, prev, h.Level))
		}
		prev = h.Level
	}
}

// checkNotes: the has-note flag and the note body must agree, both ways.
func checkNotes(doc *otl.Document, rep diag.Reporter) {
	for i := range doc.Headlines {
		h := &doc.Headlines[i]
		switch {
		case h.Note != nil && !h.HasNote:
			diag.ReportError(rep, diag.ValOrphanNote, h.Span,
				fmt.Sprintf("headline %d carries a note body without the has-note flag", i))
		case h.HasNote && h.Note == nil:
			diag.ReportError(rep, diag.ValMissingNoteFlag, h.Span,
				fmt.Sprintf("headline %d sets the has-note flag but no note body was decoded", i))
		}
	}
}

// checkCursor: the locator, if present, must name a decoded headline and an
// offset inside that headline's text.
func checkCursor(doc *otl.Document, rep diag.Reporter) {
	c := doc.Cursor
	if c == nil {
		return
	}
	if c.Headline < 0 || c.Headline >= len(doc.Headlines) {
		diag.ReportError(rep, diag.ValCursorHeadline, source.At(doc.File, 0),
			fmt.Sprintf("cursor names headline %d of %d", c.Headline, len(doc.Headlines)))
		return
	}
	text := doc.Headlines[c.Headline].Text
	if c.Offset < 0 || c.Offset > len(text) {
		diag.ReportError(rep, diag.ValCursorOffset, doc.Headlines[c.Headline].Span,
			fmt.Sprintf("cursor offset %d exceeds headline %d text length %d", c.Offset, c.Headline, len(text)))
	}
}

// checkDeclaredCounts: header metadata must match what was actually decoded.
func checkDeclaredCounts(doc *otl.Document, rep diag.Reporter) {
	if got := len(doc.Headlines); got != doc.DeclaredHeadlines {
		diag.ReportWarning(rep, diag.ValHeadlineCount, source.At(doc.File, 0),
			fmt.Sprintf("header declares %d headlines, decoded %d", doc.DeclaredHeadlines, got))
	}
	if got := doc.CharCount(); got != doc.DeclaredChars {
		diag.ReportWarning(rep, diag.ValCharCount, source.At(doc.File, 0),
			fmt.Sprintf("header declares %d characters, decoded %d", doc.DeclaredChars, got))
	}
}

// checkBlockMarks: marked indices must point at decoded headlines; the
// legacy application always marks a contiguous run, so gaps are advisory.
func checkBlockMarks(doc *otl.Document, rep diag.Reporter) {
	for _, idx := range doc.BlockMarks {
		if idx < 0 || idx >= len(doc.Headlines) {
			diag.ReportError(rep, diag.ValBlockMarkRange, source.At(doc.File, 0),
				fmt.Sprintf("block mark names headline %d of %d", idx, len(doc.Headlines)))
		}
	}
	for i := 1; i < len(doc.BlockMarks); i++ {
		if doc.BlockMarks[i] != doc.BlockMarks[i-1]+1 {
			diag.ReportInfo(rep, diag.ValBlockMarkNotContiguous, source.At(doc.File, 0),
				fmt.Sprintf("block mark indices %d and %d are not adjacent", doc.BlockMarks[i-1], doc.BlockMarks[i]))
			return
		}
	}
}
