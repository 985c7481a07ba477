package outfmt

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"otlview/internal/otl"
)

// DumpOpts configures the raw record listing.
type DumpOpts struct {
	Encoding Encoding
	// TextWidth truncates the text column; 0 keeps it unbounded.
	TextWidth int
}

// Dump writes the per-record listing used when poking at unfamiliar files:
// index, level, raw attr byte, fold/mark/sibling flags, note length, text.
// One line per record, document order.
func Dump(w io.Writer, doc *otl.Document, opts DumpOpts) error {
	for i := range doc.Headlines {
		h := &doc.Headlines[i]

		fold := 'E'
		if !h.Open {
			fold = 'C'
		}
		marked := ' '
		if h.Marked {
			marked = 'M'
		}
		sibling := ' '
		if h.HasNextSibling() {
			sibling = 'N'
		}

		text := DecodeText(h.Text, opts.Encoding)
		if opts.TextWidth > 0 {
			text = runewidth.Truncate(text, opts.TextWidth, "…")
		}

		if _, err := fmt.Fprintf(w, "%4d  L=%-2d  attr=0x%02x  %c%c%c  note=%-5d  %s\n",
			i, h.Level, h.Attr, fold, marked, sibling, len(h.Note), text); err != nil {
			return err
		}
	}
	return nil
}
