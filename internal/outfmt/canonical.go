package outfmt

import (
	"io"
	"strings"

	"otlview/internal/otl"
)

// CanonicalOpts configures the canonical renderer.
type CanonicalOpts struct {
	Encoding Encoding
	// ElideNotes replaces every note body with a fixed placeholder line so
	// structural diffs are not drowned by note churn. The note block itself
	// stays in the output.
	ElideNotes bool
}

// notePlaceholder stands in for a note body in structure-only output.
const notePlaceholder = "(note body elided)"

// Canonical renders the deterministic plain-text form of a document:
// one line per headline (two spaces of indent per level, fold marker,
// block-mark marker, text), followed by a delimited note block when the
// headline owns a note. Line endings are always '\n'.
func Canonical(doc *otl.Document, opts CanonicalOpts) string {
	var sb strings.Builder
	for i := range doc.Headlines {
		h := &doc.Headlines[i]
		indent := strings.Repeat("  ", h.Level)

		fold := "[+]"
		if h.Open {
			fold = "[-]"
		}
		marked := " "
		if h.Marked {
			marked = "*"
		}

		sb.WriteString(indent)
		sb.WriteString(fold)
		sb.WriteString(marked)
		sb.WriteByte(' ')
		sb.WriteString(DecodeText(h.Text, opts.Encoding))
		sb.WriteByte('\n')

		if h.Note != nil {
			sb.WriteString(indent)
			sb.WriteString("note\n")
			if opts.ElideNotes {
				sb.WriteString(indent)
				sb.WriteString(notePlaceholder)
				sb.WriteByte('\n')
			} else {
				for _, line := range noteLines(h.Note, opts.Encoding) {
					sb.WriteString(line)
					sb.WriteByte('\n')
				}
			}
			sb.WriteString(indent)
			sb.WriteString("/note\n")
		}
	}
	return sb.String()
}

// WriteCanonical renders canonical text to w.
func WriteCanonical(w io.Writer, doc *otl.Document, opts CanonicalOpts) error {
	_, err := io.WriteString(w, Canonical(doc, opts))
	return err
}

// noteLines splits a note body into lines with endings normalized to '\n'.
// Body lines are emitted verbatim (no reindenting) to keep diffs honest.
// A zero-length note yields no body lines at all.
func noteLines(note []byte, enc Encoding) []string {
	if len(note) == 0 {
		return nil
	}
	text := DecodeText(note, enc)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
