package otldiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// FormatOpts configures report rendering.
type FormatOpts struct {
	Color bool
}

var (
	delColor = color.New(color.FgRed)
	insColor = color.New(color.FgGreen)
)

// Format writes the report: the resolved cursor overlay (when present),
// then one line per edit with zero context. Equal documents produce no edit
// lines, so `diff(x, x)` formats to at most the cursor overlay.
func Format(w io.Writer, r *Report, opts FormatOpts) error {
	if r.Cursor != nil {
		if r.Cursor.Valid {
			if _, err := fmt.Fprintf(w, "cursor: headline %d offset %d at line %d: %q\n",
				r.Cursor.Headline, r.Cursor.Offset, r.Cursor.Line, r.Cursor.Text); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, "cursor: unresolved (%s)\n", r.Cursor.Reason); err != nil {
				return err
			}
		}
	}

	for _, e := range r.Edits {
		switch e.Kind {
		case EditDelete:
			if err := writeLine(w, opts, delColor, fmt.Sprintf("-%d %s", e.ALine, e.OldText)); err != nil {
				return err
			}
		case EditInsert:
			if err := writeLine(w, opts, insColor, fmt.Sprintf("+%d %s", e.BLine, e.NewText)); err != nil {
				return err
			}
		case EditChange:
			if err := writeLine(w, opts, delColor, fmt.Sprintf("-%d %s", e.ALine, e.OldText)); err != nil {
				return err
			}
			if err := writeLine(w, opts, insColor, fmt.Sprintf("+%d %s", e.BLine, e.NewText)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeLine(w io.Writer, opts FormatOpts, c *color.Color, line string) error {
	if opts.Color {
		_, err := c.Fprintln(w, line)
		return err
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
