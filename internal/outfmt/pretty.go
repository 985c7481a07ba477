package outfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"otlview/internal/diag"
	"otlview/internal/source"
)

// PrettyOpts configures the findings printer.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
}

var (
	sevErrorColor = color.New(color.FgRed, color.Bold)
	sevWarnColor  = color.New(color.FgYellow, color.Bold)
	sevInfoColor  = color.New(color.FgCyan)
)

// PrettyFindings форматирует findings в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее). Для каждого finding:
// <path>@<start>-<end>: <SEV> <CODE>: <Message>, затем Notes с отступом.
func PrettyFindings(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, f := range bag.Items() {
		sev := f.Severity.String()
		if opts.Color {
			switch f.Severity {
			case diag.SevError:
				sev = sevErrorColor.Sprint(sev)
			case diag.SevWarning:
				sev = sevWarnColor.Sprint(sev)
			default:
				sev = sevInfoColor.Sprint(sev)
			}
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n", spanLabel(f.Primary, fs), sev, f.Code.ID(), f.Message)
		if opts.ShowNotes {
			for _, n := range f.Notes {
				fmt.Fprintf(w, "    note: %s: %s\n", spanLabel(n.Span, fs), n.Msg)
			}
		}
	}
}

func spanLabel(sp source.Span, fs *source.FileSet) string {
	if fs == nil || fs.Len() == 0 {
		return fmt.Sprintf("@%d-%d", sp.Start, sp.End)
	}
	return fmt.Sprintf("%s@%d-%d", fs.Get(sp.File).Path, sp.Start, sp.End)
}
