package diag

import (
	"fmt"
	"sort"
	"strings"

	"otlview/internal/source"
)

type goldenFinding struct {
	Severity string
	Code     string
	Path     string
	Start    uint32
	End      uint32
	Message  string
}

// FormatGoldenFindings renders findings into a stable, single-line-per-entry
// representation suitable for golden files and for CLI --validate output.
// Entries are sorted deterministically and returned as a single string
// (empty when the bag is empty).
func FormatGoldenFindings(findings []Finding, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(findings) == 0 {
		return ""
	}

	rendered := make([]goldenFinding, 0, len(findings))
	for _, f := range findings {
		rendered = append(rendered, goldenFinding{
			Severity: severityLabel(f.Severity),
			Code:     f.Code.ID(),
			Path:     fs.Get(f.Primary.File).Path,
			Start:    f.Primary.Start,
			End:      f.Primary.End,
			Message:  sanitizeMessage(f.Message),
		})
		if includeNotes {
			for _, note := range f.Notes {
				rendered = append(rendered, goldenFinding{
					Severity: "note",
					Code:     f.Code.ID(),
					Path:     fs.Get(note.Span.File).Path,
					Start:    note.Span.Start,
					End:      note.Span.End,
					Message:  sanitizeMessage(note.Msg),
				})
			}
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		fi, fj := rendered[i], rendered[j]
		if fi.Path != fj.Path {
			return fi.Path < fj.Path
		}
		if fi.Start != fj.Start {
			return fi.Start < fj.Start
		}
		if fi.End != fj.End {
			return fi.End < fj.End
		}
		if fi.Severity != fj.Severity {
			return fi.Severity < fj.Severity
		}
		if fi.Code != fj.Code {
			return fi.Code < fj.Code
		}
		return fi.Message < fj.Message
	})

	var b strings.Builder
	for i, f := range rendered {
		fmt.Fprintf(&b, "%s %s %s@%d-%d %s", f.Severity, f.Code, f.Path, f.Start, f.End, f.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
