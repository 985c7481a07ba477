package outfmt

import (
	"bytes"
	"strings"
	"testing"

	"otlview/internal/diag"
	"otlview/internal/source"
)

func TestPrettyFindings(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.otl", []byte("xxxx"))

	bag := diag.NewBag(8)
	bag.Add(diag.Finding{
		Severity: diag.SevError,
		Code:     diag.ValLevelSkip,
		Message:  "headline 2 jumps from level 0 to 2",
		Primary:  source.Span{File: id, Start: 10, End: 14},
	})
	bag.Add(diag.Finding{
		Severity: diag.SevWarning,
		Code:     diag.ValHeadlineCount,
		Message:  "header declares 3 headlines, decoded 2",
		Primary:  source.At(id, 0),
		Notes:    []diag.Note{{Span: source.At(id, 3), Msg: "count field here"}},
	})
	bag.Sort()

	var buf bytes.Buffer
	PrettyFindings(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	out := buf.String()

	// Сортировка по позиции: warning на 0 раньше error на 10.
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("output has %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "a.otl@0-0: WARNING VAL2006: header declares 3 headlines, decoded 2" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if lines[1] != "    note: a.otl@3-3: count field here" {
		t.Fatalf("line 1 = %q", lines[1])
	}
	if lines[2] != "a.otl@10-14: ERROR VAL2001: headline 2 jumps from level 0 to 2" {
		t.Fatalf("line 2 = %q", lines[2])
	}
}
