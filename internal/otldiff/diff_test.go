package otldiff

import (
	"bytes"
	"strings"
	"testing"

	"otlview/internal/otl"
)

func outline(texts ...string) *otl.Document {
	d := &otl.Document{}
	for _, text := range texts {
		lvl := 0
		for strings.HasPrefix(text, " ") {
			text = text[1:]
			lvl++
		}
		d.Headlines = append(d.Headlines, otl.Headline{
			Level: lvl,
			Text:  []byte(text),
			Open:  true,
		})
	}
	return d
}

func TestDiffIdenticalDocuments(t *testing.T) {
	a := outline("Intro", " Background", " Scope")
	b := outline("Intro", " Background", " Scope")
	rep := Documents(a, b, Options{})
	if !rep.Empty() {
		t.Fatalf("identical documents produced edits: %+v", rep.Edits)
	}
}

func TestDiffRenameIsOneChange(t *testing.T) {
	a := outline("Intro", " Background", " Scope")
	b := outline("Intro", " Background", " Goals")

	rep := Documents(a, b, Options{})
	changed, inserted, deleted := rep.Counts()
	if changed != 1 || inserted != 0 || deleted != 0 {
		t.Fatalf("rename reported as %d changed, %d inserted, %d deleted; edits: %+v",
			changed, inserted, deleted, rep.Edits)
	}
	e := rep.Edits[0]
	if e.ALine != 3 || e.BLine != 3 {
		t.Fatalf("change at lines %d/%d, want 3/3", e.ALine, e.BLine)
	}
	if e.OldText != "  [-]  Scope" || e.NewText != "  [-]  Goals" {
		t.Fatalf("change text %q -> %q", e.OldText, e.NewText)
	}
}

func TestDiffInsertAndDelete(t *testing.T) {
	a := outline("Intro", " Scope")
	b := outline("Intro", " Background", " Scope")

	rep := Documents(a, b, Options{})
	changed, inserted, deleted := rep.Counts()
	if changed != 0 || inserted != 1 || deleted != 0 {
		t.Fatalf("insertion reported as %d/%d/%d; edits: %+v", changed, inserted, deleted, rep.Edits)
	}
	if rep.Edits[0].BLine != 2 || rep.Edits[0].NewText != "  [-]  Background" {
		t.Fatalf("insert edit = %+v", rep.Edits[0])
	}

	// Обратное направление — ровно одно удаление.
	rep = Documents(b, a, Options{})
	changed, inserted, deleted = rep.Counts()
	if changed != 0 || inserted != 0 || deleted != 1 {
		t.Fatalf("deletion reported as %d/%d/%d", changed, inserted, deleted)
	}
	if rep.Edits[0].ALine != 2 {
		t.Fatalf("delete edit = %+v", rep.Edits[0])
	}
}

func TestDiffStructureOnlyHidesNoteChurn(t *testing.T) {
	a := outline("Intro")
	a.Headlines[0].HasNote = true
	a.Headlines[0].Note = []byte("draft one")
	b := outline("Intro")
	b.Headlines[0].HasNote = true
	b.Headlines[0].Note = []byte("draft two, heavily rewritten")

	if rep := Documents(a, b, Options{StructureOnly: true}); !rep.Empty() {
		t.Fatalf("note churn leaked into structure-only diff: %+v", rep.Edits)
	}
	// Без StructureOnly та же пара отличается.
	if rep := Documents(a, b, Options{}); rep.Empty() {
		t.Fatal("full diff missed the note change")
	}
}

func TestDiffCursorOverlay(t *testing.T) {
	a := outline("Intro", " Background")
	b := outline("Intro", " Background")
	b.Cursor = &otl.CursorLocator{Headline: 1, Offset: 3}

	rep := Documents(a, b, Options{ShowCursor: true})
	if !rep.Empty() {
		t.Fatalf("cursor overlay altered the diff: %+v", rep.Edits)
	}
	c := rep.Cursor
	if c == nil || !c.Valid {
		t.Fatalf("cursor = %+v", c)
	}
	if c.Line != 2 || c.Text != "Background" {
		t.Fatalf("cursor resolved to line %d text %q, want line 2 \"Background\"", c.Line, c.Text)
	}
}

func TestDiffCursorOverlayCountsNoteLines(t *testing.T) {
	b := outline("Intro", " Background")
	b.Headlines[0].HasNote = true
	b.Headlines[0].Note = []byte("one\ntwo")
	b.Cursor = &otl.CursorLocator{Headline: 1, Offset: 0}

	// Заметка Intro занимает 4 строки (note, два тела, /note).
	rep := Documents(b, b, Options{ShowCursor: true})
	if rep.Cursor.Line != 6 {
		t.Fatalf("cursor line = %d, want 6", rep.Cursor.Line)
	}

	// При elided-заметках блок всегда 3 строки.
	rep = Documents(b, b, Options{ShowCursor: true, StructureOnly: true})
	if rep.Cursor.Line != 5 {
		t.Fatalf("structure-only cursor line = %d, want 5", rep.Cursor.Line)
	}
}

func TestDiffCursorUnresolved(t *testing.T) {
	a := outline("Intro")
	b := outline("Intro")

	rep := Documents(a, b, Options{ShowCursor: true})
	if rep.Cursor == nil || rep.Cursor.Valid {
		t.Fatalf("missing cursor should resolve invalid: %+v", rep.Cursor)
	}

	b.Cursor = &otl.CursorLocator{Headline: 7, Offset: 0}
	rep = Documents(a, b, Options{ShowCursor: true})
	if rep.Cursor.Valid || rep.Cursor.Reason == "" {
		t.Fatalf("out-of-range cursor should carry a reason: %+v", rep.Cursor)
	}
}

func TestFormatReport(t *testing.T) {
	a := outline("Intro", " Scope")
	b := outline("Intro", " Goals")
	b.Cursor = &otl.CursorLocator{Headline: 0, Offset: 2}

	rep := Documents(a, b, Options{ShowCursor: true})
	var buf bytes.Buffer
	if err := Format(&buf, rep, FormatOpts{}); err != nil {
		t.Fatal(err)
	}
	want := "cursor: headline 0 offset 2 at line 1: \"Intro\"\n" +
		"-2   [-]  Scope\n" +
		"+2   [-]  Goals\n"
	if buf.String() != want {
		t.Fatalf("formatted report:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestLinesShortCircuit(t *testing.T) {
	if edits := Lines("same\n", "same\n"); edits != nil {
		t.Fatalf("equal texts produced edits: %+v", edits)
	}
}
