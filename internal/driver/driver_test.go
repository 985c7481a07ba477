package driver

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"otlview/internal/otl"
	"otlview/internal/otldiff"
	"otlview/internal/outfmt"
)

// sampleOutline emits a small conformant file: Intro with two children, the
// second carrying a note, plus a saved cursor on headline 1.
func sampleOutline(secondChild string) []byte {
	var out []byte
	out = append(out, 0x1a, 0x93, 0x1a)
	out = binary.LittleEndian.AppendUint16(out, 3)
	out = binary.LittleEndian.AppendUint32(out, uint32(len("Intro"+"Background"+secondChild)+len("see appendix")))
	out = append(out, 0x01) // cursor present
	out = binary.LittleEndian.AppendUint16(out, 1)
	out = binary.LittleEndian.AppendUint16(out, 3)

	rec := func(text string, delta int16, attr byte, note string) {
		out = append(out, []byte(text)...)
		out = append(out, 0xff, attr, 0xff, 0xff)
		out = binary.LittleEndian.AppendUint16(out, uint16(delta))
		if attr&0x80 != 0 {
			out = binary.LittleEndian.AppendUint16(out, uint16(len(note)))
			out = append(out, []byte(note)...)
		}
	}
	rec("Intro", 0, 0, "")
	rec("Background", 1, 0x80, "see appendix")
	rec(secondChild, 0, 0, "")

	out = append(out, 0xff, 0xff, 0x1a)
	return out
}

func writeOutline(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDecodeFromDisk(t *testing.T) {
	path := writeOutline(t, "plan.otl", sampleOutline("Scope"))

	res, err := Decode(path, Options{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(res.Doc.Headlines) != 3 {
		t.Fatalf("decoded %d headlines, want 3", len(res.Doc.Headlines))
	}
	if res.Doc.Cursor == nil || res.Doc.Cursor.Headline != 1 {
		t.Fatalf("cursor = %+v", res.Doc.Cursor)
	}

	Validate(res)
	if res.Bag.HasErrors() {
		t.Fatalf("conformant file produced errors: %v", res.Bag.Items())
	}
}

func TestDecodeMissingFile(t *testing.T) {
	if _, err := Decode(filepath.Join(t.TempDir(), "nope.otl"), Options{}); err == nil {
		t.Fatal("missing file decoded")
	}
}

func TestDecodeCorruptFile(t *testing.T) {
	content := sampleOutline("Scope")
	path := writeOutline(t, "cut.otl", content[:10])

	_, err := Decode(path, Options{})
	if !errors.Is(err, otl.ErrTruncatedInput) {
		t.Fatalf("truncated file: got %v, want ErrTruncatedInput", err)
	}
	// Путь к файлу должен попасть в сообщение.
	if !strings.Contains(err.Error(), "cut.otl") {
		t.Fatalf("error does not name the file: %v", err)
	}
}

func TestCanonicalCaching(t *testing.T) {
	path := writeOutline(t, "plan.otl", sampleOutline("Scope"))
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache}

	res, err := Decode(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	fresh, err := Canonical(res, opts)
	if err != nil {
		t.Fatal(err)
	}
	// Второй прогон идёт через кэш и обязан совпасть байт в байт.
	cached, err := Canonical(res, opts)
	if err != nil {
		t.Fatal(err)
	}
	if cached != fresh {
		t.Fatalf("cache hit differs from fresh render:\n%q\n%q", cached, fresh)
	}
	if !strings.Contains(fresh, "[-]  Intro") {
		t.Fatalf("canonical output wrong:\n%s", fresh)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := cacheKey([32]byte{1, 2, 3}, outfmt.CanonicalOpts{})
	in := CanonPayload{Schema: canonCacheSchemaVersion, Headlines: 2, Canonical: "[-]  A\n"}
	if err := cache.Put(key, &in); err != nil {
		t.Fatal(err)
	}
	var out CanonPayload
	ok, err := cache.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if out.Canonical != in.Canonical || out.Headlines != 2 {
		t.Fatalf("round trip lost data: %+v", out)
	}

	// Неизвестный ключ — просто промах, не ошибка.
	ok, err = cache.Get(cacheKey([32]byte{9}, outfmt.CanonicalOpts{}), &out)
	if err != nil || ok {
		t.Fatalf("miss = %v, %v", ok, err)
	}
}

func TestDiffPaths(t *testing.T) {
	prev := writeOutline(t, "prev.otl", sampleOutline("Scope"))
	curr := writeOutline(t, "curr.otl", sampleOutline("Goals"))

	report, p, c, err := DiffPaths(prev, curr, Options{}, otldiff.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || c == nil {
		t.Fatal("decode results missing")
	}
	changed, inserted, deleted := report.Counts()
	if changed != 1 || inserted != 0 || deleted != 0 {
		t.Fatalf("rename diff = %d/%d/%d; edits: %+v", changed, inserted, deleted, report.Edits)
	}

	same, _, _, err := DiffPaths(prev, prev, Options{}, otldiff.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !same.Empty() {
		t.Fatalf("self-diff produced edits: %+v", same.Edits)
	}
}

func TestDiffPathsDecodeFailure(t *testing.T) {
	good := writeOutline(t, "good.otl", sampleOutline("Scope"))
	bad := writeOutline(t, "bad.otl", []byte{0x00, 0x01})

	if _, _, _, err := DiffPaths(good, bad, Options{}, otldiff.Options{}); err == nil {
		t.Fatal("diff with a corrupt input succeeded")
	}
}
