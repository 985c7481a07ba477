package otl

import (
	"encoding/binary"

	"otlview/internal/source"
)

// Test-only fixture builder. The shipped tool never writes outline files;
// these helpers exist so decoder tests can craft inputs byte by byte.

type rec struct {
	text      string
	delta     int16
	collapsed bool
	marked    bool
	sibling   bool
	hasNote   bool
	note      string
	rawAttr   byte // when non-zero, overrides the computed attr byte
}

type wire struct {
	declHeadlines uint16
	declChars     uint32
	cursor        *CursorLocator
	marks         []uint16
	recs          []rec
	noTrailer     bool
	extra         []byte // appended after the trailer
}

func (w wire) bytes() []byte {
	var out []byte
	out = append(out, magic[:]...)
	out = binary.LittleEndian.AppendUint16(out, w.declHeadlines)
	out = binary.LittleEndian.AppendUint32(out, w.declChars)

	var flags byte
	if w.cursor != nil {
		flags |= hdrHasCursor
	}
	if w.marks != nil {
		flags |= hdrHasMarks
	}
	out = append(out, flags)

	if w.cursor != nil {
		out = binary.LittleEndian.AppendUint16(out, uint16(w.cursor.Headline))
		out = binary.LittleEndian.AppendUint16(out, uint16(w.cursor.Offset))
	}
	if w.marks != nil {
		out = binary.LittleEndian.AppendUint16(out, uint16(len(w.marks)))
		for _, m := range w.marks {
			out = binary.LittleEndian.AppendUint16(out, m)
		}
	}

	for _, r := range w.recs {
		out = append(out, []byte(r.text)...)
		out = append(out, textTerm)

		attr := r.rawAttr
		if attr == 0 {
			if r.hasNote {
				attr |= attrHasNote
			}
			if r.marked {
				attr |= attrMarked
			}
			if r.sibling {
				attr |= attrSibling
			}
		}
		out = append(out, attr)

		if r.collapsed {
			out = append(out, markCollapsed)
		} else {
			out = append(out, markExpanded)
		}
		out = append(out, markSecond)

		out = binary.LittleEndian.AppendUint16(out, uint16(r.delta))

		if attr&attrHasNote != 0 {
			out = binary.LittleEndian.AppendUint16(out, uint16(len(r.note)))
			out = append(out, []byte(r.note)...)
		}
	}

	if !w.noTrailer {
		out = append(out, trailerSeq[:]...)
	}
	out = append(out, w.extra...)
	return out
}

// virtualFile wraps raw bytes in a FileSet for decoding.
func virtualFile(content []byte) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.otl", content)
	return fs.Get(id)
}

// threeHeadlines is the shared scenario: Intro (open), Background (closed,
// with note), Scope (open), the latter two nested one level deep.
func threeHeadlines() wire {
	return wire{
		declHeadlines: 3,
		declChars:     32, // Intro+Background+Scope text plus the note body
		recs: []rec{
			{text: "Intro", delta: 0},
			{text: "Background", delta: 1, collapsed: true, hasNote: true, note: "see appendix"},
			{text: "Scope", delta: 0},
		},
	}
}
