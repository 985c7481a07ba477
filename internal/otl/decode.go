package otl

import (
	"fmt"

	"otlview/internal/diag"
	"otlview/internal/source"
)

// Options configures a decode invocation. Only observation plumbing: no
// option alters the parsed meaning of the input.
type Options struct {
	// Reporter receives non-fatal decode-time findings (unknown flag bits,
	// clamped levels, trailing bytes). Nil discards them.
	Reporter diag.Reporter
}

// Decode turns the raw bytes of one outline file into an immutable
// Document. Fatal failures return a *DecodeError carrying the byte offset;
// no partial document is ever returned. The input buffer is never read out
// of bounds regardless of content: every access goes through Cursor.
func Decode(file *source.File, opts Options) (*Document, error) {
	rep := opts.Reporter
	if rep == nil {
		rep = diag.NopReporter{}
	}

	cur := NewCursor(file)

	doc := &Document{File: file.ID}
	if err := decodeHeader(&cur, doc, rep); err != nil {
		return nil, err
	}
	if err := decodeRecords(&cur, doc, rep); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeHeader(cur *Cursor, doc *Document, rep diag.Reporter) error {
	if cur.Remaining() < uint32(len(magic)) {
		return errTruncated(cur.Off, "file shorter than outline magic")
	}
	if !cur.EatSeq(magic[:]) {
		return errMalformed(cur.Off, "missing outline magic")
	}

	declared, err := cur.ReadU16("declared headline count")
	if err != nil {
		return err
	}
	if int(declared) > MaxHeadlines {
		return errLimit(cur.Off-2, "declared headline count", int(declared), MaxHeadlines)
	}
	doc.DeclaredHeadlines = int(declared)

	chars, err := cur.ReadU32("declared character budget")
	if err != nil {
		return err
	}
	if chars > MaxChars {
		return errLimit(cur.Off-4, "declared character budget", int(chars), MaxChars)
	}
	doc.DeclaredChars = int(chars)

	mark := cur.Mark()
	flags, err := cur.ReadU8("header flags")
	if err != nil {
		return err
	}
	if unknown := flags &^ hdrKnown; unknown != 0 {
		diag.ReportInfo(rep, diag.DecUnknownHeaderBit, cur.SpanFrom(mark),
			fmt.Sprintf("ignoring unrecognized header bits 0x%02x", unknown))
	}

	if flags&hdrHasCursor != 0 {
		idx, err := cur.ReadU16("cursor headline index")
		if err != nil {
			return err
		}
		off, err := cur.ReadU16("cursor text offset")
		if err != nil {
			return err
		}
		doc.Cursor = &CursorLocator{Headline: int(idx), Offset: int(off)}
	}

	if flags&hdrHasMarks != 0 {
		countOff := cur.Off
		count, err := cur.ReadU16("block mark count")
		if err != nil {
			return err
		}
		if int(count) > MaxHeadlines {
			return errLimit(countOff, "block mark count", int(count), MaxHeadlines)
		}
		if uint32(count)*2 > cur.Remaining() {
			return errLength(countOff, "block mark list", int(count)*2, int(cur.Remaining()))
		}
		marks := make([]int, 0, count)
		for i := 0; i < int(count); i++ {
			idx, err := cur.ReadU16("block mark index")
			if err != nil {
				return err
			}
			marks = append(marks, int(idx))
		}
		doc.BlockMarks = marks
	}

	return nil
}

func decodeRecords(cur *Cursor, doc *Document, rep diag.Reporter) error {
	level := 0
	charVolume := 0
	sawTrailer := false

	for !cur.EOF() {
		if cur.PeekSeq(trailerSeq[:]) {
			cur.EatSeq(trailerSeq[:])
			sawTrailer = true
			if !cur.EOF() {
				diag.ReportInfo(rep, diag.DecTrailingBytes, cur.Here(),
					fmt.Sprintf("%d bytes remain after the outline trailer", cur.Remaining()))
			}
			break
		}

		if len(doc.Headlines) >= MaxHeadlines {
			return errLimit(cur.Off, "headline records", len(doc.Headlines)+1, MaxHeadlines)
		}

		recMark := cur.Mark()

		text, err := cur.ReadUntil(textTerm, "headline text")
		if err != nil {
			return err
		}

		attr, err := cur.ReadU8("record attributes")
		if err != nil {
			return err
		}
		markOff := cur.Off
		m1, err := cur.ReadU8("fold marker")
		if err != nil {
			return err
		}
		m2, err := cur.ReadU8("fold marker")
		if err != nil {
			return err
		}
		if m2 != markSecond || (m1 != markExpanded && m1 != markCollapsed) {
			return errMalformed(markOff, fmt.Sprintf("bad fold marker 0x%02x 0x%02x after headline text", m1, m2))
		}

		deltaOff := cur.Off
		delta, err := cur.ReadI16("level delta")
		if err != nil {
			return err
		}
		level += int(delta)
		if level < 0 {
			diag.ReportInfo(rep, diag.DecNegativeLevel,
				source.Span{File: cur.File.ID, Start: deltaOff, End: cur.Off},
				fmt.Sprintf("level delta %d drives nesting to %d, clamped to 0", delta, level))
			level = 0
		}

		var note []byte
		hasNote := attr&attrHasNote != 0
		if hasNote {
			lenOff := cur.Off
			nlen, err := cur.ReadU16("note length")
			if err != nil {
				return err
			}
			if uint32(nlen) > cur.Remaining() {
				return errLength(lenOff, "note body", int(nlen), int(cur.Remaining()))
			}
			note, err = cur.ReadBytes(uint32(nlen), "note body")
			if err != nil {
				return err
			}
		}

		if unknown := attr &^ attrKnown; unknown != 0 {
			diag.ReportInfo(rep, diag.DecUnknownFlagBits, cur.SpanFrom(recMark),
				fmt.Sprintf("ignoring unrecognized attribute bits 0x%02x", unknown))
		}

		charVolume += len(text) + len(note)
		if charVolume > MaxChars {
			return errLimit(cur.Off, "character volume", charVolume, MaxChars)
		}

		doc.Headlines = append(doc.Headlines, Headline{
			Level:   level,
			Text:    text,
			Attr:    attr,
			Open:    m1 == markExpanded,
			Marked:  attr&attrMarked != 0,
			HasNote: hasNote,
			Note:    note,
			Span:    cur.SpanFrom(recMark),
		})
	}

	// Every conforming file ends with the trailer; running out of bytes
	// without it means the record stream was cut short.
	if !sawTrailer {
		return errTruncated(cur.Off, "buffer ended before the outline trailer")
	}

	return nil
}
