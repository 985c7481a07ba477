package outfmt

import (
	"encoding/json"
	"io"

	"otlview/internal/otl"
)

// JSONOpts configures the structured renderer.
type JSONOpts struct {
	Encoding Encoding
}

// cursorJSON представляет cursor locator для JSON.
type cursorJSON struct {
	Headline int `json:"headline"`
	Offset   int `json:"offset"`
}

// headlineJSON представляет одну запись и её поддерево для JSON.
type headlineJSON struct {
	Text     string          `json:"text"`
	Level    int             `json:"level"`
	Open     bool            `json:"open"`
	Marked   bool            `json:"marked"`
	Attr     uint8           `json:"attr"`
	HasNote  bool            `json:"has_note"`
	Note     *string         `json:"note,omitempty"`
	Children []*headlineJSON `json:"children,omitempty"`
}

// documentJSON представляет корневую структуру JSON вывода.
type documentJSON struct {
	DeclaredHeadlines int             `json:"declared_headlines"`
	DeclaredChars     int             `json:"declared_chars"`
	HeadlineCount     int             `json:"headline_count"`
	CharCount         int             `json:"char_count"`
	Cursor            *cursorJSON     `json:"cursor,omitempty"`
	BlockMarks        []int           `json:"block_marks,omitempty"`
	Outline           []*headlineJSON `json:"outline"`
}

// JSON renders the structured, machine-readable form of the document:
// document metadata plus the headline tree inferred from levels. Lossless
// with respect to the decoded model (raw levels and flag bits included).
func JSON(w io.Writer, doc *otl.Document, opts JSONOpts) error {
	out := documentJSON{
		DeclaredHeadlines: doc.DeclaredHeadlines,
		DeclaredChars:     doc.DeclaredChars,
		HeadlineCount:     len(doc.Headlines),
		CharCount:         doc.CharCount(),
		BlockMarks:        doc.BlockMarks,
		Outline:           buildTree(doc, opts.Encoding),
	}
	if doc.Cursor != nil {
		out.Cursor = &cursorJSON{Headline: doc.Cursor.Headline, Offset: doc.Cursor.Offset}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// buildTree nests the flat headline sequence by level. An entry attaches to
// the nearest preceding entry with a strictly smaller level; level-skipping
// entries (a validator finding) therefore still land in a defined place.
func buildTree(doc *otl.Document, enc Encoding) []*headlineJSON {
	roots := make([]*headlineJSON, 0, len(doc.Headlines))

	type frame struct {
		node  *headlineJSON
		level int
	}
	var stack []frame

	for i := range doc.Headlines {
		h := &doc.Headlines[i]
		node := &headlineJSON{
			Text:    DecodeText(h.Text, enc),
			Level:   h.Level,
			Open:    h.Open,
			Marked:  h.Marked,
			Attr:    h.Attr,
			HasNote: h.HasNote,
		}
		if h.Note != nil {
			note := DecodeText(h.Note, enc)
			node.Note = &note
		}

		for len(stack) > 0 && stack[len(stack)-1].level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, frame{node: node, level: h.Level})
	}
	return roots
}
