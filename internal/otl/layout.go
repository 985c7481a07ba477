package otl

// Wire-format constants, pinned against the reference corpus of real ".OTL"
// files. Multi-byte fields are little-endian throughout (see the Read*
// methods on Cursor — the single place byte order is applied).

var (
	// magic opens every outline file.
	magic = [3]byte{0x1a, 0x93, 0x1a}
	// trailerSeq ends the record stream; its absence means truncation.
	trailerSeq = [3]byte{0xff, 0xff, 0x1a}
)

const (
	// textTerm ends headline text; any other byte value may appear inside
	// the text, including DOS drawing control codes below 0x20.
	textTerm byte = 0xff

	// Fold marker: first byte of the two-byte marker after the attr byte.
	markExpanded  byte = 0xff
	markCollapsed byte = 0xfe
	markSecond    byte = 0xff

	// Per-record attribute bits.
	attrHasNote byte = 0x80
	attrMarked  byte = 0x20
	attrSibling byte = 0x08 // has-next-sibling, informational only
	attrKnown   byte = attrHasNote | attrMarked | attrSibling

	// Header flag bits.
	hdrHasCursor byte = 0x01
	hdrHasMarks  byte = 0x02
	hdrKnown     byte = hdrHasCursor | hdrHasMarks
)

const (
	// MaxHeadlines is the hard ceiling on outline entries; the legacy
	// application never writes more. A header declaring more is rejected.
	MaxHeadlines = 2200

	// MaxChars is the hard ceiling on total character volume (headline
	// text plus note bodies).
	MaxChars = 400000
)
