package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Декодер (непрерывные наблюдения, не фатальные ошибки)
	DecInfo             Code = 1000
	DecUnknownFlagBits  Code = 1001
	DecNegativeLevel    Code = 1002
	DecUnknownHeaderBit Code = 1003
	DecTrailingBytes    Code = 1004

	// Валидатор
	ValInfo                   Code = 2000
	ValLevelSkip              Code = 2001
	ValOrphanNote             Code = 2002
	ValMissingNoteFlag        Code = 2003
	ValCursorHeadline         Code = 2004
	ValCursorOffset           Code = 2005
	ValHeadlineCount          Code = 2006
	ValCharCount              Code = 2007
	ValBlockMarkRange         Code = 2008
	ValBlockMarkNotContiguous Code = 2009
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown finding",

	DecInfo:             "decoder note",
	DecUnknownFlagBits:  "record carries unrecognized attribute bits",
	DecNegativeLevel:    "level delta drives nesting below zero",
	DecUnknownHeaderBit: "header carries unrecognized flag bits",
	DecTrailingBytes:    "bytes remain after the outline trailer",

	ValInfo:                   "validator note",
	ValLevelSkip:              "headline skips more than one nesting level",
	ValOrphanNote:             "note body present but has-note flag is clear",
	ValMissingNoteFlag:        "has-note flag set but no note body decoded",
	ValCursorHeadline:         "cursor locator names an out-of-range headline",
	ValCursorOffset:           "cursor locator offset exceeds headline text",
	ValHeadlineCount:          "declared headline count disagrees with decoded count",
	ValCharCount:              "declared character budget disagrees with decoded volume",
	ValBlockMarkRange:         "block mark names an out-of-range headline",
	ValBlockMarkNotContiguous: "block mark indices are not contiguous",
}

// ID returns the stable short identifier used in golden output.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("DEC%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("VAL%04d", ic)
	}
	return "F0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
