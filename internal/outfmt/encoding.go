package outfmt

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Encoding selects how raw text bytes are interpreted for output. This is
// an output-format choice only: the decoder never consults it.
type Encoding uint8

const (
	// EncCP437 is the DOS code page the legacy application ran under;
	// default, stable across platforms.
	EncCP437 Encoding = iota
	EncLatin1
	EncASCII
	EncUTF8
)

func (e Encoding) String() string {
	switch e {
	case EncCP437:
		return "cp437"
	case EncLatin1:
		return "latin1"
	case EncASCII:
		return "ascii"
	case EncUTF8:
		return "utf8"
	}
	return "unknown"
}

// ParseEncoding maps a CLI flag value to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "cp437", "":
		return EncCP437, nil
	case "latin1":
		return EncLatin1, nil
	case "ascii":
		return EncASCII, nil
	case "utf8":
		return EncUTF8, nil
	}
	return EncCP437, fmt.Errorf("unknown encoding %q (want cp437|latin1|ascii|utf8)", s)
}

// DecodeText interprets raw outline bytes as a string.
// Control bytes below 0x20 (drawing codes) pass through unchanged under the
// byte-mapped encodings so canonical output stays faithful to the file.
func DecodeText(b []byte, enc Encoding) string {
	switch enc {
	case EncLatin1:
		return decodeByteMap(b, charmap.ISO8859_1)
	case EncASCII:
		var sb strings.Builder
		sb.Grow(len(b))
		for _, c := range b {
			sb.WriteByte(c & 0x7f)
		}
		return sb.String()
	case EncUTF8:
		return strings.ToValidUTF8(string(b), "�")
	default:
		return decodeByteMap(b, charmap.CodePage437)
	}
}

func decodeByteMap(b []byte, cm *charmap.Charmap) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if c < 0x20 {
			// drawing control code, keep as-is
			sb.WriteByte(c)
			continue
		}
		sb.WriteRune(cm.DecodeByte(c))
	}
	return sb.String()
}
