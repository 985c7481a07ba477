package otl

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"fortio.org/safecast"

	"otlview/internal/source"
)

// Cursor представляет собой позицию в бинарном файле.
// Все многобайтовые чтения — little-endian и строго в пределах Limit:
// ни одна операция не читает за границей буфера.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец буфера.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Remaining возвращает число непрочитанных байт.
func (c *Cursor) Remaining() uint32 {
	if c.EOF() {
		return 0
	}
	return c.Limit - c.Off
}

// Peek читает текущий байт, если есть, иначе возвращает 0.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// EatSeq consumes the sequence if the upcoming bytes match it exactly.
func (c *Cursor) EatSeq(seq []byte) bool {
	n := uint32(len(seq))
	if c.Remaining() < n {
		return false
	}
	if !bytes.Equal(c.File.Content[c.Off:c.Off+n], seq) {
		return false
	}
	c.Off += n
	return true
}

// PeekSeq reports whether the upcoming bytes match the sequence, without advancing.
func (c *Cursor) PeekSeq(seq []byte) bool {
	n := uint32(len(seq))
	if c.Remaining() < n {
		return false
	}
	return bytes.Equal(c.File.Content[c.Off:c.Off+n], seq)
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента.
type Mark uint32

// Mark сохраняет текущую позицию курсора.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}

// Here returns a zero-length span at the current offset.
func (c *Cursor) Here() source.Span {
	return source.At(c.File.ID, c.Off)
}

// ReadU8 reads one byte or fails with ErrTruncatedInput.
func (c *Cursor) ReadU8(what string) (byte, error) {
	if c.EOF() {
		return 0, errTruncated(c.Off, what)
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b, nil
}

// ReadU16 reads a little-endian uint16 or fails with ErrTruncatedInput.
func (c *Cursor) ReadU16(what string) (uint16, error) {
	if c.Remaining() < 2 {
		return 0, errTruncated(c.Off, what)
	}
	v := binary.LittleEndian.Uint16(c.File.Content[c.Off:])
	c.Off += 2
	return v, nil
}

// ReadI16 reads a little-endian int16 or fails with ErrTruncatedInput.
func (c *Cursor) ReadI16(what string) (int16, error) {
	v, err := c.ReadU16(what)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// ReadU32 reads a little-endian uint32 or fails with ErrTruncatedInput.
func (c *Cursor) ReadU32(what string) (uint32, error) {
	if c.Remaining() < 4 {
		return 0, errTruncated(c.Off, what)
	}
	v := binary.LittleEndian.Uint32(c.File.Content[c.Off:])
	c.Off += 4
	return v, nil
}

// ReadBytes reads exactly n bytes (a length-prefixed run whose length the
// caller has already validated against Remaining) or fails with
// ErrTruncatedInput. The returned slice is a copy and is never nil.
func (c *Cursor) ReadBytes(n uint32, what string) ([]byte, error) {
	if c.Remaining() < n {
		return nil, errTruncated(c.Off, what)
	}
	out := make([]byte, n)
	copy(out, c.File.Content[c.Off:c.Off+n])
	c.Off += n
	return out, nil
}

// ReadUntil reads bytes up to (not including) the terminator and consumes
// the terminator itself. Fails with ErrTruncatedInput when the buffer ends
// before the terminator appears.
func (c *Cursor) ReadUntil(term byte, what string) ([]byte, error) {
	start := c.Off
	rel := bytes.IndexByte(c.File.Content[c.Off:c.Limit], term)
	if rel < 0 {
		return nil, errTruncated(c.Off, what)
	}
	n := uint32(rel)
	out := make([]byte, n)
	copy(out, c.File.Content[start:start+n])
	c.Off = start + n + 1
	return out, nil
}
