// Package otl decodes the binary outline format of a 1988-era DOS outliner.
//
// The on-disk layout is reverse-engineered; every field width, byte order
// and sentinel lives in layout.go and is consumed only by the bounded
// Cursor and the decoder, so format guesswork never leaks into the rest of
// the engine. Decode produces an immutable Document; hierarchy is derived
// on demand from the flat per-record level, never stored as pointers.
package otl
