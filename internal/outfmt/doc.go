// Package outfmt renders decoded outline documents: the canonical plain-text
// form used for diffing and golden tests, the structured JSON form, the raw
// record dump, and the findings pretty-printer.
//
// Rendering is where character-set interpretation happens: the decoder keeps
// text and note bodies as raw bytes, and every renderer takes an Encoding
// option. Canonical output is a pure function of (document, options) — no
// ambient state, line endings always '\n' — so byte-identical input renders
// byte-identical text on every platform.
package outfmt
