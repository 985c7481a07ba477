// Package diag defines the finding model shared by the decoder and the
// structural validator.
//
//   - Provide deterministic, serialisable data structures that capture
//     observations about a decoded outline file.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     findings without coupling to concrete storage or formatting layers.
//
// Package diag performs no formatting, IO, or CLI integration. Rendering of
// findings lives in internal/outfmt; orchestration lives in the driver layer.
//
// Finding is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//     Error marks likely corruption; Info marks advisory observations.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the source.Span (byte range) pointing at the evidence.
//   - Notes – optional secondary spans/messages for additional context.
//
// Findings are always advisory: producers collect them into a Bag and leave
// the decision of whether they block further processing to the caller.
package diag
