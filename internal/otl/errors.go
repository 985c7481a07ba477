package otl

import (
	"errors"
	"fmt"
)

// Sentinel decode failures. Every fatal decode error wraps exactly one of
// these, so callers can classify with errors.Is.
var (
	// ErrTruncatedInput: buffer ended before a declared field or record completed.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrLimitExceeded: header or record claims a size beyond the hard ceiling.
	ErrLimitExceeded = errors.New("declared limit exceeded")
	// ErrInconsistentLength: a length field cannot be reconciled with the remaining buffer.
	ErrInconsistentLength = errors.New("inconsistent length")
	// ErrMalformed: a structural sentinel (magic, fold marker) has an impossible value.
	ErrMalformed = errors.New("malformed record")
)

// DecodeError is the fatal error type returned by Decode. It always carries
// the byte offset at which decoding failed and, for size failures, the
// declared value against the limit it violated.
type DecodeError struct {
	Err    error  // one of the sentinels above
	Offset uint32 // byte offset of the failure
	Msg    string

	// Declared and Limit are set for ErrLimitExceeded and
	// ErrInconsistentLength, zero otherwise.
	Declared int
	Limit    int
}

func (e *DecodeError) Error() string {
	switch e.Err {
	case ErrLimitExceeded:
		return fmt.Sprintf("%s at offset %d: %s (declared %d, limit %d)",
			e.Err, e.Offset, e.Msg, e.Declared, e.Limit)
	case ErrInconsistentLength:
		return fmt.Sprintf("%s at offset %d: %s (declared %d, remaining %d)",
			e.Err, e.Offset, e.Msg, e.Declared, e.Limit)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Err, e.Offset, e.Msg)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func errTruncated(off uint32, msg string) *DecodeError {
	return &DecodeError{Err: ErrTruncatedInput, Offset: off, Msg: msg}
}

func errLimit(off uint32, msg string, declared, limit int) *DecodeError {
	return &DecodeError{Err: ErrLimitExceeded, Offset: off, Msg: msg, Declared: declared, Limit: limit}
}

func errLength(off uint32, msg string, declared, remaining int) *DecodeError {
	return &DecodeError{Err: ErrInconsistentLength, Offset: off, Msg: msg, Declared: declared, Limit: remaining}
}

func errMalformed(off uint32, msg string) *DecodeError {
	return &DecodeError{Err: ErrMalformed, Offset: off, Msg: msg}
}
