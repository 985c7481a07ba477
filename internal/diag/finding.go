package diag

import (
	"otlview/internal/source"
)

// Note attaches secondary context to a finding.
type Note struct {
	Span source.Span
	Msg  string
}

// Finding is one advisory observation about a decoded outline.
type Finding struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Finding {
	return Finding{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
		Notes:    nil,
	}
}

func NewError(code Code, primary source.Span, msg string) Finding {
	return New(SevError, code, primary, msg)
}

func NewInfo(code Code, primary source.Span, msg string) Finding {
	return New(SevInfo, code, primary, msg)
}

func (f Finding) WithNote(sp source.Span, msg string) Finding {
	f.Notes = append(f.Notes, Note{Span: sp, Msg: msg})
	return f
}
