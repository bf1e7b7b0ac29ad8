package parse

import (
	"errors"
	"fmt"

	"github.com/gdcore/serializer/token"
)

var (
	ErrParse    = errors.New("parse error")
	ErrTrailing = errors.New("trailing data")
	ErrRange    = errors.New("number out of range")
)

// ParseError describes a failure to parse a document.
type ParseError struct {
	Msg string
	Pos *token.Pos
	Err error
}

func (e *ParseError) Error() string {
	msg := ErrParse.Error()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Pos != nil {
		msg += " at " + e.Pos.String()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// Line returns the 1-based line of the error, or 0 if unknown.
func (e *ParseError) Line() int {
	if e.Pos == nil {
		return 0
	}
	return e.Pos.Line() + 1
}

// Col returns the 1-based column of the error, or 0 if unknown.
func (e *ParseError) Col() int {
	if e.Pos == nil {
		return 0
	}
	return e.Pos.Col() + 1
}

func newErr(pos *token.Pos, err error, format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Pos: pos, Err: err}
}

// fromTokenErr turns tokenizer and markup errors into a *ParseError.
func fromTokenErr(what string, err error) error {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		pos := te.Pos
		return &ParseError{Msg: what, Pos: &pos, Err: te.Err}
	}
	var ie *token.ErrImbalancedStructure
	if errors.As(err, &ie) {
		// the position is rendered by the *ParseError only
		switch {
		case ie.Open == nil:
			return newErr(ie.Close.Pos, token.ErrDocBalance, "%s: unexpected %q", what, ie.Close.Bytes)
		case ie.Close == nil:
			return newErr(ie.Open.Pos, token.ErrDocBalance, "%s: unmatched %q", what, ie.Open.Bytes)
		default:
			return newErr(ie.Close.Pos, token.ErrDocBalance, "%s: %q on line %d closed by %q",
				what, ie.Open.Bytes, ie.Open.Pos.Line()+1, ie.Close.Bytes)
		}
	}
	return &ParseError{Msg: what, Err: err}
}
