package core

import (
	"errors"
	"fmt"
)

// Errors reported inside a SyntaxError. All of them are fatal: the cursor
// position at the failure point cannot be trusted to resume lexing.
var (
	ErrUnterminatedString    = errors.New("unterminated literal string")
	ErrUnterminatedHexString = errors.New("unterminated hex string")
	ErrMalformedHexString    = errors.New("malformed hex string")
	ErrMalformedDictEnd      = errors.New("malformed dictionary")
	ErrUnexpectedEOF         = errors.New("unexpected end of stream")
	ErrInvalidNumber         = errors.New("invalid number")
	ErrUnexpectedToken       = errors.New("unexpected token")
)

// SyntaxError reports malformed input together with the byte offset at which
// it was detected. For an unterminated string that is the end of input, and
// Detail gives the offset of the opening delimiter.
type SyntaxError struct {
	Offset int64
	Err    error
	Detail string
}

func (e *SyntaxError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("syntax error at offset %d: %v: %s", e.Offset, e.Err, e.Detail)
	}
	return fmt.Sprintf("syntax error at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func syntaxErr(offset int64, err error, detail string) *SyntaxError {
	return &SyntaxError{Offset: offset, Err: err, Detail: detail}
}
