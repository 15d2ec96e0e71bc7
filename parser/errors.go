package parser

import (
	"errors"
	"fmt"
)

// ErrAbruptEnd reports that the token stream ended where the grammar required
// another token. Callers match it with errors.Is.
var ErrAbruptEnd = errors.New("abrupt end of input")

// SyntaxError is a grammar violation at a known position.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("SyntaxError: %s at line %d, column %d", e.Msg, e.Line, e.Column)
}

// LexError is a malformed token reported by the scanner, propagated verbatim.
type LexError struct {
	Msg    string
	Line   int
	Column int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LexError: %s at line %d, column %d", e.Msg, e.Line, e.Column)
}

func syntaxError(msg string, line, col int) *SyntaxError {
	return &SyntaxError{Msg: msg, Line: line, Column: col}
}
