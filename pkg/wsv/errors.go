package wsv

import (
	"errors"
	"fmt"

	"github.com/shapestone/wsv/internal/tokenizer"
)

// Sentinel errors identifying the lexical failure behind a ParseError.
// Use errors.Is against these, not against a ParseError value.
var (
	// ErrUnterminatedString indicates EOF or a line terminator was
	// reached while inside a quoted value.
	ErrUnterminatedString = errors.New("wsv: unterminated string")

	// ErrInvalidEscape indicates a '"' inside a quoted value was
	// followed by a character other than '"', '/', or a separator.
	ErrInvalidEscape = errors.New("wsv: invalid escape sequence")

	// ErrQuoteInUnquotedValue indicates a '"' appeared in the middle of
	// an unquoted value.
	ErrQuoteInUnquotedValue = errors.New("wsv: quote in unquoted value")
)

// ParseError reports a lexical error with the position at which it was
// detected.
type ParseError struct {
	// Line and Column are the 1-based position of the offending
	// scalar.
	Line   int
	Column int
	// Err is one of the sentinel errors above.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("wsv: parse error at line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying sentinel error, so errors.Is(err,
// ErrUnterminatedString) works against a returned *ParseError.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// parseErrorFromEvent converts a tokenizer error event into the
// public *ParseError, translating the internal error-kind enum into
// one of this package's sentinel errors.
func parseErrorFromEvent(e *tokenizer.Error) *ParseError {
	return &ParseError{
		Line:   e.Pos.Line,
		Column: e.Pos.Column,
		Err:    sentinelFor(e.Kind),
	}
}

func sentinelFor(k tokenizer.ErrorKind) error {
	switch k {
	case tokenizer.UnterminatedString:
		return ErrUnterminatedString
	case tokenizer.InvalidEscape:
		return ErrInvalidEscape
	case tokenizer.QuoteInUnquotedValue:
		return ErrQuoteInUnquotedValue
	default:
		return fmt.Errorf("wsv: unknown lexical error kind %d", int(k))
	}
}
