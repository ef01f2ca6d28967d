package tokenizer

import "fmt"

// EventKind identifies the shape of an Event in the flat event stream
// the tokenizer emits.
type EventKind int

const (
	// StartRow opens a new row; later in the stream the row is either
	// closed by an EndRow, after at least one Value, or cut short by an
	// Error, which may come before any Value of the row.
	StartRow EventKind = iota
	// Value carries one parsed cell, null or text.
	Value
	// EndRow closes the row most recently opened by StartRow.
	EndRow
	// ErrorEvent reports a fatal lexical error; it is always the last
	// event produced (Next reports exhaustion immediately afterward).
	ErrorEvent
)

func (k EventKind) String() string {
	switch k {
	case StartRow:
		return "StartRow"
	case Value:
		return "Value"
	case EndRow:
		return "EndRow"
	case ErrorEvent:
		return "Error"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// ErrorKind identifies why the tokenizer stopped.
type ErrorKind int

const (
	// UnterminatedString: EOF or a line terminator was reached while
	// inside a quoted value.
	UnterminatedString ErrorKind = iota
	// InvalidEscape: inside a quoted value, a '"' was followed by a
	// character other than '"', '/', whitespace, a line terminator,
	// '#', or EOF.
	InvalidEscape
	// QuoteInUnquotedValue: a '"' appeared in the middle of an
	// unquoted value.
	QuoteInUnquotedValue
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "unterminated string"
	case InvalidEscape:
		return "invalid escape"
	case QuoteInUnquotedValue:
		return "quote in unquoted value"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Position is a 1-based (line, column) cursor into the scanned input.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error is a lexical error, carrying the position of the offending
// scalar.
type Error struct {
	Kind ErrorKind
	Pos  Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("wsv: %s at %s", e.Kind, e.Pos)
}

// Event is one element of the tokenizer's flat output stream.
type Event struct {
	Kind EventKind

	// Valid when Kind == Value.
	Null bool
	Text string

	// Valid when Kind == ErrorEvent.
	Err *Error
}
