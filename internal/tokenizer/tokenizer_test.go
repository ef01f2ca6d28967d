package tokenizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sliceSource adapts a []rune to the Source interface, so the owned
// (non-borrowing) code path can be exercised with the same test table
// as the string fast path.
type sliceSource struct {
	runes []rune
	pos   int
}

func newSliceSource(s string) *sliceSource {
	return &sliceSource{runes: []rune(s)}
}

func (s *sliceSource) Next() (rune, bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	r := s.runes[s.pos]
	s.pos++
	return r, true
}

func collect(t *Tokenizer) []Event {
	var events []Event
	for {
		e, ok := t.Next()
		if !ok {
			return events
		}
		events = append(events, e)
		if e.Kind == ErrorEvent {
			return events
		}
	}
}

func val(text string) Event      { return Event{Kind: Value, Text: text} }
func null() Event                { return Event{Kind: Value, Null: true} }
func errAt(k ErrorKind, l, c int) Event {
	return Event{Kind: ErrorEvent, Err: &Error{Kind: k, Pos: Position{Line: l, Column: c}}}
}

var startRow = Event{Kind: StartRow}
var endRow = Event{Kind: EndRow}

func TestTokenizer_BasicRows(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Event
	}{
		{
			name:     "empty input produces no rows",
			input:    "",
			expected: nil,
		},
		{
			name:     "single unquoted value",
			input:    "abc",
			expected: []Event{startRow, val("abc"), endRow},
		},
		{
			name:     "simple row of unquoted values",
			input:    "a b c",
			expected: []Event{startRow, val("a"), val("b"), val("c"), endRow},
		},
		{
			name:     "leading and trailing whitespace is insignificant",
			input:    "  a b  ",
			expected: []Event{startRow, val("a"), val("b"), endRow},
		},
		{
			name:     "bare dash is null",
			input:    "a - c",
			expected: []Event{startRow, val("a"), null(), val("c"), endRow},
		},
		{
			name:     "dash prefix is an ordinary value",
			input:    "-5 -abc -",
			expected: []Event{startRow, val("-5"), val("-abc"), null(), endRow},
		},
		{
			name:     "quoted empty string is distinct from null",
			input:    `a "" -`,
			expected: []Event{startRow, val("a"), val(""), null(), endRow},
		},
		{
			name:     "quoted value with embedded whitespace",
			input:    `"hello world"`,
			expected: []Event{startRow, val("hello world"), endRow},
		},
		{
			name:     "doubled quote escape",
			input:    `"He said ""hi"""`,
			expected: []Event{startRow, val(`He said "hi"`), endRow},
		},
		{
			name:     "slash escape is a line feed",
			input:    `"line1"/"line2"`,
			expected: []Event{startRow, val("line1\nline2"), endRow},
		},
		{
			name:     "consecutive slash escapes each consume their own reopening quote",
			input:    `"a"/"b"/"c"`,
			expected: []Event{startRow, val("a\nb\nc"), endRow},
		},
		{
			name:     "trailing comment is discarded",
			input:    "a b # a comment\n",
			expected: []Event{startRow, val("a"), val("b"), endRow},
		},
		{
			name:     "comment-only line produces no row",
			input:    "# just a comment\n",
			expected: nil,
		},
		{
			name:     "jagged rows",
			input:    "a b c\nx\n",
			expected: []Event{
				startRow, val("a"), val("b"), val("c"), endRow,
				startRow, val("x"), endRow,
			},
		},
		{
			name:     "blank line produces no row",
			input:    "a\n\nb\n",
			expected: []Event{
				startRow, val("a"), endRow,
				startRow, val("b"), endRow,
			},
		},
		{
			name:     "final row need not be newline-terminated",
			input:    "a b\nc d",
			expected: []Event{
				startRow, val("a"), val("b"), endRow,
				startRow, val("c"), val("d"), endRow,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(NewFromString(tt.input))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("string mode mismatch (-want +got):\n%s", diff)
			}

			gotOwned := collect(NewFromSource(newSliceSource(tt.input)))
			if diff := cmp.Diff(tt.expected, gotOwned); diff != "" {
				t.Errorf("source mode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Event
	}{
		{
			name:     "unterminated quoted value at EOF",
			input:    `"oops`,
			expected: []Event{startRow, errAt(UnterminatedString, 1, 1)},
		},
		{
			name:     "unterminated quoted value at line terminator",
			input:    "\"oops\nmore",
			expected: []Event{startRow, errAt(UnterminatedString, 1, 1)},
		},
		{
			name:     "quote inside an unquoted value",
			input:    `ab"c`,
			expected: []Event{startRow, errAt(QuoteInUnquotedValue, 1, 3)},
		},
		{
			name:     "invalid escape sequence",
			input:    `"a"x"`,
			expected: []Event{startRow, errAt(InvalidEscape, 1, 4)},
		},
		{
			name:     "slash escape missing its reopening quote",
			input:    `"a"/x`,
			expected: []Event{startRow, errAt(InvalidEscape, 1, 5)},
		},
		{
			name:     "slash escape at EOF has no reopening quote",
			input:    `"a"/`,
			expected: []Event{startRow, errAt(UnterminatedString, 1, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(NewFromString(tt.input))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("string mode mismatch (-want +got):\n%s", diff)
			}

			gotOwned := collect(NewFromSource(newSliceSource(tt.input)))
			if diff := cmp.Diff(tt.expected, gotOwned); diff != "" {
				t.Errorf("source mode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizer_ErrorIsTerminal(t *testing.T) {
	tok := NewFromString(`"oops`)
	events := collect(tok)
	if len(events) == 0 || events[len(events)-1].Kind != ErrorEvent {
		t.Fatalf("expected stream to end with an error, got %+v", events)
	}
	if e, ok := tok.Next(); ok {
		t.Errorf("expected no further events after an error, got %+v", e)
	}
}

func TestTokenizer_PositionTracksLines(t *testing.T) {
	// Column resets to 1 after each line terminator; lines are 1-based.
	tok := NewFromString("ab\nc\"")
	var last Event
	for {
		e, ok := tok.Next()
		if !ok {
			break
		}
		last = e
	}
	if last.Kind != ErrorEvent {
		t.Fatalf("expected a terminal error, got %+v", last)
	}
	if last.Err.Pos != (Position{Line: 2, Column: 2}) {
		t.Errorf("expected error at 2:2, got %s", last.Err.Pos)
	}
}
