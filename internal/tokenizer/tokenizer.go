// Package tokenizer implements the WSV lazy tokenizer: a pull-driven
// state machine that turns a stream of Unicode scalar values into a
// flat StartRow/Value/EndRow/Error event stream.
//
// The machine is written as an explicit switch over a small state enum,
// not as a goroutine or callback
// pipeline: Next is called, runs until it has an event to report, and
// returns. Nothing runs in the background and nothing is buffered
// beyond the handful of bytes of a single in-flight value.
package tokenizer

import (
	"strings"
	"unicode/utf8"

	"github.com/shapestone/wsv/internal/charclass"
)

// Source is a pull iterator of Unicode scalar values, the contract the
// tokenizer consumes when it is not handed a string directly. Next
// returns ok=false once exhausted and must keep returning ok=false
// afterward.
type Source interface {
	Next() (r rune, ok bool)
}

// state is the tokenizer's internal state, matching spec.md §4.B plus
// two implementation-private states: sawDash, which encodes the single
// rune of lookahead needed to distinguish a null token from the start
// of an unquoted value beginning with '-', and afterSlashInQuotedValue,
// which encodes the mandatory reopening quote a "/" line-break escape
// requires before the value continues.
type state int

const (
	stateBetweenValues state = iota
	stateSawDash
	stateInUnquotedValue
	stateInQuotedValue
	stateAfterQuoteInQuotedValue
	stateAfterSlashInQuotedValue
	stateInComment
	stateEnd
)

// Tokenizer is the WSV lexical state machine. A Tokenizer owns its
// input exclusively; it is not safe for concurrent use from multiple
// goroutines (nothing in this package is — see spec.md §5).
type Tokenizer struct {
	// string-mode (zero-copy) input.
	input      string
	pos        int // byte offset of the next unread byte
	borrowable bool

	// Source-mode (owned-only) input.
	src Source

	state   state
	line    int
	col     int
	rowOpen bool

	// one-rune lookahead held across a loop iteration for redispatch.
	hasHeld        bool
	heldRune       rune
	heldStartOffset int
	heldPos        Position
	heldOK         bool

	// accumulation state for the value currently in progress.
	valStart   int // byte offset, string mode only
	dashStart  int // byte offset of a pending '-', string mode only
	owned      bool
	builder    strings.Builder
	quoteMark  int      // byte offset of the most recent in-quote '"', string mode
	quoteOpen  Position // position of the quote that opened the value in progress

	pending []Event
}

// NewFromString creates a Tokenizer over s that borrows slices of s
// for any value that needs no escape decoding.
func NewFromString(s string) *Tokenizer {
	return &Tokenizer{
		input:      s,
		borrowable: true,
		line:       1,
		col:        1,
	}
}

// NewFromSource creates a Tokenizer over an arbitrary rune source. Every
// returned value is freshly allocated, since a generic Source cannot be
// sliced.
func NewFromSource(src Source) *Tokenizer {
	return &Tokenizer{
		src:  src,
		line: 1,
		col:  1,
	}
}

// Next returns the next event in the stream. ok is false once the
// stream is exhausted (the terminal Error, if any, has already been
// returned); further calls keep returning ok=false.
func (t *Tokenizer) Next() (Event, bool) {
	if len(t.pending) > 0 {
		e := t.pending[0]
		t.pending = t.pending[1:]
		return e, true
	}
	if t.state == stateEnd {
		return Event{}, false
	}
	for len(t.pending) == 0 && t.state != stateEnd {
		r, startOffset, pos, ok := t.readRune()
		t.step(r, startOffset, pos, ok)
	}
	if len(t.pending) == 0 {
		return Event{}, false
	}
	e := t.pending[0]
	t.pending = t.pending[1:]
	return e, true
}

// readRune returns the rune to process this iteration: a held rune
// from a redispatch, or a fresh one from the underlying source. pos is
// the (line, column) of r itself; startOffset is its byte offset in
// t.input (meaningful only when t.borrowable).
func (t *Tokenizer) readRune() (r rune, startOffset int, pos Position, ok bool) {
	if t.hasHeld {
		t.hasHeld = false
		return t.heldRune, t.heldStartOffset, t.heldPos, t.heldOK
	}

	pos = Position{Line: t.line, Column: t.col}

	if t.borrowable {
		startOffset = t.pos
		if t.pos >= len(t.input) {
			return 0, startOffset, pos, false
		}
		var size int
		r, size = utf8.DecodeRuneInString(t.input[t.pos:])
		t.pos += size
	} else {
		r, ok = t.src.Next()
		if !ok {
			return 0, 0, pos, false
		}
		ok = true
	}

	if charclass.IsLineTerminator(r) {
		t.line++
		t.col = 1
	} else {
		t.col++
	}

	if t.borrowable {
		return r, startOffset, pos, true
	}
	return r, 0, pos, true
}

func (t *Tokenizer) redispatch(r rune, startOffset int, pos Position, ok bool) {
	t.hasHeld = true
	t.heldRune = r
	t.heldStartOffset = startOffset
	t.heldPos = pos
	t.heldOK = ok
}

func isSeparator(r rune, ok bool) bool {
	if !ok {
		return true
	}
	return charclass.IsWhitespace(r) || charclass.IsLineTerminator(r) || charclass.IsCommentStart(r)
}

func (t *Tokenizer) emit(e Event) {
	t.pending = append(t.pending, e)
}

func (t *Tokenizer) startRowIfNeeded() {
	if !t.rowOpen {
		t.rowOpen = true
		t.emit(Event{Kind: StartRow})
	}
}

func (t *Tokenizer) endRowIfOpen() {
	if t.rowOpen {
		t.rowOpen = false
		t.emit(Event{Kind: EndRow})
	}
}

func (t *Tokenizer) fail(kind ErrorKind, pos Position) {
	t.emit(Event{Kind: ErrorEvent, Err: &Error{Kind: kind, Pos: pos}})
	t.state = stateEnd
}

// step performs one state transition given the rune (or EOF) read this
// iteration, pushing zero or more events onto t.pending.
func (t *Tokenizer) step(r rune, startOffset int, pos Position, ok bool) {
	switch t.state {
	case stateBetweenValues:
		t.stepBetweenValues(r, startOffset, pos, ok)
	case stateSawDash:
		t.stepSawDash(r, startOffset, pos, ok)
	case stateInUnquotedValue:
		t.stepInUnquotedValue(r, startOffset, pos, ok)
	case stateInQuotedValue:
		t.stepInQuotedValue(r, pos, ok)
	case stateAfterQuoteInQuotedValue:
		t.stepAfterQuoteInQuotedValue(r, startOffset, pos, ok)
	case stateAfterSlashInQuotedValue:
		t.stepAfterSlashInQuotedValue(r, pos, ok)
	case stateInComment:
		t.stepInComment(r, ok)
	}
}

func (t *Tokenizer) stepBetweenValues(r rune, startOffset int, pos Position, ok bool) {
	if !ok {
		t.endRowIfOpen()
		t.state = stateEnd
		return
	}
	switch {
	case charclass.IsLineTerminator(r):
		t.endRowIfOpen()
	case charclass.IsCommentStart(r):
		t.endRowIfOpen()
		t.state = stateInComment
	case charclass.IsQuote(r):
		t.startRowIfNeeded()
		t.owned = false
		t.quoteMark = 0
		t.quoteOpen = pos
		t.valStart = startOffset + utf8.RuneLen(r)
		if !t.borrowable {
			t.builder.Reset()
		}
		t.state = stateInQuotedValue
	case charclass.IsWhitespace(r):
		// stay BetweenValues
	case charclass.IsDash(r):
		t.dashStart = startOffset
		t.state = stateSawDash
	default:
		t.startUnquotedValue(r, startOffset)
	}
}

func (t *Tokenizer) startUnquotedValue(r rune, startOffset int) {
	t.startRowIfNeeded()
	t.valStart = startOffset
	if !t.borrowable {
		t.builder.Reset()
		t.builder.WriteRune(r)
	}
	t.state = stateInUnquotedValue
}

func (t *Tokenizer) stepSawDash(r rune, startOffset int, pos Position, ok bool) {
	if isSeparator(r, ok) {
		t.startRowIfNeeded()
		t.emit(Event{Kind: Value, Null: true})
		t.state = stateBetweenValues
		t.redispatch(r, startOffset, pos, ok)
		return
	}
	t.startRowIfNeeded()
	t.valStart = t.dashStart
	if !t.borrowable {
		t.builder.Reset()
		t.builder.WriteByte('-')
	}
	t.state = stateInUnquotedValue
	t.redispatch(r, startOffset, pos, ok)
}

func (t *Tokenizer) stepInUnquotedValue(r rune, startOffset int, pos Position, ok bool) {
	if isSeparator(r, ok) {
		text := t.finishUnquoted(startOffset)
		t.emit(Event{Kind: Value, Text: text})
		if !ok {
			t.endRowIfOpen()
			t.state = stateEnd
			return
		}
		t.state = stateBetweenValues
		t.redispatch(r, startOffset, pos, ok)
		return
	}
	if charclass.IsQuote(r) {
		t.fail(QuoteInUnquotedValue, pos)
		return
	}
	if !t.borrowable {
		t.builder.WriteRune(r)
	}
	// stay InUnquotedValue
}

func (t *Tokenizer) finishUnquoted(endOffset int) string {
	if t.borrowable {
		return t.input[t.valStart:endOffset]
	}
	return t.builder.String()
}

func (t *Tokenizer) stepInQuotedValue(r rune, pos Position, ok bool) {
	if !ok {
		t.fail(UnterminatedString, t.quoteOpen)
		return
	}
	if charclass.IsLineTerminator(r) {
		t.fail(UnterminatedString, t.quoteOpen)
		return
	}
	if charclass.IsQuote(r) {
		if t.borrowable {
			t.quoteMark = t.pos - utf8.RuneLen(r)
		}
		t.state = stateAfterQuoteInQuotedValue
		return
	}
	if !t.borrowable || t.owned {
		t.builder.WriteRune(r)
	}
}

func (t *Tokenizer) stepAfterQuoteInQuotedValue(r rune, startOffset int, pos Position, ok bool) {
	switch {
	case ok && charclass.IsQuote(r):
		t.switchToOwnedIfNeeded()
		t.builder.WriteByte('"')
		t.state = stateInQuotedValue
	case ok && r == '/':
		t.switchToOwnedIfNeeded()
		t.builder.WriteByte('\n')
		t.state = stateAfterSlashInQuotedValue
	case isSeparator(r, ok):
		text := t.finishQuoted()
		t.emit(Event{Kind: Value, Text: text})
		if !ok {
			t.endRowIfOpen()
			t.state = stateEnd
			return
		}
		t.state = stateBetweenValues
		t.redispatch(r, startOffset, pos, ok)
	default:
		t.fail(InvalidEscape, pos)
	}
}

// stepAfterSlashInQuotedValue handles the rune immediately following
// the '/' of a "/" line-break escape. WSV spells an embedded line feed
// as close-quote, '/', reopen-quote; the reopening quote here is
// mandatory and is consumed without being accumulated into the value.
func (t *Tokenizer) stepAfterSlashInQuotedValue(r rune, pos Position, ok bool) {
	if ok && charclass.IsQuote(r) {
		t.state = stateInQuotedValue
		return
	}
	if !ok || charclass.IsLineTerminator(r) {
		t.fail(UnterminatedString, t.quoteOpen)
		return
	}
	t.fail(InvalidEscape, pos)
}

func (t *Tokenizer) switchToOwnedIfNeeded() {
	if t.owned {
		return
	}
	t.owned = true
	if t.borrowable {
		// The builder has held nothing for the fast path so far; seed
		// it with the span we would otherwise have sliced.
		t.builder.Reset()
		if t.quoteMark > t.valStart {
			t.builder.WriteString(t.input[t.valStart:t.quoteMark])
		}
	}
	// Non-borrowable mode already accumulated every rune into the
	// builder as it went, so there is nothing to seed.
}

func (t *Tokenizer) finishQuoted() string {
	if t.owned {
		return t.builder.String()
	}
	if t.borrowable {
		return t.input[t.valStart:t.quoteMark]
	}
	return t.builder.String()
}

func (t *Tokenizer) stepInComment(r rune, ok bool) {
	if !ok {
		t.state = stateEnd
		return
	}
	if charclass.IsLineTerminator(r) {
		t.state = stateBetweenValues
	}
	// otherwise: discard and stay InComment
}
