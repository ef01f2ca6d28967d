// Package charclass defines the character classes that both the WSV
// tokenizer and the WSV writer must agree on. Every predicate here is a
// pure function of its input rune; there is no shared or global state.
package charclass

// IsLineTerminator reports whether r ends a WSV line. Only U+000A is
// recognized; U+000D on its own is ordinary whitespace.
func IsLineTerminator(r rune) bool {
	return r == '\n'
}

// IsQuote reports whether r opens or closes a quoted value.
func IsQuote(r rune) bool {
	return r == '"'
}

// IsCommentStart reports whether r begins a comment that runs to (but
// does not include) the next line terminator.
func IsCommentStart(r rune) bool {
	return r == '#'
}

// IsDash reports whether r is the character used, alone, to spell null.
func IsDash(r rune) bool {
	return r == '-'
}

// IsWhitespace reports whether r is in the WSV whitespace class. This is
// the WSV standard's own set, not a language's default "is space"
// predicate: it differs from Go's unicode.IsSpace (which excludes
// the BOM U+FEFF, and includes U+000A, which WSV treats as a line
// terminator rather than whitespace).
func IsWhitespace(r rune) bool {
	switch r {
	case 0x0009, 0x000B, 0x000C, 0x000D, 0x0020, 0x0085, 0x00A0,
		0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	if r >= 0x2000 && r <= 0x200A {
		return true
	}
	return false
}

// IsValueChar reports whether r may appear directly in an unquoted
// value, i.e. it is not whitespace, a line terminator, a quote, a
// comment start, or (when standing alone) the null dash. IsValueChar
// does not itself special-case "-"; the tokenizer decides null-vs-value
// from context (a lone dash followed by a separator is null).
func IsValueChar(r rune) bool {
	return !IsWhitespace(r) && !IsLineTerminator(r) && !IsQuote(r) && !IsCommentStart(r)
}
