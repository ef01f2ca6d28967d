// Package wsv reads and writes the Whitespace-Separated-Value textual
// tabular format: whitespace delimits values, a bare "-" spells null,
// and a small in-quote escape mechanism lets any Unicode string
// (including newlines and quotes) round-trip losslessly.
//
// The package exposes two parsing entry points (Parse/ParseWithHint for
// a whole document in memory, NewRowReader/NewRowReaderFromString for
// one row at a time) and a Writer for serializing rows back to text,
// with optional column alignment.
//
// # Thread Safety
//
// Every type in this package is owned by a single goroutine at a time;
// there is no shared or global state, so independent Parse/Write calls
// on independent inputs may run concurrently.
package wsv

// Value is a single parsed or to-be-written WSV cell: either null, or a
// Unicode string (which may be empty). This mirrors the shape of
// database/sql.NullString rather than using a sentinel string for
// null, since a bare "-" and the string "-" are distinct values that a
// plain string cannot represent unambiguously.
type Value struct {
	// Text holds the cell's string content. Meaningless when Null is
	// true.
	Text string
	// Null reports whether this cell is the WSV null value (a bare
	// "-"), as opposed to any string, including the empty string.
	Null bool
}

// String returns the value's text, or "-" if the value is null. It is a
// convenience for display; it is not how the writer decides quoting.
func (v Value) String() string {
	if v.Null {
		return "-"
	}
	return v.Text
}

// NullValue returns the WSV null value.
func NullValue() Value {
	return Value{Null: true}
}

// Text returns a non-null value wrapping s.
func Text(s string) Value {
	return Value{Text: s}
}

// Row is an ordered sequence of values. Rows may differ in length;
// jagged tables are legal.
type Row []Value
