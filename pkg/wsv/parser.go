package wsv

import "github.com/shapestone/wsv/internal/tokenizer"

// Parse parses a complete WSV document from a string in memory.
//
// Values that need no escape decoding borrow slices of s; values that
// contain in-quote escapes are freshly allocated. Callers see both
// uniformly as Value.Text.
//
// Example:
//
//	rows, err := wsv.Parse("1 2 3\n4 5 6\n")
func Parse(s string) ([]Row, error) {
	return ParseWithHint(s, 0)
}

// ParseWithHint parses a complete WSV document from a string,
// pre-sizing each row's backing slice to expectedColumns. The hint is
// purely a capacity optimization: rows are never padded, truncated, or
// validated against it, and jagged input remains legal. Pass 0 if the
// column count is unknown.
func ParseWithHint(s string, expectedColumns int) ([]Row, error) {
	r := NewRowReaderFromString(s)
	var rows []Row
	for {
		row, err, ok := r.Next(expectedColumns)
		if !ok {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}

// RowReader is the lazy parser façade: it produces one row at a time,
// reading no further ahead into the underlying stream than the most
// recently requested row.
type RowReader struct {
	tok  *tokenizer.Tokenizer
	done bool
}

// NewRowReaderFromString creates a RowReader over a string in memory.
// Unescaped values borrow slices of s.
func NewRowReaderFromString(s string) *RowReader {
	return &RowReader{tok: tokenizer.NewFromString(s)}
}

// NewRowReader creates a RowReader over an arbitrary scalar source.
// Every returned value is freshly allocated, since a generic source
// cannot be sliced.
func NewRowReader(src tokenizer.Source) *RowReader {
	return &RowReader{tok: tokenizer.NewFromSource(src)}
}

// Next returns the next row. ok is false once the stream is exhausted,
// at which point err is always nil. A non-nil err is the final value
// the reader will ever produce; the underlying tokenizer does not
// attempt recovery after a lexical error.
func (r *RowReader) Next(expectedColumns int) (row Row, err error, ok bool) {
	if r.done {
		return nil, nil, false
	}

	if expectedColumns > 0 {
		row = make(Row, 0, expectedColumns)
	}
	sawStart := false

	for {
		e, more := r.tok.Next()
		if !more {
			r.done = true
			if sawStart {
				return row, nil, true
			}
			return nil, nil, false
		}
		switch e.Kind {
		case tokenizer.StartRow:
			sawStart = true
		case tokenizer.Value:
			row = append(row, Value{Null: e.Null, Text: e.Text})
		case tokenizer.EndRow:
			return row, nil, true
		case tokenizer.ErrorEvent:
			r.done = true
			return nil, parseErrorFromEvent(e.Err), true
		}
	}
}
