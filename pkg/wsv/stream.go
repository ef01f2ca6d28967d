package wsv

import (
	"bufio"
	"io"
)

// runeReaderSource adapts a bufio.Reader to the tokenizer.Source
// contract expected by RowReader, decoding UTF-8 one scalar at a time.
// Byte decoding belongs to external collaborators (spec §1); this is
// the thin adapter that lets RowReader consume an io.Reader without
// the core itself knowing about encodings.
type runeReaderSource struct {
	r *bufio.Reader
}

func (s runeReaderSource) Next() (rune, bool) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return 0, false
	}
	return r, true
}

// Scanner provides a streaming interface for reading WSV rows one at a
// time from an io.Reader. It is memory-efficient for large inputs:
// only the row currently being assembled is held in memory.
//
// Example:
//
//	scanner := wsv.NewScanner(file)
//	for scanner.Scan() {
//	    row := scanner.Row()
//	    // process row
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	rows *RowReader
	row  Row
	err  error
	done bool
}

// NewScanner creates a new Scanner that reads WSV from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{rows: NewRowReader(runeReaderSource{r: bufio.NewReader(r)})}
}

// Scan advances the scanner to the next row. It returns false once
// there are no more rows or a lexical error occurs; call Err
// afterward to distinguish the two.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	row, err, ok := s.rows.Next(0)
	if !ok {
		s.done = true
		return false
	}
	if err != nil {
		s.done = true
		s.err = err
		return false
	}
	s.row = row
	return true
}

// Row returns the row most recently produced by Scan.
func (s *Scanner) Row() Row {
	return s.row
}

// Err returns the error, if any, that stopped scanning. It returns
// nil if scanning stopped because the input was exhausted.
func (s *Scanner) Err() error {
	return s.err
}
