package wsv

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/wsv/internal/charclass"
)

// Write serializes rows to WSV text according to opts. Packed needs
// only a single pass; Left and Right materialize every rendered cell
// first so per-column widths can be computed (spec's two-pass
// requirement), including growing the width table to cover columns
// that only appear in later, longer rows.
func Write(rows []Row, opts WriterOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if opts.Alignment == Packed {
		return writePacked(rows), nil
	}
	return writeAligned(rows, opts.Alignment), nil
}

func writePacked(rows []Row) string {
	rendered := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = renderValue(v)
		}
		rendered[i] = strings.Join(cells, " ")
	}
	return strings.Join(rendered, "\n")
}

func writeAligned(rows []Row, alignment Alignment) string {
	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	grid := make([][]string, len(rows))
	widths := make([]int, maxCols)
	for i, row := range rows {
		grid[i] = make([]string, maxCols)
		for c := 0; c < maxCols; c++ {
			var cell string
			if c < len(row) {
				cell = renderValue(row[c])
			}
			grid[i][c] = cell
			if w := utf8.RuneCountInString(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}

	renderedRows := make([]string, len(rows))
	for i, cells := range grid {
		padded := make([]string, maxCols)
		for c, cell := range cells {
			padded[c] = pad(cell, widths[c], alignment)
		}
		renderedRows[i] = strings.Join(padded, " ")
	}
	return strings.Join(renderedRows, "\n")
}

func pad(s string, width int, alignment Alignment) string {
	deficit := width - utf8.RuneCountInString(s)
	if deficit <= 0 {
		return s
	}
	fill := strings.Repeat(" ", deficit)
	if alignment == Right {
		return fill + s
	}
	return s + fill
}

// renderValue renders a single cell exactly as both Packed and aligned
// modes do: null as a bare "-", text bare when safe, quoted (with
// escapes) otherwise.
func renderValue(v Value) string {
	if v.Null {
		return "-"
	}
	if !needsQuoting(v.Text) {
		return v.Text
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range v.Text {
		switch r {
		case '"':
			b.WriteString(`""`)
		case '\n':
			b.WriteString(`"/"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuoting(s string) bool {
	if s == "" || s == "-" {
		return true
	}
	for _, r := range s {
		if charclass.IsWhitespace(r) || charclass.IsLineTerminator(r) ||
			charclass.IsQuote(r) || charclass.IsCommentStart(r) {
			return true
		}
	}
	return false
}

// StreamWriter renders rows one value at a time directly to an
// io.Writer, never materializing more than a single rendered value.
// Column alignment is not supported in this mode; output is always
// Packed-shaped regardless of the WriterOptions passed to
// NewStreamWriter.
type StreamWriter struct {
	w        io.Writer
	wroteRow bool
	err      error
}

// NewStreamWriter creates a StreamWriter over w. opts is accepted for
// symmetry with Write, but its Alignment is ignored: streaming output
// is always Packed.
func NewStreamWriter(w io.Writer, opts WriterOptions) *StreamWriter {
	return &StreamWriter{w: w}
}

// WriteRow renders and writes one row. Once WriteRow returns a
// non-nil error, every subsequent call returns the same error without
// writing anything further.
func (sw *StreamWriter) WriteRow(values []Value) error {
	if sw.err != nil {
		return sw.err
	}
	if sw.wroteRow {
		if _, err := io.WriteString(sw.w, "\n"); err != nil {
			sw.err = err
			return err
		}
	}
	sw.wroteRow = true
	for i, v := range values {
		if i > 0 {
			if _, err := io.WriteString(sw.w, " "); err != nil {
				sw.err = err
				return err
			}
		}
		if _, err := io.WriteString(sw.w, renderValue(v)); err != nil {
			sw.err = err
			return err
		}
	}
	return nil
}

// Close finalizes the stream. It writes nothing further; it exists so
// StreamWriter can report a previously observed write error through a
// conventional Close call.
func (sw *StreamWriter) Close() error {
	return sw.err
}
