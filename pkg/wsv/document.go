package wsv

// Document is a fluent, in-memory ordered sequence of rows, offered as
// a convenience over the raw []Row returned by Parse.
type Document struct {
	rows []Row
}

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	return &Document{}
}

// ParseDocument parses a complete WSV document into a Document.
func ParseDocument(s string) (*Document, error) {
	rows, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &Document{rows: rows}, nil
}

// AddRow appends a row built from the given values. Returns the
// Document for method chaining.
func (d *Document) AddRow(values ...Value) *Document {
	d.rows = append(d.rows, Row(values))
	return d
}

// Rows returns all rows in the document, in order.
func (d *Document) Rows() []Row {
	return d.rows
}

// RowCount returns the number of rows in the document.
func (d *Document) RowCount() int {
	return len(d.rows)
}

// GetRow returns the row at the given index. Returns (nil, false) if
// index is out of bounds.
func (d *Document) GetRow(index int) (Row, bool) {
	if index < 0 || index >= len(d.rows) {
		return nil, false
	}
	return d.rows[index], true
}

// String renders the document to WSV text using the given alignment.
func (d *Document) String(alignment Alignment) (string, error) {
	return Write(d.rows, WriterOptions{Alignment: alignment})
}
