package wsv

import "fmt"

// Alignment selects how the buffered Writer pads values within a
// column. The streaming Writer ignores this setting and always
// behaves as Packed.
type Alignment int

const (
	// Packed separates values on a row with exactly one space and
	// applies no padding across rows.
	Packed Alignment = iota
	// Left pads each value on the right with spaces so every column's
	// width equals the widest rendered value in that column across all
	// rows.
	Left
	// Right pads each value on the left.
	Right
)

// String returns the alignment's name.
func (a Alignment) String() string {
	switch a {
	case Packed:
		return "Packed"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// WriterOptions configures WSV writing behavior. Alignment is the
// format's only configuration surface.
type WriterOptions struct {
	// Alignment selects column padding. Default: Packed.
	Alignment Alignment
}

// DefaultWriterOptions returns the default writer configuration.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{Alignment: Packed}
}

// Validate reports whether opts is well-formed.
func (opts WriterOptions) Validate() error {
	switch opts.Alignment {
	case Packed, Left, Right:
		return nil
	default:
		return fmt.Errorf("wsv: invalid alignment %d", int(opts.Alignment))
	}
}
