package bits

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOutOfRange is matched by every error Lookup returns.
var ErrOutOfRange = errors.New("bit position out of range")

// PositionError describes a position that does not exist in a value of the given width.
type PositionError struct {
	Position uint
	Width    uint
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("bit position %d out of range for %d-bit value (valid 0-%d)", e.Position, e.Width, e.Width-1)
}

func (e *PositionError) Unwrap() error {
	return ErrOutOfRange
}

// Lookup is the strict form of Has. Positions from Width(v) upward are reported as a
// *PositionError instead of a clear bit.
func Lookup[T constraints.Integer](v T, pos uint) (bool, error) {
	width := Width(v)
	if pos >= width {
		return false, &PositionError{Position: pos, Width: width}
	}
	return v&Mask[T](pos) != 0, nil
}
