package bits

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Describe generates a human-readable report of v's bit layout.
func Describe[T constraints.Integer](v T) string {
	width := Width(v)

	signedness := "unsigned"
	if Signed[T]() {
		signedness = "signed"
	}

	// Two's-complement pattern truncated to the type's width.
	pattern := uint64(v) & (^uint64(0) >> (64 - width))

	positions := "none"
	if set := Positions(v); len(set) > 0 {
		parts := make([]string, len(set))
		for i, pos := range set {
			parts[i] = fmt.Sprintf("%d", pos)
		}
		positions = strings.Join(parts, ", ")
	}

	msb := "clear"
	if HasMSB(v) {
		msb = "set"
	}

	lines := []string{
		"=== BIT REPORT ===",
		fmt.Sprintf("    - Type: %T (%s, %d bits)", v, signedness, width),
		fmt.Sprintf("    - Value: %0*X (Dec: %d)", int(width/4), pattern, v),
		fmt.Sprintf("    - Pattern: %s", formatPattern(v)),
		fmt.Sprintf("    - Set Positions: %s", positions),
		fmt.Sprintf("    - MSB: %s", msb),
	}
	return strings.Join(lines, "\n")
}

// formatPattern renders the bits of v from most to least significant, one '_' per nibble.
func formatPattern[T constraints.Integer](v T) string {
	width := Width(v)

	var sb strings.Builder
	for pos := width; pos > 0; pos-- {
		if pos != width && pos%4 == 0 {
			sb.WriteByte('_')
		}
		if Has(v, pos-1) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
