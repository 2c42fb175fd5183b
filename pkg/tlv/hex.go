package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ParseHex constructs a byte slice from a series of hex strings.
// Spaces are ignored to allow formats like "9F 02 01 AA".
func ParseHex(parts ...string) ([]byte, error) {
	cleanHex := strings.ReplaceAll(strings.Join(parts, ""), " ", "")

	data, err := hex.DecodeString(cleanHex)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input '%s': %w", cleanHex, err)
	}
	return data, nil
}

// Hex is ParseHex for fixtures and literals: it panics on malformed input.
func Hex(parts ...string) []byte {
	data, err := ParseHex(parts...)
	if err != nil {
		panic(err.Error())
	}
	return data
}
