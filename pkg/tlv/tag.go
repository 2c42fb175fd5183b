// Package tlv reads the flag bits carried by BER-TLV (Basic Encoding Rules - Tag-Length-Value)
// tags, using the single-bit queries of package bits.
//
// First tag byte, positions counted from the least-significant bit:
//
//	Bits 7-6: Class (00 Universal, 01 Application, 10 Context-Specific, 11 Private).
//	Bit 5:    Constructed (1) or Primitive (0).
//	Bits 4-0: Tag number, or 11111 when the number continues in subsequent bytes.
//
// Subsequent tag bytes set bit 7 while more bytes follow.
package tlv

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/gregLibert/bitquery/pkg/bits"
	"github.com/moov-io/bertlv"
)

// ErrInvalidTag is matched by every tag decoding error.
var ErrInvalidTag = errors.New("invalid BER-TLV tag")

// Class is the tag class encoded in bits 7-6 of the first tag byte.
type Class int

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "Universal"
	case ClassApplication:
		return "Application"
	case ClassContextSpecific:
		return "Context-Specific"
	case ClassPrivate:
		return "Private"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// TagFlags holds the flags decoded from a single tag, plus those of its children
// when the tag is constructed.
type TagFlags struct {
	Tag         string // upper-case hex
	Class       Class
	Constructed bool
	MultiByte   bool
	Children    []TagFlags
}

// DecodeTag decodes the flag bits of a complete tag (first byte plus any subsequent bytes).
func DecodeTag(tag []byte) (TagFlags, error) {
	if len(tag) == 0 {
		return TagFlags{}, fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}

	first := tag[0]
	flags := TagFlags{
		Tag:         strings.ToUpper(hex.EncodeToString(tag)),
		Class:       classOf(first),
		Constructed: bits.Has(first, 5),
		MultiByte:   hasLongFormNumber(first),
	}

	if !flags.MultiByte {
		if len(tag) > 1 {
			return TagFlags{}, fmt.Errorf("%w: %s: short-form tag followed by %d extra bytes", ErrInvalidTag, flags.Tag, len(tag)-1)
		}
		return flags, nil
	}

	if len(tag) == 1 {
		return TagFlags{}, fmt.Errorf("%w: %s: long-form tag without subsequent bytes", ErrInvalidTag, flags.Tag)
	}

	last := len(tag) - 1
	for i, b := range tag[1:] {
		more := bits.Has(b, 7)
		if more != (i+1 < last) {
			return TagFlags{}, fmt.Errorf("%w: %s: continuation bit mismatch on byte %d", ErrInvalidTag, flags.Tag, i+2)
		}
	}

	return flags, nil
}

// Inspect decodes a BER-TLV stream and returns the flags of every tag it contains.
func Inspect(data []byte) ([]TagFlags, error) {
	packets, err := bertlv.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("bertlv decode failed: %w", err)
	}
	return inspectPackets(packets)
}

func inspectPackets(packets []bertlv.TLV) ([]TagFlags, error) {
	var result []TagFlags
	for _, p := range packets {
		raw, err := hex.DecodeString(p.Tag)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not hex: %w", ErrInvalidTag, p.Tag, err)
		}

		flags, err := DecodeTag(raw)
		if err != nil {
			return nil, err
		}

		if len(p.TLVs) > 0 {
			children, err := inspectPackets(p.TLVs)
			if err != nil {
				return nil, fmt.Errorf("inside tag %s: %w", flags.Tag, err)
			}
			flags.Children = children
		}

		result = append(result, flags)
	}
	return result, nil
}

func classOf(first byte) Class {
	switch {
	case bits.Has(first, 7) && bits.Has(first, 6):
		return ClassPrivate
	case bits.Has(first, 7):
		return ClassContextSpecific
	case bits.Has(first, 6):
		return ClassApplication
	default:
		return ClassUniversal
	}
}

// hasLongFormNumber reports whether bits 4-0 are all set.
func hasLongFormNumber(first byte) bool {
	for pos := uint(0); pos <= 4; pos++ {
		if !bits.Has(first, pos) {
			return false
		}
	}
	return true
}
