package tlv

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		want    []byte
		wantErr bool
	}{
		{
			name:   "Simple Join",
			inputs: []string{"9F", "02"},
			want:   []byte{0x9F, 0x02},
		},
		{
			name:   "With Spaces",
			inputs: []string{"6F 07", " 84 02 "},
			want:   []byte{0x6F, 0x07, 0x84, 0x02},
		},
		{
			name:   "Mixed Case",
			inputs: []string{"df", "01"},
			want:   []byte{0xDF, 0x01},
		},
		{
			name:   "Empty",
			inputs: nil,
			want:   []byte{},
		},
		{
			name:    "Invalid Hex",
			inputs:  []string{"ZZ"},
			wantErr: true,
		},
		{
			name:    "Odd Length",
			inputs:  []string{"123"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.inputs...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !bytes.Equal(got, tt.want) {
				t.Errorf("ParseHex() = %X, want %X", got, tt.want)
			}
		})
	}
}

func TestParseHex_WrapsDecodeError(t *testing.T) {
	_, err := ParseHex("123")
	if !errors.Is(err, hex.ErrLength) {
		t.Errorf("ParseHex() error = %v, want hex.ErrLength in chain", err)
	}
}

func TestHex_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Hex() should panic on invalid input")
		}
	}()
	Hex("ZZ")
}
