package hybrid

import (
	"bytes"
	"errors"
	"testing"

	sberrors "github.com/sealbox/sealbox/internal/errors"
)

func TestPkcs7Pad(t *testing.T) {
	cases := []struct {
		name    string
		input   []byte
		wantLen int
		wantPad byte
	}{
		{"empty gets full block", nil, 16, 16},
		{"one byte", []byte{0x01}, 16, 15},
		{"fifteen bytes", bytes.Repeat([]byte{0x02}, 15), 16, 1},
		{"full block gets extra block", bytes.Repeat([]byte{0x03}, 16), 32, 16},
		{"seventeen bytes", bytes.Repeat([]byte{0x04}, 17), 32, 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			padded := pkcs7Pad(tc.input, 16)
			if len(padded) != tc.wantLen {
				t.Errorf("padded length = %d, want %d", len(padded), tc.wantLen)
			}
			if padded[len(padded)-1] != tc.wantPad {
				t.Errorf("pad byte = %d, want %d", padded[len(padded)-1], tc.wantPad)
			}
			if !bytes.HasPrefix(padded, tc.input) {
				t.Error("padding modified the input prefix")
			}
		})
	}
}

func TestPkcs7PadUnpadRoundTrip(t *testing.T) {
	for size := 0; size <= 48; size++ {
		input := bytes.Repeat([]byte{0x5A}, size)
		got, err := pkcs7Unpad(pkcs7Pad(input, 16), 16)
		if err != nil {
			t.Fatalf("size %d: unpad failed: %v", size, err)
		}
		if !bytes.Equal(got, input) {
			t.Fatalf("size %d: round-trip mismatch", size)
		}
	}
}

func TestPkcs7UnpadRejectsInvalidPadding(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"not block-aligned", make([]byte, 15)},
		{"pad length zero", append(bytes.Repeat([]byte{0x01}, 15), 0x00)},
		{"pad length too large", append(bytes.Repeat([]byte{0x01}, 15), 0x11)},
		{"padding byte mismatch", append(append(bytes.Repeat([]byte{0x01}, 13), 0x02, 0x03), 0x03)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pkcs7Unpad(tc.input, 16)
			if !errors.Is(err, sberrors.ErrPaddingValidation) {
				t.Errorf("expected ErrPaddingValidation, got %v", err)
			}
		})
	}
}

func TestPkcs7UnpadFullPaddingBlock(t *testing.T) {
	// A block of sixteen 0x10 bytes is pure padding and unpads to empty.
	input := bytes.Repeat([]byte{0x10}, 16)
	got, err := pkcs7Unpad(input, 16)
	if err != nil {
		t.Fatalf("unpad failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d bytes", len(got))
	}
}
