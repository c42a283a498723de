package hybrid

import (
	"encoding/binary"
	"fmt"

	sberrors "github.com/sealbox/sealbox/internal/errors"
)

// Container byte layout (all integers big-endian):
//
//	offset 0    : uint32  wrapped key length (N)
//	offset 4    : byte[N] wrapped session key (RSA-OAEP-SHA256)
//	offset 4+N  : byte[16] IV
//	offset 20+N : byte[*]  ciphertext (AES-256-CBC, PKCS#7-padded)
const lengthPrefixBytes = 4

// Header describes a container without exposing key material.
type Header struct {
	WrappedKeyLen int
	IV            [IVBytes]byte
	CiphertextLen int
}

// encodeContainer assembles the on-disk container from its parts.
func encodeContainer(wrappedKey, iv, ciphertext []byte) []byte {
	out := make([]byte, 0, lengthPrefixBytes+len(wrappedKey)+len(iv)+len(ciphertext))
	out = binary.BigEndian.AppendUint32(out, uint32(len(wrappedKey)))
	out = append(out, wrappedKey...)
	out = append(out, iv...)
	out = append(out, ciphertext...)
	return out
}

// splitContainer parses a container into its parts, validating framing.
// The returned slices alias the input.
func splitContainer(container []byte) (wrappedKey, iv, ciphertext []byte, err error) {
	if len(container) < lengthPrefixBytes {
		return nil, nil, nil, fmt.Errorf("%w: missing length prefix", sberrors.ErrMalformedContainer)
	}

	wrappedLen := int(binary.BigEndian.Uint32(container[:lengthPrefixBytes]))
	rest := container[lengthPrefixBytes:]

	if len(rest) < wrappedLen+IVBytes {
		return nil, nil, nil, fmt.Errorf("%w: truncated before IV", sberrors.ErrMalformedContainer)
	}

	wrappedKey = rest[:wrappedLen]
	iv = rest[wrappedLen : wrappedLen+IVBytes]
	ciphertext = rest[wrappedLen+IVBytes:]

	if len(ciphertext) == 0 || len(ciphertext)%BlockBytes != 0 {
		return nil, nil, nil, fmt.Errorf("%w: ciphertext is not a non-zero multiple of the block size", sberrors.ErrMalformedContainer)
	}

	return wrappedKey, iv, ciphertext, nil
}

// ParseHeader inspects a container's framing without any key material.
// It fails with ErrMalformedContainer exactly when Decrypt would reject
// the framing.
func ParseHeader(container []byte) (*Header, error) {
	wrappedKey, iv, ciphertext, err := splitContainer(container)
	if err != nil {
		return nil, err
	}

	h := &Header{
		WrappedKeyLen: len(wrappedKey),
		CiphertextLen: len(ciphertext),
	}
	copy(h.IV[:], iv)
	return h, nil
}
