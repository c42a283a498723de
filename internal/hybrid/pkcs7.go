package hybrid

import (
	"bytes"
	"fmt"

	sberrors "github.com/sealbox/sealbox/internal/errors"
)

// pkcs7Pad appends PKCS#7 padding so len(result) is a multiple of
// blockSize. Input already on a block boundary gains a full block of
// padding; that extra block is what makes unpadding unambiguous and must
// not be special-cased away.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padding := bytes.Repeat([]byte{byte(padLen)}, padLen)
	return append(data, padding...)
}

// pkcs7Unpad validates and strips PKCS#7 padding. The final byte must be
// a pad length in [1, blockSize] and every padding byte must equal it;
// any violation is ErrPaddingValidation.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: data is not block-aligned", sberrors.ErrPaddingValidation)
	}

	padLen := int(data[len(data)-1])
	if padLen < 1 || padLen > blockSize {
		return nil, fmt.Errorf("%w: pad length %d out of range", sberrors.ErrPaddingValidation, padLen)
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: padding byte mismatch", sberrors.ErrPaddingValidation)
		}
	}

	return data[:len(data)-padLen], nil
}
