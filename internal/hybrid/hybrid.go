package hybrid

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"io"

	sberrors "github.com/sealbox/sealbox/internal/errors"
)

const (
	// SessionKeyBytes is the AES-256 session key size.
	SessionKeyBytes = 32

	// IVBytes is the CBC initialization vector size.
	IVBytes = aes.BlockSize

	// BlockBytes is the AES block size the padding aligns to.
	BlockBytes = aes.BlockSize
)

// Encrypt seals plaintext into a self-contained container under pub.
//
// A fresh 256-bit session key and 128-bit IV are drawn from crypto/rand
// on every call, so encrypting the same plaintext twice yields different
// containers. The session key is wrapped with RSA-OAEP-SHA256; the
// plaintext is PKCS#7-padded and encrypted with AES-256-CBC. Empty
// plaintext is valid and produces exactly one padded block.
func Encrypt(pub *rsa.PublicKey, plaintext []byte) ([]byte, error) {
	sessionKey := make([]byte, SessionKeyBytes)
	if _, err := io.ReadFull(rand.Reader, sessionKey); err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}

	wrappedKey, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, sessionKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap session key: %w", err)
	}

	iv := make([]byte, IVBytes)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	block, err := aes.NewCipher(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, BlockBytes)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return encodeContainer(wrappedKey, iv, ciphertext), nil
}

// Decrypt opens a container produced by Encrypt using priv.
//
// Framing problems are reported as ErrMalformedContainer. Every
// cryptographic failure, whether the session key would not unwrap or the
// recovered padding was invalid, is reported as the single
// ErrDecryptionFailed so callers cannot tell the causes apart.
func Decrypt(priv *rsa.PrivateKey, container []byte) ([]byte, error) {
	wrappedKey, iv, ciphertext, err := splitContainer(container)
	if err != nil {
		return nil, err
	}

	plaintext, err := decryptParts(priv, wrappedKey, iv, ciphertext)
	if err != nil {
		// Collapse the cause. Wrapping it would leak which step failed.
		return nil, sberrors.ErrDecryptionFailed
	}
	return plaintext, nil
}

// decryptParts performs the fallible cryptographic steps and reports
// which one failed; Decrypt hides that distinction from callers.
func decryptParts(priv *rsa.PrivateKey, wrappedKey, iv, ciphertext []byte) ([]byte, error) {
	sessionKey, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, wrappedKey, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sberrors.ErrKeyUnwrap, err)
	}
	if len(sessionKey) != SessionKeyBytes {
		return nil, fmt.Errorf("%w: unwrapped key has wrong length", sberrors.ErrKeyUnwrap)
	}

	block, err := aes.NewCipher(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sberrors.ErrKeyUnwrap, err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	return pkcs7Unpad(padded, BlockBytes)
}
