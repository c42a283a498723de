package errors

import "errors"

// Key errors indicate problems loading or using key material.
var (
	// ErrKeyFormat indicates the key bytes are not a valid recognized encoding.
	ErrKeyFormat = errors.New("key is not a valid recognized encoding")

	// ErrPassphraseRequired indicates the key is passphrase-protected.
	// Sealbox recognizes encrypted OpenSSH keys but never decrypts them.
	ErrPassphraseRequired = errors.New("private key is passphrase-protected")

	// ErrMissingPrivateKey indicates decryption was attempted with a
	// provider that holds only a public key.
	ErrMissingPrivateKey = errors.New("decryption requires a private key")

	// ErrKeyNotFound indicates a key file could not be located on disk.
	ErrKeyNotFound = errors.New("key file not found")
)

// Container errors indicate structural problems with the encrypted artifact.
var (
	// ErrMalformedContainer indicates the container bytes are too short,
	// truncated, or the ciphertext is not block-aligned.
	ErrMalformedContainer = errors.New("container is malformed")
)

// Cryptographic errors indicate failures during decryption.
//
// ErrKeyUnwrap and ErrPaddingValidation are internal causes only. The
// engine never returns them from its public API: both surface as
// ErrDecryptionFailed so callers cannot distinguish a wrapped-key
// failure from a padding failure (padding-oracle mitigation).
var (
	// ErrKeyUnwrap indicates the session key could not be unwrapped.
	ErrKeyUnwrap = errors.New("failed to unwrap session key")

	// ErrPaddingValidation indicates the block padding was invalid.
	ErrPaddingValidation = errors.New("invalid block padding")

	// ErrDecryptionFailed is the single outward decryption failure.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// File errors indicate issues with input and output files.
var (
	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrOutputExists indicates the output file already exists and
	// --force was not given.
	ErrOutputExists = errors.New("output file already exists")
)
