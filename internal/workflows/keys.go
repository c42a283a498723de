package workflows

import (
	"errors"
	"fmt"
	"os"

	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/keyring"
)

// loadEncryptionKey loads the public key to encrypt under. The file may
// hold a public key, or a private key whose public half is used; the
// private component is never required for encryption.
func loadEncryptionKey(path string) (keyring.Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", sberrors.ErrKeyNotFound, path)
		}
		return nil, fmt.Errorf("failed to read key at %s: %w", path, err)
	}

	pub, pubErr := keyring.LoadPublic(data)
	if pubErr == nil {
		return pub, nil
	}

	kp, privErr := keyring.LoadPrivate(data)
	if privErr == nil {
		return kp, nil
	}
	if errors.Is(privErr, sberrors.ErrPassphraseRequired) {
		return nil, privErr
	}

	return nil, fmt.Errorf("%w: %s holds neither a public nor a private key", sberrors.ErrKeyFormat, path)
}

// loadDecryptionKey loads the private key for decryption, either from
// raw bytes (piped via stdin) or from a file. A file that holds only a
// public key is a capability error, not a format error: decryption
// needs the private half.
func loadDecryptionKey(data []byte, path string) (*keyring.KeypairProvider, error) {
	if data == nil {
		fileData, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", sberrors.ErrKeyNotFound, path)
			}
			return nil, fmt.Errorf("failed to read key at %s: %w", path, err)
		}
		data = fileData
	}

	kp, privErr := keyring.LoadPrivate(data)
	if privErr == nil {
		return kp, nil
	}
	if errors.Is(privErr, sberrors.ErrPassphraseRequired) {
		return nil, privErr
	}

	if _, pubErr := keyring.LoadPublic(data); pubErr == nil {
		return nil, fmt.Errorf("%w: only a public key was provided", sberrors.ErrMissingPrivateKey)
	}

	return nil, privErr
}
