package keyring

import (
	"fmt"
	"os"
	"path/filepath"

	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/utils"
)

// SaveKeypair writes the private and public halves to disk as PEM files.
// The private key file is only readable by its owner; the public key file
// is world-readable so it can be shared.
func SaveKeypair(p *KeypairProvider, privatePath, publicPath string) error {
	privPEM, err := p.MarshalPrivate()
	if err != nil {
		return err
	}
	pubPEM, err := MarshalPublic(p.PublicKey())
	if err != nil {
		return err
	}

	if err := utils.EnsureDir(filepath.Dir(privatePath), 0700); err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(publicPath), 0700); err != nil {
		return err
	}

	if err := os.WriteFile(privatePath, privPEM, 0600); err != nil {
		return fmt.Errorf("failed to save private key to %s: %w", privatePath, err)
	}
	// #nosec G306 -- public keys are meant to be shared.
	if err := os.WriteFile(publicPath, pubPEM, 0644); err != nil {
		return fmt.Errorf("failed to save public key to %s: %w", publicPath, err)
	}

	return nil
}

// LoadPrivateFile reads and parses a private key from disk.
func LoadPrivateFile(path string) (*KeypairProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", sberrors.ErrKeyNotFound, path)
		}
		return nil, fmt.Errorf("failed to read private key at %s: %w", path, err)
	}
	return LoadPrivate(data)
}

// LoadPublicFile reads and parses a public key from disk.
func LoadPublicFile(path string) (*PublicOnlyProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", sberrors.ErrKeyNotFound, path)
		}
		return nil, fmt.Errorf("failed to read public key at %s: %w", path, err)
	}
	return LoadPublic(data)
}
