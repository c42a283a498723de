package workflows

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sealbox/sealbox/internal/audit"
	"github.com/sealbox/sealbox/internal/configs"
	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/keyring"
	"github.com/sealbox/sealbox/internal/utils"
)

// KeygenOptions configures the keygen workflow.
type KeygenOptions struct {
	// Name is the key name; files are written as <name>.pem and
	// <name>.pub.pem. Defaults to the configured default key name.
	Name string

	// Dir overrides the configured keys directory.
	Dir string

	// Force overwrites existing key files.
	Force bool
}

// KeygenResult contains the outcome of a keygen operation.
type KeygenResult struct {
	PrivateKeyPath string
	PublicKeyPath  string
	Fingerprint    string
}

// Keygen generates a fresh RSA-2048 keypair and writes both halves to
// disk as PEM files.
//
// Returns ErrOutputExists if either key file already exists and Force
// was not set.
func Keygen(ctx context.Context, opts KeygenOptions) (*KeygenResult, error) {
	name := opts.Name
	if name == "" {
		name = configs.DefaultKeyName()
	}
	if !utils.IsValidKeyName(name) {
		return nil, fmt.Errorf("invalid key name %q", name)
	}

	dir := opts.Dir
	if dir == "" {
		dir = configs.KeysDir()
	}

	privPath := filepath.Join(dir, name+".pem")
	pubPath := filepath.Join(dir, name+".pub.pem")

	if !opts.Force {
		for _, path := range []string{privPath, pubPath} {
			exists, err := utils.FileExists(path)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, fmt.Errorf("%w: %s", sberrors.ErrOutputExists, path)
			}
		}
	}

	kp, err := keyring.Generate()
	if err != nil {
		return nil, err
	}

	if err := keyring.SaveKeypair(kp, privPath, pubPath); err != nil {
		return nil, err
	}

	fingerprint := keyring.Fingerprint(kp.PublicKey())

	entry := audit.LogWithUser("keygen")
	entry.KeyName = name
	entry.Fingerprint = fingerprint
	audit.Log(entry)

	return &KeygenResult{
		PrivateKeyPath: privPath,
		PublicKeyPath:  pubPath,
		Fingerprint:    fingerprint,
	}, nil
}
