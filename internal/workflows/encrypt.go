package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/sealbox/sealbox/internal/audit"
	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/hybrid"
	"github.com/sealbox/sealbox/internal/keyring"
	"github.com/sealbox/sealbox/internal/utils"
)

// SealedSuffix is appended to encrypted file names.
const SealedSuffix = ".sealed"

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// InputPath is the plaintext file to encrypt.
	InputPath string

	// OutputPath is the container destination. Defaults to InputPath
	// plus ".sealed".
	OutputPath string

	// KeyPath points to the recipient's public key (or a private key
	// whose public half is used).
	KeyPath string

	// Force overwrites an existing output file.
	Force bool

	// DryRun previews the output path without writing anything.
	DryRun bool
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	InputPath   string
	OutputPath  string
	Fingerprint string
	DryRun      bool
}

// Encrypt seals a file into a container under the recipient's public key.
//
// Returns ErrFileNotFound if the input does not exist, ErrKeyNotFound or
// ErrKeyFormat for key problems, and ErrOutputExists if the output is
// already present and Force was not set.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	provider, err := loadEncryptionKey(opts.KeyPath)
	if err != nil {
		return nil, err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = opts.InputPath + SealedSuffix
	}

	result := &EncryptResult{
		InputPath:   opts.InputPath,
		OutputPath:  outputPath,
		Fingerprint: keyring.Fingerprint(provider.PublicKey()),
		DryRun:      opts.DryRun,
	}

	if opts.DryRun {
		return result, nil
	}

	if !opts.Force {
		exists, err := utils.FileExists(outputPath)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", sberrors.ErrOutputExists, outputPath)
		}
	}

	plaintext, err := os.ReadFile(opts.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", sberrors.ErrFileNotFound, opts.InputPath)
		}
		return nil, fmt.Errorf("failed to read %s: %w", opts.InputPath, err)
	}

	container, err := hybrid.Encrypt(provider.PublicKey(), plaintext)
	if err != nil {
		return nil, err
	}

	if err := utils.WriteFileAtomic(outputPath, container, 0600); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("encrypt")
	entry.InputPath = opts.InputPath
	entry.OutputPath = outputPath
	entry.Fingerprint = result.Fingerprint
	audit.Log(entry)

	return result, nil
}
