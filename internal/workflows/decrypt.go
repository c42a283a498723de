package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sealbox/sealbox/internal/audit"
	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/hybrid"
	"github.com/sealbox/sealbox/internal/utils"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// InputPath is the container file to decrypt.
	InputPath string

	// OutputPath is the plaintext destination. Defaults to InputPath
	// with the ".sealed" suffix removed; if the suffix is absent an
	// explicit OutputPath is required.
	OutputPath string

	// KeyPath points to the private key file. Ignored when
	// PrivateKeyData is set.
	KeyPath string

	// PrivateKeyData contains the private key bytes when reading from
	// stdin. If nil, the private key is loaded from KeyPath.
	PrivateKeyData []byte

	// Force overwrites an existing output file.
	Force bool
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	InputPath  string
	OutputPath string
}

// Decrypt opens a container and writes the recovered plaintext.
//
// Returns ErrMissingPrivateKey when handed a public key,
// ErrMalformedContainer for framing problems, and ErrDecryptionFailed
// for any cryptographic failure, without revealing whether the session
// key or the padding was at fault.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	kp, err := loadDecryptionKey(opts.PrivateKeyData, opts.KeyPath)
	if err != nil {
		return nil, err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		if !strings.HasSuffix(opts.InputPath, SealedSuffix) {
			return nil, fmt.Errorf("input %s has no %s suffix; specify an output path", opts.InputPath, SealedSuffix)
		}
		outputPath = strings.TrimSuffix(opts.InputPath, SealedSuffix)
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

	container, err := os.ReadFile(opts.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", sberrors.ErrFileNotFound, opts.InputPath)
		}
		return nil, fmt.Errorf("failed to read %s: %w", opts.InputPath, err)
	}

	plaintext, err := hybrid.Decrypt(kp.PrivateKey(), container)
	if err != nil {
		return nil, err
	}

	// #nosec G306 -- the recovered plaintext should be editable by the user.
	if err := utils.WriteFileAtomic(outputPath, plaintext, 0644); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("decrypt")
	entry.InputPath = opts.InputPath
	entry.OutputPath = outputPath
	audit.Log(entry)

	return &DecryptResult{
		InputPath:  opts.InputPath,
		OutputPath: outputPath,
	}, nil
}
