package workflows

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/sealbox/sealbox/internal/audit"
	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/hybrid"
)

// InspectOptions configures the inspect workflow.
type InspectOptions struct {
	// InputPath is the container file to inspect.
	InputPath string
}

// InspectResult describes a container's framing. No key material is
// needed to produce it and no plaintext is exposed.
type InspectResult struct {
	InputPath     string
	ContainerLen  int
	WrappedKeyLen int
	IVHex         string
	CiphertextLen int
}

// Inspect parses a container's header without decrypting anything.
//
// Returns ErrMalformedContainer for exactly the inputs Decrypt would
// reject on framing grounds.
func Inspect(ctx context.Context, opts InspectOptions) (*InspectResult, error) {
	container, err := os.ReadFile(opts.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", sberrors.ErrFileNotFound, opts.InputPath)
		}
		return nil, fmt.Errorf("failed to read %s: %w", opts.InputPath, err)
	}

	header, err := hybrid.ParseHeader(container)
	if err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("inspect")
	entry.InputPath = opts.InputPath
	audit.Log(entry)

	return &InspectResult{
		InputPath:     opts.InputPath,
		ContainerLen:  len(container),
		WrappedKeyLen: header.WrappedKeyLen,
		IVHex:         hex.EncodeToString(header.IV[:]),
		CiphertextLen: header.CiphertextLen,
	}, nil
}
