package cmd

import (
	"errors"
	"fmt"

	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show a sealed file's structure without decrypting it",
	Long: `Parses a sealed file's framing and reports the wrapped key length,
the initialization vector, and the ciphertext size. No key material is
needed and no plaintext is revealed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting inspect command")

		result, err := workflows.Inspect(cmd.Context(), workflows.InspectOptions{
			InputPath: args[0],
		})
		if err != nil {
			switch {
			case errors.Is(err, sberrors.ErrFileNotFound):
				fmt.Println(color.RedString("✗") + " File not found: " + err.Error())
			case errors.Is(err, sberrors.ErrMalformedContainer):
				fmt.Println(color.RedString("✗") + " The input is not a sealed file or has been truncated")
			default:
				return Logger.ErrorfAndReturn("Failed to inspect file: %v", err)
			}
			return nil
		}

		fmt.Printf("%s %s\n", color.GreenString("✓"), result.InputPath)
		fmt.Printf("  Container size:     %d bytes\n", result.ContainerLen)
		fmt.Printf("  Wrapped key length: %d bytes (RSA-%d)\n", result.WrappedKeyLen, result.WrappedKeyLen*8)
		fmt.Printf("  IV:                 %s\n", result.IVHex)
		fmt.Printf("  Ciphertext size:    %d bytes\n", result.CiphertextLen)
		return nil
	},
}
