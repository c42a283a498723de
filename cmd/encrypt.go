package cmd

import (
	"errors"

	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	encryptKey    string
	encryptOut    string
	encryptForce  bool
	encryptDryRun bool
)

func init() {
	encryptCmd.Flags().StringVarP(&encryptKey, "key", "k", "", "recipient's public key file (required)")
	encryptCmd.Flags().StringVarP(&encryptOut, "out", "o", "", "output path (defaults to <file>"+workflows.SealedSuffix+")")
	encryptCmd.Flags().BoolVarP(&encryptForce, "force", "f", false, "overwrite an existing output file")
	encryptCmd.Flags().BoolVar(&encryptDryRun, "dry-run", false, "show what would be written without writing it")

	if err := encryptCmd.MarkFlagRequired("key"); err != nil {
		printError("Failed to mark --key flag as required", err)
	}
}

// resetEncryptCommandState resets the encrypt command's global state for testing.
func resetEncryptCommandState() {
	encryptKey = ""
	encryptOut = ""
	encryptForce = false
	encryptDryRun = false
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <file>",
	Short: "Seal a file under a recipient's public key",
	Long: `Encrypts a file so that only the holder of the matching private key
can recover it. A private key file is also accepted for --key, in which
case its public half is used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Encrypting file...", verbose)
		defer cleanup()

		result, err := workflows.Encrypt(cmd.Context(), workflows.EncryptOptions{
			InputPath:  args[0],
			OutputPath: encryptOut,
			KeyPath:    encryptKey,
			Force:      encryptForce,
			DryRun:     encryptDryRun,
		})
		if err != nil {
			switch {
			case errors.Is(err, sberrors.ErrFileNotFound):
				spinner.FinalMSG = color.RedString("✗") + " File not found: " + err.Error()
			case errors.Is(err, sberrors.ErrKeyNotFound):
				spinner.FinalMSG = color.RedString("✗") + " Key file not found\n" +
					color.CyanString("→") + " Run " + color.YellowString("sealbox keygen") + " to create a keypair"
			case errors.Is(err, sberrors.ErrKeyFormat):
				spinner.FinalMSG = color.RedString("✗") + " The key file is not a usable RSA key\n" +
					color.RedString("Error: ") + err.Error()
			case errors.Is(err, sberrors.ErrOutputExists):
				spinner.FinalMSG = color.RedString("✗") + " Output file already exists\n" +
					color.CyanString("→") + " Run again with " + color.YellowString("--force") + " to overwrite it"
			default:
				return Logger.ErrorfAndReturn("Failed to encrypt file: %v", err)
			}
			return nil
		}

		if result.DryRun {
			spinner.FinalMSG = color.CyanString("→") + " Would write " + color.YellowString(result.OutputPath) +
				" using key " + result.Fingerprint
			return nil
		}

		Logger.Infof("Encrypt command completed successfully")
		finalMessage := color.GreenString("✓") + " File encrypted successfully!\n" +
			color.CyanString("→") + " Sealed file: " + color.YellowString(result.OutputPath) + "\n" +
			color.CyanString("→") + " Recipient key fingerprint: " + result.Fingerprint
		spinner.FinalMSG = finalMessage
		return nil
	},
}
