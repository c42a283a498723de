package cmd

import (
	"errors"
	"os"

	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/utils"
	"github.com/sealbox/sealbox/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	decryptKey      string
	decryptKeyStdin bool
	decryptOut      string
	decryptForce    bool
)

func init() {
	decryptCmd.Flags().StringVarP(&decryptKey, "key", "k", "", "private key file")
	decryptCmd.Flags().BoolVar(&decryptKeyStdin, "key-stdin", false, "read the private key from stdin instead of a file")
	decryptCmd.Flags().StringVarP(&decryptOut, "out", "o", "", "output path (defaults to <file> without "+workflows.SealedSuffix+")")
	decryptCmd.Flags().BoolVarP(&decryptForce, "force", "f", false, "overwrite an existing output file")

	decryptCmd.MarkFlagsOneRequired("key", "key-stdin")
	decryptCmd.MarkFlagsMutuallyExclusive("key", "key-stdin")
}

// resetDecryptCommandState resets the decrypt command's global state for testing.
func resetDecryptCommandState() {
	decryptKey = ""
	decryptKeyStdin = false
	decryptOut = ""
	decryptForce = false
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <file>",
	Short: "Open a sealed file with your private key",
	Long: `Decrypts a sealed file and writes the recovered plaintext. The
private key can be read from a file with --key or piped on stdin with
--key-stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		var keyData []byte
		if decryptKeyStdin {
			Logger.Debugf("Reading private key from stdin")
			var err error
			keyData, err = utils.ReadStdin()
			if err != nil {
				printError("Failed to read private key from stdin", err)
				return nil
			}
		} else if fileInfo, err := os.Stat(decryptKey); err == nil {
			if fileInfo.Mode().Perm() != 0600 {
				Logger.WarnfAlways("Private key file has overly permissive permissions (%o), consider running 'chmod 600 %s'",
					fileInfo.Mode().Perm(), decryptKey)
			}
		}

		spinner, cleanup := startSpinner("Decrypting file...", verbose)
		defer cleanup()

		result, err := workflows.Decrypt(cmd.Context(), workflows.DecryptOptions{
			InputPath:      args[0],
			OutputPath:     decryptOut,
			KeyPath:        decryptKey,
			PrivateKeyData: keyData,
			Force:          decryptForce,
		})
		if err != nil {
			switch {
			case errors.Is(err, sberrors.ErrFileNotFound):
				spinner.FinalMSG = color.RedString("✗") + " File not found: " + err.Error()
			case errors.Is(err, sberrors.ErrKeyNotFound):
				spinner.FinalMSG = color.RedString("✗") + " Private key file not found"
			case errors.Is(err, sberrors.ErrMissingPrivateKey):
				spinner.FinalMSG = color.RedString("✗") + " That is a public key, and decryption needs the private key\n" +
					color.CyanString("→") + " Point " + color.YellowString("--key") + " at the matching private key file"
			case errors.Is(err, sberrors.ErrPassphraseRequired):
				spinner.FinalMSG = color.RedString("✗") + " The private key is passphrase protected\n" +
					color.CyanString("→") + " Decrypt it first, e.g. " + color.YellowString("ssh-keygen -p -N \"\" -f <key>")
			case errors.Is(err, sberrors.ErrKeyFormat):
				spinner.FinalMSG = color.RedString("✗") + " The key file is not a usable RSA private key\n" +
					color.RedString("Error: ") + err.Error()
			case errors.Is(err, sberrors.ErrMalformedContainer):
				spinner.FinalMSG = color.RedString("✗") + " The input is not a sealed file or has been truncated"
			case errors.Is(err, sberrors.ErrDecryptionFailed):
				spinner.FinalMSG = color.RedString("✗") + " Decryption failed\n" +
					color.CyanString("→") + " Check that this private key matches the one the file was sealed for"
			case errors.Is(err, sberrors.ErrOutputExists):
				spinner.FinalMSG = color.RedString("✗") + " Output file already exists\n" +
					color.CyanString("→") + " Run again with " + color.YellowString("--force") + " to overwrite it"
			default:
				return Logger.ErrorfAndReturn("Failed to decrypt file: %v", err)
			}
			return nil
		}

		Logger.Infof("Decrypt command completed successfully")
		finalMessage := color.GreenString("✓") + " File decrypted successfully!\n" +
			color.CyanString("→") + " Plaintext: " + color.YellowString(result.OutputPath)
		spinner.FinalMSG = finalMessage
		return nil
	},
}
