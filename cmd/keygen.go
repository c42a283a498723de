package cmd

import (
	"errors"
	"fmt"

	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/utils"
	"github.com/sealbox/sealbox/internal/workflows"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	keygenName  string
	keygenDir   string
	keygenForce bool
)

func init() {
	keygenCmd.Flags().StringVarP(&keygenName, "name", "n", "", "key name (defaults to the configured key name)")
	keygenCmd.Flags().StringVar(&keygenDir, "dir", "", "directory to write the key files into")
	keygenCmd.Flags().BoolVarP(&keygenForce, "force", "f", false, "overwrite existing key files")
}

// resetKeygenCommandState resets the keygen command's global state for testing.
func resetKeygenCommandState() {
	keygenName = ""
	keygenDir = ""
	keygenForce = false
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new RSA keypair",
	Long: `Generates a fresh RSA-2048 keypair and writes both halves to disk as
PEM files. The private key is written as <name>.pem with owner-only
permissions and the public key as <name>.pub.pem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keygen command")

		fmt.Println()
		banner := figure.NewColorFigure("Sealbox", "alligator2", "green", true)
		banner.Print()
		fmt.Println()

		spinner, cleanup := startSpinner("Generating RSA keypair...", verbose)
		defer cleanup()

		result, err := workflows.Keygen(cmd.Context(), workflows.KeygenOptions{
			Name:  keygenName,
			Dir:   keygenDir,
			Force: keygenForce,
		})
		if err != nil {
			if errors.Is(err, sberrors.ErrOutputExists) {
				finalMessage := color.RedString("✗") + " A key with that name already exists\n" +
					color.CyanString("→") + " Run again with " + color.YellowString("--force") + " to overwrite it, or pick another " + color.YellowString("--name")
				spinner.FinalMSG = finalMessage
				return nil
			}
			return Logger.ErrorfAndReturn("Failed to generate keypair: %v", err)
		}

		Logger.Infof("Keygen command completed successfully")
		formattedKeyFiles := utils.FormatPaths([]string{result.PrivateKeyPath, result.PublicKeyPath})
		finalMessage := color.GreenString("✓") + " Keypair generated successfully!\n" +
			"The following files were created: " + formattedKeyFiles +
			color.CyanString("→") + " Fingerprint: " + result.Fingerprint + "\n" +
			color.CyanString("→") + " Share the public key with anyone who should encrypt files for you"
		spinner.FinalMSG = finalMessage
		return nil
	},
}
