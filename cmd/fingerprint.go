package cmd

import (
	"errors"
	"fmt"
	"os"

	sberrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/keyring"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <keyfile>",
	Short: "Print the fingerprint of a key",
	Long: `Prints the fingerprint of an RSA key. Both public and private key
files are accepted; the fingerprint is always derived from the public
half, so both halves of a keypair report the same value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting fingerprint command")

		data, err := os.ReadFile(args[0])
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println(color.RedString("✗") + " Key file not found: " + args[0])
				return nil
			}
			return Logger.ErrorfAndReturn("Failed to read key file: %v", err)
		}

		pub, err := publicKeyFromData(data)
		if err != nil {
			switch {
			case errors.Is(err, sberrors.ErrPassphraseRequired):
				fmt.Println(color.RedString("✗") + " The private key is passphrase protected")
			case errors.Is(err, sberrors.ErrKeyFormat):
				fmt.Println(color.RedString("✗") + " The file is not a usable RSA key")
			default:
				return Logger.ErrorfAndReturn("Failed to parse key file: %v", err)
			}
			return nil
		}

		fmt.Println(keyring.Fingerprint(pub.PublicKey()))
		return nil
	},
}

func publicKeyFromData(data []byte) (keyring.Provider, error) {
	if pub, err := keyring.LoadPublic(data); err == nil {
		return pub, nil
	}
	return keyring.LoadPrivate(data)
}
