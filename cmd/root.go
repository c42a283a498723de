package cmd

import (
	logger "github.com/sealbox/sealbox/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "sealbox",
		Short: "Encrypt files for a recipient using their RSA public key",
		Long: `Sealbox seals files so that only the holder of the matching RSA
private key can open them. A fresh symmetric key protects each file and
is wrapped under the recipient's public key, so the sealed file is the
only artifact you need to share.

Run 'sealbox help <command>' for more details on a specific command.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing sealbox with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(keygenCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(inspectCmd)
	RootCmd.AddCommand(fingerprintCmd)
	RootCmd.AddCommand(logCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetKeygenCommandState()
	resetEncryptCommandState()
	resetDecryptCommandState()
	resetLogCommandState()
	resetCobraFlagState()
}

// resetCobraFlagState resets the flag state for all commands to prevent test pollution.
func resetCobraFlagState() {
	RootCmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range RootCmd.Commands() {
		sub.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
