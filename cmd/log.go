package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sealbox/sealbox/internal/audit"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	logLimit   int
	logReverse bool
	logJSON    bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit log of sealbox operations on this machine.

Examples:
  sealbox log            # View full log
  sealbox log -n 10      # Last 10 entries
  sealbox log --reverse  # Most recent first
  sealbox log --json     # JSON output`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		entries, err := audit.ReadEntries()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read audit log: %v", err)
		}

		if logReverse {
			for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
				entries[i], entries[j] = entries[j], entries[i]
			}
		}
		if logLimit > 0 && len(entries) > logLimit {
			entries = entries[:logLimit]
		}

		if logJSON {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal audit log: %v", err)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(entries) == 0 {
			fmt.Println("No audit log entries found.")
			return nil
		}

		for _, entry := range entries {
			fmt.Printf("%s  %s  %s", entry.Timestamp, color.CyanString("%-8s", entry.Operation), entry.User)
			if entry.InputPath != "" {
				fmt.Printf("  %s", entry.InputPath)
			}
			if entry.KeyName != "" {
				fmt.Printf("  key=%s", entry.KeyName)
			}
			if entry.Fingerprint != "" {
				fmt.Printf("  fp=%s", entry.Fingerprint)
			}
			fmt.Println()
		}
		return nil
	},
}
