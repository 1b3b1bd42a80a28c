package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the vault access journal",
	Long: `Print the access journal: one line per past save, load, or delete,
oldest first.`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	entries, err := st.JournalEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No journal entries")
		return nil
	}

	for _, line := range entries {
		fmt.Println(line)
	}

	return nil
}
