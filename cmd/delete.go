package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a stored snapshot",
	Long: `Remove the snapshot stored under <name>.

Deletion is immediate and irreversible; there is no confirmation
prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	st, err := openStore()
	if err != nil {
		return err
	}

	if err := st.Remove(name); err != nil {
		return err
	}

	journal(st, "DELETE", fmt.Sprintf("%q", name))

	fmt.Printf("✓ Deleted snapshot %q\n", name)

	return nil
}
