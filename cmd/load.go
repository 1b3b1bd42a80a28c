package cmd

import (
	"fmt"

	"github.com/pders01/vault/internal/copier"
	"github.com/pders01/vault/internal/store"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <destination_path> <name>",
	Short: "Restore a snapshot into a directory",
	Long: `Copy the snapshot stored under <name> into <destination_path>.

Loading overwrites: existing content at the destination is removed and
replaced by the snapshot's tree. The stored snapshot itself is never
modified.`,
	Args: cobra.ExactArgs(2),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	destination, name := args[0], args[1]

	st, err := openStore()
	if err != nil {
		return err
	}

	source, err := st.SnapshotPath(name)
	if err != nil {
		return err
	}
	if !st.Exists(name) {
		return fmt.Errorf("%w: %s", store.ErrSnapshotNotFound, name)
	}

	stats, err := copier.CopyTree(source, destination, true)
	if err != nil {
		return err
	}

	journal(st, "LOAD", fmt.Sprintf("%q into %q", name, destination))

	fmt.Printf("✓ Loaded %q into %s\n", name, destination)
	reportStats(stats)

	return nil
}
