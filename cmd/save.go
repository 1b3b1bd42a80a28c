package cmd

import (
	"errors"
	"fmt"

	"github.com/pders01/vault/internal/copier"
	"github.com/pders01/vault/internal/store"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <source_path> <name>",
	Short: "Copy a directory tree into the vault",
	Long: `Copy the directory tree at <source_path> into the vault under <name>.

Saving never overwrites: if a snapshot of that name already exists the
command fails and the vault is left unchanged. Delete the snapshot
first to reclaim its name.`,
	Args: cobra.ExactArgs(2),
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	source, name := args[0], args[1]

	st, err := openStore()
	if err != nil {
		return err
	}
	if err := st.EnsureRoot(); err != nil {
		return err
	}

	target, err := st.SnapshotPath(name)
	if err != nil {
		return err
	}

	// Checked before any write so a rejected save leaves storage
	// untouched.
	if st.Exists(name) {
		return fmt.Errorf("%w: %s", store.ErrSnapshotExists, name)
	}

	stats, err := copier.CopyTree(source, target, false)
	if err != nil {
		if errors.Is(err, copier.ErrDestinationExists) {
			return fmt.Errorf("%w: %s", store.ErrSnapshotExists, name)
		}
		return err
	}

	journal(st, "SAVE", fmt.Sprintf("%q as %q", source, name))

	fmt.Printf("✓ Saved %s to vault as %q\n", source, name)
	reportStats(stats)

	return nil
}
