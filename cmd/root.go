package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pders01/vault/internal/config"
	"github.com/pders01/vault/internal/copier"
	"github.com/pders01/vault/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "vault",
	Short: "Save and restore directory snapshots in a local vault",
	Long: `vault copies a directory tree into a private storage location
(<home>/Vault Storage) under a name you choose, and later restores,
lists, or deletes that stored snapshot.

Snapshots are verbatim recursive copies: file contents, directory
structure, permission bits, and symbolic links are preserved. There is
no compression, no versioning, and no network.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/vault/config.toml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "vault")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("vault")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("storage.root", "")
	viper.SetDefault("journal.enabled", true)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// openStore resolves the storage root (config override, or the default
// under the user's home) and returns a Store for it.
func openStore() (*store.Store, error) {
	root := config.GetStorageRoot()
	if root == "" {
		var err error
		root, err = store.DefaultRoot()
		if err != nil {
			return nil, err
		}
	}
	return store.New(root), nil
}

// journal records a successful action in the access journal. A journal
// failure is a warning only: the command itself has already succeeded.
func journal(st *store.Store, action, detail string) {
	if !config.GetJournalEnabled() {
		return
	}
	if err := st.Journal(action, detail); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record journal entry: %v\n", err)
	}
}

// reportStats prints the copy counts and any skipped-entry warnings.
func reportStats(stats copier.Stats) {
	fmt.Printf("  Files:       %d\n", stats.FilesCopied)
	fmt.Printf("  Directories: %d\n", stats.DirsCreated)
	if stats.EntriesSkipped > 0 {
		fmt.Printf("  Skipped:     %d\n", stats.EntriesSkipped)
	}
	for _, w := range stats.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
}
