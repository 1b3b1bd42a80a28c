package config

import "github.com/spf13/viper"

// GetStorageRoot returns the configured storage root, or "" when the
// default under the user's home should be used.
func GetStorageRoot() string {
	return viper.GetString("storage.root")
}

// GetJournalEnabled reports whether successful commands are recorded in
// the access journal inside the storage root.
func GetJournalEnabled() bool {
	return viper.GetBool("journal.enabled")
}
