// Package store resolves snapshot locations under a single storage root
// and owns the metadata-level operations on them: existence checks,
// listing, and removal. The actual tree copying lives in
// internal/copier.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StorageDirName is the directory under the user's home that holds all
// snapshots.
const StorageDirName = "Vault Storage"

var (
	// ErrInvalidName rejects snapshot names that are empty or could
	// resolve outside the storage root.
	ErrInvalidName = errors.New("invalid snapshot name")
	// ErrStorageUnavailable means the storage root cannot be created or
	// read.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrSnapshotExists means a save would clobber an existing snapshot.
	ErrSnapshotExists = errors.New("snapshot already exists")
	// ErrSnapshotNotFound means the named snapshot is not in storage.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// Store resolves snapshot paths under a storage root. The root is
// passed in explicitly so tests can point it at a temporary directory.
type Store struct {
	Root string
}

func New(root string) *Store {
	return &Store{Root: root}
}

// DefaultRoot returns <home>/Vault Storage.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve home directory: %v", ErrStorageUnavailable, err)
	}
	return filepath.Join(home, StorageDirName), nil
}

// EnsureRoot creates the storage root (and any missing parents) if it
// does not exist yet.
func (s *Store) EnsureRoot() error {
	if err := os.MkdirAll(s.Root, 0755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, s.Root, err)
	}
	return nil
}

// SnapshotPath validates name and returns the path of that snapshot
// inside the storage root. A valid name is a single path component:
// non-empty, no separators, no parent references. That guarantees the
// result can never resolve outside the root.
func (s *Store) SnapshotPath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator) {
		return "", fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	if name == journalFileName {
		return "", fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	return filepath.Join(s.Root, name), nil
}

// Exists reports whether a snapshot of that name is present.
func (s *Store) Exists(name string) bool {
	path, err := s.SnapshotPath(name)
	if err != nil {
		return false
	}
	_, err = os.Lstat(path)
	return err == nil
}

// List returns the stored snapshot names in lexicographic order. Only
// directories count as snapshots; the journal file is never listed. A
// missing root yields an empty list, not an error.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, s.Root, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Remove deletes the named snapshot. Removal is immediate and
// irreversible.
func (s *Store) Remove(name string) error {
	path, err := s.SnapshotPath(name)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", name, err)
	}
	return nil
}
