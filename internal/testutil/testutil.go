package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// TempTree is a temporary directory tree for testing
type TempTree struct {
	Path string
	T    *testing.T
}

// NewTempTree creates a new empty temporary directory
func NewTempTree(t *testing.T) *TempTree {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "vault-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	return &TempTree{
		Path: tmpDir,
		T:    t,
	}
}

// Cleanup removes the temporary tree
func (tr *TempTree) Cleanup() {
	tr.T.Helper()
	if err := os.RemoveAll(tr.Path); err != nil {
		tr.T.Errorf("failed to cleanup temp tree: %v", err)
	}
}

// CreateFile creates a file (and any missing parents) under the tree
func (tr *TempTree) CreateFile(name, content string) {
	tr.T.Helper()
	path := filepath.Join(tr.Path, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tr.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tr.T.Fatalf("failed to create file: %v", err)
	}
}

// CreateDir creates a directory (and any missing parents) under the tree
func (tr *TempTree) CreateDir(name string) {
	tr.T.Helper()
	if err := os.MkdirAll(filepath.Join(tr.Path, name), 0755); err != nil {
		tr.T.Fatalf("failed to create directory: %v", err)
	}
}

// CreateSymlink creates a symbolic link under the tree pointing at target
func (tr *TempTree) CreateSymlink(name, target string) {
	tr.T.Helper()
	path := filepath.Join(tr.Path, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tr.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.Symlink(target, path); err != nil {
		tr.T.Fatalf("failed to create symlink: %v", err)
	}
}

// Chmod changes the permission bits of a path under the tree
func (tr *TempTree) Chmod(name string, mode os.FileMode) {
	tr.T.Helper()
	if err := os.Chmod(filepath.Join(tr.Path, name), mode); err != nil {
		tr.T.Fatalf("failed to chmod: %v", err)
	}
}

// ReadFile returns the content of a file under the tree
func (tr *TempTree) ReadFile(name string) string {
	tr.T.Helper()
	data, err := os.ReadFile(filepath.Join(tr.Path, name))
	if err != nil {
		tr.T.Fatalf("failed to read file: %v", err)
	}
	return string(data)
}

// Readlink returns the target of a symbolic link under the tree
func (tr *TempTree) Readlink(name string) string {
	tr.T.Helper()
	target, err := os.Readlink(filepath.Join(tr.Path, name))
	if err != nil {
		tr.T.Fatalf("failed to read symlink: %v", err)
	}
	return target
}

// FileExists checks whether a path exists under the tree (without
// following symlinks)
func (tr *TempTree) FileExists(name string) bool {
	tr.T.Helper()
	_, err := os.Lstat(filepath.Join(tr.Path, name))
	return err == nil
}

// Mode returns the permission bits of a path under the tree
func (tr *TempTree) Mode(name string) os.FileMode {
	tr.T.Helper()
	info, err := os.Lstat(filepath.Join(tr.Path, name))
	if err != nil {
		tr.T.Fatalf("failed to stat: %v", err)
	}
	return info.Mode().Perm()
}

// Entries returns the sorted relative paths of every entry in the tree
func (tr *TempTree) Entries() []string {
	tr.T.Helper()

	var entries []string
	err := filepath.Walk(tr.Path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == tr.Path {
			return nil
		}
		rel, err := filepath.Rel(tr.Path, path)
		if err != nil {
			return err
		}
		entries = append(entries, rel)
		return nil
	})
	if err != nil {
		tr.T.Fatalf("failed to walk tree: %v", err)
	}

	sort.Strings(entries)
	return entries
}
