// Package copier implements the recursive directory copy used for both
// saving and restoring snapshots.
package copier

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	// ErrSourceNotFound means the copy source is missing or not a
	// directory.
	ErrSourceNotFound = errors.New("source not found")
	// ErrDestinationExists means the destination is already present and
	// overwriting was not requested.
	ErrDestinationExists = errors.New("destination already exists")
)

// Stats reports what a successful copy did.
type Stats struct {
	FilesCopied    int
	DirsCreated    int
	EntriesSkipped int
	// Warnings describes entries skipped because their kind is not
	// copyable (devices, sockets, ...). Never fatal.
	Warnings []string
}

// CopyTree copies the directory tree at src to dst.
//
// src must be an existing directory. If dst already exists and
// overwrite is false, CopyTree fails before writing anything; with
// overwrite true the existing dst is removed first. Traversal is
// depth-first in lexicographic entry order, so repeated copies of an
// unchanged tree are reproducible. Regular files are copied byte for
// byte with their permission bits, symbolic links are recreated with
// the same target string (never followed), and other entry kinds are
// skipped with a warning. The first fatal I/O error aborts the copy
// with the offending path attached; a partially written dst is left in
// place for the caller to clean up.
func CopyTree(src, dst string, overwrite bool) (Stats, error) {
	var stats Stats

	info, err := os.Lstat(src)
	if err != nil {
		return stats, fmt.Errorf("%w: %s", ErrSourceNotFound, src)
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("%w: %s is not a directory", ErrSourceNotFound, src)
	}

	if _, err := os.Lstat(dst); err == nil {
		if !overwrite {
			return stats, fmt.Errorf("%w: %s", ErrDestinationExists, dst)
		}
		if err := os.RemoveAll(dst); err != nil {
			return stats, fmt.Errorf("failed to remove %s: %w", dst, err)
		}
	}

	if err := copyDir(src, dst, info.Mode().Perm(), &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

func copyDir(src, dst string, perm os.FileMode, stats *Stats) error {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dst, err)
	}
	stats.DirsCreated++

	// os.ReadDir sorts by name, which keeps traversal deterministic.
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", srcPath, err)
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			if err := copySymlink(srcPath, dstPath); err != nil {
				return err
			}
			stats.FilesCopied++
		case info.IsDir():
			if err := copyDir(srcPath, dstPath, info.Mode().Perm(), stats); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if err := copyFile(srcPath, dstPath, info.Mode().Perm()); err != nil {
				return err
			}
			stats.FilesCopied++
		default:
			stats.EntriesSkipped++
			stats.Warnings = append(stats.Warnings,
				fmt.Sprintf("skipped %s (%s)", srcPath, entryKind(info.Mode())))
		}
	}

	// Apply the source mode last so a read-only directory does not
	// block writing its own children. Best effort.
	_ = os.Chmod(dst, perm)
	return nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}

	// O_CREATE applies the umask; chmod restores the exact source bits.
	// Best effort.
	_ = os.Chmod(dst, perm)
	return nil
}

// copySymlink recreates the link itself rather than following it. That
// avoids infinite recursion on self-referential links and never
// duplicates data the link points to outside the tree.
func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf("failed to read link %s: %w", src, err)
	}
	if err := os.Symlink(target, dst); err != nil {
		return fmt.Errorf("failed to create link %s: %w", dst, err)
	}
	return nil
}

func entryKind(mode os.FileMode) string {
	switch {
	case mode&os.ModeDevice != 0:
		return "device"
	case mode&os.ModeNamedPipe != 0:
		return "named pipe"
	case mode&os.ModeSocket != 0:
		return "socket"
	default:
		return "unsupported entry"
	}
}
