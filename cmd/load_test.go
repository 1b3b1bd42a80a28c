package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pders01/vault/internal/store"
	"github.com/pders01/vault/internal/testutil"
)

func TestLoadRestoresSnapshot(t *testing.T) {
	storage := setupStorage(t)
	defer storage.Cleanup()

	src := testutil.NewTempTree(t)
	defer src.Cleanup()
	src.CreateFile("a.txt", "hi")
	src.CreateFile("sub/b.txt", "bye")
	src.CreateSymlink("link", "a.txt")

	if err := runSave(nil, []string{src.Path, "demo"}); err != nil {
		t.Fatalf("save command failed: %v", err)
	}

	dest := testutil.NewTempTree(t)
	defer dest.Cleanup()
	target := filepath.Join(dest.Path, "restored")

	if err := runLoad(nil, []string{target, "demo"}); err != nil {
		t.Fatalf("load command failed: %v", err)
	}

	if got := dest.ReadFile("restored/a.txt"); got != "hi" {
		t.Errorf("expected a.txt content 'hi', got %q", got)
	}
	if got := dest.ReadFile("restored/sub/b.txt"); got != "bye" {
		t.Errorf("expected sub/b.txt content 'bye', got %q", got)
	}
	if got := dest.Readlink("restored/link"); got != "a.txt" {
		t.Errorf("expected link target 'a.txt', got %q", got)
	}
}

func TestLoadOverwritesDestination(t *testing.T) {
	storage := setupStorage(t)
	defer storage.Cleanup()

	src := testutil.NewTempTree(t)
	defer src.Cleanup()
	src.CreateFile("a.txt", "stored")

	if err := runSave(nil, []string{src.Path, "demo"}); err != nil {
		t.Fatalf("save command failed: %v", err)
	}

	dest := testutil.NewTempTree(t)
	defer dest.Cleanup()
	dest.CreateFile("target/old.txt", "stale")

	if err := runLoad(nil, []string{filepath.Join(dest.Path, "target"), "demo"}); err != nil {
		t.Fatalf("load command failed: %v", err)
	}

	if dest.FileExists("target/old.txt") {
		t.Error("prior destination content survived load")
	}
	if got := dest.ReadFile("target/a.txt"); got != "stored" {
		t.Errorf("expected a.txt content 'stored', got %q", got)
	}
}

func TestLoadLeavesSnapshotIntact(t *testing.T) {
	storage := setupStorage(t)
	defer storage.Cleanup()

	src := testutil.NewTempTree(t)
	defer src.Cleanup()
	src.CreateFile("a.txt", "stored")

	if err := runSave(nil, []string{src.Path, "demo"}); err != nil {
		t.Fatalf("save command failed: %v", err)
	}

	dest := testutil.NewTempTree(t)
	defer dest.Cleanup()

	if err := runLoad(nil, []string{filepath.Join(dest.Path, "out"), "demo"}); err != nil {
		t.Fatalf("load command failed: %v", err)
	}

	if got := storage.ReadFile("demo/a.txt"); got != "stored" {
		t.Errorf("stored snapshot modified by load: %q", got)
	}
}

func TestLoadMissingSnapshot(t *testing.T) {
	storage := setupStorage(t)
	defer storage.Cleanup()

	dest := testutil.NewTempTree(t)
	defer dest.Cleanup()

	err := runLoad(nil, []string{dest.Path, "absent"})
	if !errors.Is(err, store.ErrSnapshotNotFound) {
		t.Errorf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestLoadInvalidName(t *testing.T) {
	storage := setupStorage(t)
	defer storage.Cleanup()

	dest := testutil.NewTempTree(t)
	defer dest.Cleanup()

	err := runLoad(nil, []string{dest.Path, "../escape"})
	if !errors.Is(err, store.ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}
