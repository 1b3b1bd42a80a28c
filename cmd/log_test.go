package cmd

import (
	"strings"
	"testing"

	"github.com/pders01/vault/internal/store"
	"github.com/pders01/vault/internal/testutil"
)

func TestLogEmptyJournal(t *testing.T) {
	storage := setupStorage(t)
	defer storage.Cleanup()

	if err := runLog(nil, []string{}); err != nil {
		t.Fatalf("log command failed: %v", err)
	}
}

func TestLogRecordsCommandHistory(t *testing.T) {
	storage := setupStorage(t)
	defer storage.Cleanup()

	src := testutil.NewTempTree(t)
	defer src.Cleanup()
	src.CreateFile("a.txt", "hi")

	if err := runSave(nil, []string{src.Path, "demo"}); err != nil {
		t.Fatalf("save command failed: %v", err)
	}
	if err := runDelete(nil, []string{"demo"}); err != nil {
		t.Fatalf("delete command failed: %v", err)
	}

	if err := runLog(nil, []string{}); err != nil {
		t.Fatalf("log command failed: %v", err)
	}

	entries, err := store.New(storage.Path).JournalEntries()
	if err != nil {
		t.Fatalf("failed to read journal: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 journal entries, got %d: %v", len(entries), entries)
	}
	if !strings.Contains(entries[0], "SAVE") {
		t.Errorf("first entry missing SAVE action: %q", entries[0])
	}
	if !strings.Contains(entries[1], "DELETE") {
		t.Errorf("second entry missing DELETE action: %q", entries[1])
	}
}
