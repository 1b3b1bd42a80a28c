package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// journalFileName is the append-only access log kept inside the storage
// root. It is a regular file, so List (directories only) never reports
// it; SnapshotPath additionally reserves the name.
const journalFileName = "access.log"

// Journal appends one line recording a successful action.
func (s *Store) Journal(action, detail string) error {
	if err := s.EnsureRoot(); err != nil {
		return err
	}

	path := filepath.Join(s.Root, journalFileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s %s\n", time.Now().Format(time.RFC3339), action, detail)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}
	return nil
}

// JournalEntries returns the recorded journal lines, oldest first. A
// missing journal yields an empty slice.
func (s *Store) JournalEntries() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.Root, journalFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
