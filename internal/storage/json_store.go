package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tallytrack/tally/internal/models"
)

// JSONStore persists the snapshot as a single JSON document on disk.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(NewSnapshot())
}

func (s *JSONStore) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("storage not initialized, run 'tally init' first")
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	snap := &Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if snap.Habits == nil {
		snap.Habits = []models.Habit{}
	}
	if snap.Entries == nil {
		snap.Entries = []models.Entry{}
	}
	if snap.SelectedDate == "" {
		snap.SelectedDate = models.Today()
	}

	return snap, nil
}

func (s *JSONStore) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple tally processes that share the same storage path at the
//     same time is not supported; the CLI guards against it with a writer lock.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
