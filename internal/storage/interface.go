package storage

import (
	"github.com/tallytrack/tally/internal/constants"
	"github.com/tallytrack/tally/internal/models"
)

// Snapshot is the unit of persistence: the complete state of both
// collections plus the ambient selected date. Persistence is always
// whole-snapshot; there are no incremental writes.
type Snapshot struct {
	Version      int            `json:"version"`
	SelectedDate string         `json:"selectedDate"`
	Habits       []models.Habit `json:"habits"`
	Entries      []models.Entry `json:"entries"`
}

// NewSnapshot returns an empty snapshot at the current schema version with
// the selected date set to today.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:      constants.SnapshotVersion,
		SelectedDate: models.Today(),
		Habits:       []models.Habit{},
		Entries:      []models.Entry{},
	}
}

// Provider is the persistence port injected into the repository. A provider
// reads and writes complete snapshots; it never interprets their contents.
type Provider interface {
	// Lifecycle
	Init() error
	Load() (*Snapshot, error)
	Save(*Snapshot) error
	Close() error

	// Utils
	GetConfigPath() string
}
