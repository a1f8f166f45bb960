package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tallytrack/tally/internal/constants"
)

// Entry records a habit's status on one calendar day. For any
// (HabitID, Date) pair at most one entry exists in a store.
type Entry struct {
	ID          string     `json:"id"`
	HabitID     string     `json:"habitId"`
	Date        string     `json:"date"` // YYYY-MM-DD
	Completed   bool       `json:"completed"`
	Value       *float64   `json:"value"` // progress toward the habit goal, counter/timer only
	Notes       string     `json:"notes"`
	CompletedAt *time.Time `json:"completedAt"`
}

// EntryParams carries the caller-supplied fields for NewEntry.
type EntryParams struct {
	HabitID   string
	Date      string // defaults to today
	Completed bool
	Value     *float64
	Notes     string
}

// NewEntry constructs an entry with a fresh id. CompletedAt is set iff the
// entry starts out completed.
func NewEntry(p EntryParams) Entry {
	date := p.Date
	if date == "" {
		date = Today()
	}

	entry := Entry{
		ID:        uuid.New().String(),
		HabitID:   p.HabitID,
		Date:      date,
		Completed: p.Completed,
		Value:     p.Value,
		Notes:     strings.TrimSpace(p.Notes),
	}
	if p.Completed {
		now := time.Now().UTC()
		entry.CompletedAt = &now
	}
	return entry
}

// Today returns the current calendar date in YYYY-MM-DD form.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}
