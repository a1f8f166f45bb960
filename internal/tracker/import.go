package tracker

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tallytrack/tally/internal/models"
)

// ErrImportFailed is returned for malformed import payloads. No partial
// import ever occurs: either the whole payload is appended or nothing is.
var ErrImportFailed = errors.New("import failed")

// ImportPayload is the accepted import contract. Habits is required;
// entries are optional.
type ImportPayload struct {
	Habits  []models.Habit `json:"habits"`
	Entries []models.Entry `json:"entries"`
}

// ParseImport decodes an import payload. A payload that is not valid JSON
// or is missing the habits array fails with ErrImportFailed.
func ParseImport(data []byte) (ImportPayload, error) {
	var payload ImportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ImportPayload{}, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}
	if payload.Habits == nil {
		return ImportPayload{}, fmt.Errorf("%w: missing habits array", ErrImportFailed)
	}
	return payload, nil
}

// ImportData appends the payload's habits and entries onto the existing
// collections. Imported records get fresh ids, with entry habit references
// remapped, so an import can never collide with existing ids.
func (r *Repository) ImportData(payload ImportPayload) error {
	if payload.Habits == nil {
		return fmt.Errorf("%w: missing habits array", ErrImportFailed)
	}

	idMap := make(map[string]string, len(payload.Habits))

	habits := make([]models.Habit, 0, len(payload.Habits))
	for _, h := range payload.Habits {
		oldID := h.ID
		h.ID = uuid.New().String()
		if oldID != "" {
			idMap[oldID] = h.ID
		}
		habits = append(habits, h)
	}

	entries := make([]models.Entry, 0, len(payload.Entries))
	for _, e := range payload.Entries {
		e.ID = uuid.New().String()
		if mapped, ok := idMap[e.HabitID]; ok {
			e.HabitID = mapped
		}
		entries = append(entries, e)
	}

	r.snap.Habits = append(r.snap.Habits, habits...)
	r.snap.Entries = append(r.snap.Entries, entries...)

	return r.persist()
}
