package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tallytrack/tally/internal/constants"
	"github.com/tallytrack/tally/internal/models"
)

// Payload is the JSON export contract: the full collections plus the time
// of export.
type Payload struct {
	Habits     []models.Habit `json:"habits"`
	Entries    []models.Entry `json:"entries"`
	ExportDate time.Time      `json:"exportDate"`
}

// JSON serializes the collections as an indented export payload.
func JSON(habits []models.Habit, entries []models.Entry) ([]byte, error) {
	payload := Payload{
		Habits:     habits,
		Entries:    entries,
		ExportDate: time.Now().UTC(),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return data, nil
}

// CSV renders the entries as a spreadsheet view with one row per entry.
// Entries whose habit is gone are kept with an Unknown habit name.
func CSV(habits []models.Habit, entries []models.Entry) ([]byte, error) {
	habitByID := make(map[string]models.Habit, len(habits))
	for _, h := range habits {
		habitByID[h.ID] = h
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Habit Name", "Category", "Completed", "Notes"}); err != nil {
		return nil, err
	}

	for _, e := range entries {
		name := "Unknown"
		category := "Unknown"
		if h, ok := habitByID[e.HabitID]; ok {
			name = h.Name
			category = string(h.Category)
		}
		completed := "No"
		if e.Completed {
			completed = "Yes"
		}
		if err := w.Write([]string{e.Date, name, category, completed, e.Notes}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// JSONFileName returns the default export filename for a JSON backup.
func JSONFileName() string {
	return fmt.Sprintf("tally-backup-%s.json", time.Now().Format(constants.DateFormat))
}

// CSVFileName returns the default export filename for a CSV entry dump.
func CSVFileName() string {
	return fmt.Sprintf("tally-entries-%s.csv", time.Now().Format(constants.DateFormat))
}
