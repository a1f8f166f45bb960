package validation

import (
	"testing"

	"github.com/tallytrack/tally/internal/models"
	"github.com/tallytrack/tally/internal/storage"
)

func TestValidateHabitInput(t *testing.T) {
	goal := 8.0
	negative := -1.0

	cases := []struct {
		name    string
		params  models.HabitParams
		wantErr bool
	}{
		{"valid boolean", models.HabitParams{Name: "Meditate"}, false},
		{"valid counter", models.HabitParams{Name: "Water", Type: models.HabitTypeCounter, Goal: &goal}, false},
		{"empty name", models.HabitParams{Name: "   "}, true},
		{"unknown type", models.HabitParams{Name: "x", Type: "weekly"}, true},
		{"unknown category", models.HabitParams{Name: "x", Category: "FOOD"}, true},
		{"unknown difficulty", models.HabitParams{Name: "x", Difficulty: "extreme"}, true},
		{"counter without goal", models.HabitParams{Name: "x", Type: models.HabitTypeCounter}, true},
		{"timer without goal", models.HabitParams{Name: "x", Type: models.HabitTypeTimer}, true},
		{"negative goal", models.HabitParams{Name: "x", Type: models.HabitTypeCounter, Goal: &negative}, true},
		{"boolean with goal", models.HabitParams{Name: "x", Type: models.HabitTypeBoolean, Goal: &goal}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateHabitInput(tc.params)
			if tc.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func conflictTypes(result Result) map[ConflictType]int {
	out := make(map[ConflictType]int)
	for _, c := range result.Conflicts {
		out[c.Type]++
	}
	return out
}

func TestValidateSnapshotClean(t *testing.T) {
	snap := storage.NewSnapshot()
	habit := models.NewHabit(models.HabitParams{Name: "Read"})
	snap.Habits = []models.Habit{habit}
	snap.Entries = []models.Entry{
		models.NewEntry(models.EntryParams{HabitID: habit.ID, Date: "2026-08-30", Completed: true}),
	}

	result := New().ValidateSnapshot(snap)
	if result.HasConflicts() {
		t.Errorf("expected a clean snapshot, got:\n%s", result.FormatReport())
	}
}

func TestValidateSnapshotDetectsConflicts(t *testing.T) {
	goal := 5.0
	snap := storage.NewSnapshot()
	snap.Habits = []models.Habit{
		{ID: "h1", Name: "", Type: models.HabitTypeBoolean, Category: models.CategoryOther, Difficulty: models.DifficultyEasy, Goal: &goal},
		{ID: "h1", Name: "Dup", Type: "weekly", Category: "FOOD", Difficulty: "extreme"},
		{ID: "h2", Name: "Counter", Type: models.HabitTypeCounter, Category: models.CategoryHealth, Difficulty: models.DifficultyEasy},
	}
	snap.Entries = []models.Entry{
		{ID: "e1", HabitID: "h2", Date: "2026-08-30"},
		{ID: "e2", HabitID: "h2", Date: "2026-08-30"},
		{ID: "e3", HabitID: "ghost", Date: "not-a-date"},
	}

	result := New().ValidateSnapshot(snap)
	types := conflictTypes(result)

	expected := []ConflictType{
		ConflictEmptyName,
		ConflictUnexpectedGoal,
		ConflictDuplicateHabitID,
		ConflictUnknownType,
		ConflictUnknownCategory,
		ConflictUnknownLevel,
		ConflictMissingGoal,
		ConflictDuplicateEntry,
		ConflictOrphanedEntry,
		ConflictInvalidDate,
	}
	for _, want := range expected {
		if types[want] == 0 {
			t.Errorf("expected a %s conflict, report:\n%s", want, result.FormatReport())
		}
	}
}

func TestFormatReport(t *testing.T) {
	empty := Result{}
	if empty.FormatReport() != "No conflicts detected." {
		t.Errorf("unexpected empty report: %q", empty.FormatReport())
	}

	result := Result{Conflicts: []Conflict{{Type: ConflictEmptyName, Description: "habit x has an empty name"}}}
	report := result.FormatReport()
	if report == "" || report == "No conflicts detected." {
		t.Errorf("expected a conflict report, got %q", report)
	}
}
