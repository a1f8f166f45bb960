package tracker

import (
	"errors"
	"testing"

	"github.com/tallytrack/tally/internal/models"
)

func TestParseImportRejectsMalformedJSON(t *testing.T) {
	_, err := ParseImport([]byte("{not json"))
	if !errors.Is(err, ErrImportFailed) {
		t.Fatalf("expected ErrImportFailed, got %v", err)
	}
}

func TestParseImportRequiresHabits(t *testing.T) {
	_, err := ParseImport([]byte(`{"entries": []}`))
	if !errors.Is(err, ErrImportFailed) {
		t.Fatalf("expected ErrImportFailed for missing habits, got %v", err)
	}
}

func TestParseImportAcceptsEmptyHabits(t *testing.T) {
	payload, err := ParseImport([]byte(`{"habits": []}`))
	if err != nil {
		t.Fatalf("empty habits array should parse: %v", err)
	}
	if len(payload.Habits) != 0 {
		t.Errorf("expected no habits, got %d", len(payload.Habits))
	}
}

func TestImportRegeneratesIDsAndRemaps(t *testing.T) {
	repo, _ := newTestRepo(t)
	existing := addHabit(t, repo, "Existing")

	payload := ImportPayload{
		Habits: []models.Habit{
			{ID: "old-1", Name: "Imported", Type: models.HabitTypeBoolean, Category: models.CategoryOther, Difficulty: models.DifficultyEasy, IsActive: true},
		},
		Entries: []models.Entry{
			{ID: "old-e1", HabitID: "old-1", Date: "2026-08-30", Completed: true},
		},
	}

	if err := repo.ImportData(payload); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	habits := repo.Habits()
	if len(habits) != 2 {
		t.Fatalf("expected 2 habits after import, got %d", len(habits))
	}

	var imported models.Habit
	for _, h := range habits {
		if h.Name == "Imported" {
			imported = h
		}
	}
	if imported.ID == "" || imported.ID == "old-1" {
		t.Errorf("imported habit must get a fresh id, got %q", imported.ID)
	}

	entries := repo.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after import, got %d", len(entries))
	}
	if entries[0].HabitID != imported.ID {
		t.Errorf("entry habit reference must be remapped to %s, got %s", imported.ID, entries[0].HabitID)
	}
	if entries[0].ID == "old-e1" {
		t.Error("imported entry must get a fresh id")
	}
	if existing.ID == imported.ID {
		t.Error("imported habit id must not collide with existing habit")
	}
}

func TestImportIsAppendNotReplace(t *testing.T) {
	repo, _ := newTestRepo(t)
	addHabit(t, repo, "Existing")

	payload := ImportPayload{Habits: []models.Habit{{ID: "x", Name: "New"}}}
	if err := repo.ImportData(payload); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if _, err := repo.GetHabitByName("Existing"); err != nil {
		t.Error("import must keep existing habits")
	}
	if _, err := repo.GetHabitByName("New"); err != nil {
		t.Error("import must add payload habits")
	}
}
