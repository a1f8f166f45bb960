package models

import (
	"testing"
	"time"
)

func TestNewHabitDefaults(t *testing.T) {
	habit := NewHabit(HabitParams{Name: "  Meditate  "})

	if habit.ID == "" {
		t.Fatal("expected a generated id")
	}
	if habit.Name != "Meditate" {
		t.Errorf("expected trimmed name, got %q", habit.Name)
	}
	if habit.Type != HabitTypeBoolean {
		t.Errorf("expected default type boolean, got %s", habit.Type)
	}
	if habit.Category != CategoryOther {
		t.Errorf("expected default category OTHER, got %s", habit.Category)
	}
	if habit.Difficulty != DifficultyEasy {
		t.Errorf("expected default difficulty easy, got %s", habit.Difficulty)
	}
	if !habit.IsActive {
		t.Error("expected new habits to start active")
	}
	if habit.Goal != nil {
		t.Error("expected boolean habits to have no goal")
	}
	if habit.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestNewHabitUniqueIDs(t *testing.T) {
	a := NewHabit(HabitParams{Name: "a"})
	b := NewHabit(HabitParams{Name: "b"})
	if a.ID == b.ID {
		t.Errorf("expected distinct ids, got %s twice", a.ID)
	}
}

func TestDifficultyPoints(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		want       int
	}{
		{DifficultyEasy, 1},
		{DifficultyMedium, 2},
		{DifficultyHard, 3},
		{Difficulty("bogus"), 0},
	}
	for _, tc := range cases {
		if got := tc.difficulty.Points(); got != tc.want {
			t.Errorf("Points(%s) = %d, want %d", tc.difficulty, got, tc.want)
		}
	}
}

func TestHabitTypeRequiresGoal(t *testing.T) {
	if HabitTypeBoolean.RequiresGoal() {
		t.Error("boolean habits must not require a goal")
	}
	if !HabitTypeCounter.RequiresGoal() {
		t.Error("counter habits must require a goal")
	}
	if !HabitTypeTimer.RequiresGoal() {
		t.Error("timer habits must require a goal")
	}
}

func TestCategoriesAllValid(t *testing.T) {
	cats := Categories()
	if len(cats) != 8 {
		t.Fatalf("expected 8 categories, got %d", len(cats))
	}
	for _, c := range cats {
		if !c.Valid() {
			t.Errorf("category %s should be valid", c)
		}
		if c.Color() == "" {
			t.Errorf("category %s should have a display color", c)
		}
		if c.DisplayName() == "" {
			t.Errorf("category %s should have a display name", c)
		}
	}
	if Category("FOOD").Valid() {
		t.Error("unknown category should be invalid")
	}
}

func TestNewEntryDefaults(t *testing.T) {
	entry := NewEntry(EntryParams{HabitID: "h1"})

	if entry.ID == "" {
		t.Fatal("expected a generated id")
	}
	if entry.Date != time.Now().Format("2006-01-02") {
		t.Errorf("expected date to default to today, got %s", entry.Date)
	}
	if entry.Completed {
		t.Error("expected entries to default to incomplete")
	}
	if entry.CompletedAt != nil {
		t.Error("incomplete entries must not carry CompletedAt")
	}
}

func TestNewEntryCompleted(t *testing.T) {
	entry := NewEntry(EntryParams{HabitID: "h1", Date: "2026-08-30", Completed: true})

	if entry.Date != "2026-08-30" {
		t.Errorf("expected explicit date to stick, got %s", entry.Date)
	}
	if entry.CompletedAt == nil {
		t.Error("completed entries must carry CompletedAt")
	}
}
