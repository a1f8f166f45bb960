package streak

import (
	"testing"
	"time"

	"github.com/tallytrack/tally/internal/constants"
	"github.com/tallytrack/tally/internal/models"
)

var testDay = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

// completedOn builds a completed entry for the given day offset back from
// testDay.
func completedOn(habitID string, daysAgo int) models.Entry {
	return models.Entry{
		ID:        "e",
		HabitID:   habitID,
		Date:      testDay.AddDate(0, 0, -daysAgo).Format(constants.DateFormat),
		Completed: true,
	}
}

func TestNoEntries(t *testing.T) {
	engine := New()
	result := engine.ForHabit("h1", nil, testDay)
	if result.Current != 0 || result.Longest != 0 {
		t.Errorf("expected zero streaks, got %+v", result)
	}
}

func TestStreakEndingToday(t *testing.T) {
	engine := New()
	entries := []models.Entry{
		completedOn("h1", 0),
		completedOn("h1", 1),
		completedOn("h1", 2),
	}

	result := engine.ForHabit("h1", entries, testDay)
	if result.Current != 3 {
		t.Errorf("expected current streak 3, got %d", result.Current)
	}
	if result.Longest != 3 {
		t.Errorf("expected longest streak 3, got %d", result.Longest)
	}
}

func TestIncompleteTodayDoesNotBreakStreak(t *testing.T) {
	engine := New()
	entries := []models.Entry{
		completedOn("h1", 1),
		completedOn("h1", 2),
		completedOn("h1", 3),
	}

	result := engine.ForHabit("h1", entries, testDay)
	if result.Current != 3 {
		t.Errorf("an open today must not break the streak: got current %d, want 3", result.Current)
	}
}

func TestGapBreaksCurrentStreak(t *testing.T) {
	engine := New()
	entries := []models.Entry{
		completedOn("h1", 2),
		completedOn("h1", 3),
		completedOn("h1", 4),
	}

	result := engine.ForHabit("h1", entries, testDay)
	if result.Current != 0 {
		t.Errorf("a day-old gap ends the current streak: got %d, want 0", result.Current)
	}
	if result.Longest != 3 {
		t.Errorf("expected longest streak 3, got %d", result.Longest)
	}
}

func TestLongestSurvivesRemovedDay(t *testing.T) {
	engine := New()
	entries := []models.Entry{
		completedOn("h1", 0),
		// yesterday missing
		completedOn("h1", 2),
		completedOn("h1", 3),
		completedOn("h1", 4),
	}

	result := engine.ForHabit("h1", entries, testDay)
	if result.Current != 1 {
		t.Errorf("expected current streak 1, got %d", result.Current)
	}
	if result.Longest != 3 {
		t.Errorf("expected longest streak 3 from the older run, got %d", result.Longest)
	}
}

func TestLongestAtLeastCurrent(t *testing.T) {
	engine := New()
	entries := []models.Entry{
		completedOn("h1", 0),
		completedOn("h1", 1),
		completedOn("h1", 2),
		completedOn("h1", 3),
		completedOn("h1", 4),
		// gap
		completedOn("h1", 6),
		completedOn("h1", 7),
	}

	result := engine.ForHabit("h1", entries, testDay)
	if result.Current != 5 {
		t.Errorf("expected current streak 5, got %d", result.Current)
	}
	if result.Longest < result.Current {
		t.Errorf("longest (%d) must never be below current (%d)", result.Longest, result.Current)
	}
}

func TestIncompleteEntriesDoNotCount(t *testing.T) {
	engine := New()
	entries := []models.Entry{
		{HabitID: "h1", Date: testDay.Format(constants.DateFormat), Completed: false},
		completedOn("h1", 1),
	}

	result := engine.ForHabit("h1", entries, testDay)
	if result.Current != 1 {
		t.Errorf("incomplete today counts as open, not done: got %d, want 1", result.Current)
	}
}

func TestOtherHabitsIgnored(t *testing.T) {
	engine := New()
	entries := []models.Entry{
		completedOn("other", 0),
		completedOn("other", 1),
		completedOn("h1", 0),
	}

	result := engine.ForHabit("h1", entries, testDay)
	if result.Current != 1 || result.Longest != 1 {
		t.Errorf("expected streaks of 1 for h1 only, got %+v", result)
	}
}
