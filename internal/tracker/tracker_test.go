package tracker

import (
	"errors"
	"testing"

	"github.com/tallytrack/tally/internal/models"
	"github.com/tallytrack/tally/internal/storage"
)

func newTestRepo(t *testing.T) (*Repository, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	repo := New(store)
	if err := repo.Load(); err != nil {
		t.Fatalf("failed to load repository: %v", err)
	}
	return repo, store
}

func addHabit(t *testing.T, repo *Repository, name string) models.Habit {
	t.Helper()
	habit, err := repo.AddHabit(models.HabitParams{Name: name})
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	return habit
}

func TestAddHabitPersists(t *testing.T) {
	repo, store := newTestRepo(t)

	habit := addHabit(t, repo, "Read")

	if store.Saves != 1 {
		t.Errorf("expected 1 save, got %d", store.Saves)
	}

	got, err := repo.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if got.Name != "Read" {
		t.Errorf("expected name Read, got %q", got.Name)
	}
}

func TestToggleCreatesCompletedEntry(t *testing.T) {
	repo, _ := newTestRepo(t)
	habit := addHabit(t, repo, "Read")

	entry, err := repo.ToggleHabitCompletion(habit.ID, "2026-08-30")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if !entry.Completed {
		t.Error("first toggle should create a completed entry")
	}
	if entry.CompletedAt == nil {
		t.Error("completed entry should carry CompletedAt")
	}
	if entry.Date != "2026-08-30" {
		t.Errorf("expected date 2026-08-30, got %s", entry.Date)
	}
}

func TestToggleIsInvolution(t *testing.T) {
	repo, _ := newTestRepo(t)
	habit := addHabit(t, repo, "Read")

	first, err := repo.ToggleHabitCompletion(habit.ID, "2026-08-30")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	second, err := repo.ToggleHabitCompletion(habit.ID, "2026-08-30")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}

	if second.Completed {
		t.Error("second toggle should flip back to incomplete")
	}
	if second.CompletedAt != nil {
		t.Error("incomplete entry must not carry CompletedAt")
	}
	if second.ID != first.ID {
		t.Error("toggling must reuse the existing entry, not create a second one")
	}

	if len(repo.Entries()) != 1 {
		t.Fatalf("expected exactly one entry for the pair, got %d", len(repo.Entries()))
	}
}

func TestTogglePreservesValueAndNotes(t *testing.T) {
	repo, _ := newTestRepo(t)
	habit := addHabit(t, repo, "Push-ups")

	value := 15.0
	notes := "felt strong"
	if _, err := repo.UpdateHabitEntry(habit.ID, "2026-08-30", EntryUpdate{Value: &value, Notes: &notes}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	entry, err := repo.ToggleHabitCompletion(habit.ID, "2026-08-30")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if entry.Value == nil || *entry.Value != 15 {
		t.Error("toggle must preserve the logged value")
	}
	if entry.Notes != "felt strong" {
		t.Error("toggle must preserve notes")
	}
}

func TestToggleUnknownHabit(t *testing.T) {
	repo, store := newTestRepo(t)

	_, err := repo.ToggleHabitCompletion("nope", "2026-08-30")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if store.Saves != 0 {
		t.Error("failed toggle must not persist")
	}
}

func TestToggleDefaultsToSelectedDate(t *testing.T) {
	repo, _ := newTestRepo(t)
	habit := addHabit(t, repo, "Read")

	if err := repo.SetSelectedDate("2026-08-15"); err != nil {
		t.Fatalf("failed to set selected date: %v", err)
	}

	entry, err := repo.ToggleHabitCompletion(habit.ID, "")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if entry.Date != "2026-08-15" {
		t.Errorf("expected selected date 2026-08-15, got %s", entry.Date)
	}
}

func TestUpdateHabitEntryUpsert(t *testing.T) {
	repo, _ := newTestRepo(t)
	habit := addHabit(t, repo, "Run")

	done := true
	value := 5.0
	created, err := repo.UpdateHabitEntry(habit.ID, "2026-08-30", EntryUpdate{Completed: &done, Value: &value})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if !created.Completed || created.CompletedAt == nil {
		t.Error("created entry should be completed with CompletedAt")
	}

	newValue := 8.0
	updated, err := repo.UpdateHabitEntry(habit.ID, "2026-08-30", EntryUpdate{Value: &newValue})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Error("upsert must merge into the existing entry")
	}
	if updated.Value == nil || *updated.Value != 8 {
		t.Error("upsert must replace the value")
	}
	if !updated.Completed {
		t.Error("fields not in the update must stay unchanged")
	}
	if len(repo.Entries()) != 1 {
		t.Fatalf("expected one entry per (habit, date), got %d", len(repo.Entries()))
	}
}

func TestUpdateHabitEntryCompletionTransitions(t *testing.T) {
	repo, _ := newTestRepo(t)
	habit := addHabit(t, repo, "Run")

	done := true
	if _, err := repo.UpdateHabitEntry(habit.ID, "2026-08-30", EntryUpdate{Completed: &done}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	undone := false
	entry, err := repo.UpdateHabitEntry(habit.ID, "2026-08-30", EntryUpdate{Completed: &undone})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if entry.Completed {
		t.Error("expected entry to be incomplete")
	}
	if entry.CompletedAt != nil {
		t.Error("CompletedAt must be cleared on the incomplete transition")
	}
}

func TestDeleteHabitCascades(t *testing.T) {
	repo, _ := newTestRepo(t)
	keep := addHabit(t, repo, "Keep")
	doomed := addHabit(t, repo, "Doomed")

	for _, date := range []string{"2026-08-28", "2026-08-29", "2026-08-30"} {
		if _, err := repo.ToggleHabitCompletion(doomed.ID, date); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
	}
	if _, err := repo.ToggleHabitCompletion(keep.ID, "2026-08-30"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if err := repo.DeleteHabit(doomed.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.GetHabit(doomed.ID); !errors.Is(err, ErrNotFound) {
		t.Error("deleted habit should be gone")
	}
	for _, e := range repo.Entries() {
		if e.HabitID == doomed.ID {
			t.Error("cascade delete must remove the habit's entries")
		}
	}
	if len(repo.Entries()) != 1 {
		t.Errorf("expected the surviving habit's entry to remain, got %d entries", len(repo.Entries()))
	}
}

func TestDeleteHabitNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	if err := repo.DeleteHabit("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateHabitPreservesIdentity(t *testing.T) {
	repo, _ := newTestRepo(t)
	habit := addHabit(t, repo, "Read")

	edited := habit
	edited.Name = "Read more"
	edited.ID = habit.ID
	if err := repo.UpdateHabit(edited); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := repo.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if got.Name != "Read more" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
	if !got.CreatedAt.Equal(habit.CreatedAt) {
		t.Error("update must not change CreatedAt")
	}
}

func TestToggleHabitActive(t *testing.T) {
	repo, _ := newTestRepo(t)
	habit := addHabit(t, repo, "Read")

	if err := repo.ToggleHabitActive(habit.ID); err != nil {
		t.Fatalf("toggle active failed: %v", err)
	}
	got, err := repo.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if got.IsActive {
		t.Error("expected habit to be paused")
	}
}

func TestPersistenceFailureKeepsCollectionsValid(t *testing.T) {
	repo, store := newTestRepo(t)
	habit := addHabit(t, repo, "Read")

	store.SaveErr = errors.New("disk full")

	_, err := repo.ToggleHabitCompletion(habit.ID, "2026-08-30")
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}

	// In-memory state stays usable after a failed save
	if _, err := repo.GetHabit(habit.ID); err != nil {
		t.Errorf("collections should remain readable: %v", err)
	}

	store.SaveErr = nil
	if _, err := repo.ToggleHabitCompletion(habit.ID, "2026-08-31"); err != nil {
		t.Errorf("mutations should work again once the store recovers: %v", err)
	}
}

func TestClearAllData(t *testing.T) {
	repo, _ := newTestRepo(t)
	habit := addHabit(t, repo, "Read")
	if _, err := repo.ToggleHabitCompletion(habit.ID, "2026-08-30"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if err := repo.ClearAllData(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	if len(repo.Habits()) != 0 || len(repo.Entries()) != 0 {
		t.Error("clear must empty both collections")
	}
	if repo.SelectedDate() != models.Today() {
		t.Errorf("clear must reset the selected date to today, got %s", repo.SelectedDate())
	}
}

func TestGetHabitByName(t *testing.T) {
	repo, _ := newTestRepo(t)
	addHabit(t, repo, "Read")

	if _, err := repo.GetHabitByName("Read"); err != nil {
		t.Errorf("expected to find habit by name: %v", err)
	}
	if _, err := repo.GetHabitByName("read"); !errors.Is(err, ErrNotFound) {
		t.Error("name lookup is exact, not case-insensitive")
	}
}
