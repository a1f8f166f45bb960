package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/tallytrack/tally/internal/models"
	"github.com/tallytrack/tally/internal/storage"
)

var (
	// ErrNotFound is returned by mutations referencing a habit or entry that
	// does not exist. The choice to report rather than silently no-op is
	// applied consistently across all operations.
	ErrNotFound = errors.New("not found")

	// ErrPersistence wraps failures of the durable store. The in-memory
	// collections remain valid when it is returned.
	ErrPersistence = errors.New("persistence error")
)

// Repository owns the authoritative habit and entry collections. All
// mutations go through it; after every successful mutation the complete
// snapshot is handed to the injected storage provider.
//
// Repository is not safe for concurrent use. There is exactly one in-process
// writer; cross-process exclusion is handled by storage.Lock at the CLI
// boundary.
type Repository struct {
	store storage.Provider
	snap  *storage.Snapshot
}

func New(store storage.Provider) *Repository {
	return &Repository{
		store: store,
	}
}

// Load restores the collections from the last persisted snapshot.
func (r *Repository) Load() error {
	snap, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	r.snap = snap
	return nil
}

func (r *Repository) persist() error {
	if err := r.store.Save(r.snap); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// Habits returns a copy of the habit collection.
func (r *Repository) Habits() []models.Habit {
	out := make([]models.Habit, len(r.snap.Habits))
	copy(out, r.snap.Habits)
	return out
}

// Entries returns a copy of the entry collection.
func (r *Repository) Entries() []models.Entry {
	out := make([]models.Entry, len(r.snap.Entries))
	copy(out, r.snap.Entries)
	return out
}

// SelectedDate returns the ambient date used when callers omit one.
func (r *Repository) SelectedDate() string {
	return r.snap.SelectedDate
}

// Snapshot returns a copy of the full persisted state, for export and
// diagnostics.
func (r *Repository) Snapshot() storage.Snapshot {
	return storage.Snapshot{
		Version:      r.snap.Version,
		SelectedDate: r.snap.SelectedDate,
		Habits:       r.Habits(),
		Entries:      r.Entries(),
	}
}

// GetHabit returns the habit with the given id.
func (r *Repository) GetHabit(id string) (models.Habit, error) {
	for _, h := range r.snap.Habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %s: %w", id, ErrNotFound)
}

// GetHabitByName returns the first habit whose name matches exactly.
func (r *Repository) GetHabitByName(name string) (models.Habit, error) {
	for _, h := range r.snap.Habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q: %w", name, ErrNotFound)
}

// EntryFor returns the entry for the (habitID, date) pair, if one exists.
func (r *Repository) EntryFor(habitID, date string) (models.Entry, bool) {
	for _, e := range r.snap.Entries {
		if e.HabitID == habitID && e.Date == date {
			return e, true
		}
	}
	return models.Entry{}, false
}

// AddHabit constructs a habit via the entity factory and appends it to the
// collection. Input validation happens at the boundary, not here.
func (r *Repository) AddHabit(p models.HabitParams) (models.Habit, error) {
	habit := models.NewHabit(p)
	r.snap.Habits = append(r.snap.Habits, habit)
	if err := r.persist(); err != nil {
		return habit, err
	}
	return habit, nil
}

// UpdateHabit replaces the stored habit with the same id. The goal/type
// invariant is not re-validated; callers supply consistent data.
func (r *Repository) UpdateHabit(habit models.Habit) error {
	for i := range r.snap.Habits {
		if r.snap.Habits[i].ID == habit.ID {
			// id and creation time are immutable
			habit.ID = r.snap.Habits[i].ID
			habit.CreatedAt = r.snap.Habits[i].CreatedAt
			r.snap.Habits[i] = habit
			return r.persist()
		}
	}
	return fmt.Errorf("habit %s: %w", habit.ID, ErrNotFound)
}

// DeleteHabit removes the habit and every entry referencing it. Irreversible.
func (r *Repository) DeleteHabit(id string) error {
	found := false
	habits := r.snap.Habits[:0]
	for _, h := range r.snap.Habits {
		if h.ID == id {
			found = true
			continue
		}
		habits = append(habits, h)
	}
	if !found {
		return fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	r.snap.Habits = habits

	entries := r.snap.Entries[:0]
	for _, e := range r.snap.Entries {
		if e.HabitID == id {
			continue
		}
		entries = append(entries, e)
	}
	r.snap.Entries = entries

	return r.persist()
}

// ToggleHabitActive flips the habit's active flag.
func (r *Repository) ToggleHabitActive(id string) error {
	for i := range r.snap.Habits {
		if r.snap.Habits[i].ID == id {
			r.snap.Habits[i].IsActive = !r.snap.Habits[i].IsActive
			return r.persist()
		}
	}
	return fmt.Errorf("habit %s: %w", id, ErrNotFound)
}

// ToggleHabitCompletion is the core write path. If an entry exists for the
// (habitID, date) pair its completed flag is flipped, preserving value and
// notes; otherwise a completed entry is created. Calling it twice restores
// the original state. An empty date means the selected date.
func (r *Repository) ToggleHabitCompletion(habitID, date string) (models.Entry, error) {
	if _, err := r.GetHabit(habitID); err != nil {
		return models.Entry{}, err
	}
	if date == "" {
		date = r.snap.SelectedDate
	}

	for i := range r.snap.Entries {
		e := &r.snap.Entries[i]
		if e.HabitID == habitID && e.Date == date {
			e.Completed = !e.Completed
			if e.Completed {
				now := time.Now().UTC()
				e.CompletedAt = &now
			} else {
				e.CompletedAt = nil
			}
			if err := r.persist(); err != nil {
				return *e, err
			}
			return *e, nil
		}
	}

	entry := models.NewEntry(models.EntryParams{
		HabitID:   habitID,
		Date:      date,
		Completed: true,
	})
	r.snap.Entries = append(r.snap.Entries, entry)
	if err := r.persist(); err != nil {
		return entry, err
	}
	return entry, nil
}

// EntryUpdate carries partial entry fields; nil means leave unchanged.
type EntryUpdate struct {
	Completed *bool
	Value     *float64
	Notes     *string
}

// UpdateHabitEntry upserts the entry for the (habitID, date) pair: existing
// entries are merged in place, otherwise a new entry is created from the
// update. CompletedAt follows any completed transition.
func (r *Repository) UpdateHabitEntry(habitID, date string, upd EntryUpdate) (models.Entry, error) {
	if _, err := r.GetHabit(habitID); err != nil {
		return models.Entry{}, err
	}
	if date == "" {
		date = r.snap.SelectedDate
	}

	for i := range r.snap.Entries {
		e := &r.snap.Entries[i]
		if e.HabitID == habitID && e.Date == date {
			if upd.Completed != nil && *upd.Completed != e.Completed {
				e.Completed = *upd.Completed
				if e.Completed {
					now := time.Now().UTC()
					e.CompletedAt = &now
				} else {
					e.CompletedAt = nil
				}
			}
			if upd.Value != nil {
				e.Value = upd.Value
			}
			if upd.Notes != nil {
				e.Notes = *upd.Notes
			}
			if err := r.persist(); err != nil {
				return *e, err
			}
			return *e, nil
		}
	}

	params := models.EntryParams{
		HabitID: habitID,
		Date:    date,
		Value:   upd.Value,
	}
	if upd.Completed != nil {
		params.Completed = *upd.Completed
	}
	if upd.Notes != nil {
		params.Notes = *upd.Notes
	}
	entry := models.NewEntry(params)
	r.snap.Entries = append(r.snap.Entries, entry)
	if err := r.persist(); err != nil {
		return entry, err
	}
	return entry, nil
}

// SetSelectedDate changes the ambient default date.
func (r *Repository) SetSelectedDate(date string) error {
	r.snap.SelectedDate = date
	return r.persist()
}

// ClearAllData empties both collections and resets the selected date to
// today. Destructive and unconditional.
func (r *Repository) ClearAllData() error {
	r.snap = storage.NewSnapshot()
	return r.persist()
}
