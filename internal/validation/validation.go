package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/tallytrack/tally/internal/constants"
	"github.com/tallytrack/tally/internal/models"
	"github.com/tallytrack/tally/internal/storage"
)

// ConflictType classifies a detected data conflict
type ConflictType string

const (
	ConflictEmptyName        ConflictType = "empty_name"
	ConflictMissingGoal      ConflictType = "missing_goal"
	ConflictUnexpectedGoal   ConflictType = "unexpected_goal"
	ConflictUnknownType      ConflictType = "unknown_type"
	ConflictUnknownCategory  ConflictType = "unknown_category"
	ConflictUnknownLevel     ConflictType = "unknown_difficulty"
	ConflictDuplicateEntry   ConflictType = "duplicate_entry"
	ConflictOrphanedEntry    ConflictType = "orphaned_entry"
	ConflictInvalidDate      ConflictType = "invalid_date"
	ConflictDuplicateHabitID ConflictType = "duplicate_habit_id"
)

// Conflict represents a detected problem in a snapshot
type Conflict struct {
	Type        ConflictType
	Description string
	IDs         []string // habit/entry ids involved
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// ValidateHabitInput checks caller-supplied habit fields before they reach
// the repository: non-empty name, known enums, and the goal/type invariant
// (a goal is required for counter and timer habits and forbidden for
// boolean ones).
func ValidateHabitInput(p models.HabitParams) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if p.Type != "" && !p.Type.Valid() {
		return fmt.Errorf("unknown habit type %q", p.Type)
	}
	if p.Category != "" && !p.Category.Valid() {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	if p.Difficulty != "" && !p.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", p.Difficulty)
	}
	if p.Type.RequiresGoal() {
		if p.Goal == nil {
			return fmt.Errorf("%s habits require a goal", p.Type)
		}
		if *p.Goal <= 0 {
			return fmt.Errorf("goal must be positive, got %v", *p.Goal)
		}
	} else if p.Goal != nil {
		return fmt.Errorf("boolean habits cannot have a goal")
	}
	return nil
}

// Validator checks snapshots for conflicts
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateSnapshot checks a full snapshot for invariant violations:
// duplicate (habitId, date) pairs, entries referencing missing habits,
// malformed dates, duplicate ids, and goal/type mismatches.
func (v *Validator) ValidateSnapshot(snap *storage.Snapshot) Result {
	result := Result{Conflicts: []Conflict{}}

	habitIDs := make(map[string]bool, len(snap.Habits))
	for _, h := range snap.Habits {
		if habitIDs[h.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitID,
				Description: fmt.Sprintf("duplicate habit id %s", h.ID),
				IDs:         []string{h.ID},
			})
		}
		habitIDs[h.ID] = true

		if strings.TrimSpace(h.Name) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyName,
				Description: fmt.Sprintf("habit %s has an empty name", h.ID),
				IDs:         []string{h.ID},
			})
		}
		if !h.Type.Valid() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownType,
				Description: fmt.Sprintf("habit %q has unknown type %q", h.Name, h.Type),
				IDs:         []string{h.ID},
			})
		}
		if !h.Category.Valid() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownCategory,
				Description: fmt.Sprintf("habit %q has unknown category %q", h.Name, h.Category),
				IDs:         []string{h.ID},
			})
		}
		if !h.Difficulty.Valid() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownLevel,
				Description: fmt.Sprintf("habit %q has unknown difficulty %q", h.Name, h.Difficulty),
				IDs:         []string{h.ID},
			})
		}
		if h.Type.RequiresGoal() && h.Goal == nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingGoal,
				Description: fmt.Sprintf("%s habit %q is missing a goal", h.Type, h.Name),
				IDs:         []string{h.ID},
			})
		}
		if h.Type == models.HabitTypeBoolean && h.Goal != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnexpectedGoal,
				Description: fmt.Sprintf("boolean habit %q has a goal", h.Name),
				IDs:         []string{h.ID},
			})
		}
	}

	seenPairs := make(map[string]string, len(snap.Entries))
	for _, e := range snap.Entries {
		if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("entry %s has invalid date %q", e.ID, e.Date),
				IDs:         []string{e.ID},
			})
		}
		if !habitIDs[e.HabitID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOrphanedEntry,
				Description: fmt.Sprintf("entry %s references missing habit %s", e.ID, e.HabitID),
				IDs:         []string{e.ID, e.HabitID},
			})
		}

		pair := e.HabitID + "|" + e.Date
		if otherID, dup := seenPairs[pair]; dup {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateEntry,
				Description: fmt.Sprintf("entries %s and %s share habit %s on %s", otherID, e.ID, e.HabitID, e.Date),
				IDs:         []string{otherID, e.ID},
			})
		}
		seenPairs[pair] = e.ID
	}

	return result
}
