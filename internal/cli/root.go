package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tallytrack/tally/internal/analytics"
	"github.com/tallytrack/tally/internal/constants"
	"github.com/tallytrack/tally/internal/models"
	"github.com/tallytrack/tally/internal/storage"
	"github.com/tallytrack/tally/internal/streak"
	"github.com/tallytrack/tally/internal/tracker"
)

type Context struct {
	Store     storage.Provider
	Repo      *tracker.Repository
	Streaks   *streak.Engine
	Analytics *analytics.Engine
}

// load restores the repository from the persisted snapshot. Every command
// that touches data calls it first.
func (ctx *Context) load() error {
	return ctx.Repo.Load()
}

// resolveHabit accepts either a habit id or an exact habit name.
func (ctx *Context) resolveHabit(ref string) (models.Habit, error) {
	if h, err := ctx.Repo.GetHabit(ref); err == nil {
		return h, nil
	}
	h, err := ctx.Repo.GetHabitByName(ref)
	if err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			return models.Habit{}, fmt.Errorf("no habit named or identified by %q", ref)
		}
		return models.Habit{}, err
	}
	return h, nil
}

// parseDateFlag validates a --date flag value; empty means the selected date.
func parseDateFlag(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return s, nil
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// habitDetail renders the type/goal column for a habit row.
func habitDetail(h models.Habit) string {
	switch h.Type {
	case models.HabitTypeCounter:
		if h.Goal != nil {
			return fmt.Sprintf("counter, goal %g", *h.Goal)
		}
		return "counter"
	case models.HabitTypeTimer:
		if h.Goal != nil {
			return fmt.Sprintf("timer, goal %g min", *h.Goal)
		}
		return "timer"
	default:
		return "boolean"
	}
}

func progressBar(pct int, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
