package cli

import (
	"fmt"

	"github.com/tallytrack/tally/internal/tracker"
)

type DoneCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Date  string `short:"d" help:"Day to toggle (YYYY-MM-DD, default: selected date)."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}

	habit, err := ctx.resolveHabit(c.Habit)
	if err != nil {
		return err
	}

	entry, err := ctx.Repo.ToggleHabitCompletion(habit.ID, date)
	if err != nil {
		return err
	}

	if entry.Completed {
		fmt.Printf("✓ %s completed on %s\n", habit.Name, entry.Date)
	} else {
		fmt.Printf("○ %s marked incomplete on %s\n", habit.Name, entry.Date)
	}
	return nil
}

type SetCmd struct {
	Habit     string   `arg:"" help:"Habit name or id."`
	Value     *float64 `short:"v" help:"Logged value (count or minutes)."`
	Notes     *string  `short:"n" help:"Notes for the day."`
	Completed *bool    `short:"c" help:"Completion state."`
	Date      string   `short:"d" help:"Day to update (YYYY-MM-DD, default: selected date)."`
}

func (c *SetCmd) Run(ctx *Context) error {
	if c.Value == nil && c.Notes == nil && c.Completed == nil {
		return fmt.Errorf("nothing to set: pass --value, --notes, or --completed")
	}

	if err := ctx.load(); err != nil {
		return err
	}

	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}

	habit, err := ctx.resolveHabit(c.Habit)
	if err != nil {
		return err
	}

	// Completing counter/timer habits implicitly when the logged value meets
	// the goal keeps the CLI in step with the TUI.
	upd := tracker.EntryUpdate{
		Completed: c.Completed,
		Value:     c.Value,
		Notes:     c.Notes,
	}
	if upd.Completed == nil && c.Value != nil && habit.Goal != nil && *c.Value >= *habit.Goal {
		done := true
		upd.Completed = &done
	}

	entry, err := ctx.Repo.UpdateHabitEntry(habit.ID, date, upd)
	if err != nil {
		return err
	}

	status := "incomplete"
	if entry.Completed {
		status = "completed"
	}
	if entry.Value != nil {
		fmt.Printf("Logged %s on %s: value %g, %s\n", habit.Name, entry.Date, *entry.Value, status)
	} else {
		fmt.Printf("Logged %s on %s: %s\n", habit.Name, entry.Date, status)
	}
	return nil
}

type DateCmd struct {
	Date string `arg:"" help:"Date to select (YYYY-MM-DD)."`
}

func (c *DateCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}
	if date == "" {
		return fmt.Errorf("a date is required")
	}

	if err := ctx.Repo.SetSelectedDate(date); err != nil {
		return err
	}

	fmt.Printf("Selected date: %s\n", date)
	return nil
}
