package cli

import (
	"fmt"
	"time"
)

type TodayCmd struct {
	Date string `short:"d" help:"Show a specific day (YYYY-MM-DD, default: selected date)."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}
	if date == "" {
		date = ctx.Repo.SelectedDate()
	}

	habits := ctx.Repo.Habits()
	entries := ctx.Repo.Entries()
	statuses := ctx.Analytics.TodaysHabits(habits, entries, date)

	if len(statuses) == 0 {
		fmt.Println("No active habits. Add one with 'tally habit add'.")
		return nil
	}

	fmt.Printf("Habits for %s:\n\n", date)
	completed := 0
	now := time.Now()
	for _, s := range statuses {
		if s.Completed {
			completed++
		}

		detail := ""
		if s.Entry != nil && s.Entry.Value != nil {
			detail = fmt.Sprintf("  (%g", *s.Entry.Value)
			if s.Habit.Goal != nil {
				detail += fmt.Sprintf("/%g", *s.Habit.Goal)
			}
			detail += ")"
		}

		streaks := ctx.Streaks.ForHabit(s.Habit.ID, entries, now)
		streakNote := ""
		if streaks.Current > 0 {
			streakNote = fmt.Sprintf("  🔥%d", streaks.Current)
		}

		fmt.Printf("  %s %s%s%s\n", checkbox(s.Completed), s.Habit.Name, detail, streakNote)
	}

	points := ctx.Analytics.TotalPoints(habits, entries, date)
	fmt.Printf("\n%d/%d completed · %d points\n", completed, len(statuses), points)
	return nil
}

type PointsCmd struct {
	Days int `help:"Trailing window length in days." default:"7"`
}

func (c *PointsCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habits := ctx.Repo.Habits()
	entries := ctx.Repo.Entries()
	series := ctx.Analytics.DailySeries(habits, entries, time.Now(), c.Days-1)

	total := 0
	for _, p := range series {
		fmt.Printf("  %s  %2d done  %3d%%  %3d pts  %s\n",
			p.Date, p.Completed, p.Percentage, p.Points, progressBar(p.Percentage, 20))
		total += p.Points
	}
	fmt.Printf("\nTotal points over %d days: %d\n", c.Days, total)
	return nil
}
