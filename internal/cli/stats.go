package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/tallytrack/tally/internal/streak"
)

type StatsCmd struct {
	Days int `help:"Trailing window length in days." default:"30"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habits := ctx.Repo.Habits()
	entries := ctx.Repo.Entries()
	now := time.Now()

	completions := 0
	for _, e := range entries {
		if e.Completed {
			completions++
		}
	}
	active := 0
	for _, h := range habits {
		if h.IsActive {
			active++
		}
	}
	fmt.Printf("%d habits (%d active) · %d completions all time\n\n", len(habits), active, completions)

	stats := ctx.Analytics.CategoryStats(habits, entries, now, c.Days)
	if len(stats) > 0 {
		fmt.Printf("Category rates over the last %d days:\n", c.Days)
		for _, s := range stats {
			fmt.Printf("  %-14s %2d habits  %3d done  %3d%%  %s\n",
				s.Category.DisplayName(), s.Habits, s.Completions, s.Rate, progressBar(s.Rate, 20))
		}
		fmt.Println()
	}

	type habitStreak struct {
		name   string
		result streak.Result
	}
	var streaks []habitStreak
	for _, h := range habits {
		if !h.IsActive {
			continue
		}
		streaks = append(streaks, habitStreak{name: h.Name, result: ctx.Streaks.ForHabit(h.ID, entries, now)})
	}
	sort.Slice(streaks, func(i, j int) bool {
		return streaks[i].result.Current > streaks[j].result.Current
	})

	if len(streaks) > 0 {
		fmt.Println("Streaks:")
		for i, s := range streaks {
			if i >= 5 {
				break
			}
			fmt.Printf("  %-28s current %2d  best %2d\n", s.name, s.result.Current, s.result.Longest)
		}
	}
	return nil
}

type StreakCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habit, err := ctx.resolveHabit(c.Habit)
	if err != nil {
		return err
	}

	result := ctx.Streaks.ForHabit(habit.ID, ctx.Repo.Entries(), time.Now())
	fmt.Printf("%s: current streak %d, longest %d\n", habit.Name, result.Current, result.Longest)
	return nil
}
