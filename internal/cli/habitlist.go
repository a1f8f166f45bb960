package cli

import (
	"fmt"
	"time"
)

type HabitListCmd struct {
	All bool `short:"a" help:"Include paused habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habits := ctx.Repo.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'tally habit add'.")
		return nil
	}

	entries := ctx.Repo.Entries()
	now := time.Now()

	shown := 0
	for _, h := range habits {
		if !h.IsActive && !c.All {
			continue
		}
		shown++

		state := ""
		if !h.IsActive {
			state = " (paused)"
		}
		streaks := ctx.Streaks.ForHabit(h.ID, entries, now)
		fmt.Printf("%-28s %-12s %-8s %-22s streak %d (best %d)%s\n",
			h.Name, h.Category.DisplayName(), h.Difficulty, habitDetail(h),
			streaks.Current, streaks.Longest, state)
	}

	if shown == 0 {
		fmt.Println("All habits are paused. Use --all to list them.")
	}
	return nil
}
