package cli

import (
	"fmt"
	"time"

	"github.com/tallytrack/tally/internal/constants"
)

type WeekCmd struct {
	Offset int `short:"o" help:"Weeks back (0 = this week, 1 = last week)."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habits := ctx.Repo.Habits()
	entries := ctx.Repo.Entries()
	week := ctx.Analytics.WeeklyProgress(habits, entries, time.Now(), -c.Offset)

	if len(week) == 0 {
		return nil
	}

	fmt.Printf("Week of %s:\n\n", week[0].Date)
	today := time.Now().Format(constants.DateFormat)
	for _, day := range week {
		t, err := time.Parse(constants.DateFormat, day.Date)
		if err != nil {
			return err
		}
		marker := " "
		if day.Date == today {
			marker = "*"
		}
		fmt.Printf("  %s %s %s  %d/%d  %3d%%  %s\n",
			marker, t.Weekday().String()[:3], day.Date,
			day.Completed, day.Total, day.Percentage, progressBar(day.Percentage, 20))
	}
	return nil
}
