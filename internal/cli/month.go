package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tallytrack/tally/internal/analytics"
)

// intensityColors maps heatmap buckets 0-5 to terminal colors, dim to bright.
var intensityColors = [6]string{"238", "22", "28", "34", "40", "46"}

type MonthCmd struct {
	Month string `short:"m" help:"Month to show (YYYY-MM, default: current)."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	now := time.Now()
	month := now
	if c.Month != "" {
		parsed, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", c.Month)
		}
		month = parsed
	}

	habits := ctx.Repo.Habits()
	entries := ctx.Repo.Entries()
	cells := ctx.Analytics.CalendarMonth(habits, entries, month, now)

	fmt.Printf("%s\n\n", month.Format("January 2006"))
	fmt.Println("  Sun Mon Tue Wed Thu Fri Sat")

	for i, cell := range cells {
		if i%7 == 0 {
			fmt.Print(" ")
		}
		fmt.Print(" ", renderCell(cell))
		if i%7 == 6 {
			fmt.Println()
		}
	}

	summary := ctx.Analytics.SummarizeMonth(cells)
	fmt.Printf("\n%d completions · avg %d%% · %d perfect days · %d active days\n",
		summary.Completions, summary.AvgRate, summary.PerfectDays, summary.ActiveDays)
	if summary.BestDate != "" {
		fmt.Printf("Best day: %s (%d%%)\n", summary.BestDate, summary.BestRate)
	}
	return nil
}

func renderCell(cell analytics.DayCell) string {
	day, err := time.Parse("2006-01-02", cell.Date)
	if err != nil {
		return "  ?"
	}
	label := fmt.Sprintf("%3d", day.Day())

	if !cell.InMonth {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(label)
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(intensityColors[cell.Intensity]))
	if cell.IsToday {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(label)
}
