package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/tallytrack/tally/internal/analytics"
	"github.com/tallytrack/tally/internal/cli"
	"github.com/tallytrack/tally/internal/logger"
	"github.com/tallytrack/tally/internal/storage"
	"github.com/tallytrack/tally/internal/streak"
	"github.com/tallytrack/tally/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Snapshot file path (.json selects the JSON store)." type:"path" default:"~/.config/tally/tally.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize tally storage."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today cli.TodayCmd `cmd:"" help:"Show today's habits."`
	Done  cli.DoneCmd  `cmd:"" help:"Toggle a habit's completion for a day."`
	Set   cli.SetCmd   `cmd:"" help:"Log a value, notes, or completion for a day."`
	Habit struct {
		Add       cli.HabitAddCmd       `cmd:"" help:"Add a new habit."`
		List      cli.HabitListCmd      `cmd:"" help:"List habits."`
		Edit      cli.HabitEditCmd      `cmd:"" help:"Edit a habit."`
		Delete    cli.HabitDeleteCmd    `cmd:"" help:"Delete a habit and its entries."`
		Toggle    cli.HabitToggleCmd    `cmd:"" help:"Pause or resume a habit."`
		Templates cli.HabitTemplatesCmd `cmd:"" help:"List habit templates."`
	} `cmd:"" help:"Manage habits."`
	Week   cli.WeekCmd   `cmd:"" help:"Show weekly progress."`
	Month  cli.MonthCmd  `cmd:"" help:"Show the monthly calendar heatmap."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show category rates and streaks."`
	Streak cli.StreakCmd `cmd:"" help:"Show a habit's streaks."`
	Points cli.PointsCmd `cmd:"" help:"Show the daily points series."`
	Date   cli.DateCmd   `cmd:"" help:"Change the selected date."`
	Export cli.ExportCmd `cmd:"" help:"Export habits and entries."`
	Import cli.ImportCmd `cmd:"" help:"Import a JSON export."`
	Clear  cli.ClearCmd  `cmd:"" help:"Delete all habits and entries."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a snapshot backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a snapshot backup."`
	} `cmd:"" help:"Manage snapshot backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tally"),
		kong.Description("Personal habit tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	// Exactly one writer per snapshot across processes
	lock := storage.NewLock(CLI.Config)
	if err := lock.Acquire(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer lock.Release()

	appCtx := &cli.Context{
		Store:     store,
		Repo:      tracker.New(store),
		Streaks:   streak.New(),
		Analytics: analytics.New(),
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("command failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
