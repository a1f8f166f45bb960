package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tallytrack/tally/internal/backup"
	"github.com/tallytrack/tally/internal/logger"
	"github.com/tallytrack/tally/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	// Automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Repo, ctx.Streaks, ctx.Analytics), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}

// PerformAutomaticBackup creates at most one backup per day, silently: a
// failed auto-backup never blocks startup.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backups, err := mgr.ListBackups()
	if err != nil {
		logger.Warn("auto-backup: failed to list backups", "err", err)
		return
	}

	today := time.Now().Format("2006-01-02")
	if len(backups) > 0 && backups[0].Timestamp.Format("2006-01-02") == today {
		return
	}

	path, err := mgr.CreateBackup()
	if err != nil {
		logger.Warn("auto-backup failed", "err", err)
		return
	}
	logger.Info("auto-backup created", "path", path)
}
