package cli

import (
	"fmt"
	"os"

	"github.com/tallytrack/tally/internal/export"
	"github.com/tallytrack/tally/internal/tracker"
)

type ExportCmd struct {
	Format string `arg:"" optional:"" help:"Export format (json|csv)." default:"json"`
	Output string `short:"o" help:"Output path (default: tally-backup-<date>.json / tally-entries-<date>.csv)."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habits := ctx.Repo.Habits()
	entries := ctx.Repo.Entries()

	var data []byte
	var err error
	path := c.Output

	switch c.Format {
	case "json":
		data, err = export.JSON(habits, entries)
		if path == "" {
			path = export.JSONFileName()
		}
	case "csv":
		data, err = export.CSV(habits, entries)
		if path == "" {
			path = export.CSVFileName()
		}
	default:
		return fmt.Errorf("unknown export format: %q (expected json or csv)", c.Format)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("Exported %d habits and %d entries to %s\n", len(habits), len(entries), path)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Path to a JSON export file." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	payload, err := tracker.ParseImport(data)
	if err != nil {
		return err
	}

	if err := ctx.Repo.ImportData(payload); err != nil {
		return err
	}

	fmt.Printf("Imported %d habits and %d entries from %s\n", len(payload.Habits), len(payload.Entries), c.File)
	return nil
}

type ClearCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	if !c.Force {
		fmt.Print("Delete ALL habits and entries? This cannot be undone. Type 'yes' to continue: ")
		var response string
		if _, err := fmt.Scanln(&response); err != nil && err.Error() != "unexpected newline" {
			return err
		}
		if response != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Repo.ClearAllData(); err != nil {
		return err
	}

	fmt.Println("All data cleared.")
	return nil
}
