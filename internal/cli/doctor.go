package cli

import (
	"fmt"
	"time"

	"github.com/tallytrack/tally/internal/backup"
	"github.com/tallytrack/tally/internal/constants"
	"github.com/tallytrack/tally/internal/storage"
	"github.com/tallytrack/tally/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storageReachable := false

	// Check 1: storage reachable
	if err := ctx.load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storageReachable = true
	}

	// Check 2: snapshot version supported
	if storageReachable {
		if err := checkSnapshotVersion(ctx); err != nil {
			fmt.Printf("❌ Snapshot version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Snapshot version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Snapshot version: SKIPPED (storage not reachable)\n")
	}

	// Check 3: no competing writer
	if err := checkCompetingWriter(ctx); err != nil {
		fmt.Printf("❌ Exclusive writer: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Exclusive writer: OK\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: snapshot validation (only if storage is reachable)
	if storageReachable {
		if err := checkValidation(ctx); err != nil {
			fmt.Printf("❌ Snapshot validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Snapshot validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Snapshot validation: SKIPPED (storage not reachable)\n")
	}

	// Check 6: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkSnapshotVersion(ctx *Context) error {
	snap := ctx.Repo.Snapshot()
	if snap.Version > constants.SnapshotVersion {
		return fmt.Errorf("snapshot version (%d) is newer than supported version (%d)",
			snap.Version, constants.SnapshotVersion)
	}
	return nil
}

func checkCompetingWriter(ctx *Context) error {
	lock := storage.NewLock(ctx.Store.GetConfigPath())
	pid, alive, ok := lock.Holder()
	if ok && alive {
		return fmt.Errorf("another tally process (pid %d) holds the writer lock", pid)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, run 'tally backup create'")
	}

	newest := backups[0].Timestamp
	if time.Since(newest) > 7*24*time.Hour {
		return fmt.Errorf("newest backup is older than a week (%s)", newest.Format("2006-01-02"))
	}
	return nil
}

func checkValidation(ctx *Context) error {
	snap := ctx.Repo.Snapshot()
	result := validation.New().ValidateSnapshot(&snap)
	if result.HasConflicts() {
		return fmt.Errorf("snapshot has conflicts:\n%s", result.FormatReport())
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	// A wildly wrong clock breaks date-keyed entries and streaks
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}

	if _, err := time.Parse(constants.DateFormat, now.Format(constants.DateFormat)); err != nil {
		return fmt.Errorf("date formatting round-trip failed: %w", err)
	}
	return nil
}
