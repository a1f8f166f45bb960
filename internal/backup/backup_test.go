package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeSnapshot(t *testing.T, dir string, contents map[string]any) string {
	t.Helper()
	data, err := json.Marshal(contents)
	if err != nil {
		t.Fatalf("failed to marshal snapshot: %v", err)
	}
	path := filepath.Join(dir, "tally.json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir, map[string]any{"version": 1, "habits": []any{}})
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup should live in %s, got %s", mgr.GetBackupDir(), backupPath)
	}
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("backup suffix should follow the store file, got %s", backupPath)
	}

	original, _ := os.ReadFile(path)
	copied, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("backup not readable: %v", err)
	}
	if string(original) != string(copied) {
		t.Error("backup contents should match the snapshot")
	}
}

func TestCreateBackupMissingSnapshot(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "tally.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Fatal("backing up a missing snapshot should fail")
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir, map[string]any{"version": 1})
	mgr := NewManager(path)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"tally-20260828-0900.json", "tally-20260830-0900.json", "tally-20260829-0900.json"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	if filepath.Base(backups[0].Path) != "tally-20260830-0900.json" {
		t.Errorf("expected newest first, got %s", backups[0].Path)
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir, map[string]any{"version": 1})
	mgr := NewManager(path)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "tally-garbage.json", "other-20260830-0900.json"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRotateKeepsMaxBackups(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir, map[string]any{"version": 1})
	mgr := NewManager(path)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	// Seed more than the retention limit of dated backups
	for day := 1; day <= MaxBackups+5; day++ {
		name := filepath.Join(mgr.GetBackupDir(), BackupFilePrefix+"202607"+twoDigit(day)+"-0900.json")
		if err := os.WriteFile(name, []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir, map[string]any{"version": 1, "selectedDate": "2026-08-30"})
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	// Change the live snapshot, then restore the backup over it
	if err := os.WriteFile(path, []byte(`{"version":1,"selectedDate":"2026-08-31"}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var snap map[string]any
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("restored snapshot not valid JSON: %v", err)
	}
	if snap["selectedDate"] != "2026-08-30" {
		t.Errorf("expected restored selectedDate 2026-08-30, got %v", snap["selectedDate"])
	}
}

func TestRestoreRejectsCorruptBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir, map[string]any{"version": 1})
	mgr := NewManager(path)

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.RestoreBackup(corrupt); err == nil {
		t.Fatal("restoring a corrupt backup should fail")
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir, map[string]any{"version": 1})
	mgr := NewManager(path)

	if err := mgr.RestoreBackup(filepath.Join(dir, "nope.json")); err == nil {
		t.Fatal("restoring a missing backup should fail")
	}
}

func twoDigit(n int) string {
	return string([]byte{'0' + byte(n/10), '0' + byte(n%10)})
}
