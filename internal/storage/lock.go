package storage

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"
)

var findProcessFunc = ps.FindProcess

// Lock is an advisory single-writer guard for a storage path. It writes a
// PID lockfile next to the snapshot; a second process acquiring the same
// lock fails while the first is still running. Stale lockfiles left behind
// by a crashed process are reclaimed.
type Lock struct {
	path string
}

func NewLock(configPath string) *Lock {
	return &Lock{
		path: configPath + ".lock",
	}
}

func (l *Lock) Acquire() error {
	data, err := os.ReadFile(l.path)
	if err == nil {
		pid, parseErr := strconv.Atoi(strings.TrimSpace(string(data)))
		if parseErr == nil && l.processAlive(pid) {
			return fmt.Errorf("storage is in use by another tally process (pid %d)", pid)
		}
		// Stale lockfile: the owning process is gone, reclaim it
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read lockfile: %w", err)
	}

	if err := os.WriteFile(l.path, []byte(strconv.Itoa(os.Getpid())), 0600); err != nil {
		return fmt.Errorf("failed to write lockfile: %w", err)
	}

	return nil
}

func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

// Path returns the lockfile location.
func (l *Lock) Path() string {
	return l.path
}

// Holder reports the PID recorded in the lockfile and whether that process
// is still alive. ok is false when no lockfile exists.
func (l *Lock) Holder() (pid int, alive bool, ok bool) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, false, false
	}
	pid, err = strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false, false
	}
	return pid, l.processAlive(pid), true
}

func (l *Lock) processAlive(pid int) bool {
	if pid == os.Getpid() {
		return false
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return false
	}

	// Only treat the lock as held when the PID still belongs to a tally
	// process; PIDs get recycled.
	return strings.HasPrefix(process.Executable(), "tally")
}
