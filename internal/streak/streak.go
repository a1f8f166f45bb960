package streak

import (
	"time"

	"github.com/tallytrack/tally/internal/constants"
	"github.com/tallytrack/tally/internal/models"
)

// Result holds the consecutive-completion streaks for one habit.
type Result struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// ForHabit computes the current and longest streak for a habit from its
// completed entries, scanning backward from today over a bounded window.
//
// The current streak is the consecutive run of completed days ending at
// today, or ending at yesterday when today has no completed entry yet: an
// incomplete today does not break a streak until the day is over. The
// longest streak is the maximum run anywhere in the window.
func (e *Engine) ForHabit(habitID string, entries []models.Entry, today time.Time) Result {
	completed := make(map[string]bool)
	for _, entry := range entries {
		if entry.HabitID == habitID && entry.Completed {
			completed[entry.Date] = true
		}
	}

	if len(completed) == 0 {
		return Result{}
	}

	done := func(offset int) bool {
		return completed[today.AddDate(0, 0, -offset).Format(constants.DateFormat)]
	}

	// Current streak: anchored at today, or at yesterday if today is still open
	current := 0
	anchor := -1
	if done(0) {
		anchor = 0
	} else if done(1) {
		anchor = 1
	}
	if anchor >= 0 {
		for offset := anchor; offset < constants.StreakScanDays && done(offset); offset++ {
			current++
		}
	}

	// Longest streak: maximum run in the window, including the run still
	// open at the scan boundary
	longest := 0
	run := 0
	for offset := 0; offset < constants.StreakScanDays; offset++ {
		if done(offset) {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 0
		}
	}
	if run > longest {
		longest = run
	}

	return Result{Current: current, Longest: longest}
}
