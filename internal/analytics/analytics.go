package analytics

import (
	"math"
	"time"

	"github.com/tallytrack/tally/internal/constants"
	"github.com/tallytrack/tally/internal/models"
)

// Engine computes display-ready derived views over the habit and entry
// collections. Every method is a pure read: no repository state is touched
// and repeated calls are side-effect free.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// HabitStatus is the read-model handed to "today" views: the habit
// annotated with its same-day completion state. The canonical Habit entity
// stays free of day-specific fields.
type HabitStatus struct {
	models.Habit
	Completed bool
	Entry     *models.Entry
}

// TodaysHabits returns all active habits annotated with the given day's
// entry, if any.
func (e *Engine) TodaysHabits(habits []models.Habit, entries []models.Entry, date string) []HabitStatus {
	byHabit := make(map[string]models.Entry)
	for _, entry := range entries {
		if entry.Date == date {
			byHabit[entry.HabitID] = entry
		}
	}

	out := []HabitStatus{}
	for _, h := range habits {
		if !h.IsActive {
			continue
		}
		status := HabitStatus{Habit: h}
		if entry, ok := byHabit[h.ID]; ok {
			status.Completed = entry.Completed
			status.Entry = &entry
		}
		out = append(out, status)
	}
	return out
}

// TotalPoints sums the difficulty points of every habit with a completed
// entry on the given date.
func (e *Engine) TotalPoints(habits []models.Habit, entries []models.Entry, date string) int {
	completedHabits := make(map[string]bool)
	for _, entry := range entries {
		if entry.Date == date && entry.Completed {
			completedHabits[entry.HabitID] = true
		}
	}

	total := 0
	for _, h := range habits {
		if completedHabits[h.ID] {
			total += h.Difficulty.Points()
		}
	}
	return total
}

// DayProgress is one day of a weekly progress report.
type DayProgress struct {
	Date       string
	Completed  int
	Total      int
	Percentage int
}

// WeeklyProgress reports per-day completion for the week containing today
// shifted by weekOffset weeks. Weeks start on Sunday. Completed counts
// entries across all habits; the denominator is the count of currently
// active habits.
func (e *Engine) WeeklyProgress(habits []models.Habit, entries []models.Entry, today time.Time, weekOffset int) []DayProgress {
	total := 0
	for _, h := range habits {
		if h.IsActive {
			total++
		}
	}

	completedByDate := make(map[string]int)
	for _, entry := range entries {
		if entry.Completed {
			completedByDate[entry.Date]++
		}
	}

	startOfWeek := today.AddDate(0, 0, -int(today.Weekday())+weekOffset*7)

	week := make([]DayProgress, 0, 7)
	for i := 0; i < 7; i++ {
		date := startOfWeek.AddDate(0, 0, i).Format(constants.DateFormat)
		completed := completedByDate[date]
		week = append(week, DayProgress{
			Date:       date,
			Completed:  completed,
			Total:      total,
			Percentage: percentage(completed, total),
		})
	}
	return week
}

// CategoryStat is the completion rate of one category over a time window.
type CategoryStat struct {
	Category    models.Category
	Habits      int
	Completions int
	Rate        int // percent
}

// CategoryStats computes, for each category with at least one active habit,
// the completion rate over the trailing window: completed entries for the
// category's habits divided by (habits in category x days in window).
func (e *Engine) CategoryStats(habits []models.Habit, entries []models.Entry, today time.Time, rangeDays int) []CategoryStat {
	startDate := today.AddDate(0, 0, -rangeDays).Format(constants.DateFormat)

	categoryOf := make(map[string]models.Category)
	for _, h := range habits {
		categoryOf[h.ID] = h.Category
	}

	activeCount := make(map[models.Category]int)
	for _, h := range habits {
		if h.IsActive {
			activeCount[h.Category]++
		}
	}

	completions := make(map[models.Category]int)
	for _, entry := range entries {
		if !entry.Completed || entry.Date < startDate {
			continue
		}
		if cat, ok := categoryOf[entry.HabitID]; ok {
			completions[cat]++
		}
	}

	out := []CategoryStat{}
	for _, cat := range models.Categories() {
		count := activeCount[cat]
		if count == 0 {
			continue
		}
		possible := count * rangeDays
		rate := 0
		if possible > 0 {
			rate = int(math.Round(float64(completions[cat]) / float64(possible) * 100))
		}
		out = append(out, CategoryStat{
			Category:    cat,
			Habits:      count,
			Completions: completions[cat],
			Rate:        rate,
		})
	}
	return out
}

// Intensity classifies a day's completion ratio into heatmap buckets 0-5.
// Thresholds are evaluated in ascending order so higher ones win; a ratio
// of exactly 1 maps to the top bucket.
func Intensity(ratio float64) int {
	intensity := 0
	if ratio > 0 {
		intensity = 1
	}
	if ratio >= 0.25 {
		intensity = 2
	}
	if ratio >= 0.5 {
		intensity = 3
	}
	if ratio >= 0.75 {
		intensity = 4
	}
	if ratio == 1 {
		intensity = 5
	}
	return intensity
}

// DayCell is one cell of a calendar month grid.
type DayCell struct {
	Date       string
	Completed  int
	Total      int
	Percentage int
	Intensity  int
	InMonth    bool
	IsToday    bool
}

// CalendarMonth builds the full calendar grid for the month containing the
// given time, padded to whole weeks (Sunday through Saturday).
func (e *Engine) CalendarMonth(habits []models.Habit, entries []models.Entry, month time.Time, today time.Time) []DayCell {
	active := 0
	for _, h := range habits {
		if h.IsActive {
			active++
		}
	}

	completedByDate := make(map[string]int)
	for _, entry := range entries {
		if entry.Completed {
			completedByDate[entry.Date]++
		}
	}

	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	todayStr := today.Format(constants.DateFormat)

	cells := []DayCell{}
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		date := day.Format(constants.DateFormat)
		completed := completedByDate[date]
		ratio := 0.0
		if active > 0 {
			ratio = float64(completed) / float64(active)
		}
		cells = append(cells, DayCell{
			Date:       date,
			Completed:  completed,
			Total:      active,
			Percentage: int(math.Round(ratio * 100)),
			Intensity:  Intensity(ratio),
			InMonth:    day.Month() == monthStart.Month(),
			IsToday:    date == todayStr,
		})
	}
	return cells
}

// MonthSummary aggregates a month's calendar cells.
type MonthSummary struct {
	Completions int
	AvgRate     int // percent
	PerfectDays int
	ActiveDays  int
	BestDate    string
	BestRate    int
}

// SummarizeMonth folds the in-month cells of a calendar grid into headline
// numbers.
func (e *Engine) SummarizeMonth(cells []DayCell) MonthSummary {
	var summary MonthSummary
	totalPossible := 0
	for _, cell := range cells {
		if !cell.InMonth {
			continue
		}
		summary.Completions += cell.Completed
		totalPossible += cell.Total
		if cell.Percentage == 100 && cell.Total > 0 {
			summary.PerfectDays++
		}
		if cell.Completed > 0 {
			summary.ActiveDays++
		}
		if cell.Percentage > summary.BestRate {
			summary.BestRate = cell.Percentage
			summary.BestDate = cell.Date
		}
	}
	if totalPossible > 0 {
		summary.AvgRate = int(math.Round(float64(summary.Completions) / float64(totalPossible) * 100))
	}
	return summary
}

// DailyPoint is one day of a points/completions series.
type DailyPoint struct {
	Date       string
	Completed  int
	Percentage int
	Points     int
}

// DailySeries reports per-day completions and points over the trailing
// window, oldest day first.
func (e *Engine) DailySeries(habits []models.Habit, entries []models.Entry, today time.Time, rangeDays int) []DailyPoint {
	active := 0
	pointsOf := make(map[string]int)
	for _, h := range habits {
		pointsOf[h.ID] = h.Difficulty.Points()
		if h.IsActive {
			active++
		}
	}

	completedByDate := make(map[string]int)
	pointsByDate := make(map[string]int)
	for _, entry := range entries {
		if !entry.Completed {
			continue
		}
		completedByDate[entry.Date]++
		pointsByDate[entry.Date] += pointsOf[entry.HabitID]
	}

	series := make([]DailyPoint, 0, rangeDays+1)
	for offset := rangeDays; offset >= 0; offset-- {
		date := today.AddDate(0, 0, -offset).Format(constants.DateFormat)
		series = append(series, DailyPoint{
			Date:       date,
			Completed:  completedByDate[date],
			Percentage: percentage(completedByDate[date], active),
			Points:     pointsByDate[date],
		})
	}
	return series
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
