package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tallytrack/tally/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateWeek:
		content = m.viewWeek()
	case StateStats:
		content = m.viewStats()
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		sections = append(sections, dimStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Week", "Stats"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	habits := m.repo.Habits()
	entries := m.repo.Entries()
	date := m.repo.SelectedDate()

	points := m.analytics.TotalPoints(habits, entries, date)
	header := fmt.Sprintf("%s · %s", date, pointsStyle.Render(fmt.Sprintf("%d pts", points)))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.habitList.View(),
	))
}

func (m Model) viewWeek() string {
	habits := m.repo.Habits()
	entries := m.repo.Entries()
	week := m.analytics.WeeklyProgress(habits, entries, time.Now(), m.weekOffset)
	if len(week) == 0 {
		return docStyle.Render("No data.")
	}

	today := time.Now().Format(constants.DateFormat)

	lines := []string{fmt.Sprintf("Week of %s", week[0].Date), ""}
	for _, day := range week {
		t, err := time.Parse(constants.DateFormat, day.Date)
		if err != nil {
			continue
		}
		label := t.Weekday().String()[:3]
		if day.Date == today {
			label = pointsStyle.Render(label)
		}
		bar := renderBar(day.Percentage, 20)
		lines = append(lines, fmt.Sprintf("%s  %s  %d/%d (%d%%)",
			label, bar, day.Completed, day.Total, day.Percentage))
	}

	return docStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewStats() string {
	habits := m.repo.Habits()
	entries := m.repo.Entries()
	now := time.Now()

	lines := []string{"Last 30 days", ""}

	for _, s := range m.analytics.CategoryStats(habits, entries, now, 30) {
		name := lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Category.Color())).
			Render(fmt.Sprintf("%-14s", s.Category.DisplayName()))
		lines = append(lines, fmt.Sprintf("%s %s %3d%%", name, renderBar(s.Rate, 20), s.Rate))
	}

	type habitStreak struct {
		name    string
		current int
		longest int
	}
	var streaks []habitStreak
	for _, h := range habits {
		if !h.IsActive {
			continue
		}
		r := m.streaks.ForHabit(h.ID, entries, now)
		streaks = append(streaks, habitStreak{name: h.Name, current: r.Current, longest: r.Longest})
	}
	sort.Slice(streaks, func(i, j int) bool { return streaks[i].current > streaks[j].current })

	if len(streaks) > 0 {
		lines = append(lines, "", "Streaks", "")
		for i, s := range streaks {
			if i >= 5 {
				break
			}
			lines = append(lines, fmt.Sprintf("%-28s 🔥%-3d best %d", s.name, s.current, s.longest))
		}
	}

	return docStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q and all its entries?", m.habitToDelete.Name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func renderBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
