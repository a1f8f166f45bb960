// Package habitlist renders the day's habits as a selectable checklist.
package habitlist

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tallytrack/tally/internal/analytics"
	"github.com/tallytrack/tally/internal/streak"
)

// Item pairs a habit's day status with its streaks for display.
type Item struct {
	Status analytics.HabitStatus
	Streak streak.Result
}

type Model struct {
	items  []Item
	cursor int
	width  int
	height int
}

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Strikethrough(true)

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func New(items []Item, width, height int) Model {
	return Model{items: items, width: width, height: height}
}

// SetItems replaces the list contents, clamping the cursor.
func (m *Model) SetItems(items []Item) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) MoveDown() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

// Selected returns the item under the cursor.
func (m Model) Selected() (Item, bool) {
	if len(m.items) == 0 {
		return Item{}, false
	}
	return m.items[m.cursor], true
}

func (m Model) View() string {
	if len(m.items) == 0 {
		return "No active habits. Press 'a' to add one."
	}

	out := ""
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		check := "[ ]"
		if item.Status.Completed {
			check = "[x]"
		}

		name := item.Status.Habit.Name
		if item.Status.Completed {
			name = doneStyle.Render(name)
		}
		if i == m.cursor {
			name = selectedStyle.Render(item.Status.Habit.Name)
		}

		detail := ""
		if item.Status.Entry != nil && item.Status.Entry.Value != nil {
			if item.Status.Habit.Goal != nil {
				detail = fmt.Sprintf(" %g/%g", *item.Status.Entry.Value, *item.Status.Habit.Goal)
			} else {
				detail = fmt.Sprintf(" %g", *item.Status.Entry.Value)
			}
		}

		streakNote := ""
		if item.Streak.Current > 0 {
			streakNote = streakStyle.Render(fmt.Sprintf("  🔥%d", item.Streak.Current))
		}

		category := categoryStyle.
			Foreground(lipgloss.Color(item.Status.Habit.Category.Color())).
			Render(" · " + item.Status.Habit.Category.DisplayName())

		out += fmt.Sprintf("%s%s %s%s%s%s\n", cursor, check, name, detail, streakNote, category)
	}
	return out
}
