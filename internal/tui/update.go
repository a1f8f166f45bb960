package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width, msg.Height-6)
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMsg = ""

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMsg = ""
		}

		switch m.state {
		case StateToday:
			return m.updateToday(msg)
		case StateWeek:
			return m.updateWeek(msg)
		}
	}

	return m, nil
}

func (m Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.habitList.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.habitList.MoveDown()

	case key.Matches(msg, m.keys.Toggle):
		item, ok := m.habitList.Selected()
		if !ok {
			break
		}
		if _, err := m.repo.ToggleHabitCompletion(item.Status.Habit.ID, ""); err != nil {
			m.statusMsg = "Error: " + err.Error()
			break
		}
		m.statusMsg = ""
		m.refreshHabits()

	case key.Matches(msg, m.keys.Pause):
		item, ok := m.habitList.Selected()
		if !ok {
			break
		}
		if err := m.repo.ToggleHabitActive(item.Status.Habit.ID); err != nil {
			m.statusMsg = "Error: " + err.Error()
			break
		}
		m.statusMsg = "Paused: " + item.Status.Habit.Name
		m.refreshHabits()

	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		item, ok := m.habitList.Selected()
		if !ok {
			break
		}
		m.habitToDelete = item.Status.Habit
		m.state = StateConfirmDelete
	}

	return m, nil
}

func (m Model) updateWeek(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevWeek):
		m.weekOffset--
	case key.Matches(msg, m.keys.NextWeek):
		if m.weekOffset < 0 {
			m.weekOffset++
		}
	}
	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = StateToday
		m.form = nil
		m.habitForm = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		params, err := m.habitForm.habitParams()
		if err != nil {
			m.statusMsg = "Error: " + err.Error()
		} else if _, err := m.repo.AddHabit(params); err != nil {
			m.statusMsg = "Error: " + err.Error()
		} else {
			m.statusMsg = "Added: " + params.Name
		}
		m.state = StateToday
		m.form = nil
		m.habitForm = nil
		m.refreshHabits()
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if err := m.repo.DeleteHabit(m.habitToDelete.ID); err != nil {
			m.statusMsg = "Error: " + err.Error()
		} else {
			m.statusMsg = "Deleted: " + m.habitToDelete.Name
		}
		m.state = StateToday
		m.refreshHabits()
	case "n", "N", "esc", "q":
		m.state = StateToday
	}

	return m, nil
}
