package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tallytrack/tally/internal/analytics"
	"github.com/tallytrack/tally/internal/models"
	"github.com/tallytrack/tally/internal/streak"
	"github.com/tallytrack/tally/internal/tracker"
	"github.com/tallytrack/tally/internal/tui/components/habitlist"
	"github.com/tallytrack/tally/internal/validation"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateWeek
	StateStats
	StateAddHabit
	StateConfirmDelete
)

// tabCount is the number of cycleable tabs; form and confirm states sit
// outside the tab cycle.
const tabCount = 3

type HabitFormModel struct {
	Name        string
	Description string
	Type        string
	Category    string
	Difficulty  string
	Goal        string
}

type Model struct {
	repo          *tracker.Repository
	streaks       *streak.Engine
	analytics     *analytics.Engine
	state         SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	habitToDelete models.Habit
	weekOffset    int
	statusMsg     string
	quitting      bool
	width         int
	height        int
}

func NewModel(repo *tracker.Repository, streaks *streak.Engine, engine *analytics.Engine) Model {
	m := Model{
		repo:      repo,
		streaks:   streaks,
		analytics: engine,
		state:     StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(nil, 0, 0),
	}
	m.refreshHabits()
	return m
}

// refreshHabits rebuilds the habit list items from the repository state.
func (m *Model) refreshHabits() {
	habits := m.repo.Habits()
	entries := m.repo.Entries()
	date := m.repo.SelectedDate()
	now := time.Now()

	statuses := m.analytics.TodaysHabits(habits, entries, date)
	items := make([]habitlist.Item, 0, len(statuses))
	for _, s := range statuses {
		items = append(items, habitlist.Item{
			Status: s,
			Streak: m.streaks.ForHabit(s.Habit.ID, entries, now),
		})
	}
	m.habitList.SetItems(items)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Toggle, m.keys.Add, m.keys.Pause, m.keys.Delete)
	case StateWeek:
		keys = append(keys, m.keys.PrevWeek, m.keys.NextWeek)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Toggle}

	var actions []key.Binding
	switch m.state {
	case StateToday:
		actions = []key.Binding{m.keys.Add, m.keys.Pause, m.keys.Delete}
	case StateWeek:
		actions = []key.Binding{m.keys.PrevWeek, m.keys.NextWeek}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// newHabitForm builds the add-habit form. The goal field is validated
// against the chosen type when the form completes.
func newHabitForm(fm *HabitFormModel) *huh.Form {
	typeOptions := []huh.Option[string]{
		huh.NewOption("Yes/No", string(models.HabitTypeBoolean)),
		huh.NewOption("Counter", string(models.HabitTypeCounter)),
		huh.NewOption("Timer", string(models.HabitTypeTimer)),
	}

	categoryOptions := make([]huh.Option[string], 0, len(models.Categories()))
	for _, cat := range models.Categories() {
		categoryOptions = append(categoryOptions, huh.NewOption(cat.DisplayName(), string(cat)))
	}

	difficultyOptions := []huh.Option[string]{
		huh.NewOption("Easy (1 pt)", string(models.DifficultyEasy)),
		huh.NewOption("Medium (2 pts)", string(models.DifficultyMedium)),
		huh.NewOption("Hard (3 pts)", string(models.DifficultyHard)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewSelect[string]().
				Title("Type").
				Options(typeOptions...).
				Value(&fm.Type),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&fm.Category),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(difficultyOptions...).
				Value(&fm.Difficulty),
			huh.NewInput().
				Title("Daily goal (counter/timer only)").
				Value(&fm.Goal).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("goal must be a positive number")
					}
					return nil
				}),
		),
	)
}

// habitParams converts the completed form into entity factory input.
func (fm *HabitFormModel) habitParams() (models.HabitParams, error) {
	params := models.HabitParams{
		Name:        fm.Name,
		Description: fm.Description,
		Type:        models.HabitType(fm.Type),
		Category:    models.Category(fm.Category),
		Difficulty:  models.Difficulty(fm.Difficulty),
	}

	if params.Type.RequiresGoal() {
		if fm.Goal == "" {
			return params, fmt.Errorf("%s habits need a daily goal", params.Type)
		}
		v, err := strconv.ParseFloat(fm.Goal, 64)
		if err != nil {
			return params, fmt.Errorf("goal must be a number")
		}
		params.Goal = &v
	}

	if err := validation.ValidateHabitInput(params); err != nil {
		return params, err
	}
	return params, nil
}
