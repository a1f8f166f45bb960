package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// HabitType determines whether completion is binary or carries a numeric
// value toward a goal.
type HabitType string

const (
	HabitTypeBoolean HabitType = "boolean"
	HabitTypeCounter HabitType = "counter"
	HabitTypeTimer   HabitType = "timer"
)

func (t HabitType) Valid() bool {
	switch t {
	case HabitTypeBoolean, HabitTypeCounter, HabitTypeTimer:
		return true
	}
	return false
}

// RequiresGoal reports whether habits of this type must carry a numeric goal.
func (t HabitType) RequiresGoal() bool {
	return t == HabitTypeCounter || t == HabitTypeTimer
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Points returns the score awarded for completing a habit of this difficulty.
func (d Difficulty) Points() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	}
	return 0
}

type Category string

const (
	CategoryHealth       Category = "HEALTH"
	CategoryFitness      Category = "FITNESS"
	CategoryMindfulness  Category = "MINDFULNESS"
	CategoryProductivity Category = "PRODUCTIVITY"
	CategoryLearning     Category = "LEARNING"
	CategorySocial       Category = "SOCIAL"
	CategoryCreativity   Category = "CREATIVITY"
	CategoryOther        Category = "OTHER"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryHealth,
		CategoryFitness,
		CategoryMindfulness,
		CategoryProductivity,
		CategoryLearning,
		CategorySocial,
		CategoryCreativity,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName returns the human-readable category name.
func (c Category) DisplayName() string {
	switch c {
	case CategoryHealth:
		return "Health"
	case CategoryFitness:
		return "Fitness"
	case CategoryMindfulness:
		return "Mindfulness"
	case CategoryProductivity:
		return "Productivity"
	case CategoryLearning:
		return "Learning"
	case CategorySocial:
		return "Social"
	case CategoryCreativity:
		return "Creativity"
	}
	return "Other"
}

// Color returns the hex display color associated with the category.
func (c Category) Color() string {
	switch c {
	case CategoryHealth:
		return "#10B981"
	case CategoryFitness:
		return "#F59E0B"
	case CategoryMindfulness:
		return "#8B5CF6"
	case CategoryProductivity:
		return "#3B82F6"
	case CategoryLearning:
		return "#EC4899"
	case CategorySocial:
		return "#06B6D4"
	case CategoryCreativity:
		return "#F97316"
	}
	return "#6B7280"
}

// Habit represents a user-defined behavior to track.
type Habit struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        HabitType  `json:"type"`
	Category    Category   `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Goal        *float64   `json:"goal"` // nil iff Type is boolean
	CreatedAt   time.Time  `json:"createdAt"`
	IsActive    bool       `json:"isActive"`
}

// HabitParams carries the caller-supplied fields for NewHabit. Zero values
// fall back to boolean/OTHER/easy defaults.
type HabitParams struct {
	Name        string
	Description string
	Type        HabitType
	Category    Category
	Difficulty  Difficulty
	Goal        *float64
}

// NewHabit constructs a well-formed habit with a fresh id. It assumes the
// caller has already validated the input; in particular the goal/type
// invariant is passed through unchanged.
func NewHabit(p HabitParams) Habit {
	if p.Type == "" {
		p.Type = HabitTypeBoolean
	}
	if p.Category == "" {
		p.Category = CategoryOther
	}
	if p.Difficulty == "" {
		p.Difficulty = DifficultyEasy
	}

	return Habit{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(p.Name),
		Description: strings.TrimSpace(p.Description),
		Type:        p.Type,
		Category:    p.Category,
		Difficulty:  p.Difficulty,
		Goal:        p.Goal,
		CreatedAt:   time.Now().UTC(),
		IsActive:    true,
	}
}
