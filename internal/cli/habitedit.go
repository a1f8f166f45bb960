package cli

import (
	"fmt"

	"github.com/tallytrack/tally/internal/models"
	"github.com/tallytrack/tally/internal/validation"
)

type HabitEditCmd struct {
	Habit       string   `arg:"" help:"Habit name or id."`
	Name        *string  `help:"New name."`
	Description *string  `short:"d" help:"New description."`
	Type        *string  `short:"t" help:"New type (boolean|counter|timer)."`
	Category    *string  `short:"c" help:"New category."`
	Difficulty  *string  `short:"D" help:"New difficulty (easy|medium|hard)."`
	Goal        *float64 `short:"g" help:"New daily goal (counter/timer only)."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habit, err := ctx.resolveHabit(c.Habit)
	if err != nil {
		return err
	}

	if c.Name != nil {
		habit.Name = *c.Name
	}
	if c.Description != nil {
		habit.Description = *c.Description
	}
	if c.Type != nil {
		habit.Type = models.HabitType(*c.Type)
	}
	if c.Category != nil {
		habit.Category = models.Category(*c.Category)
	}
	if c.Difficulty != nil {
		habit.Difficulty = models.Difficulty(*c.Difficulty)
	}
	if c.Goal != nil {
		goal := *c.Goal
		habit.Goal = &goal
	}

	// Keep the goal invariant intact when the type changes
	if !habit.Type.RequiresGoal() {
		habit.Goal = nil
	}

	if err := validation.ValidateHabitInput(models.HabitParams{
		Name:        habit.Name,
		Description: habit.Description,
		Type:        habit.Type,
		Category:    habit.Category,
		Difficulty:  habit.Difficulty,
		Goal:        habit.Goal,
	}); err != nil {
		return err
	}

	if err := ctx.Repo.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}
