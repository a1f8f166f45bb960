package cli

import (
	"fmt"

	"github.com/tallytrack/tally/internal/models"
	"github.com/tallytrack/tally/internal/templates"
	"github.com/tallytrack/tally/internal/validation"
)

type HabitAddCmd struct {
	Name        string  `arg:"" optional:"" help:"Habit name."`
	Description string  `short:"d" help:"What the habit is about."`
	Type        string  `short:"t" help:"Habit type (boolean|counter|timer)." default:"boolean"`
	Category    string  `short:"c" help:"Category (HEALTH|FITNESS|MINDFULNESS|PRODUCTIVITY|LEARNING|SOCIAL|CREATIVITY|OTHER)." default:"OTHER"`
	Difficulty  string  `short:"D" help:"Difficulty (easy|medium|hard)." default:"easy"`
	Goal        float64 `short:"g" help:"Daily goal for counter/timer habits."`
	Template    string  `short:"T" help:"Create from a named template (see 'habit templates')."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	var params models.HabitParams
	if c.Template != "" {
		tpl, ok := templates.Find(c.Template)
		if !ok {
			return fmt.Errorf("unknown template: %q (run 'tally habit templates' for the list)", c.Template)
		}
		params = tpl.Params()
		if c.Name != "" {
			params.Name = c.Name
		}
	} else {
		if c.Name == "" {
			return fmt.Errorf("a habit name or --template is required")
		}
		params = models.HabitParams{
			Name:        c.Name,
			Description: c.Description,
			Type:        models.HabitType(c.Type),
			Category:    models.Category(c.Category),
			Difficulty:  models.Difficulty(c.Difficulty),
		}
		if params.Type.RequiresGoal() {
			if c.Goal <= 0 {
				return fmt.Errorf("%s habits need a positive --goal", params.Type)
			}
			goal := c.Goal
			params.Goal = &goal
		} else if c.Goal != 0 {
			return fmt.Errorf("boolean habits do not take a goal")
		}
	}

	if err := validation.ValidateHabitInput(params); err != nil {
		return err
	}

	habit, err := ctx.Repo.AddHabit(params)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

type HabitTemplatesCmd struct{}

func (c *HabitTemplatesCmd) Run(ctx *Context) error {
	for _, cat := range models.Categories() {
		group := templates.ByCategory()[cat]
		if len(group) == 0 {
			continue
		}
		fmt.Printf("%s:\n", cat.DisplayName())
		for _, tpl := range group {
			fmt.Printf("  %-36s %s\n", tpl.Name, habitDetail(models.Habit{Type: tpl.Type, Goal: tpl.Goal}))
		}
		fmt.Println()
	}
	return nil
}
