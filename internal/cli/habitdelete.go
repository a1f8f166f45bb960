package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habit, err := ctx.resolveHabit(c.Habit)
	if err != nil {
		return err
	}

	count := 0
	for _, e := range ctx.Repo.Entries() {
		if e.HabitID == habit.ID {
			count++
		}
	}

	if !c.Force {
		fmt.Printf("Delete %q and its %d entries? This cannot be undone. [y/N]: ", habit.Name, count)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Repo.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (%d entries removed)\n", habit.Name, count)
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habit, err := ctx.resolveHabit(c.Habit)
	if err != nil {
		return err
	}

	if err := ctx.Repo.ToggleHabitActive(habit.ID); err != nil {
		return err
	}

	if habit.IsActive {
		fmt.Printf("Paused habit: %s\n", habit.Name)
	} else {
		fmt.Printf("Resumed habit: %s\n", habit.Name)
	}
	return nil
}
