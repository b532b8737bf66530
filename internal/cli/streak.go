package cli

import "fmt"

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	streak, err := ctx.currentStreak()
	if err != nil {
		return err
	}

	unit := "days"
	if streak == 1 {
		unit = "day"
	}
	fmt.Printf("Current streak: %d %s with 1.0 density\n", streak, unit)

	return nil
}
