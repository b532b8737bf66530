package cli

import (
	"fmt"

	"github.com/julianstephens/nanokata/internal/constants"
	"github.com/julianstephens/nanokata/internal/cycles"
)

type ListCmd struct {
	Limit int `short:"l" help:"Maximum number of check-ins to show." default:"20"`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	checkIns, err := ctx.Store.GetAllCheckIns()
	if err != nil {
		return err
	}

	if len(checkIns) == 0 {
		fmt.Println("No check-ins yet")
		return nil
	}

	if c.Limit > 0 && len(checkIns) > c.Limit {
		checkIns = checkIns[:c.Limit]
	}

	fmt.Printf("%-18s %-5s %-20s %-7s %-15s %s\n", "Time", "Cycle", "Now", "Focus", "Soul", "Prep")
	for _, ci := range checkIns {
		local := ci.CheckedAt.In(ctx.Location)
		fmt.Printf("%-18s %-5s %-20s %-7s %-15s %s\n",
			local.Format(constants.DateFormat+" "+constants.TimeFormat),
			cycles.Label(cycles.IndexOf(local)),
			ci.Now, ci.Focus, ci.Soul, ci.Prep,
		)
	}

	return nil
}
