package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/nanokata/internal/cycles"
	"github.com/julianstephens/nanokata/internal/metrics"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}

	checkIns, err := ctx.dayCheckIns(day)
	if err != nil {
		return err
	}

	// For past days the reference instant is the end of that day, so no
	// cycle shows up as "future".
	ref := time.Now().In(ctx.Location)
	if cycles.DayKey(day) != cycles.DayKey(ref) {
		ref = cycles.EndOfDay(day)
	}

	metas := metrics.Classify(checkIns, ref, ctx.Location)
	density := metrics.ComputeDensity(checkIns, day, ctx.Location)

	fmt.Printf("Cycles for %s:\n\n", cycles.DayKey(day))
	for _, meta := range metas {
		marker := " "
		switch meta.State {
		case metrics.CycleChecked:
			marker = "x"
		case metrics.CyclePast:
			marker = "·"
		}

		waking := ""
		if !meta.IsWaking {
			waking = "  (non-waking)"
		}

		checkedAt := ""
		if meta.EarliestCheckInTime != "" {
			checkedAt = "  checked in at " + meta.EarliestCheckInTime
		}

		fmt.Printf("  %s [%s]%s%s\n", meta.Label, marker, checkedAt, waking)
	}

	fmt.Printf("\nDensity: %.2f (%d of %d waking cycles)\n",
		density.Density, density.CheckInCount, density.WakingCycleCount)

	return nil
}
