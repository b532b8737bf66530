package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/nanokata/internal/logger"
	"github.com/julianstephens/nanokata/internal/utils"
)

// RepairCmd normalizes legacy sqlite-format timestamps (YYYY-MM-DD HH:MM:SS,
// assumed UTC) into the ISO-8601 form the rest of the system requires. This
// is offline maintenance; the core never rewrites check-ins.
type RepairCmd struct {
	DryRun bool `help:"Report what would change without writing."`
}

const legacyTimestampFormat = "2006-01-02 15:04:05"

func (c *RepairCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	raws, err := ctx.Store.ListRawTimestamps()
	if err != nil {
		return err
	}

	fmt.Printf("Found %d check-ins to process\n", len(raws))

	fixed := 0
	skipped := 0
	for _, raw := range raws {
		if _, err := utils.ParseTimestamp(raw.CheckedAt); err == nil {
			fmt.Printf("✓ Check-in %d: already ISO (%s)\n", raw.ID, raw.CheckedAt)
			continue
		}

		legacy, err := time.Parse(legacyTimestampFormat, raw.CheckedAt)
		if err != nil {
			// Neither ISO nor the known legacy shape: leave it alone and say so.
			fmt.Printf("✗ Check-in %d: unrecognized timestamp %q, skipping\n", raw.ID, raw.CheckedAt)
			skipped++
			continue
		}

		iso := utils.FormatTimestamp(legacy.UTC())
		fmt.Printf("→ Check-in %d: converting %s to %s\n", raw.ID, raw.CheckedAt, iso)

		if !c.DryRun {
			if err := ctx.Store.UpdateCheckedAt(raw.ID, iso); err != nil {
				return fmt.Errorf("failed to update check-in %d: %w", raw.ID, err)
			}
		}
		fixed++
	}

	if c.DryRun {
		fmt.Printf("\nDry run: %d timestamp(s) would be fixed, %d unrecognized\n", fixed, skipped)
	} else {
		fmt.Printf("\n✓ Fixed %d timestamp(s), %d unrecognized\n", fixed, skipped)
		logger.Info("repair completed", "fixed", fixed, "skipped", skipped)
	}

	return nil
}
