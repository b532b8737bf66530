package cli

import (
	"fmt"

	"github.com/julianstephens/nanokata/internal/models"
	"github.com/julianstephens/nanokata/internal/utils"
	"github.com/julianstephens/nanokata/internal/validation"
)

type AddCmd struct {
	When  string `short:"w" help:"Datetime of check-in (ISO-8601, defaults to current time)."`
	Now   string `short:"n" help:"Current activity." required:""`
	Focus string `short:"f" help:"Focus area: rhyt, hyker, or other." required:""`
	Soul  string `short:"s" help:"Mood/energy/outlook." required:""`
	Prep  string `short:"p" help:"Intentions for next cycle." required:""`
}

func (c *AddCmd) Run(ctx *Context) error {
	// Validation happens before the store is touched; a bad focus or
	// timestamp never reaches the database.
	focus, when, result := ctx.Validator.ValidateCheckIn(validation.CheckInInput{
		When:  c.When,
		Now:   c.Now,
		Focus: c.Focus,
		Soul:  c.Soul,
		Prep:  c.Prep,
	})
	if err := result.Err(); err != nil {
		return err
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ci, err := ctx.Store.AddCheckIn(models.CheckIn{
		CheckedAt: when,
		Now:       c.Now,
		Focus:     focus,
		Soul:      c.Soul,
		Prep:      c.Prep,
	})
	if err != nil {
		return err
	}

	fmt.Println("✓ Check-in added successfully!")
	fmt.Printf("  ID: %d\n", ci.ID)
	fmt.Printf("  Checked at: %s\n", utils.FormatTimestamp(ci.CheckedAt))
	fmt.Printf("  Now: %s\n", ci.Now)
	fmt.Printf("  Focus: %s\n", ci.Focus)
	fmt.Printf("  Soul: %s\n", ci.Soul)
	fmt.Printf("  Prep: %s\n", ci.Prep)

	return nil
}
