package cli

import (
	"time"

	"github.com/julianstephens/nanokata/internal/backup"
	"github.com/julianstephens/nanokata/internal/cycles"
	"github.com/julianstephens/nanokata/internal/logger"
	"github.com/julianstephens/nanokata/internal/metrics"
	"github.com/julianstephens/nanokata/internal/models"
	"github.com/julianstephens/nanokata/internal/storage"
	"github.com/julianstephens/nanokata/internal/utils"
	"github.com/julianstephens/nanokata/internal/validation"
)

// Context carries the shared dependencies into every command. The store is
// constructed once in main and passed down; the location is the single
// timezone every cycle classification uses.
type Context struct {
	Store     storage.Provider
	Location  *time.Location
	Validator *validation.Validator
	Debug     bool
}

// PerformAutomaticBackup creates a backup and silently handles errors so a
// failed snapshot never interrupts the user's workflow.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("automatic backup failed", "error", err)
	}
}

// resolveDay turns a date argument ("today" or YYYY-MM-DD) into an instant
// inside that day in the configured timezone.
func (ctx *Context) resolveDay(date string) (time.Time, error) {
	if date == "" || date == "today" {
		return time.Now().In(ctx.Location), nil
	}
	return utils.ParseDateInLocation(date, ctx.Location)
}

// fetchDay loads one day's check-ins from the store for the streak scan.
func (ctx *Context) fetchDay(start, end time.Time) ([]models.CheckIn, error) {
	return ctx.Store.GetCheckInsForRange(start, end)
}

// dayCheckIns loads all check-ins inside the given instant's day.
func (ctx *Context) dayCheckIns(day time.Time) ([]models.CheckIn, error) {
	return ctx.Store.GetCheckInsForRange(cycles.StartOfDay(day), cycles.EndOfDay(day))
}

// currentStreak computes the streak ending at now.
func (ctx *Context) currentStreak() (int, error) {
	return metrics.CurrentStreak(time.Now().In(ctx.Location), ctx.Location, ctx.fetchDay)
}
