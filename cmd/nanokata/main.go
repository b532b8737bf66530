package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/nanokata/internal/cli"
	"github.com/julianstephens/nanokata/internal/constants"
	"github.com/julianstephens/nanokata/internal/errors"
	"github.com/julianstephens/nanokata/internal/logger"
	"github.com/julianstephens/nanokata/internal/storage"
	"github.com/julianstephens/nanokata/internal/utils"
	"github.com/julianstephens/nanokata/internal/validation"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Database file path." type:"path" default:"${config_path}"`
	Timezone string `help:"IANA timezone for cycle classification (e.g. America/New_York)." default:"Local"`
	Debug    bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize nanokata storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Add    cli.AddCmd    `cmd:"" help:"Record a check-in."`
	Day    cli.DayCmd    `cmd:"" help:"Show cycle coverage for a day."`
	List   cli.ListCmd   `cmd:"" help:"List recent check-ins."`
	Streak cli.StreakCmd `cmd:"" help:"Show the current full-density streak."`
	Repair cli.RepairCmd `cmd:"" help:"Normalize legacy timestamps."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit dashboard built around sixteen 90-minute daily cycles"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		errors.Fatal(err)
	}

	store := storage.NewSQLiteStore(CLI.Config)
	defer store.Close()

	appCtx := &cli.Context{
		Store:     store,
		Location:  loc,
		Validator: validation.New(),
		Debug:     CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
