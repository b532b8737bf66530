package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/nanokata/internal/backup"
	"github.com/julianstephens/nanokata/internal/migration"
	"github.com/julianstephens/nanokata/internal/models"
	"github.com/julianstephens/nanokata/internal/storage"
	"github.com/julianstephens/nanokata/internal/utils"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkMigrationsComplete(ctx); err != nil {
			fmt.Printf("❌ Migrations complete: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Migrations complete: OK\n")
		}
	} else {
		fmt.Printf("⊘ Migrations complete: SKIPPED (database not reachable)\n")
	}

	// Missing backups are worth a nudge, not a failure.
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if dbReachable {
		if err := checkTimestampIntegrity(ctx); err != nil {
			fmt.Printf("❌ Timestamp integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Timestamp integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Timestamp integrity: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkFocusValues(ctx); err != nil {
			fmt.Printf("❌ Focus values: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Focus values: OK\n")
		}
	} else {
		fmt.Printf("⊘ Focus values: SKIPPED (database not reachable)\n")
	}

	if err := checkClockTimezone(ctx); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return nil
	}

	runner := migration.NewRunner(sqliteStore.GetDB(), sqliteStore.MigrationsFS())

	currentVersion, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}
	return nil
}

func checkMigrationsComplete(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return nil
	}

	runner := migration.NewRunner(sqliteStore.GetDB(), sqliteStore.MigrationsFS())

	currentVersion, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", currentVersion, latestVersion)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'nanokata backup create'")
	}
	return nil
}

// checkTimestampIntegrity scans every raw checked_at value and reports those
// that would not parse as an absolute instant.
func checkTimestampIntegrity(ctx *Context) error {
	raws, err := ctx.Store.ListRawTimestamps()
	if err != nil {
		return fmt.Errorf("failed to list timestamps: %w", err)
	}

	malformed := 0
	for _, raw := range raws {
		if _, err := utils.ParseTimestamp(raw.CheckedAt); err != nil {
			malformed++
		}
	}
	if malformed > 0 {
		return fmt.Errorf("found %d check-in(s) with malformed timestamps, run 'nanokata repair'", malformed)
	}
	return nil
}

func checkFocusValues(ctx *Context) error {
	checkIns, err := ctx.Store.GetAllCheckIns()
	if err != nil {
		return fmt.Errorf("failed to load check-ins: %w", err)
	}

	invalid := 0
	for _, ci := range checkIns {
		if _, err := models.ParseFocus(string(ci.Focus)); err != nil {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("found %d check-in(s) with unknown focus values", invalid)
	}
	return nil
}

func checkClockTimezone(ctx *Context) error {
	now := time.Now().In(ctx.Location)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
