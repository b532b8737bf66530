package cli

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/nanokata/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	// Release the database before snapshotting it.
	if err := ctx.Store.Close(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.Create()
	if err != nil {
		return err
	}

	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}

	fmt.Printf("Backups in %s:\n\n", mgr.BackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  %d bytes\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), b.Size)
	}

	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if err := mgr.Restore(c.Path); err != nil {
		return err
	}
	fmt.Printf("Restored database from %s\n", c.Path)
	return nil
}
