package constants

const (
	AppName           = "nanokata"
	DefaultConfigPath = "~/.config/nanokata/nanokata.db"
	Version           = "v0.3.0"

	// LockfileName is the name of the single-process guard file kept next to
	// the database.
	LockfileName = "nanokata.lock"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "nanokata-"
	BackupFileSuffix = ".db"
)
