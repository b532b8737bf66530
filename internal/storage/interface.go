package storage

import (
	"time"

	"github.com/julianstephens/nanokata/internal/models"
)

// RawTimestamp is an unparsed checked_at value, exposed for the offline
// repair tool.
type RawTimestamp struct {
	ID        int64
	CheckedAt string
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Check-ins
	AddCheckIn(models.CheckIn) (models.CheckIn, error)
	GetCheckInsForRange(start, end time.Time) ([]models.CheckIn, error)
	GetAllCheckIns() ([]models.CheckIn, error)
	CountCheckIns() (int, error)

	// Maintenance
	ListRawTimestamps() ([]RawTimestamp, error)
	UpdateCheckedAt(id int64, checkedAt string) error

	// Utils
	GetConfigPath() string
}
