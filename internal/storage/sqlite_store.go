package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/nanokata/internal/logger"
	"github.com/julianstephens/nanokata/internal/migration"
	"github.com/julianstephens/nanokata/internal/models"
	"github.com/julianstephens/nanokata/internal/utils"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

type SQLiteStore struct {
	path string
	db   *sql.DB
	lock *processLock
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	runner := migration.NewRunner(s.db, s.MigrationsFS())
	applied, err := runner.Apply()
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if applied > 0 {
		logger.Info("database initialized", "path", s.path, "migrations", applied)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'nanokata init' first")
	}

	if err := s.open(); err != nil {
		return err
	}

	runner := migration.NewRunner(s.db, s.MigrationsFS())
	if err := runner.Validate(); err != nil {
		return err
	}

	return nil
}

func (s *SQLiteStore) open() error {
	// Single writer process: refuse to open a database another live nanokata
	// process is already using.
	lock, err := acquireProcessLock(filepath.Dir(s.path))
	if err != nil {
		return err
	}
	s.lock = lock

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		s.lock.release()
		s.lock = nil
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.lock != nil {
		s.lock.release()
		s.lock = nil
	}
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// MigrationsFS exposes the embedded migration files so diagnostics can
// compare the database schema version against the bundled migrations.
func (s *SQLiteStore) MigrationsFS() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}

// AddCheckIn inserts one check-in. A zero CheckedAt means "now": the store
// assigns the current instant, mirroring the column default. The stored
// record, with id and audit timestamps, is returned.
func (s *SQLiteStore) AddCheckIn(ci models.CheckIn) (models.CheckIn, error) {
	if ci.CheckedAt.IsZero() {
		ci.CheckedAt = time.Now().UTC()
	}

	now := time.Now().UTC()
	ci.CreatedAt = now
	ci.UpdatedAt = now

	result, err := s.db.Exec(`
		INSERT INTO check_ins (checked_at, now, focus, soul, prep, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		utils.FormatTimestamp(ci.CheckedAt), ci.Now, string(ci.Focus), ci.Soul, ci.Prep,
		utils.FormatTimestamp(now), utils.FormatTimestamp(now),
	)
	if err != nil {
		return models.CheckIn{}, fmt.Errorf("failed to insert check-in: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.CheckIn{}, fmt.Errorf("failed to read inserted id: %w", err)
	}
	ci.ID = id

	logger.Debug("check-in added", "id", id, "checked_at", utils.FormatTimestamp(ci.CheckedAt), "focus", ci.Focus)
	return ci, nil
}

// GetCheckInsForRange fetches check-ins with checked_at in [start, end]
// inclusive, most recent first. Stored timestamps are ISO-8601 UTC, so the
// range comparison is a plain string comparison.
func (s *SQLiteStore) GetCheckInsForRange(start, end time.Time) ([]models.CheckIn, error) {
	rows, err := s.db.Query(`
		SELECT id, checked_at, now, focus, soul, prep, created_at, updated_at
		FROM check_ins
		WHERE checked_at >= ? AND checked_at <= ?
		ORDER BY checked_at DESC`,
		utils.FormatTimestamp(start), utils.FormatTimestamp(end),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCheckIns(rows)
}

// GetAllCheckIns fetches the full history, most recent first.
func (s *SQLiteStore) GetAllCheckIns() ([]models.CheckIn, error) {
	rows, err := s.db.Query(`
		SELECT id, checked_at, now, focus, soul, prep, created_at, updated_at
		FROM check_ins
		ORDER BY checked_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCheckIns(rows)
}

func (s *SQLiteStore) CountCheckIns() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM check_ins").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListRawTimestamps returns every checked_at value unparsed, for the repair
// tool to inspect.
func (s *SQLiteStore) ListRawTimestamps() ([]RawTimestamp, error) {
	rows, err := s.db.Query("SELECT id, checked_at FROM check_ins ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RawTimestamp
	for rows.Next() {
		var raw RawTimestamp
		if err := rows.Scan(&raw.ID, &raw.CheckedAt); err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, rows.Err()
}

// UpdateCheckedAt rewrites one record's checked_at. Only the repair tool
// uses this; the core never updates check-ins.
func (s *SQLiteStore) UpdateCheckedAt(id int64, checkedAt string) error {
	result, err := s.db.Exec(
		"UPDATE check_ins SET checked_at = ?, updated_at = ? WHERE id = ?",
		checkedAt, utils.FormatTimestamp(time.Now()), id,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("check-in with id %d not found", id)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func scanCheckIns(rows *sql.Rows) ([]models.CheckIn, error) {
	var out []models.CheckIn
	for rows.Next() {
		var (
			ci                                 models.CheckIn
			checkedAt, focus, created, updated string
		)
		if err := rows.Scan(&ci.ID, &checkedAt, &ci.Now, &focus, &ci.Soul, &ci.Prep, &created, &updated); err != nil {
			return nil, err
		}

		// A checked_at that is not an absolute instant must surface as an
		// error for that record, never silently land in cycle 0.
		parsed, err := utils.ParseTimestamp(checkedAt)
		if err != nil {
			return nil, fmt.Errorf("check-in %d has malformed checked_at %q, run 'nanokata repair': %w", ci.ID, checkedAt, err)
		}
		ci.CheckedAt = parsed
		ci.Focus = models.Focus(focus)

		// Audit timestamps are store-managed and unused by the core; legacy
		// rows may carry the sqlite CURRENT_TIMESTAMP format.
		ci.CreatedAt = parseAuditTime(created)
		ci.UpdatedAt = parseAuditTime(updated)

		out = append(out, ci)
	}
	return out, rows.Err()
}

func parseAuditTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
