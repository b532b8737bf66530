package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func createTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nanokata.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE check_ins (id INTEGER PRIMARY KEY, checked_at TEXT NOT NULL)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO check_ins (checked_at) VALUES ('2025-11-18T09:10:00.000Z')`); err != nil {
		t.Fatalf("failed to insert row: %v", err)
	}

	return dbPath
}

func TestCreateAndList(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup file is empty")
	}
}

func TestCreate_MissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error when database does not exist")
	}
}

func TestBackupIsValidDatabase(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open backup: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM check_ins").Scan(&count); err != nil {
		t.Fatalf("backup not queryable: %v", err)
	}
	if count != 1 {
		t.Errorf("backup has %d rows, want 1", count)
	}
}

func TestRestore(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Mutate the live database after the backup.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO check_ins (checked_at) VALUES ('2025-11-18T14:05:00.000Z')`); err != nil {
		t.Fatalf("failed to insert row: %v", err)
	}
	db.Close()

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	restored, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open restored database: %v", err)
	}
	defer restored.Close()

	var count int
	if err := restored.QueryRow("SELECT COUNT(*) FROM check_ins").Scan(&count); err != nil {
		t.Fatalf("restored database not queryable: %v", err)
	}
	if count != 1 {
		t.Errorf("restored database has %d rows, want 1 (pre-mutation state)", count)
	}
}

func TestRestore_InvalidBackup(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("not a sqlite file"), 0600); err != nil {
		t.Fatalf("failed to write bogus file: %v", err)
	}

	if err := mgr.Restore(bogus); err == nil {
		t.Error("expected error restoring an invalid backup")
	}
}
