package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/nanokata/internal/constants"
	"github.com/julianstephens/nanokata/internal/logger"
)

// processLock is a pid lockfile next to the database. The dashboard runs
// single-user and single-process; the lock turns a second concurrent process
// into a clear error instead of interleaved writes.
type processLock struct {
	path     string
	instance string
}

// lockfile format: pid|instance-uuid
func acquireProcessLock(dir string) (*processLock, error) {
	path := filepath.Join(dir, constants.LockfileName)

	if content, err := os.ReadFile(path); err == nil {
		pid, instance, parseErr := parseLockfile(string(content))
		if parseErr != nil {
			// A malformed lockfile is treated as stale.
			logger.Warn("replacing malformed lockfile", "path", path, "error", parseErr)
		} else if pid != os.Getpid() && processAlive(pid) {
			return nil, fmt.Errorf("another %s process (pid %d) is using this database", constants.AppName, pid)
		} else if pid != os.Getpid() {
			logger.Debug("replacing stale lockfile", "path", path, "pid", pid, "instance", instance)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read lockfile %q: %w", path, err)
	}

	lock := &processLock{
		path:     path,
		instance: uuid.New().String(),
	}
	content := fmt.Sprintf("%d|%s", os.Getpid(), lock.instance)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile %q: %w", path, err)
	}

	return lock, nil
}

func (l *processLock) release() {
	content, err := os.ReadFile(l.path)
	if err != nil {
		return
	}
	// Only remove a lock this instance wrote.
	_, instance, err := parseLockfile(string(content))
	if err != nil || instance != l.instance {
		return
	}
	if err := os.Remove(l.path); err != nil {
		logger.Warn("failed to remove lockfile", "path", l.path, "error", err)
	}
}

func parseLockfile(content string) (pid int, instance string, err error) {
	parts := strings.Split(strings.TrimSpace(content), "|")
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("lockfile is malformed")
	}
	pid, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", fmt.Errorf("invalid process ID in lockfile")
	}
	if strings.TrimSpace(parts[1]) == "" {
		return 0, "", fmt.Errorf("instance id in lockfile is empty")
	}
	return pid, parts[1], nil
}

func processAlive(pid int) bool {
	proc, err := ps.FindProcess(pid)
	return err == nil && proc != nil
}
