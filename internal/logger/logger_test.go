package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: false, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	// Logging through the package helpers must not panic.
	Debug("debug message")
	Info("info message", "key", "value")
	Warn("warn message")
	Error("error message")
}

func TestInitDebugMode(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: true, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("debug message visible in debug mode")
}

func TestHelpersWithNilLogger(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	// Helpers must be safe before Init is called.
	Debug("no-op")
	Info("no-op")
	Warn("no-op")
	Error("no-op")
}
