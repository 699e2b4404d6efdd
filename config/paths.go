package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "mittrack"

// dataDirectory returns the platform-conventional per-user data directory:
// XDG_DATA_HOME (or ~/.local/share) on Linux, ~/Library/Application Support
// on macOS, %LOCALAPPDATA% on Windows.
func dataDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return dir
		}
		return filepath.Join(home, "AppData", "Local")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support")
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir
		}
		return filepath.Join(home, ".local", "share")
	}
}

// DefaultDatabasePath is where the sqlite file lives when DATABASE_PATH is
// not set.
func DefaultDatabasePath() string {
	return filepath.Join(dataDirectory(), appDirName, "data.db")
}
