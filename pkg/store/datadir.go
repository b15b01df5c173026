package store

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataDir returns the OS-appropriate default data directory for
// almanac. ALMANAC_DIR overrides everything.
//
//   - macOS:   ~/Library/Application Support/almanac
//   - Linux:   $XDG_DATA_HOME/almanac (fallback ~/.local/share/almanac)
//   - Windows: %LOCALAPPDATA%\almanac (fallback %APPDATA%\almanac)
func DefaultDataDir() string {
	if dir := os.Getenv("ALMANAC_DIR"); dir != "" {
		return dir
	}
	return defaultDataDirForOS(runtime.GOOS)
}

func defaultDataDirForOS(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "almanac")
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, "almanac")
		}
		if dir := os.Getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, "almanac")
		}
		return filepath.Join(home, "almanac")
	default: // linux, freebsd, etc.
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, "almanac")
		}
		return filepath.Join(home, ".local", "share", "almanac")
	}
}
