package quest

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "eternalquest"

// DefaultSaveFile is the save file name inside the data directory.
const DefaultSaveFile = "goals.txt"

// DefaultDataDir returns the OS-appropriate data directory.
//
//   - macOS:   ~/Library/Application Support/eternalquest
//   - Linux:   $XDG_DATA_HOME/eternalquest (fallback ~/.local/share/eternalquest)
//   - Windows: %LOCALAPPDATA%\eternalquest (fallback %APPDATA%\eternalquest)
func DefaultDataDir() string {
	return dataDirForOS(runtime.GOOS)
}

func dataDirForOS(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		for _, env := range []string{"LOCALAPPDATA", "APPDATA"} {
			if dir := os.Getenv(env); dir != "" {
				return filepath.Join(dir, appName)
			}
		}
		return filepath.Join(home, appName)
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, appName)
		}
		return filepath.Join(home, ".local", "share", appName)
	}
}
