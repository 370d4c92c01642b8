package quest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataDirMacOS(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "eternalquest"), dataDirForOS("darwin"))
}

func TestDataDirLinux(t *testing.T) {
	home, _ := os.UserHomeDir()

	t.Setenv("XDG_DATA_HOME", "")
	assert.Equal(t, filepath.Join(home, ".local", "share", "eternalquest"), dataDirForOS("linux"))

	t.Setenv("XDG_DATA_HOME", "/custom/data")
	assert.Equal(t, filepath.Join("/custom/data", "eternalquest"), dataDirForOS("linux"))
}

func TestDataDirWindows(t *testing.T) {
	t.Setenv("LOCALAPPDATA", `C:\Users\test\AppData\Local`)
	assert.Equal(t, filepath.Join(`C:\Users\test\AppData\Local`, "eternalquest"), dataDirForOS("windows"))

	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("APPDATA", `C:\Users\test\AppData\Roaming`)
	assert.Equal(t, filepath.Join(`C:\Users\test\AppData\Roaming`, "eternalquest"), dataDirForOS("windows"))
}
