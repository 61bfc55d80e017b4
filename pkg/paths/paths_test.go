package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirs_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, filepath.Join(dir, "config", ".."))
	t.Setenv(DataDirEnv, filepath.Join(dir, "data"))

	assert.Equal(t, dir, GetConfigDir())
	assert.Equal(t, filepath.Join(dir, "data"), GetDataDir())
}

func TestDirs_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(ConfigDirEnv, "")
	t.Setenv(DataDirEnv, "")

	assert.Equal(t, filepath.Join(home, ".config", "toolview"), GetConfigDir())
	assert.Equal(t, filepath.Join(home, ".toolview"), GetDataDir())
}
