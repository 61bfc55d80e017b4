package paths

import (
	"os"
	"path/filepath"
)

const appDir = "toolview"

// Environment variables that relocate toolview's directories.
const (
	ConfigDirEnv = "TOOLVIEW_CONFIG_DIR"
	DataDirEnv   = "TOOLVIEW_DATA_DIR"
)

// GetConfigDir returns the directory holding toolview's config.yaml.
//
// If the home directory cannot be determined, it falls back to a directory
// under the system temporary directory.
func GetConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return filepath.Clean(dir)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Clean(filepath.Join(os.TempDir(), "."+appDir+"-config"))
	}
	return filepath.Clean(filepath.Join(homeDir, ".config", appDir))
}

// GetDataDir returns the directory for logs, themes and opened images.
func GetDataDir() string {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return filepath.Clean(dir)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Clean(filepath.Join(os.TempDir(), "."+appDir))
	}
	return filepath.Clean(filepath.Join(homeDir, "."+appDir))
}
