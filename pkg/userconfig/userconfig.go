// Package userconfig provides user-level configuration for toolview.
// This configuration is stored in ~/.config/toolview/config.yaml.
package userconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/natefinch/atomic"

	"github.com/docker/toolview/pkg/paths"
)

// ImageClickAction is what happens when a thumbnail is clicked.
type ImageClickAction string

const (
	// ImageClickCopy copies the image's data URI to the clipboard.
	ImageClickCopy ImageClickAction = "copy"
	// ImageClickOpen writes the image to a file and opens it.
	ImageClickOpen ImageClickAction = "open"
)

const (
	DefaultThumbnailWidth  = 32
	DefaultThumbnailHeight = 8
)

// Settings represents global user settings
type Settings struct {
	// Theme is the theme reference (e.g., "default", "light").
	// Theme files are loaded from ~/.toolview/themes/<theme>.yaml
	Theme string `yaml:"theme,omitempty"`
	// HiddenTools lists tools whose invocations are never shown, on top of
	// pause_execution.
	HiddenTools []string `yaml:"hidden_tools,omitempty"`
	// ImageClick is "copy" or "open".
	ImageClick ImageClickAction `yaml:"image_click,omitempty"`
	// ThumbnailWidth and ThumbnailHeight bound thumbnails, in cells.
	ThumbnailWidth  int `yaml:"thumbnail_width,omitempty"`
	ThumbnailHeight int `yaml:"thumbnail_height,omitempty"`
}

// CurrentVersion is the current version of the user config format
const CurrentVersion = "v1"

// Config represents the user-level toolview configuration
type Config struct {
	// Version is the config format version
	Version string `yaml:"version,omitempty"`
	// Settings contains global user settings
	Settings *Settings `yaml:"settings,omitempty"`
}

// Default returns the configuration written by "toolview config init".
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Settings: &Settings{
			Theme:           "default",
			ImageClick:      ImageClickCopy,
			ThumbnailWidth:  DefaultThumbnailWidth,
			ThumbnailHeight: DefaultThumbnailHeight,
		},
	}
}

// Path returns the path to the config file
func Path() string {
	return filepath.Join(paths.GetConfigDir(), "config.yaml")
}

// Load loads the user configuration from the config file.
// A missing file yields an empty configuration.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	s := c.GetSettings()

	if s.ImageClick != "" && !slices.Contains([]ImageClickAction{ImageClickCopy, ImageClickOpen}, s.ImageClick) {
		return fmt.Errorf("image_click must be %q or %q, got %q", ImageClickCopy, ImageClickOpen, s.ImageClick)
	}
	if s.ThumbnailWidth < 0 || s.ThumbnailHeight < 0 {
		return errors.New("thumbnail size cannot be negative")
	}
	return nil
}

// Save saves the configuration to the config file
func (c *Config) Save() error {
	return c.saveTo(Path())
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Ensure version is always set to current version when saving
	c.Version = CurrentVersion

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return atomic.WriteFile(path, bytes.NewReader(data))
}

// Init writes the default configuration unless a config file already
// exists. It reports whether a file was written.
func Init() (bool, error) {
	return initAt(Path())
}

func initAt(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to check config file: %w", err)
	}

	if err := Default().saveTo(path); err != nil {
		return false, err
	}
	return true, nil
}

// GetSettings returns the global settings, or an empty Settings if not set
func (c *Config) GetSettings() *Settings {
	if c.Settings == nil {
		return &Settings{}
	}
	return c.Settings
}

// ImageClickAction returns the configured click action, copy by default.
func (s *Settings) ImageClickAction() ImageClickAction {
	if s.ImageClick == "" {
		return ImageClickCopy
	}
	return s.ImageClick
}

// ThumbnailSize returns the configured thumbnail bounds with defaults filled in.
func (s *Settings) ThumbnailSize() (cols, rows int) {
	cols, rows = s.ThumbnailWidth, s.ThumbnailHeight
	if cols <= 0 {
		cols = DefaultThumbnailWidth
	}
	if rows <= 0 {
		rows = DefaultThumbnailHeight
	}
	return cols, rows
}
