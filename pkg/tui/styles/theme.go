package styles

import (
	"cmp"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"charm.land/lipgloss/v2"
	"github.com/goccy/go-yaml"

	"github.com/docker/toolview/pkg/paths"
)

//go:embed themes/*.yaml
var builtinThemes embed.FS

// DefaultThemeRef is the reference for the built-in default theme.
const DefaultThemeRef = "default"

var currentTheme atomic.Pointer[Theme]

// ThemesDir returns the directory where user themes are stored.
func ThemesDir() string {
	return filepath.Join(paths.GetDataDir(), "themes")
}

// Theme is a color theme. Unset colors fall back to the default theme.
type Theme struct {
	Version int         `yaml:"version,omitempty"`
	Name    string      `yaml:"name,omitempty"`
	Ref     string      `yaml:"-"`
	Colors  ThemeColors `yaml:"colors,omitempty"`
}

// ThemeColors holds hex ("#7AA2F7") or ANSI ("39") color strings.
type ThemeColors struct {
	Background      string `yaml:"background,omitempty"`
	BackgroundAlt   string `yaml:"background_alt,omitempty"`
	TextPrimary     string `yaml:"text_primary,omitempty"`
	TextSecondary   string `yaml:"text_secondary,omitempty"`
	TextMuted       string `yaml:"text_muted,omitempty"`
	Accent          string `yaml:"accent,omitempty"`
	Success         string `yaml:"success,omitempty"`
	Error           string `yaml:"error,omitempty"`
	Warning         string `yaml:"warning,omitempty"`
	Info            string `yaml:"info,omitempty"`
	BorderSecondary string `yaml:"border_secondary,omitempty"`
	Separator       string `yaml:"separator,omitempty"`
}

// DefaultTheme returns the built-in default theme.
func DefaultTheme() *Theme {
	t, err := decodeBuiltin(DefaultThemeRef)
	if err != nil {
		panic(fmt.Sprintf("embedded default theme is invalid: %v", err))
	}
	return t
}

func decodeBuiltin(ref string) (*Theme, error) {
	data, err := builtinThemes.ReadFile("themes/" + ref + ".yaml")
	if err != nil {
		return nil, err
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", ref, err)
	}
	t.Ref = ref
	return &t, nil
}

// LoadTheme resolves a theme reference: a built-in theme name or the name
// of a YAML file in ThemesDir. User files win over built-ins.
func LoadTheme(ref string) (*Theme, error) {
	return loadTheme(ref, ThemesDir())
}

func loadTheme(ref, dir string) (*Theme, error) {
	ref = cmp.Or(ref, DefaultThemeRef)
	if strings.ContainsAny(ref, `/\`) || strings.Contains(ref, "..") {
		return nil, fmt.Errorf("invalid theme ref %q: must not contain path separators or traversal", ref)
	}

	override, err := readUserTheme(ref, dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if override == nil {
		override, err = decodeBuiltin(ref)
		if err != nil {
			return nil, fmt.Errorf("theme %q not found", ref)
		}
	}

	merged := mergeTheme(DefaultTheme(), override)
	merged.Ref = ref
	merged.Name = cmp.Or(override.Name, ref)
	return merged, nil
}

func readUserTheme(ref, dir string) (*Theme, error) {
	data, err := os.ReadFile(filepath.Join(dir, ref+".yaml"))
	if errors.Is(err, os.ErrNotExist) {
		data, err = os.ReadFile(filepath.Join(dir, ref+".yml"))
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", ref, err)
	}
	return &t, nil
}

func mergeTheme(base, override *Theme) *Theme {
	result := *base
	if override.Version != 0 {
		result.Version = override.Version
	}
	result.Name = cmp.Or(override.Name, base.Name)

	b, o := base.Colors, override.Colors
	result.Colors = ThemeColors{
		Background:      cmp.Or(o.Background, b.Background),
		BackgroundAlt:   cmp.Or(o.BackgroundAlt, b.BackgroundAlt),
		TextPrimary:     cmp.Or(o.TextPrimary, b.TextPrimary),
		TextSecondary:   cmp.Or(o.TextSecondary, b.TextSecondary),
		TextMuted:       cmp.Or(o.TextMuted, b.TextMuted),
		Accent:          cmp.Or(o.Accent, b.Accent),
		Success:         cmp.Or(o.Success, b.Success),
		Error:           cmp.Or(o.Error, b.Error),
		Warning:         cmp.Or(o.Warning, b.Warning),
		Info:            cmp.Or(o.Info, b.Info),
		BorderSecondary: cmp.Or(o.BorderSecondary, b.BorderSecondary),
		Separator:       cmp.Or(o.Separator, b.Separator),
	}
	return &result
}

// CurrentTheme returns the theme applied last.
func CurrentTheme() *Theme {
	if t := currentTheme.Load(); t != nil {
		return t
	}
	return DefaultTheme()
}

// ApplyTheme updates every color and style variable from theme. Rendered
// output cached by callers must be dropped afterwards.
func ApplyTheme(theme *Theme) {
	if theme == nil {
		theme = DefaultTheme()
	}
	currentTheme.Store(theme)

	c := theme.Colors
	Background = lipgloss.Color(c.Background)
	BackgroundAlt = lipgloss.Color(c.BackgroundAlt)
	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)
	Accent = lipgloss.Color(c.Accent)
	Success = lipgloss.Color(c.Success)
	Error = lipgloss.Color(c.Error)
	Warning = lipgloss.Color(c.Warning)
	Info = lipgloss.Color(c.Info)
	BorderSecondary = lipgloss.Color(c.BorderSecondary)
	Separator = lipgloss.Color(c.Separator)

	rebuildStyles()
}

func init() {
	ApplyTheme(DefaultTheme())
}
