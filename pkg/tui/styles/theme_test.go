package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	require.NotNil(t, theme)

	assert.Equal(t, 1, theme.Version)
	assert.Equal(t, "Default", theme.Name)
	assert.Equal(t, DefaultThemeRef, theme.Ref)
	assert.Equal(t, "#7AA2F7", theme.Colors.Accent)
	assert.NotEmpty(t, theme.Colors.Success)
	assert.NotEmpty(t, theme.Colors.Separator)
}

func TestLoadTheme_Builtin(t *testing.T) {
	t.Parallel()

	theme, err := loadTheme("light", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "light", theme.Ref)
	assert.Equal(t, "Light", theme.Name)
	assert.Equal(t, "#2E7DE9", theme.Colors.Accent)
}

func TestLoadTheme_EmptyRefIsDefault(t *testing.T) {
	t.Parallel()

	theme, err := loadTheme("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultThemeRef, theme.Ref)
}

func TestLoadTheme_UserOverrideMergesOntoDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.yml"), []byte("colors:\n  accent: \"#FF0000\"\n"), 0o644))

	theme, err := loadTheme("mine", dir)
	require.NoError(t, err)

	assert.Equal(t, "mine", theme.Name)
	assert.Equal(t, "#FF0000", theme.Colors.Accent)
	assert.Equal(t, DefaultTheme().Colors.Success, theme.Colors.Success)
}

func TestLoadTheme_UserFileShadowsBuiltin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "light.yaml"), []byte("name: Mine\ncolors:\n  accent: \"39\"\n"), 0o644))

	theme, err := loadTheme("light", dir)
	require.NoError(t, err)
	assert.Equal(t, "Mine", theme.Name)
	assert.Equal(t, "39", theme.Colors.Accent)
}

func TestLoadTheme_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := loadTheme("missing", dir)
	require.Error(t, err)

	_, err = loadTheme("../etc/passwd", dir)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("colors: [\n"), 0o644))
	_, err = loadTheme("broken", dir)
	require.Error(t, err)
}

func TestMergeTheme_KeepsBaseForEmptyFields(t *testing.T) {
	t.Parallel()

	base := DefaultTheme()
	merged := mergeTheme(base, &Theme{Colors: ThemeColors{Error: "#000000"}})

	assert.Equal(t, "#000000", merged.Colors.Error)
	assert.Equal(t, base.Colors.Accent, merged.Colors.Accent)
	assert.Equal(t, base.Name, merged.Name)
	assert.Equal(t, base.Version, merged.Version)
}
