package root

import (
	"log/slog"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/docker/toolview/pkg/cli"
	"github.com/docker/toolview/pkg/invocation"
	"github.com/docker/toolview/pkg/tui"
	"github.com/docker/toolview/pkg/tui/styles"
	"github.com/docker/toolview/pkg/userconfig"
	"github.com/docker/toolview/pkg/watcher"
)

type watchFlags struct {
	noWatch bool
}

func newWatchCmd() *cobra.Command {
	var flags watchFlags

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Open a transcript in the interactive viewer",
		Long:  "Open a JSON or YAML transcript in a full screen viewer that reloads it whenever it changes on disk",
		Example: `  toolview watch session.json
  toolview session.json`,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTranscriptFile,
		RunE:              flags.runWatchCommand,
	}

	cmd.Flags().BoolVar(&flags.noWatch, "no-watch", false, "Do not reload the transcript when it changes")

	return cmd
}

func (f *watchFlags) runWatchCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cli.NewPrinter(cmd.ErrOrStderr())
	path := args[0]

	cfg, err := userconfig.Load()
	if err != nil {
		slog.Warn("Failed to load user config, using defaults", "error", err)
		cfg = &userconfig.Config{}
	}
	settings := cfg.GetSettings()

	if err := applyTheme(settings.Theme); err != nil {
		slog.Warn("Failed to apply theme, using default", "theme", settings.Theme, "error", err)
	}

	invs, err := invocation.Load(ctx, path)
	if err != nil {
		out.PrintError(err)
		return RuntimeError{Err: err}
	}

	m := tui.New(ctx, path, invs, tui.Options{Settings: settings})
	p := tea.NewProgram(m, tea.WithContext(ctx))
	m.SetProgram(p)

	if !f.noWatch {
		fileWatcher := watcher.New(func(string) {
			p.Send(tui.Reload(ctx, path))
		})
		if err := fileWatcher.Watch(path); err != nil {
			slog.Warn("Failed to watch transcript, live reload disabled", "path", path, "error", err)
		}
		defer fileWatcher.Stop()
	}

	if themeFile := userThemeFile(settings.Theme); themeFile != "" {
		ref := settings.Theme
		themeWatcher := watcher.New(func(string) {
			p.Send(tui.ThemeChangedMsg{Ref: ref})
		})
		if err := themeWatcher.Watch(themeFile); err != nil {
			slog.Debug("Not watching theme file", "path", themeFile, "error", err)
		}
		defer themeWatcher.Stop()
	}

	// Cancelling ctx kills the program; that is a normal exit.
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// userThemeFile returns the user theme file behind ref, or "" for built-in
// themes.
func userThemeFile(ref string) string {
	if ref == "" {
		return ""
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(styles.ThemesDir(), ref+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
