package root

import (
	"log/slog"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/docker/toolview/pkg/cli"
	"github.com/docker/toolview/pkg/invocation"
	"github.com/docker/toolview/pkg/tui/components/invocations"
	"github.com/docker/toolview/pkg/userconfig"
)

type renderFlags struct {
	plain   bool
	noColor bool
	width   int
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a transcript once and exit",
		Long:  "Render the tool invocations of a JSON or YAML transcript to standard output",
		Example: `  toolview render session.json
  toolview render --plain session.yaml > session.md`,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTranscriptFile,
		RunE:              flags.runRenderCommand,
	}

	cmd.Flags().BoolVar(&flags.plain, "plain", false, "Print a plain text outline instead of styled blocks")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Strip colors and styles from the output")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Output width in columns (default: terminal width, or 80)")

	return cmd
}

func (f *renderFlags) runRenderCommand(cmd *cobra.Command, args []string) (err error) {
	ctx, span := otel.Tracer("toolview/cmd").Start(cmd.Context(), "render")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "render failed")
		}
		span.End()
	}()

	out := cli.NewPrinter(cmd.OutOrStdout())
	path := args[0]
	span.SetAttributes(attribute.String("path", path), attribute.Bool("plain", f.plain))

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

	blocks := invocations.Build(invs, settings.HiddenTools...)
	span.SetAttributes(attribute.Int("blocks", len(blocks)))

	if f.plain {
		out.Print(invocations.PlainText(blocks))
		return nil
	}

	cols, rows := settings.ThumbnailSize()
	width := f.width
	if width <= 0 {
		width = cli.TerminalWidth(cmd.OutOrStdout(), invocations.DefaultWidth)
	}

	view := invocations.Render(blocks, invocations.RenderOptions{
		Width:         width,
		ThumbnailCols: cols,
		ThumbnailRows: rows,
	}).View
	if f.noColor || !cli.IsTerminal(cmd.OutOrStdout()) {
		view = ansi.Strip(view)
	}

	out.Println(view)
	return nil
}
