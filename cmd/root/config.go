package root

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/docker/toolview/pkg/cli"
	"github.com/docker/toolview/pkg/tui/styles"
	"github.com/docker/toolview/pkg/userconfig"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user configuration",
		Long:  "View and manage user-level toolview configuration stored in ~/.config/toolview/config.yaml",
		Example: `  # Show the effective settings
  toolview config show

  # Show the config file as YAML
  toolview config show --yaml

  # Show the path to the config file
  toolview config path

  # Write a config file with the default settings
  toolview config init`,
		GroupID: "advanced",
		RunE:    runConfigShowCommand,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Long:  "Display the effective settings, or the config file in YAML format with --yaml",
		Args:  cobra.NoArgs,
		RunE:  runConfigShowCommand,
	}
	cmd.Flags().Bool("yaml", false, "Print the config file as YAML")
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the path to the config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigPathCommand,
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE:  runConfigInitCommand,
	}
}

func runConfigShowCommand(cmd *cobra.Command, _ []string) error {
	out := cli.NewPrinter(cmd.OutOrStdout())

	config, err := userconfig.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		data, err := yaml.MarshalWithOptions(config, yaml.IndentSequence(true), yaml.UseSingleQuote(false))
		if err != nil {
			return fmt.Errorf("failed to format config: %w", err)
		}
		out.Print(string(data))
		return nil
	}

	settings := config.GetSettings()
	cols, rows := settings.ThumbnailSize()

	out.PrintHeader("Settings")
	out.PrintSetting("theme", cmp.Or(settings.Theme, styles.DefaultThemeRef), settings.Theme == "")
	out.PrintSetting("image_click", settings.ImageClickAction(), settings.ImageClick == "")
	out.PrintSetting("thumbnail_width", cols, settings.ThumbnailWidth <= 0)
	out.PrintSetting("thumbnail_height", rows, settings.ThumbnailHeight <= 0)
	out.PrintSetting("hidden_tools", strings.Join(settings.HiddenTools, ", "), len(settings.HiddenTools) == 0)
	return nil
}

func runConfigPathCommand(cmd *cobra.Command, _ []string) error {
	out := cli.NewPrinter(cmd.OutOrStdout())
	out.Println(userconfig.Path())
	return nil
}

func runConfigInitCommand(cmd *cobra.Command, _ []string) error {
	out := cli.NewPrinter(cmd.OutOrStdout())

	created, err := userconfig.Init()
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if !created {
		out.Printf("Config file already exists at %s\n", userconfig.Path())
		return nil
	}

	out.Printf("Wrote default config to %s\n", userconfig.Path())
	return nil
}
