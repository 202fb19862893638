package styles

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/deployah-dev/stepindicator/internal/cli"
	"github.com/deployah-dev/stepindicator/internal/config"
	"github.com/deployah-dev/stepindicator/internal/logging"
	"github.com/deployah-dev/stepindicator/internal/runtime"
	"github.com/deployah-dev/stepindicator/internal/style"
	"github.com/deployah-dev/stepindicator/internal/ui"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// New creates the styles sub-command for the CLI.
func New() *cobra.Command {
	stylesCommand := &cobra.Command{
		Use:   "styles",
		Short: "Show the resolved style table",
		Long:  `Show every style option with the value it resolves to after the indicator file and --style overrides are applied.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := cmd.Flags().GetString("output")
			if err != nil {
				return fmt.Errorf("failed to get output format: %w", err)
			}

			if !slices.Contains(cli.OutputFormats, outputFormat) {
				return fmt.Errorf("invalid output format: '%s', must be one of: %s", outputFormat, strings.Join(cli.OutputFormats, ", "))
			}

			return nil
		},
		RunE: runStyles,
		Example: `
# Default styles
stepindicator styles

# Styles of an indicator file with one override, as YAML
stepindicator styles -f checkout.yaml --style labelSize=15 -o yaml`,
	}

	stylesCommand.Flags().StringP("output", "o", cli.OutputFormatTable, "Output format: table, json, yaml")
	stylesCommand.Flags().StringArrayP("style", "s", nil, "Style override as key=value (repeatable)")

	return stylesCommand
}

func runStyles(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger(cmd)

	outputFormat, _ := cmd.Flags().GetString("output")
	pairs, _ := cmd.Flags().GetStringArray("style")

	var fileStyles map[string]any
	if rt := runtime.FromRuntime(cmd.Context()); rt != nil {
		file, err := rt.Config()
		if err != nil {
			return err
		}
		if file != nil {
			fileStyles = file.CustomStyles
		}
	}

	flagStyles, err := config.ParseStyleFlags(pairs)
	if err != nil {
		return err
	}
	overrides, err := config.LayerStyles(fileStyles, flagStyles)
	if err != nil {
		return err
	}

	resolved, err := style.Resolve(overrides)
	if err != nil {
		return err
	}
	if err := resolved.Validate(); err != nil {
		logger.Warn("Resolved styles contain invalid values", "err", err)
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case cli.OutputFormatTable:
		rows, err := cli.StyleRows(resolved)
		if err != nil {
			return err
		}
		fmt.Fprint(out, ui.NewTable().SetColumns(cli.StyleColumns()).SetRows(rows).Render())
	case cli.OutputFormatJSON:
		data, err := json.MarshalIndent(resolved, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize JSON: %w", err)
		}
		printColorized(cmd, append(data, '\n'), "json")
	case cli.OutputFormatYAML:
		data, err := yaml.Marshal(resolved)
		if err != nil {
			return fmt.Errorf("failed to serialize YAML: %w", err)
		}
		printColorized(cmd, data, "yaml")
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}

	return nil
}

// printColorized falls back to plain text when highlighting fails.
func printColorized(cmd *cobra.Command, data []byte, language string) {
	colorized, err := cli.Colorize(data, language)
	if err != nil {
		colorized = string(data)
	}
	fmt.Fprint(cmd.OutOrStdout(), colorized)
}
