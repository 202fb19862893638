package cli

import (
	"fmt"

	"github.com/deployah-dev/stepindicator/internal/config"
	"github.com/deployah-dev/stepindicator/internal/indicator"
	"github.com/deployah-dev/stepindicator/internal/runtime"
	"github.com/spf13/cobra"
)

// IndicatorFlags are the flags describing an indicator on the command line.
// Flags that are set override the indicator file.
type IndicatorFlags struct {
	Steps            int
	Position         int
	Direction        string
	Labels           []string
	Styles           []string
	MarkerTemplate   string
	NoIndicatorLabel bool
}

// AddIndicatorFlags registers the indicator flags on cmd.
func AddIndicatorFlags(cmd *cobra.Command, f *IndicatorFlags) {
	defaults := indicator.DefaultProps()
	flags := cmd.Flags()
	flags.IntVarP(&f.Steps, "steps", "n", defaults.StepCount, "Number of steps")
	flags.IntVarP(&f.Position, "position", "p", defaults.CurrentPosition, "Zero-based current step")
	flags.StringVarP(&f.Direction, "direction", "d", string(defaults.Direction), "Layout direction (horizontal, vertical)")
	flags.StringSliceVar(&f.Labels, "labels", nil, "Comma separated step labels")
	flags.StringArrayVarP(&f.Styles, "style", "s", nil, "Style override as key=value (repeatable)")
	flags.StringVar(&f.MarkerTemplate, "marker-template", "", "Go template for marker content (sprig functions available)")
	flags.BoolVar(&f.NoIndicatorLabel, "no-indicator-label", false, "Hide the step number inside markers")

	_ = cmd.RegisterFlagCompletionFunc("direction", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(indicator.Horizontal), string(indicator.Vertical)}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Props builds indicator props from an optional indicator file and the
// flags that were set on cmd.
func (f *IndicatorFlags) Props(cmd *cobra.Command, file *config.File) (indicator.Props, error) {
	props := indicator.DefaultProps()
	markerTemplate := ""
	var fileStyles map[string]any

	if file != nil {
		var err error
		if props, err = file.Props(); err != nil {
			return props, err
		}
		markerTemplate = file.MarkerTemplate
		fileStyles = file.CustomStyles
	}

	flags := cmd.Flags()
	if flags.Changed("steps") {
		props.StepCount = f.Steps
	}
	if flags.Changed("position") {
		props.CurrentPosition = f.Position
	}
	if flags.Changed("direction") {
		direction, err := indicator.ParseDirection(f.Direction)
		if err != nil {
			return props, err
		}
		props.Direction = direction
	}
	if flags.Changed("labels") {
		props.Labels = f.Labels
	}
	if flags.Changed("no-indicator-label") {
		props.ShowIndicatorLabel = !f.NoIndicatorLabel
	}
	if flags.Changed("marker-template") {
		markerTemplate = f.MarkerTemplate
	}

	flagStyles, err := config.ParseStyleFlags(f.Styles)
	if err != nil {
		return props, err
	}
	if props.CustomStyles, err = config.LayerStyles(fileStyles, flagStyles); err != nil {
		return props, err
	}

	if markerTemplate != "" {
		renderer, err := MarkerRenderer(markerTemplate, props.Labels)
		if err != nil {
			return props, err
		}
		props.RenderStepIndicator = renderer
	}

	if err := props.Validate(); err != nil {
		return props, fmt.Errorf("invalid indicator: %w", err)
	}
	return props, nil
}

// LoadProps builds props from the indicator file configured in the command
// runtime, if any, and the flags.
func (f *IndicatorFlags) LoadProps(cmd *cobra.Command) (indicator.Props, error) {
	var file *config.File
	if rt := runtime.FromRuntime(cmd.Context()); rt != nil {
		var err error
		if file, err = rt.Config(); err != nil {
			return indicator.DefaultProps(), err
		}
	}
	return f.Props(cmd, file)
}
