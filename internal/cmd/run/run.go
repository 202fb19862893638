package run

import (
	"fmt"

	"github.com/deployah-dev/stepindicator/internal/cli"
	"github.com/deployah-dev/stepindicator/internal/indicator"
	"github.com/deployah-dev/stepindicator/internal/logging"
	"github.com/deployah-dev/stepindicator/internal/tui"
	"github.com/deployah-dev/stepindicator/internal/ui"
	"github.com/spf13/cobra"
)

// New creates the run sub-command for the CLI.
func New() *cobra.Command {
	var flags cli.IndicatorFlags

	runCommand := &cobra.Command{
		Use:   "run",
		Short: "Show an interactive step indicator",
		Long: `Show an interactive step indicator. Arrow keys or h/l move between steps,
digits jump to a step, clicking a marker or label selects it and q quits.`,
		Example: `
# Five steps, starting on the second
stepindicator run --position 1

# Labelled vertical indicator from a file with a style override
stepindicator run -f checkout.yaml --direction vertical --style currentStepLabelColor=#fe7013

# Check marks for finished steps
stepindicator run --marker-template '{{ if eq .Status "finished" }}✓{{ else }}{{ .Number }}{{ end }}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndicator(cmd, &flags)
		},
	}

	cli.AddIndicatorFlags(runCommand, &flags)
	runCommand.Flags().String("title", "", "Heading shown above the indicator")

	return runCommand
}

func runIndicator(cmd *cobra.Command, flags *cli.IndicatorFlags) error {
	logger := logging.GetObservableLogger(cmd)

	if !ui.IsTerminal() {
		return fmt.Errorf("run needs an interactive terminal, use 'stepindicator render' for static output")
	}

	props, err := flags.LoadProps(cmd)
	if err != nil {
		return err
	}
	title, _ := cmd.Flags().GetString("title")

	ind, err := indicator.New(props, indicator.WithLogger(logger.Logger()))
	if err != nil {
		return fmt.Errorf("failed to create indicator: %w", err)
	}

	model, err := tui.NewModel(ind,
		tui.WithTitle(title),
		tui.WithObservableLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Debug("Starting interactive indicator", "steps", props.StepCount, "position", props.Position())
	if err := tui.Run(cmd.Context(), model); err != nil {
		return err
	}

	var selections float64
	if collector := logger.Collector(); collector != nil {
		selections = collector.Total(tui.MetricStepsSelected)
	}
	logger.Info(cli.RunSummary(model.Position(), props.StepCount, model.Frames()), "selections", selections)
	return nil
}
