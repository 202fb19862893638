package render

import (
	"fmt"

	"github.com/deployah-dev/stepindicator/internal/cli"
	"github.com/deployah-dev/stepindicator/internal/indicator"
	"github.com/deployah-dev/stepindicator/internal/logging"
	"github.com/deployah-dev/stepindicator/internal/style"
	"github.com/deployah-dev/stepindicator/internal/tui"
	"github.com/deployah-dev/stepindicator/internal/ui"
	"github.com/spf13/cobra"
)

// rowsPerStep is the default height of a vertical indicator.
const rowsPerStep = 4

// New creates the render sub-command for the CLI.
func New() *cobra.Command {
	var flags cli.IndicatorFlags

	renderCommand := &cobra.Command{
		Use:   "render",
		Short: "Print a step indicator once",
		Long:  `Print the settled frame of a step indicator, for scripts and shell prompts.`,
		Example: `
# Third of four labelled steps, 60 columns wide
stepindicator render --steps 4 --position 2 --labels Cart,Address,Payment,Done --width 60

# Vertical indicator described by a file
stepindicator render -f checkout.yaml --direction vertical --height 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, &flags)
		},
	}

	cli.AddIndicatorFlags(renderCommand, &flags)
	renderCommand.Flags().Int("width", 0, "Width in columns, defaults to the terminal width")
	renderCommand.Flags().Int("height", 0, "Height in rows of a vertical indicator, defaults to 4 rows per step")
	renderCommand.Flags().String("background", "#000000", "Color translucent colors are blended onto")

	return renderCommand
}

func runRender(cmd *cobra.Command, flags *cli.IndicatorFlags) error {
	logger := logging.GetLogger(cmd)

	props, err := flags.LoadProps(cmd)
	if err != nil {
		return err
	}

	width, _ := cmd.Flags().GetInt("width")
	if width <= 0 {
		width = ui.TerminalWidth()
	}
	height, _ := cmd.Flags().GetInt("height")
	if height <= 0 {
		height = props.StepCount * rowsPerStep
	}

	background, _ := cmd.Flags().GetString("background")
	bg, err := style.ParseColor(background)
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}

	ind, err := indicator.New(props, indicator.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create indicator: %w", err)
	}

	logger.Debug("Rendering indicator", "steps", props.StepCount, "position", props.Position(), "width", width, "height", height)
	out := tui.Snapshot(ind, tui.NewRenderer(tui.WithBackground(bg)), width, height)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
