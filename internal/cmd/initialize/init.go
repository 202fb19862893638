package initialize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/deployah-dev/stepindicator/internal/config"
	"github.com/deployah-dev/stepindicator/internal/config/schema"
	"github.com/deployah-dev/stepindicator/internal/indicator"
	"github.com/deployah-dev/stepindicator/internal/logging"
	"github.com/deployah-dev/stepindicator/internal/tui"
	"github.com/deployah-dev/stepindicator/internal/ui"
	"github.com/deployah-dev/stepindicator/internal/util"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// Dry-run mode markers
const (
	DryRunPreviewHeader = "=== DRY RUN MODE - PREVIEW OF GENERATED INDICATOR FILE ===\n"
	DryRunPreviewFooter = "\n=== END PREVIEW ===\n\nThis is a preview. Use --dry-run=false to actually save the file."
)

// previewWidth is the width of the preview drawn before saving.
const previewWidth = 60

// answers holds the values collected by the wizard.
type answers struct {
	Steps       string
	Labels      string
	Direction   string
	ShowNumbers bool
	Save        bool
}

// New creates the init sub-command for the CLI.
func New() *cobra.Command {
	initCommand := &cobra.Command{
		Use:     "init",
		Aliases: []string{"initialize"},
		Short:   "Create an indicator file",
		Long:    `Create an indicator file with an interactive wizard.`,
		RunE:    runInit,
		Example: `
# Create stepindicator.yaml interactively
stepindicator init

# Preview the generated file without saving it
stepindicator init --dry-run

# Write the defaults without asking
stepindicator init --yes -o steps.yaml`,
	}

	initCommand.Flags().StringP("output", "o", config.DefaultPath, "The output file path.")
	initCommand.Flags().Bool("dry-run", false, "Preview the generated file without saving it")
	initCommand.Flags().BoolP("yes", "y", false, "Accept the defaults without prompting")
	initCommand.Flags().Bool("force", false, "Overwrite an existing file")

	return initCommand
}

func runInit(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger(cmd)

	outputPath, _ := cmd.Flags().GetString("output")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	force, _ := cmd.Flags().GetBool("force")

	if !dryRun && !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite it", outputPath)
		}
	}

	version, err := schema.LatestVersion()
	if err != nil {
		return err
	}
	file := config.NewFile(version)

	if !yes {
		if !ui.IsTerminal() {
			return errors.New("init needs an interactive terminal, pass --yes to accept the defaults")
		}
		saved, err := collect(cmd, file)
		if err != nil {
			return err
		}
		if !saved {
			logger.Info("Indicator file not saved")
			return nil
		}
	}

	if dryRun {
		data, err := yaml.Marshal(file)
		if err != nil {
			return fmt.Errorf("failed to marshal indicator file: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), DryRunPreviewHeader+string(data)+DryRunPreviewFooter+"\n")
		return nil
	}

	err = ui.RunWithSpinner(cmd.Context(), "Writing "+outputPath, func(context.Context) error {
		return config.Save(file, outputPath)
	})
	if err != nil {
		return err
	}

	logger.Info("Indicator file created", "file", outputPath, "steps", file.StepCount)
	return nil
}

// collect runs the wizard and fills file. It reports whether the user chose to save.
func collect(cmd *cobra.Command, file *config.File) (bool, error) {
	progress := ui.NewProgressTracker("Steps", "Layout", "Review")
	a := answers{
		Steps:       strconv.Itoa(file.StepCount),
		Direction:   file.Direction,
		ShowNumbers: true,
		Save:        true,
	}

	stepsForm := huh.NewForm(huh.NewGroup(
		ui.NewInput(progress.String(), "5", "How many steps does the flow have?", validateSteps, &a.Steps),
		ui.NewInput("Labels", "Cart, Address, Payment", "Optional comma separated step labels.", func(s string) error {
			return util.ValidateLabelCount(s, a.Steps)
		}, &a.Labels),
	))
	if err := ui.RunForm(stepsForm, "failed to collect steps"); err != nil {
		return false, err
	}
	progress.NextStep()

	layoutForm := huh.NewForm(huh.NewGroup(
		ui.NewSelect(progress.String(), "Lay the steps out in a row or a column.",
			[]string{string(indicator.Horizontal), string(indicator.Vertical)}, &a.Direction),
		ui.NewConfirm("Step numbers", "Show the step number inside each marker?", "Yes", "No", &a.ShowNumbers),
	))
	if err := ui.RunForm(layoutForm, "failed to collect layout"); err != nil {
		return false, err
	}
	progress.NextStep()

	if err := apply(a, file); err != nil {
		return false, err
	}

	var preview string
	err := ui.RunWithSpinner(cmd.Context(), "Rendering preview", func(context.Context) error {
		var err error
		preview, err = render(file)
		return err
	})
	if err != nil {
		return false, err
	}
	fmt.Fprintln(cmd.OutOrStdout(), preview)

	reviewForm := huh.NewForm(huh.NewGroup(
		ui.NewConfirm(progress.String(), "Save this indicator?", "Save", "Discard", &a.Save),
	))
	if err := ui.RunForm(reviewForm, "failed to confirm"); err != nil {
		return false, err
	}
	progress.NextStep()

	return a.Save, nil
}

// apply copies wizard answers into file.
func apply(a answers, file *config.File) error {
	steps, err := strconv.Atoi(strings.TrimSpace(a.Steps))
	if err != nil {
		return fmt.Errorf("invalid step count: %w", err)
	}
	file.StepCount = steps
	file.Direction = a.Direction
	file.ShowIndicatorLabel = &a.ShowNumbers

	file.Labels = util.SplitLabels(a.Labels)
	return nil
}

// render draws the settled indicator described by file.
func render(file *config.File) (string, error) {
	props, err := file.Props()
	if err != nil {
		return "", err
	}
	ind, err := indicator.New(props)
	if err != nil {
		return "", err
	}
	return tui.Snapshot(ind, tui.NewRenderer(), previewWidth, props.StepCount*4), nil
}

func validateSteps(s string) error {
	return util.ValidatePositiveInteger(s, "step count")
}
