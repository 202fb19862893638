package validate

import (
	"fmt"

	"github.com/deployah-dev/stepindicator/internal/logging"
	"github.com/deployah-dev/stepindicator/internal/runtime"
	"github.com/spf13/cobra"
)

// New creates the validate sub-command for the CLI.
func New() *cobra.Command {
	validateCommand := &cobra.Command{
		Use:   "validate",
		Short: "Validate an indicator file",
		Long:  `Validate an indicator file against its JSON schema and check that its styles resolve.`,
		Example: `
# Validate an indicator file
stepindicator validate -f checkout.yaml

# Validate with variables from a dotenv file
stepindicator validate -f checkout.yaml --env-file .env.staging`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}

	return validateCommand
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := logging.GetObservableLogger(cmd)

	rt := runtime.FromRuntime(cmd.Context())
	if rt == nil {
		return fmt.Errorf("runtime not initialized")
	}
	if rt.ConfigPath() == "" {
		return fmt.Errorf("no indicator file given, use -f or $%s", runtime.ConfigEnvVar)
	}

	f, err := rt.Config()
	if err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("%s: %w", rt.ConfigPath(), err)
	}

	for _, warning := range f.Warnings() {
		logger.Warn(warning, "file", rt.ConfigPath())
	}
	logger.Info("Indicator file validated successfully", "file", rt.ConfigPath(), "apiVersion", f.APIVersion, "steps", f.StepCount)

	return nil
}
