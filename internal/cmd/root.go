// Copyright 2025 The Deployah Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd wires the stepindicator commands together.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/deployah-dev/stepindicator/internal/cli"
	initcmd "github.com/deployah-dev/stepindicator/internal/cmd/initialize"
	"github.com/deployah-dev/stepindicator/internal/cmd/render"
	"github.com/deployah-dev/stepindicator/internal/cmd/run"
	"github.com/deployah-dev/stepindicator/internal/cmd/styles"
	"github.com/deployah-dev/stepindicator/internal/cmd/validate"
	"github.com/deployah-dev/stepindicator/internal/logging"
	"github.com/deployah-dev/stepindicator/internal/runtime"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// NewRootCommand creates the root command with every sub-command attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stepindicator",
		Short: "Animated step indicators for the terminal",
		Long: `stepindicator draws a row or column of numbered step markers joined by a
progress track. The current step is highlighted and changes of step animate:
the track slides to the new step, then its marker grows.`,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel, _ := cmd.Flags().GetString("log-level")
			noColor, _ := cmd.Flags().GetBool("no-color")
			quiet, _ := cmd.Flags().GetBool("quiet")
			file, _ := cmd.Flags().GetString("file")
			envFile, _ := cmd.Flags().GetString("env-file")

			cmd.SilenceErrors = quiet
			cmd.SilenceUsage = true

			if err := logging.SetupCharmLogger(cmd, logLevel, noColor, quiet); err != nil {
				return err
			}

			opts := []runtime.Option{runtime.WithLogger(logging.GetObservableLogger(cmd))}
			if file != "" {
				opts = append(opts, runtime.WithConfigPath(file))
			}
			if envFile != "" {
				opts = append(opts, runtime.WithEnvFile(envFile))
			}
			cmd.SetContext(runtime.WithRuntime(cmd.Context(), runtime.New(opts...)))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if rt := runtime.FromRuntime(cmd.Context()); rt != nil {
				return rt.Close()
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", log.InfoLevel.String(), "Set the logging level (debug|info|warn|error|fatal)")
	flags.Bool("no-color", false, "If specified, output won't contain any color.")
	flags.BoolP("quiet", "q", false, "Quiet or silent mode. Do not show logs or error messages.")
	flags.StringP("file", "f", "", "Path to an indicator file (YAML or JSON), defaults to $"+runtime.ConfigEnvVar)
	flags.String("env-file", "", "Dotenv file providing ${VAR} values, defaults to $"+runtime.EnvFileEnvVar)

	rootCmd.AddCommand(
		run.New(),
		render.New(),
		styles.New(),
		validate.New(),
		initcmd.New(),
	)

	return rootCmd
}

// Execute runs the command line and exits with a non-zero code on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := fang.Execute(ctx, NewRootCommand(), fang.WithVersion(Version)); err != nil {
		os.Exit(cli.ExitError)
	}
}
