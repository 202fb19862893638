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

package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// SetupCharmLogger configures the command logger from the logging flags and
// stores it, wrapped in an observable logger with a metrics collector, in the
// command context.
func SetupCharmLogger(cmd *cobra.Command, logLevel string, noColor, quiet bool) error {
	if quiet {
		nullLogger := log.NewWithOptions(io.Discard, log.Options{
			Level: log.FatalLevel,
		})
		cmd.SetContext(WithObservableLogger(cmd.Context(), NewObservableLogger(nullLogger)))
		return nil
	}

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	options := log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      LogTimeFormat,
		Prefix:          LogPrefix,
		ReportCaller:    level == log.DebugLevel,
	}
	// NO_COLOR and non-terminal output are detected by fatih/color.
	if noColor || color.NoColor {
		options.Formatter = log.TextFormatter
	}

	logger := log.NewWithOptions(os.Stderr, options)
	logger.SetStyles(levelStyles())

	observableLogger := NewObservableLogger(logger)
	observableLogger.AddHook(NewMetricsCollector())

	cmd.SetContext(WithObservableLogger(cmd.Context(), observableLogger))
	return nil
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.InfoLevel] = styles.Levels[log.InfoLevel].Foreground(lipgloss.Color("#00ff00"))
	styles.Levels[log.WarnLevel] = styles.Levels[log.WarnLevel].Foreground(lipgloss.Color("#ffff00"))
	styles.Levels[log.ErrorLevel] = styles.Levels[log.ErrorLevel].Foreground(lipgloss.Color("#ff0000"))
	styles.Levels[log.FatalLevel] = styles.Levels[log.FatalLevel].Foreground(lipgloss.Color("#ff0000")).Bold(true)

	for key, c := range map[string]string{
		"position": "#00ffff",
		"file":     "#ff00ff",
		"err":      "#ff0000",
	} {
		styles.Keys[key] = styles.Keys[key].Foreground(lipgloss.Color(c))
	}
	return styles
}

// GetLogger retrieves the logger from the command context
func GetLogger(cmd *cobra.Command) *log.Logger {
	if logger := From(cmd.Context()); logger != nil {
		return logger
	}
	return log.New(os.Stderr)
}

// GetObservableLogger retrieves the observable logger from the command context
func GetObservableLogger(cmd *cobra.Command) *ObservableLogger {
	if obsLogger := FromObservable(cmd.Context()); obsLogger != nil {
		return obsLogger
	}
	return NewObservableLogger(GetLogger(cmd))
}
