package ui

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs action behind a spinner titled title. Without a
// terminal the action runs directly.
func RunWithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	if !IsTerminal() {
		return action(ctx)
	}

	return spinner.New().
		Title(title).
		Context(ctx).
		ActionWithErr(action).
		Run()
}
