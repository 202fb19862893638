package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// NewInput creates a text input bound to value.
func NewInput(title, placeholder, description string, validator func(string) error, value *string) *huh.Input {
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Description(description).
		Value(value)

	if validator != nil {
		input.Validate(validator)
	}

	return input
}

// NewConfirm creates a yes/no field bound to value.
func NewConfirm(title, description, affirmative, negative string, value *bool) *huh.Confirm {
	return huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative(affirmative).
		Negative(negative).
		Value(value)
}

// NewSelect creates a single choice field bound to value.
func NewSelect(title, description string, options []string, value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Description(description).
		Options(huh.NewOptions(options...)...).
		Value(value)
}

// RunForm runs the form and wraps any error with errorMsg.
func RunForm(form *huh.Form, errorMsg string) error {
	if err := form.Run(); err != nil {
		return fmt.Errorf("%s: %w", errorMsg, err)
	}
	return nil
}
