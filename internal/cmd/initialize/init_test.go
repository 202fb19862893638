package initialize

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/deployah-dev/stepindicator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSteps(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"5", false},
		{" 2 ", false},
		{"0", true},
		{"-1", true},
		{"five", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateSteps(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyAndRender(t *testing.T) {
	file := config.NewFile("v1")
	err := apply(answers{
		Steps:       "3",
		Labels:      " Cart, ,Address , Pay",
		Direction:   "horizontal",
		ShowNumbers: false,
	}, file)
	require.NoError(t, err)

	assert.Equal(t, 3, file.StepCount)
	assert.Equal(t, []string{"Cart", "Address", "Pay"}, file.Labels)
	require.NotNil(t, file.ShowIndicatorLabel)
	assert.False(t, *file.ShowIndicatorLabel)
	require.NoError(t, file.Validate())

	preview, err := render(file)
	require.NoError(t, err)
	plain := ansi.Strip(preview)
	assert.Contains(t, plain, "Cart")
	assert.False(t, strings.ContainsAny(plain, "123"), "numbers are hidden")
}

func TestApplyRejectsBadSteps(t *testing.T) {
	assert.Error(t, apply(answers{Steps: "x"}, config.NewFile("v1")))
}
