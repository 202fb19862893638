package cli

import (
	"testing"

	"github.com/deployah-dev/stepindicator/internal/config"
	"github.com/deployah-dev/stepindicator/internal/indicator"
	"github.com/deployah-dev/stepindicator/internal/style"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCommand(t *testing.T, args ...string) (*cobra.Command, *IndicatorFlags) {
	t.Helper()
	var f IndicatorFlags
	cmd := &cobra.Command{Use: "test"}
	AddIndicatorFlags(cmd, &f)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &f
}

func TestPropsDefaults(t *testing.T) {
	cmd, f := newFlagCommand(t)

	props, err := f.Props(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, props.StepCount)
	assert.Equal(t, indicator.Horizontal, props.Direction)
	assert.True(t, props.ShowIndicatorLabel)
	assert.Nil(t, props.RenderStepIndicator)
	assert.Empty(t, props.CustomStyles)
}

func TestPropsFlagsOverrideFile(t *testing.T) {
	show := true
	file := &config.File{
		APIVersion:         "v1",
		StepCount:          4,
		CurrentPosition:    1,
		Labels:             []string{"a", "b", "c", "d"},
		ShowIndicatorLabel: &show,
		CustomStyles:       map[string]any{"labelSize": 14.0, "labelColor": "#111111"},
	}
	cmd, f := newFlagCommand(t,
		"--position", "3",
		"--direction", "vertical",
		"--style", "labelColor=#222222",
		"--no-indicator-label",
	)

	props, err := f.Props(cmd, file)
	require.NoError(t, err)
	assert.Equal(t, 4, props.StepCount, "unset flags keep file values")
	assert.Equal(t, 3, props.CurrentPosition)
	assert.Equal(t, indicator.Vertical, props.Direction)
	assert.False(t, props.ShowIndicatorLabel)
	assert.Equal(t, map[string]any{"labelSize": 14.0, "labelColor": "#222222"}, props.CustomStyles)

	styles, err := style.Resolve(props.CustomStyles)
	require.NoError(t, err)
	assert.Equal(t, "#222222", styles.LabelColor)
}

func TestPropsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero steps", []string{"--steps", "0"}},
		{"bad direction", []string{"--direction", "diagonal"}},
		{"bad style", []string{"--style", "labelColor"}},
		{"bad template", []string{"--marker-template", "{{ .Number "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, f := newFlagCommand(t, tt.args...)
			_, err := f.Props(cmd, nil)
			assert.Error(t, err)
		})
	}
}

func TestMarkerRenderer(t *testing.T) {
	render, err := MarkerRenderer(`{{ if eq .Status "finished" }}✓{{ else }}{{ .Number }}{{ .Label | trunc 1 | upper }}{{ end }}`, []string{"alpha", "beta"})
	require.NoError(t, err)

	assert.Equal(t, "✓", render(indicator.StepContext{Position: 0, StepStatus: indicator.StatusFinished}))
	assert.Equal(t, "2B", render(indicator.StepContext{Position: 1, StepStatus: indicator.StatusCurrent}))
	assert.Equal(t, "3", render(indicator.StepContext{Position: 2, StepStatus: indicator.StatusUnfinished}))
}

func TestMarkerRendererFallsBackOnExecError(t *testing.T) {
	render, err := MarkerRenderer(`{{ fail "no" }}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "4", render(indicator.StepContext{Position: 3}))
}

func TestStyleRows(t *testing.T) {
	styles, err := style.Resolve(map[string]any{"labelSize": 20})
	require.NoError(t, err)

	rows, err := StyleRows(styles)
	require.NoError(t, err)
	require.Len(t, rows, len(style.OptionNames()))

	for _, row := range rows {
		if row["option"] == "labelSize" {
			assert.Equal(t, "20", row["value"])
			assert.Equal(t, "13", row["default"])
		}
	}
}

func TestColorizeWithoutTerminal(t *testing.T) {
	out, err := Colorize([]byte(`{"a": 1}`), "json")
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, out)
}

func TestRunSummary(t *testing.T) {
	assert.Equal(t, "Finished on the 3rd of 5 steps after 1,200 animation frames", RunSummary(2, 5, 1200))
}
