package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsArePopulated(t *testing.T) {
	values, err := Defaults().AsMap()
	require.NoError(t, err)

	for _, name := range OptionNames() {
		_, ok := values[name]
		assert.True(t, ok, "option %s has no default", name)
	}
	assert.Len(t, OptionNames(), 21)
	assert.NoError(t, Defaults().Validate())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		check     func(t *testing.T, s Styles)
		expectErr error
	}{
		{
			name:      "nil overrides yield defaults",
			overrides: nil,
			check: func(t *testing.T, s Styles) {
				assert.Equal(t, Defaults(), s)
			},
		},
		{
			name:      "override wins per key",
			overrides: map[string]any{"stepIndicatorSize": 25, "labelColor": "#999999"},
			check: func(t *testing.T, s Styles) {
				assert.Equal(t, 25.0, s.StepIndicatorSize)
				assert.Equal(t, "#999999", s.LabelColor)
				assert.Equal(t, 40.0, s.CurrentStepIndicatorSize)
			},
		},
		{
			name:      "zero values are honored",
			overrides: map[string]any{"currentStepStrokeWidth": 0},
			check: func(t *testing.T, s Styles) {
				assert.Equal(t, 0.0, s.CurrentStepStrokeWidth)
			},
		},
		{
			name:      "numbers written as strings are coerced",
			overrides: map[string]any{"labelSize": "18"},
			check: func(t *testing.T, s Styles) {
				assert.Equal(t, 18.0, s.LabelSize)
			},
		},
		{
			name:      "unknown option is rejected",
			overrides: map[string]any{"stepSize": 10},
			expectErr: ErrUnknownOption,
		},
		{
			name:      "non numeric size is rejected",
			overrides: map[string]any{"labelSize": "large"},
			expectErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Resolve(tt.overrides)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestMergeEmptyIsIdentity(t *testing.T) {
	resolved, err := Resolve(map[string]any{"labelSize": 20, "labelColor": "#123456"})
	require.NoError(t, err)

	merged, err := Merge(resolved, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, resolved, merged)
}

func TestResolveDoesNotAccumulate(t *testing.T) {
	first, err := Resolve(map[string]any{"labelSize": 20})
	require.NoError(t, err)
	assert.Equal(t, 20.0, first.LabelSize)

	second, err := Resolve(map[string]any{"labelColor": "#123456"})
	require.NoError(t, err)
	assert.Equal(t, 13.0, second.LabelSize)
	assert.Equal(t, 13.0, Defaults().LabelSize)
}

func TestValidate(t *testing.T) {
	s := Defaults()
	s.StepIndicatorSize = -1
	s.LabelColor = "blurple"

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.Contains(t, err.Error(), "stepIndicatorSize")
	assert.Contains(t, err.Error(), "labelColor")
}
