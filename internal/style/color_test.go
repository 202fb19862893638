package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input     string
		hex       string
		alpha     float64
		expectErr bool
	}{
		{input: "#4aae4f", hex: "#4aae4f", alpha: 1},
		{input: "#FFF", hex: "#ffffff", alpha: 1},
		{input: "rgb(255, 0, 0)", hex: "#ff0000", alpha: 1},
		{input: "rgba(255,255,255,0.5)", hex: "#ffffff", alpha: 0.5},
		{input: "transparent", hex: "#000000", alpha: 0},
		{input: "rgba(255,255,255)", expectErr: true},
		{input: "rgb(300,0,0)", expectErr: true},
		{input: "green", expectErr: true},
		{input: "#12", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hex, c.Hex())
			assert.InDelta(t, tt.alpha, c.Alpha, 1e-9)
		})
	}
}

func TestColorOver(t *testing.T) {
	white := MustParseColor("rgba(255,255,255,0.5)")
	black := MustParseColor("#000000")

	blended := white.Over(black)
	assert.Equal(t, 1.0, blended.Alpha)
	assert.Equal(t, "#808080", blended.Hex())

	opaque := MustParseColor("#4aae4f")
	assert.Equal(t, opaque, opaque.Over(black))
}
