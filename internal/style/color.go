package style

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cast"
)

// ErrInvalidColor is returned for color strings that cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

var rgbFuncRegex = regexp.MustCompile(`^rgba?\(\s*([0-9.]+)\s*,\s*([0-9.]+)\s*,\s*([0-9.]+)\s*(?:,\s*([0-9.]+)\s*)?\)$`)

// Color is an RGB color with an alpha channel in [0, 1].
type Color struct {
	colorful.Color
	Alpha float64
}

// ParseColor accepts "#rgb", "#rrggbb", "rgb(r,g,b)", "rgba(r,g,b,a)" and "transparent".
func ParseColor(s string) (Color, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	switch {
	case value == TransparentColor:
		return Color{}, nil
	case strings.HasPrefix(value, "#"):
		c, err := colorful.Hex(value)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, s, err)
		}
		return Color{Color: c, Alpha: 1}, nil
	}

	m := rgbFuncRegex.FindStringSubmatch(value)
	if m == nil {
		return Color{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	if strings.HasPrefix(value, "rgba") != (m[4] != "") {
		return Color{}, fmt.Errorf("%w %q: channel count does not match function", ErrInvalidColor, s)
	}

	var channels [3]float64
	for i := range channels {
		v, err := cast.ToFloat64E(m[i+1])
		if err != nil || v > 255 {
			return Color{}, fmt.Errorf("%w %q: channel %d out of range", ErrInvalidColor, s, i)
		}
		channels[i] = v / 255
	}

	alpha := 1.0
	if m[4] != "" {
		a, err := cast.ToFloat64E(m[4])
		if err != nil || a > 1 {
			return Color{}, fmt.Errorf("%w %q: alpha out of range", ErrInvalidColor, s)
		}
		alpha = a
	}

	return Color{Color: colorful.Color{R: channels[0], G: channels[1], B: channels[2]}, Alpha: alpha}, nil
}

// MustParseColor is ParseColor for values known to be valid.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Transparent reports whether the color draws nothing.
func (c Color) Transparent() bool {
	return c.Alpha == 0
}

// Over composites c onto an opaque background and returns an opaque color.
func (c Color) Over(background Color) Color {
	if c.Alpha >= 1 {
		return c
	}
	return Color{Color: background.BlendRgb(c.Color, c.Alpha), Alpha: 1}
}

// Hex returns the "#rrggbb" form, ignoring alpha.
func (c Color) Hex() string {
	return c.Color.Clamped().Hex()
}
