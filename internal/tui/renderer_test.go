package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/deployah-dev/stepindicator/internal/indicator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return epoch }

func newIndicator(t *testing.T, props indicator.Props) *indicator.Indicator {
	t.Helper()
	ind, err := indicator.New(props, indicator.WithClock(fixedClock))
	require.NoError(t, err)
	return ind
}

// plain strips escape sequences and trailing blanks from every line.
func plain(s string) []string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func threeSteps() indicator.Props {
	props := indicator.DefaultProps()
	props.StepCount = 3
	props.CurrentPosition = 1
	props.Labels = []string{"A", "B", "C"}
	return props
}

func TestRenderUnmeasured(t *testing.T) {
	ind := newIndicator(t, threeSteps())
	assert.Empty(t, NewRenderer().Render(ind.Frame()))
}

func TestSnapshotHorizontal(t *testing.T) {
	ind := newIndicator(t, threeSteps())

	lines := plain(Snapshot(ind, NewRenderer(), 30, 0))

	assert.Equal(t, []string{
		"             ╭───╮",
		"    1  ━━━━━━│ 2 │───── 3",
		"             ╰───╯",
		"    A         B         C",
	}, lines)
}

func TestSnapshotWithoutLabels(t *testing.T) {
	props := threeSteps()
	props.Labels = nil
	ind := newIndicator(t, props)

	lines := plain(Snapshot(ind, NewRenderer(), 30, 0))
	assert.Len(t, lines, 3)
}

func TestSnapshotVertical(t *testing.T) {
	props := threeSteps()
	props.Direction = indicator.Vertical
	ind := newIndicator(t, props)

	lines := plain(Snapshot(ind, NewRenderer(), 0, 15))
	require.Len(t, lines, 15)

	for i, row := range []int{2, 7, 12} {
		content := string(rune('1' + i))
		label := string(rune('A' + i))
		assert.Contains(t, lines[row], content, "row %d", row)
		prefix, _, found := strings.Cut(lines[row], label)
		require.True(t, found, "row %d", row)
		assert.Equal(t, 6, ansi.StringWidth(prefix), "row %d", row)
	}
	assert.Contains(t, lines[4], "┃")
	assert.Contains(t, lines[10], "│")
}

func TestSnapshotSingleStepHasNoTrack(t *testing.T) {
	props := indicator.DefaultProps()
	props.StepCount = 1
	ind := newIndicator(t, props)

	out := strings.Join(plain(Snapshot(ind, NewRenderer(), 10, 0)), "\n")
	assert.Contains(t, out, "1")
	assert.NotContains(t, out, "━")
}

func TestSnapshotCustomContent(t *testing.T) {
	props := threeSteps()
	props.RenderStepIndicator = func(ctx indicator.StepContext) string {
		if ctx.StepStatus == indicator.StatusFinished {
			return "✓"
		}
		return "·"
	}
	ind := newIndicator(t, props)

	lines := plain(Snapshot(ind, NewRenderer(), 30, 0))
	assert.Contains(t, lines[1], "✓")
	assert.NotContains(t, lines[1], "1")
}

func TestPointAtMapsBackToSteps(t *testing.T) {
	ind := newIndicator(t, threeSteps())
	r := NewRenderer()
	Snapshot(ind, r, 30, 0)
	f := ind.Frame()

	tests := []struct {
		name     string
		col, row int
		want     int
	}{
		{"first marker", 4, 1, 0},
		{"current marker", 15, 1, 1},
		{"last marker", 25, 1, 2},
		{"first label", 4, 3, 0},
		{"last label", 24, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := r.PointAt(f, tt.col, tt.row)
			got, ok := ind.HitTest(x, y)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
