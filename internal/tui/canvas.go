package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/deployah-dev/stepindicator/internal/style"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal cell. A zero bg means nothing was painted behind it.
type cell struct {
	ch   rune
	fg   style.Color
	bg   style.Color
	bold bool
	wide bool // continuation of a double-width rune
}

type cellStyle struct {
	fg, bg string
	bold   bool
}

// canvas is a fixed grid of cells composited in paint order.
type canvas struct {
	width, height int
	cells         [][]cell
	background    style.Color
}

func newCanvas(width, height int, background style.Color) *canvas {
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x].ch = ' '
		}
	}
	return &canvas{width: width, height: height, cells: cells, background: background}
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// behind returns the opaque color currently visible behind (x, y).
func (c *canvas) behind(x, y int) style.Color {
	if bg := c.cells[y][x].bg; !bg.Transparent() {
		return bg
	}
	return c.background
}

// paint fills the rectangle with color, compositing translucent colors.
func (c *canvas) paint(x0, y0, x1, y1 int, color style.Color) {
	if color.Transparent() {
		return
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !c.inside(x, y) {
				continue
			}
			c.cells[y][x] = cell{ch: ' ', bg: color.Over(c.behind(x, y))}
		}
	}
}

// put draws a single rune keeping the background already painted.
func (c *canvas) put(x, y int, ch rune, fg style.Color, bold bool) {
	if !c.inside(x, y) {
		return
	}
	dst := &c.cells[y][x]
	dst.ch = ch
	dst.fg = fg.Over(c.behind(x, y))
	dst.bold = bold
	dst.wide = false
}

// text draws s starting at (x, y), clipped to maxWidth columns.
func (c *canvas) text(x, y int, s string, maxWidth int, fg style.Color, bold bool) {
	if maxWidth <= 0 {
		return
	}
	s = runewidth.Truncate(s, maxWidth, "…")
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.put(x, y, r, fg, bold)
		if w == 2 && c.inside(x+1, y) {
			c.cells[y][x+1] = cell{wide: true, bg: c.cells[y][x+1].bg}
		}
		x += w
	}
}

// String renders the grid with lipgloss, one styled run per style change.
func (c *canvas) String() string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var sb strings.Builder
		var run strings.Builder
		var current cellStyle
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(styleFor(current).Render(run.String()))
			run.Reset()
		}
		for _, cl := range row {
			if cl.wide {
				continue
			}
			cs := cellStyle{bold: cl.bold}
			if !cl.bg.Transparent() {
				cs.bg = cl.bg.Hex()
			}
			if cl.ch != ' ' {
				cs.fg = cl.fg.Hex()
			}
			if cs != current {
				flush()
				current = cs
			}
			run.WriteRune(cl.ch)
		}
		flush()
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

func styleFor(cs cellStyle) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(cs.bold)
	if cs.fg != "" {
		s = s.Foreground(lipgloss.Color(cs.fg))
	}
	if cs.bg != "" {
		s = s.Background(lipgloss.Color(cs.bg))
	}
	return s
}
