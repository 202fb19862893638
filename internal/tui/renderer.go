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

// Package tui draws step indicator frames in a terminal and hosts an
// indicator inside a bubbletea program.
package tui

import (
	"math"

	"github.com/deployah-dev/stepindicator/internal/indicator"
	"github.com/deployah-dev/stepindicator/internal/style"
	"github.com/mattn/go-runewidth"
)

// Scale is the number of layout units covered by one terminal column and one row.
type Scale struct {
	X float64
	Y float64
}

// DefaultScale maps the default 30/40 unit markers to 4x2 and 5x3 cells.
var DefaultScale = Scale{X: 8, Y: 16}

// Box drawing runes.
const (
	trackHorizontal = '─'
	trackVertical   = '│'
	fillHorizontal  = '━'
	fillVertical    = '┃'
)

var (
	squareCorners  = [4]rune{'┌', '┐', '└', '┘'}
	roundedCorners = [4]rune{'╭', '╮', '╰', '╯'}
)

// Renderer converts indicator frames into terminal text.
type Renderer struct {
	scale      Scale
	background style.Color
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithScale sets the layout units per cell.
func WithScale(scale Scale) RendererOption {
	return func(r *Renderer) {
		r.scale = scale
	}
}

// WithBackground sets the color translucent colors are composited onto.
func WithBackground(color style.Color) RendererOption {
	return func(r *Renderer) {
		r.background = color
	}
}

// NewRenderer creates a renderer with the default scale on a black background.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		scale:      DefaultScale,
		background: style.MustParseColor("#000000"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Measure reports an area of cols x rows cells to the indicator. The cross
// axis of the step container is fixed to the current step size.
func (r *Renderer) Measure(ind *indicator.Indicator, cols, rows int) {
	cross := ind.Styles().CurrentStepIndicatorSize
	if ind.Props().Direction.IsVertical() {
		ind.Measure(cross, float64(max(rows, 0))*r.scale.Y)
		return
	}
	ind.Measure(float64(max(cols, 0))*r.scale.X, cross)
}

// Render draws the frame. An unmeasured frame renders as the empty string.
func (r *Renderer) Render(f indicator.Frame) string {
	if f.Width == 0 {
		return ""
	}

	stepCols, stepRows := r.ceilCols(f.Width), r.ceilRows(f.Height)
	cols, rows := stepCols, stepRows
	if len(f.Labels) > 0 {
		if f.Direction.IsVertical() {
			cols = stepCols + 1 + maxLabelWidth(f.Labels)
		} else {
			rows = stepRows + 1
		}
	}

	c := newCanvas(cols, rows, r.background)
	r.drawBar(c, f.Track, f.Direction, trackHorizontal, trackVertical)
	r.drawBar(c, f.Fill, f.Direction, fillHorizontal, fillVertical)
	for _, m := range f.Markers {
		r.drawMarker(c, m)
	}
	for _, l := range f.Labels {
		r.drawLabel(c, l, f.Direction, stepCols, stepRows)
	}

	return c.String()
}

// PointAt maps a terminal cell relative to the rendered frame back to layout
// units, for hit testing mouse input.
func (r *Renderer) PointAt(f indicator.Frame, col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * r.scale.X
	y = (float64(row) + 0.5) * r.scale.Y
	if len(f.Labels) == 0 {
		return x, y
	}

	if f.Direction.IsVertical() {
		if col > r.ceilCols(f.Width) {
			x = f.Labels[0].Bounds.X
		}
	} else if row >= r.ceilRows(f.Height) {
		_, y = f.Labels[0].Bounds.Center()
	}
	return x, y
}

func (r *Renderer) drawBar(c *canvas, bar *indicator.Bar, dir indicator.Direction, horizontal, vertical rune) {
	if bar == nil {
		return
	}
	color, err := style.ParseColor(bar.Color)
	if err != nil {
		return
	}

	b := bar.Bounds
	if dir.IsVertical() {
		col := r.col(b.X + b.Width/2)
		for row := r.row(b.Y); row < r.row(b.Y+b.Height); row++ {
			c.put(col, row, vertical, color, false)
		}
		return
	}
	row := r.row(b.Y + b.Height/2)
	for col := r.col(b.X); col < r.col(b.X+b.Width); col++ {
		c.put(col, row, horizontal, color, false)
	}
}

func (r *Renderer) drawMarker(c *canvas, m indicator.Marker) {
	w := max(1, int(math.Round(m.Size/r.scale.X)))
	h := max(1, int(math.Round(m.Size/r.scale.Y)))
	cx, cy := m.Cell.Center()
	x0 := r.col(cx) - w/2
	y0 := r.row(cy) - h/2

	fill, err := style.ParseColor(m.FillColor)
	if err != nil {
		return
	}
	c.paint(x0, y0, x0+w, y0+h, fill)

	inset := 0
	if m.BorderWidth > 0 && w >= 3 && h >= 3 {
		if border, err := style.ParseColor(m.BorderColor); err == nil {
			r.drawBorder(c, x0, y0, w, h, m.BorderRadius >= m.Size/4, border)
			inset = 1
		}
	}

	if m.Content == "" {
		return
	}
	fg, err := style.ParseColor(m.ContentColor)
	if err != nil {
		return
	}
	inner := w - 2*inset
	text := runewidth.Truncate(m.Content, inner, "")
	tx := x0 + inset + (inner-runewidth.StringWidth(text))/2
	c.text(tx, y0+h/2, text, inner, fg, m.ContentStyle.Bold() || m.Status == indicator.StatusCurrent)
}

func (r *Renderer) drawBorder(c *canvas, x0, y0, w, h int, rounded bool, color style.Color) {
	corners := squareCorners
	if rounded {
		corners = roundedCorners
	}
	x1, y1 := x0+w-1, y0+h-1
	for x := x0 + 1; x < x1; x++ {
		c.put(x, y0, trackHorizontal, color, false)
		c.put(x, y1, trackHorizontal, color, false)
	}
	for y := y0 + 1; y < y1; y++ {
		c.put(x0, y, trackVertical, color, false)
		c.put(x1, y, trackVertical, color, false)
	}
	c.put(x0, y0, corners[0], color, false)
	c.put(x1, y0, corners[1], color, false)
	c.put(x0, y1, corners[2], color, false)
	c.put(x1, y1, corners[3], color, false)
}

func (r *Renderer) drawLabel(c *canvas, l indicator.Label, dir indicator.Direction, stepCols, stepRows int) {
	fg, err := style.ParseColor(l.Color)
	if err != nil {
		return
	}
	bold := l.TextStyle.Bold() || l.Current

	if dir.IsVertical() {
		_, cy := l.Bounds.Center()
		c.text(stepCols+1, r.row(cy), l.Text, c.width-stepCols-1, fg, bold)
		return
	}

	x0, x1 := r.col(l.Bounds.X), r.col(l.Bounds.X+l.Bounds.Width)
	span := x1 - x0
	text := runewidth.Truncate(l.Text, span, "…")
	width := runewidth.StringWidth(text)

	x := x0 + (span-width)/2
	switch l.TextStyle.TextAlign {
	case style.AlignLeft:
		x = x0
	case style.AlignRight:
		x = x1 - width
	}
	c.text(x, stepRows, text, span, fg, bold)
}

func (r *Renderer) col(x float64) int {
	return int(math.Floor(x / r.scale.X))
}

func (r *Renderer) row(y float64) int {
	return int(math.Floor(y / r.scale.Y))
}

func (r *Renderer) ceilCols(x float64) int {
	return int(math.Ceil(x / r.scale.X))
}

func (r *Renderer) ceilRows(y float64) int {
	return int(math.Ceil(y / r.scale.Y))
}

func maxLabelWidth(labels []indicator.Label) int {
	width := 0
	for _, l := range labels {
		width = max(width, runewidth.StringWidth(l.Text))
	}
	return width
}
