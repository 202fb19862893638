package indicator

import (
	"strconv"

	"github.com/deployah-dev/stepindicator/internal/style"
	"github.com/mattn/go-runewidth"
)

// glyphAspect approximates the advance width of a glyph relative to its font size.
const glyphAspect = 0.6

// Rect is an axis-aligned box in layout units.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Center returns the center point.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Bar is a solid track segment.
type Bar struct {
	Bounds Rect
	Color  string
}

// Marker is the drawn state of one step.
type Marker struct {
	Index  int
	Status StepStatus

	// Cell is the tappable area; Bounds is the marker box centered in it.
	Cell   Rect
	Bounds Rect

	Size         float64
	BorderRadius float64
	BorderWidth  float64
	BorderColor  string
	FillColor    string

	Content      string
	Custom       bool
	ContentStyle style.TextStyle
	ContentColor string
	ZIndex       int
}

// Label is a caption under (or beside) the markers.
type Label struct {
	Index     int
	Text      string
	Bounds    Rect
	Color     string
	TextStyle style.TextStyle
	Current   bool
}

// Frame is the declarative render tree of an indicator.
type Frame struct {
	Direction Direction
	Width     float64
	Height    float64

	// Track and Fill are nil until the indicator has been measured.
	Track *Bar
	Fill  *Bar

	Markers []Marker
	Labels  []Label
}

// Frame builds the render tree for the current props, styles, layout and animation state.
func (i *Indicator) Frame() Frame {
	f := Frame{
		Direction: i.direction(),
		Width:     i.layout.Width,
		Height:    i.layout.Height,
	}

	if i.Ready() && i.props.StepCount > 1 {
		track := i.trackBounds()
		f.Track = &Bar{Bounds: track, Color: i.styles.SeparatorUnFinishedColor}

		fill := track
		if f.Direction.IsVertical() {
			fill.Height = i.progress.Get()
		} else {
			fill.Width = i.progress.Get()
		}
		f.Fill = &Bar{Bounds: fill, Color: i.styles.SeparatorFinishedColor}
	}

	f.Markers = make([]Marker, i.props.StepCount)
	for pos := range f.Markers {
		f.Markers[pos] = i.marker(pos)
	}

	f.Labels = make([]Label, len(i.props.Labels))
	for idx, text := range i.props.Labels {
		f.Labels[idx] = i.label(idx, text)
	}

	return f
}

// HitTest returns the step whose marker cell or label contains the point.
func (i *Indicator) HitTest(x, y float64) (int, bool) {
	f := i.Frame()
	for _, m := range f.Markers {
		if m.Cell.Contains(x, y) {
			return m.Index, true
		}
	}
	for _, l := range f.Labels {
		if l.Bounds.Contains(x, y) {
			return l.Index, true
		}
	}
	return 0, false
}

// trackBounds spans from the center of the first cell to the center of the last one.
func (i *Indicator) trackBounds() Rect {
	w, h := i.layout.Width, i.layout.Height
	n := float64(i.props.StepCount)
	stroke := i.styles.SeparatorStrokeWidth

	if i.direction().IsVertical() {
		return Rect{
			X:      (w - stroke) / 2,
			Y:      h / (2 * n),
			Width:  stroke,
			Height: i.layout.ProgressBarSize,
		}
	}
	return Rect{
		X:      w / (2 * n),
		Y:      (h - stroke) / 2,
		Width:  i.layout.ProgressBarSize,
		Height: stroke,
	}
}

func (i *Indicator) cell(pos int) Rect {
	n := float64(i.props.StepCount)
	if i.direction().IsVertical() {
		span := i.layout.Height / n
		return Rect{X: 0, Y: float64(pos) * span, Width: i.layout.Width, Height: span}
	}
	span := i.layout.Width / n
	return Rect{X: float64(pos) * span, Y: 0, Width: span, Height: i.layout.Height}
}

func (i *Indicator) marker(pos int) Marker {
	s := i.styles
	status := Status(pos, i.props.Position())

	m := Marker{
		Index:  pos,
		Status: status,
		Cell:   i.cell(pos),
		ZIndex: style.Sheet.Step.ZIndex,
	}

	switch status {
	case StatusCurrent:
		m.Size, m.BorderRadius = i.CurrentSize()
		m.BorderWidth = s.CurrentStepStrokeWidth
		m.BorderColor = s.StepStrokeCurrentColor
		m.FillColor = s.StepIndicatorCurrentColor
		m.ContentStyle = style.TextStyle{FontSize: s.CurrentStepIndicatorLabelFontSize}
		m.ContentColor = s.StepIndicatorLabelCurrentColor
	case StatusFinished:
		m.Size, m.BorderRadius = s.StepIndicatorSize, s.StepIndicatorSize/2
		m.BorderWidth = s.StepStrokeWidth
		m.BorderColor = s.StepStrokeFinishedColor
		m.FillColor = s.StepIndicatorFinishedColor
		m.ContentStyle = style.TextStyle{FontSize: s.StepIndicatorLabelFontSize}
		m.ContentColor = s.StepIndicatorLabelFinishedColor
	default:
		m.Size, m.BorderRadius = s.StepIndicatorSize, s.StepIndicatorSize/2
		m.BorderWidth = s.StepStrokeWidth
		m.BorderColor = s.StepStrokeUnFinishedColor
		m.FillColor = s.StepIndicatorUnFinishedColor
		m.ContentStyle = style.TextStyle{FontSize: s.StepIndicatorLabelFontSize}
		m.ContentColor = s.StepIndicatorLabelUnFinishedColor
	}

	cx, cy := m.Cell.Center()
	m.Bounds = Rect{X: cx - m.Size/2, Y: cy - m.Size/2, Width: m.Size, Height: m.Size}

	switch {
	case i.props.RenderStepIndicator != nil:
		m.Content = i.props.RenderStepIndicator(StepContext{Position: pos, StepStatus: status})
		m.Custom = true
	case i.props.ShowIndicatorLabel:
		m.Content = strconv.Itoa(pos + 1)
	}

	return m
}

func (i *Indicator) label(idx int, text string) Label {
	s := i.styles

	ts := style.Sheet.StepLabel
	if i.props.LabelTextStyle != nil {
		ts = *i.props.LabelTextStyle
	}
	ts.FontSize = s.LabelSize

	current := idx == i.props.Position()
	l := Label{
		Index:     idx,
		Text:      text,
		Color:     s.LabelColor,
		TextStyle: ts,
		Current:   current,
	}
	if current {
		l.Color = s.CurrentStepLabelColor
	}

	count := float64(len(i.props.Labels))
	pad := style.Sheet.LabelPadding
	if i.direction().IsVertical() {
		span := i.layout.Height / count
		l.Bounds = Rect{
			X:      i.layout.Width + pad,
			Y:      float64(idx) * span,
			Width:  float64(runewidth.StringWidth(text)) * ts.FontSize * glyphAspect,
			Height: span,
		}
		return l
	}

	span := i.layout.Width / count
	l.Bounds = Rect{
		X:      float64(idx) * span,
		Y:      i.layout.Height + pad,
		Width:  span,
		Height: ts.FontSize,
	}
	return l
}
