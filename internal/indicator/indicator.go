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

// Package indicator implements a step indicator: a row (or column) of step
// markers joined by a progress track, with optional labels.
//
// The indicator is headless. A host measures it with Measure, advances its
// animations with Tick and draws the declarative tree returned by Frame.
// Taps are reported back through Props.OnPress; moving to another step is
// the caller's job:
//
//	props := indicator.DefaultProps()
//	props.OnPress = func(i int) { props.CurrentPosition = i; ind.SetProps(props) }
//	ind, err := indicator.New(props)
//	ind.Measure(400, 40)
//	for ind.Tick(time.Now()) { ... draw ind.Frame() ... }
package indicator

import (
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/charmbracelet/log"
	"github.com/deployah-dev/stepindicator/internal/anim"
	"github.com/deployah-dev/stepindicator/internal/style"
)

const (
	// DefaultSlideDuration is how long the track fill takes to reach a new position.
	DefaultSlideDuration = 200 * time.Millisecond

	// DefaultGrowDuration is how long the current marker takes to grow once the fill arrived.
	DefaultGrowDuration = 100 * time.Millisecond
)

// Layout is the measured size of the step container and the derived track length.
// Every field is zero until the host reports a measurement.
type Layout struct {
	Width           float64
	Height          float64
	ProgressBarSize float64
}

// Indicator is a stateful step indicator. It is not safe for concurrent use;
// all calls are expected from the host's UI loop.
type Indicator struct {
	props         Props
	styles        style.Styles
	layout        Layout
	trackMeasured bool

	progress     *anim.Value
	size         *anim.Value
	borderRadius *anim.Value
	seq          sequence

	clock         anim.Clock
	slideDuration time.Duration
	growDuration  time.Duration
	easing        anim.Easing
	logger        *log.Logger
}

// Option configures an Indicator.
type Option func(*Indicator)

// WithClock sets the time source used to start animations.
func WithClock(clock anim.Clock) Option {
	return func(i *Indicator) {
		i.clock = clock
	}
}

// WithDurations sets the slide and grow durations.
func WithDurations(slide, grow time.Duration) Option {
	return func(i *Indicator) {
		i.slideDuration = slide
		i.growDuration = grow
	}
}

// WithEasing sets the easing applied to every animation.
func WithEasing(easing anim.Easing) Option {
	return func(i *Indicator) {
		i.easing = easing
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(i *Indicator) {
		i.logger = logger
	}
}

// New creates an indicator. Animations do not start until the first
// measurement establishes the track length.
func New(props Props, opts ...Option) (*Indicator, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}

	styles, err := resolveStyles(props.CustomStyles)
	if err != nil {
		return nil, err
	}

	i := &Indicator{
		props:         props,
		styles:        styles,
		progress:      anim.NewValue(0),
		size:          anim.NewValue(styles.StepIndicatorSize),
		borderRadius:  anim.NewValue(styles.StepIndicatorSize / 2),
		clock:         time.Now,
		slideDuration: DefaultSlideDuration,
		growDuration:  DefaultGrowDuration,
		easing:        anim.EaseInOut,
		logger:        log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

// resolveStyles resolves overrides against the defaults and rejects values
// that cannot be drawn.
func resolveStyles(overrides map[string]any) (style.Styles, error) {
	styles, err := style.Resolve(overrides)
	if err != nil {
		return style.Styles{}, fmt.Errorf("failed to resolve custom styles: %w", err)
	}
	if err := styles.Validate(); err != nil {
		return style.Styles{}, fmt.Errorf("invalid custom styles: %w", err)
	}
	return styles, nil
}

// Props returns the current props.
func (i *Indicator) Props() Props {
	return i.props
}

// Styles returns the resolved appearance configuration.
func (i *Indicator) Styles() style.Styles {
	return i.styles
}

// Layout returns the last measurement.
func (i *Indicator) Layout() Layout {
	return i.layout
}

// Ready reports whether a real measurement is available.
func (i *Indicator) Ready() bool {
	return i.layout.Width != 0
}

// SetProps replaces the props. A changed position starts a new animation
// sequence and a changed CustomStyles map is resolved afresh against the
// defaults. Invalid props leave the indicator untouched.
func (i *Indicator) SetProps(props Props) error {
	if err := props.Validate(); err != nil {
		return err
	}

	if !reflect.DeepEqual(props.CustomStyles, i.props.CustomStyles) {
		styles, err := resolveStyles(props.CustomStyles)
		if err != nil {
			return err
		}
		i.styles = styles
		i.restyleIdle()
	}

	prev := i.props
	i.props = props

	trackChanged := false
	if props.StepCount != prev.StepCount || props.Direction != prev.Direction {
		trackChanged = i.remeasureTrack()
	}
	if trackChanged || props.CurrentPosition != prev.CurrentPosition {
		i.onPositionChanged(props.CurrentPosition)
	}

	return nil
}

// Measure records the size of the step container. When the derived track
// length changes the current position is animated again against it.
func (i *Indicator) Measure(width, height float64) {
	i.layout.Width = width
	i.layout.Height = height
	if width == 0 {
		return
	}

	if i.remeasureTrack() {
		i.onPositionChanged(i.props.CurrentPosition)
	}
}

// remeasureTrack updates the track length and reports whether this is the
// first measurement or the length changed.
func (i *Indicator) remeasureTrack() bool {
	if !i.Ready() {
		return false
	}
	track := i.trackLength()
	if i.trackMeasured && track == i.layout.ProgressBarSize {
		return false
	}
	i.logger.Debug("Track measured", "size", track, "direction", i.direction())
	i.trackMeasured = true
	i.layout.ProgressBarSize = track
	return true
}

// Press dispatches a tap on the step at position.
func (i *Indicator) Press(position int) {
	i.logger.Debug("Step pressed", "position", position)
	if i.props.OnPress != nil {
		i.props.OnPress(position)
	}
}

// trackLength is the distance between the first and the last marker centers.
func (i *Indicator) trackLength() float64 {
	extent := i.layout.Width
	if i.direction().IsVertical() {
		extent = i.layout.Height
	}
	return extent - extent/float64(i.props.StepCount)
}

func (i *Indicator) direction() Direction {
	if i.props.Direction == "" {
		return Horizontal
	}
	return i.props.Direction
}
