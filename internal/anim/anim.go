// Package anim provides time-driven scalar animations.
//
// Nothing in this package schedules work on its own: values are advanced
// explicitly with a timestamp, which keeps animations deterministic and
// testable without a render loop.
package anim

import (
	"math"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOut accelerates from zero and decelerates to the target.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Tween interpolates between two values over a fixed duration.
type Tween struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
	Ease     Easing
}

// End returns the instant the tween reaches its target.
func (t Tween) End() time.Time {
	return t.Start.Add(t.Duration)
}

// Done reports whether the tween has reached its target at now.
func (t Tween) Done(now time.Time) bool {
	return !now.Before(t.End())
}

// At returns the interpolated value at now.
func (t Tween) At(now time.Time) float64 {
	if t.Duration <= 0 || t.Done(now) {
		return t.To
	}
	elapsed := now.Sub(t.Start)
	if elapsed <= 0 {
		return t.From
	}
	progress := float64(elapsed) / float64(t.Duration)
	if t.Ease != nil {
		progress = t.Ease(progress)
	}
	return t.From + (t.To-t.From)*progress
}

// Value is an animated scalar. The zero value is a settled value of 0.
type Value struct {
	current float64
	tween   *Tween
}

// NewValue returns a settled value.
func NewValue(v float64) *Value {
	return &Value{current: v}
}

// Get returns the current value.
func (v *Value) Get() float64 {
	return v.current
}

// Target returns the value the animation is heading to, or the current value when idle.
func (v *Value) Target() float64 {
	if v.tween != nil {
		return v.tween.To
	}
	return v.current
}

// Animating reports whether a tween is in flight.
func (v *Value) Animating() bool {
	return v.tween != nil
}

// Set jumps to x and drops any tween in flight.
func (v *Value) Set(x float64) {
	v.current = x
	v.tween = nil
}

// AnimateTo starts a tween from the current value to target, replacing any tween in flight.
func (v *Value) AnimateTo(target float64, start time.Time, d time.Duration, ease Easing) {
	v.tween = &Tween{From: v.current, To: target, Start: start, Duration: d, Ease: ease}
}

// Advance moves the value to its position at now and reports whether it is settled.
func (v *Value) Advance(now time.Time) bool {
	if v.tween == nil {
		return true
	}
	if v.tween.Done(now) {
		v.current = v.tween.To
		v.tween = nil
		return true
	}
	v.current = v.tween.At(now)
	return false
}

// Finish jumps to the target of the tween in flight.
func (v *Value) Finish() {
	if v.tween != nil {
		v.current = v.tween.To
		v.tween = nil
	}
}
