package indicator

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Phase is the stage of the position animation sequence.
type Phase int

const (
	// PhaseIdle means no animation is running.
	PhaseIdle Phase = iota
	// PhaseSliding means the track fill is moving to the new position.
	PhaseSliding
	// PhaseGrowing means the current marker is growing to its emphasized size.
	PhaseGrowing
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSliding:
		return "sliding"
	case PhaseGrowing:
		return "growing"
	default:
		return "idle"
	}
}

// sequence is the single in-flight slide-then-grow animation. Starting a new
// sequence replaces it wholesale, so a superseded sequence has no way to
// reach its grow phase.
type sequence struct {
	generation uint64
	phase      Phase
	position   int
	slideEnd   time.Time
}

// Phase returns the phase of the running sequence.
func (i *Indicator) Phase() Phase {
	return i.seq.phase
}

// Generation returns the number of sequences started so far.
func (i *Indicator) Generation() uint64 {
	return i.seq.generation
}

// Animating reports whether Tick still has work to do.
func (i *Indicator) Animating() bool {
	return i.seq.phase != PhaseIdle
}

// Progress returns the current extent of the track fill.
func (i *Indicator) Progress() float64 {
	return i.progress.Get()
}

// ProgressTarget returns the extent the track fill is heading to.
func (i *Indicator) ProgressTarget() float64 {
	return i.progress.Target()
}

// CurrentSize returns the animated size and corner radius of the current marker.
func (i *Indicator) CurrentSize() (size, radius float64) {
	return i.size.Get(), i.borderRadius.Get()
}

// onPositionChanged starts a new slide-then-grow sequence towards position.
func (i *Indicator) onPositionChanged(position int) {
	count := i.props.StepCount
	pos := clamp(position, 0, max(count-1, 0))

	target := 0.0
	if count > 1 {
		target = i.layout.ProgressBarSize / float64(count-1) * float64(pos)
	}

	normal := i.styles.StepIndicatorSize
	i.size.Set(normal)
	i.borderRadius.Set(normal / 2)

	now := i.clock()
	i.progress.AnimateTo(target, now, i.slideDuration, i.easing)
	i.seq = sequence{
		generation: i.seq.generation + 1,
		phase:      PhaseSliding,
		position:   pos,
		slideEnd:   now.Add(i.slideDuration),
	}

	i.logger.Debug("Animating to position",
		"position", pos,
		"requested", position,
		"target", target,
		"generation", i.seq.generation,
	)
}

// Tick advances the running sequence to now and reports whether it is still animating.
// The grow phase starts at the instant the slide completed, not at the tick
// that observed the completion.
func (i *Indicator) Tick(now time.Time) bool {
	switch i.seq.phase {
	case PhaseSliding:
		if !i.progress.Advance(now) {
			return true
		}
		i.startGrowing(i.seq.slideEnd)
		fallthrough
	case PhaseGrowing:
		sized := i.size.Advance(now)
		rounded := i.borderRadius.Advance(now)
		if sized && rounded {
			i.seq.phase = PhaseIdle
			i.logger.Debug("Animation settled", "position", i.seq.position, "generation", i.seq.generation)
			return false
		}
		return true
	default:
		return false
	}
}

// Settle jumps every running animation to its final state.
func (i *Indicator) Settle() {
	switch i.seq.phase {
	case PhaseSliding:
		i.progress.Finish()
		i.startGrowing(i.seq.slideEnd)
		fallthrough
	case PhaseGrowing:
		i.size.Finish()
		i.borderRadius.Finish()
		i.seq.phase = PhaseIdle
	}
}

func (i *Indicator) startGrowing(start time.Time) {
	current := i.styles.CurrentStepIndicatorSize
	i.size.AnimateTo(current, start, i.growDuration, i.easing)
	i.borderRadius.AnimateTo(current/2, start, i.growDuration, i.easing)
	i.seq.phase = PhaseGrowing
}

// restyleIdle moves a settled current marker to the sizes of a new style table.
func (i *Indicator) restyleIdle() {
	if i.seq.phase != PhaseIdle {
		return
	}
	size := i.styles.StepIndicatorSize
	if i.seq.generation > 0 {
		size = i.styles.CurrentStepIndicatorSize
	}
	i.size.Set(size)
	i.borderRadius.Set(size / 2)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
