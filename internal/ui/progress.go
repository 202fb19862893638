package ui

import "fmt"

// ProgressTracker names the page a multi-page wizard is on.
type ProgressTracker struct {
	current int
	steps   []string
}

// NewProgressTracker creates a tracker over the given step titles.
func NewProgressTracker(steps ...string) *ProgressTracker {
	return &ProgressTracker{steps: steps}
}

// NextStep advances to the next step.
func (pt *ProgressTracker) NextStep() { pt.current++ }

// Position returns the zero-based index of the current step.
func (pt *ProgressTracker) Position() int { return pt.current }

// Steps returns the step titles.
func (pt *ProgressTracker) Steps() []string { return pt.steps }

// Done reports whether every step has been passed.
func (pt *ProgressTracker) Done() bool { return pt.current >= len(pt.steps) }

// String describes the current step, for example "Step 2/4: Labels".
func (pt *ProgressTracker) String() string {
	if pt.Done() {
		return "Complete"
	}
	return fmt.Sprintf("Step %d/%d: %s", pt.current+1, len(pt.steps), pt.steps[pt.current])
}
