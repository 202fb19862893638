package indicator

// StepStatus classifies a step relative to the current position.
type StepStatus int

const (
	StatusUnfinished StepStatus = iota
	StatusFinished
	StatusCurrent
)

// String returns the lowercase status name.
func (s StepStatus) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusFinished:
		return "finished"
	default:
		return "unfinished"
	}
}

// Status returns Current when stepIndex equals currentPosition, Finished when it
// is before it and Unfinished otherwise.
func Status(stepIndex, currentPosition int) StepStatus {
	switch {
	case stepIndex == currentPosition:
		return StatusCurrent
	case stepIndex < currentPosition:
		return StatusFinished
	default:
		return StatusUnfinished
	}
}
