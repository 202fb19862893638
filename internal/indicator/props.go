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

package indicator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deployah-dev/stepindicator/internal/style"
)

var (
	// ErrInvalidStepCount is returned when fewer than one step is requested.
	ErrInvalidStepCount = errors.New("step count must be at least 1")

	// ErrUnknownDirection is returned for directions other than horizontal and vertical.
	ErrUnknownDirection = errors.New("unknown direction")
)

// Direction is the layout axis of the markers.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// ParseDirection parses a direction name. The empty string is horizontal.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case "", Horizontal:
		return Horizontal, nil
	case Vertical:
		return Vertical, nil
	default:
		return "", fmt.Errorf("%w %q (valid: %s, %s)", ErrUnknownDirection, s, Horizontal, Vertical)
	}
}

// IsVertical reports whether markers are stacked in a column.
func (d Direction) IsVertical() bool {
	return d == Vertical
}

// StepContext is handed to a custom marker renderer.
type StepContext struct {
	Position   int
	StepStatus StepStatus
}

// Props is the caller-owned configuration of an indicator. The indicator never
// changes CurrentPosition itself; callers react to OnPress and call SetProps.
type Props struct {
	CurrentPosition int
	StepCount       int

	// CustomStyles overrides entries of style.Defaults by option name.
	CustomStyles map[string]any

	Direction Direction
	Labels    []string

	// LabelTextStyle replaces the default label text style. Its font size is
	// always taken from the labelSize style option.
	LabelTextStyle *style.TextStyle

	OnPress func(position int)

	// RenderStepIndicator, when set, replaces the content drawn inside every marker.
	RenderStepIndicator func(StepContext) string

	ShowIndicatorLabel bool
}

// DefaultProps returns five horizontal steps positioned on the first one.
func DefaultProps() Props {
	return Props{
		CurrentPosition:    0,
		StepCount:          5,
		CustomStyles:       map[string]any{},
		Direction:          Horizontal,
		Labels:             []string{},
		ShowIndicatorLabel: true,
	}
}

// Validate checks the step count and direction.
func (p Props) Validate() error {
	if p.StepCount < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidStepCount, p.StepCount)
	}
	if _, err := ParseDirection(string(p.Direction)); err != nil {
		return err
	}
	return nil
}

// Position returns CurrentPosition clamped to [0, StepCount-1].
func (p Props) Position() int {
	return clamp(p.CurrentPosition, 0, max(p.StepCount-1, 0))
}
