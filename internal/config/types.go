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

// Package config loads step indicator files: YAML or JSON documents that
// describe the props of an indicator, with ${VAR} substitution and schema
// validation.
package config

import (
	"errors"
	"fmt"

	"github.com/deployah-dev/stepindicator/internal/indicator"
	"github.com/deployah-dev/stepindicator/internal/style"
)

// File is the decoded content of an indicator file.
type File struct {
	APIVersion         string           `json:"apiVersion" yaml:"apiVersion" mapstructure:"apiVersion"`
	StepCount          int              `json:"stepCount" yaml:"stepCount" mapstructure:"stepCount"`
	CurrentPosition    int              `json:"currentPosition,omitempty" yaml:"currentPosition,omitempty" mapstructure:"currentPosition"`
	Direction          string           `json:"direction,omitempty" yaml:"direction,omitempty" mapstructure:"direction"`
	Labels             []string         `json:"labels,omitempty" yaml:"labels,omitempty" mapstructure:"labels"`
	ShowIndicatorLabel *bool            `json:"showIndicatorLabel,omitempty" yaml:"showIndicatorLabel,omitempty" mapstructure:"showIndicatorLabel"`
	MarkerTemplate     string           `json:"markerTemplate,omitempty" yaml:"markerTemplate,omitempty" mapstructure:"markerTemplate"`
	LabelTextStyle     *style.TextStyle `json:"labelTextStyle,omitempty" yaml:"labelTextStyle,omitempty" mapstructure:"labelTextStyle"`
	CustomStyles       map[string]any   `json:"customStyles,omitempty" yaml:"customStyles,omitempty" mapstructure:"customStyles"`
}

// NewFile returns a file describing the default indicator.
func NewFile(version string) *File {
	props := indicator.DefaultProps()
	show := props.ShowIndicatorLabel
	return &File{
		APIVersion:         version,
		StepCount:          props.StepCount,
		Direction:          string(props.Direction),
		ShowIndicatorLabel: &show,
	}
}

// Props converts the file into indicator props. Callbacks and custom
// renderers are left for the caller to attach.
func (f *File) Props() (indicator.Props, error) {
	props := indicator.DefaultProps()
	props.StepCount = f.StepCount
	props.CurrentPosition = f.CurrentPosition
	props.Labels = f.Labels
	props.CustomStyles = f.CustomStyles
	props.LabelTextStyle = f.LabelTextStyle
	if f.ShowIndicatorLabel != nil {
		props.ShowIndicatorLabel = *f.ShowIndicatorLabel
	}

	direction, err := indicator.ParseDirection(f.Direction)
	if err != nil {
		return props, err
	}
	props.Direction = direction

	return props, props.Validate()
}

// Validate checks what the schema cannot: that the props are usable and
// every style override resolves to a valid table.
func (f *File) Validate() error {
	var errs []error
	if _, err := f.Props(); err != nil {
		errs = append(errs, err)
	}

	styles, err := style.Resolve(f.CustomStyles)
	if err != nil {
		errs = append(errs, err)
	} else if err := styles.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Warnings lists settings that are accepted but probably unintended.
func (f *File) Warnings() []string {
	var warnings []string
	if len(f.Labels) > 0 && len(f.Labels) != f.StepCount {
		warnings = append(warnings, fmt.Sprintf("%d labels for %d steps, labels will not line up with markers", len(f.Labels), f.StepCount))
	}
	if f.CurrentPosition < 0 || f.CurrentPosition >= f.StepCount {
		warnings = append(warnings, fmt.Sprintf("currentPosition %d is outside [0, %d] and will be clamped", f.CurrentPosition, f.StepCount-1))
	}
	return warnings
}
