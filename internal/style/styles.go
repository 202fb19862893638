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

// Package style holds the appearance table of the step indicator and the
// resolver that merges caller overrides onto it.
//
// Overrides are plain maps keyed by option name, as they arrive from YAML or
// JSON indicator files:
//
//	styles, err := style.Resolve(map[string]any{
//		"stepIndicatorSize": 25,
//		"currentStepLabelColor": "#fe7013",
//	})
package style

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

var (
	// ErrUnknownOption is returned when an override names an option that does not exist.
	ErrUnknownOption = errors.New("unknown style option")

	// ErrInvalidValue is returned when an option holds a value outside its domain.
	ErrInvalidValue = errors.New("invalid style value")
)

// Styles is the fully populated appearance configuration of an indicator.
// Sizes and widths are expressed in layout units.
type Styles struct {
	StepIndicatorSize        float64 `json:"stepIndicatorSize" yaml:"stepIndicatorSize" mapstructure:"stepIndicatorSize"`
	CurrentStepIndicatorSize float64 `json:"currentStepIndicatorSize" yaml:"currentStepIndicatorSize" mapstructure:"currentStepIndicatorSize"`
	SeparatorStrokeWidth     float64 `json:"separatorStrokeWidth" yaml:"separatorStrokeWidth" mapstructure:"separatorStrokeWidth"`
	CurrentStepStrokeWidth   float64 `json:"currentStepStrokeWidth" yaml:"currentStepStrokeWidth" mapstructure:"currentStepStrokeWidth"`
	StepStrokeWidth          float64 `json:"stepStrokeWidth" yaml:"stepStrokeWidth" mapstructure:"stepStrokeWidth"`

	StepStrokeCurrentColor    string `json:"stepStrokeCurrentColor" yaml:"stepStrokeCurrentColor" mapstructure:"stepStrokeCurrentColor"`
	StepStrokeFinishedColor   string `json:"stepStrokeFinishedColor" yaml:"stepStrokeFinishedColor" mapstructure:"stepStrokeFinishedColor"`
	StepStrokeUnFinishedColor string `json:"stepStrokeUnFinishedColor" yaml:"stepStrokeUnFinishedColor" mapstructure:"stepStrokeUnFinishedColor"`

	SeparatorFinishedColor   string `json:"separatorFinishedColor" yaml:"separatorFinishedColor" mapstructure:"separatorFinishedColor"`
	SeparatorUnFinishedColor string `json:"separatorUnFinishedColor" yaml:"separatorUnFinishedColor" mapstructure:"separatorUnFinishedColor"`

	StepIndicatorFinishedColor   string `json:"stepIndicatorFinishedColor" yaml:"stepIndicatorFinishedColor" mapstructure:"stepIndicatorFinishedColor"`
	StepIndicatorUnFinishedColor string `json:"stepIndicatorUnFinishedColor" yaml:"stepIndicatorUnFinishedColor" mapstructure:"stepIndicatorUnFinishedColor"`
	StepIndicatorCurrentColor    string `json:"stepIndicatorCurrentColor" yaml:"stepIndicatorCurrentColor" mapstructure:"stepIndicatorCurrentColor"`

	StepIndicatorLabelFontSize        float64 `json:"stepIndicatorLabelFontSize" yaml:"stepIndicatorLabelFontSize" mapstructure:"stepIndicatorLabelFontSize"`
	CurrentStepIndicatorLabelFontSize float64 `json:"currentStepIndicatorLabelFontSize" yaml:"currentStepIndicatorLabelFontSize" mapstructure:"currentStepIndicatorLabelFontSize"`

	StepIndicatorLabelCurrentColor    string `json:"stepIndicatorLabelCurrentColor" yaml:"stepIndicatorLabelCurrentColor" mapstructure:"stepIndicatorLabelCurrentColor"`
	StepIndicatorLabelFinishedColor   string `json:"stepIndicatorLabelFinishedColor" yaml:"stepIndicatorLabelFinishedColor" mapstructure:"stepIndicatorLabelFinishedColor"`
	StepIndicatorLabelUnFinishedColor string `json:"stepIndicatorLabelUnFinishedColor" yaml:"stepIndicatorLabelUnFinishedColor" mapstructure:"stepIndicatorLabelUnFinishedColor"`

	LabelColor            string  `json:"labelColor" yaml:"labelColor" mapstructure:"labelColor"`
	LabelSize             float64 `json:"labelSize" yaml:"labelSize" mapstructure:"labelSize"`
	CurrentStepLabelColor string  `json:"currentStepLabelColor" yaml:"currentStepLabelColor" mapstructure:"currentStepLabelColor"`
}

// defaults is never handed out directly; Defaults returns a copy.
var defaults = Styles{
	StepIndicatorSize:                 30,
	CurrentStepIndicatorSize:          40,
	SeparatorStrokeWidth:              3,
	CurrentStepStrokeWidth:            5,
	StepStrokeWidth:                   0,
	StepStrokeCurrentColor:            "#4aae4f",
	StepStrokeFinishedColor:           "#4aae4f",
	StepStrokeUnFinishedColor:         "#4aae4f",
	SeparatorFinishedColor:            "#4aae4f",
	SeparatorUnFinishedColor:          "#a4d4a5",
	StepIndicatorFinishedColor:        "#4aae4f",
	StepIndicatorUnFinishedColor:      "#a4d4a5",
	StepIndicatorCurrentColor:         "#ffffff",
	StepIndicatorLabelFontSize:        15,
	CurrentStepIndicatorLabelFontSize: 15,
	StepIndicatorLabelCurrentColor:    "#000000",
	StepIndicatorLabelFinishedColor:   "#ffffff",
	StepIndicatorLabelUnFinishedColor: "rgba(255,255,255,0.5)",
	LabelColor:                        "#000000",
	LabelSize:                         13,
	CurrentStepLabelColor:             "#4aae4f",
}

// Defaults returns the default appearance table.
func Defaults() Styles {
	return defaults
}

// Resolve merges overrides onto the pristine defaults.
func Resolve(overrides map[string]any) (Styles, error) {
	return Merge(Defaults(), overrides)
}

// Merge returns base with every option present in overrides replaced.
// Options absent from overrides keep the value from base.
func Merge(base Styles, overrides map[string]any) (Styles, error) {
	if len(overrides) == 0 {
		return base, nil
	}

	names := OptionNames()
	for key := range overrides {
		if !slices.Contains(names, key) {
			return base, fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
	}

	merged := base
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &merged,
		TagName:    "mapstructure",
		DecodeHook: castHook,
	})
	if err != nil {
		return base, fmt.Errorf("failed to create style decoder: %w", err)
	}
	if err := decoder.Decode(overrides); err != nil {
		return base, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	return merged, nil
}

// castHook coerces loosely typed values (numbers written as strings in YAML,
// integers for float options) into the option's declared type.
func castHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Float64:
		return cast.ToFloat64E(data)
	case reflect.String:
		return cast.ToStringE(data)
	default:
		return data, nil
	}
}

// Validate checks that sizes are non-negative and every color parses.
func (s Styles) Validate() error {
	values, err := s.AsMap()
	if err != nil {
		return err
	}

	var errs []error
	for _, name := range OptionNames() {
		switch v := values[name].(type) {
		case float64:
			if v < 0 {
				errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidValue, name, v))
			}
		case string:
			if _, err := ParseColor(v); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// AsMap returns the configuration keyed by option name.
func (s Styles) AsMap() (map[string]any, error) {
	out := make(map[string]any)
	if err := mapstructure.Decode(s, &out); err != nil {
		return nil, fmt.Errorf("failed to convert styles to map: %w", err)
	}
	return out, nil
}

var (
	optionNames     []string
	optionNamesOnce sync.Once
)

// OptionNames returns every style option name in sorted order.
func OptionNames() []string {
	optionNamesOnce.Do(func() {
		t := reflect.TypeOf(Styles{})
		for i := 0; i < t.NumField(); i++ {
			if tag := t.Field(i).Tag.Get("mapstructure"); tag != "" {
				optionNames = append(optionNames, tag)
			}
		}
		sort.Strings(optionNames)
	})
	return slices.Clone(optionNames)
}
