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

package style

// FlexDirection is the main axis of a box.
type FlexDirection string

const (
	FlexRow    FlexDirection = "row"
	FlexColumn FlexDirection = "column"
)

// Align controls placement of children along an axis.
type Align string

const (
	AlignCenter      Align = "center"
	AlignSpaceAround Align = "space-around"
	AlignLeft        Align = "left"
	AlignRight       Align = "right"
)

// TransparentColor is the background of containers that draw nothing themselves.
const TransparentColor = "transparent"

// Box describes the static geometry of a container.
type Box struct {
	FlexDirection   FlexDirection
	AlignItems      Align
	JustifyContent  Align
	BackgroundColor string
	Flex            int
	ZIndex          int
}

// TextStyle describes how a piece of text is drawn.
type TextStyle struct {
	FontSize   float64 `json:"fontSize,omitempty" yaml:"fontSize,omitempty" mapstructure:"fontSize"`
	FontWeight string  `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty" mapstructure:"fontWeight"`
	TextAlign  Align   `json:"textAlign,omitempty" yaml:"textAlign,omitempty" mapstructure:"textAlign"`
	Italic     bool    `json:"italic,omitempty" yaml:"italic,omitempty" mapstructure:"italic"`
	Underline  bool    `json:"underline,omitempty" yaml:"underline,omitempty" mapstructure:"underline"`
}

// Bold reports whether the font weight should be drawn bold.
func (t TextStyle) Bold() bool {
	switch t.FontWeight {
	case "bold", "600", "700", "800", "900":
		return true
	}
	return false
}

// sheet is the static table of container, step and label geometry.
type sheet struct {
	Container              Box
	StepIndicatorContainer Box
	StepLabelsContainer    Box
	Step                   Box
	StepContainer          Box
	StepLabel              TextStyle
	StepLabelItem          Box

	// LabelPadding is the gap between the marker axis and the label axis.
	LabelPadding float64
}

// Sheet holds the layout constants shared by every indicator.
var Sheet = sheet{
	Container: Box{
		BackgroundColor: TransparentColor,
	},
	StepIndicatorContainer: Box{
		FlexDirection:   FlexRow,
		AlignItems:      AlignCenter,
		JustifyContent:  AlignSpaceAround,
		BackgroundColor: TransparentColor,
	},
	StepLabelsContainer: Box{
		AlignItems:     AlignCenter,
		JustifyContent: AlignSpaceAround,
	},
	Step: Box{
		AlignItems:     AlignCenter,
		JustifyContent: AlignCenter,
		ZIndex:         2,
	},
	StepContainer: Box{
		Flex:           1,
		FlexDirection:  FlexRow,
		AlignItems:     AlignCenter,
		JustifyContent: AlignCenter,
	},
	StepLabel: TextStyle{
		FontSize:   12,
		TextAlign:  AlignCenter,
		FontWeight: "500",
	},
	StepLabelItem: Box{
		Flex:           1,
		AlignItems:     AlignCenter,
		JustifyContent: AlignCenter,
	},
	LabelPadding: 4,
}
