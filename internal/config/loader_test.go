package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deployah-dev/stepindicator/internal/indicator"
	"github.com/deployah-dev/stepindicator/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LoaderTestSuite struct {
	suite.Suite
	dir string
}

func (s *LoaderTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *LoaderTestSuite) TestLoadYAML() {
	path := s.write("checkout.yaml", `
apiVersion: v1
stepCount: 4
currentPosition: 2
direction: vertical
labels: [Cart, Delivery, Payment, Done]
showIndicatorLabel: false
labelTextStyle:
  fontWeight: bold
  textAlign: left
customStyles:
  stepIndicatorSize: 25
  currentStepLabelColor: "#fe7013"
`)

	f, err := Load(path, nil)
	s.Require().NoError(err)
	s.Equal(4, f.StepCount)
	s.Equal(2, f.CurrentPosition)
	s.Equal([]string{"Cart", "Delivery", "Payment", "Done"}, f.Labels)
	s.Require().NotNil(f.LabelTextStyle)
	s.Equal(style.AlignLeft, f.LabelTextStyle.TextAlign)

	props, err := f.Props()
	s.Require().NoError(err)
	s.Equal(indicator.Vertical, props.Direction)
	s.False(props.ShowIndicatorLabel)
	s.Equal(float64(25), props.CustomStyles["stepIndicatorSize"])
	s.NoError(f.Validate())
	s.Empty(f.Warnings())
}

func (s *LoaderTestSuite) TestLoadJSON() {
	path := s.write("steps.json", `{"apiVersion": "v1", "stepCount": 3}`)

	f, err := Load(path, nil)
	s.Require().NoError(err)

	props, err := f.Props()
	s.Require().NoError(err)
	s.Equal(3, props.StepCount)
	s.Equal(indicator.Horizontal, props.Direction)
	s.True(props.ShowIndicatorLabel)
}

func (s *LoaderTestSuite) TestSubstitutesVariables() {
	path := s.write("vars.yaml", `
apiVersion: v1
stepCount: ${STEPS}
labels: ["${FIRST}", "${SECOND:=Review}"]
customStyles:
  labelColor: "${LABEL_COLOR}"
`)

	f, err := Load(path, map[string]string{
		"STEPS":       "2",
		"FIRST":       "Draft",
		"LABEL_COLOR": "#333333",
	})
	s.Require().NoError(err)
	s.Equal(2, f.StepCount)
	s.Equal([]string{"Draft", "Review"}, f.Labels)
	s.Equal("#333333", f.CustomStyles["labelColor"])
}

func (s *LoaderTestSuite) TestRejectsInvalidFiles() {
	cases := []struct {
		name    string
		content string
		target  error
	}{
		{"missing version", "stepCount: 3", ErrMissingAPIVersion},
		{"empty document", "", ErrMissingAPIVersion},
		{"unknown version", "apiVersion: v9\nstepCount: 3", ErrUnsupportedVersion},
		{"zero steps", "apiVersion: v1\nstepCount: 0", nil},
		{"unknown field", "apiVersion: v1\nstepCount: 3\ncolour: red", nil},
		{"unknown style", "apiVersion: v1\nstepCount: 3\ncustomStyles:\n  glow: 1", nil},
		{"bad direction", "apiVersion: v1\nstepCount: 3\ndirection: diagonal", nil},
		{"bad color", "apiVersion: v1\nstepCount: 3\ncustomStyles:\n  labelColor: red", nil},
	}
	for _, c := range cases {
		s.Run(c.name, func() {
			_, err := Load(s.write("bad.yaml", c.content), nil)
			s.Require().Error(err)
			if c.target != nil {
				s.ErrorIs(err, c.target)
			}
		})
	}
}

func (s *LoaderTestSuite) TestLoadMissingFile() {
	_, err := Load(filepath.Join(s.dir, "nope.yaml"), nil)
	s.Require().Error(err)
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *LoaderTestSuite) TestSaveRoundTrip() {
	f := NewFile("v1")
	f.StepCount = 3
	f.Labels = []string{"One", "Two", "Three"}
	f.CustomStyles = map[string]any{"labelSize": 14}

	path := filepath.Join(s.dir, "nested", "stepindicator.yaml")
	s.Require().NoError(Save(f, path))

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Contains(string(data), "# Step indicator configuration.")
	s.Contains(string(data), "# Number of steps.")

	loaded, err := Load(path, nil)
	s.Require().NoError(err)
	s.Equal(f.Labels, loaded.Labels)
	s.Equal(3, loaded.StepCount)
	s.Equal(float64(14), loaded.CustomStyles["labelSize"])
}

func TestWarnings(t *testing.T) {
	f := &File{APIVersion: "v1", StepCount: 3, CurrentPosition: 5, Labels: []string{"a"}}
	assert.Len(t, f.Warnings(), 2)
}

func TestValidateSemantics(t *testing.T) {
	f := &File{APIVersion: "v1", StepCount: 0, CustomStyles: map[string]any{"labelColor": "nope"}}
	err := f.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, indicator.ErrInvalidStepCount)
	assert.ErrorIs(t, err, style.ErrInvalidColor)
}
