package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/deployah-dev/stepindicator/internal/runtime"
	"github.com/deployah-dev/stepindicator/internal/style"
	"github.com/stretchr/testify/suite"
)

type RootCommandTestSuite struct {
	suite.Suite
	dir string
}

func TestRootCommandTestSuite(t *testing.T) {
	suite.Run(t, new(RootCommandTestSuite))
}

func (s *RootCommandTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv(runtime.ConfigEnvVar, "")
	s.T().Setenv(runtime.EnvFileEnvVar, "")
}

func (s *RootCommandTestSuite) execute(args ...string) (string, error) {
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--quiet"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *RootCommandTestSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *RootCommandTestSuite) TestRender() {
	out, err := s.execute("render", "--steps", "3", "--position", "1", "--labels", "A,B,C", "--width", "30")
	s.Require().NoError(err)

	lines := strings.Split(ansi.Strip(out), "\n")
	s.Require().GreaterOrEqual(len(lines), 4)
	s.Equal("    1  ━━━━━━│ 2 │───── 3", strings.TrimRight(lines[1], " "))
	s.Equal("    A         B         C", strings.TrimRight(lines[3], " "))
}

func (s *RootCommandTestSuite) TestRenderFromFileWithVariables() {
	envFile := s.writeFile(".env", "STEPS=2\n")
	path := s.writeFile("steps.yaml", "apiVersion: v1\nstepCount: ${STEPS}\n")

	out, err := s.execute("render", "-f", path, "--env-file", envFile, "--width", "20")
	s.Require().NoError(err)
	plain := ansi.Strip(out)
	s.Contains(plain, "1")
	s.Contains(plain, "2")
	s.NotContains(plain, "3")
}

func (s *RootCommandTestSuite) TestRenderRejectsBadFlags() {
	_, err := s.execute("render", "--steps", "0")
	s.Error(err)

	_, err = s.execute("render", "--background", "nope")
	s.Error(err)

	_, err = s.execute("render", "--steps", "3", "--style", "labelColor=blue", "--width", "30")
	s.ErrorIs(err, style.ErrInvalidColor)
}

func (s *RootCommandTestSuite) TestStylesJSON() {
	path := s.writeFile("styles.yaml", "apiVersion: v1\nstepCount: 3\ncustomStyles:\n  labelSize: 20\n")

	out, err := s.execute("styles", "-f", path, "--style", "labelColor=#123456", "-o", "json")
	s.Require().NoError(err)

	var resolved map[string]any
	s.Require().NoError(json.Unmarshal([]byte(out), &resolved))
	s.Equal(20.0, resolved["labelSize"])
	s.Equal("#123456", resolved["labelColor"])
	s.Equal(30.0, resolved["stepIndicatorSize"])
}

func (s *RootCommandTestSuite) TestStylesTableAndYAML() {
	out, err := s.execute("styles")
	s.Require().NoError(err)
	s.Contains(ansi.Strip(out), "currentStepIndicatorSize")

	out, err = s.execute("styles", "-o", "yaml")
	s.Require().NoError(err)
	s.Contains(out, "separatorUnFinishedColor:")
	s.Contains(out, "a4d4a5")
}

func (s *RootCommandTestSuite) TestStylesRejectsUnknownFormatAndOption() {
	_, err := s.execute("styles", "-o", "xml")
	s.Error(err)

	_, err = s.execute("styles", "--style", "glow=1")
	s.Error(err)
}

func (s *RootCommandTestSuite) TestValidate() {
	good := s.writeFile("good.yaml", "apiVersion: v1\nstepCount: 3\nlabels: [a, b, c]\n")
	_, err := s.execute("validate", "-f", good)
	s.NoError(err)

	bad := s.writeFile("bad.yaml", "apiVersion: v1\nstepCount: 3\ncustomStyles:\n  labelColor: rgb(300,0,0)\n")
	_, err = s.execute("validate", "-f", bad)
	s.Error(err)

	_, err = s.execute("validate")
	s.Error(err)
}

func (s *RootCommandTestSuite) TestInitWithDefaults() {
	path := filepath.Join(s.dir, "new.yaml")

	_, err := s.execute("init", "--yes", "-o", path)
	s.Require().NoError(err)
	s.FileExists(path)

	_, err = s.execute("validate", "-f", path)
	s.NoError(err)

	_, err = s.execute("init", "--yes", "-o", path)
	s.Error(err, "existing files are kept without --force")

	_, err = s.execute("init", "--yes", "--force", "-o", path)
	s.NoError(err)
}

func (s *RootCommandTestSuite) TestInitDryRun() {
	path := filepath.Join(s.dir, "preview.yaml")

	out, err := s.execute("init", "--yes", "--dry-run", "-o", path)
	s.Require().NoError(err)
	s.Contains(out, "DRY RUN MODE")
	s.Contains(out, "stepCount: 5")
	s.NoFileExists(path)
}
