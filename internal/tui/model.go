package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/deployah-dev/stepindicator/internal/indicator"
	"github.com/deployah-dev/stepindicator/internal/logging"
	"github.com/deployah-dev/stepindicator/internal/ui"
)

// FrameInterval is the delay between animation frames.
const FrameInterval = time.Second / 60

// Metric names reported through the observable logger.
const (
	MetricStepsSelected = "stepindicator.steps.selected"
	MetricFrames        = "stepindicator.frames.rendered"
)

// frameMsg advances running animations.
type frameMsg time.Time

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ui.ColorBrightCyan))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorGray))
)

// Model hosts an indicator in a bubbletea program. It plays the caller's
// role: taps and key presses move the position it owns and hand it back to
// the indicator through SetProps.
type Model struct {
	ind      *indicator.Indicator
	props    indicator.Props
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	logger   *logging.ObservableLogger
	title    string

	width    int
	height   int
	ticking  bool
	frames   int
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithTitle sets a heading drawn above the indicator.
func WithTitle(title string) ModelOption {
	return func(m *Model) {
		m.title = title
	}
}

// WithRenderer sets the frame renderer.
func WithRenderer(r *Renderer) ModelOption {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithKeyMap sets the key bindings.
func WithKeyMap(keys KeyMap) ModelOption {
	return func(m *Model) {
		m.keys = keys
	}
}

// WithObservableLogger sets the logger selections and frame counts are reported to.
func WithObservableLogger(logger *logging.ObservableLogger) ModelOption {
	return func(m *Model) {
		m.logger = logger
	}
}

// NewModel wraps ind. Any OnPress callback already set on the indicator is
// still invoked before the model moves to the pressed step.
func NewModel(ind *indicator.Indicator, opts ...ModelOption) (*Model, error) {
	m := &Model{
		ind:      ind,
		renderer: NewRenderer(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logging.NewObservableLogger(log.Default()),
	}
	for _, opt := range opts {
		opt(m)
	}

	props := ind.Props()
	callerOnPress := props.OnPress
	props.OnPress = func(position int) {
		if callerOnPress != nil {
			callerOnPress(position)
		}
		m.selectPosition(position, "tap")
	}
	if err := ind.SetProps(props); err != nil {
		return nil, fmt.Errorf("failed to attach press handler: %w", err)
	}
	m.props = props

	return m, nil
}

// Run starts an interactive program for m and blocks until it exits.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("indicator program failed: %w", err)
	}
	m.logger.Metric(ctx, MetricFrames, float64(m.frames), nil)
	return nil
}

// Position returns the step the model currently has selected.
func (m *Model) Position() int {
	return m.props.Position()
}

// Frames returns the number of animation frames processed.
func (m *Model) Frames() int {
	return m.frames
}

// Init implements tea.Model. Nothing happens until the window size arrives.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.renderer.Measure(m.ind, msg.Width, msg.Height-m.chromeHeight())
		return m, m.startTicking()

	case frameMsg:
		m.frames++
		if m.ind.Tick(time.Time(msg)) {
			return m, tick()
		}
		m.ticking = false
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		x, y := m.renderer.PointAt(m.ind.Frame(), msg.X, msg.Y-m.headerHeight())
		if position, ok := m.ind.HitTest(x, y); ok {
			m.ind.Press(position)
		}
		return m, m.startTicking()

	case tea.KeyMsg:
		current := m.props.Position()
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.selectPosition(current-1, "key")
		case key.Matches(msg, m.keys.Next):
			m.selectPosition(current+1, "key")
		case key.Matches(msg, m.keys.First):
			m.selectPosition(0, "key")
		case key.Matches(msg, m.keys.Last):
			m.selectPosition(m.props.StepCount-1, "key")
		case key.Matches(msg, m.keys.Jump):
			if n, err := strconv.Atoi(msg.String()); err == nil {
				m.selectPosition(n-1, "key")
			}
		}
		return m, m.startTicking()
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n\n")
	}

	body := m.renderer.Render(m.ind.Frame())
	if body == "" {
		body = statusStyle.Render("measuring…")
	}
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) status() string {
	position := m.props.Position()
	s := fmt.Sprintf("Step %d of %d", position+1, m.props.StepCount)
	if position < len(m.props.Labels) {
		s += " · " + m.props.Labels[position]
	}
	return s
}

// selectPosition moves to position when it is a valid, different step.
func (m *Model) selectPosition(position int, source string) {
	if position < 0 || position >= m.props.StepCount || position == m.props.Position() {
		return
	}

	m.props.CurrentPosition = position
	if err := m.ind.SetProps(m.props); err != nil {
		m.logger.Error("Failed to select step", "position", position, "err", err)
		return
	}

	m.logger.Debug("Step selected", "position", position, "source", source)
	m.logger.Metric(context.Background(), MetricStepsSelected, 1, map[string]string{"source": source})
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking || !m.ind.Animating() {
		return nil
	}
	m.ticking = true
	return tick()
}

func (m *Model) headerHeight() int {
	if m.title == "" {
		return 0
	}
	return 2
}

// chromeHeight is every line of the view that is not the indicator itself.
func (m *Model) chromeHeight() int {
	return m.headerHeight() + 3
}

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Snapshot measures ind for an area of cols x rows cells, settles its
// animations and renders the final frame.
func Snapshot(ind *indicator.Indicator, r *Renderer, cols, rows int) string {
	r.Measure(ind, cols, rows)
	ind.Settle()
	return r.Render(ind.Frame())
}
