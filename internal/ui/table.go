package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Column represents a table column definition
type Column struct {
	Title     string
	Key       string
	Width     int
	MinWidth  int
	MaxWidth  int
	StyleFunc func(value string) lipgloss.Style
	Hidden    bool
}

// Row represents a table row keyed by column key.
type Row map[string]string

// Table renders rows as aligned, styled columns.
type Table struct {
	columns        []Column
	rows           []Row
	headerStyle    lipgloss.Style
	separatorStyle lipgloss.Style
	maxWidth       int
}

// NewTable creates a table sized to the terminal.
func NewTable() *Table {
	return &Table{
		headerStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorBrightCyan)).Padding(0, 1),
		separatorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightGray)),
		maxWidth:       TerminalWidth(),
	}
}

// SetColumns sets the table columns
func (t *Table) SetColumns(columns []Column) *Table {
	t.columns = columns
	return t
}

// SetRows sets the table data
func (t *Table) SetRows(rows []Row) *Table {
	t.rows = rows
	return t
}

// SetMaxWidth sets the maximum table width
func (t *Table) SetMaxWidth(width int) *Table {
	t.maxWidth = width
	return t
}

func (t *Table) visibleColumns() []Column {
	var visible []Column
	for _, col := range t.columns {
		if !col.Hidden {
			visible = append(visible, col)
		}
	}
	return visible
}

// columnWidths sizes each column to its content, then shrinks flexible
// columns to fit the maximum width.
func (t *Table) columnWidths(columns []Column) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = max(runewidth.StringWidth(col.Title), col.MinWidth)
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		for _, row := range t.rows {
			widths[i] = max(widths[i], runewidth.StringWidth(row[col.Key]))
		}
	}

	totalFixed, flexible := 0, 0
	for i, col := range columns {
		if col.MaxWidth > 0 && widths[i] > col.MaxWidth {
			widths[i] = col.MaxWidth
		}
		if col.Width > 0 {
			totalFixed += widths[i]
		} else {
			flexible++
		}
	}

	if flexible > 0 && t.maxWidth > 0 {
		available := t.maxWidth - totalFixed - len(columns)*2
		if available > 0 {
			perColumn := available / flexible
			for i, col := range columns {
				if col.Width == 0 {
					widths[i] = min(widths[i], perColumn)
				}
			}
		}
	}

	return widths
}

// Render renders the table as a string
func (t *Table) Render() string {
	columns := t.visibleColumns()
	if len(columns) == 0 {
		return ""
	}

	var sb strings.Builder
	widths := t.columnWidths(columns)

	headers := make([]string, len(columns))
	for i, col := range columns {
		header := lipgloss.NewStyle().
			Width(widths[i]).
			MaxWidth(widths[i]).
			Inline(true).
			Render(TruncateText(col.Title, widths[i]))
		headers[i] = t.headerStyle.Render(header)
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, headers...))
	sb.WriteString("\n")

	total := 0
	for _, width := range widths {
		total += width + 2
	}
	sb.WriteString(t.separatorStyle.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	for _, row := range t.rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			value := row[col.Key]
			if value == "" {
				value = "-"
			}

			cellStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightWhite))
			if col.StyleFunc != nil {
				cellStyle = col.StyleFunc(value)
			}

			cell := cellStyle.
				Width(widths[i]).
				MaxWidth(widths[i]).
				Inline(true).
				Render(TruncateText(value, widths[i]))
			cells[i] = lipgloss.NewStyle().Padding(0, 1).Render(cell)
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, cells...))
		sb.WriteString("\n")
	}

	return sb.String()
}

// TruncateText shortens text to maxWidth cells with an ellipsis.
func TruncateText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	return runewidth.Truncate(text, maxWidth, "…")
}

// TerminalWidth returns the width of the terminal on stdout, or TableMaxWidth.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return TableMaxWidth
	}
	return width
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ValueStyle colors hex color values with the color they name and leaves
// everything else plain.
func ValueStyle(value string) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightWhite))
	if !strings.HasPrefix(value, "#") {
		return s
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return s
	}
	s = s.Background(lipgloss.Color(c.Hex()))
	// Dark text on light swatches.
	if _, _, l := c.Hcl(); l > 0.6 {
		s = s.Foreground(lipgloss.Color("#000000"))
	}
	return s
}
