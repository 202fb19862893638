package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/deployah-dev/stepindicator/internal/style"
	"github.com/deployah-dev/stepindicator/internal/ui"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
)

// StyleColumns returns the columns of the style listing.
func StyleColumns() []ui.Column {
	return []ui.Column{
		{
			Title:    "OPTION",
			Key:      "option",
			MinWidth: 20,
			StyleFunc: func(string) lipgloss.Style {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorBrightWhite))
			},
		},
		{
			Title:     "VALUE",
			Key:       "value",
			MinWidth:  8,
			MaxWidth:  24,
			StyleFunc: ui.ValueStyle,
		},
		{
			Title:    "DEFAULT",
			Key:      "default",
			MinWidth: 8,
			MaxWidth: 24,
			StyleFunc: func(string) lipgloss.Style {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorGray))
			},
		},
	}
}

// StyleRows lists every option of styles next to its default value.
func StyleRows(s style.Styles) ([]ui.Row, error) {
	values, err := s.AsMap()
	if err != nil {
		return nil, err
	}
	defaults, err := style.Defaults().AsMap()
	if err != nil {
		return nil, err
	}

	rows := make([]ui.Row, 0, len(values))
	for _, name := range style.OptionNames() {
		rows = append(rows, ui.Row{
			"option":  name,
			"value":   cast.ToString(values[name]),
			"default": cast.ToString(defaults[name]),
		})
	}
	return rows, nil
}

// Colorize applies syntax highlighting for the given chroma lexer when
// stdout is a terminal.
func Colorize(data []byte, language string) (string, error) {
	if !ui.IsTerminal() {
		return string(data), nil
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	theme := styles.Get("github")
	if theme == nil {
		theme = styles.Fallback
	}

	formatter := formatters.Get("terminal")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, string(data))
	if err != nil {
		return "", fmt.Errorf("failed to tokenize %s: %w", language, err)
	}

	var result strings.Builder
	if err := formatter.Format(&result, theme, iterator); err != nil {
		return "", fmt.Errorf("failed to format %s: %w", language, err)
	}
	return result.String(), nil
}

// RunSummary describes how an interactive session ended.
func RunSummary(position, steps, frames int) string {
	return fmt.Sprintf("Finished on the %s of %d steps after %s animation frames",
		humanize.Ordinal(position+1), steps, humanize.Comma(int64(frames)))
}
