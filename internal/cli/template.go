package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/deployah-dev/stepindicator/internal/indicator"
)

// MarkerData is the value marker templates are executed with.
type MarkerData struct {
	Position int
	Number   int
	Status   string
	Label    string
}

// MarkerRenderer compiles a marker content template. Templates have the
// sprig function map, for example:
//
//	{{ if eq .Status "finished" }}✓{{ else }}{{ .Number }}{{ end }}
//
// A template that fails at render time falls back to the step number.
func MarkerRenderer(text string, labels []string) (func(indicator.StepContext) string, error) {
	tmpl, err := template.New("marker").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid marker template: %w", err)
	}

	return func(ctx indicator.StepContext) string {
		data := MarkerData{
			Position: ctx.Position,
			Number:   ctx.Position + 1,
			Status:   ctx.StepStatus.String(),
		}
		if ctx.Position < len(labels) {
			data.Label = labels[ctx.Position]
		}

		var sb strings.Builder
		if err := tmpl.Execute(&sb, data); err != nil {
			return strconv.Itoa(data.Number)
		}
		return strings.TrimSpace(sb.String())
	}, nil
}
