package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
	yamlv3 "gopkg.in/yaml.v3"
	"sigs.k8s.io/yaml"
)

// DefaultPath is the indicator file looked up when none is given.
const DefaultPath = "stepindicator.yaml"

// Load reads the indicator file at path, substitutes variables and
// validates it against the schema named by its apiVersion.
func Load(path string, variables map[string]string) (*File, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read indicator file: %w", err)
	}

	f, err := Parse(data, variables)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML or JSON indicator content.
func Parse(data []byte, variables map[string]string) (*File, error) {
	substituted, err := SubstituteVariables(data, variables)
	if err != nil {
		return nil, err
	}

	var obj map[string]any
	if err := yaml.Unmarshal(substituted, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse indicator YAML: %w", err)
	}
	if obj == nil {
		return nil, ErrMissingAPIVersion
	}

	version, err := ValidateAPIVersion(obj)
	if err != nil {
		return nil, err
	}
	if err := ValidateSchema(obj, version); err != nil {
		return nil, err
	}

	return Decode(obj)
}

// Decode converts a schema-valid document into a File.
func Decode(obj map[string]any) (*File, error) {
	var f File
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &f,
		DecodeHook: castHook,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(obj); err != nil {
		return nil, fmt.Errorf("failed to decode indicator file: %w", err)
	}
	return &f, nil
}

// castHook turns JSON numbers into the integer fields of File.
func castHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int:
		return cast.ToIntE(data)
	case reflect.Float64:
		return cast.ToFloat64E(data)
	default:
		return data, nil
	}
}

// fieldComments document the keys of files written by Save.
var fieldComments = map[string]string{
	"stepCount":          "Number of steps.",
	"currentPosition":    "Zero-based index of the current step.",
	"direction":          "horizontal or vertical.",
	"labels":             "Text shown next to each step.",
	"showIndicatorLabel": "Show the step number inside each marker.",
	"markerTemplate":     "Go template for marker content, e.g. '{{ if eq .Status \"finished\" }}✓{{ else }}{{ .Number }}{{ end }}'.",
	"customStyles":       "Overrides of the style table, see 'stepindicator styles'.",
}

// Save writes f as commented YAML to path, creating parent directories.
func Save(f *File, path string) error {
	if path == "" {
		path = DefaultPath
	}

	var node yamlv3.Node
	if err := node.Encode(f); err != nil {
		return fmt.Errorf("failed to encode indicator file: %w", err)
	}
	node.HeadComment = "Step indicator configuration.\nCheck it with: stepindicator validate -f " + filepath.Base(path)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if comment, ok := fieldComments[node.Content[i].Value]; ok {
			node.Content[i].HeadComment = comment
		}
	}

	data, err := yamlv3.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal indicator file to YAML: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write indicator file to %s: %w", path, err)
	}
	return nil
}
