package config

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/deployah-dev/stepindicator/internal/config/schema"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidateAPIVersion checks the apiVersion field for presence, type and
// support, and returns it.
func ValidateAPIVersion(obj map[string]any) (string, error) {
	versions, err := schema.Versions()
	if err != nil {
		return "", fmt.Errorf("failed to get valid schema versions: %w", err)
	}

	value, ok := obj["apiVersion"]
	if !ok {
		return "", ErrMissingAPIVersion
	}

	version, ok := value.(string)
	if !ok || version == "" {
		return "", fmt.Errorf("'apiVersion' field must be a non-empty string")
	}

	if !slices.Contains(versions, version) {
		return "", fmt.Errorf("%w: %s (valid: %v)", ErrUnsupportedVersion, version, versions)
	}

	return version, nil
}

// ValidateSchema validates a decoded document against the indicator schema
// of the given version. Unknown fields are rejected.
func ValidateSchema(obj map[string]any, version string) error {
	schemaBytes, err := schema.GetIndicatorSchema(version)
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return fmt.Errorf("invalid indicator schema JSON for version %q: %w", version, err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()

	schemaID := version + "/" + schema.SchemaTypeIndicator.String() + ".json"
	if err := compiler.AddResource(schemaID, doc); err != nil {
		return fmt.Errorf("failed to load indicator schema version %q: %w", version, err)
	}

	compiled, err := compiler.Compile(schemaID)
	if err != nil {
		return fmt.Errorf("failed to compile indicator schema version %q: %w", version, err)
	}

	if err := compiled.Validate(obj); err != nil {
		return fmt.Errorf("indicator validation failed for schema version %q: %w", version, err)
	}
	return nil
}
