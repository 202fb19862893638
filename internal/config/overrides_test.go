package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyleFlags(t *testing.T) {
	overrides, err := ParseStyleFlags([]string{"stepIndicatorSize=25", " labelColor = #333 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"stepIndicatorSize": "25", "labelColor": "#333"}, overrides)

	for _, bad := range []string{"labelColor", "=red"} {
		_, err := ParseStyleFlags([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestLayerStyles(t *testing.T) {
	merged, err := LayerStyles(
		map[string]any{"labelSize": 13, "labelColor": "#000000"},
		nil,
		map[string]any{"labelColor": "#ffffff"},
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"labelSize": 13, "labelColor": "#ffffff"}, merged)
}

func TestVariables(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("STEP_TITLE=from-file\nSTEP_OTHER=kept\n"), 0o644))
	t.Setenv("STEP_TITLE", "from-env")

	vars, err := Variables(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env", vars["STEP_TITLE"])
	assert.Equal(t, "kept", vars["STEP_OTHER"])

	_, err = Variables(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestSubstituteVariables(t *testing.T) {
	out, err := SubstituteVariables([]byte("labels: [${A}, ${B:-fallback}]"), map[string]string{"A": "x"})
	require.NoError(t, err)
	assert.Equal(t, "labels: [x, fallback]", string(out))
}
