package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/fluxcd/pkg/envsubst"
	"github.com/joho/godotenv"
)

// Variables collects the values available to ${VAR} substitution. Values
// from envFile are overridden by the process environment. An empty envFile
// is skipped; a named one must exist.
func Variables(envFile string) (map[string]string, error) {
	variables := make(map[string]string)

	if envFile != "" {
		data, err := os.ReadFile(envFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s file: %w", envFile, err)
		}
		fileVars, err := godotenv.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s file: %w", envFile, err)
		}
		if err := mergo.Merge(&variables, fileVars); err != nil {
			return nil, fmt.Errorf("failed to merge env file variables: %w", err)
		}
	}

	osVars, err := godotenv.Parse(strings.NewReader(strings.Join(os.Environ(), "\n") + "\n"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OS environment variables: %w", err)
	}
	if err := mergo.Merge(&variables, osVars, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge OS environment variables: %w", err)
	}

	return variables, nil
}

// SubstituteVariables replaces ${VAR} references in data. Unset variables
// expand to the empty string; ${VAR:-default} supplies a fallback.
func SubstituteVariables(data []byte, variables map[string]string) ([]byte, error) {
	content, err := envsubst.Eval(string(data), func(name string) (string, bool) {
		return variables[name], true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to substitute variables: %w", err)
	}
	return []byte(content), nil
}
