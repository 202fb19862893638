// Copyright 2025 The Deployah Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package runtime

import "github.com/deployah-dev/stepindicator/internal/config"

// Provider is the per-invocation state commands depend on.
type Provider interface {
	// Config loads and returns the indicator file, or nil when none is configured
	Config() (*config.File, error)

	// ConfigPath returns the configured indicator file path
	ConfigPath() string

	// Close releases cached state
	Close() error
}

// ConfigLoader reads indicator files.
type ConfigLoader interface {
	// Variables returns the values available for substitution
	Variables(envFile string) (map[string]string, error)

	// Load reads and validates the indicator file at path
	Load(path string, variables map[string]string) (*config.File, error)
}

// LoggerProvider is the logging surface the runtime needs.
type LoggerProvider interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
}

// fileLoader is the ConfigLoader backed by the config package.
type fileLoader struct{}

func (fileLoader) Variables(envFile string) (map[string]string, error) {
	return config.Variables(envFile)
}

func (fileLoader) Load(path string, variables map[string]string) (*config.File, error) {
	return config.Load(path, variables)
}
