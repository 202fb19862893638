// Package runtime carries per-invocation state through the command context.
package runtime

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/deployah-dev/stepindicator/internal/config"
)

type runtimeKey struct{}

// Runtime holds per-invocation state and the lazily loaded indicator file.
type Runtime struct {
	configPath string
	envFile    string

	logger LoggerProvider
	loader ConfigLoader
	config *config.File
	loaded bool
	mu     sync.Mutex
}

var _ Provider = (*Runtime)(nil)

// Option defines a functional option for configuring Runtime.
type Option func(*Runtime)

// WithConfigPath sets the indicator file path.
func WithConfigPath(path string) Option {
	return func(r *Runtime) {
		r.configPath = path
	}
}

// WithEnvFile sets the dotenv file used for variable substitution.
func WithEnvFile(path string) Option {
	return func(r *Runtime) {
		r.envFile = path
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger LoggerProvider) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithLoader sets a custom indicator file loader.
func WithLoader(loader ConfigLoader) Option {
	return func(r *Runtime) {
		r.loader = loader
	}
}

// New constructs a Runtime. Paths left empty fall back to the
// STEPINDICATOR_FILE and STEPINDICATOR_ENV_FILE environment variables.
func New(options ...Option) *Runtime {
	r := &Runtime{
		configPath: os.Getenv(ConfigEnvVar),
		envFile:    os.Getenv(EnvFileEnvVar),
		logger:     NewLoggerAdapter(log.Default()),
		loader:     fileLoader{},
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// WithRuntime returns a new context carrying the provided runtime.
func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// FromRuntime extracts a Runtime from the context, or nil if absent.
func FromRuntime(ctx context.Context) *Runtime {
	if rt, ok := ctx.Value(runtimeKey{}).(*Runtime); ok {
		return rt
	}
	return nil
}

// ConfigPath returns the configured indicator file path.
func (r *Runtime) ConfigPath() string {
	return r.configPath
}

// Config loads and memoizes the indicator file. It returns nil without an
// error when no file is configured.
func (r *Runtime) Config() (*config.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return r.config, nil
	}
	if r.configPath == "" {
		r.loaded = true
		return nil, nil
	}

	variables, err := r.loader.Variables(r.envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to collect variables: %w", err)
	}

	f, err := r.loader.Load(r.configPath, variables)
	if err != nil {
		return nil, fmt.Errorf("failed to load indicator file: %w", err)
	}
	r.logger.Debug("Loaded indicator file", "file", r.configPath, "steps", f.StepCount)

	r.config = f
	r.loaded = true
	return f, nil
}

// Close drops the cached indicator file. It's safe to call multiple times.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.config = nil
	r.loaded = false
	return nil
}
