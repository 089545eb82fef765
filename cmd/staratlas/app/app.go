// Package app provides the application context and dependency management
// for the staratlas CLI. It centralizes configuration, dependency injection,
// and lifecycle management for all commands.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/felgenland/staratlas"
	"github.com/felgenland/staratlas/pkg/errors"
	"github.com/felgenland/staratlas/pkg/politics"
)

// App represents the staratlas application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// atlas instance.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Atlas instance (lazy-initialized, singleton)
	mu    sync.RWMutex
	atlas staratlas.Atlas
}

// Option customizes an App during construction.
type Option func(*App) error

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Atlas returns the atlas instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Atlas() (staratlas.Atlas, error) {
	a.mu.RLock()
	if a.atlas != nil {
		atlas := a.atlas
		a.mu.RUnlock()
		return atlas, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.atlas != nil {
		return a.atlas, nil
	}

	atlas, err := staratlas.New(a.atlasOptions()...)
	if err != nil {
		return nil, err
	}
	a.atlas = atlas

	return atlas, nil
}

// AtlasWithOptions creates a new atlas instance with the configured defaults
// plus the given options. The instance is not cached.
func (a *App) AtlasWithOptions(opts ...staratlas.Option) (staratlas.Atlas, error) {
	return staratlas.New(append(a.atlasOptions(), opts...)...)
}

// atlasOptions builds atlas options from the application configuration.
func (a *App) atlasOptions() []staratlas.Option {
	opts := []staratlas.Option{
		staratlas.WithLogger(a.logger),
	}

	if a.config.DatasetPath != "" {
		opts = append(opts, staratlas.WithPath(a.config.DatasetPath))
	} else {
		opts = append(opts, staratlas.WithEmbedded())
	}

	if a.config.Sentinel > 0 {
		opts = append(opts, staratlas.WithSentinel(politics.StarID(a.config.Sentinel)))
	}

	opts = append(opts, staratlas.WithStrict(a.config.Strict))

	return opts
}
