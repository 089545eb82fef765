package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/felgenland/staratlas"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	AtlasFunc            func() (staratlas.Atlas, error)
	AtlasWithOptionsFunc func(...staratlas.Option) (staratlas.Atlas, error)
	LoggerFunc           func() *zerolog.Logger
	OutputFormatFunc     func() string
	VersionFunc          func() string
	CommitFunc           func() string
	DateFunc             func() string
}

// Atlas returns an atlas using the mock function or nil.
func (m *Mock) Atlas() (staratlas.Atlas, error) {
	if m.AtlasFunc != nil {
		return m.AtlasFunc()
	}
	return nil, nil
}

// AtlasWithOptions returns an atlas using the mock function or nil.
func (m *Mock) AtlasWithOptions(opts ...staratlas.Option) (staratlas.Atlas, error) {
	if m.AtlasWithOptionsFunc != nil {
		return m.AtlasWithOptionsFunc(opts...)
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "json".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "json"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
