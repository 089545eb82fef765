package staratlas

import (
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/felgenland/staratlas/pkg/constants"
	"github.com/felgenland/staratlas/pkg/logging"
	"github.com/felgenland/staratlas/pkg/politics"
)

// Option is a function that configures an Atlas instance.
type Option func(*options)

// options holds the resolved configuration for an Atlas.
type options struct {
	// source selection, checked in order: document, path, fsys, embedded
	document []byte
	path     string
	fsys     fs.FS
	file     string

	sentinel politics.StarID
	strict   bool
	logger   *zerolog.Logger
}

// defaults returns the default options: embedded dataset, standard sentinel,
// lenient validation.
func defaults() *options {
	return &options{
		file:     constants.DatasetFile,
		sentinel: constants.UnclaimedStarID,
		logger:   logging.Default(),
	}
}

// apply applies the given option functions.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithEmbedded selects the embedded production dataset. This is the default
// source.
func WithEmbedded() Option {
	return func(o *options) {
		o.document = nil
		o.path = ""
		o.fsys = nil
	}
}

// WithPath selects a political-entity document on disk.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithFS selects a political-entity document inside a filesystem. The file
// name defaults to the standard dataset file name.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithFile overrides the document file name used with WithFS and the
// embedded source.
func WithFile(name string) Option {
	return func(o *options) {
		o.file = name
	}
}

// WithDocument selects an in-memory document. Useful for tests and for
// admin tooling that validates edits before writing them anywhere.
func WithDocument(document []byte) Option {
	return func(o *options) {
		o.document = document
	}
}

// WithSentinel overrides the sentinel "unclaimed" star id used by validation
// and indexing.
func WithSentinel(id politics.StarID) Option {
	return func(o *options) {
		o.sentinel = id
	}
}

// WithStrict makes New and Reload fail when the dataset carries
// error-severity integrity findings. Warnings never block.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLogger overrides the logger used by the pipeline.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
