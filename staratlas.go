// Package staratlas is the entry point for the Felgenland political atlas, a
// load, validate, and index pipeline over the political-entity dataset that
// backs the star map viewer.
//
// The pipeline is strictly sequential. The loader parses the document into
// typed entities; the integrity validator accumulates semantic findings; the
// query index inverts territory and zone relations for O(1) lookups. A built
// atlas is immutable. Reload constructs fresh instances and swaps them in
// wholesale, so concurrent readers never observe partial state.
//
// Example usage:
//
//	atlas, err := staratlas.New(staratlas.WithEmbedded())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	owner, err := atlas.Index().OwnerOf(52409)
//	if err == nil {
//	    fmt.Printf("52409 belongs to %s\n", owner)
//	}
//
//	if atlas.Report().HasErrors() {
//	    for _, f := range atlas.Report().Errors() {
//	        fmt.Println(f)
//	    }
//	}
package staratlas

import (
	"sync"

	"github.com/felgenland/staratlas/internal/embedded"
	"github.com/felgenland/staratlas/pkg/errors"
	"github.com/felgenland/staratlas/pkg/integrity"
	"github.com/felgenland/staratlas/pkg/politics"
	"github.com/felgenland/staratlas/pkg/query"
)

// Compile-time interface check to ensure proper implementation.
var _ Atlas = (*client)(nil)

// Atlas provides read access to a loaded, validated, indexed dataset.
type Atlas interface {
	// Dataset returns a deep copy of the current dataset, safe to hold
	// across reloads.
	Dataset() *politics.Dataset

	// Report returns the integrity report of the current dataset.
	Report() *integrity.Report

	// Index returns the query index built from the current dataset.
	Index() *query.Index

	// Reload re-runs the whole pipeline against the configured source and
	// atomically replaces the dataset, report, and index.
	Reload() error
}

// client is the internal implementation of the Atlas interface.
type client struct {
	options *options

	mu      sync.RWMutex
	dataset *politics.Dataset
	report  *integrity.Report
	index   *query.Index
}

// New creates an Atlas with the given options and runs the pipeline once.
// Without source options the embedded production dataset is used.
//
// With WithStrict, a dataset carrying error-severity findings is rejected
// with an IntegrityError. Structural document problems always fail New,
// regardless of strictness.
func New(opts ...Option) (Atlas, error) {
	c := &client{options: defaults().apply(opts...)}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Dataset returns a deep copy of the current dataset.
func (c *client) Dataset() *politics.Dataset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dataset.Copy()
}

// Report returns the current integrity report.
func (c *client) Report() *integrity.Report {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.report
}

// Index returns the current query index.
func (c *client) Index() *query.Index {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index
}

// Reload runs the full pipeline and swaps in the results. On failure the
// previous state is left untouched.
func (c *client) Reload() error {
	log := c.options.logger

	dataset, err := c.load()
	if err != nil {
		return err
	}

	report := integrity.Validate(dataset, integrity.WithSentinel(c.options.sentinel))
	log.Debug().
		Int("nations", dataset.Nations().Len()).
		Int("zones", dataset.Zones().Len()).
		Int("findings", report.Len()).
		Msg("Dataset validated")

	if c.options.strict && report.HasErrors() {
		return &errors.IntegrityError{
			Errors:   len(report.Errors()),
			Warnings: len(report.Warnings()),
		}
	}

	index := query.Build(dataset, query.WithSentinel(c.options.sentinel))

	c.mu.Lock()
	c.dataset = dataset
	c.report = report
	c.index = index
	c.mu.Unlock()

	return nil
}

// load reads the configured source into a dataset.
func (c *client) load() (*politics.Dataset, error) {
	opts := c.options
	switch {
	case opts.document != nil:
		return politics.Load(opts.document)
	case opts.path != "":
		return politics.LoadFile(opts.path)
	case opts.fsys != nil:
		return politics.LoadFS(opts.fsys, opts.file)
	default:
		return politics.LoadFS(embedded.DatasetFS(), opts.file)
	}
}
