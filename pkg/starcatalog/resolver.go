// Package starcatalog defines the boundary to the external star catalog that
// resolves star ids to physical coordinates. The political-entity core never
// calls the catalog itself; consumers that render maps do, through the
// Resolver interface.
package starcatalog

import (
	"context"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/felgenland/staratlas/pkg/errors"
	"github.com/felgenland/staratlas/pkg/politics"
)

// Coordinates is a position in the galactic reference frame, in parsecs.
type Coordinates struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Resolver resolves a star id to coordinates. Implementations may block on
// I/O or the network, so resolution takes a context.
type Resolver interface {
	Resolve(ctx context.Context, id politics.StarID) (Coordinates, error)
}

// Static is a Resolver backed by an in-memory coordinate table. It is
// immutable after construction and safe for concurrent use.
type Static struct {
	coords map[politics.StarID]Coordinates
}

// Compile-time interface check.
var _ Resolver = (*Static)(nil)

// NewStatic creates a static resolver from a coordinate table.
func NewStatic(coords map[politics.StarID]Coordinates) *Static {
	table := make(map[politics.StarID]Coordinates, len(coords))
	for id, c := range coords {
		table[id] = c
	}
	return &Static{coords: table}
}

// LoadStatic parses a coordinates document (a YAML mapping of star id to
// x/y/z) into a static resolver.
func LoadStatic(data []byte) (*Static, error) {
	var coords map[politics.StarID]Coordinates
	if err := yaml.Unmarshal(data, &coords); err != nil {
		return nil, errors.WrapParse("star catalog", "", err)
	}
	return NewStatic(coords), nil
}

// LoadStaticFile reads and parses a coordinates document from disk.
func LoadStaticFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return LoadStatic(data)
}

// LoadStaticFS reads and parses a coordinates document from a filesystem.
func LoadStaticFS(fsys fs.FS, name string) (*Static, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.WrapIO("read", name, err)
	}
	return LoadStatic(data)
}

// Resolve returns the coordinates for a star id, or a NotFoundError when the
// catalog has no entry for it.
func (s *Static) Resolve(_ context.Context, id politics.StarID) (Coordinates, error) {
	c, ok := s.coords[id]
	if !ok {
		return Coordinates{}, &errors.NotFoundError{Resource: "star", ID: id.String()}
	}
	return c, nil
}

// Len returns the number of catalog entries.
func (s *Static) Len() int {
	return len(s.coords)
}
