package starcatalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/felgenland/staratlas/pkg/errors"
	"github.com/felgenland/staratlas/pkg/politics"
	"github.com/felgenland/staratlas/pkg/starcatalog"
)

func TestStaticResolve(t *testing.T) {
	resolver := starcatalog.NewStatic(map[politics.StarID]starcatalog.Coordinates{
		0:     {X: 0, Y: 0, Z: 0},
		71456: {X: -0.47, Y: -0.36, Z: -1.15},
	})

	coords, err := resolver.Resolve(context.Background(), 71456)
	require.NoError(t, err)
	assert.InDelta(t, -1.15, coords.Z, 1e-9)

	_, err = resolver.Resolve(context.Background(), 52409)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestLoadStatic(t *testing.T) {
	document := `
0: {x: 0.0, y: 0.0, z: 0.0}
52409: {x: 112.4, y: -38.9, z: 11.2}
999999: {x: 0.0, y: 0.0, z: 0.0}
`
	resolver, err := starcatalog.LoadStatic([]byte(document))
	require.NoError(t, err)
	assert.Equal(t, 3, resolver.Len())

	coords, err := resolver.Resolve(context.Background(), 52409)
	require.NoError(t, err)
	assert.InDelta(t, 112.4, coords.X, 1e-9)
}

func TestLoadStaticMalformed(t *testing.T) {
	_, err := starcatalog.LoadStatic([]byte(`[1, 2, 3]`))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsParseError(err))
}
