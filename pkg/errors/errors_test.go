package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/felgenland/staratlas/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "nation",
			ID:       "terran_directorate",
		}
		assert.Equal(t, "nation with ID terran_directorate not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("zone", "felgenland_trade_zone")
		assert.Equal(t, "zone with ID felgenland_trade_zone not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("star", "52409")
		wrapped := errors.Join(errors.New("lookup failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestParseError(t *testing.T) {
	t.Run("slug and field", func(t *testing.T) {
		err := pkgerrors.NewParseError("nation", "dorsai_republic", "capital_star_id", "expected integer, got string")
		assert.Equal(t, "nation dorsai_republic: field capital_star_id: expected integer, got string", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrMalformedDocument))
		assert.True(t, pkgerrors.IsParseError(err))
	})

	t.Run("slug only", func(t *testing.T) {
		err := pkgerrors.NewParseError("zone", "frontier_exchange", "", "record is not a mapping")
		assert.Equal(t, "zone frontier_exchange: record is not a mapping", err.Error())
	})

	t.Run("document level", func(t *testing.T) {
		err := pkgerrors.NewParseError("document", "", "", "missing nations section")
		assert.Equal(t, "document: missing nations section", err.Error())
	})

	t.Run("wrap", func(t *testing.T) {
		base := errors.New("unexpected mapping key")
		err := pkgerrors.WrapParse("document", "", base)
		assert.True(t, pkgerrors.IsParseError(err))
		assert.True(t, errors.Is(err, base))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "sentinel",
			Message: "must be non-negative",
		}
		assert.Equal(t, "validation failed for field sentinel: must be non-negative", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestIntegrityError(t *testing.T) {
	err := &pkgerrors.IntegrityError{Errors: 2, Warnings: 1}
	assert.Equal(t, "dataset rejected: 2 integrity error(s), 1 warning(s)", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrIntegrity))
	assert.True(t, pkgerrors.IsIntegrityError(err))
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("read", "nations.json", base)
	assert.Contains(t, err.Error(), "read")
	assert.Contains(t, err.Error(), "nations.json")
	assert.True(t, errors.Is(err, base))
}

func TestResourceError(t *testing.T) {
	base := errors.New("boom")
	err := pkgerrors.WrapResource("build", "index", "", base)
	assert.Equal(t, "failed to build index: boom", err.Error())
	assert.True(t, errors.Is(err, base))

	assert.Nil(t, pkgerrors.WrapResource("build", "index", "", nil))
	assert.Nil(t, pkgerrors.WrapIO("read", "x", nil))
	assert.Nil(t, pkgerrors.WrapParse("document", "", nil))
}
