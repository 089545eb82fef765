package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felgenland/staratlas"
	"github.com/felgenland/staratlas/internal/appcontext"
	"github.com/felgenland/staratlas/pkg/errors"
)

const testDocument = `
metadata:
  title: Test Atlas
  version: 1.0.0
nations:
  asgard_covenant:
    name: Asgard Covenant
    capital_system: Asgard
    capital_star_id: 100
    government_type: elective_monarchy
    color: "#4477aa"
    established_year: 2290
    territories: [100, 101, 102]
  vega_compact:
    name: Vega Compact
    capital_system: Vega
    capital_star_id: 200
    government_type: trade_confederacy
    color: "#aa7744"
    established_year: 2301
    territories: [200, 201]
economic_zones:
  rim_exchange:
    name: Rim Exchange
    member_systems: [101, 200]
    currency: rim_scrip
`

const overlapDocument = `
nations:
  asgard_covenant:
    name: Asgard Covenant
    capital_system: Asgard
    capital_star_id: 100
    territories: [100, 101]
  vega_compact:
    name: Vega Compact
    capital_system: Vega
    capital_star_id: 200
    territories: [200, 101]
`

func testContext(t *testing.T, document string) *appcontext.Mock {
	t.Helper()

	atlas, err := staratlas.New(staratlas.WithDocument([]byte(document)))
	require.NoError(t, err)

	return &appcontext.Mock{
		AtlasFunc: func() (staratlas.Atlas, error) {
			return atlas, nil
		},
		AtlasWithOptionsFunc: func(opts ...staratlas.Option) (staratlas.Atlas, error) {
			opts = append([]staratlas.Option{staratlas.WithDocument([]byte(document))}, opts...)
			return staratlas.New(opts...)
		},
	}
}

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}

func TestOwnerCommand(t *testing.T) {
	actx := testContext(t, testDocument)

	out, err := execute(t, NewOwnerCommand(actx), "101")
	require.NoError(t, err)

	var result struct {
		StarID int    `json:"star_id"`
		Owner  string `json:"owner"`
		Nation string `json:"nation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 101, result.StarID)
	assert.Equal(t, "asgard_covenant", result.Owner)
	assert.Equal(t, "Asgard Covenant", result.Nation)
}

func TestOwnerCommandUnknownStar(t *testing.T) {
	actx := testContext(t, testDocument)

	_, err := execute(t, NewOwnerCommand(actx), "999")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestOwnerCommandRejectsNonInteger(t *testing.T) {
	actx := testContext(t, testDocument)

	_, err := execute(t, NewOwnerCommand(actx), "asgard")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestZonesCommand(t *testing.T) {
	actx := testContext(t, testDocument)

	out, err := execute(t, NewZonesCommand(actx), "asgard_covenant")
	require.NoError(t, err)

	var result struct {
		Nation string   `json:"nation"`
		Zones  []string `json:"zones"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "asgard_covenant", result.Nation)
	assert.Equal(t, []string{"rim_exchange"}, result.Zones)
}

func TestZonesCommandUnknownNation(t *testing.T) {
	actx := testContext(t, testDocument)

	_, err := execute(t, NewZonesCommand(actx), "ghost_empire")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestMembersCommand(t *testing.T) {
	actx := testContext(t, testDocument)

	out, err := execute(t, NewMembersCommand(actx), "rim_exchange")
	require.NoError(t, err)

	var result struct {
		Zone    string   `json:"zone"`
		Nations []string `json:"nations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "rim_exchange", result.Zone)
	assert.ElementsMatch(t, []string{"asgard_covenant", "vega_compact"}, result.Nations)
}

func TestInspectCommand(t *testing.T) {
	actx := testContext(t, testDocument)

	out, err := execute(t, NewInspectCommand(actx), "vega_compact")
	require.NoError(t, err)

	var result struct {
		Name        string   `json:"name"`
		Territories []int    `json:"territories"`
		Zones       []string `json:"zones"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Vega Compact", result.Name)
	assert.Equal(t, []int{200, 201}, result.Territories)
	assert.Equal(t, []string{"rim_exchange"}, result.Zones)
}

func TestListNationsCommand(t *testing.T) {
	actx := testContext(t, testDocument)

	out, err := execute(t, NewListCommand(actx), "nations")
	require.NoError(t, err)

	var nations []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &nations))
	require.Len(t, nations, 2)
	assert.Equal(t, "asgard_covenant", nations[0].ID)
	assert.Equal(t, "vega_compact", nations[1].ID)
}

func TestValidateCommandCleanDataset(t *testing.T) {
	actx := testContext(t, testDocument)

	out, err := execute(t, NewValidateCommand(actx))
	require.NoError(t, err)
	assert.Contains(t, out, "no integrity findings")
}

func TestValidateCommandFailsOnErrors(t *testing.T) {
	actx := testContext(t, overlapDocument)

	out, err := execute(t, NewValidateCommand(actx))
	require.Error(t, err)
	assert.True(t, errors.IsIntegrityError(err))
	assert.Contains(t, out, "territory-overlap")
}
