package politics_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/felgenland/staratlas/pkg/errors"
	"github.com/felgenland/staratlas/pkg/politics"
)

const validDocument = `
metadata:
  title: Test Starmap
  version: "1.0.0"
nations:
  terran_directorate:
    name: Terran Directorate
    full_name: Directorate of Terra and Aligned Systems
    capital_system: Sol
    capital_star_id: 0
    capital_planet: Earth
    government_type: Centralized Directorate
    color: "#1f4fbf"
    border_color: "#0b2a6b"
    established_year: 2198
    territories: [0, 71456, 32349]
    specialties: [shipbuilding, finance]
    population: "41 billion registered citizens"
    military_strength: Three standing fleets plus home defense squadrons
  felgenland_union:
    name: Felgenland Union
    capital_star_id: 48941
    territories: [48941, 43587]
economic_zones:
  felgenland_trade_zone:
    name: Felgenland Trade Zone
    member_systems: [48941, 43587]
    currency: Felgenland Credit
    tax_rate: "2.5% flat transit levy"
`

func TestLoadValidDocument(t *testing.T) {
	ds, err := politics.Load([]byte(validDocument))
	require.NoError(t, err)

	assert.Equal(t, "Test Starmap", ds.Metadata().Title)
	assert.Equal(t, "1.0.0", ds.Metadata().Version)
	assert.Equal(t, 2, ds.Nations().Len())
	assert.Equal(t, 1, ds.Zones().Len())

	nation, err := ds.Nation("terran_directorate")
	require.NoError(t, err)
	assert.Equal(t, "Terran Directorate", nation.Name)
	assert.Equal(t, politics.StarID(0), nation.CapitalStarID)
	assert.Equal(t, []politics.StarID{0, 71456, 32349}, nation.Territories)
	assert.Equal(t, 2198, nation.Established)
	assert.Equal(t, "#1f4fbf", nation.Color)

	// Free-text fields are preserved verbatim, never interpreted
	assert.Equal(t, "41 billion registered citizens", nation.Population)
	assert.Equal(t, "Three standing fleets plus home defense squadrons", nation.MilitaryStrength)

	zone, err := ds.Zone("felgenland_trade_zone")
	require.NoError(t, err)
	assert.Equal(t, []politics.StarID{48941, 43587}, zone.MemberSystems)
	assert.Equal(t, "2.5% flat transit levy", zone.TaxRate)
}

func TestLoadPreservesDocumentOrder(t *testing.T) {
	ds, err := politics.Load([]byte(validDocument))
	require.NoError(t, err)

	assert.Equal(t, []politics.NationID{"terran_directorate", "felgenland_union"}, ds.Nations().Slugs())
}

func TestLoadJSONDocument(t *testing.T) {
	doc := `{
		"metadata": {"title": "JSON Snapshot"},
		"nations": {
			"neutral_zone": {
				"name": "Neutral Zone",
				"capital_star_id": 52409,
				"territories": [52409, 999999]
			}
		},
		"economic_zones": {}
	}`

	ds, err := politics.Load([]byte(doc))
	require.NoError(t, err)

	nation, err := ds.Nation("neutral_zone")
	require.NoError(t, err)
	assert.Equal(t, politics.StarID(52409), nation.CapitalStarID)
	assert.Equal(t, []politics.StarID{52409, 999999}, nation.Territories)
}

func TestLoadStructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		document string
		slug     string
		field    string
	}{
		{
			name: "missing name",
			document: `
nations:
  dorsai_republic:
    capital_star_id: 81693
    territories: [81693]
`,
			slug:  "dorsai_republic",
			field: "name",
		},
		{
			name: "capital star id as string",
			document: `
nations:
  dorsai_republic:
    name: Dorsai Republic
    capital_star_id: not-a-number
    territories: [81693]
`,
			slug:  "dorsai_republic",
			field: "capital_star_id",
		},
		{
			name: "missing territories",
			document: `
nations:
  dorsai_republic:
    name: Dorsai Republic
    capital_star_id: 81693
`,
			slug:  "dorsai_republic",
			field: "territories",
		},
		{
			name: "territory element of wrong type",
			document: `
nations:
  dorsai_republic:
    name: Dorsai Republic
    capital_star_id: 81693
    territories: [81693, many]
`,
			slug:  "dorsai_republic",
			field: "territories",
		},
		{
			name: "non-positive established year",
			document: `
nations:
  dorsai_republic:
    name: Dorsai Republic
    capital_star_id: 81693
    established_year: -4
    territories: [81693]
`,
			slug:  "dorsai_republic",
			field: "established_year",
		},
		{
			name: "zone missing member systems",
			document: `
nations:
  dorsai_republic:
    name: Dorsai Republic
    capital_star_id: 81693
    territories: [81693]
economic_zones:
  frontier_exchange:
    name: Frontier Exchange
`,
			slug:  "frontier_exchange",
			field: "member_systems",
		},
		{
			name: "color of wrong type",
			document: `
nations:
  dorsai_republic:
    name: Dorsai Republic
    capital_star_id: 81693
    color: 123456
    territories: [81693]
`,
			slug:  "dorsai_republic",
			field: "color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := politics.Load([]byte(tt.document))
			require.Error(t, err)

			var parseErr *pkgerrors.ParseError
			require.True(t, errors.As(err, &parseErr), "expected ParseError, got %T", err)
			assert.Equal(t, tt.slug, parseErr.Slug)
			assert.Equal(t, tt.field, parseErr.Field)
			assert.True(t, pkgerrors.IsParseError(err))
		})
	}
}

func TestLoadMissingNationsSection(t *testing.T) {
	_, err := politics.Load([]byte(`metadata: {title: Empty}`))
	require.Error(t, err)

	var parseErr *pkgerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "document", parseErr.Resource)
	assert.Equal(t, "nations", parseErr.Field)
}

func TestLoadRecordNotAMapping(t *testing.T) {
	doc := `
nations:
  terran_directorate: just a string
`
	_, err := politics.Load([]byte(doc))
	require.Error(t, err)

	var parseErr *pkgerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "terran_directorate", parseErr.Slug)
}

func TestLoadMissingZonesSectionIsEmpty(t *testing.T) {
	doc := `
nations:
  terran_directorate:
    name: Terran Directorate
    capital_star_id: 0
    territories: [0]
`
	ds, err := politics.Load([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Zones().Len())
}

func TestDatasetCopyIsIndependent(t *testing.T) {
	ds, err := politics.Load([]byte(validDocument))
	require.NoError(t, err)

	dsCopy := ds.Copy()
	original, ok := ds.Nations().Get("terran_directorate")
	require.True(t, ok)
	original.Territories[0] = 12345

	copied, err := dsCopy.Nation("terran_directorate")
	require.NoError(t, err)
	assert.Equal(t, politics.StarID(0), copied.Territories[0])
	assert.Equal(t, ds.Nations().Slugs(), dsCopy.Nations().Slugs())
}

func TestNationHelpers(t *testing.T) {
	nation := politics.Nation{
		ID:          "protelani_republic",
		Territories: []politics.StarID{118720, 113368},
	}
	assert.True(t, nation.HasTerritory(118720))
	assert.False(t, nation.HasTerritory(0))

	set := nation.TerritorySet()
	assert.Len(t, set, 2)
	_, ok := set[113368]
	assert.True(t, ok)
}
