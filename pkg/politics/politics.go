// Package politics provides the typed data model for the star atlas's political
// entities: nations, their claimed star-system territories, and the economic
// zones that group systems into cross-border trade pacts.
//
// A Dataset is an immutable snapshot of the political-entity document. It is
// constructed once per load cycle by Load and then treated as read-only input
// for integrity validation and query-index construction.
//
// Example usage:
//
//	ds, err := politics.Load(document)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, nation := range ds.Nations().List() {
//	    fmt.Printf("%s claims %d systems\n", nation.ID, len(nation.Territories))
//	}
package politics

import (
	"github.com/felgenland/staratlas/pkg/errors"
)

// Metadata describes the document snapshot itself. All fields are opaque
// display strings; the load pipeline never interprets them.
type Metadata struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Updated     string `json:"updated,omitempty" yaml:"updated,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Dataset is the in-memory representation of one political-entity document.
// Nations and zones keep document order so downstream reports are
// deterministic across reloads of byte-identical input.
type Dataset struct {
	metadata Metadata
	nations  *Nations
	zones    *Zones
}

// NewDataset creates an empty dataset. Useful for tests and for building
// datasets programmatically.
func NewDataset() *Dataset {
	return &Dataset{
		nations: NewNations(),
		zones:   NewZones(),
	}
}

// Metadata returns the document metadata.
func (ds *Dataset) Metadata() Metadata {
	return ds.metadata
}

// Nations returns the nations collection.
func (ds *Dataset) Nations() *Nations {
	return ds.nations
}

// Zones returns the economic-zones collection.
func (ds *Dataset) Zones() *Zones {
	return ds.zones
}

// Nation returns a nation by slug.
func (ds *Dataset) Nation(id NationID) (Nation, error) {
	nation, ok := ds.nations.Get(id)
	if !ok {
		return Nation{}, &errors.NotFoundError{
			Resource: "nation",
			ID:       string(id),
		}
	}
	return *nation, nil
}

// Zone returns an economic zone by slug.
func (ds *Dataset) Zone(id ZoneID) (EconomicZone, error) {
	zone, ok := ds.zones.Get(id)
	if !ok {
		return EconomicZone{}, &errors.NotFoundError{
			Resource: "zone",
			ID:       string(id),
		}
	}
	return *zone, nil
}

// Copy creates a deep copy of the dataset. Callers receive an independent
// snapshot they can hold across reloads.
func (ds *Dataset) Copy() *Dataset {
	out := &Dataset{
		metadata: ds.metadata,
		nations:  NewNations(),
		zones:    NewZones(),
	}
	for _, nation := range ds.nations.List() {
		nationCopy := nation.copy()
		_ = out.nations.Set(nationCopy.ID, &nationCopy)
	}
	for _, zone := range ds.zones.List() {
		zoneCopy := zone.copy()
		_ = out.zones.Set(zoneCopy.ID, &zoneCopy)
	}
	return out
}
