// Package query provides precomputed lookup structures over a validated
// political-entity dataset: star id to owning nation, nation to economic
// zones, and zone to member nations.
//
// An Index is immutable after Build, so it is safe to share across
// concurrent readers without locks. Reloading a dataset means building a new
// Index and replacing the old one wholesale; there is no incremental update
// path.
package query

import (
	"slices"

	"github.com/felgenland/staratlas/pkg/constants"
	"github.com/felgenland/staratlas/pkg/errors"
	"github.com/felgenland/staratlas/pkg/politics"
)

// Option configures index construction.
type Option func(*Index)

// WithSentinel overrides the sentinel "unclaimed" star id. The sentinel
// never resolves to an owning nation.
func WithSentinel(id politics.StarID) Option {
	return func(ix *Index) {
		ix.sentinel = id
	}
}

// Index holds the precomputed lookups. All maps are populated once during
// Build and never mutated afterwards.
type Index struct {
	sentinel politics.StarID

	owners      map[politics.StarID]politics.NationID
	nationZones map[politics.NationID][]politics.ZoneID
	zoneNations map[politics.ZoneID][]politics.NationID
	territories map[politics.NationID]int
	unclaimed   map[politics.ZoneID][]politics.StarID

	nations []politics.NationID
	zones   []politics.ZoneID
}

// Build constructs an index from a dataset. The dataset should have passed
// validation, or been explicitly accepted with warnings; Build itself is
// lenient: on an (already flagged) territory overlap the first claimant in
// document order wins.
func Build(ds *politics.Dataset, opts ...Option) *Index {
	ix := &Index{
		sentinel:    constants.UnclaimedStarID,
		owners:      make(map[politics.StarID]politics.NationID),
		nationZones: make(map[politics.NationID][]politics.ZoneID),
		zoneNations: make(map[politics.ZoneID][]politics.NationID),
		territories: make(map[politics.NationID]int),
		unclaimed:   make(map[politics.ZoneID][]politics.StarID),
	}
	for _, opt := range opts {
		opt(ix)
	}

	// Invert territory lists into the ownership map.
	for _, nation := range ds.Nations().List() {
		ix.nations = append(ix.nations, nation.ID)
		counted := make(map[politics.StarID]struct{}, len(nation.Territories))
		for _, id := range nation.Territories {
			if _, seen := counted[id]; seen {
				continue
			}
			counted[id] = struct{}{}
			ix.territories[nation.ID]++
			if id == ix.sentinel {
				continue
			}
			if _, claimed := ix.owners[id]; !claimed {
				ix.owners[id] = nation.ID
			}
		}
	}

	// Derive the weak zone↔nation relation by intersecting member systems
	// with the ownership map.
	for _, zone := range ds.Zones().List() {
		ix.zones = append(ix.zones, zone.ID)
		members := make(map[politics.NationID]struct{})
		for _, id := range zone.MemberSystems {
			owner, ok := ix.owners[id]
			if !ok {
				ix.unclaimed[zone.ID] = append(ix.unclaimed[zone.ID], id)
				continue
			}
			if _, seen := members[owner]; seen {
				continue
			}
			members[owner] = struct{}{}
			ix.zoneNations[zone.ID] = append(ix.zoneNations[zone.ID], owner)
			ix.nationZones[owner] = append(ix.nationZones[owner], zone.ID)
		}
	}

	// Sort the derived sets so lookups are deterministic across rebuilds.
	for id := range ix.zoneNations {
		slices.Sort(ix.zoneNations[id])
	}
	for id := range ix.nationZones {
		slices.Sort(ix.nationZones[id])
	}

	return ix
}

// OwnerOf returns the nation owning the given star id. The sentinel id and
// unknown ids return a NotFoundError.
func (ix *Index) OwnerOf(id politics.StarID) (politics.NationID, error) {
	owner, ok := ix.owners[id]
	if !ok {
		return "", &errors.NotFoundError{Resource: "star", ID: id.String()}
	}
	return owner, nil
}

// ZonesFor returns the slugs of all economic zones whose member systems
// intersect the nation's territories, sorted.
func (ix *Index) ZonesFor(nation politics.NationID) []politics.ZoneID {
	return slices.Clone(ix.nationZones[nation])
}

// MembersOf returns the slugs of all nations whose territories intersect the
// zone's member systems, sorted.
func (ix *Index) MembersOf(zone politics.ZoneID) []politics.NationID {
	return slices.Clone(ix.zoneNations[zone])
}

// Nations returns all indexed nation slugs in document order.
func (ix *Index) Nations() []politics.NationID {
	return slices.Clone(ix.nations)
}

// Zones returns all indexed zone slugs in document order.
func (ix *Index) Zones() []politics.ZoneID {
	return slices.Clone(ix.zones)
}

// TerritoryCount returns the number of distinct star ids a nation claims,
// sentinel included.
func (ix *Index) TerritoryCount(nation politics.NationID) int {
	return ix.territories[nation]
}

// UnclaimedMembers returns the zone member systems that resolve to no owning
// nation, in document order. The sentinel id always lands here.
func (ix *Index) UnclaimedMembers(zone politics.ZoneID) []politics.StarID {
	return slices.Clone(ix.unclaimed[zone])
}

// Sentinel returns the sentinel star id the index was built with.
func (ix *Index) Sentinel() politics.StarID {
	return ix.sentinel
}
