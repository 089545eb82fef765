package politics

import (
	"fmt"
	"slices"
	"sync"
)

// Zones is a concurrent safe collection of economic zones that preserves
// document order.
type Zones struct {
	mu    sync.RWMutex
	order []ZoneID
	zones map[ZoneID]*EconomicZone
}

// NewZones creates a new empty Zones collection.
func NewZones() *Zones {
	return &Zones{
		zones: make(map[ZoneID]*EconomicZone),
	}
}

// Get returns a zone by slug and whether it exists.
func (zs *Zones) Get(id ZoneID) (*EconomicZone, bool) {
	zs.mu.RLock()
	zone, ok := zs.zones[id]
	zs.mu.RUnlock()
	return zone, ok
}

// Set sets a zone by slug (upsert). New slugs are appended to the iteration
// order. Returns an error if zone is nil.
func (zs *Zones) Set(id ZoneID, zone *EconomicZone) error {
	if zone == nil {
		return fmt.Errorf("zone cannot be nil")
	}

	zs.mu.Lock()
	defer zs.mu.Unlock()

	if _, exists := zs.zones[id]; !exists {
		zs.order = append(zs.order, id)
	}
	zs.zones[id] = zone
	return nil
}

// Add adds a zone, returning an error if the slug already exists.
func (zs *Zones) Add(zone *EconomicZone) error {
	if zone == nil {
		return fmt.Errorf("zone cannot be nil")
	}

	zs.mu.Lock()
	defer zs.mu.Unlock()

	if _, exists := zs.zones[zone.ID]; exists {
		return fmt.Errorf("zone with slug %s already exists", zone.ID)
	}

	zs.order = append(zs.order, zone.ID)
	zs.zones[zone.ID] = zone
	return nil
}

// Delete removes a zone by slug. Returns an error if the zone doesn't exist.
func (zs *Zones) Delete(id ZoneID) error {
	zs.mu.Lock()
	defer zs.mu.Unlock()

	if _, exists := zs.zones[id]; !exists {
		return fmt.Errorf("zone with slug %s not found", id)
	}

	delete(zs.zones, id)
	zs.order = slices.DeleteFunc(zs.order, func(o ZoneID) bool { return o == id })
	return nil
}

// Exists checks if a zone exists without returning it.
func (zs *Zones) Exists(id ZoneID) bool {
	zs.mu.RLock()
	_, exists := zs.zones[id]
	zs.mu.RUnlock()
	return exists
}

// Len returns the number of zones.
func (zs *Zones) Len() int {
	zs.mu.RLock()
	length := len(zs.zones)
	zs.mu.RUnlock()
	return length
}

// List returns all zones in document order.
func (zs *Zones) List() []*EconomicZone {
	zs.mu.RLock()
	defer zs.mu.RUnlock()

	zones := make([]*EconomicZone, 0, len(zs.order))
	for _, id := range zs.order {
		zones = append(zones, zs.zones[id])
	}
	return zones
}

// Slugs returns all zone slugs in document order.
func (zs *Zones) Slugs() []ZoneID {
	zs.mu.RLock()
	defer zs.mu.RUnlock()
	return slices.Clone(zs.order)
}
