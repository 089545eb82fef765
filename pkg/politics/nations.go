package politics

import (
	"fmt"
	"slices"
	"sync"
)

// Nations is a concurrent safe collection of nations that preserves document
// order. Ordered iteration is what makes validation reports diffable between
// runs over identical input.
type Nations struct {
	mu      sync.RWMutex
	order   []NationID
	nations map[NationID]*Nation
}

// NewNations creates a new empty Nations collection.
func NewNations() *Nations {
	return &Nations{
		nations: make(map[NationID]*Nation),
	}
}

// Get returns a nation by slug and whether it exists.
func (ns *Nations) Get(id NationID) (*Nation, bool) {
	ns.mu.RLock()
	nation, ok := ns.nations[id]
	ns.mu.RUnlock()
	return nation, ok
}

// Set sets a nation by slug (upsert). New slugs are appended to the iteration
// order. Returns an error if nation is nil.
func (ns *Nations) Set(id NationID, nation *Nation) error {
	if nation == nil {
		return fmt.Errorf("nation cannot be nil")
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()

	if _, exists := ns.nations[id]; !exists {
		ns.order = append(ns.order, id)
	}
	ns.nations[id] = nation
	return nil
}

// Add adds a nation, returning an error if the slug already exists.
func (ns *Nations) Add(nation *Nation) error {
	if nation == nil {
		return fmt.Errorf("nation cannot be nil")
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()

	if _, exists := ns.nations[nation.ID]; exists {
		return fmt.Errorf("nation with slug %s already exists", nation.ID)
	}

	ns.order = append(ns.order, nation.ID)
	ns.nations[nation.ID] = nation
	return nil
}

// Delete removes a nation by slug. Returns an error if the nation doesn't exist.
func (ns *Nations) Delete(id NationID) error {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	if _, exists := ns.nations[id]; !exists {
		return fmt.Errorf("nation with slug %s not found", id)
	}

	delete(ns.nations, id)
	ns.order = slices.DeleteFunc(ns.order, func(o NationID) bool { return o == id })
	return nil
}

// Exists checks if a nation exists without returning it.
func (ns *Nations) Exists(id NationID) bool {
	ns.mu.RLock()
	_, exists := ns.nations[id]
	ns.mu.RUnlock()
	return exists
}

// Len returns the number of nations.
func (ns *Nations) Len() int {
	ns.mu.RLock()
	length := len(ns.nations)
	ns.mu.RUnlock()
	return length
}

// List returns all nations in document order.
func (ns *Nations) List() []*Nation {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	nations := make([]*Nation, 0, len(ns.order))
	for _, id := range ns.order {
		nations = append(nations, ns.nations[id])
	}
	return nations
}

// Slugs returns all nation slugs in document order.
func (ns *Nations) Slugs() []NationID {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return slices.Clone(ns.order)
}
