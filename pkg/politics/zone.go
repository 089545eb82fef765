package politics

import "slices"

// ZoneID represents an economic-zone slug for compile-time safety.
type ZoneID string

// String returns the string representation of a ZoneID.
func (id ZoneID) String() string {
	return string(id)
}

// EconomicZone represents a cross-nation grouping of star systems that share
// trade regulation and currency terms. Zone membership is a weak relation:
// zones reference systems owned by nations, they never own systems themselves.
//
// Currency, TradeRegulations and TaxRate are opaque display strings.
type EconomicZone struct {
	ID               ZoneID   `json:"id" yaml:"id"`                   // Slug, taken from the document mapping key
	Name             string   `json:"name" yaml:"name"`               // Display name (required)
	MemberSystems    []StarID `json:"member_systems" yaml:"member_systems"` // Member star ids, document order (required)
	Currency         string   `json:"currency,omitempty" yaml:"currency,omitempty"`
	TradeRegulations string   `json:"trade_regulations,omitempty" yaml:"trade_regulations,omitempty"`
	TaxRate          string   `json:"tax_rate,omitempty" yaml:"tax_rate,omitempty"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// HasMember reports whether the zone lists the given star id.
func (z *EconomicZone) HasMember(id StarID) bool {
	return slices.Contains(z.MemberSystems, id)
}

// copy returns a deep copy of the zone.
func (z *EconomicZone) copy() EconomicZone {
	out := *z
	out.MemberSystems = slices.Clone(z.MemberSystems)
	return out
}
