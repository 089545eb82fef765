package politics

import (
	"slices"
	"strconv"
)

// StarID identifies a star system in the external star catalog.
type StarID int

// String returns the decimal representation of a StarID.
func (id StarID) String() string {
	return strconv.Itoa(int(id))
}

// NationID represents a nation slug for compile-time safety.
type NationID string

// String returns the string representation of a NationID.
func (id NationID) String() string {
	return string(id)
}

// Nation represents a sovereign political entity and its claimed territories.
//
// Territories is the ordered list of star ids the nation claims. Territory
// ownership is exclusive across nations except for the designated sentinel
// "unclaimed" id, which any nation may carry as a placeholder.
//
// Population, MilitaryStrength, Economy, PoliticalSystem and DiplomaticStance
// are opaque display strings preserved verbatim from the document. Downstream
// logic must not interpret them.
type Nation struct {
	ID            NationID `json:"id" yaml:"id"`                                             // Slug, taken from the document mapping key
	Name          string   `json:"name" yaml:"name"`                                         // Display name (required)
	FullName      string   `json:"full_name,omitempty" yaml:"full_name,omitempty"`           // Formal name
	CapitalSystem string   `json:"capital_system,omitempty" yaml:"capital_system,omitempty"` // Capital system display name
	CapitalStarID StarID   `json:"capital_star_id" yaml:"capital_star_id"`                   // Star-catalog reference of the capital (required)
	CapitalPlanet string   `json:"capital_planet,omitempty" yaml:"capital_planet,omitempty"` // Capital planet display name
	Government    string   `json:"government_type,omitempty" yaml:"government_type,omitempty"`
	Color         string   `json:"color,omitempty" yaml:"color,omitempty"`               // Map fill color ("#RRGGBB")
	BorderColor   string   `json:"border_color,omitempty" yaml:"border_color,omitempty"` // Map border color ("#RRGGBB")
	Established   int      `json:"established_year,omitempty" yaml:"established_year,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Territories   []StarID `json:"territories" yaml:"territories"` // Claimed star ids, document order (required)
	Specialties   []string `json:"specialties,omitempty" yaml:"specialties,omitempty"`

	// Free-text display fields, not structured data
	Population       string `json:"population,omitempty" yaml:"population,omitempty"`
	MilitaryStrength string `json:"military_strength,omitempty" yaml:"military_strength,omitempty"`
	Economy          string `json:"economy,omitempty" yaml:"economy,omitempty"`
	PoliticalSystem  string `json:"political_system,omitempty" yaml:"political_system,omitempty"`
	DiplomaticStance string `json:"diplomatic_stance,omitempty" yaml:"diplomatic_stance,omitempty"`
}

// HasTerritory reports whether the nation claims the given star id.
func (n *Nation) HasTerritory(id StarID) bool {
	return slices.Contains(n.Territories, id)
}

// TerritorySet returns the nation's territories as a set.
func (n *Nation) TerritorySet() map[StarID]struct{} {
	set := make(map[StarID]struct{}, len(n.Territories))
	for _, id := range n.Territories {
		set[id] = struct{}{}
	}
	return set
}

// copy returns a deep copy of the nation.
func (n *Nation) copy() Nation {
	out := *n
	out.Territories = slices.Clone(n.Territories)
	out.Specialties = slices.Clone(n.Specialties)
	return out
}
