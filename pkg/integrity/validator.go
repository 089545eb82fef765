// Package integrity checks the cross-entity invariants of a political-entity
// dataset: territory exclusivity between nations, capital containment, zone
// membership subset rules, and cosmetic well-formedness of map colors.
//
// Validation never fails. Structural problems are the loader's business;
// everything here is a semantic finding accumulated into a Report that the
// caller inspects.
//
// Example usage:
//
//	report := integrity.Validate(ds)
//	if report.HasErrors() {
//	    for _, f := range report.Errors() {
//	        fmt.Println(f)
//	    }
//	}
package integrity

import (
	"fmt"
	"regexp"

	"github.com/felgenland/staratlas/pkg/constants"
	"github.com/felgenland/staratlas/pkg/politics"
)

// hexColorPattern matches a 6-hex-digit color value prefixed with '#'.
var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Option configures a validation run.
type Option func(*validator)

// WithSentinel overrides the sentinel "unclaimed" star id, which is exempt
// from the territory-exclusivity rule.
func WithSentinel(id politics.StarID) Option {
	return func(v *validator) {
		v.sentinel = id
	}
}

type validator struct {
	sentinel politics.StarID
}

// Validate runs every integrity rule over the dataset and returns the
// accumulated report. The dataset is only read, never modified.
func Validate(ds *politics.Dataset, opts ...Option) *Report {
	v := &validator{sentinel: constants.UnclaimedStarID}
	for _, opt := range opts {
		opt(v)
	}

	report := &Report{}

	// Nations first, in document order. claims tracks the first nation to
	// claim each star id so overlaps can name both parties.
	claims := make(map[politics.StarID]politics.NationID)
	for _, nation := range ds.Nations().List() {
		v.checkTerritoryExclusivity(report, nation, claims)
		v.checkCapitalContainment(report, nation)
		v.checkDuplicateTerritories(report, nation)
		v.checkColor(report, nation, "color", nation.Color)
		v.checkColor(report, nation, "border_color", nation.BorderColor)
	}

	// Then zones, in document order. A zone may span nations but must not
	// reference systems owned by none of them.
	owned := ownedSystems(ds)
	for _, zone := range ds.Zones().List() {
		v.checkZoneMembers(report, zone, owned)
	}

	return report
}

// checkTerritoryExclusivity emits an error for every star id already claimed
// by an earlier nation, unless the id is the sentinel.
func (v *validator) checkTerritoryExclusivity(report *Report, nation *politics.Nation, claims map[politics.StarID]politics.NationID) {
	for _, id := range nation.Territories {
		if id == v.sentinel {
			continue
		}
		prior, claimed := claims[id]
		if !claimed {
			claims[id] = nation.ID
			continue
		}
		if prior == nation.ID {
			// Same nation twice is the duplicate-territory rule's business.
			continue
		}
		report.Add(Finding{
			Severity: SeverityError,
			Rule:     RuleTerritoryOverlap,
			Slugs:    []string{string(prior), string(nation.ID)},
			Message:  fmt.Sprintf("star id %d is claimed by both %s and %s", id, prior, nation.ID),
		})
	}
}

// checkCapitalContainment emits an error when a nation's capital star id is
// missing from its own territory list.
func (v *validator) checkCapitalContainment(report *Report, nation *politics.Nation) {
	if nation.HasTerritory(nation.CapitalStarID) {
		return
	}
	report.Add(Finding{
		Severity: SeverityError,
		Rule:     RuleCapitalOutsideTerritory,
		Slugs:    []string{string(nation.ID)},
		Message:  fmt.Sprintf("capital star id %d is not in the territory list", nation.CapitalStarID),
	})
}

// checkDuplicateTerritories emits one warning per star id a nation lists
// more than once. Redundant, not harmful.
func (v *validator) checkDuplicateTerritories(report *Report, nation *politics.Nation) {
	counts := make(map[politics.StarID]int, len(nation.Territories))
	for _, id := range nation.Territories {
		counts[id]++
	}
	flagged := make(map[politics.StarID]bool)
	for _, id := range nation.Territories {
		if counts[id] < 2 || flagged[id] {
			continue
		}
		flagged[id] = true
		report.Add(Finding{
			Severity: SeverityWarning,
			Rule:     RuleDuplicateTerritory,
			Slugs:    []string{string(nation.ID)},
			Message:  fmt.Sprintf("star id %d is listed %d times in the territory list", id, counts[id]),
		})
	}
}

// checkColor emits a warning when a present color value is not "#RRGGBB".
func (v *validator) checkColor(report *Report, nation *politics.Nation, field, value string) {
	if value == "" || hexColorPattern.MatchString(value) {
		return
	}
	report.Add(Finding{
		Severity: SeverityWarning,
		Rule:     RuleMalformedColor,
		Slugs:    []string{string(nation.ID)},
		Message:  fmt.Sprintf("%s %q is not a 6-hex-digit color", field, value),
	})
}

// checkZoneMembers emits an error for every member system no nation owns.
func (v *validator) checkZoneMembers(report *Report, zone *politics.EconomicZone, owned map[politics.StarID]struct{}) {
	for _, id := range zone.MemberSystems {
		if _, ok := owned[id]; ok {
			continue
		}
		report.Add(Finding{
			Severity: SeverityError,
			Rule:     RuleOrphanZoneMember,
			Slugs:    []string{string(zone.ID)},
			Message:  fmt.Sprintf("member system %d is not owned by any nation", id),
		})
	}
}

// ownedSystems returns the union of all nations' territory lists, sentinel
// included when some nation carries it.
func ownedSystems(ds *politics.Dataset) map[politics.StarID]struct{} {
	owned := make(map[politics.StarID]struct{})
	for _, nation := range ds.Nations().List() {
		for _, id := range nation.Territories {
			owned[id] = struct{}{}
		}
	}
	return owned
}
