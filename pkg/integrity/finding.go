package integrity

import (
	"fmt"
	"strings"
)

// Severity classifies a finding. Errors indicate the dataset violates a
// cross-entity invariant; warnings are cosmetic or redundant issues that do
// not block downstream use.
type Severity string

// Finding severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// String returns the string representation of a Severity.
func (s Severity) String() string {
	return string(s)
}

// Rule identifies which integrity rule produced a finding.
type Rule string

// Integrity rules.
const (
	// RuleTerritoryOverlap flags a star id claimed by more than one nation.
	RuleTerritoryOverlap Rule = "territory-overlap"

	// RuleCapitalOutsideTerritory flags a nation whose capital star id is not
	// in its own territory list.
	RuleCapitalOutsideTerritory Rule = "capital-outside-territory"

	// RuleOrphanZoneMember flags a zone member system owned by no nation.
	RuleOrphanZoneMember Rule = "orphan-zone-member"

	// RuleMalformedColor flags a color value that is not "#RRGGBB".
	RuleMalformedColor Rule = "malformed-color"

	// RuleDuplicateTerritory flags a nation listing the same star id twice.
	RuleDuplicateTerritory Rule = "duplicate-territory"
)

// String returns the string representation of a Rule.
func (r Rule) String() string {
	return string(r)
}

// Finding is one semantic issue discovered during validation. Findings are
// accumulated, never thrown; the caller decides whether error-severity
// findings block downstream use.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Rule     Rule     `json:"rule" yaml:"rule"`
	Slugs    []string `json:"slugs" yaml:"slugs"` // offending nation/zone slug(s)
	Message  string   `json:"message" yaml:"message"`
}

// String formats a finding for human-readable report output.
func (f Finding) String() string {
	return fmt.Sprintf("%s [%s] %s: %s", f.Severity, f.Rule, strings.Join(f.Slugs, ", "), f.Message)
}
