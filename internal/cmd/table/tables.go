// Package table converts atlas entities into tabular data for CLI output.
package table

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/felgenland/staratlas/pkg/integrity"
	"github.com/felgenland/staratlas/pkg/politics"
	"github.com/felgenland/staratlas/pkg/query"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

var titleCaser = cases.Title(language.English)

// DisplayName renders a snake_case slug as a human-readable title,
// e.g. "terran_directorate" becomes "Terran Directorate".
func DisplayName(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "_", " "))
}

// NationsToTableData converts nations to table format. Wide mode adds the
// demographic and zone columns.
func NationsToTableData(ds *politics.Dataset, ix *query.Index, wide bool) Data {
	headers := []string{"Slug", "Name", "Capital", "Government", "Territories"}
	alignment := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight}
	if wide {
		headers = append(headers, "Population", "Economy", "Zones")
		alignment = append(alignment, AlignRight, AlignLeft, AlignLeft)
	}

	nations := ds.Nations().List()
	rows := make([][]string, 0, len(nations))
	for _, n := range nations {
		row := []string{
			string(n.ID),
			n.Name,
			n.CapitalSystem,
			DisplayName(n.Government),
			strconv.Itoa(ix.TerritoryCount(n.ID)),
		}

		if wide {
			row = append(row, orDash(n.Population), orDash(n.Economy), joinZones(ix.ZonesFor(n.ID)))
		}

		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: alignment}
}

// ZonesToTableData converts economic zones to table format.
func ZonesToTableData(ds *politics.Dataset, ix *query.Index, wide bool) Data {
	headers := []string{"Slug", "Name", "Currency", "Members", "Nations"}
	alignment := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignLeft}
	if wide {
		headers = append(headers, "Tax Rate", "Regulations")
		alignment = append(alignment, AlignRight, AlignLeft)
	}

	zones := ds.Zones().List()
	rows := make([][]string, 0, len(zones))
	for _, z := range zones {
		members := make([]string, 0, len(ix.MembersOf(z.ID)))
		for _, nation := range ix.MembersOf(z.ID) {
			members = append(members, string(nation))
		}

		row := []string{
			string(z.ID),
			z.Name,
			z.Currency,
			strconv.Itoa(len(z.MemberSystems)),
			strings.Join(members, ", "),
		}

		if wide {
			row = append(row, orDash(z.TaxRate), orDash(z.TradeRegulations))
		}

		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: alignment}
}

// FindingsToTableData converts an integrity report to table format.
func FindingsToTableData(report *integrity.Report) Data {
	rows := make([][]string, 0, report.Len())
	for _, f := range report.Findings {
		rows = append(rows, []string{
			f.Severity.String(),
			f.Rule.String(),
			joinSlugs(f.Slugs),
			f.Message,
		})
	}

	return Data{
		Headers: []string{"Severity", "Rule", "Entities", "Message"},
		Rows:    rows,
	}
}

// NationDetailToTableData renders a single nation as key/value rows for the
// inspect command. Capital coordinates are appended when resolved.
func NationDetailToTableData(n *politics.Nation, zones []politics.ZoneID, capitalCoords string) Data {
	rows := [][]string{
		{"Slug", string(n.ID)},
		{"Name", n.Name},
		{"Full Name", n.FullName},
		{"Capital", n.CapitalSystem},
		{"Capital Star", n.CapitalStarID.String()},
		{"Government", DisplayName(n.Government)},
		{"Established", strconv.Itoa(n.Established)},
		{"Territories", joinStarIDs(n.Territories)},
		{"Zones", joinZones(zones)},
	}

	if n.CapitalPlanet != "" {
		rows = append(rows, []string{"Capital Planet", n.CapitalPlanet})
	}
	if n.Population != "" {
		rows = append(rows, []string{"Population", n.Population})
	}
	if n.MilitaryStrength != "" {
		rows = append(rows, []string{"Military Strength", n.MilitaryStrength})
	}
	if n.Economy != "" {
		rows = append(rows, []string{"Economy", n.Economy})
	}
	if n.PoliticalSystem != "" {
		rows = append(rows, []string{"Political System", n.PoliticalSystem})
	}
	if n.DiplomaticStance != "" {
		rows = append(rows, []string{"Diplomatic Stance", n.DiplomaticStance})
	}
	if len(n.Specialties) > 0 {
		rows = append(rows, []string{"Specialties", strings.Join(n.Specialties, ", ")})
	}
	if n.Description != "" {
		rows = append(rows, []string{"Description", n.Description})
	}
	if capitalCoords != "" {
		rows = append(rows, []string{"Capital Coordinates", capitalCoords})
	}

	return Data{Headers: []string{"Field", "Value"}, Rows: rows}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinStarIDs(ids []politics.StarID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, ", ")
}

func joinZones(zones []politics.ZoneID) string {
	if len(zones) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(zones))
	for _, z := range zones {
		parts = append(parts, string(z))
	}
	return strings.Join(parts, ", ")
}

func joinSlugs(slugs []string) string {
	return strings.Join(slugs, ", ")
}
