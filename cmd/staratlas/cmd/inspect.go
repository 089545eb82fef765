package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felgenland/staratlas/internal/appcontext"
	"github.com/felgenland/staratlas/internal/cmd/output"
	"github.com/felgenland/staratlas/internal/cmd/table"
	"github.com/felgenland/staratlas/pkg/politics"
	"github.com/felgenland/staratlas/pkg/starcatalog"
)

// nationDetail is the serializable full record of a nation.
type nationDetail struct {
	politics.Nation `yaml:",inline"`

	Zones              []politics.ZoneID        `json:"zones" yaml:"zones"`
	CapitalCoordinates *starcatalog.Coordinates `json:"capital_coordinates,omitempty" yaml:"capital_coordinates,omitempty"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(actx appcontext.Interface) *cobra.Command {
	var starsFile string

	inspectCmd := &cobra.Command{
		Use:     "inspect <nation>",
		GroupID: "query",
		Short:   "Show the full record of a nation",
		Long: `Inspect shows everything the dataset knows about a nation: its
territories, government, demographics, and derived zone participation.

With --stars, the capital's coordinates are resolved from a star
catalog file.

Examples:
  staratlas inspect terran_directorate
  staratlas inspect felgenland_union --stars stars.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			atlas, err := actx.Atlas()
			if err != nil {
				return err
			}

			nation, err := atlas.Dataset().Nation(politics.NationID(args[0]))
			if err != nil {
				return err
			}

			zones := atlas.Index().ZonesFor(nation.ID)

			var coords *starcatalog.Coordinates
			if starsFile != "" {
				resolver, err := starcatalog.LoadStaticFile(starsFile)
				if err != nil {
					return err
				}
				resolved, err := resolver.Resolve(c.Context(), nation.CapitalStarID)
				if err != nil {
					actx.Logger().Warn().
						Err(err).
						Str("nation", string(nation.ID)).
						Msg("capital star not in catalog")
				} else {
					coords = &resolved
				}
			}

			if format := output.DetectFormat(actx.OutputFormat()); format == output.FormatJSON || format == output.FormatYAML {
				detail := nationDetail{Nation: nation, Zones: zones, CapitalCoordinates: coords}
				return formatterFor(actx).Format(c.OutOrStdout(), detail)
			}

			coordText := ""
			if coords != nil {
				coordText = fmt.Sprintf("(%g, %g, %g)", coords.X, coords.Y, coords.Z)
			}
			data := table.NationDetailToTableData(&nation, zones, coordText)
			return formatterFor(actx).Format(c.OutOrStdout(), data)
		},
	}

	inspectCmd.Flags().StringVar(&starsFile, "stars", "", "star catalog file for coordinate resolution")

	return inspectCmd
}
