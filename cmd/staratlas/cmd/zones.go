package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felgenland/staratlas/internal/appcontext"
	"github.com/felgenland/staratlas/pkg/politics"
)

// zonesResult is the serializable answer to a zone-membership query.
type zonesResult struct {
	Nation politics.NationID `json:"nation" yaml:"nation"`
	Zones  []politics.ZoneID `json:"zones" yaml:"zones"`
}

// NewZonesCommand creates the zones command.
func NewZonesCommand(actx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "zones <nation>",
		GroupID: "query",
		Short:   "List the economic zones a nation participates in",
		Long: `Zones lists every economic zone that includes at least one star system
owned by the given nation.

Examples:
  staratlas zones felgenland_union
  staratlas zones terran_directorate -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			atlas, err := actx.Atlas()
			if err != nil {
				return err
			}

			nation := politics.NationID(args[0])
			if _, err := atlas.Dataset().Nation(nation); err != nil {
				return err
			}

			result := zonesResult{
				Nation: nation,
				Zones:  atlas.Index().ZonesFor(nation),
			}
			return formatterFor(actx).Format(c.OutOrStdout(), result)
		},
	}
}
