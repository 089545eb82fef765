package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felgenland/staratlas/internal/appcontext"
	"github.com/felgenland/staratlas/pkg/politics"
)

// membersResult is the serializable answer to a zone-composition query.
type membersResult struct {
	Zone      politics.ZoneID     `json:"zone" yaml:"zone"`
	Nations   []politics.NationID `json:"nations" yaml:"nations"`
	Unclaimed []politics.StarID   `json:"unclaimed_systems,omitempty" yaml:"unclaimed_systems,omitempty"`
}

// NewMembersCommand creates the members command.
func NewMembersCommand(actx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "members <zone>",
		GroupID: "query",
		Short:   "List the nations participating in an economic zone",
		Long: `Members lists every nation that owns at least one of the zone's member
star systems. Member systems carried by no nation (the unclaimed sentinel)
are reported separately.

Examples:
  staratlas members felgenland_trade_zone
  staratlas members frontier_exchange -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			atlas, err := actx.Atlas()
			if err != nil {
				return err
			}

			zone := politics.ZoneID(args[0])
			if _, err := atlas.Dataset().Zone(zone); err != nil {
				return err
			}

			ix := atlas.Index()
			result := membersResult{
				Zone:      zone,
				Nations:   ix.MembersOf(zone),
				Unclaimed: ix.UnclaimedMembers(zone),
			}
			return formatterFor(actx).Format(c.OutOrStdout(), result)
		},
	}
}
