package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/felgenland/staratlas/internal/appcontext"
	"github.com/felgenland/staratlas/pkg/errors"
	"github.com/felgenland/staratlas/pkg/politics"
)

// ownerResult is the serializable answer to an ownership query.
type ownerResult struct {
	StarID politics.StarID   `json:"star_id" yaml:"star_id"`
	Owner  politics.NationID `json:"owner" yaml:"owner"`
	Nation string            `json:"nation" yaml:"nation"`
}

// NewOwnerCommand creates the owner command.
func NewOwnerCommand(actx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "owner <star-id>",
		GroupID: "query",
		Short:   "Look up which nation owns a star system",
		Long: `Owner resolves a star id to the nation that claims it as territory.

The sentinel "unclaimed" id never resolves to an owner.

Examples:
  staratlas owner 0
  staratlas owner 52409 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("star-id", args[0], "must be an integer")
			}

			atlas, err := actx.Atlas()
			if err != nil {
				return err
			}

			owner, err := atlas.Index().OwnerOf(politics.StarID(id))
			if err != nil {
				return err
			}

			nation, err := atlas.Dataset().Nation(owner)
			if err != nil {
				return err
			}

			result := ownerResult{
				StarID: politics.StarID(id),
				Owner:  owner,
				Nation: nation.Name,
			}
			return formatterFor(actx).Format(c.OutOrStdout(), result)
		},
	}
}
