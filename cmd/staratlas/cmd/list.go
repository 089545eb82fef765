package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felgenland/staratlas/internal/appcontext"
	"github.com/felgenland/staratlas/internal/cmd/output"
	"github.com/felgenland/staratlas/internal/cmd/table"
)

// NewListCommand creates the list command with its resource subcommands.
func NewListCommand(actx appcontext.Interface) *cobra.Command {
	listCmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "query",
		Short:   "List nations or economic zones",
		Long: `List displays the political entities in the dataset.

Entities are listed in document order, the same order validation reports
them in.

Examples:
  staratlas list nations
  staratlas list zones
  staratlas list nations -o wide`,
	}

	listCmd.AddCommand(newListNationsCommand(actx))
	listCmd.AddCommand(newListZonesCommand(actx))

	return listCmd
}

func newListNationsCommand(actx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "nations",
		Aliases: []string{"nation"},
		Short:   "List all nations",
		RunE: func(c *cobra.Command, _ []string) error {
			atlas, err := actx.Atlas()
			if err != nil {
				return err
			}

			ds := atlas.Dataset()
			ix := atlas.Index()

			if format := output.DetectFormat(actx.OutputFormat()); format == output.FormatJSON || format == output.FormatYAML {
				return formatterFor(actx).Format(c.OutOrStdout(), ds.Nations().List())
			}

			data := table.NationsToTableData(ds, ix, wide(actx))
			return formatterFor(actx).Format(c.OutOrStdout(), data)
		},
	}
}

func newListZonesCommand(actx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "zones",
		Aliases: []string{"zone"},
		Short:   "List all economic zones",
		RunE: func(c *cobra.Command, _ []string) error {
			atlas, err := actx.Atlas()
			if err != nil {
				return err
			}

			ds := atlas.Dataset()
			ix := atlas.Index()

			if format := output.DetectFormat(actx.OutputFormat()); format == output.FormatJSON || format == output.FormatYAML {
				return formatterFor(actx).Format(c.OutOrStdout(), ds.Zones().List())
			}

			data := table.ZonesToTableData(ds, ix, wide(actx))
			return formatterFor(actx).Format(c.OutOrStdout(), data)
		},
	}
}
