package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felgenland/staratlas"
	"github.com/felgenland/staratlas/internal/appcontext"
	"github.com/felgenland/staratlas/internal/cmd/output"
	"github.com/felgenland/staratlas/internal/cmd/table"
	"github.com/felgenland/staratlas/pkg/errors"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(actx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Validate dataset integrity",
		Long: `Validate loads the dataset, runs the integrity rules, and reports
every finding. The exit status is non-zero when any error-severity
finding is present, making this command usable as a CI gate.

Warnings are reported but never fail the run.

Examples:
  staratlas validate
  staratlas validate --dataset nations.json
  staratlas validate -o json`,
		RunE: func(c *cobra.Command, _ []string) error {
			// Lenient load so datasets with findings still produce a report
			atlas, err := actx.AtlasWithOptions(staratlas.WithStrict(false))
			if err != nil {
				return err
			}

			report := atlas.Report()

			if report.IsClean() {
				fmt.Fprintln(c.OutOrStdout(), "Dataset is valid: no integrity findings")
				return nil
			}

			format := output.DetectFormat(actx.OutputFormat())
			if format == output.FormatJSON || format == output.FormatYAML {
				if err := formatterFor(actx).Format(c.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				data := table.FindingsToTableData(report)
				if err := formatterFor(actx).Format(c.OutOrStdout(), data); err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), report.Summary())
			}

			if report.HasErrors() {
				return &errors.IntegrityError{
					Errors:   len(report.Errors()),
					Warnings: len(report.Warnings()),
				}
			}
			return nil
		},
	}
}
