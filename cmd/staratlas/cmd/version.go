package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/felgenland/staratlas/internal/appcontext"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(actx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintf(c.OutOrStdout(), "staratlas %s\n", actx.Version())
			fmt.Fprintf(c.OutOrStdout(), "  commit:  %s\n", actx.Commit())
			fmt.Fprintf(c.OutOrStdout(), "  built:   %s\n", actx.Date())
			fmt.Fprintf(c.OutOrStdout(), "  go:      %s\n", runtime.Version())
			fmt.Fprintf(c.OutOrStdout(), "  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
