// Package cmd implements the staratlas CLI commands.
package cmd

import (
	"github.com/felgenland/staratlas/internal/appcontext"
	"github.com/felgenland/staratlas/internal/cmd/output"
)

// formatterFor builds a formatter from the application's configured output
// format, auto-detecting from the terminal when no format is set.
func formatterFor(actx appcontext.Interface) output.Formatter {
	return output.NewFormatter(output.DetectFormat(actx.OutputFormat()))
}

// wide reports whether the configured format is the wide table variant.
func wide(actx appcontext.Interface) bool {
	return output.DetectFormat(actx.OutputFormat()) == output.FormatWide
}
