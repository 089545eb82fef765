// Package constants provides shared constants used throughout the staratlas codebase.
// This includes file names, sentinel values, file permissions, and other
// configuration values that should be consistent across the application.
package constants

// Dataset constants define the shape of the political-entity document.
const (
	// DatasetFile is the default file name of the political-entity document.
	DatasetFile = "nations.json"

	// StarsFile is the default file name of a star-coordinates document.
	StarsFile = "stars.yaml"

	// UnclaimedStarID is the sentinel star id denoting unclaimed or contested
	// space. It is exempt from territory exclusivity and never resolves to an
	// owning nation.
	UnclaimedStarID = 999999
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Display limit constants used by CLI output formatting
const (
	// MaxDescriptionLength is the longest description rendered in table cells
	MaxDescriptionLength = 80

	// ColorHexLength is the length of a well-formed color value ("#RRGGBB")
	ColorHexLength = 7
)
