// Package embedded carries the production political-entity dataset compiled
// into the binary, so the CLI and library work without any files on disk.
package embedded

import (
	"embed"
	"io/fs"
)

// FS embeds the dataset snapshot at build time.
//
//go:embed dataset/*
var FS embed.FS

// DatasetFS returns the embedded dataset directory as a filesystem rooted at
// the document level.
func DatasetFS() fs.FS {
	sub, err := fs.Sub(FS, "dataset")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}
