// Package templates ships the bundled library template used when no remote
// template URL is given. The files are embedded verbatim: token markers stay
// in place and are resolved later by the substitution stage, and dotfiles are
// shipped under *.template names that the cleanup stage renames.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed library
var libraryFS embed.FS

// Library returns the bundled template rooted at its top-level directory.
func Library() fs.FS {
	sub, err := fs.Sub(libraryFS, "library")
	if err != nil {
		// The embedded tree always contains library/; a failure here is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return sub
}
