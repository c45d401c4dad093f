package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// vcsDir is the version-control metadata directory left behind by a clone.
const vcsDir = ".git"

// StripHistory removes version-control metadata from the materialized copy.
// A bundled-template copy never has it and a cloned copy always does, so
// absence is not an error. An I/O failure while removing is fatal.
func StripHistory(dest string) error {
	path := filepath.Join(dest, vcsDir)

	// RemoveAll returns nil when the path does not exist.
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}

	return nil
}
