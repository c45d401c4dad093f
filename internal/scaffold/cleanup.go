package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/libforge/cli/internal/output"
)

// scaffoldOnlyFiles are artifacts meaningful to the template itself, removed
// from the generated project. Absence is treated as already cleaned.
var scaffoldOnlyFiles = []string{
	ParameterManifestName,
	"types.d.ts",
}

// templateRenames maps template-suffixed dotfile stand-ins to their real
// names. Templates ship these under neutral names so the files survive
// packaging and publishing; the generated project gets the real dotfiles.
var templateRenames = []struct {
	src string
	dst string
}{
	{"gitignore.template", ".gitignore"},
	{"npmrc.template", ".npmrc"},
}

// Cleanup removes scaffold-only files and renames template-suffixed dotfile
// stand-ins. Missing files are skipped without failing the run.
func Cleanup(dest string) error {
	for _, name := range scaffoldOnlyFiles {
		path := filepath.Join(dest, name)
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("removing %s: %w", path, err)
		}
		output.Debug("removed scaffold file", "file", name)
	}

	for _, rename := range templateRenames {
		src := filepath.Join(dest, rename.src)
		dst := filepath.Join(dest, rename.dst)

		if _, err := os.Stat(src); err != nil {
			if os.IsNotExist(err) {
				output.Debug("rename source absent, skipping", "file", rename.src)
				continue
			}
			return fmt.Errorf("checking %s: %w", src, err)
		}

		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("renaming %s to %s: %w", rename.src, rename.dst, err)
		}
		output.Debug("renamed template file", "from", rename.src, "to", rename.dst)
	}

	return nil
}
