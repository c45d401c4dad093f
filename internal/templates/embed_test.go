package templates

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_ContainsScaffoldFiles(t *testing.T) {
	fsys := Library()

	wantFiles := []string{
		"package.json",
		"template.parameters.json",
		"README.md",
		"src/index.ts",
		"test/index.test.ts",
		"gitignore.template",
		"npmrc.template",
		"types.d.ts",
		"tsconfig.json",
	}

	for _, name := range wantFiles {
		_, err := fs.Stat(fsys, name)
		assert.NoError(t, err, "bundled template missing %s", name)
	}
}

func TestLibrary_ShipsNoDotfiles(t *testing.T) {
	// Dotfiles ship under *.template names; go:embed would silently drop
	// real dotfiles, so none may exist in the template tree.
	err := fs.WalkDir(Library(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != "." {
			assert.NotEqual(t, byte('.'), d.Name()[0], "unexpected dotfile in template: %s", path)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestLibrary_TokensPresent(t *testing.T) {
	data, err := fs.ReadFile(Library(), "README.md")
	require.NoError(t, err)

	assert.Contains(t, string(data), "{{LIB_NAME}}")
	assert.Contains(t, string(data), "{{REPO}}")
}
