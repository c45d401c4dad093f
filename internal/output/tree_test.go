package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderFileTree("my-lib", nil))
}

func TestRenderFileTree_FlatFiles(t *testing.T) {
	out := RenderFileTree("my-lib", map[string]string{
		"package.json": "Package manifest",
		"README.md":    "",
	})

	assert.Contains(t, out, "my-lib/")
	assert.Contains(t, out, "package.json")
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, "Package manifest")
}

func TestRenderFileTree_NestedDirectoriesFirst(t *testing.T) {
	out := RenderFileTree("my-lib", map[string]string{
		"src/index.ts": "Library entry point",
		"package.json": "",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Root, then src/ before package.json (directories sort first).
	assert.Contains(t, lines[1], "src/")
	assert.Contains(t, lines[2], "index.ts")
	assert.Contains(t, lines[3], "package.json")
}

func TestRenderFileTree_LastEntryConnector(t *testing.T) {
	out := RenderFileTree("my-lib", map[string]string{
		"a.txt": "",
		"b.txt": "",
	})

	assert.Contains(t, out, "├── a.txt")
	assert.Contains(t, out, "└── b.txt")
}

func TestFormatStageTitle(t *testing.T) {
	out := FormatStageTitle(2, 6, "Removing version control history")
	assert.Contains(t, out, "[2/6]")
	assert.Contains(t, out, "Removing version control history")
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("done")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "done")
}
