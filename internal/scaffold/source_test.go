package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/libforge/cli/internal/errors"
)

func TestSelectSource(t *testing.T) {
	_, isGit := SelectSource("https://github.com/acme/starter").(*GitSource)
	assert.True(t, isGit)

	_, isLocal := SelectSource("").(*LocalSource)
	assert.True(t, isLocal)
}

func TestLocalSource_MaterializesBundledTemplate(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out")

	src := &LocalSource{}
	require.NoError(t, src.Materialize(context.Background(), dest, false))

	assert.FileExists(t, filepath.Join(dest, "package.json"))
	assert.FileExists(t, filepath.Join(dest, ParameterManifestName))
	assert.FileExists(t, filepath.Join(dest, "src", "index.ts"))
	assert.FileExists(t, filepath.Join(dest, "gitignore.template"))
}

func TestLocalSource_ConflictWithoutOverwrite(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "a.txt"), []byte("old"), 0o644))

	src := &LocalSource{FS: fstest.MapFS{
		"a.txt": &fstest.MapFile{Data: []byte("new")},
	}}

	err := src.Materialize(context.Background(), dest, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConflict)

	// The conflicting file was not silently replaced.
	data, readErr := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "old", string(data))
}

func TestLocalSource_OverwriteReplacesExisting(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "a.txt"), []byte("old"), 0o644))

	src := &LocalSource{FS: fstest.MapFS{
		"a.txt":     &fstest.MapFile{Data: []byte("new")},
		"b/new.txt": &fstest.MapFile{Data: []byte("added")},
	}}

	require.NoError(t, src.Materialize(context.Background(), dest, true))

	data, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
	assert.FileExists(t, filepath.Join(dest, "b", "new.txt"))
}

func TestGitSource_InvalidURL(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out")

	src := &GitSource{URL: filepath.Join(t.TempDir(), "no-such-repo")}
	err := src.Materialize(context.Background(), dest, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrAcquisition)
}

func TestSourceDescribe(t *testing.T) {
	assert.Equal(t, "https://x", (&GitSource{URL: "https://x"}).Describe())
	assert.Equal(t, "bundled template", (&LocalSource{}).Describe())
}
