package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNewCmd(t *testing.T) {
	resetFlags()
	cmd := NewNewCmd()

	assert.Equal(t, "new <library-name> <repo-name>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup("template"))
	assert.NotNil(t, cmd.Flags().Lookup("dir"))
	assert.NotNil(t, cmd.Flags().Lookup("overwrite"))
}

func TestNew_RequiresArgs(t *testing.T) {
	resetFlags()
	cmd := NewNewCmd()
	cmd.SetArgs([]string{"onlyone"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg")
}

func TestNew_DestinationExists(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "existing")
	require.NoError(t, os.MkdirAll(target, 0o755))

	resetFlags()
	cmd := NewNewCmd()
	cmd.SetArgs([]string{"mylib", "org/mylib", "--dir", target})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestNew_BundledTemplate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "mylib")

	resetFlags()
	cmd := NewNewCmd()
	cmd.SetArgs([]string{"mylib", "@org/mylib", "--dir", target})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(target, "package.json"))
	require.NoError(t, err)

	var manifest map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, "@org/mylib", manifest["name"], "leading @ is stripped before the pipeline runs")
	assert.Equal(t, "0.0.1", manifest["version"])

	readme, err := os.ReadFile(filepath.Join(target, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# Mylib", "library name is capitalized")

	assert.FileExists(t, filepath.Join(target, ".gitignore"))
	assert.NoFileExists(t, filepath.Join(target, "template.parameters.json"))
}

func TestNew_OverwriteExistingDestination(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "README.md"), []byte("old"), 0o644))

	resetFlags()
	cmd := NewNewCmd()
	cmd.SetArgs([]string{"mylib", "org/mylib", "--dir", target, "--overwrite"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	readme, err := os.ReadFile(filepath.Join(target, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# Mylib")
}
