package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/libforge/cli/internal/errors"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	resetFlags()
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestNewConfigCmd(t *testing.T) {
	cmd := NewConfigCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "vet")
}

func TestConfigInit(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LIBFORGE_CONFIG", "")

	require.NoError(t, execute(t, "config", "init"))

	configFile := filepath.Join(home, ".libforge", "config.yaml")
	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scaffold:")

	// A second init refuses to clobber the existing file.
	err = execute(t, "config", "init")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	require.NoError(t, execute(t, "config", "init", "--force"))
}

func TestConfigVet(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(`scaffold:
  template: https://github.com/acme/library-starter
`), 0o600))

		assert.NoError(t, execute(t, "config", "vet", "--config", configFile))
	})

	t.Run("missing config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("LIBFORGE_CONFIG", "")

		err := execute(t, "config", "vet")
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrNotFound)
	})

	t.Run("invalid template scheme", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(`scaffold:
  template: ftp://example.com/template
`), 0o600))

		err := execute(t, "config", "vet", "--config", configFile)
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("scaffold: [unclosed"), 0o600))

		err := execute(t, "config", "vet", "--config", configFile)
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrParse)
	})
}
