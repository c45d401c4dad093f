package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/libforge/cli/internal/config"
	oerrors "github.com/libforge/cli/internal/errors"
	"github.com/libforge/cli/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the libforge CLI configuration.

Creates ~/.libforge/config.yaml with commented defaults:
  - Default template repository URL
  - Default output directory for generated projects
  - Log settings

Examples:
  # Initialize configuration
  libforge config init

  # Overwrite existing configuration
  libforge config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !configInitForce {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := config.EnsureHomeDir(); err != nil {
		return oerrors.Wrap(err, "could not create ~/.libforge directory")
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(paths.ConfigFile, data, 0o600); err != nil {
		return oerrors.Wrap(err, "could not write config.yaml")
	}

	output.Println("Configuration initialized at " + paths.ConfigFile)

	return nil
}
