package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libforge/cli/internal/config"
	oerrors "github.com/libforge/cli/internal/errors"
	"github.com/libforge/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the libforge CLI configuration.

Checks that the config file parses and that its values make sense:
the template URL uses a supported scheme and the output directory, when it
exists, is a directory.`,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	exists, err := config.ConfigFileExists(configFlag)
	if err != nil {
		return err
	}
	if !exists {
		path, _ := config.GetConfigFile()
		return oerrors.NewNotFoundError("configuration file not found", path,
			"Run 'libforge config init' to create one.")
	}

	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		return fmt.Errorf("%w: %w", oerrors.ErrParse, err)
	}

	errs := cfg.Validate()
	if len(errs) > 0 {
		for _, e := range errs {
			output.Error("invalid configuration", "error", e)
		}
		return oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("%d invalid configuration value(s)", len(errs)))
	}

	output.Println(output.FormatCheckmark("configuration is valid"))
	return nil
}
