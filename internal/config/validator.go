package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validate checks a loaded configuration for obvious mistakes.
// It is used by `libforge config vet`.
func (c *Config) Validate() []error {
	var errs []error

	if c.Scaffold.Template != "" {
		if err := validateTemplateURL(c.Scaffold.Template); err != nil {
			errs = append(errs, fmt.Errorf("scaffold.template: %w", err))
		}
	}

	if c.Scaffold.OutputDir != "" {
		expanded, err := ExpandPath(c.Scaffold.OutputDir)
		if err != nil {
			errs = append(errs, fmt.Errorf("scaffold.outputDir: %w", err))
		} else if info, statErr := os.Stat(expanded); statErr == nil && !info.IsDir() {
			errs = append(errs, fmt.Errorf("scaffold.outputDir: %s is not a directory", expanded))
		}
	}

	return errs
}

// validateTemplateURL accepts https/http/git/ssh URLs and scp-like
// git@host:owner/repo locations.
func validateTemplateURL(raw string) error {
	if strings.HasPrefix(raw, "git@") && strings.Contains(raw, ":") {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	switch u.Scheme {
	case "https", "http", "git", "ssh":
		return nil
	default:
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
}

// DefaultConfigYAML renders the default configuration as YAML for
// `libforge config init`.
func DefaultConfigYAML() ([]byte, error) {
	header := "# libforge configuration.\n# Values here are overridden by LIBFORGE_* environment variables and flags.\n"

	body, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("marshaling default config: %w", err)
	}

	return append([]byte(header), body...), nil
}
