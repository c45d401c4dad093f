// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// ScaffoldConfig contains defaults for the new-project pipeline.
type ScaffoldConfig struct {
	// Template is the default remote template URL. Empty means the bundled
	// template is used.
	// Env: LIBFORGE_TEMPLATE
	Template string `mapstructure:"template" yaml:"template,omitempty"`

	// OutputDir is the default parent directory for generated projects.
	// Env: LIBFORGE_OUTPUT_DIR, Default: current working directory
	OutputDir string `mapstructure:"outputDir" yaml:"outputDir,omitempty"`
}

// Config represents the libforge CLI configuration.
// Loaded from ~/.libforge/config.yaml with LIBFORGE_* env overrides.
type Config struct {
	// Scaffold contains defaults for the new-project pipeline.
	Scaffold ScaffoldConfig `mapstructure:"scaffold" yaml:"scaffold,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `libforge config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Scaffold: ScaffoldConfig{
			Template:  "",
			OutputDir: "",
		},
	}
}

// WithDefaults fills unset fields with default values.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	return c
}
