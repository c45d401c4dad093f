package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantErrs int
	}{
		{"empty config is valid", Config{}, 0},
		{
			"https template",
			Config{Scaffold: ScaffoldConfig{Template: "https://github.com/acme/starter"}},
			0,
		},
		{
			"scp-like template",
			Config{Scaffold: ScaffoldConfig{Template: "git@github.com:acme/starter.git"}},
			0,
		},
		{
			"unsupported scheme",
			Config{Scaffold: ScaffoldConfig{Template: "ftp://example.com/starter"}},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.cfg.Validate(), tt.wantErrs)
		})
	}
}

func TestDefaultConfigYAML_RoundTrips(t *testing.T) {
	data, err := DefaultConfigYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "# libforge configuration.")

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, *DefaultConfig(), cfg)
}
