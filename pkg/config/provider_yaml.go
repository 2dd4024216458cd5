package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the configuration from the YAML file. Keys missing from
// the file keep their defaults. A missing file is returned as an error
// wrapping fs.ErrNotExist.
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	if y.config != nil {
		return y.config, nil
	}

	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Pointers distinguish an explicit zero from an absent key
	var yamlConfig struct {
		DeltaT *float64 `yaml:"delta_t_seconds,omitempty"`
		Format string   `yaml:"format,omitempty"`
		Debug  bool     `yaml:"debug,omitempty"`
	}

	if err := yaml.UnmarshalStrict(cfgFile, &yamlConfig); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", y.filename, err)
	}

	config := Default()
	if yamlConfig.DeltaT != nil {
		config.DeltaT = *yamlConfig.DeltaT
	}
	if yamlConfig.Format != "" {
		config.Format = yamlConfig.Format
	}
	config.Debug = yamlConfig.Debug

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", y.filename, err)
	}

	y.config = config
	return config, nil
}

// IsReadOnly returns true since YAML files are treated as read-only
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}
