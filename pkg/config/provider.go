package config

import (
	"fmt"

	"github.com/chrissnell/moonphase/pkg/lunar"
)

// Supported output formats
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatMsgPack = "msgpack"
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	DeltaT float64 `json:"delta_t_seconds"`
	Format string  `json:"format,omitempty"`
	Debug  bool    `json:"debug,omitempty"`
}

// Default returns the configuration used when no file is present
func Default() *ConfigData {
	return &ConfigData{
		DeltaT: lunar.DefaultDeltaT,
		Format: FormatText,
	}
}

// Validate checks values that the YAML decoder cannot
func (c *ConfigData) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatMsgPack:
	default:
		return fmt.Errorf("unsupported format %q: use %s, %s or %s", c.Format, FormatText, FormatJSON, FormatMsgPack)
	}

	// ΔT has stayed well inside a few minutes since the telescopic era
	if c.DeltaT < -300 || c.DeltaT > 300 {
		return fmt.Errorf("delta_t_seconds %.1f out of range [-300, 300]", c.DeltaT)
	}
	return nil
}
