package config

import (
	"os"

	"gopkg.in/yaml.v3"

	folioerrors "github.com/foliokit/folio/pkg/errors"
)

// ParseConfig loads a configuration file from disk, fills in defaults,
// validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, folioerrors.NewParseError(path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, folioerrors.NewParseError(path, err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load returns the configuration at path, or the defaults when the
// file does not exist.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		return &cfg, nil
	}
	return ParseConfig(path)
}
