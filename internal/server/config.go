package server

import (
	"time"

	"github.com/caarlos0/env/v11"

	folioerrors "github.com/foliokit/folio/pkg/errors"
)

// Config holds the preview server settings, overridable from the
// environment.
type Config struct {
	Addr            string        `env:"FOLIO_ADDR" envDefault:":8090"`
	PreviewDebounce time.Duration `env:"FOLIO_PREVIEW_DEBOUNCE" envDefault:"250ms"`
	AllowedOrigins  []string      `env:"FOLIO_ALLOWED_ORIGINS" envSeparator:","`
	Debug           bool          `env:"FOLIO_DEBUG"`
}

// LoadConfig reads the server configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, folioerrors.NewParseError("environment", err)
	}
	return cfg, nil
}
