// Package config loads the optional folio.yaml tool configuration:
// where the document lives, how the preview server runs, and where
// publishing pushes the exported site.
package config

import "time"

// Config is the root of folio.yaml.
type Config struct {
	// Document is the path of the portfolio JSON file.
	Document string `yaml:"document" validate:"required"`
	// Theme overrides the document's theme when set.
	Theme string `yaml:"theme" validate:"omitempty,theme_id"`

	Server  ServerConfig  `yaml:"server"`
	Export  ExportConfig  `yaml:"export"`
	Publish PublishConfig `yaml:"publish"`
}

// ServerConfig tunes the preview server.
type ServerConfig struct {
	Addr     string        `yaml:"addr"`
	Debounce time.Duration `yaml:"debounce" validate:"omitempty,min=0"`
}

// ExportConfig tunes `folio export`.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// PublishConfig tunes `folio publish`.
type PublishConfig struct {
	RepoPath    string `yaml:"repo_path"`
	Branch      string `yaml:"branch"`
	RemoteURL   string `yaml:"remote_url" validate:"omitempty,url"`
	Push        bool   `yaml:"push"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email" validate:"omitempty,email"`
	Message     string `yaml:"message"`
}

// Default returns the configuration used when no folio.yaml exists.
func Default() Config {
	return Config{
		Document: "portfolio.json",
		Server: ServerConfig{
			Addr:     ":8090",
			Debounce: 250 * time.Millisecond,
		},
		Export: ExportConfig{
			Dir: "dist",
		},
		Publish: PublishConfig{
			Branch: "main",
		},
	}
}
