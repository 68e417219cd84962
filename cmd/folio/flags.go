package main

import (
	"os"

	"github.com/foliokit/folio/internal/config"
	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/logger"
)

func newLogger(verbose bool) (*logger.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, Pretty: true})
}

// resolveDocumentPath prefers the command's own flag over the tool
// configuration.
func resolveDocumentPath(flagPath string, cfg *config.Config) string {
	if flagPath != "" {
		return flagPath
	}
	return cfg.Document
}

// loadDocument reads the portfolio document and applies the config's
// theme override when one is set.
func loadDocument(path string, cfg *config.Config) (document.Document, error) {
	doc, err := document.ParseFile(path)
	if err != nil {
		return document.Document{}, err
	}
	if err := document.Validate(doc); err != nil {
		return document.Document{}, err
	}

	out := *doc
	if cfg.Theme != "" {
		out = out.WithTheme(cfg.Theme)
	}
	return out, nil
}

// loadDocumentOrSample is loadDocument, except a missing file yields
// the built-in sample portfolio instead of an error.
func loadDocumentOrSample(path string, cfg *config.Config, log *logger.Logger) (document.Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.WithFields(map[string]any{"path": path}).Info("document not found, starting from the sample portfolio")
		doc := document.Sample()
		if cfg.Theme != "" {
			doc = doc.WithTheme(cfg.Theme)
		}
		return doc, nil
	}
	return loadDocument(path, cfg)
}
