package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/foliokit/folio/internal/assemble"
	"github.com/foliokit/folio/internal/config"
	"github.com/foliokit/folio/internal/document"
)

type exportOptions struct {
	DocumentPath string
	OutDir       string
	JSON         bool
}

func newExportCmd(root *rootFlags) *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the static site source tree for a portfolio document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(root, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.DocumentPath, "document", "d", "", "Path to the portfolio JSON document")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Output directory for the site tree")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Write the pretty-printed document JSON instead of a site tree")

	return cmd
}

func runExport(root *rootFlags, opts exportOptions, cmd *cobra.Command) error {
	log, err := newLogger(root.verbose)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root.configPath)
	if err != nil {
		return err
	}

	doc, err := loadDocument(resolveDocumentPath(opts.DocumentPath, cfg), cfg)
	if err != nil {
		return err
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = cfg.Export.Dir
	}

	if opts.JSON {
		data, err := document.MarshalPretty(doc)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
		target := filepath.Join(outDir, "portfolio.json")
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", target)
		return nil
	}

	tree, warnings, err := assemble.New(log).AssembleExport(doc)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.WithFields(map[string]any{"field": w.Field}).Warn(w.Message)
	}

	if err := tree.WriteDir(outDir); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported %d files to %s\n", tree.Len(), outDir)
	return nil
}
