package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/foliokit/folio/internal/assemble"
	"github.com/foliokit/folio/internal/config"
	"github.com/foliokit/folio/internal/render"
)

type previewOptions struct {
	DocumentPath string
	Device       string
	OutPath      string
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a portfolio document to a self-contained HTML page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(root, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.DocumentPath, "document", "d", "", "Path to the portfolio JSON document")
	cmd.Flags().StringVar(&opts.Device, "device", string(render.DeviceWide), "Preview device (narrow or wide)")
	cmd.Flags().StringVarP(&opts.OutPath, "out", "o", "", "Write the HTML to a file instead of stdout")

	return cmd
}

func runPreview(root *rootFlags, opts previewOptions, cmd *cobra.Command) error {
	log, err := newLogger(root.verbose)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root.configPath)
	if err != nil {
		return err
	}

	device, err := render.ParseDevice(opts.Device)
	if err != nil {
		return err
	}

	doc, err := loadDocument(resolveDocumentPath(opts.DocumentPath, cfg), cfg)
	if err != nil {
		return err
	}

	preview, err := assemble.New(log).AssemblePreview(doc, device)
	if err != nil {
		return err
	}
	for _, w := range preview.Warnings {
		log.WithFields(map[string]any{"field": w.Field}).Warn(w.Message)
	}

	if opts.OutPath == "" {
		_, err = cmd.OutOrStdout().Write([]byte(preview.HTML))
		return err
	}
	return os.WriteFile(opts.OutPath, []byte(preview.HTML), 0o644)
}
