package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/foliokit/folio/internal/assemble"
	"github.com/foliokit/folio/internal/config"
	"github.com/foliokit/folio/internal/server"
	"github.com/foliokit/folio/internal/session"
)

type serveOptions struct {
	DocumentPath string
	Addr         string
}

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the live preview server for an editing session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(root, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.DocumentPath, "document", "d", "", "Path to the portfolio JSON document")
	cmd.Flags().StringVar(&opts.Addr, "addr", "", "Listen address")

	return cmd
}

func runServe(root *rootFlags, opts serveOptions, cmd *cobra.Command) error {
	log, err := newLogger(root.verbose)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root.configPath)
	if err != nil {
		return err
	}

	srvCfg, err := server.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.Server.Addr != "" {
		srvCfg.Addr = cfg.Server.Addr
	}
	if cfg.Server.Debounce > 0 {
		srvCfg.PreviewDebounce = cfg.Server.Debounce
	}
	if opts.Addr != "" {
		srvCfg.Addr = opts.Addr
	}
	srvCfg.Debug = srvCfg.Debug || root.verbose

	doc, err := loadDocumentOrSample(resolveDocumentPath(opts.DocumentPath, cfg), cfg, log)
	if err != nil {
		return err
	}

	sess := session.New(doc, log)
	srv := server.New(srvCfg, sess, assemble.New(log), log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
