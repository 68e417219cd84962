package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/foliokit/folio/internal/assemble"
	"github.com/foliokit/folio/internal/config"
	"github.com/foliokit/folio/internal/publish"
)

type publishOptions struct {
	DocumentPath string
	RepoPath     string
	Branch       string
	RemoteURL    string
	Message      string
	Push         bool
}

func newPublishCmd(root *rootFlags) *cobra.Command {
	opts := publishOptions{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Commit the exported site into a git repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(root, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.DocumentPath, "document", "d", "", "Path to the portfolio JSON document")
	cmd.Flags().StringVar(&opts.RepoPath, "repo", "", "Target repository working directory")
	cmd.Flags().StringVar(&opts.Branch, "branch", "", "Branch that receives the commit")
	cmd.Flags().StringVar(&opts.RemoteURL, "remote", "", "Remote URL registered on a fresh repository")
	cmd.Flags().StringVar(&opts.Message, "message", "", "Commit message")
	cmd.Flags().BoolVar(&opts.Push, "push", false, "Push the branch after committing")

	return cmd
}

func runPublish(root *rootFlags, opts publishOptions, cmd *cobra.Command) error {
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

	tree, warnings, err := assemble.New(log).AssembleExport(doc)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.WithFields(map[string]any{"field": w.Field}).Warn(w.Message)
	}

	pubOpts := publish.Options{
		RepoPath:    firstNonEmpty(opts.RepoPath, cfg.Publish.RepoPath),
		Branch:      firstNonEmpty(opts.Branch, cfg.Publish.Branch),
		RemoteURL:   firstNonEmpty(opts.RemoteURL, cfg.Publish.RemoteURL),
		Message:     firstNonEmpty(opts.Message, cfg.Publish.Message),
		AuthorName:  cfg.Publish.AuthorName,
		AuthorEmail: cfg.Publish.AuthorEmail,
		Push:        opts.Push || cfg.Publish.Push,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := publish.New(log).Publish(ctx, tree, pubOpts)
	if err != nil {
		return err
	}

	if result.Committed {
		fmt.Fprintf(cmd.OutOrStdout(), "published %d files as %s\n", result.FileCount, result.CommitHash)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "no changes since last publish")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
