package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foliokit/folio/internal/theme"
)

func newThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, opt := range theme.List() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-14s %s\n", opt.ID, opt.Label, opt.Swatch)
			}
			return nil
		},
	}

	return cmd
}
