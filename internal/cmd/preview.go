package cmd

import (
	"github.com/spf13/cobra"
)

// NewPreviewCommand creates the preview command
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <directory>",
		Short: "Show the organizing plan without touching the filesystem",
		Long: `Run the full grouping and rebalancing pipeline for a directory and
print the resulting folder plan. Nothing is created or moved, no
confirmation is asked, and nothing is journaled — preview is always a
dry run regardless of other flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeOrganize(cmd, args[0], true)
		},
	}

	addOrganizeFlags(cmd)
	return cmd
}
