package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for bucketize
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bucketize",
		Short: "Organize a directory into leading-character buckets",
		Long: `Bucketize groups the files of a directory by the first character of
their names, rebalances the groups against a size threshold (splitting
oversized groups, combining undersized neighbors), and moves the files
into matching subdirectories.

Every run shows a plan and asks for confirmation before touching the
filesystem; use preview to see the plan without any chance of changes.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewPreviewCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
