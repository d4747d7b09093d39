package cmd

import (
	"fmt"
	"os"

	"github.com/harrison/bucketize/internal/config"
	"github.com/harrison/bucketize/internal/journal"
	"github.com/harrison/bucketize/internal/organize"
	"github.com/harrison/bucketize/internal/prompt"
	"github.com/harrison/bucketize/internal/report"
	"github.com/spf13/cobra"
)

// defaultConfigFile is looked up relative to the working directory.
const defaultConfigFile = ".bucketize.yaml"

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <directory>",
		Short: "Organize a directory into bucket folders",
		Long: `Scan a directory, group its files by leading character, rebalance the
groups against the size threshold, and move the files into matching
subdirectories after showing a plan and asking for confirmation.

The threshold defaults to a tenth of the file count, rounded up.
With --recurse, each created folder is organized again (up to
--max-depth levels) without further prompting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeOrganize(cmd, args[0], false)
		},
	}

	addOrganizeFlags(cmd)
	return cmd
}

// addOrganizeFlags registers the flag surface shared by run and preview.
func addOrganizeFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to config file (default: .bucketize.yaml)")
	cmd.Flags().BoolP("force", "f", false, "Apply changes without asking for confirmation")
	cmd.Flags().Bool("dry-run", false, "Show the plan without creating folders or moving files")
	cmd.Flags().Bool("include-empty", false, "Create folders for all 36 digit/letter buckets, even empty ones")
	cmd.Flags().Bool("split", false, "Split buckets larger than the threshold")
	cmd.Flags().Bool("combine", false, "Combine adjacent buckets smaller than the threshold")
	cmd.Flags().BoolP("recurse", "r", false, "Re-organize inside each created folder")
	cmd.Flags().Int("max-depth", config.DefaultMaxDepth, "Maximum recursion depth")
	cmd.Flags().IntP("threshold", "t", 0, "Maximum bucket size (0 = a tenth of the file count, rounded up)")
	cmd.Flags().BoolP("upper", "u", false, "Uppercase folder names")
	cmd.Flags().BoolP("include-count", "c", false, "Append the file count to folder names")
	cmd.Flags().String("prefix", "", "Prefix for folder names")
	cmd.Flags().String("suffix", "", "Suffix for folder names")
	cmd.Flags().Bool("no-journal", false, "Do not record this run in the journal")
}

// executeOrganize merges config file and flags into a run options bundle
// and drives the organizer. forceDryRun is set by the preview command.
func executeOrganize(cmd *cobra.Command, path string, forceDryRun bool) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := cfg.ToOptions(path)
	applyFlagOverrides(cmd, &opts)
	if forceDryRun {
		opts.DryRun = true
	}

	sink := report.NewConsole(cmd.OutOrStdout())
	confirmer := prompt.NewTerminal(os.Stdin, cmd.OutOrStdout())

	var store *journal.Store
	if cfg.Journal.Enabled && !opts.NoJournal && !opts.DryRun {
		store, err = journal.NewStore(cfg.Journal.DBPath)
		if err != nil {
			// Journaling is best-effort; the run proceeds without it.
			sink.Warnf("journal unavailable: %v", err)
		} else {
			defer store.Close()
			if _, err := store.PruneOlderThan(cmd.Context(), cfg.Journal.KeepDays); err != nil {
				sink.Warnf("journal prune failed: %v", err)
			}
		}
	}

	org := organize.New(confirmer, sink, store)
	summary, err := org.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printSummary(cmd, summary, opts.DryRun)
	return nil
}

// applyFlagOverrides copies every flag the user actually set over the
// config-file defaults.
func applyFlagOverrides(cmd *cobra.Command, opts *config.Options) {
	flags := cmd.Flags()

	if flags.Changed("force") {
		opts.Force, _ = flags.GetBool("force")
	}
	if flags.Changed("dry-run") {
		opts.DryRun, _ = flags.GetBool("dry-run")
	}
	if flags.Changed("include-empty") {
		opts.IncludeEmpty, _ = flags.GetBool("include-empty")
	}
	if flags.Changed("split") {
		opts.Split, _ = flags.GetBool("split")
	}
	if flags.Changed("combine") {
		opts.Combine, _ = flags.GetBool("combine")
	}
	if flags.Changed("recurse") {
		opts.Recurse, _ = flags.GetBool("recurse")
	}
	if flags.Changed("max-depth") {
		opts.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("threshold") {
		opts.Threshold, _ = flags.GetInt("threshold")
	}
	if flags.Changed("upper") {
		opts.Upper, _ = flags.GetBool("upper")
	}
	if flags.Changed("include-count") {
		opts.IncludeCount, _ = flags.GetBool("include-count")
	}
	if flags.Changed("prefix") {
		opts.Prefix, _ = flags.GetString("prefix")
	}
	if flags.Changed("suffix") {
		opts.Suffix, _ = flags.GetString("suffix")
	}
	if flags.Changed("no-journal") {
		opts.NoJournal, _ = flags.GetBool("no-journal")
	}
}

// printSummary writes the closing counters for a finished run.
func printSummary(cmd *cobra.Command, summary *organize.Summary, dryRun bool) {
	out := cmd.OutOrStdout()

	if summary.Aborted {
		return
	}
	if dryRun {
		fmt.Fprintf(out, "\nDry run: no folders created, no files moved.\n")
		return
	}

	fmt.Fprintf(out, "\nSummary:\n")
	fmt.Fprintf(out, "  Folders created: %d\n", summary.FoldersCreated)
	fmt.Fprintf(out, "  Files moved: %d\n", summary.FilesMoved)
	if summary.FilesFailed > 0 {
		fmt.Fprintf(out, "  Files failed: %d\n", summary.FilesFailed)
	}
}
