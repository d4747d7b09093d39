package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/bucketize/internal/config"
	"github.com/harrison/bucketize/internal/journal"
	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the 'bucketize history' command group
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the run journal",
		Long: `Inspect the journal of past organizing runs: which directories were
organized, when, and which files were moved where.`,
	}

	cmd.PersistentFlags().String("db", "", "Path to journal database (default from config)")
	cmd.PersistentFlags().String("config", "", "Path to config file (default: .bucketize.yaml)")

	cmd.AddCommand(newHistoryShowCommand())
	cmd.AddCommand(newHistoryStatsCommand())
	cmd.AddCommand(newHistoryClearCommand())

	return cmd
}

// openJournal resolves the database path from --db or the config file and
// opens the store. A missing database file is reported as "no history".
func openJournal(cmd *cobra.Command) (*journal.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = defaultConfigFile
		}
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		dbPath = cfg.Journal.DBPath
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no journal found at %s", dbPath)
	}

	return journal.NewStore(dbPath)
}

// newHistoryShowCommand creates the 'bucketize history show' command
func newHistoryShowCommand() *cobra.Command {
	var limit int
	var withMoves bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List recent organizing runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}

			out := cmd.OutOrStdout()
			heading := color.New(color.FgCyan)
			failTint := color.New(color.FgRed)

			for _, run := range runs {
				fmt.Fprintf(out, "%s %s\n", heading.Sprint(run.StartedAt.Local().Format(time.DateTime)), run.Root)
				fmt.Fprintf(out, "  depth %d, %d folder(s), %d moved", run.Depth, run.FoldersCreated, run.FilesMoved)
				if run.FilesFailed > 0 {
					fmt.Fprintf(out, ", %s", failTint.Sprintf("%d failed", run.FilesFailed))
				}
				fmt.Fprintln(out)

				if !withMoves {
					continue
				}
				moves, err := store.MovesForRun(cmd.Context(), run.ID)
				if err != nil {
					return fmt.Errorf("list moves: %w", err)
				}
				for _, mv := range moves {
					if mv.OK {
						fmt.Fprintf(out, "    %s -> %s\n", mv.Src, mv.Dst)
					} else {
						fmt.Fprintf(out, "    %s (%s)\n", mv.Src, failTint.Sprint(mv.Error))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	cmd.Flags().BoolVar(&withMoves, "moves", false, "Include each run's file moves")

	return cmd
}

// newHistoryStatsCommand creates the 'bucketize history stats' command
func newHistoryStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate journal statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("aggregate journal: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Runs: %d\n", stats.TotalRuns)
			fmt.Fprintf(out, "Moves: %d (%d failed)\n", stats.TotalMoves, stats.TotalFailed)
			if stats.TotalRuns > 0 {
				fmt.Fprintf(out, "First run: %s\n", stats.FirstRunAt.Local().Format(time.DateTime))
				fmt.Fprintf(out, "Last run: %s\n", stats.LastRunAt.Local().Format(time.DateTime))
			}
			return nil
		},
	}
}

// newHistoryClearCommand creates the 'bucketize history clear' command
func newHistoryClearCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all journal history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), "Delete all journal history? [y/N]: ")
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer := strings.ToLower(strings.TrimSpace(line))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Journal cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
