// Package organize runs the full pipeline for one directory: scan, group,
// rebalance, materialize, and optionally recurse into the folders it just
// created.
package organize

import (
	"context"
	"fmt"

	"github.com/harrison/bucketize/internal/bucket"
	"github.com/harrison/bucketize/internal/config"
	"github.com/harrison/bucketize/internal/filelock"
	"github.com/harrison/bucketize/internal/journal"
	"github.com/harrison/bucketize/internal/materialize"
	"github.com/harrison/bucketize/internal/prompt"
	"github.com/harrison/bucketize/internal/report"
	"github.com/harrison/bucketize/internal/scan"
)

// Lister enumerates the immediate children of a directory. Injectable for
// tests; the default is scan.Directory.
type Lister func(dir string) (*scan.Result, error)

// Summary aggregates counters across an invocation and its recursive
// children.
type Summary struct {
	FoldersCreated int
	FilesMoved     int
	FilesFailed    int
	Aborted        bool
}

// Organizer wires the pipeline's collaborators together. Zero or nil
// fields are replaced with working defaults by New.
type Organizer struct {
	Lister       Lister
	Materializer *materialize.Materializer
	Sink         report.Sink

	// Journal is optional; nil disables run recording entirely.
	Journal *journal.Store
}

// New creates an Organizer using the real filesystem, the given confirmer
// and sink, and an optional journal store.
func New(confirmer prompt.Confirmer, sink report.Sink, store *journal.Store) *Organizer {
	if sink == nil {
		sink = report.Nop{}
	}
	return &Organizer{
		Lister:       scan.Directory,
		Materializer: materialize.New(confirmer, sink),
		Sink:         sink,
		Journal:      store,
	}
}

// Run executes the pipeline rooted at opts.Path.
//
// Non-dry runs hold an advisory lock on the directory for their duration.
// When recursion is enabled, each created folder gets its own full
// pipeline invocation with depth+1 and force on (the user already
// approved the top level); recursion is depth-first and synchronous.
func (o *Organizer) Run(ctx context.Context, opts config.Options) (*Summary, error) {
	scanRes, err := o.Lister(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", opts.Path, err)
	}

	if !opts.DryRun {
		lock := filelock.New(opts.Path)
		if err := lock.Acquire(); err != nil {
			return nil, err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				o.Sink.Warnf("releasing lock for %s: %v", opts.Path, err)
			}
		}()
	}

	table, total, skipped := bucket.Build(scanRes.Entries, opts.IncludeEmpty)
	for _, e := range skipped {
		o.Sink.EntrySkipped(e.Path, "empty file name")
	}

	threshold := bucket.ResolveThreshold(opts.Threshold, total)
	if opts.Split {
		bucket.Split(table, threshold)
	}
	if opts.Combine {
		bucket.Combine(table, threshold)
	}

	runID := o.beginJournal(ctx, opts)

	result, err := o.Materializer.Apply(table, opts)
	if err != nil {
		return nil, err
	}

	o.finishJournal(ctx, runID, result)

	summary := &Summary{
		FoldersCreated: result.FoldersCreated,
		FilesMoved:     result.FilesMoved,
		FilesFailed:    result.FilesFailed,
		Aborted:        result.Aborted,
	}

	if opts.Recurse && !opts.DryRun && !result.Aborted && opts.CurrentDepth < opts.MaxDepth {
		for _, dir := range result.CreatedDirs {
			childOpts := opts
			childOpts.Path = dir
			childOpts.CurrentDepth = opts.CurrentDepth + 1
			childOpts.Force = true

			childSummary, err := o.Run(ctx, childOpts)
			if err != nil {
				// A failed branch stops that subtree only; siblings
				// still get organized.
				o.Sink.Warnf("organizing %s: %v", dir, err)
				continue
			}
			summary.FoldersCreated += childSummary.FoldersCreated
			summary.FilesMoved += childSummary.FilesMoved
			summary.FilesFailed += childSummary.FilesFailed
		}
	}

	return summary, nil
}

// beginJournal starts a journal run row, returning its ID, or "" when
// journaling is off or failing. Journal problems degrade to warnings.
func (o *Organizer) beginJournal(ctx context.Context, opts config.Options) string {
	if o.Journal == nil || opts.NoJournal || opts.DryRun {
		return ""
	}
	runID, err := o.Journal.BeginRun(ctx, opts.Path, opts.CurrentDepth, opts.DryRun)
	if err != nil {
		o.Sink.Warnf("journal disabled for this run: %v", err)
		return ""
	}
	return runID
}

// finishJournal records the run's moves and final counters.
func (o *Organizer) finishJournal(ctx context.Context, runID string, result *materialize.Result) {
	if runID == "" {
		return
	}
	for _, mv := range result.Moves {
		if err := o.Journal.RecordMove(ctx, runID, mv.Src, mv.Dst, mv.OK, mv.Cause); err != nil {
			o.Sink.Warnf("journal write failed: %v", err)
			break
		}
	}
	if err := o.Journal.FinishRun(ctx, runID, result.FoldersCreated, result.FilesMoved, result.FilesFailed); err != nil {
		o.Sink.Warnf("journal write failed: %v", err)
	}
}
