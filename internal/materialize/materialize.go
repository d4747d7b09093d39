// Package materialize turns a rebalanced bucket table into folder
// creations and file moves. It owns the preview, the confirmation gate,
// and the per-item error recovery; the pure rebalancing lives in
// internal/bucket.
package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/bucketize/internal/bucket"
	"github.com/harrison/bucketize/internal/config"
	"github.com/harrison/bucketize/internal/prompt"
	"github.com/harrison/bucketize/internal/report"
)

// DirCreator ensures a destination directory exists. Implementations must
// treat an already-existing directory as success.
type DirCreator interface {
	EnsureDir(path string) error
}

// FileMover relocates src into dstDir, keeping the base name.
type FileMover interface {
	Move(src, dstDir string) error
}

// OSCreator is the production DirCreator backed by os.MkdirAll.
type OSCreator struct{}

// EnsureDir creates path and any missing parents.
func (OSCreator) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// OSMover is the production FileMover backed by os.Rename.
type OSMover struct{}

// Move renames src into dstDir under its base name.
func (OSMover) Move(src, dstDir string) error {
	dst := filepath.Join(dstDir, filepath.Base(src))
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
	}
	return nil
}

// MoveRecord captures one attempted move for the journal.
type MoveRecord struct {
	Src   string
	Dst   string
	OK    bool
	Cause string
}

// Result summarizes what a materialization did (or, for a dry run, would
// have done).
type Result struct {
	// NoChanges is set when the table held fewer than two buckets and
	// nothing was touched.
	NoChanges bool

	// Aborted is set when the user declined the confirmation prompt.
	Aborted bool

	// CreatedDirs lists the folders that now exist, in bucket-key order.
	// Empty for dry runs.
	CreatedDirs []string

	FoldersCreated int
	FilesMoved     int
	FilesFailed    int

	// Moves records every attempted move for journaling. Empty for dry
	// runs.
	Moves []MoveRecord
}

// Materializer applies a bucket table to the filesystem through injected
// collaborators.
type Materializer struct {
	Creator   DirCreator
	Mover     FileMover
	Confirmer prompt.Confirmer
	Sink      report.Sink
}

// New returns a Materializer wired to the real filesystem, the given
// confirmer and the given sink. Nil confirmer or sink fall back to
// auto-approve and discard respectively.
func New(confirmer prompt.Confirmer, sink report.Sink) *Materializer {
	if confirmer == nil {
		confirmer = prompt.Auto{}
	}
	if sink == nil {
		sink = report.Nop{}
	}
	return &Materializer{
		Creator:   OSCreator{},
		Mover:     OSMover{},
		Confirmer: confirmer,
		Sink:      sink,
	}
}

// Apply materializes table under opts.Path.
//
// Fewer than two buckets is a no-op: collapsing a whole directory into a
// single folder helps nobody. Otherwise the plan is previewed, confirmed
// (unless dry-run or force), and applied bucket by bucket. A failed folder
// creation skips that bucket's files; a failed move skips that file. Both
// are reported and neither stops the run.
func (m *Materializer) Apply(table *bucket.Table, opts config.Options) (*Result, error) {
	result := &Result{}

	if table.Len() < 2 {
		m.Sink.NoChangesNeeded(opts.Path)
		result.NoChanges = true
		return result, nil
	}

	buckets := table.Buckets()
	folders := make([]report.Folder, 0, len(buckets))
	for _, b := range buckets {
		folders = append(folders, report.Folder{
			Key:   b.Key,
			Name:  FolderName(b.Key, b.Count(), opts),
			Count: b.Count(),
		})
	}
	m.Sink.PreviewReady(opts.Path, folders)

	if opts.DryRun {
		return result, nil
	}

	if !opts.Force {
		ok, err := m.Confirmer.Confirm(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			m.Sink.Aborted(opts.Path)
			result.Aborted = true
			return result, nil
		}
	}

	for i, b := range buckets {
		destDir := filepath.Join(opts.Path, folders[i].Name)

		if err := m.Creator.EnsureDir(destDir); err != nil {
			m.Sink.FolderCreateFailed(destDir, err)
			result.FilesFailed += b.Count()
			for _, e := range b.Entries {
				result.Moves = append(result.Moves, MoveRecord{
					Src: e.Path, Dst: destDir, Cause: err.Error(),
				})
			}
			continue
		}
		m.Sink.FolderCreated(destDir)
		result.FoldersCreated++
		result.CreatedDirs = append(result.CreatedDirs, destDir)

		for _, e := range b.Entries {
			dst := filepath.Join(destDir, e.Name)
			if err := m.Mover.Move(e.Path, destDir); err != nil {
				m.Sink.FileMoveFailed(e.Path, dst, err)
				result.FilesFailed++
				result.Moves = append(result.Moves, MoveRecord{
					Src: e.Path, Dst: dst, Cause: err.Error(),
				})
				continue
			}
			m.Sink.FileMoved(e.Path, dst)
			result.FilesMoved++
			result.Moves = append(result.Moves, MoveRecord{Src: e.Path, Dst: dst, OK: true})
		}
	}

	return result, nil
}
