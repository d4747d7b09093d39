// Package report defines the structured progress events emitted while
// organizing a directory, plus a color console renderer. The pipeline
// reports events, not formatted text; rendering belongs to the sink.
package report

// Folder describes one planned destination folder in a preview.
type Folder struct {
	// Key is the bucket key the folder was derived from.
	Key string
	// Name is the final folder name after naming options are applied.
	Name string
	// Count is the number of files scheduled to move into the folder.
	Count int
}

// Sink receives progress events from the organizing pipeline.
// Implementations must tolerate being called from a single goroutine only;
// the pipeline is strictly sequential.
type Sink interface {
	// PreviewReady reports the planned folders for dir before any
	// filesystem change.
	PreviewReady(dir string, folders []Folder)

	// NoChangesNeeded reports that dir resolved to fewer than two buckets
	// and will be left untouched.
	NoChangesNeeded(dir string)

	// FolderCreated reports a destination folder that now exists.
	FolderCreated(path string)

	// FolderCreateFailed reports a folder that could not be created; none
	// of its files will be moved.
	FolderCreateFailed(path string, err error)

	// FileMoved reports one completed move.
	FileMoved(src, dst string)

	// FileMoveFailed reports one failed move; the run continues.
	FileMoveFailed(src, dst string, err error)

	// EntrySkipped reports an entry excluded from assignment.
	EntrySkipped(path, reason string)

	// Aborted reports that the user declined the confirmation prompt.
	Aborted(dir string)

	// Warnf reports a non-fatal condition outside the per-file events.
	Warnf(format string, args ...interface{})
}

// Nop is a Sink that discards every event.
type Nop struct{}

func (Nop) PreviewReady(string, []Folder)        {}
func (Nop) NoChangesNeeded(string)               {}
func (Nop) FolderCreated(string)                 {}
func (Nop) FolderCreateFailed(string, error)     {}
func (Nop) FileMoved(string, string)             {}
func (Nop) FileMoveFailed(string, string, error) {}
func (Nop) EntrySkipped(string, string)          {}
func (Nop) Aborted(string)                       {}
func (Nop) Warnf(string, ...interface{})         {}
