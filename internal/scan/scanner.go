// Package scan lists the immediate children of a directory for bucket
// assignment. It never recurses: recursive organizing re-scans each created
// subdirectory through a fresh pipeline invocation.
package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/bucketize/internal/bucket"
	"github.com/harrison/bucketize/internal/filelock"
)

// LockFileName is the per-directory run lock; it must never be scheduled
// for a move.
const LockFileName = filelock.LockFileName

// Result contains the outcome of a directory scan.
type Result struct {
	// Entries are the regular files found, in directory order, with
	// absolute paths.
	Entries []bucket.Entry
	// SkippedDirs counts immediate subdirectories that were left alone.
	SkippedDirs int
}

// Directory lists the immediate regular files of dir. Subdirectories,
// symlinks and other non-regular entries are skipped, as is the run lock
// file. Returns an error only when the directory itself cannot be read.
func Directory(dir string) (*Result, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", abs)
	}

	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", abs, err)
	}

	result := &Result{}
	for _, de := range dirEntries {
		if de.IsDir() {
			result.SkippedDirs++
			continue
		}
		if !de.Type().IsRegular() {
			continue
		}
		if de.Name() == LockFileName {
			continue
		}
		result.Entries = append(result.Entries, bucket.Entry{
			Name: de.Name(),
			Path: filepath.Join(abs, de.Name()),
		})
	}

	return result, nil
}
