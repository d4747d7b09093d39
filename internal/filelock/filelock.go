// Package filelock guards a directory against concurrent bucketize runs.
// Two processes materializing into the same tree would race on the same
// source files, so each run holds an advisory lock for its target
// directory from preview to completion.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the name of the lock file placed inside the locked
// directory.
const LockFileName = ".bucketize.lock"

// DirLock is an advisory lock on a directory, backed by a flock'd file
// inside that directory.
type DirLock struct {
	flock *flock.Flock
	path  string
}

// New creates a lock for dir. The lock file lives at dir/.bucketize.lock
// and is created on Acquire.
func New(dir string) *DirLock {
	path := filepath.Join(dir, LockFileName)
	return &DirLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Acquire takes the lock without blocking. If another run holds it, an
// error naming the lock file is returned so the user can see which
// directory is contended.
func (l *DirLock) Acquire() error {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", l.path, err)
	}
	if !acquired {
		return fmt.Errorf("another bucketize run is active in this directory (lock held at %s)", l.path)
	}
	return nil
}

// Release drops the lock and removes the lock file. Removal failure is
// ignored: a stale zero-byte lock file does not block future runs, flock
// state does.
func (l *DirLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to unlock %s: %w", l.path, err)
	}
	_ = os.Remove(l.path)
	return nil
}

// Path returns the lock file location.
func (l *DirLock) Path() string {
	return l.path
}
