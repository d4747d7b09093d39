package report

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Console renders events as timestamped lines, colorized when the writer
// is a terminal. All output is prefixed with [HH:MM:SS] timestamps.
type Console struct {
	writer io.Writer
	mutex  sync.Mutex

	success *color.Color
	warn    *color.Color
	fail    *color.Color
	label   *color.Color
}

// NewConsole creates a Console writing to w. If w is nil, events are
// silently discarded. Color is enabled only when w is a TTY (and not
// suppressed via NO_COLOR, which fatih/color honors on its own).
func NewConsole(w io.Writer) *Console {
	c := &Console{
		writer:  w,
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		label:   color.New(color.FgCyan),
	}
	if !writerIsTerminal(w) {
		for _, cc := range []*color.Color{c.success, c.warn, c.fail, c.label} {
			cc.DisableColor()
		}
	}
	return c
}

// writerIsTerminal reports whether w is a terminal that supports colors.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) printf(format string, args ...interface{}) {
	if c.writer == nil {
		return
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	timestamp := time.Now().Format("15:04:05")
	fmt.Fprintf(c.writer, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// PreviewReady prints the planned folder list for dir.
func (c *Console) PreviewReady(dir string, folders []Folder) {
	c.printf("%s %s", c.label.Sprint("Plan for"), dir)
	for _, f := range folders {
		c.printf("  %s  (%d file(s))", f.Name, f.Count)
	}
}

// NoChangesNeeded prints the no-op notice for dir.
func (c *Console) NoChangesNeeded(dir string) {
	c.printf("%s in %s: fewer than two buckets, nothing to do", c.label.Sprint("No changes"), dir)
}

// FolderCreated prints a created-folder line.
func (c *Console) FolderCreated(path string) {
	c.printf("%s %s", c.success.Sprint("Created"), path)
}

// FolderCreateFailed prints a folder failure warning.
func (c *Console) FolderCreateFailed(path string, err error) {
	c.printf("%s could not create %s: %v (skipping its files)", c.fail.Sprint("Error:"), path, err)
}

// FileMoved prints one completed move.
func (c *Console) FileMoved(src, dst string) {
	c.printf("%s %s -> %s", c.success.Sprint("Moved"), src, dst)
}

// FileMoveFailed prints one failed move.
func (c *Console) FileMoveFailed(src, dst string, err error) {
	c.printf("%s move %s -> %s: %v", c.warn.Sprint("Warning:"), src, dst, err)
}

// EntrySkipped prints a skipped-entry warning.
func (c *Console) EntrySkipped(path, reason string) {
	c.printf("%s skipped %s: %s", c.warn.Sprint("Warning:"), path, reason)
}

// Aborted prints the user-abort notice.
func (c *Console) Aborted(dir string) {
	c.printf("%s for %s: no changes made", c.warn.Sprint("Aborted"), dir)
}

// Warnf prints a generic warning line.
func (c *Console) Warnf(format string, args ...interface{}) {
	c.printf("%s %s", c.warn.Sprint("Warning:"), fmt.Sprintf(format, args...))
}
