// Package prompt implements the interactive confirmation gate that sits
// between the preview and the filesystem changes.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Confirmer asks the user to approve applying changes under dir.
// A false result aborts the run without further side effects.
type Confirmer interface {
	Confirm(dir string) (bool, error)
}

// Terminal is a Confirmer backed by an input/output stream pair,
// normally stdin/stdout.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal creates a Terminal confirmer reading from in and writing the
// question to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Confirm prompts for a yes/no answer. Only "y" or "yes" (case-insensitive)
// approve; anything else, including EOF, aborts. When stdin is not a
// terminal the prompt cannot be answered, so the run is aborted with a hint
// to pass --force.
func (t *Terminal) Confirm(dir string) (bool, error) {
	if f, ok := t.in.(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			fmt.Fprintln(t.out, "stdin is not a terminal; aborting (use --force to skip confirmation)")
			return false, nil
		}
	}

	fmt.Fprintf(t.out, "Apply changes to %s? [y/N]: ", dir)

	line, err := bufio.NewReader(t.in).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Auto is a Confirmer that always approves. Used for --force and for
// recursive invocations, which must not prompt again.
type Auto struct{}

// Confirm always returns true.
func (Auto) Confirm(string) (bool, error) {
	return true, nil
}
