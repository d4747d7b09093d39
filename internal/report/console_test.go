package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConsolePreviewReady(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.PreviewReady("/data", []Folder{
		{Key: "a", Name: "A [3]", Count: 3},
		{Key: "b-d", Name: "b-d", Count: 2},
	})

	out := buf.String()
	if !strings.Contains(out, "/data") {
		t.Errorf("output missing directory: %q", out)
	}
	if !strings.Contains(out, "A [3]") || !strings.Contains(out, "(3 file(s))") {
		t.Errorf("output missing folder line: %q", out)
	}
	if !strings.Contains(out, "b-d") {
		t.Errorf("output missing range folder: %q", out)
	}
}

func TestConsoleTimestampPrefix(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.FolderCreated("/data/a")

	out := buf.String()
	if !strings.HasPrefix(out, "[") || len(out) < 11 || out[9] != ']' {
		t.Errorf("expected [HH:MM:SS] prefix, got %q", out)
	}
}

func TestConsoleNoColorForNonTTY(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.FileMoveFailed("/a/x", "/a/b/x", errors.New("permission denied"))

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected no ANSI codes for buffer writer, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "permission denied") {
		t.Errorf("output missing cause: %q", buf.String())
	}
}

func TestConsoleNilWriterDiscards(t *testing.T) {
	c := NewConsole(nil)

	// Must not panic.
	c.NoChangesNeeded("/data")
	c.Warnf("warning %d", 1)
	c.Aborted("/data")
}
