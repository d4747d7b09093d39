package bucket

import (
	"errors"
	"testing"
)

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase letter", "alpha.txt", "a"},
		{"uppercase folded", "Beta.txt", "b"},
		{"digit", "2024-report.pdf", "2"},
		{"symbol kept as-is", "_notes.md", "_"},
		{"dot file", ".bashrc", "."},
		{"single character", "x", "x"},
		{"multibyte rune", "Ärger.txt", "ä"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveKey(tt.in)
			if err != nil {
				t.Fatalf("DeriveKey(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("DeriveKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeriveKeyEmptyName(t *testing.T) {
	_, err := DeriveKey("")
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("DeriveKey(\"\") error = %v, want ErrEmptyName", err)
	}
}
