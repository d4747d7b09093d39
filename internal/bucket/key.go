package bucket

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrEmptyName is returned when a key is requested for an empty filename.
var ErrEmptyName = errors.New("cannot derive bucket key from empty name")

// DeriveKey returns the bucket key for a filename: its lowercased first
// character. No normalization is applied beyond lowercasing — a name
// starting with a symbol gets that symbol as its key.
func DeriveKey(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToLower(string(r)), nil
}
