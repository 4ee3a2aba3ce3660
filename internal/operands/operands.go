// Package operands reads pairs of decimal literals from operand files.
//
// An operand file holds two literals separated by a colon, for example:
//
//	123.45:-0.5
//
// Whitespace around each literal, including a trailing newline, is ignored.
package operands

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// minSize is the size of the shortest possible operand file, such as "1:2".
const minSize = 3

// ErrInvalidFile is returned when an operand file is too short or has no
// separator.
var ErrInvalidFile = errors.New("invalid operand file")

// ReadFile returns the two literals stored in the file at path.
// The file is split at the first colon.
// The literals are returned as written and are not validated as decimals.
func ReadFile(path string) (a, b string, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading operands: %w", err)
	}
	return split(path, string(content))
}

func split(path, content string) (a, b string, err error) {
	if len(content) < minSize {
		return "", "", fmt.Errorf("reading %s: %d bytes, need at least %d: %w", path, len(content), minSize, ErrInvalidFile)
	}
	a, b, ok := strings.Cut(content, ":")
	if !ok {
		return "", "", fmt.Errorf("reading %s: no separator: %w", path, ErrInvalidFile)
	}
	return strings.TrimSpace(a), strings.TrimSpace(b), nil
}
