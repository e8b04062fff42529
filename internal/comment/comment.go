// Package comment extracts the text of a comment token.
package comment

import "strings"

// trimSet matches what PHP's trim() strips by default.
const trimSet = " \t\n\r\x00\x0b"

// Content strips the comment delimiter from raw and trims the result.
// Doc comments keep their per-line "*" markers; only the outer "/*" and
// "*/" are removed. Raw text that is not a comment is only trimmed.
func Content(raw string) string {
	switch {
	case strings.HasPrefix(raw, "#"):
		raw = raw[1:]
	case strings.HasPrefix(raw, "//"):
		raw = raw[2:]
	case strings.HasPrefix(raw, "/*"):
		raw = raw[2:]
		raw = strings.TrimSuffix(raw, "*/")
	}
	return strings.Trim(raw, trimSet)
}

// HasPrefix reports whether the content of raw starts with prefix.
func HasPrefix(raw, prefix string) bool {
	return strings.HasPrefix(Content(raw), prefix)
}
