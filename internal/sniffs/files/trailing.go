// Package files holds rules about the shape of a whole file.
package files

import (
	"strings"

	"cisniff/internal/comment"
	"cisniff/internal/token"
	"cisniff/internal/view"
)

// TrailingComment walks backward from the last token over whitespace and
// comments looking for a comment whose content equals expected.
//
// When found, stop is the index of the matching comment. Otherwise stop is
// the first token that is neither whitespace nor a comment, or -1 when the
// whole file is whitespace and comments.
func TrailingComment(v *view.View, expected string) (found bool, stop int) {
	for i := v.Last(); i >= 0; i-- {
		t := v.At(i)
		switch {
		case t.IsComment():
			if comment.Content(t.Text) == expected {
				return true, i
			}
		case t.Kind == token.Whitespace:
		default:
			return false, i
		}
	}
	return false, -1
}

// trailingWithPrefix returns the last comment of the trailing run whose
// content starts with prefix.
func trailingWithPrefix(v *view.View, prefix string) (int, bool) {
	for i := v.Last(); i >= 0; i-- {
		t := v.At(i)
		switch {
		case t.IsComment():
			if comment.HasPrefix(t.Text, prefix) {
				return i, true
			}
		case t.Kind == token.Whitespace:
		default:
			return -1, false
		}
	}
	return -1, false
}

// IsFirstOpenTag reports whether idx is the first "<?php" of the file.
// File-level rules act only there so files with several PHP blocks are
// reported once.
func IsFirstOpenTag(v *view.View, idx int) bool {
	if idx == 0 {
		return true
	}
	_, seen := v.FindPrevious(token.Of(token.OpenTag), idx-1, view.NoBound)
	return !seen
}

// LocationPath returns the part of path after appRoot as a "./" relative
// path. ok is false when appRoot does not occur in path.
func LocationPath(path, appRoot string) (string, bool) {
	at := strings.Index(path, appRoot)
	if at < 0 || appRoot == "" {
		return "", false
	}
	local := path[at+len(appRoot):]
	switch {
	case strings.HasPrefix(local, "./"):
	case strings.HasPrefix(local, "/"):
		local = "." + local
	default:
		local = "./" + local
	}
	return local, true
}
