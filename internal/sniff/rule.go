// Package sniff defines how style rules plug into the checker.
//
// A Rule declares the token kinds it cares about; the Dispatcher walks a
// file's token stream once and calls Process for every matching token.
// Rules report through the File they are handed and never see each
// other's findings.
package sniff

import "cisniff/internal/token"

// Rule is a single style check.
type Rule interface {
	// Name is the dotted identifier used in config and output, e.g.
	// "Files.ClosingFileComment".
	Name() string
	Description() string
	// Register returns the kinds Process wants to be called for.
	Register() token.Set
	// Process inspects the token at idx. It must not retain f.
	Process(f *File, idx int)
}

// Configurable is implemented by rules that accept options from the
// ruleset. Options are applied once, before any file is checked.
type Configurable interface {
	Configure(opts map[string]string) error
}
