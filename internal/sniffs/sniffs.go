// Package sniffs assembles the built-in CodeIgniter rule set.
package sniffs

import (
	"cisniff/internal/sniff"
	"cisniff/internal/sniffs/files"
	"cisniff/internal/sniffs/naming"
	"cisniff/internal/sniffs/operators"
	"cisniff/internal/sniffs/quotes"
)

// Default returns a fresh registry with every built-in rule. Rules with
// options are new instances each call, so configuring one registry does not
// leak into another.
func Default() *sniff.Registry {
	return sniff.NewRegistry().MustRegister(
		files.ClosingFileComment{},
		files.NewClosingLocationComment(),
		quotes.DoubleQuoteUsage{},
		quotes.VariableUsage{},
		naming.ConstructorName{},
		operators.UppercaseLiteralLogicalOperators{},
	)
}
