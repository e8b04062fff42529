package quotes

import (
	"cisniff/internal/diag"
	"cisniff/internal/sniff"
	"cisniff/internal/token"
)

// DoubleQuoteUsage flags double quotes where single quotes would do, and
// the reverse.
type DoubleQuoteUsage struct{}

func (DoubleQuoteUsage) Name() string { return "Strings.DoubleQuoteUsage" }

func (DoubleQuoteUsage) Description() string {
	return "double quotes only for strings with variables or single quotes"
}

func (DoubleQuoteUsage) Register() token.Set { return token.Strings }

func (DoubleQuoteUsage) Process(f *sniff.File, idx int) {
	fd, ok := Classify(f.View.At(idx).Text)
	if !ok {
		return
	}
	f.Report(fd.Severity, idx, fd.Code, fd.Message).Emit()
}

// VariableUsage requires variables inside double-quoted strings to be
// wrapped in braces. One violation per literal.
type VariableUsage struct{}

func (VariableUsage) Name() string { return "Strings.VariableUsage" }

func (VariableUsage) Description() string {
	return "variables in double-quoted strings are enclosed in braces"
}

func (VariableUsage) Register() token.Set { return token.Strings }

func (VariableUsage) Process(f *sniff.File, idx int) {
	if _, ok := Unbraced(f.View.At(idx).Text); ok {
		f.Error(idx, diag.StyUnbracedVariable, msgUnbraced)
	}
}
