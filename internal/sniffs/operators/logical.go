// Package operators holds rules about operator spelling.
package operators

import (
	"fmt"
	"strings"

	"cisniff/internal/diag"
	"cisniff/internal/sniff"
	"cisniff/internal/token"
)

var (
	literal  = token.Of(token.LogicalAnd, token.LogicalOr, token.LogicalXor)
	symbolic = token.Of(token.BooleanAnd, token.BooleanOr)
)

// symbolToLiteral maps symbolic operators to the keyword to use instead.
var symbolToLiteral = map[string]string{
	"&&": "AND",
	"||": "OR",
}

// UppercaseLiteralLogicalOperators requires AND/OR/XOR written as upper
// case keywords.
type UppercaseLiteralLogicalOperators struct{}

func (UppercaseLiteralLogicalOperators) Name() string {
	return "Operators.UppercaseLiteralLogicalOperators"
}

func (UppercaseLiteralLogicalOperators) Description() string {
	return "logical operators are AND, OR and XOR in upper case"
}

func (UppercaseLiteralLogicalOperators) Register() token.Set {
	return literal.Union(symbolic)
}

func (UppercaseLiteralLogicalOperators) Process(f *sniff.File, idx int) {
	tok := f.View.At(idx)
	switch {
	case symbolic.Has(tok.Kind):
		f.Error(idx, diag.StySymbolicLogicalOperator,
			fmt.Sprintf(`Logical operator "%s" is prohibited; use "%s" instead`, tok.Text, symbolToLiteral[tok.Text]))
	case literal.Has(tok.Kind):
		if upper := strings.ToUpper(tok.Text); upper != tok.Text {
			f.Error(idx, diag.StyLowercaseLogicalOp,
				fmt.Sprintf(`All logical operators should be in upper case; use "%s" instead of "%s"`, upper, tok.Text))
		}
	}
}
