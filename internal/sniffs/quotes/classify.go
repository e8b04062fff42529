// Package quotes checks how string literals are quoted.
package quotes

import (
	"strings"

	"cisniff/internal/diag"
	"cisniff/internal/interp"
)

const (
	msgDoubleNotNeeded = "Single quoted strings should be used unless the string contains variables or single quotes."
	msgMixedNoVariable = "It is encouraged to use singled quote string, since this string doesn't contain any variable though it mixes single and double quotes."
	msgDoubleAllowed   = "You may also use double-quoted strings if the string contains single quotes, so you do not have to use escape characters."
	msgUnbraced        = "It is prohibed to use a variable in a double quoted string without enclosing it in braces."
)

// Finding is one quote-style problem of a literal.
type Finding struct {
	Severity diag.Severity
	Code     diag.Code
	Message  string
}

// Classify applies the quote-kind policy to the raw text of a string
// literal, quotes included. At most one finding is returned.
//
// A double-quoted literal must hold an interpolation marker or a single
// quote. A single-quoted literal that escapes single quotes and holds no
// double quote could be written with double quotes instead.
func Classify(raw string) (Finding, bool) {
	if len(raw) < 2 {
		return Finding{}, false
	}
	inner := raw[1 : len(raw)-1]
	hasSingle := strings.Contains(inner, "'")
	hasDouble := strings.Contains(inner, `"`)

	switch raw[0] {
	case '"':
		_, hasVar := interp.Find(inner, 0)
		switch {
		case hasSingle:
			if hasDouble && !hasVar {
				return Finding{diag.SevWarning, diag.StyMixedQuotesNoVariable, msgMixedNoVariable}, true
			}
			return Finding{}, false
		case hasVar:
			return Finding{}, false
		default:
			return Finding{diag.SevError, diag.StyDoubleQuoteNotNeeded, msgDoubleNotNeeded}, true
		}
	case '\'':
		if hasSingle && !hasDouble {
			return Finding{diag.SevWarning, diag.StyDoubleQuoteAllowed, msgDoubleAllowed}, true
		}
	}
	return Finding{}, false
}

// Unbraced applies the brace policy: a double-quoted literal must not
// interpolate a variable without braces. It returns the offset of the first
// offending "$" within raw.
func Unbraced(raw string) (int, bool) {
	if !strings.HasPrefix(raw, `"`) {
		return 0, false
	}
	m, ok := interp.FirstUnbraced(raw)
	if !ok {
		return 0, false
	}
	return m.Offset, true
}
