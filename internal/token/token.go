package token

import "cisniff/internal/source"

// NoScope is the ScopeOpener/ScopeCloser value of tokens without a body.
const NoScope = -1

// Token represents a single source token with its location.
type Token struct {
	Kind        Kind
	Span        source.Span
	Text        string
	ScopeOpener int
	ScopeCloser int
}

// HasScope reports whether the token owns a body.
func (t Token) HasScope() bool {
	return t.ScopeOpener != NoScope && t.ScopeCloser != NoScope
}

// IsComment reports whether the token is a comment of any flavour.
func (t Token) IsComment() bool { return Comments.Has(t.Kind) }

// IsString reports whether the token is a quoted string literal.
func (t Token) IsString() bool { return Strings.Has(t.Kind) }

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= Abstract && t.Kind <= LogicalXor
}
