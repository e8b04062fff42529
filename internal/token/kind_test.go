package token_test

import (
	"testing"

	"cisniff/internal/token"
)

func TestKindString(t *testing.T) {
	tests := map[token.Kind]string{
		token.OpenTag:            "OpenTag",
		token.DoubleQuotedString: "DoubleQuotedString",
		token.DoubleColon:        "DoubleColon",
		token.Operator:           "Operator",
		token.Backtick:           "Backtick",
		token.Kind(250):          "Kind(?)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestSet(t *testing.T) {
	s := token.Of(token.Comment, token.Whitespace, token.Operator)
	for _, k := range []token.Kind{token.Comment, token.Whitespace, token.Operator} {
		if !s.Has(k) {
			t.Errorf("set should contain %v", k)
		}
	}
	if s.Has(token.String) {
		t.Error("set must not contain String")
	}
	got := s.Kinds()
	if len(got) != 3 || got[0] != token.Whitespace || got[1] != token.Comment || got[2] != token.Operator {
		t.Errorf("Kinds() = %v", got)
	}
	if !(token.Set{}).Empty() || s.Empty() {
		t.Error("Empty() mismatch")
	}
	u := s.Union(token.Of(token.String))
	if !u.Has(token.String) || !u.Has(token.Comment) {
		t.Errorf("Union = %v", u)
	}
	if s.String() != "{Whitespace,Comment,Operator}" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestTokenPredicates(t *testing.T) {
	scoped := token.Token{Kind: token.Class, ScopeOpener: 4, ScopeCloser: 9}
	if !scoped.HasScope() || !scoped.IsKeyword() {
		t.Errorf("class token predicates: %+v", scoped)
	}
	plain := token.Token{Kind: token.String, ScopeOpener: token.NoScope, ScopeCloser: token.NoScope}
	if plain.HasScope() || plain.IsKeyword() {
		t.Errorf("identifier predicates: %+v", plain)
	}
	if !(token.Token{Kind: token.DocComment}).IsComment() {
		t.Error("doc comment should be a comment")
	}
	if !(token.Token{Kind: token.ConstantString}).IsString() {
		t.Error("constant string should be a string")
	}
}
