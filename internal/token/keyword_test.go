package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"class", Class},
		{"CLASS", Class},
		{"Function", Function},
		{"and", LogicalAnd},
		{"AND", LogicalAnd},
		{"Or", LogicalOr},
		{"xor", LogicalXor},
		{"extends", Extends},
	}
	for _, tt := range tests {
		got, ok := LookupKeyword(tt.in)
		if !ok || got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v", tt.in, got, ok, tt.want)
		}
	}

	for _, ident := range []string{"__construct", "parent", "self", "foo", "fn", ""} {
		if k, ok := LookupKeyword(ident); ok {
			t.Errorf("LookupKeyword(%q) = %v, want miss", ident, k)
		}
	}
}
