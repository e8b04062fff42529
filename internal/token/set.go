package token

import "strings"

// Set is a fixed-size bitset of kinds.
type Set [2]uint64

// Of builds a Set containing kinds.
func Of(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// With returns a copy of s that also contains k.
func (s Set) With(k Kind) Set {
	s[k>>6] |= 1 << (k & 63)
	return s
}

// Union returns the kinds present in either set.
func (s Set) Union(other Set) Set {
	return Set{s[0] | other[0], s[1] | other[1]}
}

// Has reports whether k is in s.
func (s Set) Has(k Kind) bool {
	return s[k>>6]&(1<<(k&63)) != 0
}

func (s Set) Empty() bool {
	return s[0] == 0 && s[1] == 0
}

// Kinds lists the members of s in ascending order.
func (s Set) Kinds() []Kind {
	var out []Kind
	for k := Kind(0); k < kindCount; k++ {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

func (s Set) String() string {
	kinds := s.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Frequently used sets.
var (
	Comments      = Of(Comment, DocComment)
	Insignificant = Of(Whitespace, Comment, DocComment)
	Strings       = Of(ConstantString, DoubleQuotedString)
	ScopeOwners   = Of(Class, AnonClass, Interface, Trait, Function)
	ClassLike     = Of(Class, Interface, Trait)
)
