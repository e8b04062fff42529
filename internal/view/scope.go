package view

import (
	"errors"
	"fmt"
	"strings"

	"cisniff/internal/token"
)

// ErrMalformedScope is returned by Validate when scope links overlap or
// point at the wrong tokens.
var ErrMalformedScope = errors.New("malformed scope")

// Context describes a class-like declaration and its body.
type Context struct {
	Kind   token.Kind // Class, Interface or Trait
	Name   string
	Owner  int // index of the declaration keyword
	Opener int
	Closer int
	Parent string // name after "extends", empty when absent
}

// DeclarationName returns the name declared by the class, interface, trait or
// function keyword at i. Anonymous classes and closures have none.
func (v *View) DeclarationName(i int) (string, bool) {
	if !v.Valid(i) {
		return "", false
	}
	switch v.toks[i].Kind {
	case token.Function, token.Class, token.Interface, token.Trait:
	default:
		return "", false
	}
	j, ok := v.NextSignificant(i)
	if ok && v.toks[i].Kind == token.Function && v.toks[j].Kind == token.BitwiseAnd {
		j, ok = v.NextSignificant(j)
	}
	if !ok || v.toks[j].Kind != token.String {
		return "", false
	}
	return v.toks[j].Text, true
}

// EnclosingScope returns the innermost token of one of kinds whose body
// strictly contains i.
func (v *View) EnclosingScope(i int, kinds token.Set) (int, bool) {
	for j := min(i, len(v.toks)) - 1; j >= 0; j-- {
		t := v.toks[j]
		if !kinds.Has(t.Kind) || !t.HasScope() {
			continue
		}
		if t.ScopeOpener < i && i < t.ScopeCloser {
			return j, true
		}
	}
	return -1, false
}

// ExtendedName returns the (possibly qualified) name following "extends" in
// the declaration at i. For interfaces only the first parent is returned.
func (v *View) ExtendedName(i int) (string, bool) {
	if !v.Valid(i) || !v.toks[i].HasScope() {
		return "", false
	}
	opener := v.toks[i].ScopeOpener
	ext, ok := v.FindNext(token.Of(token.Extends), i+1, opener)
	if !ok {
		return "", false
	}
	var sb strings.Builder
loop:
	for j := ext + 1; j < opener; j++ {
		switch v.toks[j].Kind {
		case token.String, token.NsSeparator:
			sb.WriteString(v.toks[j].Text)
		case token.Whitespace, token.Comment, token.DocComment:
			if sb.Len() > 0 {
				break loop
			}
		default:
			break loop
		}
	}
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}

// Scope builds the Context of the class-like declaration at i.
func (v *View) Scope(i int) (Context, bool) {
	if !v.Valid(i) || !token.ClassLike.Has(v.toks[i].Kind) || !v.toks[i].HasScope() {
		return Context{}, false
	}
	t := v.toks[i]
	ctx := Context{
		Kind:   t.Kind,
		Owner:  i,
		Opener: t.ScopeOpener,
		Closer: t.ScopeCloser,
	}
	ctx.Name, _ = v.DeclarationName(i)
	ctx.Parent, _ = v.ExtendedName(i)
	return ctx, true
}

// Validate checks that every scope link points at a matching brace pair and
// that scopes nest without overlap.
func (v *View) Validate() error {
	var stack []int // ожидаемые закрывающие скобки
	for i, t := range v.toks {
		if len(stack) > 0 && stack[len(stack)-1] < i {
			return fmt.Errorf("%w: scope closing at %d skipped", ErrMalformedScope, stack[len(stack)-1])
		}
		if t.ScopeOpener == token.NoScope && t.ScopeCloser == token.NoScope {
			continue
		}
		if !t.HasScope() {
			return fmt.Errorf("%w: token %d has a half-open scope", ErrMalformedScope, i)
		}
		op, cl := t.ScopeOpener, t.ScopeCloser
		if !v.Valid(op) || !v.Valid(cl) || op >= cl {
			return fmt.Errorf("%w: token %d scope [%d,%d] out of range", ErrMalformedScope, i, op, cl)
		}
		if v.toks[op].Kind != token.OpenCurly || v.toks[cl].Kind != token.CloseCurly ||
			v.toks[op].ScopeCloser != cl || v.toks[cl].ScopeOpener != op {
			return fmt.Errorf("%w: token %d scope [%d,%d] is not a brace pair", ErrMalformedScope, i, op, cl)
		}
		switch i {
		case op:
			if len(stack) > 0 && cl > stack[len(stack)-1] {
				return fmt.Errorf("%w: scope [%d,%d] overlaps its parent", ErrMalformedScope, op, cl)
			}
			stack = append(stack, cl)
		case cl:
			if len(stack) == 0 || stack[len(stack)-1] != cl {
				return fmt.Errorf("%w: scope [%d,%d] closes out of order", ErrMalformedScope, op, cl)
			}
			stack = stack[:len(stack)-1]
		default:
			if op < i {
				return fmt.Errorf("%w: owner %d follows its own body", ErrMalformedScope, i)
			}
		}
	}
	if len(stack) > 0 {
		return fmt.Errorf("%w: %d scopes left open", ErrMalformedScope, len(stack))
	}
	return nil
}
