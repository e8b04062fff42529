// Package naming holds naming-convention rules.
package naming

import (
	"fmt"
	"strings"

	"cisniff/internal/diag"
	"cisniff/internal/sniff"
	"cisniff/internal/token"
	"cisniff/internal/view"
)

// ConstructKeyword is the PHP 5 constructor method name.
const ConstructKeyword = "__construct"

// State classifies a method with respect to constructors.
type State uint8

const (
	NotConstructor    State = iota
	LegacyConstructor       // method named after its class
	ModernDisallowed        // __construct
)

func (s State) String() string {
	switch s {
	case LegacyConstructor:
		return "legacy-constructor"
	case ModernDisallowed:
		return "modern-constructor-disallowed"
	default:
		return "not-a-constructor"
	}
}

// Classify compares a method name with the name of its class. Both
// comparisons ignore case, as PHP does for method names.
func Classify(method, class string) State {
	switch {
	case strings.EqualFold(method, ConstructKeyword):
		return ModernDisallowed
	case strings.EqualFold(method, class):
		return LegacyConstructor
	default:
		return NotConstructor
	}
}

// ConstructorName enforces class-named constructors: __construct is
// rejected, and so are X::__construct() calls inside a constructor body.
type ConstructorName struct{}

func (ConstructorName) Name() string { return "NamingConventions.ConstructorName" }

func (ConstructorName) Description() string {
	return "constructors are named after their class, no __construct"
}

func (ConstructorName) Register() token.Set { return token.Of(token.Function) }

func (ConstructorName) Process(f *sniff.File, idx int) {
	v := f.View
	owner, ok := v.EnclosingScope(idx, token.ScopeOwners)
	if !ok {
		return
	}
	scope, ok := v.Scope(owner)
	// методы трейтов, анонимных классов и вложенные функции
	if !ok || scope.Name == "" || (scope.Kind != token.Class && scope.Kind != token.Interface) {
		return
	}
	method, ok := v.DeclarationName(idx)
	if !ok {
		return
	}

	switch Classify(method, scope.Name) {
	case NotConstructor:
		return
	case ModernDisallowed:
		f.Error(idx, diag.StyModernConstructor,
			fmt.Sprintf(`PHP5 style constructors are not allowed; use "%s" instead`, scope.Name))
	}
	checkParentCalls(f, idx, scope)
}

// checkParentCalls reports every X::__construct inside the body of the
// function at idx.
func checkParentCalls(f *sniff.File, idx int, scope view.Context) {
	v := f.View
	fn := v.At(idx)
	if !fn.HasScope() {
		return
	}
	msg := "PHP5 style calls to parent constructors are not allowed."
	if scope.Parent != "" {
		msg += fmt.Sprintf(` Please use "parent::%s" instead.`, scope.Parent)
	}
	closer := fn.ScopeCloser
	for i := fn.ScopeOpener + 1; i < closer; {
		colon, ok := v.FindNext(token.Of(token.DoubleColon), i, closer)
		if !ok {
			return
		}
		name := colon + 1
		if name < closer && v.At(name).Kind == token.String && v.At(name).Text == ConstructKeyword {
			f.Error(name, diag.StyModernParentConstructor, msg)
		}
		i = colon + 1
	}
}
