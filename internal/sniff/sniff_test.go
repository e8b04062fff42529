package sniff_test

import (
	"errors"
	"testing"

	"cisniff/internal/diag"
	"cisniff/internal/lexer"
	"cisniff/internal/sniff"
	"cisniff/internal/source"
	"cisniff/internal/token"
)

// recordRule запоминает индексы, на которых его вызвали
type recordRule struct {
	name  string
	kinds token.Set
	seen  *[]string
	opts  map[string]string
}

func (r *recordRule) Name() string        { return r.name }
func (r *recordRule) Description() string { return "records calls" }
func (r *recordRule) Register() token.Set { return r.kinds }
func (r *recordRule) Process(f *sniff.File, idx int) {
	*r.seen = append(*r.seen, r.name+":"+f.View.At(idx).Text)
	if f.Rule() != r.name {
		panic("rule name not bound")
	}
}

func (r *recordRule) Configure(opts map[string]string) error {
	if _, ok := opts["bad"]; ok {
		return errors.New("bad option")
	}
	r.opts = opts
	return nil
}

type panicRule struct{ calls int }

func (p *panicRule) Name() string        { return "Test.Panics" }
func (p *panicRule) Description() string { return "always panics" }
func (p *panicRule) Register() token.Set { return token.Of(token.Variable) }
func (p *panicRule) Process(*sniff.File, int) {
	p.calls++
	panic("boom")
}

type errorRule struct{}

func (errorRule) Name() string        { return "Test.Errors" }
func (errorRule) Description() string { return "flags every variable" }
func (errorRule) Register() token.Set { return token.Of(token.Variable) }
func (errorRule) Process(f *sniff.File, idx int) {
	f.Warning(idx, diag.StyUnbracedVariable, "variable "+f.View.At(idx).Text)
}

func tokens(t *testing.T, src string) (*source.File, []token.Token) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("/app/x.php", []byte(src))
	f := fs.Get(id)
	return f, lexer.Tokenize(f, lexer.Options{})
}

func TestRegistrySelect(t *testing.T) {
	var seen []string
	reg := sniff.NewRegistry().MustRegister(
		&recordRule{name: "B.Two", seen: &seen},
		&recordRule{name: "A.One", seen: &seen},
		&recordRule{name: "C.Three", seen: &seen},
	)
	if err := reg.Register(&recordRule{name: "A.One", seen: &seen}); !errors.Is(err, sniff.ErrDuplicateRule) {
		t.Errorf("duplicate: got %v", err)
	}

	names := func(rules []sniff.Rule) []string {
		var out []string
		for _, r := range rules {
			out = append(out, r.Name())
		}
		return out
	}

	all, err := reg.Select(nil, []string{"B.Two"})
	if err != nil {
		t.Fatal(err)
	}
	if got := names(all); len(got) != 2 || got[0] != "A.One" || got[1] != "C.Three" {
		t.Errorf("Select(disable) = %v", got)
	}
	only, _ := reg.Select([]string{"C.Three", "A.One"}, []string{"A.One"})
	if got := names(only); len(got) != 1 || got[0] != "C.Three" {
		t.Errorf("Select(enable) = %v", got)
	}
	if _, err := reg.Select([]string{"Nope.Missing"}, nil); !errors.Is(err, sniff.ErrUnknownRule) {
		t.Errorf("unknown: got %v", err)
	}
}

func TestRegistryConfigure(t *testing.T) {
	var seen []string
	rule := &recordRule{name: "A.One", seen: &seen}
	reg := sniff.NewRegistry().MustRegister(rule, &panicRule{})

	if err := reg.Configure(map[string]map[string]string{"A.One": {"k": "v"}}); err != nil {
		t.Fatal(err)
	}
	if rule.opts["k"] != "v" {
		t.Error("options not applied")
	}
	if err := reg.Configure(map[string]map[string]string{"A.One": {"bad": ""}}); err == nil {
		t.Error("rule error must propagate")
	}
	if err := reg.Configure(map[string]map[string]string{"Test.Panics": {"k": "v"}}); err == nil {
		t.Error("non-configurable rule must reject options")
	}
	if err := reg.Configure(map[string]map[string]string{"X.Y": {}}); !errors.Is(err, sniff.ErrUnknownRule) {
		t.Errorf("unknown: got %v", err)
	}
}

func TestDispatchOrder(t *testing.T) {
	var seen []string
	rules := []sniff.Rule{
		&recordRule{name: "Vars", kinds: token.Of(token.Variable), seen: &seen},
		&recordRule{name: "Both", kinds: token.Of(token.Variable, token.Semicolon), seen: &seen},
	}
	src, toks := tokens(t, "<?php $a; $b;")
	sniff.NewDispatcher(rules).Run(src, toks, nil)

	want := []string{"Vars:$a", "Both:$a", "Both:;", "Vars:$b", "Both:$b", "Both:;"}
	if len(seen) != len(want) {
		t.Fatalf("seen %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, seen[i], want[i])
		}
	}
}

// Паника одного правила не мешает остальным
func TestDispatchRecoversPanics(t *testing.T) {
	p := &panicRule{}
	src, toks := tokens(t, "<?php $a; $b;")
	bag := diag.NewBag(0)
	sniff.NewDispatcher([]sniff.Rule{p, errorRule{}}).Run(src, toks, diag.BagReporter{Bag: bag})

	if p.calls != 1 {
		t.Errorf("panicking rule must be skipped after first failure, calls=%d", p.calls)
	}
	var failures, warnings int
	for _, d := range bag.Items() {
		switch d.Code {
		case diag.StyRuleFailure:
			failures++
			if d.Rule != "Test.Panics" || d.Severity != diag.SevError {
				t.Errorf("failure diagnostic = %+v", d)
			}
		case diag.StyUnbracedVariable:
			warnings++
			if d.Rule != "Test.Errors" || d.Token < 0 {
				t.Errorf("warning diagnostic = %+v", d)
			}
		}
	}
	if failures != 1 || warnings != 2 {
		t.Errorf("failures=%d warnings=%d", failures, warnings)
	}
}

func TestSpanOfOutOfRange(t *testing.T) {
	src, toks := tokens(t, "<?php $a;")
	f := sniff.NewFile(src, toks, nil)
	if sp := f.SpanOf(-1); sp.Start != 0 || sp.End != 0 || sp.File != src.ID {
		t.Errorf("SpanOf(-1) = %v", sp)
	}
	if sp := f.SpanOf(1); sp != toks[1].Span {
		t.Errorf("SpanOf(1) = %v", sp)
	}
	if f.BaseName() != "x.php" {
		t.Errorf("BaseName = %q", f.BaseName())
	}
}
