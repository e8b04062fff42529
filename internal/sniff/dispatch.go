package sniff

import (
	"fmt"

	"github.com/charmbracelet/log"

	"cisniff/internal/diag"
	"cisniff/internal/source"
	"cisniff/internal/token"
)

// Dispatcher routes tokens to the rules registered for their kind.
// It is immutable after construction and safe for concurrent Run calls.
type Dispatcher struct {
	rules  []Rule
	byKind map[token.Kind][]Rule
}

// NewDispatcher indexes rules by kind. Rule order within a kind follows the
// order of rules.
func NewDispatcher(rules []Rule) *Dispatcher {
	d := &Dispatcher{
		rules:  rules,
		byKind: make(map[token.Kind][]Rule),
	}
	for _, r := range rules {
		for _, k := range r.Register().Kinds() {
			d.byKind[k] = append(d.byKind[k], r)
		}
	}
	return d
}

func (d *Dispatcher) Rules() []Rule { return d.rules }

// Run checks one file. Every token is visited in order; for each, the
// interested rules run in registration order. A rule that panics is
// reported once as a diagnostic and skipped for the rest of the file; the
// other rules keep running.
func (d *Dispatcher) Run(src *source.File, toks []token.Token, rep diag.Reporter) {
	f := NewFile(src, toks, rep)
	bound := make(map[string]*File, len(d.rules))
	var failed map[string]bool

	for i := range toks {
		for _, r := range d.byKind[toks[i].Kind] {
			name := r.Name()
			if failed[name] {
				continue
			}
			rf, ok := bound[name]
			if !ok {
				rf = f.withRule(name)
				bound[name] = rf
			}
			if !d.process(r, rf, i) {
				if failed == nil {
					failed = make(map[string]bool)
				}
				failed[name] = true
			}
		}
	}
}

func (d *Dispatcher) process(r Rule, f *File, idx int) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			ok = false
			log.Warn("rule panicked", "rule", r.Name(), "file", f.Path(), "token", idx, "panic", p)
			f.Error(idx, diag.StyRuleFailure, fmt.Sprintf("rule %s failed: %v", r.Name(), p))
		}
	}()
	r.Process(f, idx)
	return true
}
