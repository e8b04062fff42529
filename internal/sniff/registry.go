package sniff

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateRule is returned when two rules share a name.
	ErrDuplicateRule = errors.New("duplicate rule")
	// ErrUnknownRule is returned when a name does not match any registered rule.
	ErrUnknownRule = errors.New("unknown rule")
)

// Registry holds the available rules keyed by name.
type Registry struct {
	rules map[string]Rule
}

func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds r under r.Name().
func (r *Registry) Register(rule Rule) error {
	name := rule.Name()
	if _, exists := r.rules[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, name)
	}
	r.rules[name] = rule
	return nil
}

// MustRegister is Register for static rule tables.
func (r *Registry) MustRegister(rules ...Rule) *Registry {
	for _, rule := range rules {
		if err := r.Register(rule); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Registry) Get(name string) (Rule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

func (r *Registry) Len() int { return len(r.rules) }

// Names returns all registered rule names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the rules to run, sorted by name. A non-empty enabled list
// is an allowlist; disabled names are removed afterwards. Unknown names in
// either list are an error.
func (r *Registry) Select(enabled, disabled []string) ([]Rule, error) {
	for _, name := range append(append([]string(nil), enabled...), disabled...) {
		if _, ok := r.rules[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
		}
	}
	keep := make(map[string]bool, len(r.rules))
	if len(enabled) > 0 {
		for _, name := range enabled {
			keep[name] = true
		}
	} else {
		for name := range r.rules {
			keep[name] = true
		}
	}
	for _, name := range disabled {
		delete(keep, name)
	}

	var out []Rule
	for _, name := range r.Names() {
		if keep[name] {
			out = append(out, r.rules[name])
		}
	}
	return out, nil
}

// Configure applies per-rule options. Options for rules that do not
// implement Configurable are rejected.
func (r *Registry) Configure(options map[string]map[string]string) error {
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rule, ok := r.rules[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownRule, name)
		}
		c, ok := rule.(Configurable)
		if !ok {
			return fmt.Errorf("rule %s takes no options", name)
		}
		if err := c.Configure(options[name]); err != nil {
			return fmt.Errorf("configure %s: %w", name, err)
		}
	}
	return nil
}
