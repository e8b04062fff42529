// Package driver runs the rule set over files and directories.
package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"cisniff/internal/config"
	"cisniff/internal/diag"
	"cisniff/internal/observ"
	"cisniff/internal/sniff"
	"cisniff/internal/sniffs"
	"cisniff/internal/source"
)

// Options controls a check run.
type Options struct {
	Config config.Config
	// Registry to pick rules from; nil means the built-in set. The registry
	// is configured in place from Config.
	Registry *sniff.Registry
	// Jobs bounds parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics per file; 0 falls back to Config.Report.MaxDiagnostics.
	MaxDiagnostics int
	// BaseDir is used to print relative paths; empty means the checked
	// directory (or the file's directory).
	BaseDir string
	Cache   *DiskCache
	// Timer may be nil.
	Timer *observ.Timer
	// Progress receives per-file events; may be nil.
	Progress ProgressSink
}

// FileResult is the outcome for one file.
type FileResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Cached bool
}

// Result of a check run. Files are in path order.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
	Rules   []string
}

// HasErrors reports whether any file has an error diagnostic.
func (r *Result) HasErrors() bool {
	for _, f := range r.Files {
		if f.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Diagnostics concatenates per-file diagnostics in file order.
func (r *Result) Diagnostics() []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, f := range r.Files {
		out = append(out, f.Bag.Items()...)
	}
	return out
}

// Bag merges per-file bags into one sorted bag.
func (r *Result) Bag() *diag.Bag {
	bag := diag.NewBag(0)
	for _, f := range r.Files {
		bag.Merge(f.Bag)
	}
	bag.Sort()
	return bag
}

// CheckFile checks a single file.
func CheckFile(ctx context.Context, path string, opts Options) (*Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	if opts.BaseDir == "" {
		opts.BaseDir = filepath.Dir(abs)
	}
	return CheckPaths(ctx, []string{abs}, opts)
}

// CheckDir discovers files under dir and checks them.
func CheckDir(ctx context.Context, dir string, opts Options) (*Result, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", dir, err)
	}
	if opts.BaseDir == "" {
		opts.BaseDir = abs
	}
	idx := opts.Timer.Begin("discover")
	files, err := Discover(ctx, abs, opts.Config)
	opts.Timer.End(idx, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return nil, err
	}
	return CheckPaths(ctx, files, opts)
}

// CheckPaths checks the given files. Paths are made absolute so path based
// rules see the full location.
func CheckPaths(ctx context.Context, paths []string, opts Options) (*Result, error) {
	rules, err := selectRules(opts)
	if err != nil {
		return nil, err
	}
	abs := make([]string, len(paths))
	for i, p := range paths {
		if abs[i], err = filepath.Abs(p); err != nil {
			return nil, fmt.Errorf("failed to resolve %q: %w", p, err)
		}
	}
	res, err := checkParallel(ctx, abs, rules, opts)
	if err != nil {
		return nil, err
	}
	res.Rules = ruleNames(rules)
	return res, nil
}

func selectRules(opts Options) ([]sniff.Rule, error) {
	reg := opts.Registry
	if reg == nil {
		reg = sniffs.Default()
	}
	cfg := opts.Config
	if err := cfg.CheckRules(reg.Names()); err != nil {
		return nil, err
	}
	if err := reg.Configure(cfg.Rules.Options); err != nil {
		return nil, err
	}
	return reg.Select(cfg.Rules.Enable, cfg.Rules.Disable)
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return o.Config.Report.MaxDiagnostics
}

func ruleNames(rules []sniff.Rule) []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name()
	}
	slices.Sort(names)
	return names
}
