// Package config loads the ruleset file (cisniff.toml or cisniff.yaml).
package config

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrUnknownRule indicates a rule name that no registered rule carries.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrConflictingRuleLists indicates a rule both enabled and disabled.
	ErrConflictingRuleLists = errors.New("rule is both enabled and disabled")
	// ErrUnknownKey indicates a key the schema does not define.
	ErrUnknownKey = errors.New("unknown configuration key")
	// ErrInvalidValue indicates a value outside its allowed range.
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Config is the ruleset in effect. It is immutable once loaded.
type Config struct {
	// Path of the file it was read from; empty for defaults.
	Path string `toml:"-" yaml:"-"`
	// Root is the directory exclude globs are relative to.
	Root string `toml:"-" yaml:"-"`

	Files  Files  `toml:"files" yaml:"files"`
	Rules  Rules  `toml:"rules" yaml:"rules"`
	Report Report `toml:"report" yaml:"report"`
}

type Files struct {
	Extensions []string `toml:"extensions" yaml:"extensions"`
	Exclude    []string `toml:"exclude" yaml:"exclude"`
}

type Rules struct {
	Enable  []string                     `toml:"enable" yaml:"enable"`
	Disable []string                     `toml:"disable" yaml:"disable"`
	Options map[string]map[string]string `toml:"options" yaml:"options"`
}

type Report struct {
	MaxDiagnostics   int  `toml:"max_diagnostics" yaml:"max_diagnostics"`
	WarningsAsErrors bool `toml:"warnings_as_errors" yaml:"warnings_as_errors"`
}

// Default is the configuration used when no ruleset file exists.
func Default() Config {
	return Config{
		Files: Files{Extensions: []string{".php"}},
	}
}

// normalize cleans what the user wrote: extensions get a leading dot and
// lower case, globs use forward slashes.
func (c *Config) normalize() {
	for i, ext := range c.Files.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Files.Extensions[i] = ext
	}
	for i, g := range c.Files.Exclude {
		c.Files.Exclude[i] = filepath.ToSlash(strings.TrimSpace(g))
	}
}

func (c Config) validate() error {
	if len(c.Files.Extensions) == 0 {
		return fmt.Errorf("%w: files.extensions must not be empty", ErrInvalidValue)
	}
	for _, ext := range c.Files.Extensions {
		if ext == "" || ext == "." {
			return fmt.Errorf("%w: empty extension in files.extensions", ErrInvalidValue)
		}
	}
	for _, g := range c.Files.Exclude {
		if !doublestar.ValidatePattern(g) {
			return fmt.Errorf("%w: bad exclude pattern %q", ErrInvalidValue, g)
		}
	}
	if c.Report.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: report.max_diagnostics must be >= 0", ErrInvalidValue)
	}
	for _, name := range c.Rules.Enable {
		if slices.Contains(c.Rules.Disable, name) {
			return fmt.Errorf("%w: %s", ErrConflictingRuleLists, name)
		}
	}
	return nil
}

// CheckRules verifies that every rule name mentioned in the ruleset is
// one of known.
func (c Config) CheckRules(known []string) error {
	check := func(section, name string) error {
		if !slices.Contains(known, name) {
			return fmt.Errorf("%w: rules.%s: %s", ErrUnknownRule, section, name)
		}
		return nil
	}
	for _, name := range c.Rules.Enable {
		if err := check("enable", name); err != nil {
			return err
		}
	}
	for _, name := range c.Rules.Disable {
		if err := check("disable", name); err != nil {
			return err
		}
	}
	names := make([]string, 0, len(c.Rules.Options))
	for name := range c.Rules.Options {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := check("options", name); err != nil {
			return err
		}
	}
	return nil
}

// HasExtension reports whether p has one of the configured extensions.
func (c Config) HasExtension(p string) bool {
	ext := strings.ToLower(path.Ext(filepath.ToSlash(p)))
	return slices.Contains(c.Files.Extensions, ext)
}

// Excluded reports whether rel, a slash-separated path relative to Root,
// matches one of the exclude globs. A glob matching a directory excludes
// everything below it.
func (c Config) Excluded(rel string) bool {
	rel = strings.TrimPrefix(filepath.ToSlash(rel), "./")
	for _, g := range c.Files.Exclude {
		if ok, _ := doublestar.PathMatch(g, rel); ok {
			return true
		}
		if ok, _ := doublestar.PathMatch(strings.TrimSuffix(g, "/")+"/**", rel); ok {
			return true
		}
	}
	return false
}

// WithOption returns a copy of c where rule gets key=value, overriding the
// file. Used for command-line flags.
func (c Config) WithOption(rule, key, value string) Config {
	opts := make(map[string]map[string]string, len(c.Rules.Options)+1)
	for name, o := range c.Rules.Options {
		opts[name] = o
	}
	merged := make(map[string]string, len(opts[rule])+1)
	for k, v := range opts[rule] {
		merged[k] = v
	}
	merged[key] = value
	opts[rule] = merged
	c.Rules.Options = opts
	return c
}
