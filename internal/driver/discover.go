package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	gitignore "github.com/sabhiram/go-gitignore"

	"cisniff/internal/config"
)

// Discover returns the sorted list of files under root that the ruleset
// selects: matching extension, not excluded by cfg and not ignored by the
// root's .gitignore.
func Discover(ctx context.Context, root string, cfg config.Config) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", root, err)
	}

	var ignore *gitignore.GitIgnore
	gitignorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		ignore, err = gitignore.CompileIgnoreFile(gitignorePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", gitignorePath, err)
		}
	}
	excludeRoot := cfg.Root
	if excludeRoot == "" {
		excludeRoot = root
	}

	skipped := func(path string, isDir bool) bool {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return false
		}
		rel = filepath.ToSlash(rel)
		if isDir {
			rel += "/"
		}
		if ignore != nil && ignore.MatchesPath(rel) {
			log.Debug("skipping path", "path", rel, "reason", ".gitignore")
			return true
		}
		exRel, err := filepath.Rel(excludeRoot, path)
		if err != nil {
			exRel = rel
		}
		if cfg.Excluded(filepath.ToSlash(exRel)) {
			log.Debug("skipping path", "path", rel, "reason", "exclude")
			return true
		}
		return false
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if d.Name() == ".git" || skipped(path, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !cfg.HasExtension(path) {
			return nil
		}
		if skipped(path, false) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}
