package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"cisniff/internal/config"
)

// loadConfig reads --config when given, otherwise discovers a ruleset by
// walking up from target.
func loadConfig(cmd *cobra.Command, target string, isDir bool) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		log.Debug("ruleset loaded", "path", cfg.Path)
		return cfg, nil
	}

	start := target
	if !isDir {
		start = filepath.Dir(target)
	}
	cfg, err := config.Discover(start)
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Path != "" {
		log.Debug("ruleset discovered", "path", cfg.Path)
	} else {
		log.Debug("no ruleset found, using defaults", "start", start)
	}
	return cfg, nil
}
