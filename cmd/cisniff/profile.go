package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"cisniff/internal/prof"
)

// profiling is the session started by the root pre-run hook.
var profiling *prof.Session

// setupProfiling inspects persistent profiling flags and enables the
// corresponding profilers.
func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	cpuProfile, err := flags.GetString("cpu-profile")
	if err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := flags.GetString("mem-profile")
	if err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	tracePath, err := flags.GetString("runtime-trace")
	if err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}

	cfg := prof.Config{CPUProfile: cpuProfile, MemProfile: memProfile, Trace: tracePath}
	if !cfg.Enabled() {
		return nil
	}
	session, err := prof.Start(cfg)
	if err != nil {
		return err
	}
	log.Debug("profiling enabled", "cpu", cpuProfile, "mem", memProfile, "trace", tracePath)
	profiling = session
	return nil
}

// stopProfiling is safe to call when nothing is running and more than once.
func stopProfiling() {
	if err := profiling.Stop(); err != nil {
		log.Error("failed to stop profiling", "err", err)
	}
	profiling = nil
}
