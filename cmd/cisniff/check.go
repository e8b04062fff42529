package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"cisniff/internal/diag"
	"cisniff/internal/diagfmt"
	"cisniff/internal/driver"
	"cisniff/internal/observ"
	"cisniff/internal/sniff"
	"cisniff/internal/sniffs"
	"cisniff/internal/version"
)

const locationRule = "Files.ClosingLocationComment"

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.php|directory>",
	Short: "Check a PHP file or directory against the ruleset",
	Long:  `Check runs every enabled rule over a PHP file or all matching files within a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("cache", false, "reuse results of unchanged files from the disk cache")
	checkCmd.Flags().Bool("progress", false, "show a progress view on stderr when it is a terminal")
	checkCmd.Flags().String("app-root", "", "application root marker for Location comments (default \"/application/\")")
}

type checkFlags struct {
	format           string
	jobs             int
	noWarnings       bool
	warningsAsErrors bool
	withNotes        bool
	fullPath         bool
	cache            bool
	appRoot          string
	progress         bool
	maxDiagnostics   int
	timings          bool
	quiet            bool
}

func readCheckFlags(cmd *cobra.Command) (checkFlags, error) {
	var (
		f   checkFlags
		err error
	)
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.noWarnings, err = cmd.Flags().GetBool("no-warnings"); err != nil {
		return f, fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	if f.warningsAsErrors, err = cmd.Flags().GetBool("warnings-as-errors"); err != nil {
		return f, fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if f.withNotes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return f, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if f.fullPath, err = cmd.Flags().GetBool("fullpath"); err != nil {
		return f, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if f.cache, err = cmd.Flags().GetBool("cache"); err != nil {
		return f, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if f.appRoot, err = cmd.Flags().GetString("app-root"); err != nil {
		return f, fmt.Errorf("failed to get app-root flag: %w", err)
	}
	if f.progress, err = cmd.Flags().GetBool("progress"); err != nil {
		return f, fmt.Errorf("failed to get progress flag: %w", err)
	}
	if f.maxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err != nil {
		return f, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if f.timings, err = cmd.Root().PersistentFlags().GetBool("timings"); err != nil {
		return f, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if f.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return f, fmt.Errorf("failed to get quiet flag: %w", err)
	}

	if f.noWarnings && f.warningsAsErrors {
		return f, fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}
	switch f.format {
	case "pretty", "json", "sarif", "short":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	return f, nil
}

// runCheck executes the "check" command and returns errDiagnostics when
// error diagnostics remain after the warning flags are applied.
func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]

	flags, err := readCheckFlags(cmd)
	if err != nil {
		return err
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	cfg, err := loadConfig(cmd, target, st.IsDir())
	if err != nil {
		return err
	}
	if flags.appRoot != "" {
		cfg = cfg.WithOption(locationRule, "app_root", flags.appRoot)
	}
	warningsAsErrors := flags.warningsAsErrors || (cfg.Report.WarningsAsErrors && !flags.noWarnings)

	var timer *observ.Timer
	if flags.timings {
		timer = observ.NewTimer()
	}
	registry := sniffs.Default()
	opts := driver.Options{
		Config:         cfg,
		Registry:       registry,
		Jobs:           flags.jobs,
		MaxDiagnostics: flags.maxDiagnostics,
		Timer:          timer,
	}
	if flags.cache {
		cache, err := driver.OpenDiskCache("cisniff")
		if err != nil {
			log.Warn("result cache disabled", "err", err)
		} else {
			opts.Cache = cache
		}
	}

	check := func(sink driver.ProgressSink) (*driver.Result, error) {
		opts.Progress = sink
		if st.IsDir() {
			return driver.CheckDir(cmd.Context(), target, opts)
		}
		return driver.CheckFile(cmd.Context(), target, opts)
	}
	var res *driver.Result
	if flags.progress && !flags.quiet && isTerminal(os.Stderr) {
		res, err = runWithProgress("checking "+target, check)
	} else {
		res, err = check(nil)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	bag := res.Bag()
	if flags.noWarnings {
		bag.Filter(func(d diag.Diagnostic) bool { return d.Severity != diag.SevWarning })
	}
	if warningsAsErrors {
		bag.Transform(func(d diag.Diagnostic) diag.Diagnostic {
			if d.Severity == diag.SevWarning {
				d.Severity = diag.SevError
			}
			return d
		})
	}

	if err := writeReport(cmd, bag, res, ruleInfos(registry, res.Rules), flags); err != nil {
		return err
	}
	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}

	if bag.HasErrors() {
		// Suppress cobra usage output on diagnostic errors
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errDiagnostics
	}
	return nil
}

func writeReport(cmd *cobra.Command, bag *diag.Bag, res *driver.Result, rules []diagfmt.RuleInfo, flags checkFlags) error {
	out := cmd.OutOrStdout()
	pathMode := diagfmt.PathModeRelative
	if flags.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch flags.format {
	case "pretty":
		color, err := useColor(cmd, out)
		if err != nil {
			return err
		}
		diagfmt.Pretty(out, bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     color,
			Context:   2,
			PathMode:  pathMode,
			ShowNotes: flags.withNotes,
			ShowRule:  true,
		})
		if !flags.quiet {
			printSummary(out, bag, len(res.Files))
		}
	case "short":
		if err := diagfmt.Short(out, bag, res.FileSet, flags.withNotes); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	case "json":
		if err := diagfmt.JSON(out, bag, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     flags.withNotes,
		}); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	case "sarif":
		if err := diagfmt.Sarif(out, bag, res.FileSet, diagfmt.SarifRunMeta{
			ToolName:       "cisniff",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
			Rules:          rules,
		}); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	}
	return nil
}

func ruleInfos(registry *sniff.Registry, names []string) []diagfmt.RuleInfo {
	infos := make([]diagfmt.RuleInfo, 0, len(names))
	for _, name := range names {
		if rule, ok := registry.Get(name); ok {
			infos = append(infos, diagfmt.RuleInfo{Name: rule.Name(), Description: rule.Description()})
		}
	}
	return infos
}

func printSummary(out io.Writer, bag *diag.Bag, files int) {
	errs, warns := bag.Count(diag.SevError), bag.Count(diag.SevWarning)
	if bag.Len() > 0 {
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "%d %s, %d %s in %d %s\n",
		errs, plural(errs, "error", "errors"),
		warns, plural(warns, "warning", "warnings"),
		files, plural(files, "file", "files"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
