package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	goodFile = "<?php\n$a = 'x';\n\n/* End of file good.php */\n/* Location: ./good.php */\n"
	warnFile = "<?php\n$a = 'It\\'s';\n\n/* End of file warn.php */\n/* Location: ./warn.php */\n"
	badFile  = "<?php\n$a = \"x\" && $b;\n"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// флаги cobra живут в глобальных командах, сбрасываем их между запусками
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--color", "off"}, args...))
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheckClean(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "application")
	writeFile(t, filepath.Join(dir, "good.php"), goodFile)

	out, _, err := execute(t, "check", dir)
	require.NoError(t, err)
	assert.Equal(t, "0 errors, 0 warnings in 1 file\n", out)

	out, _, err = execute(t, "--quiet", "check", dir)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheckReportsErrors(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "application", "bad.php"), badFile)

	out, _, err := execute(t, "check", "--format", "short", path)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, out, "error STY2101 bad.php:2:6 [Strings.DoubleQuoteUsage]")
	assert.Contains(t, out, "error STY2301 bad.php:2:10 [Operators.UppercaseLiteralLogicalOperators]")
	assert.Contains(t, out, "error STY2001")
	assert.Contains(t, out, "error STY2002")

	out, _, err = execute(t, "check", "--format", "pretty", path)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, out, "2 | $a = \"x\" && $b;")
	assert.Contains(t, out, "4 errors, 0 warnings in 1 file")
}

func TestCheckWarningFlags(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "application", "warn.php"), warnFile)

	out, _, err := execute(t, "check", "--format", "short", path)
	require.NoError(t, err)
	assert.Contains(t, out, "warning STY2103")

	out, _, err = execute(t, "check", "--format", "short", "--no-warnings", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, _, err = execute(t, "check", "--format", "short", "--warnings-as-errors", path)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, out, "error STY2103")

	_, _, err = execute(t, "check", "--no-warnings", "--warnings-as-errors", path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errDiagnostics)
}

func TestCheckAppRoot(t *testing.T) {
	content := "<?php\n\n/* End of file x.php */\n/* Location: ./lib/x.php */\n"
	path := writeFile(t, filepath.Join(t.TempDir(), "src", "lib", "x.php"), content)

	out, _, err := execute(t, "check", "--format", "short", path)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, out, "CFG3001")

	out, _, err = execute(t, "check", "--format", "short", "--app-root", "/src/", path)
	require.NoError(t, err, out)
	assert.Empty(t, out)
}

func TestCheckRuleset(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "cisniff.toml"), `
[rules]
enable = ["Strings.DoubleQuoteUsage"]
`)
	path := writeFile(t, filepath.Join(root, "app", "bad.php"), badFile)

	out, _, err := execute(t, "check", "--format", "json", filepath.Join(root, "app"))
	require.ErrorIs(t, err, errDiagnostics)

	var payload struct {
		Diagnostics []struct {
			Code string `json:"code"`
			Rule string `json:"rule"`
		} `json:"diagnostics"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload), out)
	require.Equal(t, 1, payload.Count)
	assert.Equal(t, "STY2101", payload.Diagnostics[0].Code)

	// явный --config с неизвестным правилом
	cfgPath := writeFile(t, filepath.Join(t.TempDir(), "other.yaml"), "rules:\n  disable: [Nope.Rule]\n")
	_, _, err = execute(t, "--config", cfgPath, "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nope.Rule")
}

func TestCheckSarif(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "application", "bad.php"), badFile)

	out, _, err := execute(t, "check", "--format", "sarif", path)
	require.ErrorIs(t, err, errDiagnostics)

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID string `json:"ruleId"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	assert.Len(t, doc.Runs[0].Tool.Driver.Rules, 6)
	assert.Len(t, doc.Runs[0].Results, 4)
}

func TestCheckTimings(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "application")
	writeFile(t, filepath.Join(dir, "good.php"), goodFile)

	_, stderr, err := execute(t, "--timings", "check", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "timings:")
	assert.Contains(t, stderr, "discover")
}

func TestRulesCommand(t *testing.T) {
	out, _, err := execute(t, "rules")
	require.NoError(t, err)
	for _, name := range []string{
		"Files.ClosingFileComment",
		"Files.ClosingLocationComment",
		"NamingConventions.ConstructorName",
		"Operators.UppercaseLiteralLogicalOperators",
		"Strings.DoubleQuoteUsage",
		"Strings.VariableUsage",
	} {
		assert.Contains(t, out, name)
	}

	out, _, err = execute(t, "rules", "--format", "json")
	require.NoError(t, err)
	var entries []ruleEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 6)
}

func TestTokenizeCommand(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "t.php"), "<?php class A {}")

	out, _, err := execute(t, "tokenize", "--format", "json", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "Class"`)
	assert.Contains(t, out, `"scope_opener": 5`)

	_, stderr, err := execute(t, "tokenize", writeFile(t, filepath.Join(t.TempDir(), "u.php"), "<?php }"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "LEX1003")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version", "--format", "json")
	require.NoError(t, err)
	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "cisniff", payload.Tool)
	assert.NotEmpty(t, payload.Version)

	_, _, err = execute(t, "--log-level", "loud", "version")
	assert.Error(t, err)
}

func TestProfilingFlags(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "application")
	writeFile(t, filepath.Join(dir, "good.php"), goodFile)
	cpu := filepath.Join(tmp, "cpu.out")
	mem := filepath.Join(tmp, "mem.out")

	_, _, err := execute(t, "--cpu-profile", cpu, "--mem-profile", mem, "check", dir)
	require.NoError(t, err)
	assert.Nil(t, profiling)
	assert.FileExists(t, cpu)
	assert.FileExists(t, mem)

	_, _, err = execute(t, "--runtime-trace", filepath.Join(tmp, "missing", "trace.out"), "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start trace")
}
