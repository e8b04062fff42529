package diag

import (
	"testing"

	"cisniff/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")
	file := fs.Add("/workspace/application/models/User.php", []byte("<?php\n$a = \"x\";\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     StyDoubleQuoteAllowed,
			Message:  "later",
			Primary:  source.Span{File: file, Start: 11, End: 14},
		},
		{
			Severity: SevError,
			Code:     StyDoubleQuoteNotNeeded,
			Rule:     "Strings.DoubleQuoteUsage",
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: 6, End: 8},
			Notes:    []Note{{Span: source.Span{File: file, Start: 0, End: 5}, Msg: "open tag"}},
		},
	}

	got := FormatShortDiagnostics(diags, fs, true)
	want := "note STY2101 application/models/User.php:1:1 open tag\n" +
		"error STY2101 application/models/User.php:2:1 [Strings.DoubleQuoteUsage] first line second\n" +
		"warning STY2103 application/models/User.php:2:6 later"
	if got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}

	if FormatShortDiagnostics(nil, fs, false) != "" {
		t.Error("expected empty output for no diagnostics")
	}
}
