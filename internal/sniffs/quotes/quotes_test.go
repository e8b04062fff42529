package quotes_test

import (
	"testing"

	"cisniff/internal/diag"
	"cisniff/internal/lexer"
	"cisniff/internal/sniff"
	"cisniff/internal/sniffs/quotes"
	"cisniff/internal/source"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		raw   string
		found bool
		code  diag.Code
		sev   diag.Severity
	}{
		{`"plain text"`, true, diag.StyDoubleQuoteNotNeeded, diag.SevError},
		{`"it's fine"`, false, 0, 0},
		{`'it\'s fine'`, true, diag.StyDoubleQuoteAllowed, diag.SevWarning},
		{`'say "hi" it\'s'`, false, 0, 0},
		{`'plain'`, false, 0, 0},
		{`"has $var"`, false, 0, 0},
		{`"has ${var}"`, false, 0, 0},
		{`"escaped \$var"`, true, diag.StyDoubleQuoteNotNeeded, diag.SevError},
		{`"it's \"quoted\""`, true, diag.StyMixedQuotesNoVariable, diag.SevWarning},
		{`"it's \"$x\""`, false, 0, 0},
		{`"\n"`, true, diag.StyDoubleQuoteNotNeeded, diag.SevError},
		{`""`, true, diag.StyDoubleQuoteNotNeeded, diag.SevError},
		{`"`, false, 0, 0},
	}
	for _, tt := range tests {
		fd, ok := quotes.Classify(tt.raw)
		if ok != tt.found {
			t.Errorf("Classify(%s) found = %v, want %v", tt.raw, ok, tt.found)
			continue
		}
		if ok && (fd.Code != tt.code || fd.Severity != tt.sev) {
			t.Errorf("Classify(%s) = %s %s, want %s %s", tt.raw, fd.Severity, fd.Code.ID(), tt.sev, tt.code.ID())
		}
	}
}

func TestUnbraced(t *testing.T) {
	tests := []struct {
		raw    string
		found  bool
		offset int
	}{
		{`"has $unbraced"`, true, 5},
		{`"has ${braced}"`, false, 0},
		{`"${a} then $b"`, true, 11},
		{`"{$curly}"`, true, 2},
		{`'$single'`, false, 0},
		{`"\$escaped"`, false, 0},
	}
	for _, tt := range tests {
		off, ok := quotes.Unbraced(tt.raw)
		if ok != tt.found || (ok && off != tt.offset) {
			t.Errorf("Unbraced(%s) = %d, %v; want %d, %v", tt.raw, off, ok, tt.offset, tt.found)
		}
	}
}

func check(rules []sniff.Rule, src string) []diag.Diagnostic {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.php", []byte(src))
	f := fs.Get(id)
	bag := diag.NewBag(0)
	sniff.NewDispatcher(rules).Run(f, lexer.Tokenize(f, lexer.Options{}), diag.BagReporter{Bag: bag})
	return bag.Items()
}

func TestRulesOnTokens(t *testing.T) {
	src := `<?php
$a = "plain";
$b = 'it\'s';
$c = "one $x and $y";
$d = "ok ${x}";
`
	got := check([]sniff.Rule{quotes.DoubleQuoteUsage{}, quotes.VariableUsage{}}, src)

	counts := map[diag.Code]int{}
	for _, d := range got {
		counts[d.Code]++
		if d.Token < 0 {
			t.Errorf("diagnostic without anchor: %+v", d)
		}
	}
	if counts[diag.StyDoubleQuoteNotNeeded] != 1 {
		t.Errorf("double-quote errors = %d", counts[diag.StyDoubleQuoteNotNeeded])
	}
	if counts[diag.StyDoubleQuoteAllowed] != 1 {
		t.Errorf("double-quote warnings = %d", counts[diag.StyDoubleQuoteAllowed])
	}
	// одна ошибка на строку, даже если переменных две
	if counts[diag.StyUnbracedVariable] != 1 {
		t.Errorf("unbraced errors = %d", counts[diag.StyUnbracedVariable])
	}
	if len(got) != 3 {
		t.Errorf("total = %d: %+v", len(got), got)
	}
}
