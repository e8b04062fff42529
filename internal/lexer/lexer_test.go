package lexer_test

import (
	"strings"
	"testing"

	"cisniff/internal/diag"
	"cisniff/internal/lexer"
	"cisniff/internal/source"
	"cisniff/internal/token"
)

// tokenizeString лексит строку и возвращает токены вместе с мешком диагностик
func tokenizeString(input string) ([]token.Token, *diag.Bag) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(input))
	bag := diag.NewBag(0)
	adapter := &lexer.ReporterAdapter{Bag: bag}
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{Reporter: adapter.Reporter()})
	return toks, bag
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func significant(toks []token.Token) []token.Token {
	var out []token.Token
	for _, t := range toks {
		if !token.Insignificant.Has(t.Kind) {
			out = append(out, t)
		}
	}
	return out
}

func expectKinds(t *testing.T, got []token.Token, want ...token.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), kindsOf(got), len(want), want)
	}
	for i := range want {
		if got[i].Kind != want[i] {
			t.Errorf("token %d (%q): got %s, want %s", i, got[i].Text, got[i].Kind, want[i])
		}
	}
}

// Поток должен покрывать исходник байт в байт
func TestTokensCoverInput(t *testing.T) {
	inputs := []string{
		"<?php\n$a = \"x $b\";\n// end\n",
		"<html><?= $x ?>\n</html>",
		"<?php /** doc */ class A { function b() { return 1.5e+3; } }",
		"<?php\n$s = <<<EOT\nhello $name\nEOT;\n",
		"plain text only",
	}
	for _, in := range inputs {
		toks, _ := tokenizeString(in)
		var sb strings.Builder
		var off uint32
		for i, tok := range toks {
			if tok.Span.Start != off {
				t.Fatalf("%q: token %d starts at %d, want %d", in, i, tok.Span.Start, off)
			}
			if tok.Kind == token.EOF {
				t.Fatalf("%q: EOF token inside stream", in)
			}
			off = tok.Span.End
			sb.WriteString(tok.Text)
		}
		if sb.String() != in {
			t.Errorf("reassembled %q, want %q", sb.String(), in)
		}
	}
}

func TestOpenAndCloseTags(t *testing.T) {
	toks, _ := tokenizeString("<p><?php echo 1; ?>\n<?= $x ?>")
	expectKinds(t, toks,
		token.InlineHTML, token.OpenTag, token.Echo, token.Whitespace, token.Number,
		token.Semicolon, token.Whitespace, token.CloseTag, token.OpenTagWithEcho,
		token.Whitespace, token.Variable, token.Whitespace, token.CloseTag)
	if toks[1].Text != "<?php " {
		t.Errorf("open tag text %q, want trailing space included", toks[1].Text)
	}
	if toks[7].Text != "?>\n" {
		t.Errorf("close tag text %q, want newline included", toks[7].Text)
	}
}

func TestComments(t *testing.T) {
	toks, bag := tokenizeString("<?php\n# hash\n// slash ?>x<?php /* block */ /** doc */ /**/")
	var comments []token.Token
	for _, tok := range toks {
		if tok.IsComment() {
			comments = append(comments, tok)
		}
	}
	expectKinds(t, comments, token.Comment, token.Comment, token.Comment, token.DocComment, token.Comment)
	if comments[1].Text != "// slash " {
		t.Errorf("line comment must stop before ?>, got %q", comments[1].Text)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
}

// Строка без интерполяции: ConstantString, с интерполяцией: DoubleQuotedString
func TestStringKinds(t *testing.T) {
	tests := []struct {
		src  string
		want token.Kind
	}{
		{`'single'`, token.ConstantString},
		{`"plain"`, token.ConstantString},
		{`"price $1"`, token.ConstantString},
		{`"escaped \$x"`, token.ConstantString},
		{`"hello $name"`, token.DoubleQuotedString},
		{`"hello {$name}"`, token.DoubleQuotedString},
		{`"hello ${name}"`, token.DoubleQuotedString},
		{`'it\'s'`, token.ConstantString},
	}
	for _, tt := range tests {
		toks, _ := tokenizeString("<?php " + tt.src)
		sig := significant(toks)
		if len(sig) != 2 {
			t.Fatalf("%s: got %v", tt.src, kindsOf(sig))
		}
		if sig[1].Kind != tt.want || sig[1].Text != tt.src {
			t.Errorf("%s: got %s %q, want %s", tt.src, sig[1].Kind, sig[1].Text, tt.want)
		}
	}
}

func TestUnterminatedReports(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{`<?php "abc`, diag.LexUnterminatedString},
		{`<?php 'abc`, diag.LexUnterminatedString},
		{`<?php /* abc`, diag.LexUnterminatedComment},
		{"<?php <<<EOT\nabc\n", diag.LexUnterminatedHeredoc},
		{"<?php }", diag.LexUnmatchedBrace},
		{"<?php {", diag.LexUnclosedBrace},
		{"<?php \x01", diag.LexUnexpectedCharacter},
	}
	for _, tt := range tests {
		_, bag := tokenizeString(tt.src)
		items := bag.Items()
		if len(items) != 1 || items[0].Code != tt.code {
			t.Errorf("%q: got %v, want one %s", tt.src, items, tt.code.ID())
		}
	}
}

func TestKeywordsAndNames(t *testing.T) {
	toks, _ := tokenizeString("<?php $a AND $b; $o->class; A::new(); new class {}; function &list() {} CLASS Foo EXTENDS Bar {}")
	sig := significant(toks)
	expectKinds(t, sig,
		token.OpenTag, token.Variable, token.LogicalAnd, token.Variable, token.Semicolon,
		token.Variable, token.ObjectOperator, token.String, token.Semicolon,
		token.String, token.DoubleColon, token.String, token.OpenParen, token.CloseParen, token.Semicolon,
		token.New, token.AnonClass, token.OpenCurly, token.CloseCurly, token.Semicolon,
		token.Function, token.BitwiseAnd, token.String, token.OpenParen, token.CloseParen, token.OpenCurly, token.CloseCurly,
		token.Class, token.String, token.Extends, token.String, token.OpenCurly, token.CloseCurly)
}

func TestOperatorsLongestMatch(t *testing.T) {
	toks, _ := tokenizeString("<?php && || ! :: -> ?-> => === & | ^ \\")
	sig := significant(toks)
	expectKinds(t, sig,
		token.OpenTag, token.BooleanAnd, token.BooleanOr, token.BooleanNot, token.DoubleColon,
		token.ObjectOperator, token.ObjectOperator, token.DoubleArrow, token.Operator,
		token.BitwiseAnd, token.BitwiseOr, token.BitwiseXor, token.NsSeparator)
}

func TestHeredoc(t *testing.T) {
	src := "<?php\n$x = <<<'EOT'\n  body EOTX\n  EOT;\n"
	toks, bag := tokenizeString(src)
	var doc *token.Token
	for i := range toks {
		if toks[i].Kind == token.Heredoc {
			doc = &toks[i]
		}
	}
	if doc == nil {
		t.Fatalf("no heredoc in %v", kindsOf(toks))
	}
	if !strings.HasSuffix(doc.Text, "  EOT") {
		t.Errorf("heredoc must end at closing label, got %q", doc.Text)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestBacktick(t *testing.T) {
	toks, bag := tokenizeString("<?php $out = `ls -la \\` x`;")
	var shell []token.Token
	for _, tok := range toks {
		if tok.Kind == token.Backtick {
			shell = append(shell, tok)
		}
	}
	if len(shell) != 1 || shell[0].Text != "`ls -la \\` x`" {
		t.Fatalf("backtick tokens = %v (kinds %v)", shell, kindsOf(toks))
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}

	// незакрытый литерал
	toks, bag = tokenizeString("<?php `ls")
	if last := toks[len(toks)-1]; last.Kind != token.Invalid {
		t.Errorf("unterminated backtick kind = %s", last.Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("diagnostics = %v", bag.Items())
	}
}
