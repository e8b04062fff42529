package files_test

import (
	"strings"
	"testing"

	"cisniff/internal/diag"
	"cisniff/internal/lexer"
	"cisniff/internal/sniff"
	"cisniff/internal/sniffs/files"
	"cisniff/internal/source"
	"cisniff/internal/token"
	"cisniff/internal/view"
)

func lex(path, src string) (*source.File, []token.Token) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte(src))
	f := fs.Get(id)
	return f, lexer.Tokenize(f, lexer.Options{})
}

func run(rule sniff.Rule, path, src string) []diag.Diagnostic {
	f, toks := lex(path, src)
	bag := diag.NewBag(0)
	sniff.NewDispatcher([]sniff.Rule{rule}).Run(f, toks, diag.BagReporter{Bag: bag})
	return bag.Items()
}

func TestTrailingComment(t *testing.T) {
	const want = "End of file a.php"
	tests := []struct {
		name  string
		src   string
		found bool
		stop  string // текст токена, где остановился обход
	}{
		{"last comment", "<?php\necho 1;\n// End of file a.php\n", true, "// End of file a.php"},
		{"other comments below", "<?php\necho 1;\n/* End of file a.php */\n# more\n/** doc */\n\n", true, "/* End of file a.php */"},
		{"wrong content", "<?php\necho 1;\n// End of file b.php\n", false, ";"},
		{"case sensitive", "<?php\necho 1;\n// end of file a.php\n", false, ";"},
		{"comment before code", "<?php\n// End of file a.php\necho 1;\n", false, ";"},
		{"stops at close tag", "<?php\necho 1;\n?>\n", false, "?>\n"},
	}
	for _, tt := range tests {
		_, toks := lex("a.php", tt.src)
		v := view.New(toks)
		found, stop := files.TrailingComment(v, want)
		if found != tt.found {
			t.Errorf("%s: found = %v", tt.name, found)
			continue
		}
		if stop < 0 || v.At(stop).Text != tt.stop {
			t.Errorf("%s: stopped at %d", tt.name, stop)
		}
	}
}

func TestTrailingCommentOnlyTrivia(t *testing.T) {
	v := view.New([]token.Token{
		{Kind: token.Whitespace, Text: "\n"},
		{Kind: token.Comment, Text: "// x"},
	})
	if found, stop := files.TrailingComment(v, "y"); found || stop != -1 {
		t.Errorf("got %v %d, want false -1", found, stop)
	}
	if found, stop := files.TrailingComment(view.New(nil), "y"); found || stop != -1 {
		t.Errorf("empty stream: got %v %d", found, stop)
	}
}

func TestLocationPath(t *testing.T) {
	tests := []struct {
		path, root string
		want       string
		ok         bool
	}{
		{"/project/application/controllers/Foo.php", "/application/", "./controllers/Foo.php", true},
		{"/project/application/Foo.php", "/application", "./Foo.php", true},
		{"/project/app/./x.php", "/app/", "./x.php", true},
		{"/project/src/Foo.php", "/application/", "", false},
		{"/project/src/Foo.php", "", "", false},
	}
	for _, tt := range tests {
		got, ok := files.LocationPath(tt.path, tt.root)
		if ok != tt.ok || got != tt.want {
			t.Errorf("LocationPath(%q, %q) = %q, %v; want %q, %v", tt.path, tt.root, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClosingFileComment(t *testing.T) {
	ok := run(files.ClosingFileComment{}, "/p/Foo.php", "<?php\nclass Foo {}\n\n/* End of file Foo.php */\n")
	if len(ok) != 0 {
		t.Errorf("unexpected: %v", ok)
	}

	got := run(files.ClosingFileComment{}, "/p/Foo.php", "<?php\nclass Foo {}\n// End of file Bar.php\n")
	if len(got) != 1 {
		t.Fatalf("want one diagnostic, got %v", got)
	}
	d := got[0]
	if d.Code != diag.StyMissingClosingFile || d.Rule != "Files.ClosingFileComment" {
		t.Errorf("diagnostic = %+v", d)
	}
	wantMsg := `No comment block marks the end of file instead of the closing PHP tag. Please add a comment block containing only "End of file Foo.php".`
	if d.Message != wantMsg {
		t.Errorf("message = %q", d.Message)
	}
	if len(d.Notes) != 1 || !strings.Contains(d.Notes[0].Msg, "End of file Bar.php") {
		t.Errorf("notes = %+v", d.Notes)
	}
}

// Несколько блоков PHP: одно сообщение
func TestOnlyFirstOpenTag(t *testing.T) {
	src := "<?php echo 1; ?>\n<p>x</p>\n<?php echo 2; ?>\n<?php echo 3;\n"
	got := run(files.ClosingFileComment{}, "/p/v.php", src)
	if len(got) != 1 {
		t.Errorf("want exactly one diagnostic, got %d", len(got))
	}
}

func TestWholeFileIsComments(t *testing.T) {
	// открывающий тег: не комментарий, так что обход остановится на нём
	got := run(files.ClosingFileComment{}, "/p/c.php", "<?php\n// nothing here\n")
	if len(got) != 1 || got[0].Token != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestClosingLocationComment(t *testing.T) {
	const path = "/project/application/controllers/Foo.php"
	rule := files.NewClosingLocationComment()

	pass := run(rule, path, "<?php\nclass Foo {}\n// Location: ./controllers/Foo.php\n")
	if len(pass) != 0 {
		t.Errorf("unexpected: %v", pass)
	}

	fail := run(rule, path, "<?php\nclass Foo {}\n// Location: ./Foo.php\n")
	if len(fail) != 1 || fail[0].Code != diag.StyMissingClosingLocation {
		t.Fatalf("got %+v", fail)
	}
	if !strings.Contains(fail[0].Message, `"Location: ./controllers/Foo.php"`) {
		t.Errorf("message = %q", fail[0].Message)
	}
}

func TestClosingLocationAppRootMissing(t *testing.T) {
	rule := files.NewClosingLocationComment()
	got := run(rule, "/project/src/Foo.php", "<?php\necho 1;\n")
	if len(got) != 1 {
		t.Fatalf("got %+v", got)
	}
	d := got[0]
	if d.Code != diag.CfgAppRootNotFound {
		t.Errorf("code = %s", d.Code.ID())
	}
	want := `Unable to find "/application/" in file path "/project/src/Foo.php". Please set the app_root option of Files.ClosingLocationComment.`
	if d.Message != want {
		t.Errorf("message = %q", d.Message)
	}
	// якорь: последний токен файла
	_, toks := lex("/project/src/Foo.php", "<?php\necho 1;\n")
	if d.Token != len(toks)-1 {
		t.Errorf("anchor = %d, want %d", d.Token, len(toks)-1)
	}
}

func TestClosingLocationConfigure(t *testing.T) {
	rule := files.NewClosingLocationComment()
	if err := rule.Configure(map[string]string{"app_root": "/src/"}); err != nil {
		t.Fatal(err)
	}
	got := run(rule, "/project/src/models/User.php", "<?php\n// Location: ./models/User.php\n")
	if len(got) != 0 {
		t.Errorf("unexpected: %v", got)
	}
	if err := rule.Configure(map[string]string{"app_root": " "}); err == nil {
		t.Error("empty app_root must be rejected")
	}
	if err := rule.Configure(map[string]string{"root": "/x/"}); err == nil {
		t.Error("unknown option must be rejected")
	}
}
