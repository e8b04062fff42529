package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"cisniff/internal/source"
	"cisniff/internal/token"
)

type TokenOutput struct {
	Index  int         `json:"index"`
	Kind   string      `json:"kind"`
	Text   string      `json:"text,omitempty"`
	Span   source.Span `json:"span"`
	Opener *int        `json:"scope_opener,omitempty"`
	Closer *int        `json:"scope_closer,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%4d: %-20s %q at %d:%d-%d:%d", i, tok.Kind.String(), tok.Text,
			startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if tok.HasScope() {
			fmt.Fprintf(w, " scope=%d..%d", tok.ScopeOpener, tok.ScopeCloser)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for i, tok := range tokens {
		out := TokenOutput{
			Index: i,
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Span:  tok.Span,
		}
		if tok.HasScope() {
			opener, closer := tok.ScopeOpener, tok.ScopeCloser
			out.Opener, out.Closer = &opener, &closer
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
