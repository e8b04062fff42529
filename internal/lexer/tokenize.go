package lexer

import (
	"cisniff/internal/source"
	"cisniff/internal/token"
)

// Tokenize lexes the whole file and assigns scopes. The returned stream
// covers the content byte for byte and contains no EOF token.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	AssignScopes(toks, opts.Reporter)
	return toks
}
