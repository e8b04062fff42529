package lexer

import (
	"cisniff/internal/diag"
	"cisniff/internal/token"
)

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

// scanLineComment reads "#..." or "//..." up to, but not including, the
// newline or a closing "?>".
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '\n' || lx.cursor.HasPrefix("?>") {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Comment, start)
}

// scanBlockComment reads "/* ... */". "/**" followed by whitespace is a
// doc comment; "/**/" is an ordinary one.
func (lx *Lexer) scanBlockComment() token.Token {
	start := lx.cursor.Mark()
	kind := token.Comment
	if lx.cursor.PeekAt(2) == '*' && isSpace(lx.cursor.PeekAt(3)) {
		kind = token.DocComment
	}
	lx.cursor.Advance(2)
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("*/") {
			lx.cursor.Advance(2)
			return lx.emit(kind, start)
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(kind, start)
	lx.errLex(diag.LexUnterminatedComment, tok.Span, "unterminated block comment")
	return tok
}
