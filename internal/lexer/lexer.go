package lexer

import (
	"cisniff/internal/source"
	"cisniff/internal/token"
)

// Lexer splits a PHP source file into tokens. Unlike a compiler lexer it
// keeps whitespace and comments in the stream: style rules need them.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	inPHP  bool       // внутри <?php ... ?>
	prev   token.Kind // последний значимый токен
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		prev:   token.Invalid,
	}
}

// Next возвращает следующий токен, включая пробелы и комментарии.
// После конца файла всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.Token{
			Kind:        token.EOF,
			Span:        lx.emptySpan(),
			ScopeOpener: token.NoScope,
			ScopeCloser: token.NoScope,
		}
	}

	var tok token.Token
	if !lx.inPHP {
		tok = lx.scanOutsidePHP()
	} else {
		tok = lx.scanPHP()
	}

	switch {
	case token.Insignificant.Has(tok.Kind):
	case tok.Kind == token.BitwiseAnd && lx.prev == token.Function:
		// function &name(): имя всё ещё впереди
	default:
		lx.prev = tok.Kind
	}
	return tok
}

func (lx *Lexer) scanPHP() token.Token {
	ch := lx.cursor.Peek()
	b0, b1, _ := lx.cursor.Peek2()

	switch {
	case isSpace(ch):
		return lx.scanWhitespace()
	case ch == '#':
		return lx.scanLineComment()
	case b0 == '/' && b1 == '/':
		return lx.scanLineComment()
	case b0 == '/' && b1 == '*':
		return lx.scanBlockComment()
	case b0 == '?' && b1 == '>':
		return lx.scanCloseTag()
	case ch == '\'':
		return lx.scanSingleQuoted()
	case ch == '"':
		return lx.scanDoubleQuoted()
	case ch == '`':
		return lx.scanBacktick()
	case lx.cursor.HasPrefix("<<<"):
		if tok, ok := lx.scanHeredoc(); ok {
			return tok
		}
		return lx.scanOperatorOrPunct()
	case ch == '$' && isIdentStartByte(b1):
		return lx.scanVariable()
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && isDec(b1):
		return lx.scanNumber()
	case ch < ' ':
		return lx.scanControl()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind:        k,
		Span:        sp,
		Text:        string(lx.file.Content[sp.Start:sp.End]),
		ScopeOpener: token.NoScope,
		ScopeCloser: token.NoScope,
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
