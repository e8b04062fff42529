package lexer

import (
	"fmt"

	"cisniff/internal/diag"
	"cisniff/internal/token"
)

// scanOutsidePHP читает либо открывающий тег, либо HTML до следующего "<?".
func (lx *Lexer) scanOutsidePHP() token.Token {
	if tok, ok := lx.scanOpenTag(); ok {
		return tok
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("<?") {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.InlineHTML, start)
}

// scanOpenTag recognises "<?php" (with one trailing whitespace byte),
// "<?=" and the short "<?".
func (lx *Lexer) scanOpenTag() (token.Token, bool) {
	start := lx.cursor.Mark()
	switch {
	case lx.cursor.HasPrefixFold("<?php"):
		after := lx.cursor.PeekAt(5)
		if after != 0 && !isSpace(after) {
			// "<?phpx" is a short tag followed by an identifier
			lx.cursor.Advance(2)
			break
		}
		lx.cursor.Advance(5)
		if isSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	case lx.cursor.HasPrefix("<?="):
		lx.cursor.Advance(3)
		lx.inPHP = true
		return lx.emit(token.OpenTagWithEcho, start), true
	case lx.cursor.HasPrefix("<?"):
		lx.cursor.Advance(2)
	default:
		return token.Token{}, false
	}
	lx.inPHP = true
	return lx.emit(token.OpenTag, start), true
}

// scanCloseTag consumes "?>" and a single newline right after it.
func (lx *Lexer) scanCloseTag() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Advance(2)
	lx.cursor.Eat('\n')
	lx.inPHP = false
	return lx.emit(token.CloseTag, start)
}

// scanControl превращает управляющий байт в Invalid токен.
func (lx *Lexer) scanControl() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnexpectedCharacter, tok.Span, fmt.Sprintf("unexpected control character 0x%02x", b))
	return tok
}
