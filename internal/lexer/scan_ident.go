package lexer

import "cisniff/internal/token"

// nameContext reports whether the previous significant token forces the
// next identifier to be a plain name: $obj->class, Foo::new, function list().
func (lx *Lexer) nameContext() bool {
	switch lx.prev {
	case token.DoubleColon, token.ObjectOperator, token.Function, token.Const:
		return true
	}
	return false
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.String, start)
	if lx.nameContext() {
		return tok
	}
	if k, ok := token.LookupKeyword(tok.Text); ok {
		if k == token.Class && lx.prev == token.New {
			k = token.AnonClass
		}
		tok.Kind = k
	}
	return tok
}

func (lx *Lexer) scanVariable() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // $
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Variable, start)
}
