package lexer

import "cisniff/internal/token"

// scanNumber is deliberately loose: decimal, hex, octal, binary, floats and
// "_" separators all end up as one Number token. Rules never inspect them.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	seenDot := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b) || b == '_':
			lx.cursor.Bump()
		case (b == 'e' || b == 'E') && (lx.cursor.PeekAt(1) == '+' || lx.cursor.PeekAt(1) == '-') && isDec(lx.cursor.PeekAt(2)):
			lx.cursor.Advance(2)
		case isIdentStartByte(b) && b < 0x80:
			lx.cursor.Bump() // 0x1f, 0b10, 1e5
		case b == '.' && !seenDot && isDec(lx.cursor.PeekAt(1)):
			seenDot = true
			lx.cursor.Bump()
		case b == '.' && !seenDot && lx.cursor.Off > uint32(start) && lx.cursor.PeekAt(1) != '.':
			seenDot = true // "1." is a float
			lx.cursor.Bump()
		default:
			return lx.emit(token.Number, start)
		}
	}
	return lx.emit(token.Number, start)
}
