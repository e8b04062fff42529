package lexer

import "cisniff/internal/token"

type operator struct {
	text string
	kind token.Kind
}

// Жадность: сначала длинные операторы, затем короткие.
var operators = [...]operator{
	{"<<=", token.Operator},
	{">>=", token.Operator},
	{"**=", token.Operator},
	{"===", token.Operator},
	{"!==", token.Operator},
	{"<=>", token.Operator},
	{"??=", token.Operator},
	{"...", token.Operator},
	{"?->", token.ObjectOperator},
	{"::", token.DoubleColon},
	{"->", token.ObjectOperator},
	{"=>", token.DoubleArrow},
	{"&&", token.BooleanAnd},
	{"||", token.BooleanOr},
	{"==", token.Operator},
	{"!=", token.Operator},
	{"<>", token.Operator},
	{"<=", token.Operator},
	{">=", token.Operator},
	{"<<", token.Operator},
	{">>", token.Operator},
	{"++", token.Operator},
	{"--", token.Operator},
	{"+=", token.Operator},
	{"-=", token.Operator},
	{"*=", token.Operator},
	{"/=", token.Operator},
	{".=", token.Operator},
	{"%=", token.Operator},
	{"&=", token.Operator},
	{"|=", token.Operator},
	{"^=", token.Operator},
	{"**", token.Operator},
	{"??", token.Operator},
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	for _, op := range operators {
		if lx.cursor.HasPrefix(op.text) {
			lx.cursor.Advance(uint32(len(op.text)))
			return lx.emit(op.kind, start)
		}
	}

	// односимвольные
	switch lx.cursor.Bump() {
	case '{':
		return lx.emit(token.OpenCurly, start)
	case '}':
		return lx.emit(token.CloseCurly, start)
	case '(':
		return lx.emit(token.OpenParen, start)
	case ')':
		return lx.emit(token.CloseParen, start)
	case '[':
		return lx.emit(token.OpenSquare, start)
	case ']':
		return lx.emit(token.CloseSquare, start)
	case ';':
		return lx.emit(token.Semicolon, start)
	case ',':
		return lx.emit(token.Comma, start)
	case '=':
		return lx.emit(token.Equal, start)
	case '.':
		return lx.emit(token.Dot, start)
	case '&':
		return lx.emit(token.BitwiseAnd, start)
	case '|':
		return lx.emit(token.BitwiseOr, start)
	case '^':
		return lx.emit(token.BitwiseXor, start)
	case '!':
		return lx.emit(token.BooleanNot, start)
	case '\\':
		return lx.emit(token.NsSeparator, start)
	default:
		// + - * / % < > ? : @ ~ $ и прочее
		return lx.emit(token.Operator, start)
	}
}
