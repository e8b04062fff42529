package lexer

import (
	"cisniff/internal/diag"
	"cisniff/internal/token"
)

// scanSingleQuoted reads '...'; only \\ and \' are escapes, but skipping any
// escaped byte is enough to find the end.
func (lx *Lexer) scanSingleQuoted() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '\\':
			lx.cursor.Bump()
		case '\'':
			return lx.emit(token.ConstantString, start)
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanDoubleQuoted reads "...". A literal with an interpolation marker
// ($name, ${ or {$) becomes DoubleQuotedString, one without stays
// ConstantString, the same split the PHP tokenizer makes.
func (lx *Lexer) scanDoubleQuoted() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // "
	interpolated := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		switch b {
		case '\\':
			lx.cursor.Bump()
		case '"':
			if interpolated {
				return lx.emit(token.DoubleQuotedString, start)
			}
			return lx.emit(token.ConstantString, start)
		case '$':
			if next := lx.cursor.Peek(); next == '{' || isIdentStartByte(next) {
				interpolated = true
			}
		case '{':
			if lx.cursor.Peek() == '$' {
				interpolated = true
			}
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanBacktick reads a shell-exec literal `...`. Quote rules do not
// register Backtick.
func (lx *Lexer) scanBacktick() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '\\':
			lx.cursor.Bump()
		case '`':
			return lx.emit(token.Backtick, start)
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated backtick literal")
	return tok
}

// scanHeredoc reads <<<ID, <<<"ID" or <<<'ID' up to the closing label.
// ok is false when the input after <<< is not a heredoc header.
func (lx *Lexer) scanHeredoc() (tok token.Token, ok bool) {
	start := lx.cursor.Mark()
	lx.cursor.Advance(3)
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}
	quote := lx.cursor.Peek()
	if quote == '"' || quote == '\'' {
		lx.cursor.Bump()
	} else {
		quote = 0
	}
	labelStart := lx.cursor.Off
	if !isIdentStartByte(lx.cursor.Peek()) {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	label := string(lx.file.Content[labelStart:lx.cursor.Off])
	if quote != 0 && !lx.cursor.Eat(quote) {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	if !lx.cursor.Eat('\n') {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}

	// тело: ищем строку, которая (после отступа) начинается с метки
	for !lx.cursor.EOF() {
		for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
			lx.cursor.Bump()
		}
		if lx.cursor.HasPrefix(label) && !isIdentContinueByte(lx.cursor.PeekAt(uint32(len(label)))) {
			lx.cursor.Advance(uint32(len(label)))
			return lx.emit(token.Heredoc, start), true
		}
		for !lx.cursor.EOF() && lx.cursor.Bump() != '\n' {
		}
	}
	tok = lx.emit(token.Heredoc, start)
	lx.errLex(diag.LexUnterminatedHeredoc, tok.Span, "unterminated heredoc, missing closing label "+label)
	return tok, true
}
