package lexer

import (
	"cisniff/internal/diag"
	"cisniff/internal/token"
)

// AssignScopes pairs curly braces and links every scope owner (class,
// interface, trait, function) to its body. Both braces of a pair get
// ScopeOpener/ScopeCloser pointing at each other; an owner whose
// declaration ends with ";" before any "{" keeps NoScope.
func AssignScopes(toks []token.Token, rep diag.Reporter) {
	closerOf := make(map[int]int)
	var stack []int
	for i := range toks {
		switch toks[i].Kind {
		case token.OpenCurly:
			stack = append(stack, i)
		case token.CloseCurly:
			if len(stack) == 0 {
				report(rep, diag.LexUnmatchedBrace, toks[i], "unmatched closing brace")
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			closerOf[open] = i
			toks[open].ScopeOpener, toks[open].ScopeCloser = open, i
			toks[i].ScopeOpener, toks[i].ScopeCloser = open, i
		}
	}
	for _, open := range stack {
		report(rep, diag.LexUnclosedBrace, toks[open], "unclosed brace")
	}

	for i := range toks {
		if !token.ScopeOwners.Has(toks[i].Kind) {
			continue
		}
		open := findBody(toks, i)
		if open < 0 {
			continue
		}
		if closer, ok := closerOf[open]; ok {
			toks[i].ScopeOpener, toks[i].ScopeCloser = open, closer
		}
	}
}

// findBody returns the index of the "{" that opens the body of the owner at
// i, or -1 when the declaration has none.
func findBody(toks []token.Token, owner int) int {
	depth := 0
	for j := owner + 1; j < len(toks); j++ {
		switch toks[j].Kind {
		case token.OpenParen, token.OpenSquare:
			depth++
		case token.CloseParen, token.CloseSquare:
			if depth > 0 {
				depth--
			}
		case token.OpenCurly:
			if depth == 0 {
				return j
			}
		case token.Semicolon, token.CloseCurly, token.CloseTag:
			if depth == 0 {
				return -1
			}
		}
	}
	return -1
}

func report(rep diag.Reporter, code diag.Code, tok token.Token, msg string) {
	if rep != nil {
		rep.Report(diag.NewError(code, tok.Span, msg))
	}
}
