// Package token defines the lexical token model consumed by sniffs.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace and comments are regular tokens of the stream; there is no
//     trivia side channel, so rules can walk over them by index.
//   - ScopeOpener/ScopeCloser are -1 for tokens without a body. For scope-bearing
//     tokens they are indices of the matching '{' and '}' and spans are well-nested.
//   - There is no EOF token in a file's stream; the last token is the last
//     lexeme of the source.
package token
