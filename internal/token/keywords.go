package token

import "strings"

var keywords = map[string]Kind{
	"abstract":   Abstract,
	"and":        LogicalAnd,
	"as":         As,
	"case":       Case,
	"catch":      Catch,
	"class":      Class,
	"const":      Const,
	"echo":       Echo,
	"else":       Else,
	"elseif":     Elseif,
	"extends":    Extends,
	"final":      Final,
	"for":        For,
	"foreach":    Foreach,
	"function":   Function,
	"if":         If,
	"implements": Implements,
	"instanceof": Instanceof,
	"interface":  Interface,
	"namespace":  Namespace,
	"new":        New,
	"or":         LogicalOr,
	"private":    Private,
	"protected":  Protected,
	"public":     Public,
	"return":     Return,
	"static":     Static,
	"switch":     Switch,
	"throw":      Throw,
	"trait":      Trait,
	"try":        Try,
	"use":        Use,
	"var":        Var,
	"while":      While,
	"xor":        LogicalXor,
}

// LookupKeyword returns the keyword kind for ident. PHP keywords are
// case-insensitive, so "AND" and "And" both map to LogicalAnd.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[strings.ToLower(ident)]
	return k, ok
}
