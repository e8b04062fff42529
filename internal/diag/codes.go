package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnterminatedString  Code = 1001
	LexUnterminatedComment Code = 1002
	LexUnmatchedBrace      Code = 1003
	LexUnclosedBrace       Code = 1004
	LexUnterminatedHeredoc Code = 1005
	LexUnexpectedCharacter Code = 1006

	// Style rules
	StyInfo                    Code = 2000
	StyMissingClosingFile      Code = 2001
	StyMissingClosingLocation  Code = 2002
	StyDoubleQuoteNotNeeded    Code = 2101
	StyMixedQuotesNoVariable   Code = 2102
	StyDoubleQuoteAllowed      Code = 2103
	StyUnbracedVariable        Code = 2104
	StyModernConstructor       Code = 2201
	StyModernParentConstructor Code = 2202
	StySymbolicLogicalOperator Code = 2301
	StyLowercaseLogicalOp      Code = 2302
	StyRuleFailure             Code = 2900

	// Configuration
	CfgInfo            Code = 3000
	CfgAppRootNotFound Code = 3001
	CfgInvalidOption   Code = 3002

	// I/O
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                "Unknown error",
	LexInfo:                    "Lexical information",
	LexUnterminatedString:      "Unterminated string literal",
	LexUnterminatedComment:     "Unterminated block comment",
	LexUnmatchedBrace:          "Closing brace without opener",
	LexUnclosedBrace:           "Opening brace is never closed",
	LexUnterminatedHeredoc:     "Unterminated heredoc",
	LexUnexpectedCharacter:     "Unexpected character",
	StyInfo:                    "Style information",
	StyMissingClosingFile:      "Missing end of file comment",
	StyMissingClosingLocation:  "Missing location comment",
	StyDoubleQuoteNotNeeded:    "Double quotes without variables or single quotes",
	StyMixedQuotesNoVariable:   "Mixed quotes without variables",
	StyDoubleQuoteAllowed:      "Double quotes would avoid escaping",
	StyUnbracedVariable:        "Variable in string without braces",
	StyModernConstructor:       "PHP5 style constructor",
	StyModernParentConstructor: "PHP5 style parent constructor call",
	StySymbolicLogicalOperator: "Symbolic logical operator",
	StyLowercaseLogicalOp:      "Logical operator not in upper case",
	StyRuleFailure:             "Rule failed while processing the file",
	CfgInfo:                    "Configuration information",
	CfgAppRootNotFound:         "Application root not found in file path",
	CfgInvalidOption:           "Invalid rule option",
	IOInfo:                     "I/O information",
	IOLoadFileError:            "Failed to load file",
	IOCacheError:               "Result cache failure",
}

// ID returns the stable identifier, e.g. "STY2104".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("STY%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
