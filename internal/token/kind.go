package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks malformed input (e.g. an unterminated string).
	Invalid Kind = iota
	// EOF is returned by the lexer after the last token; it never appears in a stream.
	EOF

	InlineHTML      // text outside of PHP tags
	OpenTag         // <?php, <?
	OpenTagWithEcho // <?=
	CloseTag        // ?>
	Whitespace
	Comment    // #, //, /* */
	DocComment // /** */

	ConstantString     // '...' or "..." without interpolation
	DoubleQuotedString // "..." with at least one interpolation marker
	Heredoc            // <<<ID ... ID
	Backtick           // `...` shell-exec literal
	Variable           // $name
	String             // bare identifier
	Number

	// keywords
	Abstract
	As
	Case
	Catch
	Class
	AnonClass // class following new
	Const
	Echo
	Else
	Elseif
	Extends
	Final
	For
	Foreach
	Function
	If
	Implements
	Instanceof
	Interface
	Namespace
	New
	Private
	Protected
	Public
	Return
	Static
	Switch
	Throw
	Trait
	Try
	Use
	Var
	While

	LogicalAnd // and
	LogicalOr  // or
	LogicalXor // xor
	BooleanAnd // &&
	BooleanOr  // ||
	BooleanNot // !

	DoubleColon    // ::
	ObjectOperator // -> ?->
	NsSeparator    // \
	DoubleArrow    // =>

	OpenCurly   // {
	CloseCurly  // }
	OpenParen   // (
	CloseParen  // )
	OpenSquare  // [
	CloseSquare // ]
	Semicolon
	Comma
	Equal // =
	Dot
	BitwiseAnd // &
	BitwiseOr  // |
	BitwiseXor // ^
	Operator   // any other operator

	kindCount
)

var kindNames = [...]string{
	Invalid:            "Invalid",
	EOF:                "EOF",
	InlineHTML:         "InlineHTML",
	OpenTag:            "OpenTag",
	OpenTagWithEcho:    "OpenTagWithEcho",
	CloseTag:           "CloseTag",
	Whitespace:         "Whitespace",
	Comment:            "Comment",
	DocComment:         "DocComment",
	ConstantString:     "ConstantString",
	DoubleQuotedString: "DoubleQuotedString",
	Heredoc:            "Heredoc",
	Backtick:           "Backtick",
	Variable:           "Variable",
	String:             "String",
	Number:             "Number",
	Abstract:           "Abstract",
	As:                 "As",
	Case:               "Case",
	Catch:              "Catch",
	Class:              "Class",
	AnonClass:          "AnonClass",
	Const:              "Const",
	Echo:               "Echo",
	Else:               "Else",
	Elseif:             "Elseif",
	Extends:            "Extends",
	Final:              "Final",
	For:                "For",
	Foreach:            "Foreach",
	Function:           "Function",
	If:                 "If",
	Implements:         "Implements",
	Instanceof:         "Instanceof",
	Interface:          "Interface",
	Namespace:          "Namespace",
	New:                "New",
	Private:            "Private",
	Protected:          "Protected",
	Public:             "Public",
	Return:             "Return",
	Static:             "Static",
	Switch:             "Switch",
	Throw:              "Throw",
	Trait:              "Trait",
	Try:                "Try",
	Use:                "Use",
	Var:                "Var",
	While:              "While",
	LogicalAnd:         "LogicalAnd",
	LogicalOr:          "LogicalOr",
	LogicalXor:         "LogicalXor",
	BooleanAnd:         "BooleanAnd",
	BooleanOr:          "BooleanOr",
	BooleanNot:         "BooleanNot",
	DoubleColon:        "DoubleColon",
	ObjectOperator:     "ObjectOperator",
	NsSeparator:        "NsSeparator",
	DoubleArrow:        "DoubleArrow",
	OpenCurly:          "OpenCurly",
	CloseCurly:         "CloseCurly",
	OpenParen:          "OpenParen",
	CloseParen:         "CloseParen",
	OpenSquare:         "OpenSquare",
	CloseSquare:        "CloseSquare",
	Semicolon:          "Semicolon",
	Comma:              "Comma",
	Equal:              "Equal",
	Dot:                "Dot",
	BitwiseAnd:         "BitwiseAnd",
	BitwiseOr:          "BitwiseOr",
	BitwiseXor:         "BitwiseXor",
	Operator:           "Operator",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
