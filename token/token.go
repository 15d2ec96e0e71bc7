package token

type TokenType int

const (
	// Literals
	Illegal TokenType = iota
	EOF
	Identifier
	Number
	String
	TemplateLiteral
	RegExp

	// LineTerminator is a first-class token: automatic semicolon insertion
	// and the arrow-function restriction need to observe line breaks, so
	// the lexer must not fold them into whitespace.
	LineTerminator

	// Operators
	Plus
	Minus
	Asterisk
	Slash
	Percent
	Exponent // **
	Assign
	PlusAssign
	MinusAssign
	AsteriskAssign
	SlashAssign
	PercentAssign
	ExponentAssign
	AmpersandAssign
	PipeAssign
	CaretAssign
	LeftShiftAssign
	RightShiftAssign
	UnsignedRightShiftAssign
	NullishAssign // ??=
	AndAssign     // &&=
	OrAssign      // ||=
	Equal
	NotEqual
	StrictEqual
	StrictNotEqual
	LessThan
	GreaterThan
	LessThanOrEqual
	GreaterThanOrEqual
	And
	Or
	Not
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	BitwiseNot
	LeftShift
	RightShift
	UnsignedRightShift
	Increment
	Decrement

	// Delimiters
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Semicolon
	Colon
	Comma
	Dot
	Spread // ...
	Arrow  // =>
	QuestionMark
	OptionalChain   // ?.
	NullishCoalesce // ??

	// Keywords
	Var
	Let
	Const
	Function
	Return
	If
	Else
	While
	For
	Do
	Break
	Continue
	Switch
	Case
	Default
	Throw
	Try
	Catch
	Finally
	New
	Delete
	Typeof
	Void
	In
	Instanceof
	This
	Class
	Extends
	Super
	Import
	Export
	From
	As
	Of
	Yield
	Async
	Await
	True
	False
	Null
	Undefined
	Debugger
	With

	// Template literal parts
	TemplateHead
	TemplateMiddle
	TemplateTail
	NoSubstitutionTemplate
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
	Offset  int // byte offset of the token start in the source
}

var Keywords = map[string]TokenType{
	"var":        Var,
	"let":        Let,
	"const":      Const,
	"function":   Function,
	"return":     Return,
	"if":         If,
	"else":       Else,
	"while":      While,
	"for":        For,
	"do":         Do,
	"break":      Break,
	"continue":   Continue,
	"switch":     Switch,
	"case":       Case,
	"default":    Default,
	"throw":      Throw,
	"try":        Try,
	"catch":      Catch,
	"finally":    Finally,
	"new":        New,
	"delete":     Delete,
	"typeof":     Typeof,
	"void":       Void,
	"in":         In,
	"instanceof": Instanceof,
	"this":       This,
	"class":      Class,
	"extends":    Extends,
	"super":      Super,
	"import":     Import,
	"export":     Export,
	"from":       From,
	"as":         As,
	"of":         Of,
	"yield":      Yield,
	"async":      Async,
	"await":      Await,
	"true":       True,
	"false":      False,
	"null":       Null,
	"undefined":  Undefined,
	"debugger":   Debugger,
	"with":       With,
}

func LookupIdentifier(ident string) TokenType {
	if tok, ok := Keywords[ident]; ok {
		return tok
	}
	return Identifier
}

// IsKeyword reports whether t is a reserved word. Keyword token types form a
// contiguous block in the enumeration.
func IsKeyword(t TokenType) bool {
	return t >= Var && t <= With
}

// AsBinaryOperator is the total mapping from a punctuator to the compound
// binary operator it carries. Plain `=` and punctuators with no binary
// meaning map to ("", false).
func AsBinaryOperator(t TokenType) (string, bool) {
	switch t {
	case PlusAssign:
		return "+=", true
	case MinusAssign:
		return "-=", true
	case AsteriskAssign:
		return "*=", true
	case SlashAssign:
		return "/=", true
	case PercentAssign:
		return "%=", true
	case ExponentAssign:
		return "**=", true
	case AmpersandAssign:
		return "&=", true
	case PipeAssign:
		return "|=", true
	case CaretAssign:
		return "^=", true
	case LeftShiftAssign:
		return "<<=", true
	case RightShiftAssign:
		return ">>=", true
	case UnsignedRightShiftAssign:
		return ">>>=", true
	case NullishAssign:
		return "??=", true
	case AndAssign:
		return "&&=", true
	case OrAssign:
		return "||=", true
	default:
		return "", false
	}
}
