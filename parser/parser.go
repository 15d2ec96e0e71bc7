package parser

import (
	"fmt"

	"github.com/example/jsgo/ast"
	"github.com/example/jsgo/token"
)

// Parser turns source text into an expression AST. All grammar flags
// (allowIn, allowYield, allowAwait) are threaded as parameters; the parser
// itself holds only the cursor.
type Parser struct {
	cursor *Cursor
}

func New(source string) *Parser {
	return &Parser{cursor: NewCursor(source)}
}

// Parse parses a complete expression (comma sequences included) and requires
// the rest of the input to be empty, up to trailing semicolons and line
// terminators.
func (p *Parser) Parse() (ast.Expression, error) {
	expr, err := p.parseExpression(true, false, false)
	if err != nil {
		return nil, err
	}
	for {
		t, err := p.cursor.Peek(true)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return expr, nil
		}
		if t.Type == token.Semicolon {
			if _, err := p.cursor.Next(true); err != nil {
				return nil, err
			}
			continue
		}
		return nil, syntaxError("unexpected token "+tokenName(t.Type), t.Line, t.Column)
	}
}

// ParseAssignmentExpression parses exactly one assignment-expression
// production under the given grammar flags. Callers see an unperturbed
// stream position past the expression (a trailing line terminator stays
// observable).
func (p *Parser) ParseAssignmentExpression(allowIn, allowYield, allowAwait bool) (ast.Expression, error) {
	return p.parseAssignment(allowIn, allowYield, allowAwait)
}

// parseExpression parses a comma-separated expression sequence.
func (p *Parser) parseExpression(allowIn, allowYield, allowAwait bool) (ast.Expression, error) {
	first, err := p.parseAssignment(allowIn, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	t, err := p.cursor.Peek(true)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Type != token.Comma {
		return first, nil
	}

	seq := &ast.SequenceExpression{Token: *t, Expressions: []ast.Expression{first}}
	for {
		t, err := p.cursor.Peek(true)
		if err != nil {
			return nil, err
		}
		if t == nil || t.Type != token.Comma {
			return seq, nil
		}
		if _, err := p.cursor.Next(true); err != nil {
			return nil, err
		}
		next, err := p.parseAssignment(allowIn, allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		seq.Expressions = append(seq.Expressions, next)
	}
}

// expect consumes the next token and fails unless it has the wanted type.
func (p *Parser) expect(tt token.TokenType, skipLineTerminators bool) (*token.Token, error) {
	t, err := p.cursor.Next(skipLineTerminators)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrAbruptEnd
	}
	if t.Type != tt {
		return nil, syntaxError(fmt.Sprintf("expected %s, got %s", tokenName(tt), tokenName(t.Type)), t.Line, t.Column)
	}
	return t, nil
}

func tokenName(t token.TokenType) string {
	names := map[token.TokenType]string{
		token.EOF:                      "EOF",
		token.Illegal:                  "ILLEGAL",
		token.Identifier:               "IDENTIFIER",
		token.Number:                   "NUMBER",
		token.String:                   "STRING",
		token.LineTerminator:           "LINE_TERMINATOR",
		token.Plus:                     "+",
		token.Minus:                    "-",
		token.Asterisk:                 "*",
		token.Slash:                    "/",
		token.Percent:                  "%",
		token.Exponent:                 "**",
		token.Assign:                   "=",
		token.PlusAssign:               "+=",
		token.MinusAssign:              "-=",
		token.AsteriskAssign:           "*=",
		token.SlashAssign:              "/=",
		token.PercentAssign:            "%=",
		token.ExponentAssign:           "**=",
		token.AmpersandAssign:          "&=",
		token.PipeAssign:               "|=",
		token.CaretAssign:              "^=",
		token.LeftShiftAssign:          "<<=",
		token.RightShiftAssign:         ">>=",
		token.UnsignedRightShiftAssign: ">>>=",
		token.NullishAssign:            "??=",
		token.AndAssign:                "&&=",
		token.OrAssign:                 "||=",
		token.Equal:                    "==",
		token.NotEqual:                 "!=",
		token.StrictEqual:              "===",
		token.StrictNotEqual:           "!==",
		token.LessThan:                 "<",
		token.GreaterThan:              ">",
		token.LessThanOrEqual:          "<=",
		token.GreaterThanOrEqual:       ">=",
		token.And:                      "&&",
		token.Or:                       "||",
		token.Not:                      "!",
		token.BitwiseAnd:               "&",
		token.BitwiseOr:                "|",
		token.BitwiseXor:               "^",
		token.BitwiseNot:               "~",
		token.LeftShift:                "<<",
		token.RightShift:               ">>",
		token.UnsignedRightShift:       ">>>",
		token.Increment:                "++",
		token.Decrement:                "--",
		token.LeftParen:                "(",
		token.RightParen:               ")",
		token.LeftBrace:                "{",
		token.RightBrace:               "}",
		token.LeftBracket:              "[",
		token.RightBracket:             "]",
		token.Semicolon:                ";",
		token.Colon:                    ":",
		token.Comma:                    ",",
		token.Dot:                      ".",
		token.Spread:                   "...",
		token.Arrow:                    "=>",
		token.QuestionMark:             "?",
		token.OptionalChain:            "?.",
		token.NullishCoalesce:          "??",
		token.Var:                      "var",
		token.Let:                      "let",
		token.Const:                    "const",
		token.Function:                 "function",
		token.Return:                   "return",
		token.If:                       "if",
		token.Else:                     "else",
		token.While:                    "while",
		token.For:                      "for",
		token.Do:                       "do",
		token.Break:                    "break",
		token.Continue:                 "continue",
		token.Switch:                   "switch",
		token.Case:                     "case",
		token.Default:                  "default",
		token.Throw:                    "throw",
		token.Try:                      "try",
		token.Catch:                    "catch",
		token.Finally:                  "finally",
		token.New:                      "new",
		token.Delete:                   "delete",
		token.Typeof:                   "typeof",
		token.Void:                     "void",
		token.In:                       "in",
		token.Instanceof:               "instanceof",
		token.This:                     "this",
		token.Class:                    "class",
		token.Extends:                  "extends",
		token.Super:                    "super",
		token.Import:                   "import",
		token.Export:                   "export",
		token.From:                     "from",
		token.As:                       "as",
		token.Of:                       "of",
		token.Yield:                    "yield",
		token.Async:                    "async",
		token.Await:                    "await",
		token.True:                     "true",
		token.False:                    "false",
		token.Null:                     "null",
		token.Undefined:                "undefined",
		token.Debugger:                 "debugger",
		token.With:                     "with",
		token.TemplateHead:             "TEMPLATE_HEAD",
		token.TemplateMiddle:           "TEMPLATE_MIDDLE",
		token.TemplateTail:             "TEMPLATE_TAIL",
		token.NoSubstitutionTemplate:   "TEMPLATE",
		token.RegExp:                   "REGEXP",
	}
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}
