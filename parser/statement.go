package parser

import (
	"github.com/example/jsgo/ast"
	"github.com/example/jsgo/token"
)

// The statement subset below exists for function bodies only. Declarations
// and control flow belong to the layer above this one and are rejected.

func (p *Parser) parseBlockStatement(allowYield, allowAwait bool) (*ast.BlockStatement, error) {
	lb, err := p.expect(token.LeftBrace, true)
	if err != nil {
		return nil, err
	}
	stmts := []ast.Statement{}
	for {
		t, err := p.cursor.Peek(true)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, ErrAbruptEnd
		}
		if t.Type == token.RightBrace {
			if _, err := p.cursor.Next(true); err != nil {
				return nil, err
			}
			return &ast.BlockStatement{Token: *lb, Statements: stmts}, nil
		}
		stmt, err := p.parseStatement(allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) parseStatement(allowYield, allowAwait bool) (ast.Statement, error) {
	t, err := p.cursor.Peek(true)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrAbruptEnd
	}

	switch t.Type {
	case token.Semicolon:
		semi, err := p.cursor.Next(true)
		if err != nil {
			return nil, err
		}
		return &ast.EmptyStatement{Token: *semi}, nil

	case token.LeftBrace:
		return p.parseBlockStatement(allowYield, allowAwait)

	case token.Return:
		return p.parseReturnStatement(allowYield, allowAwait)

	case token.Var, token.Let, token.Const, token.If, token.Else, token.While,
		token.For, token.Do, token.Break, token.Continue, token.Switch,
		token.Throw, token.Try, token.Class, token.Import, token.Export,
		token.Debugger, token.With:
		return nil, syntaxError("unexpected token "+tokenName(t.Type), t.Line, t.Column)

	default:
		expr, err := p.parseExpression(true, allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		if err := p.consumeStatementEnd(); err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Token: *t, Expression: expr}, nil
	}
}

func (p *Parser) parseReturnStatement(allowYield, allowAwait bool) (ast.Statement, error) {
	kw, err := p.expect(token.Return, true)
	if err != nil {
		return nil, err
	}

	// ASI: a line terminator after `return` ends the statement
	t, err := p.cursor.Peek(false)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Type == token.LineTerminator || t.Type == token.RightBrace {
		return &ast.ReturnStatement{Token: *kw}, nil
	}
	if t.Type == token.Semicolon {
		if _, err := p.cursor.Next(false); err != nil {
			return nil, err
		}
		return &ast.ReturnStatement{Token: *kw}, nil
	}

	value, err := p.parseExpression(true, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	if err := p.consumeStatementEnd(); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Token: *kw, Value: value}, nil
}

// consumeStatementEnd eats an explicit semicolon when present. A line
// terminator or a closing brace terminates the statement implicitly.
func (p *Parser) consumeStatementEnd() error {
	t, err := p.cursor.Peek(false)
	if err != nil {
		return err
	}
	if t == nil || t.Type == token.LineTerminator || t.Type == token.RightBrace {
		return nil
	}
	if t.Type == token.Semicolon {
		_, err := p.cursor.Next(false)
		return err
	}
	return syntaxError("unexpected token "+tokenName(t.Type), t.Line, t.Column)
}
