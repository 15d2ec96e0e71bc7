package parser

import (
	"github.com/example/jsgo/ast"
	"github.com/example/jsgo/token"
)

// parseArrowFunction parses an arrow function after the disambiguation in
// parseAssignment committed to this branch. The parameter shapes accepted
// here are the full check; the lookahead filter upstream is only positive.
func (p *Parser) parseArrowFunction(allowIn, allowYield, allowAwait bool) (ast.Expression, error) {
	first, err := p.cursor.Next(true)
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, ErrAbruptEnd
	}

	var params []*ast.Parameter
	switch first.Type {
	case token.LeftParen:
		params, err = p.parseParameterList(allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
	case token.Identifier, token.Yield, token.Await:
		params = []*ast.Parameter{{Name: &ast.Identifier{Token: *first, Name: first.Literal}}}
	default:
		return nil, syntaxError("unexpected token "+tokenName(first.Type), first.Line, first.Column)
	}

	// no line terminator may precede the arrow
	if err := p.cursor.PeekExpectNoLineTerminator(false); err != nil {
		return nil, err
	}
	arrow, err := p.expect(token.Arrow, false)
	if err != nil {
		return nil, err
	}

	t, err := p.cursor.Peek(true)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrAbruptEnd
	}

	var body ast.Node
	if t.Type == token.LeftBrace {
		body, err = p.parseBlockStatement(false, false)
	} else {
		body, err = p.parseAssignment(allowIn, false, false)
	}
	if err != nil {
		return nil, err
	}
	return &ast.ArrowFunctionExpression{Token: *arrow, Params: params, Body: body}, nil
}

// parseParameterList parses formal parameters after the opening parenthesis
// was consumed: identifiers, optional defaults, and a rest parameter in the
// last position. Destructuring patterns are not parameters at this layer.
func (p *Parser) parseParameterList(allowYield, allowAwait bool) ([]*ast.Parameter, error) {
	params := []*ast.Parameter{}
	for {
		t, err := p.cursor.Peek(true)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, ErrAbruptEnd
		}
		if t.Type == token.RightParen {
			if _, err := p.cursor.Next(true); err != nil {
				return nil, err
			}
			return params, nil
		}

		rest := false
		if t.Type == token.Spread {
			if _, err := p.cursor.Next(true); err != nil {
				return nil, err
			}
			rest = true
		}

		name, err := p.cursor.Next(true)
		if err != nil {
			return nil, err
		}
		if name == nil {
			return nil, ErrAbruptEnd
		}
		switch name.Type {
		case token.Identifier:
		case token.Yield:
			if allowYield {
				return nil, syntaxError("unexpected token yield", name.Line, name.Column)
			}
		case token.Await:
			if allowAwait {
				return nil, syntaxError("unexpected token await", name.Line, name.Column)
			}
		default:
			return nil, syntaxError("expected parameter name, got "+tokenName(name.Type), name.Line, name.Column)
		}
		param := &ast.Parameter{Name: &ast.Identifier{Token: *name, Name: name.Literal}, Rest: rest}

		t, err = p.cursor.Peek(true)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, ErrAbruptEnd
		}
		if t.Type == token.Assign {
			if rest {
				return nil, syntaxError("rest parameter may not have a default", t.Line, t.Column)
			}
			if _, err := p.cursor.Next(true); err != nil {
				return nil, err
			}
			def, err := p.parseAssignment(true, allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			param.Default = def
			t, err = p.cursor.Peek(true)
			if err != nil {
				return nil, err
			}
			if t == nil {
				return nil, ErrAbruptEnd
			}
		}
		params = append(params, param)

		switch t.Type {
		case token.Comma:
			if rest {
				return nil, syntaxError("rest parameter must be last", t.Line, t.Column)
			}
			if _, err := p.cursor.Next(true); err != nil {
				return nil, err
			}
		case token.RightParen:
			// closed on next iteration
		default:
			return nil, syntaxError("expected , or ) in parameter list, got "+tokenName(t.Type), t.Line, t.Column)
		}
	}
}
