package parser

import (
	"strings"

	"github.com/example/jsgo/ast"
	"github.com/example/jsgo/token"
)

// parseLeftHandSide parses a primary or new expression followed by any chain
// of member accesses and calls.
func (p *Parser) parseLeftHandSide(allowYield, allowAwait bool) (ast.Expression, error) {
	t, err := p.cursor.Peek(true)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrAbruptEnd
	}

	var expr ast.Expression
	if t.Type == token.New {
		expr, err = p.parseNewExpression(allowYield, allowAwait)
	} else {
		expr, err = p.parsePrimary(allowYield, allowAwait)
	}
	if err != nil {
		return nil, err
	}
	return p.parseCallTail(expr, allowYield, allowAwait)
}

// parseCallTail extends expr with `.name`, `[expr]`, and `(args)` links.
func (p *Parser) parseCallTail(expr ast.Expression, allowYield, allowAwait bool) (ast.Expression, error) {
	for {
		t, err := p.cursor.Peek(true)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return expr, nil
		}
		switch t.Type {
		case token.Dot:
			dot, err := p.cursor.Next(true)
			if err != nil {
				return nil, err
			}
			name, err := p.cursor.Next(true)
			if err != nil {
				return nil, err
			}
			if name == nil {
				return nil, ErrAbruptEnd
			}
			// property names may be reserved words: a.new, a.in
			if name.Type != token.Identifier && !token.IsKeyword(name.Type) {
				return nil, syntaxError("expected property name, got "+tokenName(name.Type), name.Line, name.Column)
			}
			expr = &ast.MemberExpression{
				Token:    *dot,
				Object:   expr,
				Property: &ast.Identifier{Token: *name, Name: name.Literal},
			}

		case token.LeftBracket:
			lb, err := p.cursor.Next(true)
			if err != nil {
				return nil, err
			}
			prop, err := p.parseExpression(true, allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RightBracket, true); err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{Token: *lb, Object: expr, Property: prop, Computed: true}

		case token.LeftParen:
			lp := *t
			args, err := p.parseArguments(allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpression{Token: lp, Callee: expr, Arguments: args}

		default:
			return expr, nil
		}
	}
}

// parseNewExpression parses `new Callee(args)`. The callee is a member-only
// chain; a `(` after it always belongs to the new expression's arguments.
func (p *Parser) parseNewExpression(allowYield, allowAwait bool) (ast.Expression, error) {
	kw, err := p.expect(token.New, true)
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

	var callee ast.Expression
	if t.Type == token.New {
		callee, err = p.parseNewExpression(allowYield, allowAwait)
	} else {
		callee, err = p.parsePrimary(allowYield, allowAwait)
	}
	if err != nil {
		return nil, err
	}

	// member accesses bind to the callee; the first '(' does not
	for {
		t, err := p.cursor.Peek(true)
		if err != nil {
			return nil, err
		}
		if t == nil {
			break
		}
		if t.Type == token.Dot || t.Type == token.LeftBracket {
			callee, err = p.parseMemberLink(callee, allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	var args []ast.Expression
	t, err = p.cursor.Peek(true)
	if err != nil {
		return nil, err
	}
	if t != nil && t.Type == token.LeftParen {
		args, err = p.parseArguments(allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
	}
	return &ast.NewExpression{Token: *kw, Callee: callee, Arguments: args}, nil
}

// parseMemberLink consumes exactly one `.name` or `[expr]` link.
func (p *Parser) parseMemberLink(object ast.Expression, allowYield, allowAwait bool) (ast.Expression, error) {
	t, err := p.cursor.Next(true)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrAbruptEnd
	}
	switch t.Type {
	case token.Dot:
		name, err := p.cursor.Next(true)
		if err != nil {
			return nil, err
		}
		if name == nil {
			return nil, ErrAbruptEnd
		}
		if name.Type != token.Identifier && !token.IsKeyword(name.Type) {
			return nil, syntaxError("expected property name, got "+tokenName(name.Type), name.Line, name.Column)
		}
		return &ast.MemberExpression{
			Token:    *t,
			Object:   object,
			Property: &ast.Identifier{Token: *name, Name: name.Literal},
		}, nil
	case token.LeftBracket:
		prop, err := p.parseExpression(true, allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightBracket, true); err != nil {
			return nil, err
		}
		return &ast.MemberExpression{Token: *t, Object: object, Property: prop, Computed: true}, nil
	}
	return nil, syntaxError("expected member access, got "+tokenName(t.Type), t.Line, t.Column)
}

// parseArguments parses a parenthesized, comma-separated argument list with
// spread elements and an optional trailing comma.
func (p *Parser) parseArguments(allowYield, allowAwait bool) ([]ast.Expression, error) {
	if _, err := p.expect(token.LeftParen, true); err != nil {
		return nil, err
	}
	args := []ast.Expression{}
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
			return args, nil
		}

		var arg ast.Expression
		if t.Type == token.Spread {
			sp, err := p.cursor.Next(true)
			if err != nil {
				return nil, err
			}
			inner, err := p.parseAssignment(true, allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			arg = &ast.SpreadElement{Token: *sp, Argument: inner}
		} else {
			arg, err = p.parseAssignment(true, allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
		}
		args = append(args, arg)

		t, err = p.cursor.Peek(true)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, ErrAbruptEnd
		}
		switch t.Type {
		case token.Comma:
			if _, err := p.cursor.Next(true); err != nil {
				return nil, err
			}
		case token.RightParen:
			// closed on next iteration
		default:
			return nil, syntaxError("expected , or ) in argument list, got "+tokenName(t.Type), t.Line, t.Column)
		}
	}
}

func (p *Parser) parsePrimary(allowYield, allowAwait bool) (ast.Expression, error) {
	t, err := p.cursor.Next(true)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrAbruptEnd
	}

	switch t.Type {
	case token.Identifier:
		return &ast.Identifier{Token: *t, Name: t.Literal}, nil

	// contextual keywords usable as plain identifiers
	case token.Async, token.From, token.As, token.Of:
		return &ast.Identifier{Token: *t, Name: t.Literal}, nil

	case token.Yield:
		if allowYield {
			return nil, syntaxError("unexpected token yield", t.Line, t.Column)
		}
		return &ast.Identifier{Token: *t, Name: t.Literal}, nil

	case token.Await:
		if allowAwait {
			return nil, syntaxError("unexpected token await", t.Line, t.Column)
		}
		return &ast.Identifier{Token: *t, Name: t.Literal}, nil

	case token.Number:
		return &ast.NumberLiteral{Token: *t, Value: t.Literal}, nil

	case token.String:
		return &ast.StringLiteral{Token: *t, Value: t.Literal}, nil

	case token.True:
		return &ast.BooleanLiteral{Token: *t, Value: true}, nil

	case token.False:
		return &ast.BooleanLiteral{Token: *t, Value: false}, nil

	case token.Null:
		return &ast.NullLiteral{Token: *t}, nil

	case token.Undefined:
		return &ast.UndefinedLiteral{Token: *t}, nil

	case token.This:
		return &ast.ThisExpression{Token: *t}, nil

	case token.RegExp:
		return regExpLiteral(*t), nil

	case token.Slash, token.SlashAssign:
		// lexed under the division goal; this grammar position wants a regex
		p.cursor.PushBack(*t)
		re, err := p.cursor.ReLexRegex()
		if err != nil {
			return nil, err
		}
		return regExpLiteral(re), nil

	case token.LeftParen:
		return p.parseGrouping(*t, allowYield, allowAwait)

	case token.LeftBracket:
		return p.parseArrayLiteral(*t, allowYield, allowAwait)

	case token.LeftBrace:
		return p.parseObjectLiteral(*t, allowYield, allowAwait)

	case token.Function:
		return p.parseFunctionExpression(*t)

	default:
		return nil, syntaxError("unexpected token "+tokenName(t.Type), t.Line, t.Column)
	}
}

func regExpLiteral(t token.Token) *ast.RegExpLiteral {
	last := strings.LastIndexByte(t.Literal, '/')
	return &ast.RegExpLiteral{
		Token:   t,
		Pattern: t.Literal[1:last],
		Flags:   t.Literal[last+1:],
	}
}

// parseGrouping parses `( Expression )` after the opening parenthesis was
// consumed. Grouping is structurally invisible: the inner expression is
// returned directly.
func (p *Parser) parseGrouping(lp token.Token, allowYield, allowAwait bool) (ast.Expression, error) {
	t, err := p.cursor.Peek(true)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrAbruptEnd
	}
	if t.Type == token.RightParen {
		return nil, syntaxError("unexpected token )", t.Line, t.Column)
	}
	expr, err := p.parseExpression(true, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParen, true); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseArrayLiteral(lb token.Token, allowYield, allowAwait bool) (ast.Expression, error) {
	elems := []ast.Expression{}
	for {
		t, err := p.cursor.Peek(true)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, ErrAbruptEnd
		}
		if t.Type == token.RightBracket {
			if _, err := p.cursor.Next(true); err != nil {
				return nil, err
			}
			return &ast.ArrayLiteral{Token: lb, Elements: elems}, nil
		}
		if t.Type == token.Comma {
			// elision
			if _, err := p.cursor.Next(true); err != nil {
				return nil, err
			}
			elems = append(elems, nil)
			continue
		}

		var el ast.Expression
		if t.Type == token.Spread {
			sp, err := p.cursor.Next(true)
			if err != nil {
				return nil, err
			}
			inner, err := p.parseAssignment(true, allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			el = &ast.SpreadElement{Token: *sp, Argument: inner}
		} else {
			el, err = p.parseAssignment(true, allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
		}
		elems = append(elems, el)

		t, err = p.cursor.Peek(true)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, ErrAbruptEnd
		}
		switch t.Type {
		case token.Comma:
			if _, err := p.cursor.Next(true); err != nil {
				return nil, err
			}
		case token.RightBracket:
			// closed on next iteration
		default:
			return nil, syntaxError("expected , or ] in array literal, got "+tokenName(t.Type), t.Line, t.Column)
		}
	}
}

func (p *Parser) parseObjectLiteral(lb token.Token, allowYield, allowAwait bool) (ast.Expression, error) {
	props := []*ast.Property{}
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
			return &ast.ObjectLiteral{Token: lb, Properties: props}, nil
		}

		prop, err := p.parseProperty(allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)

		t, err = p.cursor.Peek(true)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, ErrAbruptEnd
		}
		switch t.Type {
		case token.Comma:
			if _, err := p.cursor.Next(true); err != nil {
				return nil, err
			}
		case token.RightBrace:
			// closed on next iteration
		default:
			return nil, syntaxError("expected , or } in object literal, got "+tokenName(t.Type), t.Line, t.Column)
		}
	}
}

func (p *Parser) parseProperty(allowYield, allowAwait bool) (*ast.Property, error) {
	t, err := p.cursor.Next(true)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrAbruptEnd
	}

	if t.Type == token.Spread {
		inner, err := p.parseAssignment(true, allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		return &ast.Property{Token: *t, Value: &ast.SpreadElement{Token: *t, Argument: inner}}, nil
	}

	computed := false
	shorthandOK := false
	var key ast.Expression
	switch {
	case t.Type == token.LeftBracket:
		computed = true
		inner, err := p.parseAssignment(true, allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightBracket, true); err != nil {
			return nil, err
		}
		key = inner
	case t.Type == token.Identifier:
		key = &ast.Identifier{Token: *t, Name: t.Literal}
		shorthandOK = true
	case token.IsKeyword(t.Type):
		// property names may be reserved words: { new: 1, in: 2 }
		key = &ast.Identifier{Token: *t, Name: t.Literal}
	case t.Type == token.String:
		key = &ast.StringLiteral{Token: *t, Value: t.Literal}
	case t.Type == token.Number:
		key = &ast.NumberLiteral{Token: *t, Value: t.Literal}
	default:
		return nil, syntaxError("unexpected token "+tokenName(t.Type)+" in object literal", t.Line, t.Column)
	}

	next, err := p.cursor.Peek(true)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, ErrAbruptEnd
	}
	if next.Type == token.Colon {
		if _, err := p.cursor.Next(true); err != nil {
			return nil, err
		}
		val, err := p.parseAssignment(true, allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		return &ast.Property{Token: *t, Key: key, Value: val, Computed: computed}, nil
	}
	if shorthandOK && (next.Type == token.Comma || next.Type == token.RightBrace) {
		return &ast.Property{Token: *t, Key: key, Value: key, Shorthand: true}, nil
	}
	return nil, syntaxError("expected : in object literal, got "+tokenName(next.Type), next.Line, next.Column)
}

func (p *Parser) parseFunctionExpression(kw token.Token) (ast.Expression, error) {
	var name *ast.Identifier
	t, err := p.cursor.Peek(true)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrAbruptEnd
	}
	if t.Type == token.Identifier {
		id, err := p.cursor.Next(true)
		if err != nil {
			return nil, err
		}
		name = &ast.Identifier{Token: *id, Name: id.Literal}
	}

	if _, err := p.expect(token.LeftParen, true); err != nil {
		return nil, err
	}
	params, err := p.parseParameterList(false, false)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement(false, false)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionExpression{Token: kw, Name: name, Params: params, Body: body}, nil
}
