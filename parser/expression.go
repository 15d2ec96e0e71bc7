package parser

import (
	"github.com/example/jsgo/ast"
	"github.com/example/jsgo/token"
)

// Precedence levels for the binary/logical Pratt loop.
const (
	precLowest int = iota
	precNullishCoalesce
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
)

func binaryPrec(tt token.TokenType) int {
	switch tt {
	case token.NullishCoalesce:
		return precNullishCoalesce
	case token.Or:
		return precLogicalOr
	case token.And:
		return precLogicalAnd
	case token.BitwiseOr:
		return precBitwiseOr
	case token.BitwiseXor:
		return precBitwiseXor
	case token.BitwiseAnd:
		return precBitwiseAnd
	case token.Equal, token.NotEqual, token.StrictEqual, token.StrictNotEqual:
		return precEquality
	case token.LessThan, token.GreaterThan, token.LessThanOrEqual, token.GreaterThanOrEqual,
		token.In, token.Instanceof:
		return precRelational
	case token.LeftShift, token.RightShift, token.UnsignedRightShift:
		return precShift
	case token.Plus, token.Minus:
		return precAdditive
	case token.Asterisk, token.Slash, token.Percent:
		return precMultiplicative
	case token.Exponent:
		return precExponent
	default:
		return precLowest
	}
}

// parseConditional parses a ConditionalExpression: the binary/logical chain,
// optionally followed by `? consequent : alternate`.
func (p *Parser) parseConditional(allowIn, allowYield, allowAwait bool) (ast.Expression, error) {
	test, err := p.parseBinaryExpression(precLowest+1, allowIn, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}

	t, err := p.cursor.Peek(true)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Type != token.QuestionMark {
		return test, nil
	}
	q, err := p.cursor.Next(true)
	if err != nil {
		return nil, err
	}

	// the consequent is always parsed with `in` permitted
	consequent, err := p.parseAssignment(true, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, true); err != nil {
		return nil, err
	}
	alternate, err := p.parseAssignment(allowIn, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalExpression{Token: *q, Test: test, Consequent: consequent, Alternate: alternate}, nil
}

// parseBinaryExpression is a precedence-climbing loop over the binary and
// logical operators. Exponentiation is right-associative and recurses at its
// own level; everything else recurses one level tighter.
func (p *Parser) parseBinaryExpression(minPrec int, allowIn, allowYield, allowAwait bool) (ast.Expression, error) {
	left, err := p.parseUnary(allowYield, allowAwait)
	if err != nil {
		return nil, err
	}

	for {
		t, err := p.cursor.Peek(true)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return left, nil
		}
		if t.Type == token.In && !allowIn {
			return left, nil
		}
		prec := binaryPrec(t.Type)
		if prec == precLowest || prec < minPrec {
			return left, nil
		}
		op, err := p.cursor.Next(true)
		if err != nil {
			return nil, err
		}

		rhsMin := prec + 1
		if t.Type == token.Exponent {
			rhsMin = prec
		}
		right, err := p.parseBinaryExpression(rhsMin, allowIn, allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Token: *op, Left: left, Operator: op.Literal, Right: right}
	}
}

// parseUnary parses prefix operators, await, and update expressions, then
// falls through to the left-hand-side chain with an optional postfix ++/--.
func (p *Parser) parseUnary(allowYield, allowAwait bool) (ast.Expression, error) {
	t, err := p.cursor.Peek(true)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrAbruptEnd
	}

	switch t.Type {
	case token.Not, token.BitwiseNot, token.Plus, token.Minus,
		token.Typeof, token.Void, token.Delete:
		op, err := p.cursor.Next(true)
		if err != nil {
			return nil, err
		}
		arg, err := p.parseUnary(allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Token: *op, Operator: op.Literal, Argument: arg}, nil

	case token.Increment, token.Decrement:
		op, err := p.cursor.Next(true)
		if err != nil {
			return nil, err
		}
		arg, err := p.parseUnary(allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		return &ast.UpdateExpression{Token: *op, Operator: op.Literal, Prefix: true, Argument: arg}, nil

	case token.Await:
		if allowAwait {
			op, err := p.cursor.Next(true)
			if err != nil {
				return nil, err
			}
			arg, err := p.parseUnary(allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			return &ast.AwaitExpression{Token: *op, Argument: arg}, nil
		}
	}

	expr, err := p.parseLeftHandSide(allowYield, allowAwait)
	if err != nil {
		return nil, err
	}

	// Postfix ++/-- binds only when no line terminator intervenes.
	t, err = p.cursor.Peek(false)
	if err != nil {
		return nil, err
	}
	if t != nil && (t.Type == token.Increment || t.Type == token.Decrement) {
		op, err := p.cursor.Next(false)
		if err != nil {
			return nil, err
		}
		return &ast.UpdateExpression{Token: *op, Operator: op.Literal, Prefix: false, Argument: expr}, nil
	}
	return expr, nil
}

// parseYieldExpression parses `yield`, `yield expr`, or `yield* expr`. The
// argument is absent when a line terminator or an expression terminator
// follows the keyword.
func (p *Parser) parseYieldExpression(allowIn, allowAwait bool) (ast.Expression, error) {
	kw, err := p.expect(token.Yield, true)
	if err != nil {
		return nil, err
	}

	t, err := p.cursor.Peek(false)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Type == token.LineTerminator {
		return &ast.YieldExpression{Token: *kw}, nil
	}

	delegate := false
	if t.Type == token.Asterisk {
		if _, err := p.cursor.Next(false); err != nil {
			return nil, err
		}
		delegate = true
	} else {
		switch t.Type {
		case token.RightParen, token.RightBracket, token.RightBrace,
			token.Comma, token.Semicolon, token.Colon:
			return &ast.YieldExpression{Token: *kw}, nil
		}
	}

	arg, err := p.parseAssignment(allowIn, true, allowAwait)
	if err != nil {
		return nil, err
	}
	return &ast.YieldExpression{Token: *kw, Argument: arg, Delegate: delegate}, nil
}
