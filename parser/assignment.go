package parser

import (
	"github.com/example/jsgo/ast"
	"github.com/example/jsgo/lexer"
	"github.com/example/jsgo/token"
)

// parseAssignment parses one AssignmentExpression production:
//
//   - ConditionalExpression
//   - YieldExpression
//   - ArrowFunction
//   - LeftHandSideExpression = AssignmentExpression
//   - LeftHandSideExpression AssignmentOperator AssignmentExpression
//
// Arrow functions are disambiguated with bounded lookahead; nothing is
// consumed unless the branch commits. Assignment is right-associative through
// the recursive call for the right-hand side.
func (p *Parser) parseAssignment(allowIn, allowYield, allowAwait bool) (ast.Expression, error) {
	// A '/' at the start of an assignment expression cannot begin a regex
	// literal in this grammar position.
	p.cursor.SetGoal(lexer.GoalDiv)

	next, err := p.cursor.Peek(true)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, ErrAbruptEnd
	}

	switch next.Type {
	// a => {}
	case token.Identifier, token.Yield, token.Await:
		if p.cursor.PeekExpectNoLineTerminator(true) == nil {
			tok, err := p.cursor.PeekSkip(false)
			if err != nil {
				return nil, err
			}
			if tok != nil && tok.Type == token.Arrow {
				return p.parseArrowFunction(allowIn, allowYield, allowAwait)
			}
		}

	// (a, b) => {}
	case token.LeftParen:
		tok, err := p.cursor.PeekSkip(false)
		if err != nil {
			return nil, err
		}
		if tok != nil {
			switch tok.Type {
			case token.RightParen, token.Spread, token.Identifier:
				return p.parseArrowFunction(allowIn, allowYield, allowAwait)
			}
		}
	}

	if allowYield && next.Type == token.Yield {
		return p.parseYieldExpression(allowIn, allowAwait)
	}

	p.cursor.SetGoal(lexer.GoalDiv)

	lhs, err := p.parseConditional(allowIn, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}

	// Line terminators here must not be silently discarded: the surrounding
	// grammar may need to observe that a line break followed the expression.
	var lineTerminator *token.Token

loop:
	for {
		tok, err := p.cursor.Peek(false)
		if err != nil {
			return nil, err
		}
		if tok == nil {
			break
		}
		switch {
		case tok.Type == token.Assign:
			if _, err := p.cursor.Next(false); err != nil {
				return nil, err
			}
			lineTerminator = nil
			if !isAssignable(lhs) {
				return nil, syntaxError("Invalid left-hand side in assignment", tok.Line, tok.Column)
			}
			rhs, err := p.parseAssignment(allowIn, allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			lhs = &ast.AssignmentExpression{Token: *tok, Left: lhs, Right: rhs}
			break loop

		case isCompoundAssign(tok.Type):
			if _, err := p.cursor.Next(false); err != nil {
				return nil, err
			}
			lineTerminator = nil
			if !isAssignable(lhs) {
				return nil, syntaxError("Invalid left-hand side in assignment", tok.Line, tok.Column)
			}
			rhs, err := p.parseAssignment(allowIn, allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			op, _ := token.AsBinaryOperator(tok.Type)
			lhs = &ast.BinaryExpression{Token: *tok, Left: lhs, Operator: op, Right: rhs}
			break loop

		case tok.Type == token.LineTerminator:
			lineTerminator = tok
			if _, err := p.cursor.Next(false); err != nil {
				return nil, err
			}

		default:
			break loop
		}
	}

	if lineTerminator != nil {
		p.cursor.PushBack(*lineTerminator)
	}

	return lhs, nil
}

func isCompoundAssign(tt token.TokenType) bool {
	_, ok := token.AsBinaryOperator(tt)
	return ok
}

// isAssignable reports whether a node is a syntactically legal assignment
// target. Literal constants and array literals can never be simple targets;
// everything else (identifiers, member accesses, even call expressions) is
// accepted here, with finer legality checked by a later phase.
func isAssignable(node ast.Expression) bool {
	switch node.(type) {
	case *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral,
		*ast.NullLiteral, *ast.UndefinedLiteral, *ast.RegExpLiteral,
		*ast.ArrayLiteral:
		return false
	}
	return true
}
