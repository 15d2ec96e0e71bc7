package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a node back to source text. Parentheses are emitted only
// where the structure requires them, so output produced from a parsed tree
// reparses to the same structure.
func Print(node Node) string {
	var b strings.Builder
	printNode(&b, node)
	return b.String()
}

func printNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case Statement:
		printStmt(b, n)
	case Expression:
		printExpr(b, n, precSequence)
	default:
		fmt.Fprintf(b, "<%T>", node)
	}
}

func printStmt(b *strings.Builder, stmt Statement) {
	switch s := stmt.(type) {
	case *ExpressionStatement:
		printExpr(b, s.Expression, precSequence)
		b.WriteByte(';')
	case *ReturnStatement:
		b.WriteString("return")
		if s.Value != nil {
			b.WriteByte(' ')
			printExpr(b, s.Value, precSequence)
		}
		b.WriteByte(';')
	case *EmptyStatement:
		b.WriteByte(';')
	case *BlockStatement:
		b.WriteByte('{')
		for _, inner := range s.Statements {
			b.WriteByte(' ')
			printStmt(b, inner)
		}
		b.WriteString(" }")
	default:
		fmt.Fprintf(b, "<%T>", stmt)
	}
}

// Printer precedence levels. A child is parenthesized when its level is
// below the minimum its context demands.
const (
	precSequence = iota
	precAssign
	precConditional
	precBinaryBase // binary operators occupy precBinaryBase..precBinaryBase+11
	precUnary      = precBinaryBase + 12
	precPostfix
	precCallMember
	precPrimary
)

var binaryLevels = map[string]int{
	"??":         0,
	"||":         1,
	"&&":         2,
	"|":          3,
	"^":          4,
	"&":          5,
	"==":         6,
	"!=":         6,
	"===":        6,
	"!==":        6,
	"<":          7,
	">":          7,
	"<=":         7,
	">=":         7,
	"in":         7,
	"instanceof": 7,
	"<<":         8,
	">>":         8,
	">>>":        8,
	"+":          9,
	"-":          9,
	"*":          10,
	"/":          10,
	"%":          10,
	"**":         11,
}

// compound assignment operators print at assignment level
func isCompoundOp(op string) bool {
	_, plain := binaryLevels[op]
	return !plain
}

func exprPrec(e Expression) int {
	switch n := e.(type) {
	case *SequenceExpression:
		return precSequence
	case *AssignmentExpression, *ArrowFunctionExpression, *YieldExpression:
		return precAssign
	case *ConditionalExpression:
		return precConditional
	case *BinaryExpression:
		if isCompoundOp(n.Operator) {
			return precAssign
		}
		return precBinaryBase + binaryLevels[n.Operator]
	case *UnaryExpression, *AwaitExpression:
		return precUnary
	case *UpdateExpression:
		if n.Prefix {
			return precUnary
		}
		return precPostfix
	case *CallExpression, *MemberExpression, *NewExpression:
		return precCallMember
	default:
		return precPrimary
	}
}

// printExpr renders expr, parenthesized if its precedence is below min.
func printExpr(b *strings.Builder, expr Expression, min int) {
	if exprPrec(expr) < min {
		b.WriteByte('(')
		printExpr(b, expr, precSequence)
		b.WriteByte(')')
		return
	}

	switch e := expr.(type) {
	case *Identifier:
		b.WriteString(e.Name)

	case *NumberLiteral:
		b.WriteString(e.Value)

	case *StringLiteral:
		b.WriteString(strconv.Quote(e.Value))

	case *BooleanLiteral:
		if e.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}

	case *NullLiteral:
		b.WriteString("null")

	case *UndefinedLiteral:
		b.WriteString("undefined")

	case *RegExpLiteral:
		b.WriteByte('/')
		b.WriteString(e.Pattern)
		b.WriteByte('/')
		b.WriteString(e.Flags)

	case *ThisExpression:
		b.WriteString("this")

	case *ArrayLiteral:
		b.WriteByte('[')
		for i, el := range e.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			if el == nil {
				continue // elision
			}
			printExpr(b, el, precAssign)
		}
		b.WriteByte(']')

	case *ObjectLiteral:
		if len(e.Properties) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		for i, p := range e.Properties {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte(' ')
			printProperty(b, p)
		}
		b.WriteString(" }")

	case *SequenceExpression:
		for i, inner := range e.Expressions {
			if i > 0 {
				b.WriteString(", ")
			}
			printExpr(b, inner, precAssign)
		}

	case *FunctionExpression:
		b.WriteString("function")
		if e.Name != nil {
			b.WriteByte(' ')
			b.WriteString(e.Name.Name)
		}
		printParams(b, e.Params)
		b.WriteByte(' ')
		printStmt(b, e.Body)

	case *ArrowFunctionExpression:
		printParams(b, e.Params)
		b.WriteString(" => ")
		switch body := e.Body.(type) {
		case *BlockStatement:
			printStmt(b, body)
		case *ObjectLiteral:
			// a bare object literal body would reparse as a block
			b.WriteByte('(')
			printExpr(b, body, precSequence)
			b.WriteByte(')')
		case Expression:
			printExpr(b, body, precAssign)
		}

	case *UnaryExpression:
		b.WriteString(e.Operator)
		if len(e.Operator) > 1 {
			b.WriteByte(' ') // typeof, void, delete
		}
		printUnaryOperand(b, e.Operator, e.Argument)

	case *UpdateExpression:
		if e.Prefix {
			b.WriteString(e.Operator)
			printExpr(b, e.Argument, precUnary)
		} else {
			printExpr(b, e.Argument, precCallMember)
			b.WriteString(e.Operator)
		}

	case *BinaryExpression:
		if isCompoundOp(e.Operator) {
			printExpr(b, e.Left, precCallMember)
			b.WriteByte(' ')
			b.WriteString(e.Operator)
			b.WriteByte(' ')
			printExpr(b, e.Right, precAssign)
			return
		}
		level := precBinaryBase + binaryLevels[e.Operator]
		if e.Operator == "**" {
			// right-associative
			printExpr(b, e.Left, level+1)
			b.WriteString(" ** ")
			printExpr(b, e.Right, level)
			return
		}
		printExpr(b, e.Left, level)
		b.WriteByte(' ')
		b.WriteString(e.Operator)
		b.WriteByte(' ')
		printExpr(b, e.Right, level+1)

	case *ConditionalExpression:
		printExpr(b, e.Test, precBinaryBase)
		b.WriteString(" ? ")
		printExpr(b, e.Consequent, precAssign)
		b.WriteString(" : ")
		printExpr(b, e.Alternate, precAssign)

	case *AssignmentExpression:
		printExpr(b, e.Left, precCallMember)
		b.WriteString(" = ")
		printExpr(b, e.Right, precAssign)

	case *MemberExpression:
		if isNumberLiteral(e.Object) {
			b.WriteByte('(')
			printExpr(b, e.Object, precSequence)
			b.WriteByte(')')
		} else {
			printExpr(b, e.Object, precCallMember)
		}
		if e.Computed {
			b.WriteByte('[')
			printExpr(b, e.Property, precSequence)
			b.WriteByte(']')
		} else {
			b.WriteByte('.')
			printExpr(b, e.Property, precPrimary)
		}

	case *CallExpression:
		printExpr(b, e.Callee, precCallMember)
		printArguments(b, e.Arguments)

	case *NewExpression:
		b.WriteString("new ")
		printExpr(b, e.Callee, precCallMember)
		printArguments(b, e.Arguments)

	case *SpreadElement:
		b.WriteString("...")
		printExpr(b, e.Argument, precAssign)

	case *YieldExpression:
		b.WriteString("yield")
		if e.Delegate {
			b.WriteByte('*')
		}
		if e.Argument != nil {
			b.WriteByte(' ')
			printExpr(b, e.Argument, precAssign)
		}

	case *AwaitExpression:
		b.WriteString("await ")
		printExpr(b, e.Argument, precUnary)

	default:
		fmt.Fprintf(b, "<%T>", expr)
	}
}

// printUnaryOperand guards against "-" "-x" fusing into "--x" (and the same
// for "+").
func printUnaryOperand(b *strings.Builder, op string, arg Expression) {
	var inner strings.Builder
	printExpr(&inner, arg, precUnary)
	s := inner.String()
	if (op == "-" || op == "+") && strings.HasPrefix(s, op) {
		b.WriteByte('(')
		b.WriteString(s)
		b.WriteByte(')')
		return
	}
	b.WriteString(s)
}

func printProperty(b *strings.Builder, p *Property) {
	if p.Key == nil {
		// spread property
		printExpr(b, p.Value, precAssign)
		return
	}
	if p.Shorthand {
		printExpr(b, p.Key, precPrimary)
		return
	}
	if p.Computed {
		b.WriteByte('[')
		printExpr(b, p.Key, precAssign)
		b.WriteByte(']')
	} else {
		printExpr(b, p.Key, precPrimary)
	}
	b.WriteString(": ")
	printExpr(b, p.Value, precAssign)
}

func printParams(b *strings.Builder, params []*Parameter) {
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		if p.Rest {
			b.WriteString("...")
		}
		b.WriteString(p.Name.Name)
		if p.Default != nil {
			b.WriteString(" = ")
			printExpr(b, p.Default, precAssign)
		}
	}
	b.WriteByte(')')
}

func printArguments(b *strings.Builder, args []Expression) {
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		printExpr(b, a, precAssign)
	}
	b.WriteByte(')')
}

func isNumberLiteral(e Expression) bool {
	_, ok := e.(*NumberLiteral)
	return ok
}
