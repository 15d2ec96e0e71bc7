package ast

import "testing"

func ident(name string) *Identifier {
	return &Identifier{Name: name}
}

func num(v string) *NumberLiteral {
	return &NumberLiteral{Value: v}
}

func expectPrint(t *testing.T, node Node, want string) {
	t.Helper()
	got := Print(node)
	if got != want {
		t.Errorf("print wrong.\nexpected: %s\ngot:      %s", want, got)
	}
}

func TestPrintLiterals(t *testing.T) {
	expectPrint(t, ident("foo"), "foo")
	expectPrint(t, num("3.14"), "3.14")
	expectPrint(t, &StringLiteral{Value: "a\nb"}, `"a\nb"`)
	expectPrint(t, &BooleanLiteral{Value: true}, "true")
	expectPrint(t, &NullLiteral{}, "null")
	expectPrint(t, &UndefinedLiteral{}, "undefined")
	expectPrint(t, &ThisExpression{}, "this")
	expectPrint(t, &RegExpLiteral{Pattern: "ab+c", Flags: "gi"}, "/ab+c/gi")
}

func TestPrintAssignment(t *testing.T) {
	expectPrint(t,
		&AssignmentExpression{Left: ident("a"), Right: ident("b")},
		"a = b")
	// right-nested assignment needs no parentheses
	expectPrint(t,
		&AssignmentExpression{
			Left:  ident("a"),
			Right: &AssignmentExpression{Left: ident("b"), Right: ident("c")},
		},
		"a = b = c")
}

func TestPrintCompoundAssignment(t *testing.T) {
	expectPrint(t,
		&BinaryExpression{Left: ident("a"), Operator: "+=", Right: ident("b")},
		"a += b")
	expectPrint(t,
		&BinaryExpression{Left: ident("x"), Operator: "**=", Right: num("2")},
		"x **= 2")
	expectPrint(t,
		&BinaryExpression{Left: ident("a"), Operator: "??=", Right: ident("b")},
		"a ??= b")
}

func TestPrintBinaryPrecedence(t *testing.T) {
	// a + b * c: no parentheses
	expectPrint(t,
		&BinaryExpression{
			Left:     ident("a"),
			Operator: "+",
			Right:    &BinaryExpression{Left: ident("b"), Operator: "*", Right: ident("c")},
		},
		"a + b * c")
	// (1 + 2) * c: left operand binds looser, parentheses required
	expectPrint(t,
		&BinaryExpression{
			Left:     &BinaryExpression{Left: num("1"), Operator: "+", Right: num("2")},
			Operator: "*",
			Right:    ident("c"),
		},
		"(1 + 2) * c")
	// exponentiation right-associativity
	expectPrint(t,
		&BinaryExpression{
			Left:     ident("a"),
			Operator: "**",
			Right:    &BinaryExpression{Left: ident("b"), Operator: "**", Right: ident("c")},
		},
		"a ** b ** c")
}

func TestPrintUnary(t *testing.T) {
	expectPrint(t, &UnaryExpression{Operator: "!", Argument: ident("a")}, "!a")
	expectPrint(t, &UnaryExpression{Operator: "typeof", Argument: ident("a")}, "typeof a")
	// nested minus must not fuse into a decrement token
	expectPrint(t,
		&UnaryExpression{Operator: "-", Argument: &UnaryExpression{Operator: "-", Argument: ident("x")}},
		"-(-x)")
	expectPrint(t,
		&UpdateExpression{Operator: "++", Prefix: true, Argument: ident("i")},
		"++i")
	expectPrint(t,
		&UpdateExpression{Operator: "--", Prefix: false, Argument: ident("i")},
		"i--")
}

func TestPrintConditional(t *testing.T) {
	expectPrint(t,
		&ConditionalExpression{Test: ident("a"), Consequent: ident("b"), Alternate: ident("c")},
		"a ? b : c")
}

func TestPrintMemberCall(t *testing.T) {
	expectPrint(t,
		&CallExpression{
			Callee: &MemberExpression{
				Object:   ident("console"),
				Property: ident("log"),
			},
			Arguments: []Expression{ident("x"), num("1")},
		},
		"console.log(x, 1)")
	expectPrint(t,
		&MemberExpression{Object: ident("a"), Property: ident("i"), Computed: true},
		"a[i]")
	expectPrint(t,
		&NewExpression{Callee: ident("Foo"), Arguments: []Expression{num("1")}},
		"new Foo(1)")
}

func TestPrintArrayAndObject(t *testing.T) {
	expectPrint(t,
		&ArrayLiteral{Elements: []Expression{num("1"), nil, &SpreadElement{Argument: ident("r")}}},
		"[1, , ...r]")
	expectPrint(t,
		&ObjectLiteral{Properties: []*Property{
			{Key: ident("x"), Value: num("1")},
			{Key: ident("y"), Value: ident("y"), Shorthand: true},
		}},
		"{ x: 1, y }")
	expectPrint(t, &ObjectLiteral{}, "{}")
}

func TestPrintArrow(t *testing.T) {
	expectPrint(t,
		&ArrowFunctionExpression{
			Params: []*Parameter{{Name: ident("a")}, {Name: ident("b")}},
			Body:   &BinaryExpression{Left: ident("a"), Operator: "+", Right: ident("b")},
		},
		"(a, b) => a + b")
	expectPrint(t,
		&ArrowFunctionExpression{
			Params: []*Parameter{{Name: ident("r"), Rest: true}},
			Body:   ident("r"),
		},
		"(...r) => r")
	// object-literal body is parenthesized so it does not reparse as a block
	expectPrint(t,
		&ArrowFunctionExpression{
			Params: []*Parameter{},
			Body:   &ObjectLiteral{},
		},
		"() => ({})")
}

func TestPrintSequence(t *testing.T) {
	expectPrint(t,
		&SequenceExpression{Expressions: []Expression{ident("a"), ident("b")}},
		"a, b")
}

func TestPrintYield(t *testing.T) {
	expectPrint(t, &YieldExpression{}, "yield")
	expectPrint(t, &YieldExpression{Argument: ident("x")}, "yield x")
	expectPrint(t, &YieldExpression{Argument: ident("g"), Delegate: true}, "yield* g")
}

func TestPrintStatements(t *testing.T) {
	expectPrint(t,
		&BlockStatement{Statements: []Statement{
			&ExpressionStatement{Expression: &AssignmentExpression{Left: ident("a"), Right: num("1")}},
			&ReturnStatement{Value: ident("a")},
		}},
		"{ a = 1; return a; }")
	expectPrint(t, &ReturnStatement{}, "return;")
	expectPrint(t, &EmptyStatement{}, ";")
}

func TestPrintFunctionExpression(t *testing.T) {
	expectPrint(t,
		&FunctionExpression{
			Name:   ident("add"),
			Params: []*Parameter{{Name: ident("a")}, {Name: ident("b"), Default: num("1")}},
			Body: &BlockStatement{Statements: []Statement{
				&ReturnStatement{Value: &BinaryExpression{Left: ident("a"), Operator: "+", Right: ident("b")}},
			}},
		},
		"function add(a, b = 1) { return a + b; }")
}
