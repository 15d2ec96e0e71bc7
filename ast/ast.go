package ast

import "github.com/example/jsgo/token"

// Node is the interface all AST nodes implement.
type Node interface {
	TokenLiteral() string
	nodeType() string
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// ---------- Statements ----------
//
// Only the subset a function body needs. The full statement grammar lives
// above this layer.

type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

type ReturnStatement struct {
	Token token.Token
	Value Expression // may be nil
}

type EmptyStatement struct {
	Token token.Token
}

// ---------- Expressions ----------

type Identifier struct {
	Token token.Token
	Name  string
}

type NumberLiteral struct {
	Token token.Token
	Value string // source spelling, including hex/bigint forms
}

type StringLiteral struct {
	Token token.Token
	Value string
}

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

type NullLiteral struct {
	Token token.Token
}

type UndefinedLiteral struct {
	Token token.Token
}

type RegExpLiteral struct {
	Token   token.Token
	Pattern string
	Flags   string
}

type ThisExpression struct {
	Token token.Token
}

// ArrayLiteral elements may contain nil entries for elisions ([a, , b]).
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

type ObjectLiteral struct {
	Token      token.Token
	Properties []*Property
}

// Property is one entry of an object literal. A spread entry has a nil Key
// and its *SpreadElement as the Value.
type Property struct {
	Token     token.Token
	Key       Expression
	Value     Expression
	Computed  bool
	Shorthand bool
}

type SequenceExpression struct {
	Token       token.Token
	Expressions []Expression
}

// Parameter is a formal parameter: an identifier, optionally with a default
// value, optionally a rest parameter.
type Parameter struct {
	Name    *Identifier
	Default Expression // may be nil
	Rest    bool
}

type FunctionExpression struct {
	Token  token.Token
	Name   *Identifier // may be nil
	Params []*Parameter
	Body   *BlockStatement
}

// ArrowFunctionExpression has either an expression body (concise form) or a
// *BlockStatement body.
type ArrowFunctionExpression struct {
	Token  token.Token
	Params []*Parameter
	Body   Node
}

type UnaryExpression struct {
	Token    token.Token
	Operator string // "!", "~", "+", "-", "typeof", "void", "delete"
	Argument Expression
}

type UpdateExpression struct {
	Token    token.Token
	Operator string // "++" or "--"
	Prefix   bool
	Argument Expression
}

// BinaryExpression covers arithmetic, relational, bitwise and logical
// operators, including the compound forms ("+=", "&&=", ...) an assignment
// punctuator carries.
type BinaryExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

type ConditionalExpression struct {
	Token      token.Token
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

// AssignmentExpression is a plain `=` assignment. Compound operators build a
// BinaryExpression instead.
type AssignmentExpression struct {
	Token token.Token
	Left  Expression
	Right Expression
}

type MemberExpression struct {
	Token    token.Token
	Object   Expression
	Property Expression
	Computed bool
}

type CallExpression struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
}

type NewExpression struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
}

type SpreadElement struct {
	Token    token.Token
	Argument Expression
}

type YieldExpression struct {
	Token    token.Token
	Argument Expression // may be nil
	Delegate bool
}

type AwaitExpression struct {
	Token    token.Token
	Argument Expression
}

// ---------- Interface implementations ----------

func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) nodeType() string     { return "ExpressionStatement" }

func (s *BlockStatement) statementNode()       {}
func (s *BlockStatement) TokenLiteral() string { return s.Token.Literal }
func (s *BlockStatement) nodeType() string     { return "BlockStatement" }

func (s *ReturnStatement) statementNode()       {}
func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStatement) nodeType() string     { return "ReturnStatement" }

func (s *EmptyStatement) statementNode()       {}
func (s *EmptyStatement) TokenLiteral() string { return s.Token.Literal }
func (s *EmptyStatement) nodeType() string     { return "EmptyStatement" }

func (e *Identifier) expressionNode()      {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) nodeType() string     { return "Identifier" }

func (e *NumberLiteral) expressionNode()      {}
func (e *NumberLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *NumberLiteral) nodeType() string     { return "NumberLiteral" }

func (e *StringLiteral) expressionNode()      {}
func (e *StringLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *StringLiteral) nodeType() string     { return "StringLiteral" }

func (e *BooleanLiteral) expressionNode()      {}
func (e *BooleanLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *BooleanLiteral) nodeType() string     { return "BooleanLiteral" }

func (e *NullLiteral) expressionNode()      {}
func (e *NullLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *NullLiteral) nodeType() string     { return "NullLiteral" }

func (e *UndefinedLiteral) expressionNode()      {}
func (e *UndefinedLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *UndefinedLiteral) nodeType() string     { return "UndefinedLiteral" }

func (e *RegExpLiteral) expressionNode()      {}
func (e *RegExpLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *RegExpLiteral) nodeType() string     { return "RegExpLiteral" }

func (e *ThisExpression) expressionNode()      {}
func (e *ThisExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ThisExpression) nodeType() string     { return "ThisExpression" }

func (e *ArrayLiteral) expressionNode()      {}
func (e *ArrayLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *ArrayLiteral) nodeType() string     { return "ArrayLiteral" }

func (e *ObjectLiteral) expressionNode()      {}
func (e *ObjectLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *ObjectLiteral) nodeType() string     { return "ObjectLiteral" }

func (e *SequenceExpression) expressionNode()      {}
func (e *SequenceExpression) TokenLiteral() string { return e.Token.Literal }
func (e *SequenceExpression) nodeType() string     { return "SequenceExpression" }

func (e *FunctionExpression) expressionNode()      {}
func (e *FunctionExpression) TokenLiteral() string { return e.Token.Literal }
func (e *FunctionExpression) nodeType() string     { return "FunctionExpression" }

func (e *ArrowFunctionExpression) expressionNode()      {}
func (e *ArrowFunctionExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ArrowFunctionExpression) nodeType() string     { return "ArrowFunctionExpression" }

func (e *UnaryExpression) expressionNode()      {}
func (e *UnaryExpression) TokenLiteral() string { return e.Token.Literal }
func (e *UnaryExpression) nodeType() string     { return "UnaryExpression" }

func (e *UpdateExpression) expressionNode()      {}
func (e *UpdateExpression) TokenLiteral() string { return e.Token.Literal }
func (e *UpdateExpression) nodeType() string     { return "UpdateExpression" }

func (e *BinaryExpression) expressionNode()      {}
func (e *BinaryExpression) TokenLiteral() string { return e.Token.Literal }
func (e *BinaryExpression) nodeType() string     { return "BinaryExpression" }

func (e *ConditionalExpression) expressionNode()      {}
func (e *ConditionalExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ConditionalExpression) nodeType() string     { return "ConditionalExpression" }

func (e *AssignmentExpression) expressionNode()      {}
func (e *AssignmentExpression) TokenLiteral() string { return e.Token.Literal }
func (e *AssignmentExpression) nodeType() string     { return "AssignmentExpression" }

func (e *MemberExpression) expressionNode()      {}
func (e *MemberExpression) TokenLiteral() string { return e.Token.Literal }
func (e *MemberExpression) nodeType() string     { return "MemberExpression" }

func (e *CallExpression) expressionNode()      {}
func (e *CallExpression) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpression) nodeType() string     { return "CallExpression" }

func (e *NewExpression) expressionNode()      {}
func (e *NewExpression) TokenLiteral() string { return e.Token.Literal }
func (e *NewExpression) nodeType() string     { return "NewExpression" }

func (e *SpreadElement) expressionNode()      {}
func (e *SpreadElement) TokenLiteral() string { return e.Token.Literal }
func (e *SpreadElement) nodeType() string     { return "SpreadElement" }

func (e *YieldExpression) expressionNode()      {}
func (e *YieldExpression) TokenLiteral() string { return e.Token.Literal }
func (e *YieldExpression) nodeType() string     { return "YieldExpression" }

func (e *AwaitExpression) expressionNode()      {}
func (e *AwaitExpression) TokenLiteral() string { return e.Token.Literal }
func (e *AwaitExpression) nodeType() string     { return "AwaitExpression" }
