package ast

import (
	"bytes"
	"strconv"

	"github.com/cwbudde/go-jsengine/internal/token"
)

// NumberLiteral is a numeric literal, stored pre-parsed as a float64.
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *NumberLiteral) String() string       { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BooleanLiteral) Pos() token.Position  { return b.Token.Pos }
func (b *BooleanLiteral) String() string       { return b.Token.Literal }

// StringLiteral is a quoted string literal, already unescaped by the lexer.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) Pos() token.Position  { return s.Token.Pos }
func (s *StringLiteral) String() string       { return strconv.Quote(s.Value) }

// NullLiteral is `null`.
type NullLiteral struct{ Token token.Token }

func (n *NullLiteral) expressionNode()      {}
func (n *NullLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NullLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *NullLiteral) String() string       { return "null" }

// UndefinedLiteral is `undefined`.
type UndefinedLiteral struct{ Token token.Token }

func (u *UndefinedLiteral) expressionNode()      {}
func (u *UndefinedLiteral) TokenLiteral() string { return u.Token.Literal }
func (u *UndefinedLiteral) Pos() token.Position  { return u.Token.Pos }
func (u *UndefinedLiteral) String() string       { return "undefined" }

// NaNLiteral is the `NaN` keyword literal.
type NaNLiteral struct{ Token token.Token }

func (n *NaNLiteral) expressionNode()      {}
func (n *NaNLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NaNLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *NaNLiteral) String() string       { return "NaN" }

// ThisExpression is the `this` keyword.
type ThisExpression struct{ Token token.Token }

func (t *ThisExpression) expressionNode()      {}
func (t *ThisExpression) TokenLiteral() string { return t.Token.Literal }
func (t *ThisExpression) Pos() token.Position  { return t.Token.Pos }
func (t *ThisExpression) String() string       { return "this" }

// ObjectProperty is a single `key: value` pair inside an ObjectLiteral.
type ObjectProperty struct {
	Key   *Identifier
	Value Expression
}

// ObjectLiteral is `{ key: value, ... }`.
type ObjectLiteral struct {
	Token      token.Token // the '{'
	Properties []ObjectProperty
}

func (o *ObjectLiteral) expressionNode()      {}
func (o *ObjectLiteral) TokenLiteral() string { return o.Token.Literal }
func (o *ObjectLiteral) Pos() token.Position  { return o.Token.Pos }
func (o *ObjectLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, p := range o.Properties {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.Key.String())
		out.WriteString(": ")
		out.WriteString(p.Value.String())
	}
	out.WriteString("}")
	return out.String()
}

// ArrayLiteral is `[ elem, ... ]`.
type ArrayLiteral struct {
	Token    token.Token // the '['
	Elements []Expression
}

func (a *ArrayLiteral) expressionNode()      {}
func (a *ArrayLiteral) TokenLiteral() string { return a.Token.Literal }
func (a *ArrayLiteral) Pos() token.Position  { return a.Token.Pos }
func (a *ArrayLiteral) String() string {
	return "[" + joinExpressions(a.Elements) + "]"
}

// MemberExpression is `object.property` (Computed = false, Property is a
// string-valued Identifier-as-key) or `object[expr]` (Computed = true,
// Property is an arbitrary Expression).
type MemberExpression struct {
	Token    token.Token // the '.' or '['
	Object   Expression
	Property Expression
	Computed bool
}

func (m *MemberExpression) expressionNode()      {}
func (m *MemberExpression) TokenLiteral() string { return m.Token.Literal }
func (m *MemberExpression) Pos() token.Position  { return m.Token.Pos }
func (m *MemberExpression) String() string {
	if m.Computed {
		return "(" + m.Object.String() + "[" + m.Property.String() + "])"
	}
	return "(" + m.Object.String() + "." + m.Property.String() + ")"
}

// UnaryExpression is a prefix operator applied to a single operand:
// `!x`, `-x`, `~x`, `typeof x`.
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (u *UnaryExpression) expressionNode()      {}
func (u *UnaryExpression) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpression) Pos() token.Position  { return u.Token.Pos }
func (u *UnaryExpression) String() string {
	return "(" + u.Operator + u.Right.String() + ")"
}

// UpdateExpression is `x++` or `x--` applied to an identifier.
type UpdateExpression struct {
	Token    token.Token
	Operator string
	Target   *Identifier
	Prefix   bool
}

func (u *UpdateExpression) expressionNode()      {}
func (u *UpdateExpression) TokenLiteral() string { return u.Token.Literal }
func (u *UpdateExpression) Pos() token.Position  { return u.Token.Pos }
func (u *UpdateExpression) String() string {
	if u.Prefix {
		return "(" + u.Operator + u.Target.String() + ")"
	}
	return "(" + u.Target.String() + u.Operator + ")"
}

// BinaryExpression covers arithmetic, comparison, equality, bitwise,
// logical, nullish-coalescing, and assignment operators.
type BinaryExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpression) expressionNode()      {}
func (b *BinaryExpression) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpression) Pos() token.Position  { return b.Token.Pos }
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// Parameter is a function parameter with an optional default-value
// expression, evaluated only when the caller omits the argument.
type Parameter struct {
	Name    *Identifier
	Default Expression // nil if no default
}

// FunctionLiteral is `function (params) { body }`, used both as a statement
// expression and as a value bound to a name via `let`/`const`.
type FunctionLiteral struct {
	Token      token.Token // the 'function' keyword
	Name       string      // non-empty for named function expressions
	Parameters []Parameter
	Body       *BlockStatement
}

func (f *FunctionLiteral) expressionNode()      {}
func (f *FunctionLiteral) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionLiteral) Pos() token.Position  { return f.Token.Pos }
func (f *FunctionLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("function")
	if f.Name != "" {
		out.WriteString(" " + f.Name)
	}
	out.WriteString("(")
	for i, p := range f.Parameters {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.Name.String())
		if p.Default != nil {
			out.WriteString(" = " + p.Default.String())
		}
	}
	out.WriteString(") ")
	out.WriteString(f.Body.String())
	return out.String()
}

// CallExpression is `callee(arguments...)`.
type CallExpression struct {
	Token     token.Token // the '('
	Callee    Expression
	Arguments []Expression
}

func (c *CallExpression) expressionNode()      {}
func (c *CallExpression) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpression) Pos() token.Position  { return c.Token.Pos }
func (c *CallExpression) String() string {
	return c.Callee.String() + "(" + joinExpressions(c.Arguments) + ")"
}
