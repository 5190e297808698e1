package ast

import (
	"bytes"

	"github.com/cwbudde/go-jsengine/internal/token"
)

// LetStatement declares a mutable, block-scoped binding.
type LetStatement struct {
	Token token.Token
	Name  *Identifier
	Value Expression // nil binds Undefined
}

func (l *LetStatement) statementNode()      {}
func (l *LetStatement) TokenLiteral() string { return l.Token.Literal }
func (l *LetStatement) Pos() token.Position  { return l.Token.Pos }
func (l *LetStatement) String() string {
	var out bytes.Buffer
	out.WriteString("let " + l.Name.String())
	if l.Value != nil {
		out.WriteString(" = " + l.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ConstStatement declares an immutable, block-scoped binding; Value is
// always non-nil (the parser rejects a const without an initializer).
type ConstStatement struct {
	Token token.Token
	Name  *Identifier
	Value Expression
}

func (c *ConstStatement) statementNode()      {}
func (c *ConstStatement) TokenLiteral() string { return c.Token.Literal }
func (c *ConstStatement) Pos() token.Position  { return c.Token.Pos }
func (c *ConstStatement) String() string {
	return "const " + c.Name.String() + " = " + c.Value.String() + ";"
}

// ReturnStatement is `return [expr];`, legal only inside a function body.
type ReturnStatement struct {
	Token       token.Token
	ReturnValue Expression // nil yields Undefined
}

func (r *ReturnStatement) statementNode()      {}
func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStatement) Pos() token.Position  { return r.Token.Pos }
func (r *ReturnStatement) String() string {
	if r.ReturnValue == nil {
		return "return;"
	}
	return "return " + r.ReturnValue.String() + ";"
}

// ExpressionStatement wraps a bare expression used as a statement; its value
// becomes the program's result if it is the last statement executed.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (e *ExpressionStatement) statementNode()      {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) Pos() token.Position  { return e.Token.Pos }
func (e *ExpressionStatement) String() string {
	if e.Expression != nil {
		return e.Expression.String()
	}
	return ""
}

// FunctionStatement declares a named function in the enclosing scope, e.g.
// `function add(a, b) { return a + b; }`. Unlike a bare function-literal
// expression statement, the name is required and is bound before the body
// can be called, so the function can call itself by name for recursion.
type FunctionStatement struct {
	Token    token.Token // the 'function' keyword
	Name     *Identifier
	Function *FunctionLiteral
}

func (f *FunctionStatement) statementNode()       {}
func (f *FunctionStatement) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionStatement) Pos() token.Position  { return f.Token.Pos }
func (f *FunctionStatement) String() string       { return f.Function.String() }

// BlockStatement is `{ statements... }`; each block introduces a new lexical
// scope when evaluated.
type BlockStatement struct {
	Token      token.Token // the '{'
	Statements []Statement
}

func (b *BlockStatement) statementNode()      {}
func (b *BlockStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStatement) Pos() token.Position  { return b.Token.Pos }
func (b *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range b.Statements {
		out.WriteString(s.String())
	}
	out.WriteString(" }")
	return out.String()
}

// IfStatement is `if (test) consequent [else alternate]`.
type IfStatement struct {
	Token      token.Token
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil if no else clause
}

func (i *IfStatement) statementNode()      {}
func (i *IfStatement) TokenLiteral() string { return i.Token.Literal }
func (i *IfStatement) Pos() token.Position  { return i.Token.Pos }
func (i *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (" + i.Test.String() + ") " + i.Consequent.String())
	if i.Alternate != nil {
		out.WriteString(" else " + i.Alternate.String())
	}
	return out.String()
}

// SwitchCase is one `case expr: statements...` clause, or the `default:`
// clause when Test is nil.
type SwitchCase struct {
	Test       Expression // nil for default
	Statements []Statement
}

// SwitchStatement is `switch (discriminant) { case ...: ... default: ... }`.
type SwitchStatement struct {
	Token        token.Token
	Discriminant Expression
	Cases        []SwitchCase
}

func (s *SwitchStatement) statementNode()      {}
func (s *SwitchStatement) TokenLiteral() string { return s.Token.Literal }
func (s *SwitchStatement) Pos() token.Position  { return s.Token.Pos }
func (s *SwitchStatement) String() string {
	var out bytes.Buffer
	out.WriteString("switch (" + s.Discriminant.String() + ") { ")
	for _, c := range s.Cases {
		if c.Test != nil {
			out.WriteString("case " + c.Test.String() + ": ")
		} else {
			out.WriteString("default: ")
		}
		for _, stmt := range c.Statements {
			out.WriteString(stmt.String())
		}
	}
	out.WriteString(" }")
	return out.String()
}

// ForStatement is the classic three-part C-style loop header; Init may be
// either a declaration Statement (let/const) or an Expression wrapped in an
// ExpressionStatement, and each of Init/Test/Update may be nil.
type ForStatement struct {
	Token  token.Token
	Init   Statement
	Test   Expression
	Update Expression
	Body   Statement
}

func (f *ForStatement) statementNode()      {}
func (f *ForStatement) TokenLiteral() string { return f.Token.Literal }
func (f *ForStatement) Pos() token.Position  { return f.Token.Pos }
func (f *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	if f.Init != nil {
		out.WriteString(f.Init.String())
	}
	out.WriteString("; ")
	if f.Test != nil {
		out.WriteString(f.Test.String())
	}
	out.WriteString("; ")
	if f.Update != nil {
		out.WriteString(f.Update.String())
	}
	out.WriteString(") " + f.Body.String())
	return out.String()
}

// BreakStatement is `break;`.
type BreakStatement struct{ Token token.Token }

func (b *BreakStatement) statementNode()      {}
func (b *BreakStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BreakStatement) Pos() token.Position  { return b.Token.Pos }
func (b *BreakStatement) String() string       { return "break;" }

// ContinueStatement is `continue;`.
type ContinueStatement struct{ Token token.Token }

func (c *ContinueStatement) statementNode()      {}
func (c *ContinueStatement) TokenLiteral() string { return c.Token.Literal }
func (c *ContinueStatement) Pos() token.Position  { return c.Token.Pos }
func (c *ContinueStatement) String() string       { return "continue;" }
