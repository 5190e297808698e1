// Package parser implements a Pratt (top-down operator-precedence) parser
// that turns a token stream from internal/lexer into an internal/ast tree.
package parser

import (
	"fmt"

	"github.com/cwbudde/go-jsengine/internal/ast"
	"github.com/cwbudde/go-jsengine/internal/lexer"
	"github.com/cwbudde/go-jsengine/internal/token"
)

// prefixParseFn parses an expression that begins with curToken (literals,
// unary operators, grouping, object/array literals, function literals).
type prefixParseFn func() ast.Expression

// infixParseFn parses the continuation of an expression given the
// already-parsed left operand.
type infixParseFn func(left ast.Expression) ast.Expression

// Error is a parser diagnostic: a message and the token it was raised at.
type Error struct {
	Message string
	Pos     token.Position
}

func (e Error) Error() string { return fmt.Sprintf("%s at %s", e.Message, e.Pos) }

// Parser consumes tokens from a Lexer and builds an AST. On error it
// records a diagnostic and halts parse_program; statements parsed
// successfully up to that point are retained (§9 of the design).
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []Error

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over l and primes curToken/peekToken.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:     p.parseIdentifierOrUpdate,
		token.NUMBER:    p.parseNumberLiteral,
		token.STRING:    p.parseStringLiteral,
		token.TRUE:      p.parseBooleanLiteral,
		token.FALSE:     p.parseBooleanLiteral,
		token.NULL:      p.parseNullLiteral,
		token.UNDEFINED: p.parseUndefinedLiteral,
		token.NAN:       p.parseNaNLiteral,
		token.THIS:      p.parseThisExpression,
		token.BANG:      p.parseUnaryExpression,
		token.MINUS:     p.parseUnaryExpression,
		token.TILDE:     p.parseUnaryExpression,
		token.TYPEOF:    p.parseUnaryExpression,
		token.LPAREN:    p.parseGroupedExpression,
		token.LBRACE:    p.parseObjectLiteral,
		token.LBRACKET:  p.parseArrayLiteral,
		token.FUNCTION:  p.parseFunctionLiteral,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:               p.parseBinaryExpression,
		token.MINUS:              p.parseBinaryExpression,
		token.ASTERISK:           p.parseBinaryExpression,
		token.SLASH:              p.parseBinaryExpression,
		token.PERCENT:            p.parseBinaryExpression,
		token.EXP:                p.parseBinaryExpression,
		token.PIPE:               p.parseBinaryExpression,
		token.AMP:                p.parseBinaryExpression,
		token.CARET:              p.parseBinaryExpression,
		token.SHL:                p.parseBinaryExpression,
		token.SHR:                p.parseBinaryExpression,
		token.USHR:               p.parseBinaryExpression,
		token.LT:                 p.parseBinaryExpression,
		token.GT:                 p.parseBinaryExpression,
		token.LT_EQ:              p.parseBinaryExpression,
		token.GT_EQ:              p.parseBinaryExpression,
		token.EQ:                 p.parseBinaryExpression,
		token.NOT_EQ:             p.parseBinaryExpression,
		token.STRICT_EQ:          p.parseBinaryExpression,
		token.STRICT_NOT_EQ:      p.parseBinaryExpression,
		token.AND:                p.parseBinaryExpression,
		token.OR:                 p.parseBinaryExpression,
		token.NULLISH_COALESCING: p.parseBinaryExpression,
		token.ASSIGN:             p.parseAssignExpression,
		token.DOT:                p.parseMemberExpression,
		token.LBRACKET:           p.parseComputedMemberExpression,
		token.LPAREN:             p.parseCallExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns diagnostics accumulated during parsing.
func (p *Parser) Errors() []Error { return p.errors }

func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, Error{Message: fmt.Sprintf(format, args...), Pos: p.curToken.Pos})
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addError("expected next token to be %s, got %s instead", t, p.peekToken.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := token.Precedences[p.peekToken.Type]; ok {
		return pr
	}
	return token.Lowest
}

func (p *Parser) curPrecedence() int {
	if pr, ok := token.Precedences[p.curToken.Type]; ok {
		return pr
	}
	return token.Lowest
}

// isReservedWord reports whether lit names one of the engine's keywords,
// used to reject reserved words in binding position.
func isReservedWord(lit string) bool {
	return token.LookupIdent(lit) != token.IDENT
}

// ParseProgram parses the full token stream into a Program. On the first
// parse error it stops consuming further statements; whatever parsed
// successfully so far is returned in Program.Statements.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if len(p.errors) > 0 {
			break
		}
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}
