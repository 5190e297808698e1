package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-jsengine/internal/ast"
	"github.com/cwbudde/go-jsengine/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.addError("no prefix parse function for %s found", p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

// parseIdentifierOrUpdate parses a bare identifier, promoting it to an
// UpdateExpression when immediately followed by `++`/`--`.
func (p *Parser) parseIdentifierOrUpdate() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(token.INC) || p.peekTokenIs(token.DEC) {
		opTok := p.peekToken
		p.nextToken()
		return &ast.UpdateExpression{Token: opTok, Operator: opTok.Literal, Target: ident, Prefix: false}
	}

	return ident
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	tok := p.curToken
	value, err := parseNumberLiteralText(tok.Literal)
	if err != nil {
		p.addError("could not parse %q as number: %s", tok.Literal, err)
		return nil
	}
	return &ast.NumberLiteral{Token: tok, Value: value}
}

// parseNumberLiteralText converts a lexed numeric literal (decimal, 0x/0o/0b
// prefixed) into a float64.
func parseNumberLiteralText(lit string) (float64, error) {
	lower := strings.ToLower(lit)
	switch {
	case strings.HasPrefix(lower, "0x"):
		n, err := strconv.ParseInt(lit[2:], 16, 64)
		return float64(n), err
	case strings.HasPrefix(lower, "0o"):
		n, err := strconv.ParseInt(lit[2:], 8, 64)
		return float64(n), err
	case strings.HasPrefix(lower, "0b"):
		n, err := strconv.ParseInt(lit[2:], 2, 64)
		return float64(n), err
	default:
		return strconv.ParseFloat(lit, 64)
	}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNullLiteral() ast.Expression      { return &ast.NullLiteral{Token: p.curToken} }
func (p *Parser) parseUndefinedLiteral() ast.Expression { return &ast.UndefinedLiteral{Token: p.curToken} }
func (p *Parser) parseNaNLiteral() ast.Expression       { return &ast.NaNLiteral{Token: p.curToken} }
func (p *Parser) parseThisExpression() ast.Expression   { return &ast.ThisExpression{Token: p.curToken} }

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(token.Unary)
	return &ast.UnaryExpression{Token: tok, Operator: tok.Literal, Right: right}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(token.Lowest)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	obj := &ast.ObjectLiteral{Token: p.curToken}

	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		if !p.curTokenIs(token.IDENT) {
			p.addError("expected property key identifier, got %s", p.curToken.Type)
			return nil
		}
		key := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(token.Lowest)

		obj.Properties = append(obj.Properties, ast.ObjectProperty{Key: key, Value: value})

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return obj
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.curToken}
	arr.Elements = p.parseExpressionList(token.RBRACKET)
	return arr
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(token.Lowest))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(token.Lowest))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.curToken}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		fn.Name = p.curToken.Literal
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	fn.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	return fn
}

func (p *Parser) parseFunctionParameters() []ast.Parameter {
	var params []ast.Parameter

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, p.parseOneParameter())

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseOneParameter())
	}

	p.expectPeek(token.RPAREN)
	return params
}

func (p *Parser) parseOneParameter() ast.Parameter {
	param := ast.Parameter{Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		param.Default = p.parseExpression(token.Assign)
	}
	return param
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{Token: p.curToken, Operator: p.curToken.Literal, Left: left}
	precedence := p.curPrecedence()
	p.nextToken()
	if expr.Operator == "**" {
		// Right-associative: a ** b ** c == a ** (b ** c).
		expr.Right = p.parseExpression(precedence - 1)
	} else {
		expr.Right = p.parseExpression(precedence)
	}
	return expr
}

// parseAssignExpression parses `=`; the left-hand side must be an
// Identifier or a MemberExpression (enforced by the interpreter/compiler,
// not here, mirroring how the parser stays permissive about target shape).
func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{Token: p.curToken, Operator: "=", Left: left}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence - 1)
	return expr
}

func (p *Parser) parseMemberExpression(object ast.Expression) ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	prop := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	return &ast.MemberExpression{Token: tok, Object: object, Property: prop, Computed: false}
}

func (p *Parser) parseComputedMemberExpression(object ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	prop := p.parseExpression(token.Lowest)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.MemberExpression{Token: tok, Object: object, Property: prop, Computed: true}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Callee: callee}
	expr.Arguments = p.parseExpressionList(token.RPAREN)
	return expr
}
