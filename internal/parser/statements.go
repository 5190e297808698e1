package parser

import (
	"github.com/cwbudde/go-jsengine/internal/ast"
	"github.com/cwbudde/go-jsengine/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.CONST:
		return p.parseConstStatement()
	case token.FUNCTION:
		return p.parseFunctionStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) skipOptionalSemicolon() {
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
}

func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	if isReservedWord(p.curToken.Literal) {
		p.addError("cannot use reserved word %q as identifier", p.curToken.Literal)
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		stmt.Value = p.parseExpression(token.Lowest)
	}

	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseConstStatement() *ast.ConstStatement {
	stmt := &ast.ConstStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	if isReservedWord(p.curToken.Literal) {
		p.addError("cannot use reserved word %q as identifier", p.curToken.Literal)
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		p.addError("const %q requires an initializer", stmt.Name.Value)
		return nil
	}
	p.nextToken()
	stmt.Value = p.parseExpression(token.Lowest)

	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.ReturnValue = p.parseExpression(token.Lowest)
	p.skipOptionalSemicolon()
	return stmt
}

// parseFunctionStatement parses a named function declaration
// (`function name(params) { body }`). It reuses parseFunctionLiteral for
// the name/parameters/body production and requires the name to be present,
// unlike a function-literal expression where the name is optional.
func (p *Parser) parseFunctionStatement() *ast.FunctionStatement {
	tok := p.curToken

	lit, ok := p.parseFunctionLiteral().(*ast.FunctionLiteral)
	if !ok {
		return nil
	}
	if lit.Name == "" {
		p.addError("function declaration requires a name")
		return nil
	}

	return &ast.FunctionStatement{
		Token:    tok,
		Name:     &ast.Identifier{Token: tok, Value: lit.Name},
		Function: lit,
	}
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	stmt := &ast.BreakStatement{Token: p.curToken}
	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseContinueStatement() *ast.ContinueStatement {
	stmt := &ast.ContinueStatement{Token: p.curToken}
	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Test = p.parseExpression(token.Lowest)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Consequent = p.parseStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Alternate = p.parseStatement()
	}

	return stmt
}

func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	stmt := &ast.SwitchStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Discriminant = p.parseExpression(token.Lowest)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		var c ast.SwitchCase
		switch p.curToken.Type {
		case token.CASE:
			p.nextToken()
			c.Test = p.parseExpression(token.Lowest)
			if !p.expectPeek(token.COLON) {
				return nil
			}
			p.nextToken()
		case token.DEFAULT:
			if !p.expectPeek(token.COLON) {
				return nil
			}
			p.nextToken()
		default:
			p.addError("expected case or default, got %s", p.curToken.Type)
			return nil
		}

		for !p.curTokenIs(token.CASE) && !p.curTokenIs(token.DEFAULT) &&
			!p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			s := p.parseStatement()
			if len(p.errors) > 0 {
				return nil
			}
			if s != nil {
				c.Statements = append(c.Statements, s)
			}
			p.nextToken()
		}

		stmt.Cases = append(stmt.Cases, c)
	}

	return stmt
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken()
	switch p.curToken.Type {
	case token.SEMICOLON:
		// empty init; curToken already sits on the ';'
	case token.LET:
		stmt.Init = p.parseLetStatement()
	case token.CONST:
		stmt.Init = p.parseConstStatement()
	default:
		tok := p.curToken
		expr := p.parseExpression(token.Lowest)
		stmt.Init = &ast.ExpressionStatement{Token: tok, Expression: expr}
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
	}

	p.nextToken()
	if !p.curTokenIs(token.SEMICOLON) {
		stmt.Test = p.parseExpression(token.Lowest)
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
	}

	p.nextToken()
	if !p.curTokenIs(token.RPAREN) {
		stmt.Update = p.parseExpression(token.Lowest)
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}

	p.nextToken()
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if len(p.errors) > 0 {
			return block
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(token.Lowest)
	p.skipOptionalSemicolon()
	return stmt
}
