package parser

import (
	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/token"
)

// parseType parses a full type expression, including the postfix sugar
// forms (T?, T!), protocol compositions (A & B) and function arrows.
func (p *Parser) parseType() ast.TypeExpr {
	t := p.parseTypeBase()
	for {
		switch p.curToken.Type {
		case token.QUESTION:
			t = &ast.OptionalTypeExpr{Token: p.curToken, Wrapped: t}
			p.nextToken()
		case token.BANG:
			t = &ast.ImplicitlyUnwrappedOptionalTypeExpr{Token: p.curToken, Wrapped: t}
			p.nextToken()
		case token.AMPERSAND:
			comp := &ast.ProtocolCompositionTypeExpr{Token: p.curToken, Protocols: []ast.TypeExpr{t}}
			for p.curTokenIs(token.AMPERSAND) {
				p.nextToken()
				comp.Protocols = append(comp.Protocols, p.parseTypeBase())
			}
			t = comp
		case token.ARROW:
			// shorthand single-parameter function type: Int -> Bool
			arrowTok := p.curToken
			p.nextToken()
			ret := p.parseType()
			t = &ast.FunctionTypeExpr{Token: arrowTok, Params: []ast.TypeExpr{t}, ReturnType: ret}
		default:
			return t
		}
	}
}

func (p *Parser) parseTypeBase() ast.TypeExpr {
	switch p.curToken.Type {
	case token.LPAREN:
		return p.parseParenType()
	case token.LBRACKET:
		return p.parseBracketType()
	case token.IDENT, token.SELF_TYPE:
		return p.parseTypeIdentifier()
	default:
		p.errorExpected("type")
		p.nextToken()
		return nil
	}
}

// parseParenType handles tuple types, parenthesized types, and the
// parameter clause of a function type.
func (p *Parser) parseParenType() ast.TypeExpr {
	tok := p.curToken
	p.nextToken() // '('
	var elems []ast.TypeExpr
	var labels []string
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		label := ""
		if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.COLON) {
			label = p.curToken.Lexeme
			p.nextToken()
			p.nextToken()
		}
		elems = append(elems, p.parseType())
		labels = append(labels, label)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.RPAREN)

	if p.curTokenIs(token.ARROW) {
		arrowTok := p.curToken
		p.nextToken()
		ret := p.parseType()
		return &ast.FunctionTypeExpr{Token: arrowTok, Params: elems, ReturnType: ret}
	}
	if len(elems) == 1 && labels[0] == "" {
		return elems[0]
	}
	return &ast.TupleTypeExpr{Token: tok, Elements: elems, Labels: labels}
}

// parseBracketType handles the [Element] and [Key: Value] sugar.
func (p *Parser) parseBracketType() ast.TypeExpr {
	tok := p.curToken
	p.nextToken() // '['
	first := p.parseType()
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		value := p.parseType()
		p.expect(token.RBRACKET)
		return &ast.DictionaryTypeExpr{Token: tok, KeyType: first, ValueType: value}
	}
	p.expect(token.RBRACKET)
	return &ast.ArrayTypeExpr{Token: tok, ElementType: first}
}

func (p *Parser) parseTypeIdentifier() ast.TypeExpr {
	tok := p.curToken
	t := &ast.TypeIdentifierExpr{
		Token: tok,
		Name:  &ast.Identifier{Token: tok, Name: tok.Lexeme},
	}
	p.nextToken()
	if p.curTokenIs(token.LT) {
		t.GenericArgs = p.parseGenericArgs()
	}
	for p.curTokenIs(token.DOT) && p.peekTokenIs(token.IDENT) {
		p.nextToken() // '.'
		inner := &ast.TypeIdentifierExpr{
			Token:     p.curToken,
			Qualifier: t,
			Name:      &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme},
		}
		p.nextToken()
		if p.curTokenIs(token.LT) {
			inner.GenericArgs = p.parseGenericArgs()
		}
		t = inner
	}
	return t
}

// parseGenericArgs parses <T, U, ...>. A closing '>>' from a nested
// argument list (Dictionary<String, Array<Int>>) is split in place: the
// inner list consumes one '>' and rewrites the current token so the
// outer list still sees its own closer.
func (p *Parser) parseGenericArgs() []ast.TypeExpr {
	p.nextToken() // '<'
	var args []ast.TypeExpr
	for !p.curTokenIs(token.GT) && !p.curTokenIs(token.RSHIFT) && !p.curTokenIs(token.EOF) {
		args = append(args, p.parseType())
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	p.closeGenericAngle()
	return args
}

func (p *Parser) closeGenericAngle() {
	switch p.curToken.Type {
	case token.GT:
		p.nextToken()
	case token.RSHIFT:
		p.curToken.Type = token.GT
		p.curToken.Lexeme = ">"
		p.curToken.Column++
	default:
		p.errorExpected(">")
	}
}

// parseGenericClause parses a declaration's <T, U: Protocol> parameter
// clause, returning the parameter names and any inline constraints.
func (p *Parser) parseGenericClause() ([]*ast.Identifier, []*ast.TypeConstraint) {
	if !p.curTokenIs(token.LT) {
		return nil, nil
	}
	p.nextToken() // '<'
	var params []*ast.Identifier
	var constraints []*ast.TypeConstraint
	for p.curTokenIs(token.IDENT) {
		param := &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
		params = append(params, param)
		p.nextToken()
		if p.curTokenIs(token.COLON) {
			p.nextToken()
			constraints = append(constraints, &ast.TypeConstraint{Param: param, Protocol: p.parseType()})
		}
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	p.closeGenericAngle()
	return params, constraints
}

// parseWhereClause parses `where T: Protocol, U == Concrete` constraint
// lists; same-type requirements are recorded as constraints against the
// concrete type.
func (p *Parser) parseWhereClause() []*ast.TypeConstraint {
	if !p.curTokenIs(token.WHERE) {
		return nil
	}
	p.nextToken()
	var constraints []*ast.TypeConstraint
	for p.curTokenIs(token.IDENT) {
		param := &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
		p.nextToken()
		switch p.curToken.Type {
		case token.COLON, token.EQ:
			p.nextToken()
			constraints = append(constraints, &ast.TypeConstraint{Param: param, Protocol: p.parseType()})
		default:
			p.errorExpected(": or ==")
			return constraints
		}
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	return constraints
}
