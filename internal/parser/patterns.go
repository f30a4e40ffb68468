package parser

import (
	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/token"
)

// parsePattern parses the pattern forms accepted by for-in loops and
// switch cases: wildcards, identifiers, literals, tuples, enum cases and
// let/var binding wrappers.
func (p *Parser) parsePattern() ast.Pattern {
	switch p.curToken.Type {
	case token.UNDERSCORE:
		pat := &ast.WildcardPattern{Token: p.curToken}
		p.nextToken()
		return pat
	case token.LET:
		tok := p.curToken
		p.nextToken()
		return &ast.ValueBindingPattern{Token: tok, IsConstant: true, Inner: p.parsePattern()}
	case token.VAR:
		tok := p.curToken
		p.nextToken()
		return &ast.ValueBindingPattern{Token: tok, IsConstant: false, Inner: p.parsePattern()}
	case token.LPAREN:
		return p.parseTuplePattern()
	case token.DOT:
		return p.parseEnumCasePattern(nil, p.curToken)
	case token.IDENT:
		if p.peekTokenIs(token.DOT) {
			enumType := p.parseTypeIdentifierForPattern()
			if p.curTokenIs(token.DOT) {
				return p.parseEnumCasePattern(enumType, enumType.GetToken())
			}
			// lone identifier after all; fall through via the parsed name
			id := enumType.(*ast.TypeIdentifierExpr)
			return &ast.IdentifierPattern{Token: id.Token, Name: id.Name.Name}
		}
		pat := &ast.IdentifierPattern{Token: p.curToken, Name: p.curToken.Lexeme}
		p.nextToken()
		return pat
	case token.INT, token.FLOAT, token.STRING, token.TRUE, token.FALSE, token.NIL:
		pat := &ast.LiteralPattern{Token: p.curToken, Value: p.curToken.Literal}
		p.nextToken()
		return pat
	default:
		p.errorExpected("pattern")
		p.nextToken()
		return nil
	}
}

// parseCasePattern parses one pattern of a switch-case arm. The ':' that
// follows the pattern list belongs to the case, so typed patterns only
// occur inside tuples here.
func (p *Parser) parseCasePattern() ast.Pattern {
	return p.parsePattern()
}

func (p *Parser) parseTuplePattern() *ast.TuplePattern {
	pat := &ast.TuplePattern{Token: p.curToken}
	p.nextToken() // '('
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		elem := p.parseAssociatedPattern()
		if p.curTokenIs(token.COLON) {
			colonTok := p.curToken
			p.nextToken()
			elem = &ast.TypedPattern{Token: colonTok, Inner: elem, TypeAnnotation: p.parseType()}
		}
		if elem != nil {
			pat.Elements = append(pat.Elements, elem)
		}
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.RPAREN)
	return pat
}

// parseAssociatedPattern parses a sub-pattern nested inside a tuple or an
// enum case's associated-value list, where a let/var prefix marks just
// that element rather than the whole pattern.
func (p *Parser) parseAssociatedPattern() ast.Pattern {
	switch p.curToken.Type {
	case token.LET:
		tok := p.curToken
		p.nextToken()
		return &ast.LetPattern{Token: tok, Inner: p.parseAssociatedPattern()}
	case token.VAR:
		tok := p.curToken
		p.nextToken()
		return &ast.VarPattern{Token: tok, Inner: p.parseAssociatedPattern()}
	default:
		return p.parsePattern()
	}
}

// parseEnumCasePattern parses `.caseName(associated...)`; enumType is the
// explicit enum spelling when written `Color.red`, nil for the inferred
// leading-dot form.
func (p *Parser) parseEnumCasePattern(enumType ast.TypeExpr, tok token.Token) ast.Pattern {
	p.nextToken() // '.'
	if !p.curTokenIs(token.IDENT) {
		p.errorExpected("case name")
		return nil
	}
	pat := &ast.EnumCasePattern{
		Token:    tok,
		EnumType: enumType,
		CaseName: &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme},
	}
	p.nextToken()
	if p.curTokenIs(token.LPAREN) {
		p.nextToken()
		for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
			if elem := p.parseAssociatedPattern(); elem != nil {
				pat.Associated = append(pat.Associated, elem)
			}
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		p.expect(token.RPAREN)
	}
	return pat
}

// parseTypeIdentifierForPattern reads the Type (or Type<Args>) prefix of
// a qualified enum-case pattern, stopping before the '.case' part.
func (p *Parser) parseTypeIdentifierForPattern() ast.TypeExpr {
	tok := p.curToken
	t := &ast.TypeIdentifierExpr{Token: tok, Name: &ast.Identifier{Token: tok, Name: tok.Lexeme}}
	p.nextToken()
	if p.curTokenIs(token.LT) {
		t.GenericArgs = p.parseGenericArgs()
	}
	return t
}

// parseBindingPattern parses the pattern of a var/let binding: a plain
// identifier, a wildcard, or a (possibly nested) tuple whose elements may
// carry their own type annotations.
func (p *Parser) parseBindingPattern() ast.Pattern {
	switch p.curToken.Type {
	case token.UNDERSCORE:
		pat := &ast.IdentifierPattern{Token: p.curToken, Name: "_"}
		p.nextToken()
		return pat
	case token.IDENT:
		pat := &ast.IdentifierPattern{Token: p.curToken, Name: p.curToken.Lexeme}
		p.nextToken()
		return pat
	case token.LPAREN:
		return p.parseBindingTuplePattern()
	case token.LET, token.VAR:
		// nested binding introducers are rejected by the analyzer; keep the
		// shape so the diagnostic points at them.
		tok := p.curToken
		isLet := p.curTokenIs(token.LET)
		p.nextToken()
		inner := p.parseBindingPattern()
		if isLet {
			return &ast.LetPattern{Token: tok, Inner: inner}
		}
		return &ast.VarPattern{Token: tok, Inner: inner}
	default:
		p.errorExpected("binding pattern")
		p.nextToken()
		return nil
	}
}

func (p *Parser) parseBindingTuplePattern() ast.Pattern {
	pat := &ast.TuplePattern{Token: p.curToken}
	p.nextToken() // '('
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		elem := p.parseBindingPattern()
		if p.curTokenIs(token.COLON) {
			colonTok := p.curToken
			p.nextToken()
			elem = &ast.TypedPattern{Token: colonTok, Inner: elem, TypeAnnotation: p.parseType()}
		}
		if elem != nil {
			pat.Elements = append(pat.Elements, elem)
		}
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.RPAREN)
	return pat
}
