package parser

import (
	"strconv"

	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/config"
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	p.skipSeparators()
	mods := p.parseModifiers()

	switch p.curToken.Type {
	case token.CLASS:
		return p.parseClassDeclaration(mods)
	case token.STRUCT:
		return p.parseStructDeclaration(mods)
	case token.ENUM:
		return p.parseEnumDeclaration(mods)
	case token.PROTOCOL:
		return p.parseProtocolDeclaration(mods)
	case token.EXTENSION:
		return p.parseExtensionDeclaration()
	case token.FUNC:
		return p.parseFunctionDeclaration(mods)
	case token.INIT:
		return p.parseInitDeclaration(mods)
	case token.DEINIT:
		return p.parseDeinitDeclaration()
	case token.SUBSCRIPT:
		return p.parseSubscriptDeclaration(mods)
	case token.VAR:
		return p.parseBindingDeclaration(mods, false)
	case token.LET:
		return p.parseBindingDeclaration(mods, true)
	case token.TYPEALIAS:
		return p.parseTypeAliasDeclaration(mods)
	case token.OPERATOR:
		return p.parseOperatorDeclaration(mods)
	case token.IMPORT:
		if imp := p.parseImportDeclaration(); imp != nil {
			return imp
		}
		return nil
	case token.IF:
		return p.parseIfStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoLoopStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		stmt := &ast.BreakStatement{Token: p.curToken}
		p.nextToken()
		if p.curTokenIs(token.IDENT) {
			stmt.Label = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
			p.nextToken()
		}
		return stmt
	case token.CONTINUE:
		stmt := &ast.ContinueStatement{Token: p.curToken}
		p.nextToken()
		if p.curTokenIs(token.IDENT) {
			stmt.Label = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
			p.nextToken()
		}
		return stmt
	case token.FALLTHROUGH:
		stmt := &ast.FallthroughStatement{Token: p.curToken}
		p.nextToken()
		return stmt
	case token.EOF, token.RBRACE:
		return nil
	case token.IDENT:
		if p.peekTokenIs(token.COLON) {
			switch p.peekAhead().Type {
			case token.FOR, token.WHILE, token.DO, token.SWITCH:
				return p.parseLabeledStatement()
			}
		}
		return p.parseExpressionOrAssignment()
	default:
		return p.parseExpressionOrAssignment()
	}
}

func (p *Parser) parseModifiers() ast.ModifierSet {
	var mods ast.ModifierSet
	for {
		switch p.curToken.Type {
		case token.STATIC:
			mods = mods.With(ast.ModStatic)
		case token.FINAL:
			mods = mods.With(ast.ModFinal)
		case token.OVERRIDE:
			mods = mods.With(ast.ModOverride)
		case token.REQUIRED:
			mods = mods.With(ast.ModRequired)
		case token.CONVENIENCE:
			mods = mods.With(ast.ModConvenience)
		case token.DYNAMIC:
			mods = mods.With(ast.ModDynamic)
		case token.LAZY:
			mods = mods.With(ast.ModLazy)
		case token.MUTATING:
			mods = mods.With(ast.ModMutating)
		case token.NONMUTATING:
			mods = mods.With(ast.ModNonmutating)
		case token.WEAK:
			mods = mods.With(ast.ModWeak)
		case token.UNOWNED:
			mods = mods.With(p.parseUnownedModifier())
			continue
		case token.INFIX:
			mods = mods.With(ast.ModInfix)
		case token.PREFIX:
			mods = mods.With(ast.ModPrefix)
		case token.POSTFIX:
			mods = mods.With(ast.ModPostfix)
		case token.PUBLIC:
			mods = mods.With(p.parseAccessModifier(ast.ModPublic, ast.ModPublicSet))
			continue
		case token.PRIVATE:
			mods = mods.With(p.parseAccessModifier(ast.ModPrivate, ast.ModPrivateSet))
			continue
		case token.INTERNAL:
			mods = mods.With(p.parseAccessModifier(ast.ModInternal, ast.ModInternalSet))
			continue
		case token.CLASS:
			// 'class' is a member modifier only when a member declaration
			// keyword follows; otherwise it opens a class declaration.
			switch p.peekToken.Type {
			case token.FUNC, token.VAR, token.LET, token.SUBSCRIPT:
				mods = mods.With(ast.ModClass)
			default:
				return mods
			}
		default:
			return mods
		}
		p.nextToken()
	}
}

// parseUnownedModifier consumes 'unowned', optionally qualified as
// unowned(safe) / unowned(unsafe).
func (p *Parser) parseUnownedModifier() ast.Modifier {
	p.nextToken() // 'unowned'
	if !p.curTokenIs(token.LPAREN) {
		return ast.ModUnowned
	}
	p.nextToken()
	qualifier := p.curToken.Lexeme
	p.nextToken()
	p.expect(token.RPAREN)
	if qualifier == "unsafe" {
		return ast.ModUnownedUnsafe
	}
	return ast.ModUnownedSafe
}

// parseAccessModifier consumes public/private/internal, optionally with a
// (set) qualifier.
func (p *Parser) parseAccessModifier(plain, setter ast.Modifier) ast.Modifier {
	p.nextToken() // the access keyword
	if p.curTokenIs(token.LPAREN) && p.peekTokenIs(token.SET) {
		p.nextToken()
		p.nextToken()
		p.expect(token.RPAREN)
		return setter
	}
	return plain
}

// parseCodeBlock parses a braced statement list.
func (p *Parser) parseCodeBlock() *ast.CodeBlock {
	block := &ast.CodeBlock{Token: p.curToken}
	if !p.expect(token.LBRACE) {
		return block
	}
	p.skipSeparators()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else if !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			p.sync()
		}
		p.skipSeparators()
	}
	p.expect(token.RBRACE)
	return block
}

// parseMemberList parses the braced member list of a nominal type
// declaration, admitting only declarations.
func (p *Parser) parseMemberList() []ast.Declaration {
	var members []ast.Declaration
	if !p.expect(token.LBRACE) {
		return members
	}
	p.skipSeparators()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if decl, ok := stmt.(ast.Declaration); ok {
			members = append(members, decl)
		} else if stmt != nil {
			p.ctx.Errors = append(p.ctx.Errors, newUnexpected(stmt.GetToken(), "member declaration"))
		} else if !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			p.sync()
		}
		p.skipSeparators()
	}
	p.expect(token.RBRACE)
	return members
}

func (p *Parser) parseClassDeclaration(mods ast.ModifierSet) ast.Statement {
	decl := &ast.ClassDeclaration{Token: p.curToken, Modifiers: mods}
	p.nextToken() // 'class'
	if !p.curTokenIs(token.IDENT) {
		p.errorExpected("class name")
		p.sync()
		return nil
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	p.nextToken()
	decl.TypeParams, decl.Constraints = p.parseGenericClause()
	inherited := p.parseInheritanceClause()
	if len(inherited) > 0 {
		decl.SuperClass = inherited[0]
		decl.Protocols = inherited[1:]
	}
	decl.Constraints = append(decl.Constraints, p.parseWhereClause()...)
	decl.Members = p.parseMemberList()
	return decl
}

func (p *Parser) parseStructDeclaration(mods ast.ModifierSet) ast.Statement {
	decl := &ast.StructDeclaration{Token: p.curToken, Modifiers: mods}
	p.nextToken() // 'struct'
	if !p.curTokenIs(token.IDENT) {
		p.errorExpected("struct name")
		p.sync()
		return nil
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	p.nextToken()
	decl.TypeParams, decl.Constraints = p.parseGenericClause()
	decl.Protocols = p.parseInheritanceClause()
	decl.Constraints = append(decl.Constraints, p.parseWhereClause()...)
	decl.Members = p.parseMemberList()
	return decl
}

func (p *Parser) parseEnumDeclaration(mods ast.ModifierSet) ast.Statement {
	decl := &ast.EnumDeclaration{Token: p.curToken, Modifiers: mods}
	p.nextToken() // 'enum'
	if !p.curTokenIs(token.IDENT) {
		p.errorExpected("enum name")
		p.sync()
		return nil
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	p.nextToken()
	decl.TypeParams, decl.Constraints = p.parseGenericClause()
	inherited := p.parseInheritanceClause()
	// A raw-value backing must be a primitive spelling; anything else in
	// the inheritance clause is a protocol conformance.
	for i, t := range inherited {
		if i == 0 && isRawValueSpelling(t) {
			decl.RawType = t
			continue
		}
		decl.Protocols = append(decl.Protocols, t)
	}
	decl.Constraints = append(decl.Constraints, p.parseWhereClause()...)

	if !p.expect(token.LBRACE) {
		return decl
	}
	p.skipSeparators()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.CASE) {
			decl.Cases = append(decl.Cases, p.parseEnumCases()...)
		} else {
			stmt := p.parseStatement()
			if member, ok := stmt.(ast.Declaration); ok {
				decl.Members = append(decl.Members, member)
			} else if !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
				p.sync()
			}
		}
		p.skipSeparators()
	}
	p.expect(token.RBRACE)
	return decl
}

func isRawValueSpelling(t ast.TypeExpr) bool {
	id, ok := t.(*ast.TypeIdentifierExpr)
	if !ok || id.Qualifier != nil || len(id.GenericArgs) > 0 {
		return false
	}
	switch id.Name.Name {
	case "Int", "Float", "String", "Character":
		return true
	}
	return false
}

// parseEnumCases parses one `case A, B(Int), C = 1` line.
func (p *Parser) parseEnumCases() []*ast.EnumCase {
	var cases []*ast.EnumCase
	caseTok := p.curToken
	p.nextToken() // 'case'
	for {
		if !p.curTokenIs(token.IDENT) {
			p.errorExpected("case name")
			p.sync()
			return cases
		}
		c := &ast.EnumCase{Token: caseTok, Name: &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}}
		p.nextToken()
		if p.curTokenIs(token.LPAREN) {
			p.nextToken()
			for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
				c.AssociatedTypes = append(c.AssociatedTypes, p.parseType())
				if p.curTokenIs(token.COMMA) {
					p.nextToken()
				}
			}
			p.expect(token.RPAREN)
		} else if p.curTokenIs(token.ASSIGN) {
			p.nextToken()
			c.RawValue = p.parseExpression()
		}
		cases = append(cases, c)
		if !p.curTokenIs(token.COMMA) {
			return cases
		}
		p.nextToken()
	}
}

func (p *Parser) parseProtocolDeclaration(mods ast.ModifierSet) ast.Statement {
	decl := &ast.ProtocolDeclaration{Token: p.curToken, Modifiers: mods}
	p.nextToken() // 'protocol'
	if !p.curTokenIs(token.IDENT) {
		p.errorExpected("protocol name")
		p.sync()
		return nil
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	p.nextToken()
	for _, t := range p.parseInheritanceClause() {
		// ': class' marks a class-bound protocol rather than inheritance.
		if id, ok := t.(*ast.TypeIdentifierExpr); ok && id.Name.Name == "class" {
			decl.Modifiers = decl.Modifiers.With(ast.ModClass)
			continue
		}
		decl.SuperProtocols = append(decl.SuperProtocols, t)
	}
	decl.Members = p.parseMemberList()
	return decl
}

func (p *Parser) parseExtensionDeclaration() ast.Statement {
	decl := &ast.ExtensionDeclaration{Token: p.curToken}
	p.nextToken() // 'extension'
	decl.ExtendedType = p.parseType()
	decl.Protocols = p.parseInheritanceClause()
	decl.Members = p.parseMemberList()
	return decl
}

// parseInheritanceClause parses the optional `: Type, Type` suffix of a
// nominal declaration header. The 'class' constraint of a class-bound
// protocol comes back as a plain type identifier the caller recognizes.
func (p *Parser) parseInheritanceClause() []ast.TypeExpr {
	if !p.curTokenIs(token.COLON) {
		return nil
	}
	p.nextToken()
	var types []ast.TypeExpr
	for {
		if p.curTokenIs(token.CLASS) {
			types = append(types, &ast.TypeIdentifierExpr{
				Token: p.curToken,
				Name:  &ast.Identifier{Token: p.curToken, Name: "class"},
			})
			p.nextToken()
		} else {
			types = append(types, p.parseType())
		}
		if !p.curTokenIs(token.COMMA) {
			return types
		}
		p.nextToken()
	}
}

func (p *Parser) parseFunctionDeclaration(mods ast.ModifierSet) ast.Statement {
	decl := &ast.FunctionDeclaration{Token: p.curToken, Modifiers: mods}
	p.nextToken() // 'func'
	if p.curTokenIs(token.IDENT) {
		decl.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
		p.nextToken()
	} else if !p.curTokenIs(token.LPAREN) && !p.curTokenIs(token.LT) {
		// operator method: func + (lhs: Self, rhs: Self) -> Self
		decl.Operator = p.curToken.Lexeme
		p.nextToken()
	} else {
		p.errorExpected("function name")
	}
	decl.TypeParams, decl.Constraints = p.parseGenericClause()
	decl.Params = p.parseParameterList()
	if p.curTokenIs(token.ARROW) {
		p.nextToken()
		decl.ReturnType = p.parseType()
	}
	decl.Constraints = append(decl.Constraints, p.parseWhereClause()...)
	if p.curTokenIs(token.LBRACE) {
		decl.Body = p.parseCodeBlock()
	}
	return decl
}

func (p *Parser) parseInitDeclaration(mods ast.ModifierSet) ast.Statement {
	decl := &ast.InitDeclaration{Token: p.curToken, Modifiers: mods}
	p.nextToken() // 'init'
	if p.curTokenIs(token.QUESTION) {
		decl.IsFailable = true
		p.nextToken()
	}
	decl.Params = p.parseParameterList()
	if p.curTokenIs(token.LBRACE) {
		decl.Body = p.parseCodeBlock()
	}
	return decl
}

func (p *Parser) parseDeinitDeclaration() ast.Statement {
	decl := &ast.DeinitDeclaration{Token: p.curToken}
	p.nextToken() // 'deinit'
	if p.curTokenIs(token.LBRACE) {
		decl.Body = p.parseCodeBlock()
	}
	return decl
}

func (p *Parser) parseSubscriptDeclaration(mods ast.ModifierSet) ast.Statement {
	decl := &ast.SubscriptDeclaration{Token: p.curToken, Modifiers: mods}
	p.nextToken() // 'subscript'
	decl.Params = p.parseParameterList()
	if p.curTokenIs(token.ARROW) {
		p.nextToken()
		decl.ReturnType = p.parseType()
	}
	if p.curTokenIs(token.LBRACE) {
		acc := p.parseAccessorClause()
		decl.Getter = acc.getter
		decl.Setter = acc.setter
		decl.SetterName = acc.setterName
	}
	return decl
}

func (p *Parser) parseParameterList() *ast.ParameterList {
	list := &ast.ParameterList{Token: p.curToken}
	if !p.expect(token.LPAREN) {
		return list
	}
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		if param := p.parseParameter(); param != nil {
			list.Params = append(list.Params, param)
		}
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.RPAREN)
	return list
}

func (p *Parser) parseParameter() *ast.ParameterDeclaration {
	param := &ast.ParameterDeclaration{Token: p.curToken}

	first := p.curToken
	if !p.curTokenIs(token.IDENT) && !p.curTokenIs(token.UNDERSCORE) {
		p.errorExpected("parameter name")
		p.sync()
		return nil
	}
	p.nextToken()
	if p.curTokenIs(token.IDENT) {
		// two names: external label then internal name
		param.ExternalName = &ast.Identifier{Token: first, Name: first.Lexeme}
		param.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
		p.nextToken()
	} else {
		param.Name = &ast.Identifier{Token: first, Name: first.Lexeme}
	}

	if p.expect(token.COLON) {
		if p.curTokenIs(token.IDENT) && p.curToken.Lexeme == "inout" {
			param.IsInout = true
			p.nextToken()
		}
		param.TypeAnnotation = p.parseType()
		if p.curTokenIs(token.ELLIPSIS) {
			param.IsVariadic = true
			p.nextToken()
		}
	}
	if p.curTokenIs(token.ASSIGN) {
		p.nextToken()
		param.DefaultValue = p.parseExpression()
	}
	return param
}

func (p *Parser) parseTypeAliasDeclaration(mods ast.ModifierSet) ast.Statement {
	decl := &ast.TypeAliasDeclaration{Token: p.curToken, Modifiers: mods}
	p.nextToken() // 'typealias'
	if !p.curTokenIs(token.IDENT) {
		p.errorExpected("typealias name")
		p.sync()
		return nil
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	p.nextToken()
	decl.TypeParams, _ = p.parseGenericClause()
	if p.expect(token.ASSIGN) {
		decl.Target = p.parseType()
	}
	return decl
}

// parseOperatorDeclaration parses a surface operator declaration and
// registers its row in the global operator table:
//
//	infix operator ** { precedence 9 associativity right }
//
// (the fixity keyword has already been folded into mods by the caller).
func (p *Parser) parseOperatorDeclaration(mods ast.ModifierSet) ast.Statement {
	decl := &ast.OperatorDeclaration{Token: p.curToken, Fixity: "infix", Associativity: "none"}
	switch {
	case mods.Has(ast.ModPrefix):
		decl.Fixity = "prefix"
	case mods.Has(ast.ModPostfix):
		decl.Fixity = "postfix"
	}
	p.nextToken() // 'operator'
	decl.Symbol = p.curToken.Lexeme
	p.nextToken()
	if p.curTokenIs(token.LBRACE) {
		p.nextToken()
		p.skipSeparators()
		for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			switch p.curToken.Lexeme {
			case "precedence":
				p.nextToken()
				if value, err := strconv.Atoi(p.curToken.Lexeme); err == nil {
					decl.Precedence = value
				}
				p.nextToken()
			case "associativity":
				p.nextToken()
				decl.Associativity = p.curToken.Lexeme
				p.nextToken()
			default:
				p.errorExpected("precedence or associativity")
				p.sync()
			}
			p.skipSeparators()
		}
		p.expect(token.RBRACE)
	}
	config.RegisterOperator(decl.Symbol, decl.Fixity, decl.Precedence, decl.Associativity)
	return decl
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}
	p.nextToken() // 'if'
	stmt.Condition = p.parseCondition()
	stmt.Then = p.parseCodeBlock()
	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		if p.curTokenIs(token.IF) {
			stmt.Else = p.parseIfStatement()
		} else {
			stmt.Else = p.parseCodeBlock()
		}
	}
	return stmt
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	stmt := &ast.SwitchStatement{Token: p.curToken}
	p.nextToken() // 'switch'
	stmt.Subject = p.parseCondition()
	if !p.expect(token.LBRACE) {
		return stmt
	}
	p.skipSeparators()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.CASE:
			stmt.Cases = append(stmt.Cases, p.parseSwitchCase())
		case token.DEFAULT:
			defTok := p.curToken
			p.nextToken()
			p.expect(token.COLON)
			stmt.Default = p.parseCaseBody(defTok)
		default:
			p.errorExpected("case or default")
			p.sync()
		}
		p.skipSeparators()
	}
	p.expect(token.RBRACE)
	return stmt
}

func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	c := &ast.SwitchCase{Token: p.curToken}
	p.nextToken() // 'case'
	for {
		c.Patterns = append(c.Patterns, p.parseCasePattern())
		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if p.curTokenIs(token.WHERE) {
		p.nextToken()
		c.Where = p.parseCondition()
	}
	p.expect(token.COLON)
	c.Body = p.parseCaseBody(c.Token)
	return c
}

// parseCaseBody collects statements up to the next case/default arm or
// the switch's closing brace.
func (p *Parser) parseCaseBody(tok token.Token) *ast.CodeBlock {
	body := &ast.CodeBlock{Token: tok}
	p.skipSeparators()
	for !p.curTokenIs(token.CASE) && !p.curTokenIs(token.DEFAULT) &&
		!p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			body.Statements = append(body.Statements, stmt)
		} else {
			break
		}
		p.skipSeparators()
	}
	return body
}

// parseForStatement disambiguates `for pattern in sequence` from the
// classic `for init; condition; step` form by scanning ahead for a
// semicolon before the loop body opens.
func (p *Parser) parseForStatement() ast.Statement {
	forTok := p.curToken
	if p.classicForAhead() {
		return p.parseClassicFor(forTok)
	}
	stmt := &ast.ForInStatement{Token: forTok}
	p.nextToken() // 'for'
	stmt.Pattern = p.parsePattern()
	p.expect(token.IN)
	stmt.Sequence = p.parseCondition()
	stmt.Body = p.parseCodeBlock()
	return stmt
}

func (p *Parser) classicForAhead() bool {
	if p.peekTokenIs(token.SEMI) {
		return true
	}
	for i := 0; i < 64; i++ {
		toks := p.stream.Peek(i + 1)
		if len(toks) <= i {
			return false
		}
		switch toks[i].Type {
		case token.SEMI:
			return true
		case token.IN, token.LBRACE, token.NEWLINE, token.EOF:
			return false
		}
	}
	return false
}

func (p *Parser) parseClassicFor(forTok token.Token) ast.Statement {
	stmt := &ast.ForStatement{Token: forTok}
	p.nextToken() // 'for'
	if !p.curTokenIs(token.SEMI) {
		stmt.Init = p.parseStatement()
	}
	p.expect(token.SEMI)
	if !p.curTokenIs(token.SEMI) {
		stmt.Condition = p.parseCondition()
	}
	p.expect(token.SEMI)
	if !p.curTokenIs(token.LBRACE) {
		stmt.Step = p.parseExpressionOrAssignment()
	}
	stmt.Body = p.parseCodeBlock()
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}
	p.nextToken() // 'while'
	stmt.Condition = p.parseCondition()
	stmt.Body = p.parseCodeBlock()
	return stmt
}

func (p *Parser) parseDoLoopStatement() ast.Statement {
	stmt := &ast.DoLoopStatement{Token: p.curToken}
	p.nextToken() // 'do'
	stmt.Body = p.parseCodeBlock()
	p.skipSeparators()
	if p.expect(token.WHILE) {
		stmt.Condition = p.parseCondition()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken() // 'return'
	if !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.SEMI) &&
		!p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt.Value = p.parseExpression()
	}
	return stmt
}

func (p *Parser) parseLabeledStatement() ast.Statement {
	stmt := &ast.LabeledStatement{Token: p.curToken}
	stmt.Label = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	p.nextToken() // label
	p.nextToken() // ':'
	stmt.Statement = p.parseStatement()
	return stmt
}

func (p *Parser) parseExpressionOrAssignment() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression()
	if expr == nil {
		p.sync()
		return nil
	}
	switch p.curToken.Type {
	case token.ASSIGN:
		p.nextToken()
		return &ast.AssignmentStatement{Token: tok, Target: expr, Value: p.parseExpression()}
	case token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN:
		op := p.curToken.Lexeme
		p.nextToken()
		return &ast.AssignmentStatement{Token: tok, Target: expr, CompoundOperator: op[:len(op)-1], Value: p.parseExpression()}
	}
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

func newUnexpected(tok token.Token, expected string) *diagnostics.DiagnosticError {
	return diagnostics.New(diagnostics.ErrUnexpectedToken, diagnostics.PhaseParser, tok, expected, tok.Lexeme)
}

// accessorClause is the parsed body of a `{ get ... set ... }` clause on
// a var declaration or subscript.
type accessorClause struct {
	getter     *ast.CodeBlock
	setter     *ast.CodeBlock
	setterName *ast.Identifier
	hasGet     bool
	hasSet     bool
}

// requirementOnly reports a protocol-style `{ get set }` clause with no
// accessor bodies.
func (a accessorClause) requirementOnly() bool {
	return a.getter == nil && a.setter == nil && (a.hasGet || a.hasSet)
}

func (p *Parser) parseAccessorClause() accessorClause {
	var acc accessorClause
	openTok := p.curToken
	p.nextToken() // '{'
	p.skipSeparators()

	if !p.accessorKeyword() {
		// Implicit getter: the clause body is the getter's statements.
		getter := &ast.CodeBlock{Token: openTok}
		for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			if stmt := p.parseStatement(); stmt != nil {
				getter.Statements = append(getter.Statements, stmt)
			} else {
				break
			}
			p.skipSeparators()
		}
		p.expect(token.RBRACE)
		acc.getter = getter
		acc.hasGet = true
		return acc
	}

	for p.accessorKeyword() {
		isGet := p.curToken.Lexeme == "get"
		p.nextToken()
		if isGet {
			acc.hasGet = true
			if p.curTokenIs(token.LBRACE) {
				acc.getter = p.parseCodeBlock()
			}
		} else {
			acc.hasSet = true
			if p.curTokenIs(token.LPAREN) {
				p.nextToken()
				if p.curTokenIs(token.IDENT) {
					acc.setterName = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
					p.nextToken()
				}
				p.expect(token.RPAREN)
			}
			if p.curTokenIs(token.LBRACE) {
				acc.setter = p.parseCodeBlock()
			}
		}
		p.skipSeparators()
	}
	p.expect(token.RBRACE)
	return acc
}

func (p *Parser) accessorKeyword() bool {
	if p.curTokenIs(token.SET) {
		return true
	}
	return p.curTokenIs(token.IDENT) && p.curToken.Lexeme == "get"
}

// parseBindingDeclaration parses a `var`/`let` declaration: one or more
// comma-separated bindings, each an (optionally typed, optionally
// initialized) pattern. A single identifier binding whose clause is a
// bodiless `{ get set }` comes back as a computed-property requirement
// instead.
func (p *Parser) parseBindingDeclaration(mods ast.ModifierSet, isConstant bool) ast.Statement {
	declTok := p.curToken
	p.nextToken() // 'var' / 'let'

	var bindings []*ast.ValueBindingDeclaration
	for {
		b := &ast.ValueBindingDeclaration{Token: p.curToken}
		b.Pattern = p.parseBindingPattern()
		if p.curTokenIs(token.COLON) {
			p.nextToken()
			b.TypeAnnotation = p.parseType()
		}
		switch {
		case p.curTokenIs(token.ASSIGN):
			p.nextToken()
			b.Initializer = p.parseExpression()
		case p.curTokenIs(token.LBRACE) && !isConstant:
			acc := p.parseAccessorClause()
			if acc.requirementOnly() && len(bindings) == 0 {
				if id, ok := b.Pattern.(*ast.IdentifierPattern); ok {
					return &ast.ComputedPropertyDeclaration{
						Token:          declTok,
						Name:           &ast.Identifier{Token: b.Token, Name: id.Name},
						TypeAnnotation: b.TypeAnnotation,
						HasGetter:      acc.hasGet,
						HasSetter:      acc.hasSet,
						Modifiers:      mods,
					}
				}
			}
			b.Getter = acc.getter
			b.Setter = acc.setter
			b.SetterName = acc.setterName
		}
		bindings = append(bindings, b)
		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if isConstant {
		return &ast.ConstantDeclaration{Token: declTok, Bindings: bindings, Modifiers: mods}
	}
	return &ast.VariableDeclaration{Token: declTok, Bindings: bindings, Modifiers: mods}
}
