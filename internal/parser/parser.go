// Package parser builds the untyped syntax tree the semantic core
// analyzes. Binary operator expressions are deliberately produced flat
// and left-leaning, with no precedence applied — internal/opresolve
// re-sorts them before analysis.
package parser

import (
	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/pipeline"
	"github.com/funvibe/swifty/internal/token"
)

// Parser holds the state of our parser.
type Parser struct {
	stream    pipeline.TokenStream
	curToken  token.Token
	peekToken token.Token
	ctx       *pipeline.PipelineContext

	// noTrailingClosure disables trailing-closure syntax while parsing a
	// control-flow condition, where a bare '{' opens the body instead.
	noTrailingClosure bool
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

// peekAhead returns the token after peekToken without consuming anything.
func (p *Parser) peekAhead() token.Token {
	toks := p.stream.Peek(1)
	if len(toks) == 0 {
		return token.Token{Type: token.EOF}
	}
	return toks[0]
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// expect checks that the current token has the given type and consumes
// it; on mismatch it reports a diagnostic and leaves the token in place.
func (p *Parser) expect(t token.TokenType) bool {
	if p.curTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorExpected(string(t))
	return false
}

func (p *Parser) errorExpected(expected string) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.New(
		diagnostics.ErrUnexpectedToken, diagnostics.PhaseParser, p.curToken,
		expected, p.curToken.Lexeme))
}

// skipSeparators consumes any run of newline/semicolon statement
// separators.
func (p *Parser) skipSeparators() {
	for p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMI) {
		p.nextToken()
	}
}

// sync skips forward to the next statement boundary after a parse error,
// so one malformed declaration doesn't cascade into a diagnostic per
// token.
func (p *Parser) sync() {
	for !p.curTokenIs(token.EOF) && !p.curTokenIs(token.NEWLINE) &&
		!p.curTokenIs(token.SEMI) && !p.curTokenIs(token.RBRACE) {
		p.nextToken()
	}
}

// ParseProgram parses one compilation unit.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Token: p.curToken}

	p.skipSeparators()
	for p.curTokenIs(token.IMPORT) {
		if imp := p.parseImportDeclaration(); imp != nil {
			program.Imports = append(program.Imports, imp)
		}
		p.skipSeparators()
	}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt == nil {
			if !p.curTokenIs(token.EOF) {
				p.errorExpected("declaration")
				p.nextToken()
			}
			p.skipSeparators()
			continue
		}
		if decl, ok := stmt.(ast.Declaration); ok {
			program.Decls = append(program.Decls, decl)
		} else {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.New(
				diagnostics.ErrUnexpectedToken, diagnostics.PhaseParser, stmt.GetToken(),
				"declaration", stmt.TokenLiteral()))
		}
		p.skipSeparators()
	}
	return program
}

func (p *Parser) parseImportDeclaration() *ast.ImportDeclaration {
	decl := &ast.ImportDeclaration{Token: p.curToken}
	p.nextToken() // 'import'
	if !p.curTokenIs(token.IDENT) {
		p.errorExpected("module name")
		p.sync()
		return nil
	}
	decl.Path = append(decl.Path, &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme})
	p.nextToken()
	for p.curTokenIs(token.DOT) {
		p.nextToken()
		if !p.curTokenIs(token.IDENT) {
			p.errorExpected("module name")
			break
		}
		decl.Path = append(decl.Path, &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme})
		p.nextToken()
	}
	return decl
}

// identName reports whether the current token can stand where an
// identifier is expected — a plain IDENT, or a keyword that doubles as a
// member name ('set', 'default', ...).
func (p *Parser) identName() (string, bool) {
	switch p.curToken.Type {
	case token.IDENT, token.SET, token.DEFAULT, token.IN:
		return p.curToken.Lexeme, true
	case token.INT:
		// tuple element access: pair.0
		return p.curToken.Lexeme, true
	default:
		return "", false
	}
}
