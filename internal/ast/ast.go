// Package ast defines the tagged-variant syntax tree produced by the parser
// and consumed by the type resolver and semantic analyzer. Every node kind
// is a concrete Go type; Node.Accept offers double dispatch through Visitor.
package ast

import (
	"math/big"

	"github.com/funvibe/swifty/internal/token"
)

// SourceInfo is the three-field position every node exposes: a content hash
// of the file it came from plus line/column. It is a thin projection of the
// originating token, not a second position type threaded through the parser.
type SourceInfo struct {
	FileHash string
	Line     int
	Column   int
}

func sourceInfoOf(tok token.Token) SourceInfo {
	return SourceInfo{FileHash: tok.FileHash, Line: tok.Line, Column: tok.Column}
}

// Node is the base interface implemented by every tree element.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	Info() SourceInfo
	Accept(v Visitor)
}

// Statement is a Node appearing in a CodeBlock's statement list.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Declaration is a Node introducing a named entity into scope.
type Declaration interface {
	Statement
	declarationNode()
}

// TypeExpr is a syntactic type reference (as written by the programmer,
// before resolution by internal/resolver).
type TypeExpr interface {
	Node
	typeExprNode()
}

// Pattern is a syntactic pattern used in value bindings, for-in loops, and
// switch cases.
type Pattern interface {
	Node
	patternNode()
}

// Program is the root of every tree this module analyzes: a single
// compilation unit (spec scope explicitly excludes cross-module graphs).
type Program struct {
	Token   token.Token
	Imports []*ImportDeclaration
	Decls   []Declaration
}

func (p *Program) Accept(v Visitor)      { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string  { return p.Token.Lexeme }
func (p *Program) GetToken() token.Token { return p.Token }
func (p *Program) Info() SourceInfo      { return sourceInfoOf(p.Token) }

// CodeBlock is a braced sequence of statements — a function body, an if/else
// arm, a loop body, and so on.
type CodeBlock struct {
	Token      token.Token // '{'
	Statements []Statement
}

func (b *CodeBlock) Accept(v Visitor)      { v.VisitCodeBlock(b) }
func (b *CodeBlock) statementNode()        {}
func (b *CodeBlock) TokenLiteral() string  { return b.Token.Lexeme }
func (b *CodeBlock) GetToken() token.Token { return b.Token }
func (b *CodeBlock) Info() SourceInfo      { return sourceInfoOf(b.Token) }

// Identifier is a bare name reference.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) Info() SourceInfo      { return sourceInfoOf(i.Token) }

// BigIntLiteral is kept for integer literals wider than an int64, matching
// the teacher's use of math/big for numeric literal values.
type BigIntLiteral struct {
	Token token.Token
	Value *big.Int
}

func (b *BigIntLiteral) Accept(v Visitor)      { v.VisitBigIntLiteral(b) }
func (b *BigIntLiteral) expressionNode()       {}
func (b *BigIntLiteral) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BigIntLiteral) GetToken() token.Token { return b.Token }
func (b *BigIntLiteral) Info() SourceInfo      { return sourceInfoOf(b.Token) }
