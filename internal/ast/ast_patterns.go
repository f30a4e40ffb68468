package ast

import "github.com/funvibe/swifty/internal/token"

// WildcardPattern: _
type WildcardPattern struct {
	Token token.Token
}

func (p *WildcardPattern) Accept(v Visitor)      { v.VisitWildcardPattern(p) }
func (p *WildcardPattern) patternNode()          {}
func (p *WildcardPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *WildcardPattern) GetToken() token.Token { return p.Token }
func (p *WildcardPattern) Info() SourceInfo      { return sourceInfoOf(p.Token) }

// IdentifierPattern binds the matched value to a name: x
type IdentifierPattern struct {
	Token token.Token
	Name  string
}

func (p *IdentifierPattern) Accept(v Visitor)      { v.VisitIdentifierPattern(p) }
func (p *IdentifierPattern) patternNode()          {}
func (p *IdentifierPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *IdentifierPattern) GetToken() token.Token { return p.Token }
func (p *IdentifierPattern) Info() SourceInfo      { return sourceInfoOf(p.Token) }

// LiteralPattern matches a constant value: 1, "x", true
type LiteralPattern struct {
	Token token.Token
	Value interface{}
}

func (p *LiteralPattern) Accept(v Visitor)      { v.VisitLiteralPattern(p) }
func (p *LiteralPattern) patternNode()          {}
func (p *LiteralPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *LiteralPattern) GetToken() token.Token { return p.Token }
func (p *LiteralPattern) Info() SourceInfo      { return sourceInfoOf(p.Token) }

// TuplePattern: (a, b, _)
type TuplePattern struct {
	Token    token.Token
	Elements []Pattern
}

func (p *TuplePattern) Accept(v Visitor)      { v.VisitTuplePattern(p) }
func (p *TuplePattern) patternNode()          {}
func (p *TuplePattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *TuplePattern) GetToken() token.Token { return p.Token }
func (p *TuplePattern) Info() SourceInfo      { return sourceInfoOf(p.Token) }

// TypedPattern attaches an explicit type annotation to a sub-pattern:
// n: Int inside a value binding or a case arm.
type TypedPattern struct {
	Token          token.Token
	Inner          Pattern
	TypeAnnotation TypeExpr
}

func (p *TypedPattern) Accept(v Visitor)      { v.VisitTypedPattern(p) }
func (p *TypedPattern) patternNode()          {}
func (p *TypedPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *TypedPattern) GetToken() token.Token { return p.Token }
func (p *TypedPattern) Info() SourceInfo      { return sourceInfoOf(p.Token) }

// LetPattern marks a nested sub-pattern as immutable inside an enum-case
// pattern: case .some(let x). Forbidden to nest inside another
// LetPattern/VarPattern (E_VAR_LET_NESTED_IN_PATTERN_IS_FORBIDDEN).
type LetPattern struct {
	Token token.Token
	Inner Pattern
}

func (p *LetPattern) Accept(v Visitor)      { v.VisitLetPattern(p) }
func (p *LetPattern) patternNode()          {}
func (p *LetPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *LetPattern) GetToken() token.Token { return p.Token }
func (p *LetPattern) Info() SourceInfo      { return sourceInfoOf(p.Token) }

// VarPattern is the mutable counterpart of LetPattern: case .some(var x).
type VarPattern struct {
	Token token.Token
	Inner Pattern
}

func (p *VarPattern) Accept(v Visitor)      { v.VisitVarPattern(p) }
func (p *VarPattern) patternNode()          {}
func (p *VarPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *VarPattern) GetToken() token.Token { return p.Token }
func (p *VarPattern) Info() SourceInfo      { return sourceInfoOf(p.Token) }

// EnumCasePattern: .some(x), Color.red, Optional<Int>.none
type EnumCasePattern struct {
	Token      token.Token
	EnumType   TypeExpr // nil when inferred from context (leading-dot form)
	CaseName   *Identifier
	Associated []Pattern
}

func (p *EnumCasePattern) Accept(v Visitor)      { v.VisitEnumCasePattern(p) }
func (p *EnumCasePattern) patternNode()          {}
func (p *EnumCasePattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *EnumCasePattern) GetToken() token.Token { return p.Token }
func (p *EnumCasePattern) Info() SourceInfo      { return sourceInfoOf(p.Token) }

// ValueBindingPattern is the top-level `var`/`let` wrapper that introduces
// a binding pattern in a for-in loop or switch case (as opposed to the
// nested LetPattern/VarPattern used inside an enum-case pattern).
type ValueBindingPattern struct {
	Token       token.Token
	IsConstant  bool
	Inner       Pattern
}

func (p *ValueBindingPattern) Accept(v Visitor)      { v.VisitValueBindingPattern(p) }
func (p *ValueBindingPattern) patternNode()          {}
func (p *ValueBindingPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ValueBindingPattern) GetToken() token.Token { return p.Token }
func (p *ValueBindingPattern) Info() SourceInfo      { return sourceInfoOf(p.Token) }
