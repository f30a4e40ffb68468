package ast

import "github.com/funvibe/swifty/internal/token"

// TypeIdentifierExpr is a (possibly generic, possibly qualified) named
// type reference: Int, List<Int>, Outer.Inner<T>.
type TypeIdentifierExpr struct {
	Token       token.Token
	Qualifier   TypeExpr // non-nil for Outer.Inner style nested lookup
	Name        *Identifier
	GenericArgs []TypeExpr
}

func (t *TypeIdentifierExpr) Accept(v Visitor)      { v.VisitTypeIdentifierExpr(t) }
func (t *TypeIdentifierExpr) typeExprNode()         {}
func (t *TypeIdentifierExpr) TokenLiteral() string  { return t.Token.Lexeme }
func (t *TypeIdentifierExpr) GetToken() token.Token { return t.Token }
func (t *TypeIdentifierExpr) Info() SourceInfo      { return sourceInfoOf(t.Token) }

// TupleTypeExpr: (Int, name: String)
type TupleTypeExpr struct {
	Token    token.Token
	Elements []TypeExpr
	Labels   []string // parallel to Elements; "" means unlabeled
}

func (t *TupleTypeExpr) Accept(v Visitor)      { v.VisitTupleTypeExpr(t) }
func (t *TupleTypeExpr) typeExprNode()         {}
func (t *TupleTypeExpr) TokenLiteral() string  { return t.Token.Lexeme }
func (t *TupleTypeExpr) GetToken() token.Token { return t.Token }
func (t *TupleTypeExpr) Info() SourceInfo      { return sourceInfoOf(t.Token) }

// ArrayTypeExpr: [Element]
type ArrayTypeExpr struct {
	Token       token.Token
	ElementType TypeExpr
}

func (t *ArrayTypeExpr) Accept(v Visitor)      { v.VisitArrayTypeExpr(t) }
func (t *ArrayTypeExpr) typeExprNode()         {}
func (t *ArrayTypeExpr) TokenLiteral() string  { return t.Token.Lexeme }
func (t *ArrayTypeExpr) GetToken() token.Token { return t.Token }
func (t *ArrayTypeExpr) Info() SourceInfo      { return sourceInfoOf(t.Token) }

// DictionaryTypeExpr: [Key: Value]
type DictionaryTypeExpr struct {
	Token     token.Token
	KeyType   TypeExpr
	ValueType TypeExpr
}

func (t *DictionaryTypeExpr) Accept(v Visitor)      { v.VisitDictionaryTypeExpr(t) }
func (t *DictionaryTypeExpr) typeExprNode()         {}
func (t *DictionaryTypeExpr) TokenLiteral() string  { return t.Token.Lexeme }
func (t *DictionaryTypeExpr) GetToken() token.Token { return t.Token }
func (t *DictionaryTypeExpr) Info() SourceInfo      { return sourceInfoOf(t.Token) }

// OptionalTypeExpr: T?
type OptionalTypeExpr struct {
	Token   token.Token
	Wrapped TypeExpr
}

func (t *OptionalTypeExpr) Accept(v Visitor)      { v.VisitOptionalTypeExpr(t) }
func (t *OptionalTypeExpr) typeExprNode()         {}
func (t *OptionalTypeExpr) TokenLiteral() string  { return t.Token.Lexeme }
func (t *OptionalTypeExpr) GetToken() token.Token { return t.Token }
func (t *OptionalTypeExpr) Info() SourceInfo      { return sourceInfoOf(t.Token) }

// ImplicitlyUnwrappedOptionalTypeExpr: T!
type ImplicitlyUnwrappedOptionalTypeExpr struct {
	Token   token.Token
	Wrapped TypeExpr
}

func (t *ImplicitlyUnwrappedOptionalTypeExpr) Accept(v Visitor) {
	v.VisitImplicitlyUnwrappedOptionalTypeExpr(t)
}
func (t *ImplicitlyUnwrappedOptionalTypeExpr) typeExprNode()         {}
func (t *ImplicitlyUnwrappedOptionalTypeExpr) TokenLiteral() string  { return t.Token.Lexeme }
func (t *ImplicitlyUnwrappedOptionalTypeExpr) GetToken() token.Token { return t.Token }
func (t *ImplicitlyUnwrappedOptionalTypeExpr) Info() SourceInfo      { return sourceInfoOf(t.Token) }

// FunctionTypeExpr: (Int, Int) -> Bool
type FunctionTypeExpr struct {
	Token      token.Token
	Params     []TypeExpr
	ReturnType TypeExpr
}

func (t *FunctionTypeExpr) Accept(v Visitor)      { v.VisitFunctionTypeExpr(t) }
func (t *FunctionTypeExpr) typeExprNode()         {}
func (t *FunctionTypeExpr) TokenLiteral() string  { return t.Token.Lexeme }
func (t *FunctionTypeExpr) GetToken() token.Token { return t.Token }
func (t *FunctionTypeExpr) Info() SourceInfo      { return sourceInfoOf(t.Token) }

// ProtocolCompositionTypeExpr: A & B & C
type ProtocolCompositionTypeExpr struct {
	Token      token.Token
	Protocols  []TypeExpr
}

func (t *ProtocolCompositionTypeExpr) Accept(v Visitor)      { v.VisitProtocolCompositionTypeExpr(t) }
func (t *ProtocolCompositionTypeExpr) typeExprNode()         {}
func (t *ProtocolCompositionTypeExpr) TokenLiteral() string  { return t.Token.Lexeme }
func (t *ProtocolCompositionTypeExpr) GetToken() token.Token { return t.Token }
func (t *ProtocolCompositionTypeExpr) Info() SourceInfo      { return sourceInfoOf(t.Token) }
