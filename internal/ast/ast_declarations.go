package ast

import "github.com/funvibe/swifty/internal/token"

// TypeConstraint is a single `T: Protocol` generic constraint attached to a
// type parameter list.
type TypeConstraint struct {
	Param     *Identifier
	Protocol  TypeExpr
}

// ParameterDeclaration is one entry in a ParameterList.
type ParameterDeclaration struct {
	Token        token.Token
	ExternalName *Identifier // argument label; nil means same as Name
	Name         *Identifier
	TypeAnnotation TypeExpr
	DefaultValue Expression
	IsVariadic   bool
	IsInout      bool
}

func (p *ParameterDeclaration) Accept(v Visitor)      { v.VisitParameterDeclaration(p) }
func (p *ParameterDeclaration) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ParameterDeclaration) GetToken() token.Token { return p.Token }
func (p *ParameterDeclaration) Info() SourceInfo      { return sourceInfoOf(p.Token) }

// ParameterList is the parenthesized parameter clause of a function,
// initializer, subscript, or closure.
type ParameterList struct {
	Token  token.Token // '('
	Params []*ParameterDeclaration
}

func (p *ParameterList) Accept(v Visitor)      { v.VisitParameterList(p) }
func (p *ParameterList) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ParameterList) GetToken() token.Token { return p.Token }
func (p *ParameterList) Info() SourceInfo      { return sourceInfoOf(p.Token) }

// ImportDeclaration imports a single-level nested module path, optionally
// under an alias: import Foo.Bar as FB
type ImportDeclaration struct {
	Token token.Token
	Path  []*Identifier
	Alias *Identifier
}

func (d *ImportDeclaration) Accept(v Visitor)      { v.VisitImportDeclaration(d) }
func (d *ImportDeclaration) statementNode()        {}
func (d *ImportDeclaration) declarationNode()      {}
func (d *ImportDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *ImportDeclaration) GetToken() token.Token { return d.Token }
func (d *ImportDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// ClassDeclaration: class Name<T: P>: Super, Protocol { ... }
type ClassDeclaration struct {
	Token       token.Token
	Name        *Identifier
	TypeParams  []*Identifier
	Constraints []*TypeConstraint
	SuperClass  TypeExpr
	Protocols   []TypeExpr
	Members     []Declaration
	Modifiers   ModifierSet
}

func (d *ClassDeclaration) Accept(v Visitor)      { v.VisitClassDeclaration(d) }
func (d *ClassDeclaration) statementNode()        {}
func (d *ClassDeclaration) declarationNode()      {}
func (d *ClassDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *ClassDeclaration) GetToken() token.Token { return d.Token }
func (d *ClassDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// StructDeclaration: struct Name<T: P>: Protocol { ... }
type StructDeclaration struct {
	Token       token.Token
	Name        *Identifier
	TypeParams  []*Identifier
	Constraints []*TypeConstraint
	Protocols   []TypeExpr
	Members     []Declaration
	Modifiers   ModifierSet
}

func (d *StructDeclaration) Accept(v Visitor)      { v.VisitStructDeclaration(d) }
func (d *StructDeclaration) statementNode()        {}
func (d *StructDeclaration) declarationNode()      {}
func (d *StructDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *StructDeclaration) GetToken() token.Token { return d.Token }
func (d *StructDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// EnumCase is a single `case Name(AssociatedTypes...)` or `case Name = RawValue`.
type EnumCase struct {
	Token           token.Token
	Name            *Identifier
	AssociatedTypes []TypeExpr
	RawValue        Expression
}

func (c *EnumCase) Accept(v Visitor)      { v.VisitEnumCase(c) }
func (c *EnumCase) TokenLiteral() string  { return c.Token.Lexeme }
func (c *EnumCase) GetToken() token.Token { return c.Token }
func (c *EnumCase) Info() SourceInfo      { return sourceInfoOf(c.Token) }

// EnumDeclaration: enum Name<T>: RawType, Protocol { case ...; members }
type EnumDeclaration struct {
	Token       token.Token
	Name        *Identifier
	TypeParams  []*Identifier
	Constraints []*TypeConstraint
	RawType     TypeExpr
	Protocols   []TypeExpr
	Cases       []*EnumCase
	Members     []Declaration
	Modifiers   ModifierSet
}

func (d *EnumDeclaration) Accept(v Visitor)      { v.VisitEnumDeclaration(d) }
func (d *EnumDeclaration) statementNode()        {}
func (d *EnumDeclaration) declarationNode()      {}
func (d *EnumDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *EnumDeclaration) GetToken() token.Token { return d.Token }
func (d *EnumDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// ProtocolDeclaration: protocol Name: SuperProtocol { requirement... }
type ProtocolDeclaration struct {
	Token          token.Token
	Name           *Identifier
	SuperProtocols []TypeExpr
	Members        []Declaration
	Modifiers      ModifierSet
}

func (d *ProtocolDeclaration) Accept(v Visitor)      { v.VisitProtocolDeclaration(d) }
func (d *ProtocolDeclaration) statementNode()        {}
func (d *ProtocolDeclaration) declarationNode()      {}
func (d *ProtocolDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *ProtocolDeclaration) GetToken() token.Token { return d.Token }
func (d *ProtocolDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// ExtensionDeclaration: extension Type: Protocol { ... }
type ExtensionDeclaration struct {
	Token        token.Token
	ExtendedType TypeExpr
	Protocols    []TypeExpr
	Members      []Declaration
}

func (d *ExtensionDeclaration) Accept(v Visitor)      { v.VisitExtensionDeclaration(d) }
func (d *ExtensionDeclaration) statementNode()        {}
func (d *ExtensionDeclaration) declarationNode()      {}
func (d *ExtensionDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *ExtensionDeclaration) GetToken() token.Token { return d.Token }
func (d *ExtensionDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// FunctionDeclaration covers both named methods/functions and operator
// method definitions (Operator holds the symbol, Name is nil, for the
// latter).
type FunctionDeclaration struct {
	Token       token.Token
	Name        *Identifier
	Operator    string
	TypeParams  []*Identifier
	Constraints []*TypeConstraint
	Params      *ParameterList
	ReturnType  TypeExpr
	Body        *CodeBlock // nil for protocol requirements
	Modifiers   ModifierSet
}

func (d *FunctionDeclaration) Accept(v Visitor)      { v.VisitFunctionDeclaration(d) }
func (d *FunctionDeclaration) statementNode()        {}
func (d *FunctionDeclaration) declarationNode()      {}
func (d *FunctionDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *FunctionDeclaration) GetToken() token.Token { return d.Token }
func (d *FunctionDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// SubscriptDeclaration: subscript(index: Int) -> Element { get set }
type SubscriptDeclaration struct {
	Token      token.Token
	Params     *ParameterList
	ReturnType TypeExpr
	Getter     *CodeBlock
	Setter     *CodeBlock
	SetterName *Identifier // the name bound to newValue, e.g. set(v)
	Modifiers  ModifierSet
}

func (d *SubscriptDeclaration) Accept(v Visitor)      { v.VisitSubscriptDeclaration(d) }
func (d *SubscriptDeclaration) statementNode()        {}
func (d *SubscriptDeclaration) declarationNode()      {}
func (d *SubscriptDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *SubscriptDeclaration) GetToken() token.Token { return d.Token }
func (d *SubscriptDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// InitDeclaration: init(...) { ... } or init?(...) for a failable initializer.
type InitDeclaration struct {
	Token      token.Token
	Params     *ParameterList
	Body       *CodeBlock
	IsFailable bool
	Modifiers  ModifierSet
}

func (d *InitDeclaration) Accept(v Visitor)      { v.VisitInitDeclaration(d) }
func (d *InitDeclaration) statementNode()        {}
func (d *InitDeclaration) declarationNode()      {}
func (d *InitDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *InitDeclaration) GetToken() token.Token { return d.Token }
func (d *InitDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// DeinitDeclaration: deinit { ... }
type DeinitDeclaration struct {
	Token token.Token
	Body  *CodeBlock
}

func (d *DeinitDeclaration) Accept(v Visitor)      { v.VisitDeinitDeclaration(d) }
func (d *DeinitDeclaration) statementNode()        {}
func (d *DeinitDeclaration) declarationNode()      {}
func (d *DeinitDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *DeinitDeclaration) GetToken() token.Token { return d.Token }
func (d *DeinitDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// TypeAliasDeclaration: typealias Name<T> = Target
type TypeAliasDeclaration struct {
	Token      token.Token
	Name       *Identifier
	TypeParams []*Identifier
	Target     TypeExpr
	Modifiers  ModifierSet
}

func (d *TypeAliasDeclaration) Accept(v Visitor)      { v.VisitTypeAliasDeclaration(d) }
func (d *TypeAliasDeclaration) statementNode()        {}
func (d *TypeAliasDeclaration) declarationNode()      {}
func (d *TypeAliasDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *TypeAliasDeclaration) GetToken() token.Token { return d.Token }
func (d *TypeAliasDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// OperatorDeclaration declares a custom operator's fixity/precedence/assoc:
// operator infix * (+) { precedence 140 associativity left }
// Fixity/Associativity are plain strings here; internal/config resolves
// them against its Fixity/Associativity enums during registration.
type OperatorDeclaration struct {
	Token         token.Token
	Symbol        string
	Fixity        string
	Precedence    int
	Associativity string
}

func (d *OperatorDeclaration) Accept(v Visitor)      { v.VisitOperatorDeclaration(d) }
func (d *OperatorDeclaration) statementNode()        {}
func (d *OperatorDeclaration) declarationNode()      {}
func (d *OperatorDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *OperatorDeclaration) GetToken() token.Token { return d.Token }
func (d *OperatorDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// ValueBindingDeclaration is one `pattern[: Type][ = initializer]` entry
// within a Variable/Constant declaration's comma-separated list. It also
// carries optional get/set accessor bodies for a computed stored property.
type ValueBindingDeclaration struct {
	Token          token.Token
	Pattern        Pattern
	TypeAnnotation TypeExpr
	Initializer    Expression
	Getter         *CodeBlock
	Setter         *CodeBlock
	SetterName     *Identifier

	// Expanded is populated by the semantic analyzer when Pattern is a
	// tuple: a synthesized temporary binding holding the initializer,
	// followed by one single-identifier binding per named leaf whose
	// initializer is a member-access chain on the temporary spelling the
	// leaf's position. The original Pattern is kept for diagnostics.
	Expanded []*ValueBindingDeclaration
}

func (d *ValueBindingDeclaration) Accept(v Visitor)      { v.VisitValueBindingDeclaration(d) }
func (d *ValueBindingDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *ValueBindingDeclaration) GetToken() token.Token { return d.Token }
func (d *ValueBindingDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// VariableDeclaration: var a = 1, b: Int, (c, d) = pair
type VariableDeclaration struct {
	Token     token.Token
	Bindings  []*ValueBindingDeclaration
	Modifiers ModifierSet
}

func (d *VariableDeclaration) Accept(v Visitor)      { v.VisitVariableDeclaration(d) }
func (d *VariableDeclaration) statementNode()        {}
func (d *VariableDeclaration) declarationNode()      {}
func (d *VariableDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *VariableDeclaration) GetToken() token.Token { return d.Token }
func (d *VariableDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// ConstantDeclaration: let a = 1, (b, c) = pair
type ConstantDeclaration struct {
	Token     token.Token
	Bindings  []*ValueBindingDeclaration
	Modifiers ModifierSet
}

func (d *ConstantDeclaration) Accept(v Visitor)      { v.VisitConstantDeclaration(d) }
func (d *ConstantDeclaration) statementNode()        {}
func (d *ConstantDeclaration) declarationNode()      {}
func (d *ConstantDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *ConstantDeclaration) GetToken() token.Token { return d.Token }
func (d *ConstantDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }

// ComputedPropertyDeclaration is a protocol member requirement of the form
// `var name: Type { get set }` — no stored backing, no initializer.
type ComputedPropertyDeclaration struct {
	Token          token.Token
	Name           *Identifier
	TypeAnnotation TypeExpr
	HasGetter      bool
	HasSetter      bool
	Modifiers      ModifierSet
}

func (d *ComputedPropertyDeclaration) Accept(v Visitor)      { v.VisitComputedPropertyDeclaration(d) }
func (d *ComputedPropertyDeclaration) statementNode()        {}
func (d *ComputedPropertyDeclaration) declarationNode()      {}
func (d *ComputedPropertyDeclaration) TokenLiteral() string  { return d.Token.Lexeme }
func (d *ComputedPropertyDeclaration) GetToken() token.Token { return d.Token }
func (d *ComputedPropertyDeclaration) Info() SourceInfo      { return sourceInfoOf(d.Token) }
