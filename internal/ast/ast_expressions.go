package ast

import "github.com/funvibe/swifty/internal/token"

// IntegerLiteral: 42
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (e *IntegerLiteral) Accept(v Visitor)      { v.VisitIntegerLiteral(e) }
func (e *IntegerLiteral) expressionNode()       {}
func (e *IntegerLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *IntegerLiteral) GetToken() token.Token { return e.Token }
func (e *IntegerLiteral) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// FloatLiteral: 3.14
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (e *FloatLiteral) Accept(v Visitor)      { v.VisitFloatLiteral(e) }
func (e *FloatLiteral) expressionNode()       {}
func (e *FloatLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *FloatLiteral) GetToken() token.Token { return e.Token }
func (e *FloatLiteral) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// StringLiteral: "hello"
type StringLiteral struct {
	Token token.Token
	Value string
}

func (e *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(e) }
func (e *StringLiteral) expressionNode()       {}
func (e *StringLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *StringLiteral) GetToken() token.Token { return e.Token }
func (e *StringLiteral) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// BooleanLiteral: true / false
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (e *BooleanLiteral) Accept(v Visitor)      { v.VisitBooleanLiteral(e) }
func (e *BooleanLiteral) expressionNode()       {}
func (e *BooleanLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *BooleanLiteral) GetToken() token.Token { return e.Token }
func (e *BooleanLiteral) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// NilLiteral: nil
type NilLiteral struct {
	Token token.Token
}

func (e *NilLiteral) Accept(v Visitor)      { v.VisitNilLiteral(e) }
func (e *NilLiteral) expressionNode()       {}
func (e *NilLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *NilLiteral) GetToken() token.Token { return e.Token }
func (e *NilLiteral) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// StringInterpolationExpression: "Hello, \(name)!" — Parts alternates
// literal StringLiteral segments and embedded expressions.
type StringInterpolationExpression struct {
	Token token.Token
	Parts []Expression
}

func (e *StringInterpolationExpression) Accept(v Visitor) { v.VisitStringInterpolationExpression(e) }
func (e *StringInterpolationExpression) expressionNode()       {}
func (e *StringInterpolationExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *StringInterpolationExpression) GetToken() token.Token { return e.Token }
func (e *StringInterpolationExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// ArrayLiteralExpression: [1, 2, 3]
type ArrayLiteralExpression struct {
	Token    token.Token
	Elements []Expression
}

func (e *ArrayLiteralExpression) Accept(v Visitor)      { v.VisitArrayLiteralExpression(e) }
func (e *ArrayLiteralExpression) expressionNode()       {}
func (e *ArrayLiteralExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ArrayLiteralExpression) GetToken() token.Token { return e.Token }
func (e *ArrayLiteralExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// DictionaryPair is a single key: value entry of a dictionary literal.
type DictionaryPair struct {
	Key   Expression
	Value Expression
}

// DictionaryLiteralExpression: ["a": 1, "b": 2]
type DictionaryLiteralExpression struct {
	Token token.Token
	Pairs []DictionaryPair
}

func (e *DictionaryLiteralExpression) Accept(v Visitor)      { v.VisitDictionaryLiteralExpression(e) }
func (e *DictionaryLiteralExpression) expressionNode()       {}
func (e *DictionaryLiteralExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *DictionaryLiteralExpression) GetToken() token.Token { return e.Token }
func (e *DictionaryLiteralExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// TupleExpression: (1, "a"), (x: 1, y: 2)
type TupleExpression struct {
	Token    token.Token
	Elements []Expression
	Labels   []string // parallel to Elements; "" means unlabeled
}

func (e *TupleExpression) Accept(v Visitor)      { v.VisitTupleExpression(e) }
func (e *TupleExpression) expressionNode()       {}
func (e *TupleExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *TupleExpression) GetToken() token.Token { return e.Token }
func (e *TupleExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// ParenthesizedExpression: (expr) — kept distinct from its inner expression
// so the operator resolver has an explicit grouping boundary to stop at.
type ParenthesizedExpression struct {
	Token token.Token
	Inner Expression
}

func (e *ParenthesizedExpression) Accept(v Visitor)      { v.VisitParenthesizedExpression(e) }
func (e *ParenthesizedExpression) expressionNode()       {}
func (e *ParenthesizedExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ParenthesizedExpression) GetToken() token.Token { return e.Token }
func (e *ParenthesizedExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// MemberAccessExpression: obj.field
type MemberAccessExpression struct {
	Token  token.Token
	Base   Expression
	Member *Identifier
}

func (e *MemberAccessExpression) Accept(v Visitor)      { v.VisitMemberAccessExpression(e) }
func (e *MemberAccessExpression) expressionNode()       {}
func (e *MemberAccessExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *MemberAccessExpression) GetToken() token.Token { return e.Token }
func (e *MemberAccessExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// SubscriptAccessExpression: arr[i], map[key]
type SubscriptAccessExpression struct {
	Token     token.Token
	Base      Expression
	Arguments []Expression
}

func (e *SubscriptAccessExpression) Accept(v Visitor)      { v.VisitSubscriptAccessExpression(e) }
func (e *SubscriptAccessExpression) expressionNode()       {}
func (e *SubscriptAccessExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *SubscriptAccessExpression) GetToken() token.Token { return e.Token }
func (e *SubscriptAccessExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// CallArgument is one labeled or unlabeled call argument: f(label: value).
type CallArgument struct {
	Label *Identifier // nil means unlabeled
	Value Expression
}

// FunctionCallExpression: f(a, label: b) { trailingClosure }
type FunctionCallExpression struct {
	Token           token.Token
	Callee          Expression
	Arguments       []CallArgument
	TrailingClosure *ClosureExpression
}

func (e *FunctionCallExpression) Accept(v Visitor)      { v.VisitFunctionCallExpression(e) }
func (e *FunctionCallExpression) expressionNode()       {}
func (e *FunctionCallExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *FunctionCallExpression) GetToken() token.Token { return e.Token }
func (e *FunctionCallExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// ClosureExpression: { (x: Int) -> Int in x + 1 }
type ClosureExpression struct {
	Token      token.Token
	Params     *ParameterList // nil means implicit $0, $1, ... parameters
	ReturnType TypeExpr
	Body       *CodeBlock
}

func (e *ClosureExpression) Accept(v Visitor)      { v.VisitClosureExpression(e) }
func (e *ClosureExpression) expressionNode()       {}
func (e *ClosureExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ClosureExpression) GetToken() token.Token { return e.Token }
func (e *ClosureExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// SelfExpression: self
type SelfExpression struct {
	Token token.Token
}

func (e *SelfExpression) Accept(v Visitor)      { v.VisitSelfExpression(e) }
func (e *SelfExpression) expressionNode()       {}
func (e *SelfExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *SelfExpression) GetToken() token.Token { return e.Token }
func (e *SelfExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// InitializerReferenceExpression: Type.init, super.init
type InitializerReferenceExpression struct {
	Token token.Token
	Base  Expression
}

func (e *InitializerReferenceExpression) Accept(v Visitor) { v.VisitInitializerReferenceExpression(e) }
func (e *InitializerReferenceExpression) expressionNode()       {}
func (e *InitializerReferenceExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *InitializerReferenceExpression) GetToken() token.Token { return e.Token }
func (e *InitializerReferenceExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// DynamicTypeExpression: type(of: value)
type DynamicTypeExpression struct {
	Token token.Token
	Base  Expression
}

func (e *DynamicTypeExpression) Accept(v Visitor)      { v.VisitDynamicTypeExpression(e) }
func (e *DynamicTypeExpression) expressionNode()       {}
func (e *DynamicTypeExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *DynamicTypeExpression) GetToken() token.Token { return e.Token }
func (e *DynamicTypeExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// ForcedValueExpression: value!
type ForcedValueExpression struct {
	Token token.Token
	Base  Expression
}

func (e *ForcedValueExpression) Accept(v Visitor)      { v.VisitForcedValueExpression(e) }
func (e *ForcedValueExpression) expressionNode()       {}
func (e *ForcedValueExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ForcedValueExpression) GetToken() token.Token { return e.Token }
func (e *ForcedValueExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// OptionalChainingExpression: value?.member, value?[i]
type OptionalChainingExpression struct {
	Token token.Token
	Base  Expression
}

func (e *OptionalChainingExpression) Accept(v Visitor)      { v.VisitOptionalChainingExpression(e) }
func (e *OptionalChainingExpression) expressionNode()       {}
func (e *OptionalChainingExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *OptionalChainingExpression) GetToken() token.Token { return e.Token }
func (e *OptionalChainingExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// BinaryOperatorExpression: a + b — produced flat by the parser (left-to-
// right, no precedence) and re-shaped by internal/opresolve into a
// precedence-correct tree before the analyzer ever sees it.
type BinaryOperatorExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *BinaryOperatorExpression) Accept(v Visitor)      { v.VisitBinaryOperatorExpression(e) }
func (e *BinaryOperatorExpression) expressionNode()       {}
func (e *BinaryOperatorExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *BinaryOperatorExpression) GetToken() token.Token { return e.Token }
func (e *BinaryOperatorExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// UnaryOperatorExpression: -x (prefix) or x! (handled separately as
// ForcedValueExpression) — this node covers prefix and postfix operator
// applications from the user-defined/table-driven operator set.
type UnaryOperatorExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
	IsPrefix bool
}

func (e *UnaryOperatorExpression) Accept(v Visitor)      { v.VisitUnaryOperatorExpression(e) }
func (e *UnaryOperatorExpression) expressionNode()       {}
func (e *UnaryOperatorExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *UnaryOperatorExpression) GetToken() token.Token { return e.Token }
func (e *UnaryOperatorExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// ConditionalOperatorExpression: cond ? then : els
type ConditionalOperatorExpression struct {
	Token     token.Token
	Condition Expression
	Then      Expression
	Else      Expression
}

func (e *ConditionalOperatorExpression) Accept(v Visitor)      { v.VisitConditionalOperatorExpression(e) }
func (e *ConditionalOperatorExpression) expressionNode()       {}
func (e *ConditionalOperatorExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ConditionalOperatorExpression) GetToken() token.Token { return e.Token }
func (e *ConditionalOperatorExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }

// CompileConstantExpression: #line, #file, #function, #column
type CompileConstantExpression struct {
	Token token.Token
	Name  string
}

func (e *CompileConstantExpression) Accept(v Visitor)      { v.VisitCompileConstantExpression(e) }
func (e *CompileConstantExpression) expressionNode()       {}
func (e *CompileConstantExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *CompileConstantExpression) GetToken() token.Token { return e.Token }
func (e *CompileConstantExpression) Info() SourceInfo      { return sourceInfoOf(e.Token) }
