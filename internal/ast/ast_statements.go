package ast

import "github.com/funvibe/swifty/internal/token"

// ExpressionStatement wraps a bare expression used for its side effect
// (e.g. a discarded call result — flagged by W_RESULT_OF_CALL_IS_UNUSED).
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (s *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(s) }
func (s *ExpressionStatement) statementNode()        {}
func (s *ExpressionStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ExpressionStatement) GetToken() token.Token { return s.Token }
func (s *ExpressionStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }

// IfStatement: if cond { ... } else { ... } — Else may be nil, another
// *IfStatement (else if), or a *CodeBlock.
type IfStatement struct {
	Token     token.Token
	Condition Expression
	Then      *CodeBlock
	Else      Statement
}

func (s *IfStatement) Accept(v Visitor)      { v.VisitIfStatement(s) }
func (s *IfStatement) statementNode()        {}
func (s *IfStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *IfStatement) GetToken() token.Token { return s.Token }
func (s *IfStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }

// SwitchCase is one `case pattern, pattern where guard:` arm.
type SwitchCase struct {
	Token   token.Token
	Patterns []Pattern
	Where   Expression
	Body    *CodeBlock
}

func (c *SwitchCase) Accept(v Visitor)      { v.VisitSwitchCase(c) }
func (c *SwitchCase) TokenLiteral() string  { return c.Token.Lexeme }
func (c *SwitchCase) GetToken() token.Token { return c.Token }
func (c *SwitchCase) Info() SourceInfo      { return sourceInfoOf(c.Token) }

// SwitchStatement: switch subject { case ...; default: ... }
type SwitchStatement struct {
	Token   token.Token
	Subject Expression
	Cases   []*SwitchCase
	Default *CodeBlock
}

func (s *SwitchStatement) Accept(v Visitor)      { v.VisitSwitchStatement(s) }
func (s *SwitchStatement) statementNode()        {}
func (s *SwitchStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *SwitchStatement) GetToken() token.Token { return s.Token }
func (s *SwitchStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }

// ForInStatement: for pattern in sequence { body }
type ForInStatement struct {
	Token    token.Token
	Pattern  Pattern
	Sequence Expression
	Body     *CodeBlock
}

func (s *ForInStatement) Accept(v Visitor)      { v.VisitForInStatement(s) }
func (s *ForInStatement) statementNode()        {}
func (s *ForInStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ForInStatement) GetToken() token.Token { return s.Token }
func (s *ForInStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }

// ForStatement is the classic C-style `for init; cond; step { body }` loop,
// carried over from original_source as a supplement to spec.md's for-in.
type ForStatement struct {
	Token     token.Token
	Init      Statement
	Condition Expression
	Step      Statement
	Body      *CodeBlock
}

func (s *ForStatement) Accept(v Visitor)      { v.VisitForStatement(s) }
func (s *ForStatement) statementNode()        {}
func (s *ForStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ForStatement) GetToken() token.Token { return s.Token }
func (s *ForStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }

// WhileStatement: while cond { body }
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      *CodeBlock
}

func (s *WhileStatement) Accept(v Visitor)      { v.VisitWhileStatement(s) }
func (s *WhileStatement) statementNode()        {}
func (s *WhileStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *WhileStatement) GetToken() token.Token { return s.Token }
func (s *WhileStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }

// DoLoopStatement: do { body } while cond — body runs at least once.
type DoLoopStatement struct {
	Token     token.Token
	Body      *CodeBlock
	Condition Expression
}

func (s *DoLoopStatement) Accept(v Visitor)      { v.VisitDoLoopStatement(s) }
func (s *DoLoopStatement) statementNode()        {}
func (s *DoLoopStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *DoLoopStatement) GetToken() token.Token { return s.Token }
func (s *DoLoopStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }

// ReturnStatement: return, return expr
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil for a bare 'return'
}

func (s *ReturnStatement) Accept(v Visitor)      { v.VisitReturnStatement(s) }
func (s *ReturnStatement) statementNode()        {}
func (s *ReturnStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ReturnStatement) GetToken() token.Token { return s.Token }
func (s *ReturnStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }

// BreakStatement: break, break label
type BreakStatement struct {
	Token token.Token
	Label *Identifier
}

func (s *BreakStatement) Accept(v Visitor)      { v.VisitBreakStatement(s) }
func (s *BreakStatement) statementNode()        {}
func (s *BreakStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *BreakStatement) GetToken() token.Token { return s.Token }
func (s *BreakStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }

// ContinueStatement: continue, continue label
type ContinueStatement struct {
	Token token.Token
	Label *Identifier
}

func (s *ContinueStatement) Accept(v Visitor)      { v.VisitContinueStatement(s) }
func (s *ContinueStatement) statementNode()        {}
func (s *ContinueStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ContinueStatement) GetToken() token.Token { return s.Token }
func (s *ContinueStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }

// FallthroughStatement: fallthrough
type FallthroughStatement struct {
	Token token.Token
}

func (s *FallthroughStatement) Accept(v Visitor)      { v.VisitFallthroughStatement(s) }
func (s *FallthroughStatement) statementNode()        {}
func (s *FallthroughStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *FallthroughStatement) GetToken() token.Token { return s.Token }
func (s *FallthroughStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }

// LabeledStatement: label: while cond { ... } — lets break/continue name
// an outer loop explicitly.
type LabeledStatement struct {
	Token     token.Token
	Label     *Identifier
	Statement Statement
}

func (s *LabeledStatement) Accept(v Visitor)      { v.VisitLabeledStatement(s) }
func (s *LabeledStatement) statementNode()        {}
func (s *LabeledStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *LabeledStatement) GetToken() token.Token { return s.Token }
func (s *LabeledStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }

// AssignmentStatement: target = value, target += value. CompoundOperator
// is "" for a plain assignment.
type AssignmentStatement struct {
	Token            token.Token
	Target           Expression
	CompoundOperator string
	Value            Expression
}

func (s *AssignmentStatement) Accept(v Visitor)      { v.VisitAssignmentStatement(s) }
func (s *AssignmentStatement) statementNode()        {}
func (s *AssignmentStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *AssignmentStatement) GetToken() token.Token { return s.Token }
func (s *AssignmentStatement) Info() SourceInfo      { return sourceInfoOf(s.Token) }
