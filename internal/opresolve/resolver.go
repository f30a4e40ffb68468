// Package opresolve re-sorts the binary-operator trees the parser emits
// flat and left-leaning, ignoring precedence, into precedence-correct
// trees via the same post-order rotation swallow's OperatorResolver uses.
package opresolve

import (
	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/config"
)

// Resolve re-sorts every binary/unary/conditional operator expression
// reachable from program in place, walking declarations, statements and
// expressions in the same order the default AST visitor would.
func Resolve(program *ast.Program) {
	for _, d := range program.Decls {
		resolveDecl(d)
	}
}

func resolveDecl(d ast.Declaration) {
	switch n := d.(type) {
	case *ast.FunctionDeclaration:
		resolveParams(n.Params)
		if n.Body != nil {
			resolveBlock(n.Body)
		}
	case *ast.InitDeclaration:
		resolveParams(n.Params)
		if n.Body != nil {
			resolveBlock(n.Body)
		}
	case *ast.DeinitDeclaration:
		if n.Body != nil {
			resolveBlock(n.Body)
		}
	case *ast.SubscriptDeclaration:
		resolveParams(n.Params)
		if n.Getter != nil {
			resolveBlock(n.Getter)
		}
		if n.Setter != nil {
			resolveBlock(n.Setter)
		}
	case *ast.ClassDeclaration:
		for _, m := range n.Members {
			resolveDecl(m)
		}
	case *ast.StructDeclaration:
		for _, m := range n.Members {
			resolveDecl(m)
		}
	case *ast.EnumDeclaration:
		for _, c := range n.Cases {
			if c.RawValue != nil {
				c.RawValue = resolveExpr(c.RawValue)
			}
		}
		for _, m := range n.Members {
			resolveDecl(m)
		}
	case *ast.ProtocolDeclaration:
		for _, m := range n.Members {
			resolveDecl(m)
		}
	case *ast.ExtensionDeclaration:
		for _, m := range n.Members {
			resolveDecl(m)
		}
	case *ast.VariableDeclaration:
		resolveBindings(n.Bindings)
	case *ast.ConstantDeclaration:
		resolveBindings(n.Bindings)
	case *ast.ComputedPropertyDeclaration:
		// no initializer to resolve; getter/setter bodies, if this grammar
		// grows them, would be walked here the same as SubscriptDeclaration.
	}
}

func resolveBindings(bindings []*ast.ValueBindingDeclaration) {
	for _, b := range bindings {
		if b.Initializer != nil {
			b.Initializer = resolveExpr(b.Initializer)
		}
		if b.Getter != nil {
			resolveBlock(b.Getter)
		}
		if b.Setter != nil {
			resolveBlock(b.Setter)
		}
	}
}

func resolveParams(list *ast.ParameterList) {
	if list == nil {
		return
	}
	for _, p := range list.Params {
		if p.DefaultValue != nil {
			p.DefaultValue = resolveExpr(p.DefaultValue)
		}
	}
}

func resolveBlock(block *ast.CodeBlock) {
	for i, s := range block.Statements {
		block.Statements[i] = resolveStatement(s)
	}
}

func resolveStatement(s ast.Statement) ast.Statement {
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		n.Expression = resolveExpr(n.Expression)
	case *ast.IfStatement:
		n.Condition = resolveExpr(n.Condition)
		resolveBlock(n.Then)
		if n.Else != nil {
			n.Else = resolveStatement(n.Else)
		}
	case *ast.SwitchStatement:
		n.Subject = resolveExpr(n.Subject)
		for _, c := range n.Cases {
			if c.Where != nil {
				c.Where = resolveExpr(c.Where)
			}
			resolveBlock(c.Body)
		}
		if n.Default != nil {
			resolveBlock(n.Default)
		}
	case *ast.ForInStatement:
		n.Sequence = resolveExpr(n.Sequence)
		resolveBlock(n.Body)
	case *ast.ForStatement:
		if n.Init != nil {
			n.Init = resolveStatement(n.Init)
		}
		if n.Condition != nil {
			n.Condition = resolveExpr(n.Condition)
		}
		if n.Step != nil {
			n.Step = resolveStatement(n.Step)
		}
		resolveBlock(n.Body)
	case *ast.WhileStatement:
		n.Condition = resolveExpr(n.Condition)
		resolveBlock(n.Body)
	case *ast.DoLoopStatement:
		resolveBlock(n.Body)
		n.Condition = resolveExpr(n.Condition)
	case *ast.ReturnStatement:
		if n.Value != nil {
			n.Value = resolveExpr(n.Value)
		}
	case *ast.LabeledStatement:
		n.Statement = resolveStatement(n.Statement)
	case *ast.AssignmentStatement:
		n.Target = resolveExpr(n.Target)
		n.Value = resolveExpr(n.Value)
	case ast.Declaration:
		resolveDecl(n)
		return n
	}
	return s
}

// resolveExpr recurses into e's operand positions, then — if e is itself
// a binary operator — re-sorts it against its (already-resolved) left
// child via sortExpression.
func resolveExpr(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.BinaryOperatorExpression:
		n.Left = resolveExpr(n.Left)
		n.Right = resolveExpr(n.Right)
		return sortExpression(n)
	case *ast.UnaryOperatorExpression:
		n.Operand = resolveExpr(n.Operand)
	case *ast.ConditionalOperatorExpression:
		n.Condition = resolveExpr(n.Condition)
		n.Then = resolveExpr(n.Then)
		n.Else = resolveExpr(n.Else)
	case *ast.ParenthesizedExpression:
		n.Inner = resolveExpr(n.Inner)
	case *ast.ForcedValueExpression:
		n.Base = resolveExpr(n.Base)
	case *ast.OptionalChainingExpression:
		n.Base = resolveExpr(n.Base)
	case *ast.MemberAccessExpression:
		n.Base = resolveExpr(n.Base)
	case *ast.SubscriptAccessExpression:
		n.Base = resolveExpr(n.Base)
		for i, a := range n.Arguments {
			n.Arguments[i] = resolveExpr(a)
		}
	case *ast.FunctionCallExpression:
		n.Callee = resolveExpr(n.Callee)
		for i := range n.Arguments {
			n.Arguments[i].Value = resolveExpr(n.Arguments[i].Value)
		}
		if n.TrailingClosure != nil {
			resolveBlock(n.TrailingClosure.Body)
		}
	case *ast.ClosureExpression:
		resolveBlock(n.Body)
	case *ast.TupleExpression:
		for i, el := range n.Elements {
			n.Elements[i] = resolveExpr(el)
		}
	case *ast.ArrayLiteralExpression:
		for i, el := range n.Elements {
			n.Elements[i] = resolveExpr(el)
		}
	case *ast.DictionaryLiteralExpression:
		for i := range n.Pairs {
			n.Pairs[i].Key = resolveExpr(n.Pairs[i].Key)
			n.Pairs[i].Value = resolveExpr(n.Pairs[i].Value)
		}
	case *ast.StringInterpolationExpression:
		for i, p := range n.Parts {
			n.Parts[i] = resolveExpr(p)
		}
	}
	return e
}

// sortExpression is the post-order rotation described by spec.md §4.5:
// given a binary node op whose operands are already resolved, promote a
// left child with lower (or equal right-associative) precedence so the
// tree's shape reflects precedence rather than parse order.
func sortExpression(op *ast.BinaryOperatorExpression) ast.Expression {
	left, ok := op.Left.(*ast.BinaryOperatorExpression)
	if !ok || !rotateRequired(left, op) {
		return op
	}
	// Promote left ("L"): op ("T") becomes L's right child; L's former
	// right child becomes T's new left child. Re-sort T in its new
	// position as L's right child before returning L as the new root.
	op.Left = left.Right
	left.Right = sortExpression(op)
	return left
}

// rotateRequired implements: precedence(lhs) < precedence(rhs), or equal
// precedence with both operators right-associative.
func rotateRequired(lhs, rhs *ast.BinaryOperatorExpression) bool {
	lInfo := config.LookupOperator(lhs.Operator, config.FixityInfix)
	rInfo := config.LookupOperator(rhs.Operator, config.FixityInfix)
	if lInfo == nil || rInfo == nil {
		return false
	}
	if lInfo.Precedence < rInfo.Precedence {
		return true
	}
	if lInfo.Precedence == rInfo.Precedence &&
		lInfo.Associativity == config.AssocRight && rInfo.Associativity == config.AssocRight {
		return true
	}
	return false
}
