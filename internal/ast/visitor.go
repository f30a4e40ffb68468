package ast

// Visitor is the double-dispatch interface behind Node.Accept, which calls
// the matching Visit* method. DefaultVisitor is its one implementation here;
// the type resolver, the analyzer and the prettyprinter walk the tree with
// type switches instead.
type Visitor interface {
	VisitProgram(n *Program)
	VisitCodeBlock(n *CodeBlock)
	VisitIdentifier(n *Identifier)
	VisitBigIntLiteral(n *BigIntLiteral)

	VisitParameterDeclaration(n *ParameterDeclaration)
	VisitParameterList(n *ParameterList)
	VisitImportDeclaration(n *ImportDeclaration)
	VisitClassDeclaration(n *ClassDeclaration)
	VisitStructDeclaration(n *StructDeclaration)
	VisitEnumCase(n *EnumCase)
	VisitEnumDeclaration(n *EnumDeclaration)
	VisitProtocolDeclaration(n *ProtocolDeclaration)
	VisitExtensionDeclaration(n *ExtensionDeclaration)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitSubscriptDeclaration(n *SubscriptDeclaration)
	VisitInitDeclaration(n *InitDeclaration)
	VisitDeinitDeclaration(n *DeinitDeclaration)
	VisitTypeAliasDeclaration(n *TypeAliasDeclaration)
	VisitOperatorDeclaration(n *OperatorDeclaration)
	VisitValueBindingDeclaration(n *ValueBindingDeclaration)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitConstantDeclaration(n *ConstantDeclaration)
	VisitComputedPropertyDeclaration(n *ComputedPropertyDeclaration)

	VisitTypeIdentifierExpr(n *TypeIdentifierExpr)
	VisitTupleTypeExpr(n *TupleTypeExpr)
	VisitArrayTypeExpr(n *ArrayTypeExpr)
	VisitDictionaryTypeExpr(n *DictionaryTypeExpr)
	VisitOptionalTypeExpr(n *OptionalTypeExpr)
	VisitImplicitlyUnwrappedOptionalTypeExpr(n *ImplicitlyUnwrappedOptionalTypeExpr)
	VisitFunctionTypeExpr(n *FunctionTypeExpr)
	VisitProtocolCompositionTypeExpr(n *ProtocolCompositionTypeExpr)

	VisitWildcardPattern(n *WildcardPattern)
	VisitIdentifierPattern(n *IdentifierPattern)
	VisitLiteralPattern(n *LiteralPattern)
	VisitTuplePattern(n *TuplePattern)
	VisitTypedPattern(n *TypedPattern)
	VisitLetPattern(n *LetPattern)
	VisitVarPattern(n *VarPattern)
	VisitEnumCasePattern(n *EnumCasePattern)
	VisitValueBindingPattern(n *ValueBindingPattern)

	VisitIntegerLiteral(n *IntegerLiteral)
	VisitFloatLiteral(n *FloatLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitNilLiteral(n *NilLiteral)
	VisitStringInterpolationExpression(n *StringInterpolationExpression)
	VisitArrayLiteralExpression(n *ArrayLiteralExpression)
	VisitDictionaryLiteralExpression(n *DictionaryLiteralExpression)
	VisitTupleExpression(n *TupleExpression)
	VisitParenthesizedExpression(n *ParenthesizedExpression)
	VisitMemberAccessExpression(n *MemberAccessExpression)
	VisitSubscriptAccessExpression(n *SubscriptAccessExpression)
	VisitFunctionCallExpression(n *FunctionCallExpression)
	VisitClosureExpression(n *ClosureExpression)
	VisitSelfExpression(n *SelfExpression)
	VisitInitializerReferenceExpression(n *InitializerReferenceExpression)
	VisitDynamicTypeExpression(n *DynamicTypeExpression)
	VisitForcedValueExpression(n *ForcedValueExpression)
	VisitOptionalChainingExpression(n *OptionalChainingExpression)
	VisitBinaryOperatorExpression(n *BinaryOperatorExpression)
	VisitUnaryOperatorExpression(n *UnaryOperatorExpression)
	VisitConditionalOperatorExpression(n *ConditionalOperatorExpression)
	VisitCompileConstantExpression(n *CompileConstantExpression)

	VisitExpressionStatement(n *ExpressionStatement)
	VisitIfStatement(n *IfStatement)
	VisitSwitchCase(n *SwitchCase)
	VisitSwitchStatement(n *SwitchStatement)
	VisitForInStatement(n *ForInStatement)
	VisitForStatement(n *ForStatement)
	VisitWhileStatement(n *WhileStatement)
	VisitDoLoopStatement(n *DoLoopStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitFallthroughStatement(n *FallthroughStatement)
	VisitLabeledStatement(n *LabeledStatement)
	VisitAssignmentStatement(n *AssignmentStatement)
}

// DefaultVisitor implements Visitor with the one canonical descent order:
// children are visited in the order they appear in source. Embed it in a
// concrete pass and override only the methods that pass cares about; set
// Self to the outer value so descent re-enters the override, not the
// embedded default (the standard trick for virtual dispatch over
// embedding in Go, since embedding alone gives no such thing).
type DefaultVisitor struct {
	Self Visitor
}

func (d *DefaultVisitor) self() Visitor {
	if d.Self != nil {
		return d.Self
	}
	return d
}

func acceptAll[T Node](self Visitor, nodes []T) {
	for _, n := range nodes {
		n.Accept(self)
	}
}

func (d *DefaultVisitor) VisitProgram(n *Program) {
	self := d.self()
	acceptAll(self, n.Imports)
	for _, decl := range n.Decls {
		decl.Accept(self)
	}
}

func (d *DefaultVisitor) VisitCodeBlock(n *CodeBlock) {
	self := d.self()
	for _, stmt := range n.Statements {
		stmt.Accept(self)
	}
}

func (d *DefaultVisitor) VisitIdentifier(n *Identifier)     {}
func (d *DefaultVisitor) VisitBigIntLiteral(n *BigIntLiteral) {}

func (d *DefaultVisitor) VisitParameterDeclaration(n *ParameterDeclaration) {
	self := d.self()
	if n.Name != nil {
		n.Name.Accept(self)
	}
	if n.TypeAnnotation != nil {
		n.TypeAnnotation.Accept(self)
	}
	if n.DefaultValue != nil {
		n.DefaultValue.Accept(self)
	}
}

func (d *DefaultVisitor) VisitParameterList(n *ParameterList) {
	self := d.self()
	for _, p := range n.Params {
		p.Accept(self)
	}
}

func (d *DefaultVisitor) VisitImportDeclaration(n *ImportDeclaration) {}

func (d *DefaultVisitor) VisitClassDeclaration(n *ClassDeclaration) {
	self := d.self()
	if n.SuperClass != nil {
		n.SuperClass.Accept(self)
	}
	for _, p := range n.Protocols {
		p.Accept(self)
	}
	for _, m := range n.Members {
		m.Accept(self)
	}
}

func (d *DefaultVisitor) VisitStructDeclaration(n *StructDeclaration) {
	self := d.self()
	for _, p := range n.Protocols {
		p.Accept(self)
	}
	for _, m := range n.Members {
		m.Accept(self)
	}
}

func (d *DefaultVisitor) VisitEnumCase(n *EnumCase) {
	self := d.self()
	for _, t := range n.AssociatedTypes {
		t.Accept(self)
	}
	if n.RawValue != nil {
		n.RawValue.Accept(self)
	}
}

func (d *DefaultVisitor) VisitEnumDeclaration(n *EnumDeclaration) {
	self := d.self()
	if n.RawType != nil {
		n.RawType.Accept(self)
	}
	for _, p := range n.Protocols {
		p.Accept(self)
	}
	for _, c := range n.Cases {
		c.Accept(self)
	}
	for _, m := range n.Members {
		m.Accept(self)
	}
}

func (d *DefaultVisitor) VisitProtocolDeclaration(n *ProtocolDeclaration) {
	self := d.self()
	for _, p := range n.SuperProtocols {
		p.Accept(self)
	}
	for _, m := range n.Members {
		m.Accept(self)
	}
}

func (d *DefaultVisitor) VisitExtensionDeclaration(n *ExtensionDeclaration) {
	self := d.self()
	if n.ExtendedType != nil {
		n.ExtendedType.Accept(self)
	}
	for _, p := range n.Protocols {
		p.Accept(self)
	}
	for _, m := range n.Members {
		m.Accept(self)
	}
}

func (d *DefaultVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) {
	self := d.self()
	if n.Params != nil {
		n.Params.Accept(self)
	}
	if n.ReturnType != nil {
		n.ReturnType.Accept(self)
	}
	if n.Body != nil {
		n.Body.Accept(self)
	}
}

func (d *DefaultVisitor) VisitSubscriptDeclaration(n *SubscriptDeclaration) {
	self := d.self()
	if n.Params != nil {
		n.Params.Accept(self)
	}
	if n.ReturnType != nil {
		n.ReturnType.Accept(self)
	}
	if n.Getter != nil {
		n.Getter.Accept(self)
	}
	if n.Setter != nil {
		n.Setter.Accept(self)
	}
}

func (d *DefaultVisitor) VisitInitDeclaration(n *InitDeclaration) {
	self := d.self()
	if n.Params != nil {
		n.Params.Accept(self)
	}
	if n.Body != nil {
		n.Body.Accept(self)
	}
}

func (d *DefaultVisitor) VisitDeinitDeclaration(n *DeinitDeclaration) {
	if n.Body != nil {
		n.Body.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitTypeAliasDeclaration(n *TypeAliasDeclaration) {
	if n.Target != nil {
		n.Target.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitOperatorDeclaration(n *OperatorDeclaration) {}

func (d *DefaultVisitor) VisitValueBindingDeclaration(n *ValueBindingDeclaration) {
	self := d.self()
	if n.Pattern != nil {
		n.Pattern.Accept(self)
	}
	if n.TypeAnnotation != nil {
		n.TypeAnnotation.Accept(self)
	}
	if n.Initializer != nil {
		n.Initializer.Accept(self)
	}
	if n.Getter != nil {
		n.Getter.Accept(self)
	}
	if n.Setter != nil {
		n.Setter.Accept(self)
	}
}

func (d *DefaultVisitor) VisitVariableDeclaration(n *VariableDeclaration) {
	self := d.self()
	for _, b := range n.Bindings {
		b.Accept(self)
	}
}

func (d *DefaultVisitor) VisitConstantDeclaration(n *ConstantDeclaration) {
	self := d.self()
	for _, b := range n.Bindings {
		b.Accept(self)
	}
}

func (d *DefaultVisitor) VisitComputedPropertyDeclaration(n *ComputedPropertyDeclaration) {
	self := d.self()
	if n.TypeAnnotation != nil {
		n.TypeAnnotation.Accept(self)
	}
}

func (d *DefaultVisitor) VisitTypeIdentifierExpr(n *TypeIdentifierExpr) {
	self := d.self()
	if n.Qualifier != nil {
		n.Qualifier.Accept(self)
	}
	for _, a := range n.GenericArgs {
		a.Accept(self)
	}
}

func (d *DefaultVisitor) VisitTupleTypeExpr(n *TupleTypeExpr) {
	self := d.self()
	for _, e := range n.Elements {
		e.Accept(self)
	}
}

func (d *DefaultVisitor) VisitArrayTypeExpr(n *ArrayTypeExpr) {
	if n.ElementType != nil {
		n.ElementType.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitDictionaryTypeExpr(n *DictionaryTypeExpr) {
	self := d.self()
	if n.KeyType != nil {
		n.KeyType.Accept(self)
	}
	if n.ValueType != nil {
		n.ValueType.Accept(self)
	}
}

func (d *DefaultVisitor) VisitOptionalTypeExpr(n *OptionalTypeExpr) {
	if n.Wrapped != nil {
		n.Wrapped.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitImplicitlyUnwrappedOptionalTypeExpr(n *ImplicitlyUnwrappedOptionalTypeExpr) {
	if n.Wrapped != nil {
		n.Wrapped.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitFunctionTypeExpr(n *FunctionTypeExpr) {
	self := d.self()
	for _, p := range n.Params {
		p.Accept(self)
	}
	if n.ReturnType != nil {
		n.ReturnType.Accept(self)
	}
}

func (d *DefaultVisitor) VisitProtocolCompositionTypeExpr(n *ProtocolCompositionTypeExpr) {
	self := d.self()
	for _, p := range n.Protocols {
		p.Accept(self)
	}
}

func (d *DefaultVisitor) VisitWildcardPattern(n *WildcardPattern)     {}
func (d *DefaultVisitor) VisitIdentifierPattern(n *IdentifierPattern) {}
func (d *DefaultVisitor) VisitLiteralPattern(n *LiteralPattern)       {}

func (d *DefaultVisitor) VisitTuplePattern(n *TuplePattern) {
	self := d.self()
	for _, e := range n.Elements {
		e.Accept(self)
	}
}

func (d *DefaultVisitor) VisitTypedPattern(n *TypedPattern) {
	self := d.self()
	if n.Inner != nil {
		n.Inner.Accept(self)
	}
	if n.TypeAnnotation != nil {
		n.TypeAnnotation.Accept(self)
	}
}

func (d *DefaultVisitor) VisitLetPattern(n *LetPattern) {
	if n.Inner != nil {
		n.Inner.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitVarPattern(n *VarPattern) {
	if n.Inner != nil {
		n.Inner.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitEnumCasePattern(n *EnumCasePattern) {
	self := d.self()
	if n.EnumType != nil {
		n.EnumType.Accept(self)
	}
	for _, a := range n.Associated {
		a.Accept(self)
	}
}

func (d *DefaultVisitor) VisitValueBindingPattern(n *ValueBindingPattern) {
	if n.Inner != nil {
		n.Inner.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitIntegerLiteral(n *IntegerLiteral) {}
func (d *DefaultVisitor) VisitFloatLiteral(n *FloatLiteral)     {}
func (d *DefaultVisitor) VisitStringLiteral(n *StringLiteral)   {}
func (d *DefaultVisitor) VisitBooleanLiteral(n *BooleanLiteral) {}
func (d *DefaultVisitor) VisitNilLiteral(n *NilLiteral)         {}

func (d *DefaultVisitor) VisitStringInterpolationExpression(n *StringInterpolationExpression) {
	self := d.self()
	for _, p := range n.Parts {
		p.Accept(self)
	}
}

func (d *DefaultVisitor) VisitArrayLiteralExpression(n *ArrayLiteralExpression) {
	self := d.self()
	for _, e := range n.Elements {
		e.Accept(self)
	}
}

func (d *DefaultVisitor) VisitDictionaryLiteralExpression(n *DictionaryLiteralExpression) {
	self := d.self()
	for _, p := range n.Pairs {
		p.Key.Accept(self)
		p.Value.Accept(self)
	}
}

func (d *DefaultVisitor) VisitTupleExpression(n *TupleExpression) {
	self := d.self()
	for _, e := range n.Elements {
		e.Accept(self)
	}
}

func (d *DefaultVisitor) VisitParenthesizedExpression(n *ParenthesizedExpression) {
	if n.Inner != nil {
		n.Inner.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitMemberAccessExpression(n *MemberAccessExpression) {
	if n.Base != nil {
		n.Base.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitSubscriptAccessExpression(n *SubscriptAccessExpression) {
	self := d.self()
	if n.Base != nil {
		n.Base.Accept(self)
	}
	for _, a := range n.Arguments {
		a.Accept(self)
	}
}

func (d *DefaultVisitor) VisitFunctionCallExpression(n *FunctionCallExpression) {
	self := d.self()
	if n.Callee != nil {
		n.Callee.Accept(self)
	}
	for _, a := range n.Arguments {
		if a.Value != nil {
			a.Value.Accept(self)
		}
	}
	if n.TrailingClosure != nil {
		n.TrailingClosure.Accept(self)
	}
}

func (d *DefaultVisitor) VisitClosureExpression(n *ClosureExpression) {
	self := d.self()
	if n.Params != nil {
		n.Params.Accept(self)
	}
	if n.ReturnType != nil {
		n.ReturnType.Accept(self)
	}
	if n.Body != nil {
		n.Body.Accept(self)
	}
}

func (d *DefaultVisitor) VisitSelfExpression(n *SelfExpression) {}

func (d *DefaultVisitor) VisitInitializerReferenceExpression(n *InitializerReferenceExpression) {
	if n.Base != nil {
		n.Base.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitDynamicTypeExpression(n *DynamicTypeExpression) {
	if n.Base != nil {
		n.Base.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitForcedValueExpression(n *ForcedValueExpression) {
	if n.Base != nil {
		n.Base.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitOptionalChainingExpression(n *OptionalChainingExpression) {
	if n.Base != nil {
		n.Base.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitBinaryOperatorExpression(n *BinaryOperatorExpression) {
	self := d.self()
	if n.Left != nil {
		n.Left.Accept(self)
	}
	if n.Right != nil {
		n.Right.Accept(self)
	}
}

func (d *DefaultVisitor) VisitUnaryOperatorExpression(n *UnaryOperatorExpression) {
	if n.Operand != nil {
		n.Operand.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitConditionalOperatorExpression(n *ConditionalOperatorExpression) {
	self := d.self()
	if n.Condition != nil {
		n.Condition.Accept(self)
	}
	if n.Then != nil {
		n.Then.Accept(self)
	}
	if n.Else != nil {
		n.Else.Accept(self)
	}
}

func (d *DefaultVisitor) VisitCompileConstantExpression(n *CompileConstantExpression) {}

func (d *DefaultVisitor) VisitExpressionStatement(n *ExpressionStatement) {
	if n.Expression != nil {
		n.Expression.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitIfStatement(n *IfStatement) {
	self := d.self()
	if n.Condition != nil {
		n.Condition.Accept(self)
	}
	if n.Then != nil {
		n.Then.Accept(self)
	}
	if n.Else != nil {
		n.Else.Accept(self)
	}
}

func (d *DefaultVisitor) VisitSwitchCase(n *SwitchCase) {
	self := d.self()
	for _, p := range n.Patterns {
		p.Accept(self)
	}
	if n.Where != nil {
		n.Where.Accept(self)
	}
	if n.Body != nil {
		n.Body.Accept(self)
	}
}

func (d *DefaultVisitor) VisitSwitchStatement(n *SwitchStatement) {
	self := d.self()
	if n.Subject != nil {
		n.Subject.Accept(self)
	}
	for _, c := range n.Cases {
		c.Accept(self)
	}
	if n.Default != nil {
		n.Default.Accept(self)
	}
}

func (d *DefaultVisitor) VisitForInStatement(n *ForInStatement) {
	self := d.self()
	if n.Pattern != nil {
		n.Pattern.Accept(self)
	}
	if n.Sequence != nil {
		n.Sequence.Accept(self)
	}
	if n.Body != nil {
		n.Body.Accept(self)
	}
}

func (d *DefaultVisitor) VisitForStatement(n *ForStatement) {
	self := d.self()
	if n.Init != nil {
		n.Init.Accept(self)
	}
	if n.Condition != nil {
		n.Condition.Accept(self)
	}
	if n.Step != nil {
		n.Step.Accept(self)
	}
	if n.Body != nil {
		n.Body.Accept(self)
	}
}

func (d *DefaultVisitor) VisitWhileStatement(n *WhileStatement) {
	self := d.self()
	if n.Condition != nil {
		n.Condition.Accept(self)
	}
	if n.Body != nil {
		n.Body.Accept(self)
	}
}

func (d *DefaultVisitor) VisitDoLoopStatement(n *DoLoopStatement) {
	self := d.self()
	if n.Body != nil {
		n.Body.Accept(self)
	}
	if n.Condition != nil {
		n.Condition.Accept(self)
	}
}

func (d *DefaultVisitor) VisitReturnStatement(n *ReturnStatement) {
	if n.Value != nil {
		n.Value.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitBreakStatement(n *BreakStatement)       {}
func (d *DefaultVisitor) VisitContinueStatement(n *ContinueStatement) {}
func (d *DefaultVisitor) VisitFallthroughStatement(n *FallthroughStatement) {}

func (d *DefaultVisitor) VisitLabeledStatement(n *LabeledStatement) {
	if n.Statement != nil {
		n.Statement.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitAssignmentStatement(n *AssignmentStatement) {
	self := d.self()
	if n.Target != nil {
		n.Target.Accept(self)
	}
	if n.Value != nil {
		n.Value.Accept(self)
	}
}
