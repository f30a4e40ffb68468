package analyzer

import (
	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/config"
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/symbols"
	"github.com/funvibe/swifty/internal/typesystem"
)

// analyzeTopLevelBody is pass 2 for a single top-level declaration.
func (a *Analyzer) analyzeTopLevelBody(d ast.Declaration) {
	switch n := d.(type) {
	case *ast.ClassDeclaration:
		a.analyzeTypeBody(n.Name.Name, n.Members, false)
	case *ast.StructDeclaration:
		a.analyzeTypeBody(n.Name.Name, n.Members, false)
	case *ast.EnumDeclaration:
		a.analyzeTypeBody(n.Name.Name, n.Members, false)
	case *ast.ProtocolDeclaration:
		a.analyzeTypeBody(n.Name.Name, n.Members, true)
	case *ast.ExtensionDeclaration:
		if named, ok := a.resolver.Resolve(n.ExtendedType, &a.diags).(typesystem.NamedType); ok {
			a.analyzeTypeBody(named.TypeName(), n.Members, false)
		}
	case *ast.FunctionDeclaration:
		a.analyzeFunctionBody(n)
	case *ast.VariableDeclaration:
		a.analyzeBindingGroup(n.Bindings, bindingContext{mods: n.Modifiers})
	case *ast.ConstantDeclaration:
		a.analyzeBindingGroup(n.Bindings, bindingContext{isConstant: true, mods: n.Modifiers})
	}
}

func (a *Analyzer) analyzeTypeBody(ownerName string, members []ast.Declaration, isProtocol bool) {
	sym, ok := a.registry.Lookup(ownerName)
	if !ok {
		return
	}
	a.pushSelf(sym.Type, true)
	_, isClass := sym.Type.(*typesystem.ClassType)
	for _, m := range members {
		a.analyzeMember(ownerName, sym.Type, m, isProtocol, isClass)
	}
	a.popSelf()
}

func (a *Analyzer) analyzeMember(ownerName string, owner typesystem.Type, m ast.Declaration, isProtocol, isClass bool) {
	switch n := m.(type) {
	case *ast.FunctionDeclaration:
		a.analyzeMethodBody(n, owner, isClass)
	case *ast.InitDeclaration:
		a.analyzeInitBody(n, owner)
	case *ast.DeinitDeclaration:
		a.analyzeBlock(n.Body)
	case *ast.SubscriptDeclaration:
		a.analyzeSubscriptBody(n, owner)
	case *ast.VariableDeclaration:
		a.analyzeBindingGroup(n.Bindings, bindingContext{isMember: true, isProtocol: isProtocol, ownerName: ownerName, mods: n.Modifiers})
	case *ast.ConstantDeclaration:
		a.analyzeBindingGroup(n.Bindings, bindingContext{isMember: true, isProtocol: isProtocol, isConstant: true, ownerName: ownerName, mods: n.Modifiers})
	case *ast.ComputedPropertyDeclaration:
		a.analyzeComputedProperty(n)
	}
}

func (a *Analyzer) analyzeMethodBody(n *ast.FunctionDeclaration, owner typesystem.Type, isClass bool) {
	mutating := n.Modifiers.Has(ast.ModMutating)
	nonmutating := n.Modifiers.Has(ast.ModNonmutating)
	static := n.Modifiers.Has(ast.ModStatic) || n.Modifiers.Has(ast.ModClass)

	if mutating && nonmutating {
		a.addError(diagnostics.ErrModifierConflict2, n, "mutating", "nonmutating")
	}
	if static && (mutating || nonmutating) {
		a.addError(diagnostics.ErrStaticMethodCannotBeMutating, n)
	}
	if isClass && mutating {
		a.addError(diagnostics.ErrInvalidOnClassMethods, n, "mutating")
	}

	a.pushStatic(static)
	selfMutable := mutating && !isClass
	if isClass {
		selfMutable = true // reference types are always mutable through self.
	}
	a.selfMutableStack[len(a.selfMutableStack)-1] = selfMutable

	if n.Body != nil {
		a.withFunctionScope(n, owner, func() {
			a.registerGenericParamSymbols(a.genericParams(memberFunctionName(n), n.TypeParams, n.Constraints))
			a.analyzeFunctionLike(n.Params, n.ReturnType, n.Body, n)
		})
	}
	a.popStatic()
}

func (a *Analyzer) analyzeInitBody(n *ast.InitDeclaration, owner typesystem.Type) {
	a.pushStatic(false)
	a.selfMutableStack[len(a.selfMutableStack)-1] = true
	if n.Body != nil {
		a.withFunctionScope(n, owner, func() {
			a.analyzeFunctionLike(n.Params, nil, n.Body, n)
		})
	}
	a.popStatic()
}

func (a *Analyzer) analyzeSubscriptBody(n *ast.SubscriptDeclaration, owner typesystem.Type) {
	a.pushStatic(false)
	if n.Getter != nil {
		a.withFunctionScope(n, owner, func() {
			a.analyzeFunctionLike(n.Params, n.ReturnType, n.Getter, n)
		})
	}
	if n.Setter != nil {
		a.selfMutableStack[len(a.selfMutableStack)-1] = true
		a.withFunctionScope(n, owner, func() {
			a.analyzeFunctionLike(n.Params, nil, n.Setter, n)
		})
	}
	a.popStatic()
}

func (a *Analyzer) analyzeComputedProperty(n *ast.ComputedPropertyDeclaration) {
	// Accessor bodies for computed properties are carried as CodeBlocks on
	// the same node in richer grammars; this surface only tracks
	// has-getter/has-setter at the declaration level (see ast_declarations.go),
	// so there is no body to walk here — the getter/setter are function-like
	// members registered separately when the surface grammar desugars them.
	_ = n
}

// withFunctionScope opens a scope chained off owner's retained member
// scope (or the current top-level scope for a free function), so a
// method body can see sibling members and parameters without a nested
// 'self.' prefix, then restores the stack on every exit path.
func (a *Analyzer) withFunctionScope(node ast.Node, owner typesystem.Type, fn func()) {
	if named, ok := owner.(typesystem.NamedType); ok {
		if parent, ok := a.memberScopes[named.TypeName()]; ok {
			a.registry.EnterChildOf(parent, node)
			defer a.registry.Leave()
			fn()
			return
		}
	}
	a.registry.Enter(node)
	defer a.registry.Leave()
	fn()
}

func (a *Analyzer) analyzeFunctionBody(n *ast.FunctionDeclaration) {
	a.pushStatic(false)
	if n.Body != nil {
		a.registry.Enter(n)
		a.registerGenericParamSymbols(a.genericParams(memberFunctionName(n), n.TypeParams, n.Constraints))
		a.analyzeFunctionLike(n.Params, n.ReturnType, n.Body, n)
		a.registry.Leave()
	}
	a.popStatic()
}

// analyzeFunctionLike binds params into the already-open scope, pushes
// the declared return type, type-checks the body, and runs reachability.
func (a *Analyzer) analyzeFunctionLike(params *ast.ParameterList, returnType ast.TypeExpr, body *ast.CodeBlock, node ast.Node) {
	if params != nil {
		for _, p := range params.Params {
			t := a.resolver.Resolve(p.TypeAnnotation, &a.diags)
			name := p.Name.Name
			sym := a.newParamSymbol(name, t, p.IsInout, p)
			_ = a.registry.AddSymbol(sym)
		}
	}

	var ret typesystem.Type = typesystem.Void
	if returnType != nil {
		ret = a.resolver.Resolve(returnType, &a.diags)
	}
	a.pushReturnType(ret)
	defer a.popReturnType()

	a.analyzeBlock(body)

	if ret != typesystem.Void && !isErrorOrNever(ret) {
		if !blockAlwaysReturns(body) {
			a.addError(diagnostics.ErrMissingReturn, node, ret.String())
		}
	}
}

func isErrorOrNever(t typesystem.Type) bool {
	return t == nil || t == typesystem.ErrorType || t == typesystem.Never
}

// blockAlwaysReturns is the reachability check spec.md §4.6/§8 describes:
// every path through body ends in a return (or a switch with a default arm
// whose every arm always returns). A switch without a default arm does not
// count, even when its cases cover every enum case.
func blockAlwaysReturns(body *ast.CodeBlock) bool {
	for _, s := range body.Statements {
		if statementAlwaysReturns(s) {
			return true
		}
	}
	return false
}

func statementAlwaysReturns(s ast.Statement) bool {
	switch n := s.(type) {
	case *ast.ReturnStatement:
		return true
	case *ast.IfStatement:
		if n.Else == nil {
			return false
		}
		return blockAlwaysReturns(n.Then) && elseAlwaysReturns(n.Else)
	case *ast.SwitchStatement:
		if n.Default == nil {
			return false
		}
		for _, c := range n.Cases {
			if !blockAlwaysReturns(c.Body) {
				return false
			}
		}
		return blockAlwaysReturns(n.Default)
	case *ast.LabeledStatement:
		return statementAlwaysReturns(n.Statement)
	}
	return false
}

func elseAlwaysReturns(s ast.Statement) bool {
	switch n := s.(type) {
	case *ast.CodeBlock:
		return blockAlwaysReturns(n)
	default:
		return statementAlwaysReturns(n)
	}
}

// analyzeBlock type-checks every statement in order and flags any
// statement following one that always returns as unreachable.
func (a *Analyzer) analyzeBlock(body *ast.CodeBlock) {
	if body == nil {
		return
	}
	a.registry.Enter(body)
	defer a.registry.Leave()

	terminated, warned := false, false
	for _, s := range body.Statements {
		if terminated && !warned {
			a.addWarning(diagnostics.WarnCodeAfterReturnNeverExecuted, s, "return")
			warned = true
		}
		a.analyzeStatement(s)
		if statementAlwaysReturns(s) {
			terminated = true
		}
	}
}

func (a *Analyzer) addWarning(code diagnostics.ErrorCode, tok ast.Node, args ...interface{}) {
	a.diags = append(a.diags, diagnostics.NewAnalyzerError(code, tok.GetToken(), args...))
}

func (a *Analyzer) analyzeStatement(s ast.Statement) {
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		t := a.analyzeExpression(n.Expression, nil)
		if _, isCall := n.Expression.(*ast.FunctionCallExpression); isCall && t != typesystem.Void && t != typesystem.ErrorType {
			a.addWarning(diagnostics.WarnUnusedValue, n)
		}
	case *ast.IfStatement:
		a.analyzeCondition(n.Condition)
		a.analyzeBlock(n.Then)
		if n.Else != nil {
			a.analyzeElse(n.Else)
		}
	case *ast.SwitchStatement:
		a.analyzeSwitch(n)
	case *ast.ForInStatement:
		a.analyzeForIn(n)
	case *ast.ForStatement:
		a.registry.Enter(n)
		if n.Init != nil {
			a.analyzeStatement(n.Init)
		}
		if n.Condition != nil {
			a.analyzeCondition(n.Condition)
		}
		if n.Step != nil {
			a.analyzeStatement(n.Step)
		}
		a.analyzeBlock(n.Body)
		a.registry.Leave()
	case *ast.WhileStatement:
		a.analyzeCondition(n.Condition)
		a.analyzeBlock(n.Body)
	case *ast.DoLoopStatement:
		a.analyzeBlock(n.Body)
		a.analyzeCondition(n.Condition)
	case *ast.ReturnStatement:
		if n.Value != nil {
			want := a.currentReturnType()
			got := a.analyzeExpression(n.Value, want)
			if !typesystem.CompatibleTypes(got, want) {
				a.addError(diagnostics.ErrCannotConvertExpressionType2, n.Value, got.String(), want.String())
			}
		}
	case *ast.AssignmentStatement:
		a.analyzeAssignment(n)
	case *ast.LabeledStatement:
		a.analyzeStatement(n.Statement)
	case *ast.BreakStatement, *ast.ContinueStatement, *ast.FallthroughStatement:
		// No typed content; control-flow legality is a parser-harness concern.
	case *ast.VariableDeclaration:
		a.registerLocalBindings(n.Bindings, symbols.FlagWritable)
		a.analyzeBindingGroup(n.Bindings, bindingContext{mods: n.Modifiers})
	case *ast.ConstantDeclaration:
		a.registerLocalBindings(n.Bindings, symbols.FlagNone)
		a.analyzeBindingGroup(n.Bindings, bindingContext{isConstant: true, mods: n.Modifiers})
	}
}

// registerLocalBindings pre-registers every plain identifier leaf of a
// local var/let group before analyzeBindingGroup runs, mirroring the
// top-level/member registration pass that declarations.go performs ahead
// of body analysis. Tuple-pattern leaves are skipped here: explodeTuplePattern
// registers its own placeholders once it knows the tuple's element types.
func (a *Analyzer) registerLocalBindings(bindings []*ast.ValueBindingDeclaration, extraFlags symbols.Flags) {
	for _, b := range bindings {
		id, ok := b.Pattern.(*ast.IdentifierPattern)
		if !ok || id.Name == "_" {
			continue
		}
		sym := symbols.NewPlaceHolderSymbol(id.Name, typesystem.ErrorType, symbols.RoleLocalVariable, extraFlags, b)
		_ = a.registry.AddSymbol(sym)
	}
}

func (a *Analyzer) analyzeElse(s ast.Statement) {
	if block, ok := s.(*ast.CodeBlock); ok {
		a.analyzeBlock(block)
		return
	}
	a.analyzeStatement(s)
}

func (a *Analyzer) analyzeCondition(cond ast.Expression) {
	t := a.analyzeExpression(cond, typesystem.Bool)
	if t != typesystem.Bool && !isErrorOrNever(t) {
		a.addError(diagnostics.ErrConditionNotBool, cond)
	}
}

func (a *Analyzer) analyzeForIn(n *ast.ForInStatement) {
	seqType := a.analyzeExpression(n.Sequence, nil)
	if !isErrorOrNever(seqType) && !a.conformsToSequenceLike(seqType) {
		a.addError(diagnostics.ErrForInRequiresSequence, n.Sequence, seqType.String())
	}
	a.registry.Enter(n)
	a.bindPattern(n.Pattern, a.elementTypeOf(seqType))
	a.analyzeBlock(n.Body)
	a.registry.Leave()
}

// conformsToSequenceLike is a structural stand-in for "conforms to
// Sequence": arrays and the Optional/Dictionary builtins all specialize
// from a generic template, which is as much shape as this surface's
// type model carries without a protocol-witness table.
func (a *Analyzer) conformsToSequenceLike(t typesystem.Type) bool {
	t = typesystem.ResolveAlias(t)
	_, ok := t.(*typesystem.SpecializedType)
	return ok
}

func (a *Analyzer) elementTypeOf(t typesystem.Type) typesystem.Type {
	if sp, ok := typesystem.ResolveAlias(t).(*typesystem.SpecializedType); ok && len(sp.Args) > 0 {
		return sp.Args[0]
	}
	return typesystem.ErrorType
}

func (a *Analyzer) analyzeSwitch(n *ast.SwitchStatement) {
	subjectType := a.analyzeExpression(n.Subject, nil)
	for _, c := range n.Cases {
		a.registry.Enter(c)
		for _, p := range c.Patterns {
			a.bindPattern(p, subjectType)
		}
		if c.Where != nil {
			a.analyzeCondition(c.Where)
		}
		a.analyzeBlock(c.Body)
		a.registry.Leave()
	}
	if n.Default != nil {
		a.analyzeBlock(n.Default)
	} else if et, ok := typesystem.ResolveAlias(subjectType).(*typesystem.EnumType); ok {
		if !a.switchCoversAllCases(et, n) {
			a.addError(diagnostics.ErrSwitchNotExhaustive, n)
		}
	}
}

func (a *Analyzer) switchCoversAllCases(et *typesystem.EnumType, n *ast.SwitchStatement) bool {
	covered := make(map[string]bool)
	for _, c := range n.Cases {
		for _, p := range c.Patterns {
			if ec, ok := p.(*ast.EnumCasePattern); ok {
				covered[ec.CaseName.Name] = true
			} else if _, ok := p.(*ast.WildcardPattern); ok {
				return true
			}
		}
	}
	for _, c := range et.Cases {
		if !covered[c.Name] {
			return false
		}
	}
	return true
}

// bindPattern introduces the identifiers a pattern binds into the
// current scope, typed against matchType where that's known. Bindings
// default to immutable unless wrapped in an explicit VarPattern (or a
// ValueBindingPattern with IsConstant false).
func (a *Analyzer) bindPattern(p ast.Pattern, matchType typesystem.Type) {
	a.bindPatternWith(p, matchType, false)
}

func (a *Analyzer) bindPatternWith(p ast.Pattern, matchType typesystem.Type, writable bool) {
	switch n := p.(type) {
	case *ast.IdentifierPattern:
		if n.Name == "_" {
			return
		}
		sym := a.newParamSymbol(n.Name, matchType, writable, n)
		_ = a.registry.AddSymbol(sym)
	case *ast.LetPattern:
		a.bindPatternWith(n.Inner, matchType, false)
	case *ast.VarPattern:
		a.bindPatternWith(n.Inner, matchType, true)
	case *ast.ValueBindingPattern:
		a.bindPatternWith(n.Inner, matchType, !n.IsConstant)
	case *ast.TypedPattern:
		t := a.resolver.Resolve(n.TypeAnnotation, &a.diags)
		a.bindPatternWith(n.Inner, t, writable)
	case *ast.TuplePattern:
		tt, ok := typesystem.ResolveAlias(matchType).(typesystem.TupleType)
		if !ok {
			for _, e := range n.Elements {
				a.bindPatternWith(e, typesystem.ErrorType, writable)
			}
			return
		}
		for i, e := range n.Elements {
			if i < len(tt.Elements) {
				a.bindPatternWith(e, tt.Elements[i], writable)
			}
		}
	case *ast.EnumCasePattern:
		et, ok := typesystem.ResolveAlias(matchType).(*typesystem.EnumType)
		if !ok {
			for _, assoc := range n.Associated {
				a.bindPatternWith(assoc, typesystem.ErrorType, writable)
			}
			return
		}
		for _, ec := range et.Cases {
			if n.CaseName != nil && ec.Name == n.CaseName.Name {
				for i, assoc := range n.Associated {
					if i < len(ec.AssociatedTypes) {
						a.bindPatternWith(assoc, ec.AssociatedTypes[i], writable)
					}
				}
			}
		}
	case *ast.LiteralPattern, *ast.WildcardPattern:
		// No bindings introduced.
	}
}

func (a *Analyzer) analyzeAssignment(n *ast.AssignmentStatement) {
	targetType := a.analyzeExpression(n.Target, nil)
	a.checkAssignable(n.Target)
	valueType := a.analyzeExpression(n.Value, targetType)
	if !typesystem.CompatibleTypes(valueType, targetType) {
		a.addError(diagnostics.ErrCannotConvertExpressionType2, n.Value, valueType.String(), targetType.String())
	}
}

// checkAssignable implements the three assignment-target diagnostics:
// assigning to self inside an enum method, assigning to a member of self
// in a non-mutating method, and assigning to an immutable binding.
func (a *Analyzer) checkAssignable(target ast.Expression) {
	switch n := target.(type) {
	case *ast.SelfExpression:
		if _, isEnum := a.currentSelfOwnerKind(); isEnum {
			a.addError(diagnostics.ErrCannotAssignToSelfInMethod1, n, config.SelfIdentifier)
		}
	case *ast.MemberAccessExpression:
		if _, isSelf := n.Base.(*ast.SelfExpression); isSelf {
			_, mutable := a.currentSelf()
			if !mutable {
				a.addError(diagnostics.ErrCannotAssignToInDeclaration2, n, n.Member.Name, "a non-mutating method")
			}
		}
	case *ast.Identifier:
		if sym, ok := a.registry.Lookup(n.Name); ok {
			a.checkImmutableAssign(sym, n)
		}
	}
}

func (a *Analyzer) checkImmutableAssign(sym *symbols.Symbol, target ast.Node) {
	if sym.Flags.Has(symbols.FlagWritable) {
		return
	}
	name := sym.Name
	if id, ok := target.(*ast.Identifier); ok {
		name = id.Name
	}
	a.addError(diagnostics.ErrCannotAssignImmutable, target, name)
}

func (a *Analyzer) currentSelfOwnerKind() (typesystem.Type, bool) {
	self, _ := a.currentSelf()
	_, isEnum := self.(*typesystem.EnumType)
	return self, isEnum
}
