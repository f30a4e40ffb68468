package analyzer

import (
	"strconv"

	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/config"
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/resolver"
	"github.com/funvibe/swifty/internal/symbols"
	"github.com/funvibe/swifty/internal/typesystem"
)

// analyzeExpression is spec.md §4.6's bottom-up expression typer: every
// node is typed against an optional contextual type (the declared type of
// the binding/parameter/return slot it's about to fill), the type is
// recorded in the node map, and returned to the caller. A nil contextual
// means "no expectation" — literals and closures fall back to their
// natural type.
func (a *Analyzer) analyzeExpression(expr ast.Expression, contextual typesystem.Type) typesystem.Type {
	return a.setType(expr, a.typeExpression(expr, contextual))
}

func (a *Analyzer) typeExpression(expr ast.Expression, contextual typesystem.Type) typesystem.Type {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		if contextual == typesystem.Float {
			return typesystem.Float
		}
		return typesystem.Int
	case *ast.BigIntLiteral:
		return typesystem.Int
	case *ast.FloatLiteral:
		return typesystem.Float
	case *ast.StringLiteral:
		return typesystem.String
	case *ast.BooleanLiteral:
		return typesystem.Bool
	case *ast.NilLiteral:
		if contextual != nil {
			if _, ok := typesystem.IsOptional(typesystem.ResolveAlias(contextual)); ok {
				return contextual
			}
		}
		return typesystem.NewOptional(typesystem.Any)
	case *ast.StringInterpolationExpression:
		for _, part := range n.Parts {
			if _, ok := part.(*ast.StringLiteral); ok {
				continue
			}
			a.analyzeExpression(part, nil)
		}
		return typesystem.String
	case *ast.ArrayLiteralExpression:
		return a.typeArrayLiteral(n, contextual)
	case *ast.DictionaryLiteralExpression:
		return a.typeDictionaryLiteral(n, contextual)
	case *ast.TupleExpression:
		return a.typeTupleExpression(n, contextual)
	case *ast.ParenthesizedExpression:
		return a.analyzeExpression(n.Inner, contextual)
	case *ast.Identifier:
		return a.typeIdentifier(n)
	case *ast.SelfExpression:
		self, _ := a.currentSelf()
		if self == nil {
			return typesystem.ErrorType
		}
		return self
	case *ast.MemberAccessExpression:
		return a.typeMemberAccess(n)
	case *ast.SubscriptAccessExpression:
		return a.typeSubscriptAccess(n)
	case *ast.FunctionCallExpression:
		return a.typeFunctionCall(n)
	case *ast.ClosureExpression:
		return a.typeClosure(n, contextual)
	case *ast.InitializerReferenceExpression:
		return a.typeInitializerReference(n)
	case *ast.DynamicTypeExpression:
		base := a.analyzeExpression(n.Base, nil)
		return typesystem.MetaType{Of: base}
	case *ast.ForcedValueExpression:
		return a.typeForcedValue(n)
	case *ast.OptionalChainingExpression:
		return a.analyzeExpression(n.Base, nil)
	case *ast.BinaryOperatorExpression:
		left := a.analyzeExpression(n.Left, nil)
		right := a.analyzeExpression(n.Right, nil)
		return a.typeBinaryOp(n, left, right)
	case *ast.UnaryOperatorExpression:
		operand := a.analyzeExpression(n.Operand, nil)
		return a.typeUnaryOp(n, operand)
	case *ast.ConditionalOperatorExpression:
		return a.typeConditional(n, contextual)
	case *ast.CompileConstantExpression:
		switch n.Name {
		case "file", "function":
			return typesystem.String
		case "line", "column":
			return typesystem.Int
		default:
			return typesystem.ErrorType
		}
	default:
		return typesystem.ErrorType
	}
}

func (a *Analyzer) typeIdentifier(n *ast.Identifier) typesystem.Type {
	if n.Name == "_" {
		// discard target: accepts any value, never resolves to a symbol.
		return typesystem.Any
	}
	sym, ok := a.registry.ResolveLazySymbol(n.Name)
	if !ok {
		a.addError(diagnostics.ErrUseOfUnresolvedIdentifier, n, n.Name)
		return typesystem.ErrorType
	}
	switch sym.Kind {
	case symbols.KindType:
		return typesystem.MetaType{Of: sym.Type}
	case symbols.KindOverloadedFunction:
		if len(sym.Overloads) > 0 {
			return sym.Overloads[0].Type
		}
		return typesystem.ErrorType
	default:
		return sym.Type
	}
}

func (a *Analyzer) typeArrayLiteral(n *ast.ArrayLiteralExpression, contextual typesystem.Type) typesystem.Type {
	var elemType typesystem.Type
	if sp, ok := typesystem.ResolveAlias(contextual).(*typesystem.SpecializedType); ok && namedIs(sp.Generic, config.ArrayTypeName) && len(sp.Args) == 1 {
		elemType = sp.Args[0]
	}
	for _, el := range n.Elements {
		t := a.analyzeExpression(el, elemType)
		if elemType == nil {
			elemType = t
		}
	}
	if elemType == nil {
		elemType = typesystem.Any
	}
	return a.specializeBuiltin(config.ArrayTypeName, []typesystem.Type{elemType})
}

func (a *Analyzer) typeDictionaryLiteral(n *ast.DictionaryLiteralExpression, contextual typesystem.Type) typesystem.Type {
	var keyType, valType typesystem.Type
	if sp, ok := typesystem.ResolveAlias(contextual).(*typesystem.SpecializedType); ok && namedIs(sp.Generic, config.DictionaryTypeName) && len(sp.Args) == 2 {
		keyType, valType = sp.Args[0], sp.Args[1]
	}
	for _, pair := range n.Pairs {
		kt := a.analyzeExpression(pair.Key, keyType)
		vt := a.analyzeExpression(pair.Value, valType)
		if keyType == nil {
			keyType = kt
		}
		if valType == nil {
			valType = vt
		}
	}
	if keyType == nil {
		keyType = typesystem.Any
	}
	if valType == nil {
		valType = typesystem.Any
	}
	return a.specializeBuiltin(config.DictionaryTypeName, []typesystem.Type{keyType, valType})
}

func (a *Analyzer) typeTupleExpression(n *ast.TupleExpression, contextual typesystem.Type) typesystem.Type {
	ctxTuple, hasCtxTuple := typesystem.ResolveAlias(contextual).(typesystem.TupleType)
	elems := make([]typesystem.Type, len(n.Elements))
	for i, el := range n.Elements {
		var want typesystem.Type
		if hasCtxTuple && i < len(ctxTuple.Elements) {
			want = ctxTuple.Elements[i]
		}
		elems[i] = a.analyzeExpression(el, want)
	}
	return typesystem.TupleType{Elements: elems, Labels: n.Labels}
}

func (a *Analyzer) typeMemberAccess(n *ast.MemberAccessExpression) typesystem.Type {
	baseType := a.analyzeExpression(n.Base, nil)
	receiver := typesystem.ResolveAlias(baseType)

	wrapOptional := false
	if _, isChain := n.Base.(*ast.OptionalChainingExpression); isChain {
		if wrapped, ok := typesystem.IsOptional(receiver); ok {
			wrapOptional = true
			receiver = typesystem.ResolveAlias(wrapped)
		}
	}

	if tt, ok := receiver.(typesystem.TupleType); ok {
		if idx, ok := tupleIndex(n.Member.Name); ok && idx < len(tt.Elements) {
			return wrapIfOptional(tt.Elements[idx], wrapOptional)
		}
		a.addError(diagnostics.ErrMemberNotFound2, n, receiver.String(), n.Member.Name)
		return typesystem.ErrorType
	}

	if mt, ok := receiver.(typesystem.MetaType); ok {
		return a.typeStaticMemberAccess(n, mt)
	}

	if name, ok := namedOf(receiver); ok {
		if sym, ok := a.lookupMember(name, n.Member.Name); ok {
			result := sym.Type
			if sp, ok := receiver.(*typesystem.SpecializedType); ok {
				bindings := typesystem.BindingsFor(typesystem.TypeParamsOf(sp.Generic), sp.Args)
				result = typesystem.Substitute(result, bindings)
			}
			return wrapIfOptional(result, wrapOptional)
		}
	}

	if mod, ok := receiver.(typesystem.ModuleType); ok {
		if sym, ok := a.registry.Lookup(mod.Name + "." + n.Member.Name); ok {
			return sym.Type
		}
	}

	if !isErrorOrNever(baseType) {
		a.addError(diagnostics.ErrMemberNotFound2, n, baseType.String(), n.Member.Name)
	}
	return typesystem.ErrorType
}

// typeStaticMemberAccess resolves Type.member: an enum case (a value of
// the enum, or its payload constructor), or a static member.
func (a *Analyzer) typeStaticMemberAccess(n *ast.MemberAccessExpression, mt typesystem.MetaType) typesystem.Type {
	inner := typesystem.ResolveAlias(mt.Of)
	if et, ok := inner.(*typesystem.EnumType); ok {
		for _, c := range et.Cases {
			if c.Name != n.Member.Name {
				continue
			}
			if len(c.AssociatedTypes) == 0 {
				return et
			}
			return typesystem.FunctionType{Params: c.AssociatedTypes, ReturnType: et}
		}
	}
	if name, ok := namedOf(inner); ok {
		if sym, ok := a.lookupMember(name, n.Member.Name); ok && sym.Flags.Has(symbols.FlagStatic) {
			return sym.Type
		}
	}
	a.addError(diagnostics.ErrMemberNotFound2, n, mt.String(), n.Member.Name)
	return typesystem.ErrorType
}

func (a *Analyzer) typeSubscriptAccess(n *ast.SubscriptAccessExpression) typesystem.Type {
	baseType := a.analyzeExpression(n.Base, nil)
	argTypes := make([]typesystem.Type, len(n.Arguments))
	for i, arg := range n.Arguments {
		argTypes[i] = a.analyzeExpression(arg, nil)
	}

	owner := typesystem.ResolveAlias(baseType)
	if sp, ok := owner.(*typesystem.SpecializedType); ok {
		if name, _ := namedOf(sp); name == config.ArrayTypeName && len(sp.Args) == 1 {
			return sp.Args[0]
		} else if name == config.DictionaryTypeName && len(sp.Args) == 2 {
			return typesystem.NewOptional(sp.Args[1])
		}
	}
	var candidates []*symbols.Symbol
	if name, ok := namedOf(owner); ok {
		if sym, ok := a.lookupMember(name, "subscript"); ok {
			candidates = candidatesOf(sym)
		}
	}
	if candidates == nil {
		if !isErrorOrNever(baseType) {
			a.addError(diagnostics.ErrMemberNotFound2, n, baseType.String(), "subscript")
		}
		return typesystem.ErrorType
	}

	match, ambiguous := a.resolveCall(candidates, argTypes)
	if match == nil {
		a.addError(diagnostics.ErrNoOverloadMatches, n, "subscript")
		return typesystem.ErrorType
	}
	if ambiguous {
		a.addError(diagnostics.ErrAmbiguousCall, n, "subscript")
	}
	return match.ret
}

func (a *Analyzer) typeFunctionCall(n *ast.FunctionCallExpression) typesystem.Type {
	calleeName := "<call>"
	var candidates []*symbols.Symbol

	switch callee := n.Callee.(type) {
	case *ast.Identifier:
		calleeName = callee.Name
		sym, ok := a.registry.ResolveLazySymbol(callee.Name)
		if !ok {
			a.addError(diagnostics.ErrUseOfUnresolvedIdentifier, callee, callee.Name)
			return typesystem.ErrorType
		}
		switch sym.Kind {
		case symbols.KindFunction, symbols.KindOverloadedFunction:
			candidates = candidatesOf(sym)
		case symbols.KindType:
			if name, ok := namedOf(sym.Type); ok {
				if initSym, ok := a.lookupMember(name, "init"); ok {
					candidates = candidatesOf(initSym)
				}
			}
			if candidates == nil {
				// No declared initializer: treat the call as the implicit
				// initializer and type it as the named type itself.
				for _, arg := range n.Arguments {
					a.analyzeExpression(arg.Value, nil)
				}
				return typesystem.ResolveAlias(sym.Type)
			}
		default:
			if _, ok := sym.Type.(typesystem.FunctionType); ok {
				candidates = []*symbols.Symbol{sym}
			}
		}
	case *ast.MemberAccessExpression:
		baseType := a.analyzeExpression(callee.Base, nil)
		calleeName = callee.Member.Name
		if mt, ok := typesystem.ResolveAlias(baseType).(typesystem.MetaType); ok {
			t := a.typeStaticMemberAccess(callee, mt)
			if ft, ok := t.(typesystem.FunctionType); ok {
				candidates = []*symbols.Symbol{{Name: calleeName, Type: ft, Kind: symbols.KindFunction}}
			} else {
				if !isErrorOrNever(t) {
					a.addError(diagnostics.ErrCannotCallValueOfNonFunctionType, n, t.String())
				}
				return typesystem.ErrorType
			}
		} else if name, ok := namedOf(typesystem.ResolveAlias(baseType)); ok {
			if sym, ok := a.lookupMember(name, callee.Member.Name); ok {
				candidates = candidatesOf(sym)
			}
		}
		if candidates == nil && !isErrorOrNever(baseType) {
			a.addError(diagnostics.ErrMemberNotFound2, callee, baseType.String(), callee.Member.Name)
		}
	default:
		calleeType := a.analyzeExpression(n.Callee, nil)
		if ft, ok := typesystem.ResolveAlias(calleeType).(typesystem.FunctionType); ok {
			candidates = []*symbols.Symbol{{Name: calleeName, Type: ft, Kind: symbols.KindFunction}}
		} else if !isErrorOrNever(calleeType) {
			a.addError(diagnostics.ErrCannotCallValueOfNonFunctionType, n, calleeType.String())
		}
	}

	if candidates == nil {
		return typesystem.ErrorType
	}

	argTypes := make([]typesystem.Type, 0, len(n.Arguments)+1)
	for _, arg := range n.Arguments {
		argTypes = append(argTypes, a.analyzeExpression(arg.Value, nil))
	}
	if n.TrailingClosure != nil {
		argTypes = append(argTypes, a.analyzeExpression(n.TrailingClosure, nil))
	}

	match, ambiguous := a.resolveCall(candidates, argTypes)
	if match == nil {
		a.addError(diagnostics.ErrNoOverloadMatches, n, calleeName)
		return typesystem.ErrorType
	}
	if ambiguous {
		a.addError(diagnostics.ErrAmbiguousCall, n, calleeName)
	}

	for i, arg := range n.Arguments {
		if i >= len(match.ft.Params) {
			continue
		}
		pt := match.ft.Params[i]
		if match.generic {
			pt = typesystem.Substitute(pt, match.bindings)
		}
		a.analyzeExpression(arg.Value, pt)
	}
	a.checkInoutArguments(match.sym, n.Arguments)

	return match.ret
}

func (a *Analyzer) checkInoutArguments(sym *symbols.Symbol, args []ast.CallArgument) {
	var params []*ast.ParameterDeclaration
	switch d := sym.Node.(type) {
	case *ast.FunctionDeclaration:
		if d.Params != nil {
			params = d.Params.Params
		}
	case *ast.InitDeclaration:
		if d.Params != nil {
			params = d.Params.Params
		}
	default:
		return
	}
	for i, p := range params {
		if !p.IsInout || i >= len(args) {
			continue
		}
		if !a.isLValue(args[i].Value) {
			a.addError(diagnostics.ErrInoutArgumentNotLValue, args[i].Value)
		}
	}
}

func (a *Analyzer) isLValue(expr ast.Expression) bool {
	switch n := expr.(type) {
	case *ast.Identifier:
		sym, ok := a.registry.Lookup(n.Name)
		return ok && sym.Flags.Has(symbols.FlagWritable)
	case *ast.MemberAccessExpression:
		return a.isLValue(n.Base)
	case *ast.SelfExpression:
		_, mutable := a.currentSelf()
		return mutable
	default:
		return false
	}
}

func (a *Analyzer) typeClosure(n *ast.ClosureExpression, contextual typesystem.Type) typesystem.Type {
	ctxFn, hasCtx := typesystem.ResolveAlias(contextual).(typesystem.FunctionType)

	a.registry.Enter(n)
	defer a.registry.Leave()

	var paramTypes []typesystem.Type
	if n.Params != nil {
		for i, p := range n.Params.Params {
			var t typesystem.Type
			switch {
			case p.TypeAnnotation != nil:
				t = a.resolver.Resolve(p.TypeAnnotation, &a.diags)
			case hasCtx && i < len(ctxFn.Params):
				t = ctxFn.Params[i]
			default:
				t = typesystem.ErrorType
			}
			paramTypes = append(paramTypes, t)
			sym := a.newParamSymbol(p.Name.Name, t, p.IsInout, p)
			_ = a.registry.AddSymbol(sym)
		}
	} else if hasCtx {
		paramTypes = ctxFn.Params
		for i, t := range paramTypes {
			sym := a.newParamSymbol("$"+strconv.Itoa(i), t, false, n)
			_ = a.registry.AddSymbol(sym)
		}
	}

	var ret typesystem.Type = typesystem.Void
	if n.ReturnType != nil {
		ret = a.resolver.Resolve(n.ReturnType, &a.diags)
	} else if hasCtx {
		ret = ctxFn.ReturnType
	}
	a.pushReturnType(ret)
	defer a.popReturnType()
	a.analyzeBlock(n.Body)

	return typesystem.FunctionType{Params: paramTypes, ReturnType: ret}
}

func (a *Analyzer) typeInitializerReference(n *ast.InitializerReferenceExpression) typesystem.Type {
	baseType := a.analyzeExpression(n.Base, nil)
	if mt, ok := baseType.(typesystem.MetaType); ok {
		if name, ok := namedOf(mt.Of); ok {
			if sym, ok := a.lookupMember(name, "init"); ok {
				return sym.Type
			}
		}
	}
	if !isErrorOrNever(baseType) {
		a.addError(diagnostics.ErrMemberNotFound2, n, baseType.String(), "init")
	}
	return typesystem.ErrorType
}

func (a *Analyzer) typeForcedValue(n *ast.ForcedValueExpression) typesystem.Type {
	baseType := a.analyzeExpression(n.Base, nil)
	if wrapped, ok := typesystem.IsOptional(typesystem.ResolveAlias(baseType)); ok {
		return wrapped
	}
	if !isErrorOrNever(baseType) {
		a.addError(diagnostics.ErrCannotForceUnwrapNonOptional, n, baseType.String())
	}
	return typesystem.ErrorType
}

func (a *Analyzer) typeConditional(n *ast.ConditionalOperatorExpression, contextual typesystem.Type) typesystem.Type {
	condType := a.analyzeExpression(n.Condition, typesystem.Bool)
	if condType != typesystem.Bool && !isErrorOrNever(condType) {
		a.addError(diagnostics.ErrConditionNotBool, n.Condition)
	}
	thenType := a.analyzeExpression(n.Then, contextual)
	elseType := a.analyzeExpression(n.Else, contextual)
	if !typesystem.CompatibleTypes(thenType, elseType) {
		a.addError(diagnostics.ErrCannotConvertExpressionType2, n.Else, elseType.String(), thenType.String())
	}
	if contextual != nil {
		return contextual
	}
	return thenType
}

func (a *Analyzer) typeBinaryOp(n *ast.BinaryOperatorExpression, left, right typesystem.Type) typesystem.Type {
	if sym, ok := a.registry.Lookup("operator " + n.Operator); ok {
		if ret, matched := a.resolveOperatorOverload(sym, []typesystem.Type{left, right}, n, n.Operator); matched {
			return ret
		}
	}
	info := config.LookupOperator(n.Operator, config.FixityInfix)
	if info == nil {
		return typesystem.ErrorType
	}
	switch info.Category {
	case "Logical":
		if left != typesystem.Bool && !isErrorOrNever(left) {
			a.addError(diagnostics.ErrCannotConvertExpressionType2, n.Left, left.String(), typesystem.Bool.String())
		}
		if right != typesystem.Bool && !isErrorOrNever(right) {
			a.addError(diagnostics.ErrCannotConvertExpressionType2, n.Right, right.String(), typesystem.Bool.String())
		}
		return typesystem.Bool
	case "Comparison":
		if !typesystem.CompatibleTypes(left, right) {
			a.addError(diagnostics.ErrCannotConvertExpressionType2, n.Right, right.String(), left.String())
		}
		return typesystem.Bool
	case "Optional":
		if wrapped, ok := typesystem.IsOptional(typesystem.ResolveAlias(left)); ok {
			if typesystem.CompatibleTypes(right, wrapped) {
				return wrapped
			}
			return left
		}
		return left
	case "Range":
		if !typesystem.CompatibleTypes(left, right) {
			a.addError(diagnostics.ErrCannotConvertExpressionType2, n.Right, right.String(), left.String())
		}
		return a.specializeBuiltin(config.RangeTypeName, []typesystem.Type{left})
	default: // Arithmetic, Bitwise
		if !typesystem.CompatibleTypes(left, right) {
			a.addError(diagnostics.ErrCannotConvertExpressionType2, n.Right, right.String(), left.String())
			return typesystem.ErrorType
		}
		return left
	}
}

func (a *Analyzer) typeUnaryOp(n *ast.UnaryOperatorExpression, operand typesystem.Type) typesystem.Type {
	fixity := config.FixityPrefix
	if !n.IsPrefix {
		fixity = config.FixityPostfix
	}
	if sym, ok := a.registry.Lookup("operator " + n.Operator); ok {
		if ret, matched := a.resolveOperatorOverload(sym, []typesystem.Type{operand}, n, n.Operator); matched {
			return ret
		}
	}
	if config.LookupOperator(n.Operator, fixity) == nil {
		return typesystem.ErrorType
	}
	if n.Operator == "!" {
		if operand != typesystem.Bool && !isErrorOrNever(operand) {
			a.addError(diagnostics.ErrCannotConvertExpressionType2, n.Operand, operand.String(), typesystem.Bool.String())
		}
		return typesystem.Bool
	}
	return operand
}

func (a *Analyzer) resolveOperatorOverload(sym *symbols.Symbol, argTypes []typesystem.Type, node ast.Node, opName string) (typesystem.Type, bool) {
	match, ambiguous := a.resolveCall(candidatesOf(sym), argTypes)
	if match == nil {
		return nil, false
	}
	if ambiguous {
		a.addError(diagnostics.ErrAmbiguousCall, node, "operator "+opName)
	}
	return match.ret, true
}

// newParamSymbol builds a value-binding symbol for a function/closure
// parameter or a pattern-bound local (for-in element, switch-case
// binding). writable mirrors an explicit 'inout' parameter or a 'var'
// pattern binding; every other binding defaults to immutable.
func (a *Analyzer) newParamSymbol(name string, t typesystem.Type, writable bool, node ast.Node) *symbols.Symbol {
	flags := symbols.FlagNone
	if writable {
		flags = symbols.FlagWritable
	}
	return symbols.NewPlaceHolderSymbol(name, t, symbols.RoleParameter, flags, node)
}

func (a *Analyzer) specializeBuiltin(name string, args []typesystem.Type) typesystem.Type {
	sym, ok := a.registry.Lookup(name)
	if !ok {
		return typesystem.ErrorType
	}
	return resolver.Specialize(a.interner, sym.Type, args)
}

// candidateMatch is one scored, applicable overload for a call/subscript/
// operator-application site — spec.md §4.6's "rank by (implicit
// conversions, generic specializations, declaration order)" rule,
// minus the declaration-order tie-break (Overloads already preserves
// declaration order, so ties are reported as ambiguous instead).
type candidateMatch struct {
	sym        *symbols.Symbol
	ft         typesystem.FunctionType
	generic    bool
	mismatches int
	bindings   map[string]typesystem.Type
	ret        typesystem.Type
}

// resolveCall picks the best-ranked applicable candidate. The second
// return value reports whether more than one candidate tied for best.
func (a *Analyzer) resolveCall(candidates []*symbols.Symbol, argTypes []typesystem.Type) (*candidateMatch, bool) {
	var matches []candidateMatch
	for _, c := range candidates {
		ft, ok := c.Type.(typesystem.FunctionType)
		if !ok {
			continue
		}
		bindings := make(map[string]typesystem.Type)
		ok2, generic, mismatches := matchSignature(ft, argTypes, bindings)
		if !ok2 {
			continue
		}
		ret := ft.ReturnType
		if generic {
			ret = typesystem.Substitute(ret, bindings)
		}
		matches = append(matches, candidateMatch{sym: c, ft: ft, generic: generic, mismatches: mismatches, bindings: bindings, ret: ret})
	}
	if len(matches) == 0 {
		return nil, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.mismatches < best.mismatches || (m.mismatches == best.mismatches && best.generic && !m.generic) {
			best = m
		}
	}
	tieCount := 0
	for _, m := range matches {
		if m.mismatches == best.mismatches && m.generic == best.generic {
			tieCount++
		}
	}
	return &best, tieCount > 1
}

func matchSignature(ft typesystem.FunctionType, argTypes []typesystem.Type, bindings map[string]typesystem.Type) (ok bool, generic bool, mismatches int) {
	generic = typesystem.ContainsGenericParameters(ft)
	if len(argTypes) != len(ft.Params) {
		if !ft.IsVariadic || len(ft.Params) == 0 || len(argTypes) < len(ft.Params)-1 {
			return false, generic, 0
		}
	}
	for i, pt := range ft.Params {
		if ft.IsVariadic && i == len(ft.Params)-1 {
			for j := i; j < len(argTypes); j++ {
				if !matchParam(pt, argTypes[j], bindings, &mismatches) {
					return false, generic, mismatches
				}
			}
			return true, generic, mismatches
		}
		if i >= len(argTypes) {
			return false, generic, mismatches
		}
		if !matchParam(pt, argTypes[i], bindings, &mismatches) {
			return false, generic, mismatches
		}
	}
	return true, generic, mismatches
}

func matchParam(pt, at typesystem.Type, bindings map[string]typesystem.Type, mismatches *int) bool {
	if typesystem.ContainsGenericParameters(pt) {
		return resolver.CanSpecializeTo(pt, at, bindings)
	}
	if pt.Equal(at) {
		return true
	}
	if typesystem.CompatibleTypes(at, pt) {
		*mismatches++
		return true
	}
	return false
}

func candidatesOf(sym *symbols.Symbol) []*symbols.Symbol {
	if sym.Kind == symbols.KindOverloadedFunction {
		return sym.Overloads
	}
	return []*symbols.Symbol{sym}
}

// namedOf extracts the declared type name from a nominal type or the
// generic template backing a SpecializedType, used to key member lookups.
func namedOf(t typesystem.Type) (string, bool) {
	switch v := t.(type) {
	case *typesystem.SpecializedType:
		if named, ok := v.Generic.(typesystem.NamedType); ok {
			return named.TypeName(), true
		}
		return "", false
	case typesystem.NamedType:
		return v.TypeName(), true
	default:
		return "", false
	}
}

func namedIs(t typesystem.Type, name string) bool {
	named, ok := t.(typesystem.NamedType)
	return ok && named.TypeName() == name
}

func wrapIfOptional(t typesystem.Type, wrap bool) typesystem.Type {
	if wrap {
		return typesystem.NewOptional(t)
	}
	return t
}

func tupleIndex(name string) (int, bool) {
	n, err := strconv.Atoi(name)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
