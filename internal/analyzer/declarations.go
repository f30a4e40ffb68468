package analyzer

import (
	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/symbols"
	"github.com/funvibe/swifty/internal/typesystem"
)

// registerTopLevel is pass 1 for a single top-level declaration: build
// its canonical Type (if it has one), register a Symbol under its name,
// and — for a nominal type — register its member signatures into a
// retained scope. Function/init/deinit bodies and binding initializers
// are left untouched until AnalyzeBodies.
func (a *Analyzer) registerTopLevel(d ast.Declaration) {
	if a.registered[d] {
		return
	}
	a.registered[d] = true
	switch n := d.(type) {
	case *ast.ClassDeclaration:
		a.registerClass(n)
	case *ast.StructDeclaration:
		a.registerStruct(n)
	case *ast.EnumDeclaration:
		a.registerEnum(n)
	case *ast.ProtocolDeclaration:
		a.registerProtocol(n)
	case *ast.ExtensionDeclaration:
		a.registerExtension(n)
	case *ast.FunctionDeclaration:
		a.registerFunctionSignature(n, nil)
	case *ast.TypeAliasDeclaration:
		a.registerTypeAlias(n)
	case *ast.OperatorDeclaration:
		// Operator fixity/precedence/associativity already lives in
		// config.AllOperators for the table this grammar ships with;
		// a source-level `operator` declaration only needs validating,
		// which belongs to the lexer/parser harness that builds the
		// table entry, not the core.
	case *ast.VariableDeclaration:
		a.registerGlobalBindings(n.Bindings, symbols.FlagWritable, n.Modifiers)
	case *ast.ConstantDeclaration:
		a.registerGlobalBindings(n.Bindings, 0, n.Modifiers)
	}
}

func (a *Analyzer) genericParams(ownerName string, names []*ast.Identifier, constraints []*ast.TypeConstraint) []typesystem.GenericParameterType {
	params := make([]typesystem.GenericParameterType, len(names))
	for i, id := range names {
		p := typesystem.GenericParameterType{Name: id.Name, OwnerName: ownerName}
		for _, c := range constraints {
			if c.Param.Name == id.Name {
				p.Constraints = append(p.Constraints, a.resolver.Resolve(c.Protocol, &a.diags))
			}
		}
		params[i] = p
	}
	return params
}

func (a *Analyzer) registerClass(n *ast.ClassDeclaration) {
	ct := &typesystem.ClassType{Name: n.Name.Name}
	ct.TypeParams = a.genericParams(n.Name.Name, n.TypeParams, n.Constraints)
	if err := a.registry.AddSymbol(symbols.NewTypeSymbol(n.Name.Name, ct, n)); err != nil {
		a.addError(diagnostics.ErrDefinitionConflict, n, n.Name.Name)
		return
	}
	a.pushSelf(ct, true)
	if n.SuperClass != nil {
		ct.SuperClass = a.resolver.Resolve(n.SuperClass, &a.diags)
	}
	for _, p := range n.Protocols {
		ct.Protocols = append(ct.Protocols, a.resolver.Resolve(p, &a.diags))
	}
	a.memberScopes[n.Name.Name] = a.registerMembers(ct, ct.TypeParams, n.Members, n)
	a.popSelf()
}

func (a *Analyzer) registerStruct(n *ast.StructDeclaration) {
	st := &typesystem.StructType{Name: n.Name.Name}
	st.TypeParams = a.genericParams(n.Name.Name, n.TypeParams, n.Constraints)
	if err := a.registry.AddSymbol(symbols.NewTypeSymbol(n.Name.Name, st, n)); err != nil {
		a.addError(diagnostics.ErrDefinitionConflict, n, n.Name.Name)
		return
	}
	a.pushSelf(st, true)
	for _, p := range n.Protocols {
		st.Protocols = append(st.Protocols, a.resolver.Resolve(p, &a.diags))
	}
	a.memberScopes[n.Name.Name] = a.registerMembers(st, st.TypeParams, n.Members, n)
	a.popSelf()
}

func (a *Analyzer) registerEnum(n *ast.EnumDeclaration) {
	et := &typesystem.EnumType{Name: n.Name.Name}
	et.TypeParams = a.genericParams(n.Name.Name, n.TypeParams, n.Constraints)
	if n.RawType != nil {
		et.RawType = a.resolver.Resolve(n.RawType, &a.diags)
	}
	if err := a.registry.AddSymbol(symbols.NewTypeSymbol(n.Name.Name, et, n)); err != nil {
		a.addError(diagnostics.ErrDefinitionConflict, n, n.Name.Name)
		return
	}
	a.pushSelf(et, true)
	for _, p := range n.Protocols {
		et.Protocols = append(et.Protocols, a.resolver.Resolve(p, &a.diags))
	}
	// Case payload types may mention the enum's own type parameters, so
	// they resolve inside the member scope alongside the members.
	scope := a.registry.Enter(n)
	a.registerGenericParamSymbols(et.TypeParams)
	for _, c := range n.Cases {
		ec := typesystem.EnumCaseType{Name: c.Name.Name}
		for _, at := range c.AssociatedTypes {
			ec.AssociatedTypes = append(ec.AssociatedTypes, a.resolver.Resolve(at, &a.diags))
		}
		et.Cases = append(et.Cases, ec)
	}
	a.registerMembersInto(scope, et, n.Members)
	a.registry.Leave()
	a.memberScopes[n.Name.Name] = scope
	a.popSelf()
}

func (a *Analyzer) registerProtocol(n *ast.ProtocolDeclaration) {
	pt := &typesystem.ProtocolType{Name: n.Name.Name, ClassBound: n.Modifiers.Has(ast.ModClass)}
	if err := a.registry.AddSymbol(symbols.NewTypeSymbol(n.Name.Name, pt, n)); err != nil {
		a.addError(diagnostics.ErrDefinitionConflict, n, n.Name.Name)
		return
	}
	a.pushSelf(nil, true) // Self inside a protocol body denotes "whatever eventually conforms"
	for _, s := range n.SuperProtocols {
		pt.SuperProtocols = append(pt.SuperProtocols, a.resolver.Resolve(s, &a.diags))
	}
	a.memberScopes[n.Name.Name] = a.registerMembers(pt, nil, n.Members, n)
	a.popSelf()
}

// registerExtension adds its members onto the extended type's existing
// member set rather than opening a type of its own. The extended type
// has no spare SymbolScope slot to grow into (ClassType et al. carry no
// inline member table and memberScopes holds exactly one scope per type
// name already), so extension-contributed members are tracked in the
// side table extensionMembers instead; lookupMember consults both.
func (a *Analyzer) registerExtension(n *ast.ExtensionDeclaration) {
	extended := a.resolver.Resolve(n.ExtendedType, &a.diags)
	named, ok := extended.(typesystem.NamedType)
	if !ok {
		a.addError(diagnostics.ErrCannotSpecializeNonGenericType, n, extended.String())
		return
	}
	a.pushSelf(extended, true)
	bucket := a.extensionMembers[named.TypeName()]
	if bucket == nil {
		bucket = make(map[string]*symbols.Symbol)
		a.extensionMembers[named.TypeName()] = bucket
	}
	for _, m := range n.Members {
		for _, sym := range a.buildMemberSymbol(extended, m) {
			bucket[sym.Name] = sym
		}
	}
	a.popSelf()
}

func (a *Analyzer) registerTypeAlias(n *ast.TypeAliasDeclaration) {
	alias := &typesystem.AliasType{Name: n.Name.Name}
	if err := a.registry.AddSymbol(symbols.NewTypeSymbol(n.Name.Name, alias, n)); err != nil {
		a.addError(diagnostics.ErrDefinitionConflict, n, n.Name.Name)
		return
	}
	alias.Target = a.resolver.Resolve(n.Target, &a.diags)
}

// registerMembers opens node's member scope, seeds it with the owner's
// generic parameter names, populates it from members, retains and
// returns the SymbolScope (the caller stores it in memberScopes) and
// leaves the scope before returning — the scope object itself survives
// the Leave() and is what later member lookups walk.
func (a *Analyzer) registerMembers(owner typesystem.Type, params []typesystem.GenericParameterType, members []ast.Declaration, node ast.Node) *symbols.SymbolScope {
	scope := a.registry.Enter(node)
	a.registerGenericParamSymbols(params)
	a.registerMembersInto(scope, owner, members)
	a.registry.Leave()
	return scope
}

// registerGenericParamSymbols makes each generic parameter name resolve
// as a type within the current scope.
func (a *Analyzer) registerGenericParamSymbols(params []typesystem.GenericParameterType) {
	for _, tp := range params {
		_ = a.registry.AddSymbol(symbols.NewTypeSymbol(tp.Name, tp, nil))
	}
}

func (a *Analyzer) registerMembersInto(scope *symbols.SymbolScope, owner typesystem.Type, members []ast.Declaration) {
	for _, m := range members {
		for _, sym := range a.buildMemberSymbol(owner, m) {
			if existing, ok := scope.Local(sym.Name); ok {
				_, isOverload := symbols.PromoteToOverloadSet(existing, sym)
				if isOverload {
					continue
				}
				a.addError(diagnostics.ErrDefinitionConflict, m, sym.Name)
				continue
			}
			_ = a.registry.AddSymbol(sym)
		}
	}
}

// buildMemberSymbol constructs the Symbol(s) a single member declaration
// contributes, in declaration order — a value-binding group contributes
// one entry per binding, everything else contributes exactly one. The
// order matters: diagnostics raised while registering must come out in
// source order on every run.
func (a *Analyzer) buildMemberSymbol(owner typesystem.Type, m ast.Declaration) []*symbols.Symbol {
	switch n := m.(type) {
	case *ast.FunctionDeclaration:
		sym := a.functionSymbol(n)
		sym.Flags = sym.Flags.With(symbols.FlagMember)
		if n.Modifiers.Has(ast.ModStatic) || n.Modifiers.Has(ast.ModClass) {
			sym.Flags = sym.Flags.With(symbols.FlagStatic)
		}
		return []*symbols.Symbol{sym}
	case *ast.InitDeclaration:
		return []*symbols.Symbol{{
			Name:  "init",
			Type:  a.parameterListFunctionType(n.Params, owner),
			Kind:  symbols.KindFunction,
			Flags: symbols.FlagReadable | symbols.FlagMember,
			Node:  n,
		}}
	case *ast.DeinitDeclaration:
		return nil // no callable name to register.
	case *ast.SubscriptDeclaration:
		return []*symbols.Symbol{{
			Name:  "subscript",
			Type:  a.subscriptFunctionType(n),
			Kind:  symbols.KindFunction,
			Flags: symbols.FlagReadable | symbols.FlagMember,
			Node:  n,
		}}
	case *ast.VariableDeclaration:
		return a.propertySymbols(n.Bindings, symbols.FlagWritable, n.Modifiers)
	case *ast.ConstantDeclaration:
		return a.propertySymbols(n.Bindings, 0, n.Modifiers)
	case *ast.ComputedPropertyDeclaration:
		flags := symbols.FlagMember | symbols.FlagReadable
		if n.HasSetter {
			flags = flags.With(symbols.FlagWritable)
		}
		return []*symbols.Symbol{{
			Name:  n.Name.Name,
			Type:  a.resolver.Resolve(n.TypeAnnotation, &a.diags),
			Kind:  symbols.KindComputedProperty,
			Flags: flags,
			Node:  n,
		}}
	case *ast.TypeAliasDeclaration:
		alias := &typesystem.AliasType{Name: n.Name.Name, Target: a.resolver.Resolve(n.Target, &a.diags)}
		return []*symbols.Symbol{symbols.NewTypeSymbol(n.Name.Name, alias, n)}
	}
	return nil
}

func memberFunctionName(n *ast.FunctionDeclaration) string {
	if n.Name != nil {
		return n.Name.Name
	}
	return "operator " + n.Operator
}

func (a *Analyzer) propertySymbols(bindings []*ast.ValueBindingDeclaration, extra symbols.Flags, mods ast.ModifierSet) []*symbols.Symbol {
	var out []*symbols.Symbol
	for _, b := range bindings {
		id, ok := b.Pattern.(*ast.IdentifierPattern)
		if !ok {
			continue // tuple-pattern stored properties aren't meaningful; flagged during body analysis.
		}
		flags := symbols.FlagMember | symbols.FlagStoredProperty | extra
		if mods.Has(ast.ModStatic) || mods.Has(ast.ModClass) {
			flags = flags.With(symbols.FlagStatic)
		}
		if mods.Has(ast.ModLazy) {
			flags = flags.With(symbols.FlagLazy)
		}
		var t typesystem.Type
		if b.TypeAnnotation != nil {
			t = a.resolver.Resolve(b.TypeAnnotation, &a.diags)
		} else {
			t = typesystem.ErrorType // backfilled once the initializer is typed in pass 2.
		}
		out = append(out, symbols.NewPlaceHolderSymbol(id.Name, t, symbols.RoleProperty, flags, b))
	}
	return out
}

func (a *Analyzer) registerGlobalBindings(bindings []*ast.ValueBindingDeclaration, extra symbols.Flags, mods ast.ModifierSet) {
	for _, sym := range a.propertySymbols(bindings, extra, mods) {
		sym.Flags = sym.Flags &^ symbols.FlagMember &^ symbols.FlagStoredProperty
		sym.Role = symbols.RoleLocalVariable
		if err := a.registry.AddSymbol(sym); err != nil {
			a.addError(diagnostics.ErrDefinitionConflict, sym.Node, sym.Name)
		}
	}
}

func (a *Analyzer) registerFunctionSignature(n *ast.FunctionDeclaration, owner typesystem.Type) {
	sym := a.functionSymbol(n)
	if err := a.registry.AddSymbol(sym); err != nil {
		a.addError(diagnostics.ErrDefinitionConflict, n, memberFunctionName(n))
	}
}

func (a *Analyzer) functionSymbol(n *ast.FunctionDeclaration) *symbols.Symbol {
	if len(n.TypeParams) > 0 {
		// Parameter and return annotations may mention the function's own
		// type parameters; resolve them inside a scope that binds those.
		a.registry.Enter(n)
		a.registerGenericParamSymbols(a.genericParams(memberFunctionName(n), n.TypeParams, n.Constraints))
		defer a.registry.Leave()
	}
	ft := a.parameterListFunctionType(n.Params, nil)
	if n.ReturnType != nil {
		ft.ReturnType = a.resolver.Resolve(n.ReturnType, &a.diags)
	} else {
		ft.ReturnType = typesystem.Void
	}
	return symbols.NewFunctionSymbol(memberFunctionName(n), ft, n)
}

func (a *Analyzer) parameterListFunctionType(list *ast.ParameterList, returnType typesystem.Type) typesystem.FunctionType {
	ft := typesystem.FunctionType{ReturnType: returnType}
	if returnType == nil {
		ft.ReturnType = typesystem.Void
	}
	if list == nil {
		return ft
	}
	for _, p := range list.Params {
		t := a.resolver.Resolve(p.TypeAnnotation, &a.diags)
		ft.Params = append(ft.Params, t)
		if p.IsVariadic {
			ft.IsVariadic = true
		}
	}
	return ft
}

func (a *Analyzer) subscriptFunctionType(n *ast.SubscriptDeclaration) typesystem.FunctionType {
	ft := a.parameterListFunctionType(n.Params, nil)
	ft.ReturnType = a.resolver.Resolve(n.ReturnType, &a.diags)
	return ft
}
