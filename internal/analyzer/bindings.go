package analyzer

import (
	"strconv"

	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/symbols"
	"github.com/funvibe/swifty/internal/token"
	"github.com/funvibe/swifty/internal/typesystem"
)

// bindingContext describes where a value-binding group sits, since the
// modifier and initializer rules differ for a stored member vs. a local.
type bindingContext struct {
	isMember   bool
	isProtocol bool
	isConstant bool
	ownerName  string // enclosing nominal type's name when isMember
	mods       ast.ModifierSet
}

// analyzeBindingGroup is spec.md §4.6's "Value bindings" rule set, run
// once per `var`/`let` group (local, member, or top-level).
func (a *Analyzer) analyzeBindingGroup(bindings []*ast.ValueBindingDeclaration, ctx bindingContext) {
	if ctx.mods.Has(ast.ModStatic) && !ctx.isMember {
		a.addError(diagnostics.ErrClassPropertiesOnlyOnType, bindings[0])
	}
	if ctx.mods.Has(ast.ModMutating) || ctx.mods.Has(ast.ModNonmutating) {
		a.addError(diagnostics.ErrModifierOnlyUsedOnDecl2, bindings[0], "mutating", "func")
	}

	// Rule 2: a trailing declared type applies to every untyped binding
	// that precedes it in the same `let a, b, c: Int` group.
	propagateBindingTypes(bindings)

	for _, b := range bindings {
		a.analyzeBinding(b, ctx)
	}
}

func propagateBindingTypes(bindings []*ast.ValueBindingDeclaration) {
	var trailing ast.TypeExpr
	for i := len(bindings) - 1; i >= 0; i-- {
		if bindings[i].TypeAnnotation != nil {
			trailing = bindings[i].TypeAnnotation
		} else if trailing != nil {
			bindings[i].TypeAnnotation = trailing
		}
	}
}

func (a *Analyzer) analyzeBinding(b *ast.ValueBindingDeclaration, ctx bindingContext) {
	if tuple, ok := b.Pattern.(*ast.TuplePattern); ok {
		a.explodeTuplePattern(b, tuple, ctx)
		return
	}
	id, isIdent := b.Pattern.(*ast.IdentifierPattern)
	if !isIdent {
		a.rejectNestedBindingPatterns(b.Pattern)
	}

	var declared typesystem.Type
	if b.TypeAnnotation != nil {
		declared = a.resolver.Resolve(b.TypeAnnotation, &a.diags)
	}

	if ctx.isProtocol && ctx.isConstant {
		a.addError(diagnostics.ErrProtocolPropertyCannotBeLet, b)
	}

	var sym *symbols.Symbol
	if isIdent {
		if ctx.isMember && ctx.ownerName != "" {
			sym, _ = a.lookupMember(ctx.ownerName, id.Name)
		} else {
			sym, _ = a.registry.Lookup(id.Name)
		}
	}
	if sym != nil {
		sym.Flags = sym.Flags.With(symbols.FlagInitializing)
	}

	if b.Initializer == nil {
		if declared == nil {
			a.addError(diagnostics.ErrTypeAnnotationMissing, b)
		}
		if ctx.isConstant && !ctx.isMember && !ctx.isProtocol {
			a.addError(diagnostics.ErrLetRequiresInitializer, b)
		}
		if sym != nil {
			sym.Flags = sym.Flags &^ symbols.FlagInitializing
		}
		return
	}

	initType := a.analyzeExpression(b.Initializer, declared)
	finalType := declared
	if finalType == nil {
		finalType = initType
	} else if !typesystem.CompatibleTypes(initType, finalType) {
		a.addError(diagnostics.ErrCannotConvertExpressionType2, b.Initializer, initType.String(), finalType.String())
	}

	if sym != nil {
		if sym.Type == nil || sym.Type == typesystem.ErrorType {
			sym.Type = finalType
		}
		sym.Flags = sym.Flags &^ symbols.FlagInitializing
		sym.Flags = sym.Flags.With(symbols.FlagHasInitializer)
	}
}

// rejectNestedBindingPatterns walks a pattern looking for a nested
// LetPattern/VarPattern, forbidden by spec.md §4.6 rule 3.
func (a *Analyzer) rejectNestedBindingPatterns(p ast.Pattern) {
	switch n := p.(type) {
	case *ast.LetPattern:
		a.addError(diagnostics.ErrNestedBindingPatternForbidden, n)
	case *ast.VarPattern:
		a.addError(diagnostics.ErrNestedBindingPatternForbidden, n)
	case *ast.TuplePattern:
		for _, e := range n.Elements {
			a.rejectNestedBindingPatterns(e)
		}
	case *ast.TypedPattern:
		a.rejectNestedBindingPatterns(n.Inner)
	}
}

// explodeTuplePattern rewrites `let (a, b) = pair` into a synthesized
// temporary binding holding the initializer plus one single-identifier
// binding per named leaf, each initialized by a member-access chain on
// the temporary whose indices spell the leaf's position. The expansion
// is recorded on the node (Expanded) so downstream consumers see only
// single-identifier bindings; the original pattern stays for diagnostics.
func (a *Analyzer) explodeTuplePattern(b *ast.ValueBindingDeclaration, tuple *ast.TuplePattern, ctx bindingContext) {
	for _, e := range tuple.Elements {
		a.rejectNestedBindingPatterns(e)
	}

	var declaredTuple typesystem.Type
	if b.TypeAnnotation != nil {
		declaredTuple = a.resolver.Resolve(b.TypeAnnotation, &a.diags)
	}

	initType := typesystem.ErrorType
	if b.Initializer != nil {
		initType = a.analyzeExpression(b.Initializer, declaredTuple)
	}

	tt, ok := typesystem.ResolveAlias(initType).(typesystem.TupleType)
	if !ok {
		if initType != typesystem.ErrorType {
			a.addError(diagnostics.ErrTuplePatternMustMatchTupleType, b,
				len(tuple.Elements), 0)
		}
		return
	}
	if len(tt.Elements) != len(tuple.Elements) {
		a.addError(diagnostics.ErrTuplePatternMustMatchTupleType, b,
			len(tuple.Elements), len(tt.Elements))
		return
	}

	tempName := a.tempNamer.next()
	tempSym := symbols.NewPlaceHolderSymbol(tempName, initType, symbols.RoleLocalVariable,
		symbols.FlagReadable|symbols.FlagHasInitializer|symbols.FlagTemporary, b)
	_ = a.registry.AddSymbol(tempSym)

	tempTok := b.GetToken()
	tempTok.Lexeme = tempName
	tempBinding := &ast.ValueBindingDeclaration{
		Token:       tempTok,
		Pattern:     &ast.IdentifierPattern{Token: tempTok, Name: tempName},
		Initializer: b.Initializer,
	}
	a.setType(tempBinding.Pattern.(*ast.IdentifierPattern), initType)
	b.Expanded = append(b.Expanded, tempBinding)

	var leafFlags symbols.Flags = symbols.FlagReadable | symbols.FlagHasInitializer
	if !ctx.isConstant {
		leafFlags = leafFlags.With(symbols.FlagWritable)
	}
	a.explodeLeaves(b, tuple, tt, tempTok, nil, leafFlags)
}

// explodeLeaves walks one level of a (possibly nested) tuple pattern.
// path holds the member-access indices from the temporary down to the
// sub-tuple currently being expanded.
func (a *Analyzer) explodeLeaves(b *ast.ValueBindingDeclaration, tuple *ast.TuplePattern, tt typesystem.TupleType, tempTok token.Token, path []int, leafFlags symbols.Flags) {
	for i, elem := range tuple.Elements {
		if i >= len(tt.Elements) {
			return
		}
		leafType := tt.Elements[i]
		leafPath := append(append([]int(nil), path...), i)
		switch leaf := elem.(type) {
		case *ast.IdentifierPattern:
			if leaf.Name == "_" {
				continue
			}
			a.emitLeafBinding(b, leaf.Token, leaf.Name, leafType, tempTok, leafPath, leafFlags)
		case *ast.TypedPattern:
			annotated := a.resolver.Resolve(leaf.TypeAnnotation, &a.diags)
			if !annotated.Equal(leafType) {
				a.addError(diagnostics.ErrTypedPatternMismatch, leaf, leafType.String())
			}
			if id, ok := leaf.Inner.(*ast.IdentifierPattern); ok && id.Name != "_" {
				a.emitLeafBinding(b, id.Token, id.Name, leafType, tempTok, leafPath, leafFlags)
			}
		case *ast.TuplePattern:
			inner, ok := typesystem.ResolveAlias(leafType).(typesystem.TupleType)
			if !ok || len(inner.Elements) != len(leaf.Elements) {
				a.addError(diagnostics.ErrTuplePatternMustMatchTupleType, leaf,
					len(leaf.Elements), len(inner.Elements))
				continue
			}
			a.explodeLeaves(b, leaf, inner, tempTok, leafPath, leafFlags)
		}
	}
}

// emitLeafBinding registers the leaf's symbol and appends its synthesized
// single-identifier binding, whose initializer chains member accesses on
// the temporary: $tuple.0.1 for path [0, 1].
func (a *Analyzer) emitLeafBinding(b *ast.ValueBindingDeclaration, tok token.Token, name string, t typesystem.Type, tempTok token.Token, path []int, leafFlags symbols.Flags) {
	sym := symbols.NewPlaceHolderSymbol(name, t, symbols.RoleLocalVariable, leafFlags, b)
	_ = a.registry.AddSymbol(sym)

	var chain ast.Expression = &ast.Identifier{Token: tempTok, Name: tempTok.Lexeme}
	for _, idx := range path {
		idxTok := tempTok
		idxTok.Lexeme = strconv.Itoa(idx)
		chain = &ast.MemberAccessExpression{
			Token:  idxTok,
			Base:   chain,
			Member: &ast.Identifier{Token: idxTok, Name: idxTok.Lexeme},
		}
	}
	a.setType(chain, t)

	b.Expanded = append(b.Expanded, &ast.ValueBindingDeclaration{
		Token:       tok,
		Pattern:     &ast.IdentifierPattern{Token: tok, Name: name},
		Initializer: chain,
	})
}
