// Package resolver implements spec.md §4.2's type resolver and §4.3's
// generic specialization. Both share one cache and one "insert the
// placeholder before recursing into members" invariant, which is why
// they live in a single package rather than being split across the
// resolver/analyzer boundary the way the rest of the front end is.
//
// Grounded on original_source/swallow/src/semantics/TypeResolver.cpp
// (resolveIdentifier's Self/module/arity handling) and
// TypeSpecialization.cpp (cache-then-recurse, category dispatch).
package resolver

import (
	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/config"
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/symbols"
	"github.com/funvibe/swifty/internal/typesystem"
)

// Resolver converts syntactic ast.TypeExpr nodes into canonical
// typesystem.Type values, memoizing per node and collapsing alias chains.
type Resolver struct {
	registry *symbols.Registry
	interner *typesystem.Interner
	file     string

	memo      map[ast.TypeExpr]typesystem.Type
	selfStack []typesystem.Type
}

// New returns a Resolver reading/writing registry's scope stack and
// interner's specialization cache.
func New(registry *symbols.Registry, interner *typesystem.Interner, file string) *Resolver {
	return &Resolver{
		registry: registry,
		interner: interner,
		file:     file,
		memo:     make(map[ast.TypeExpr]typesystem.Type),
	}
}

// PushSelf records the enclosing nominal type for the duration of
// resolving a type expression written inside its body, so a bare `Self`
// resolves per spec.md §4.2. Nil means "inside a protocol body" (Self is
// unresolved until a conforming type is known).
func (r *Resolver) PushSelf(t typesystem.Type) { r.selfStack = append(r.selfStack, t) }

// PopSelf restores the previous Self context.
func (r *Resolver) PopSelf() {
	if len(r.selfStack) > 0 {
		r.selfStack = r.selfStack[:len(r.selfStack)-1]
	}
}

func (r *Resolver) currentSelf() typesystem.Type {
	if len(r.selfStack) == 0 {
		return nil
	}
	return r.selfStack[len(r.selfStack)-1]
}

// Resolve converts expr into a canonical type. Failures append a
// diagnostic to *diags and the node is type-tagged with
// typesystem.ErrorType rather than left nil, per spec.md §7's
// name-resolution band.
func (r *Resolver) Resolve(expr ast.TypeExpr, diags *[]*diagnostics.DiagnosticError) typesystem.Type {
	if expr == nil {
		return typesystem.ErrorType
	}
	if cached, ok := r.memo[expr]; ok {
		return cached
	}
	t := r.resolveUncached(expr, diags)
	r.memo[expr] = t
	return t
}

func (r *Resolver) resolveUncached(expr ast.TypeExpr, diags *[]*diagnostics.DiagnosticError) typesystem.Type {
	switch n := expr.(type) {
	case *ast.TypeIdentifierExpr:
		return r.resolveTypeIdentifier(n, diags)
	case *ast.TupleTypeExpr:
		elems := make([]typesystem.Type, len(n.Elements))
		for i, e := range n.Elements {
			elems[i] = r.Resolve(e, diags)
		}
		return typesystem.TupleType{Elements: elems, Labels: n.Labels}
	case *ast.ArrayTypeExpr:
		elem := r.Resolve(n.ElementType, diags)
		return r.specializeBuiltin(config.ArrayTypeName, []typesystem.Type{elem})
	case *ast.DictionaryTypeExpr:
		key := r.Resolve(n.KeyType, diags)
		value := r.Resolve(n.ValueType, diags)
		return r.specializeBuiltin(config.DictionaryTypeName, []typesystem.Type{key, value})
	case *ast.OptionalTypeExpr:
		wrapped := r.Resolve(n.Wrapped, diags)
		return r.specializeBuiltin(config.OptionalTypeName, []typesystem.Type{wrapped})
	case *ast.ImplicitlyUnwrappedOptionalTypeExpr:
		wrapped := r.Resolve(n.Wrapped, diags)
		return r.specializeBuiltin(config.OptionalTypeName, []typesystem.Type{wrapped})
	case *ast.FunctionTypeExpr:
		params := make([]typesystem.Type, len(n.Params))
		for i, p := range n.Params {
			params[i] = r.Resolve(p, diags)
		}
		ret := r.Resolve(n.ReturnType, diags)
		return typesystem.FunctionType{Params: params, ReturnType: ret}
	case *ast.ProtocolCompositionTypeExpr:
		members := make([]typesystem.Type, 0, len(n.Protocols))
		for _, p := range n.Protocols {
			t := r.Resolve(p, diags)
			if _, ok := t.(*typesystem.ProtocolType); !ok {
				*diags = append(*diags, diagnostics.NewResolverError(
					diagnostics.ErrNonProtocolTypeInComposition, p.GetToken(), t.String()))
				continue
			}
			members = append(members, t)
		}
		return typesystem.NewProtocolComposition(members)
	default:
		return typesystem.ErrorType
	}
}

func (r *Resolver) resolveTypeIdentifier(n *ast.TypeIdentifierExpr, diags *[]*diagnostics.DiagnosticError) typesystem.Type {
	if n.Qualifier != nil {
		qualifier := r.Resolve(n.Qualifier, diags)
		switch q := qualifier.(type) {
		case typesystem.ModuleType:
			// Single-level nested identifier resolution: look up Name
			// inside the module's own scope rather than the current one.
			if sym, ok := r.registry.Lookup(q.Name + "." + n.Name.Name); ok {
				return r.finishIdentifier(n, sym.Type, diags)
			}
			*diags = append(*diags, diagnostics.NewResolverError(
				diagnostics.ErrUseOfUndeclaredType, n.Token, n.Name.Name))
			return typesystem.ErrorType
		case *typesystem.SpecializedType:
			// A nested type reached through a specialization must itself
			// be non-generic.
			if len(n.GenericArgs) > 0 {
				*diags = append(*diags, diagnostics.NewResolverError(
					diagnostics.ErrNestedTypeMustBeNonGeneric, n.Token, n.Name.Name))
				return typesystem.ErrorType
			}
			if sym, ok := r.registry.Lookup(nestedKey(q.Generic, n.Name.Name)); ok {
				return r.finishIdentifier(n, typesystem.ResolveAlias(sym.Type), diags)
			}
			*diags = append(*diags, diagnostics.NewResolverError(
				diagnostics.ErrUseOfUndeclaredType, n.Token, n.Name.Name))
			return typesystem.ErrorType
		case typesystem.NamedType:
			if sym, ok := r.registry.Lookup(q.TypeName() + "." + n.Name.Name); ok {
				return r.finishIdentifier(n, typesystem.ResolveAlias(sym.Type), diags)
			}
			*diags = append(*diags, diagnostics.NewResolverError(
				diagnostics.ErrUseOfUndeclaredType, n.Token, n.Name.Name))
			return typesystem.ErrorType
		}
	}

	name := n.Name.Name
	if name == config.SelfTypeIdentifier {
		if self := r.currentSelf(); self != nil {
			return self
		}
		return typesystem.SelfType{}
	}

	sym, ok := r.registry.ResolveLazySymbol(name)
	if !ok || sym.Kind != symbols.KindType {
		*diags = append(*diags, diagnostics.NewResolverError(
			diagnostics.ErrUseOfUndeclaredType, n.Token, name))
		return typesystem.ErrorType
	}
	base := typesystem.ResolveAlias(sym.Type)
	return r.finishIdentifier(n, base, diags)
}

func (r *Resolver) finishIdentifier(n *ast.TypeIdentifierExpr, base typesystem.Type, diags *[]*diagnostics.DiagnosticError) typesystem.Type {
	params := typesystem.TypeParamsOf(base)
	if len(n.GenericArgs) == 0 {
		if len(params) > 0 {
			*diags = append(*diags, diagnostics.NewResolverError(
				diagnostics.ErrGenericTypeArgumentRequired, n.Token, base.String()))
			return typesystem.ErrorType
		}
		return base
	}
	if len(params) == 0 {
		*diags = append(*diags, diagnostics.NewResolverError(
			diagnostics.ErrCannotSpecializeNonGenericType, n.Token, base.String()))
		return base
	}
	args := make([]typesystem.Type, len(n.GenericArgs))
	for i, a := range n.GenericArgs {
		args[i] = r.Resolve(a, diags)
	}
	if len(args) > len(params) {
		*diags = append(*diags, diagnostics.NewResolverError(
			diagnostics.ErrTypeArgumentsWithTooMany, n.Token, base.String()))
		return typesystem.ErrorType
	}
	if len(args) < len(params) {
		*diags = append(*diags, diagnostics.NewResolverError(
			diagnostics.ErrTypeArgumentsWithInsufficient, n.Token, base.String()))
		return typesystem.ErrorType
	}
	return Specialize(r.interner, base, args)
}

// nestedKey builds the registry key for a type nested inside a nominal
// declaration.
func nestedKey(outer typesystem.Type, name string) string {
	if named, ok := outer.(typesystem.NamedType); ok {
		return named.TypeName() + "." + name
	}
	return name
}

// specializeBuiltin looks up one of the global Array/Dictionary/Optional
// templates by name and specializes it over args, used by the literal
// sugar forms ([T], [K:V], T?, T!) that bypass TypeIdentifierExpr.
func (r *Resolver) specializeBuiltin(name string, args []typesystem.Type) typesystem.Type {
	sym, ok := r.registry.Lookup(name)
	if !ok {
		return typesystem.ErrorType
	}
	return Specialize(r.interner, sym.Type, args)
}
