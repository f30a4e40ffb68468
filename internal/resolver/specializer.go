package resolver

import "github.com/funvibe/swifty/internal/typesystem"

// Specialize binds generic's type parameters to args, per spec.md §4.3.
// Nominal declarations (Class/Struct/Enum/Protocol) go through the
// interner so repeated specialization over the same arguments returns the
// identical value and so a self-referential generic (a linked list node
// whose own field mentions Node<T>) finds its own in-progress
// specialization instead of recursing forever. There is no member table
// to copy here — ClassType/StructType/EnumType/ProtocolType carry none —
// so a caller that needs a specialized member's type projects it on
// demand with typesystem.Substitute once it has looked the member up
// through the declaration's retained symbols.SymbolScope.
func Specialize(interner *typesystem.Interner, generic typesystem.Type, args []typesystem.Type) typesystem.Type {
	generic = typesystem.ResolveAlias(generic)

	switch g := generic.(type) {
	case *typesystem.ClassType, *typesystem.StructType, *typesystem.EnumType, *typesystem.ProtocolType:
		if len(args) == 0 {
			return generic
		}
		return interner.Specialize(generic, args)

	case *typesystem.SpecializedType:
		// A generic already-specialized type is being specialized again:
		// this is the "nested generic, outer unbound, inner supplied"
		// shape (e.g. Box<T>.Contents used inside another generic body).
		// Project args onto the inner generic's own parameter list and
		// re-specialize its Generic directly, rather than wrapping a
		// SpecializedType around a SpecializedType.
		innerParams := typesystem.TypeParamsOf(g.Generic)
		bindings := typesystem.BindingsFor(innerParams, args)
		newArgs := make([]typesystem.Type, len(g.Args))
		for i, a := range g.Args {
			newArgs[i] = typesystem.Substitute(a, bindings)
		}
		return interner.Specialize(g.Generic, newArgs)

	case typesystem.FunctionType:
		// A bare generic function type isn't resolved through this path
		// today (functions aren't looked up as TypeIdentifierExpr
		// targets); kept as a safe no-op rather than a panic if some
		// future caller feeds one in.
		return g

	default:
		return generic
	}
}

// CanSpecializeTo unifies template (a type that may still mention
// GenericParameterType) against concrete, recording each parameter it
// binds into bindings. Used by the analyzer's generic callee inference
// (spec.md §4.6 FunctionCall typing) to work out a call's implicit type
// arguments from its actual argument types.
func CanSpecializeTo(template, concrete typesystem.Type, bindings map[string]typesystem.Type) bool {
	switch t := template.(type) {
	case typesystem.GenericParameterType:
		if bound, ok := bindings[t.Name]; ok {
			return bound.Equal(concrete)
		}
		bindings[t.Name] = concrete
		return true

	case typesystem.TupleType:
		c, ok := concrete.(typesystem.TupleType)
		if !ok || len(c.Elements) != len(t.Elements) {
			return false
		}
		for i := range t.Elements {
			if !CanSpecializeTo(t.Elements[i], c.Elements[i], bindings) {
				return false
			}
		}
		return true

	case typesystem.FunctionType:
		c, ok := concrete.(typesystem.FunctionType)
		if !ok || len(c.Params) != len(t.Params) {
			return false
		}
		for i := range t.Params {
			if !CanSpecializeTo(t.Params[i], c.Params[i], bindings) {
				return false
			}
		}
		return CanSpecializeTo(t.ReturnType, c.ReturnType, bindings)

	case *typesystem.SpecializedType:
		c, ok := concrete.(*typesystem.SpecializedType)
		if !ok || !t.Generic.Equal(c.Generic) || len(t.Args) != len(c.Args) {
			return false
		}
		for i := range t.Args {
			if !CanSpecializeTo(t.Args[i], c.Args[i], bindings) {
				return false
			}
		}
		return true

	default:
		return typesystem.CompatibleTypes(concrete, template)
	}
}
