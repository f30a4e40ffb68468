// Package symbols implements the symbol registry and lexical scope stack
// every declaration is registered into and every identifier is looked up
// against.
package symbols

import (
	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/typesystem"
)

// Kind is the closed set a Symbol can report itself as.
type Kind int

const (
	KindModule Kind = iota
	KindType
	KindFunction
	KindOverloadedFunction
	KindPlaceHolder
	KindComputedProperty
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "Module"
	case KindType:
		return "Type"
	case KindFunction:
		return "Function"
	case KindOverloadedFunction:
		return "OverloadedFunction"
	case KindPlaceHolder:
		return "PlaceHolder"
	case KindComputedProperty:
		return "ComputedProperty"
	default:
		return "Unknown"
	}
}

// Flags is the bitset attached to every Symbol.
type Flags uint32

const (
	FlagNone Flags = 0
	FlagReadable Flags = 1 << iota
	FlagWritable
	FlagMember
	FlagStatic
	FlagLazy
	FlagNonMutating
	FlagStoredProperty
	FlagInitializing
	FlagHasInitializer
	FlagTemporary
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

func (f Flags) With(flag Flags) Flags { return f | flag }

// Role narrows a KindPlaceHolder symbol to what kind of value binding it is.
type Role int

const (
	RoleLocalVariable Role = iota
	RoleProperty
	RoleParameter
)

func (r Role) String() string {
	switch r {
	case RoleLocalVariable:
		return "LocalVariable"
	case RoleProperty:
		return "Property"
	case RoleParameter:
		return "Parameter"
	default:
		return "Unknown"
	}
}

// Symbol is one named entity bound in a SymbolScope.
type Symbol struct {
	Name  string
	Type  typesystem.Type
	Kind  Kind
	Flags Flags

	// Role is only meaningful when Kind == KindPlaceHolder.
	Role Role

	// Overloads holds the ordered set of concrete function symbols once
	// this Symbol has been promoted to KindOverloadedFunction — see
	// PromoteToOverloadSet. Declaration order is preserved, which is what
	// spec.md's overload-ranking tie-break (declaration order) depends on.
	Overloads []*Symbol

	// Node is the declaration this symbol was registered from, used by
	// resolveLazySymbol to re-enter the declaration's registration pass
	// for a forward reference. Nil for synthesized/global symbols.
	Node ast.Node
}

// NewFunctionSymbol builds a plain (not-yet-overloaded) function symbol.
func NewFunctionSymbol(name string, t typesystem.Type, node ast.Node) *Symbol {
	return &Symbol{Name: name, Type: t, Kind: KindFunction, Flags: FlagReadable, Node: node}
}

// NewPlaceHolderSymbol builds a value-binding symbol for a let/var.
func NewPlaceHolderSymbol(name string, t typesystem.Type, role Role, flags Flags, node ast.Node) *Symbol {
	return &Symbol{Name: name, Type: t, Kind: KindPlaceHolder, Role: role, Flags: flags | FlagReadable, Node: node}
}

// NewTypeSymbol builds a symbol naming a Class/Struct/Enum/Protocol/Alias
// declaration.
func NewTypeSymbol(name string, t typesystem.Type, node ast.Node) *Symbol {
	return &Symbol{Name: name, Type: t, Kind: KindType, Flags: FlagReadable, Node: node}
}

// signaturesDiffer reports whether two function types have distinct
// parameter signatures, the test spec.md §4.4 uses to decide whether a
// second registration under the same name promotes to an overload set
// (distinct signature) or is a straight conflict (identical signature).
func signaturesDiffer(a, b typesystem.Type) bool {
	fa, aok := a.(typesystem.FunctionType)
	fb, bok := b.(typesystem.FunctionType)
	if !aok || !bok {
		return !a.Equal(b)
	}
	if len(fa.Params) != len(fb.Params) {
		return true
	}
	for i := range fa.Params {
		if !fa.Params[i].Equal(fb.Params[i]) {
			return true
		}
	}
	return false
}

// PromoteToOverloadSet folds newSym into existing, promoting existing to
// KindOverloadedFunction in place if it isn't one already. Returns the
// (possibly mutated) existing symbol and whether the incoming symbol was
// a genuine overload (distinct signature) as opposed to a straight
// redefinition conflict.
func PromoteToOverloadSet(existing *Symbol, newSym *Symbol) (merged *Symbol, isOverload bool) {
	if existing.Kind != KindFunction && existing.Kind != KindOverloadedFunction {
		return existing, false
	}
	if newSym.Kind != KindFunction {
		return existing, false
	}
	if existing.Kind == KindFunction {
		if !signaturesDiffer(existing.Type, newSym.Type) {
			return existing, false
		}
		first := &Symbol{Name: existing.Name, Type: existing.Type, Kind: KindFunction, Flags: existing.Flags, Node: existing.Node}
		existing.Kind = KindOverloadedFunction
		existing.Overloads = []*Symbol{first}
		existing.Type = nil
	}
	for _, o := range existing.Overloads {
		if !signaturesDiffer(o.Type, newSym.Type) {
			return existing, false
		}
	}
	existing.Overloads = append(existing.Overloads, newSym)
	return existing, true
}
