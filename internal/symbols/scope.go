package symbols

import (
	"fmt"

	"github.com/funvibe/swifty/internal/ast"
)

// SymbolScope owns a map from name to symbol, a pointer to its lexical
// parent, and a pointer to the tree node it scopes (a class body, a
// function body, a code block, or the file itself), so a pass can reason
// about what a scope is scoping without a side table.
type SymbolScope struct {
	names  map[string]*Symbol
	parent *SymbolScope
	owner  ast.Node
}

func newSymbolScope(parent *SymbolScope, owner ast.Node) *SymbolScope {
	return &SymbolScope{names: make(map[string]*Symbol), parent: parent, owner: owner}
}

// Owner returns the tree node this scope was opened for.
func (sc *SymbolScope) Owner() ast.Node { return sc.owner }

// Parent returns the enclosing lexical scope, nil at the global scope.
func (sc *SymbolScope) Parent() *SymbolScope { return sc.parent }

// Local returns the symbol bound directly in this scope, without walking
// outward.
func (sc *SymbolScope) Local(name string) (*Symbol, bool) {
	sym, ok := sc.names[name]
	return sym, ok
}

// Registry is the symbol registry spec.md §4.4 describes: a stack of
// SymbolScope frames entered/left as the analyzer descends the tree, plus
// the global singletons (primitive types, Array/Dictionary/Optional
// templates, built-in protocols, the operator table) installed once at
// the bottom of the stack.
type Registry struct {
	stack []*SymbolScope

	// pending holds declarations seen during a pre-scan but not yet run
	// through their registration pass, keyed by name — the forward-
	// reference support resolveLazySymbol needs.
	pending map[string]ast.Node

	// lazyResolve is supplied by the analyzer: given a pending
	// declaration node, run its registration pass and return the symbol
	// it produces. The registry itself has no notion of how to analyze a
	// declaration; it only knows when it must ask for one.
	lazyResolve func(decl ast.Node) *Symbol

	// resolving guards against a lazy resolution re-entering itself; the
	// analyzer is told about the cycle through onCycle.
	resolving map[string]bool
	onCycle   func(name string, decl ast.Node)
}

// NewRegistry returns a registry with only the global scope open,
// populated with the language's built-in singletons (see globals.go).
func NewRegistry() *Registry {
	r := &Registry{pending: make(map[string]ast.Node), resolving: make(map[string]bool)}
	r.stack = []*SymbolScope{newSymbolScope(nil, nil)}
	installGlobals(r)
	return r
}

// SetLazyResolver wires the analyzer's declaration-registration callback
// used by ResolveLazySymbol for forward references.
func (r *Registry) SetLazyResolver(fn func(decl ast.Node) *Symbol) {
	r.lazyResolve = fn
}

// SetCycleHandler wires the callback invoked when a lazy resolution
// re-enters the declaration it is already resolving.
func (r *Registry) SetCycleHandler(fn func(name string, decl ast.Node)) {
	r.onCycle = fn
}

// MarkPending records a declaration as seen-but-not-yet-registered, so a
// forward reference to its name can be resolved in place.
func (r *Registry) MarkPending(name string, decl ast.Node) {
	r.pending[name] = decl
}

// Enter pushes a new scope owned by node, child of the current top.
func (r *Registry) Enter(owner ast.Node) *SymbolScope {
	child := newSymbolScope(r.current(), owner)
	r.stack = append(r.stack, child)
	return child
}

// EnterChildOf pushes a new scope owned by node whose lexical parent is
// an explicit, possibly-retained scope rather than the current top of
// stack — used to re-enter a type's member scope (captured earlier by
// Enter's return value) when analyzing a method body, since by that
// point the registry's own stack has long since left it.
func (r *Registry) EnterChildOf(parent *SymbolScope, owner ast.Node) *SymbolScope {
	child := newSymbolScope(parent, owner)
	r.stack = append(r.stack, child)
	return child
}

// Leave pops the current scope. Leaving the global scope is a programmer
// error in the caller, not a recoverable condition.
func (r *Registry) Leave() {
	if len(r.stack) <= 1 {
		panic("symbols: Leave called with only the global scope open")
	}
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Registry) current() *SymbolScope {
	return r.stack[len(r.stack)-1]
}

// Global returns the bottom-of-stack scope holding the built-in singletons.
func (r *Registry) Global() *SymbolScope {
	return r.stack[0]
}

// AddSymbol registers sym in the current scope. It fails with a
// DefinitionConflict error unless the existing entry (if any) is a
// function whose signature differs from the incoming one, in which case
// the two are folded into an overload set instead of conflicting.
func (r *Registry) AddSymbol(sym *Symbol) error {
	scope := r.current()
	existing, ok := scope.names[sym.Name]
	if !ok {
		scope.names[sym.Name] = sym
		delete(r.pending, sym.Name)
		return nil
	}
	merged, isOverload := PromoteToOverloadSet(existing, sym)
	if !isOverload {
		return &DefinitionConflictError{Name: sym.Name}
	}
	scope.names[sym.Name] = merged
	return nil
}

// Lookup walks outward from the current scope until it finds name or
// exhausts the global scope.
func (r *Registry) Lookup(name string) (*Symbol, bool) {
	for s := r.current(); s != nil; s = s.parent {
		if sym, ok := s.names[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupIn walks outward starting from an explicit scope rather than the
// current top of stack, used when resolving a name inside a type's own
// member scope captured earlier (e.g. a method body resolving an
// enclosing class's property after the class scope has been left).
func LookupIn(scope *SymbolScope, name string) (*Symbol, bool) {
	for s := scope; s != nil; s = s.parent {
		if sym, ok := s.names[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// ResolveLazySymbol looks up name; if it isn't registered yet but was
// seen as a pending forward declaration, it invokes the analyzer's
// registration-pass callback in place and registers the result before
// returning it — spec.md §4.4's forward-reference rule.
func (r *Registry) ResolveLazySymbol(name string) (*Symbol, bool) {
	if sym, ok := r.Lookup(name); ok {
		return sym, true
	}
	decl, ok := r.pending[name]
	if !ok || r.lazyResolve == nil {
		return nil, false
	}
	if r.resolving[name] {
		if r.onCycle != nil {
			r.onCycle(name, decl)
		}
		return nil, false
	}
	r.resolving[name] = true
	defer delete(r.resolving, name)
	sym := r.lazyResolve(decl)
	if sym == nil {
		return nil, false
	}
	if err := r.AddSymbol(sym); err != nil {
		// Already registered by a nested resolution triggered during
		// lazyResolve; fetch whatever ended up bound under the name.
		return r.Lookup(name)
	}
	return sym, true
}

// DefinitionConflictError is E_DEFINITION_CONFLICT (spec.md §4.4).
type DefinitionConflictError struct {
	Name string
}

func (e *DefinitionConflictError) Error() string {
	return fmt.Sprintf("definition conflict: %q is already defined in this scope", e.Name)
}
