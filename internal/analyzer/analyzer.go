// Package analyzer implements the two-pass semantic analyzer: a first
// sweep that registers every declaration's name and type (so later
// sweeps and forward references within the same file see a fully
// populated symbol table) and a second sweep that walks every
// initializer and function body, typing expressions and checking the
// rules spec.md §4.6 lists.
package analyzer

import (
	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/resolver"
	"github.com/funvibe/swifty/internal/symbols"
	"github.com/funvibe/swifty/internal/typesystem"
)

// Analyzer holds everything the two sweeps share: the symbol registry
// and resolver the parse tree is checked against, the per-node type map
// built up as expressions are typed, and a handful of scoped stacks
// (enclosing Self type, whether self is presently mutable, the
// function's declared return type) that are pushed/popped exactly like
// the registry's own scope stack.
type Analyzer struct {
	registry *symbols.Registry
	interner *typesystem.Interner
	resolver *resolver.Resolver
	file     string

	diags   []*diagnostics.DiagnosticError
	typeMap map[ast.Node]typesystem.Type

	// memberScopes retains the SymbolScope each nominal type's member list
	// was registered into, keyed by type name, so pass 2 (and later member
	// lookups from anywhere else in the file) can resolve `self.foo` after
	// the registry itself has long since left that scope. extensionMembers
	// holds additional members contributed by `extension` blocks, which
	// don't get a SymbolScope of their own (see registerExtension).
	memberScopes     map[string]*symbols.SymbolScope
	extensionMembers map[string]map[string]*symbols.Symbol

	// registered tracks which declaration nodes have run their pass-1
	// registration, so a forward reference resolved lazily is not
	// re-registered (and a genuine redeclaration still is, to get its
	// conflict diagnostic).
	registered map[ast.Declaration]bool

	selfTypeStack    []typesystem.Type
	selfMutableStack []bool
	staticStack      []bool
	returnTypeStack  []typesystem.Type
	loopDepth        int

	tempNamer *tempNamer
}

// New returns an Analyzer ready to check program against registry's
// global scope. file is stored on the analyzer and passed to its
// resolver; neither reads it when building diagnostics or tokens.
func New(registry *symbols.Registry, interner *typesystem.Interner, file string) *Analyzer {
	a := &Analyzer{
		registry:         registry,
		interner:         interner,
		resolver:         resolver.New(registry, interner, file),
		file:             file,
		typeMap:          make(map[ast.Node]typesystem.Type),
		memberScopes:     make(map[string]*symbols.SymbolScope),
		extensionMembers: make(map[string]map[string]*symbols.Symbol),
		registered:       make(map[ast.Declaration]bool),
		tempNamer:        newTempNamer(),
	}
	registry.SetLazyResolver(a.lazyResolveTopLevel)
	registry.SetCycleHandler(func(name string, decl ast.Node) {
		a.diags = append(a.diags, diagnostics.NewAnalyzerError(
			diagnostics.ErrCyclicDeclaration, decl.GetToken(), name))
	})
	return a
}

// Diagnostics returns every diagnostic collected across both sweeps, in
// the order they were raised.
func (a *Analyzer) Diagnostics() []*diagnostics.DiagnosticError { return a.diags }

// TypeOf returns the type a node was annotated with during analysis, if
// any — used by the prettyprinter's typed-tree dump.
func (a *Analyzer) TypeOf(n ast.Node) (typesystem.Type, bool) {
	t, ok := a.typeMap[n]
	return t, ok
}

// TypeMap exposes the full node-to-type annotation table, for the
// pipeline to publish on its context once analysis finishes.
func (a *Analyzer) TypeMap() map[ast.Node]typesystem.Type { return a.typeMap }

func (a *Analyzer) setType(n ast.Node, t typesystem.Type) typesystem.Type {
	a.typeMap[n] = t
	return t
}

// AnalyzeDeclarations is pass 1: registers every top-level declaration's
// name and type (headers only — no bodies are walked), so pass 2 and any
// forward reference within pass 1 itself can see the full symbol table.
func (a *Analyzer) AnalyzeDeclarations(program *ast.Program) {
	for _, imp := range program.Imports {
		a.registerImport(imp)
	}
	for _, d := range program.Decls {
		if name := declName(d); name != "" {
			a.registry.MarkPending(name, d)
		}
	}
	for _, d := range program.Decls {
		a.registerTopLevel(d)
	}
}

// registerImport binds the imported module's (aliased) name to a Module
// symbol, so a qualified type reference can descend into it.
func (a *Analyzer) registerImport(imp *ast.ImportDeclaration) {
	if len(imp.Path) == 0 {
		return
	}
	name := imp.Path[len(imp.Path)-1].Name
	if imp.Alias != nil {
		name = imp.Alias.Name
	}
	sym := &symbols.Symbol{
		Name:  name,
		Type:  typesystem.ModuleType{Name: name},
		Kind:  symbols.KindModule,
		Flags: symbols.FlagReadable,
		Node:  imp,
	}
	if err := a.registry.AddSymbol(sym); err != nil {
		a.addError(diagnostics.ErrDefinitionConflict, imp, name)
	}
}

// AnalyzeBodies is pass 2: walks every function/init/deinit body and
// every value binding's initializer, typing expressions in place and
// raising the behavioral diagnostics spec.md §4.6 describes.
func (a *Analyzer) AnalyzeBodies(program *ast.Program) {
	for _, d := range program.Decls {
		a.analyzeTopLevelBody(d)
	}
}

// lazyResolveTopLevel is the registry's forward-reference callback: run
// a still-pending top-level declaration's registration pass in place and
// return the symbol it produces.
func (a *Analyzer) lazyResolveTopLevel(decl ast.Node) *symbols.Symbol {
	d, ok := decl.(ast.Declaration)
	if !ok {
		return nil
	}
	a.registerTopLevel(d)
	sym, _ := a.registry.Lookup(declName(d))
	return sym
}

func (a *Analyzer) addError(code diagnostics.ErrorCode, tok ast.Node, args ...interface{}) {
	a.diags = append(a.diags, diagnostics.NewAnalyzerError(code, tok.GetToken(), args...))
}

func (a *Analyzer) addFatal(tok ast.Node, detail string) {
	a.diags = append(a.diags, diagnostics.NewFatal(tok.GetToken(), detail))
}

// currentSelf/pushSelf/popSelf track the enclosing nominal type for
// `self`/`Self` resolution and are kept in lockstep with the resolver's
// own Self stack (the resolver needs it to resolve `Self` inside a type
// annotation; the analyzer needs it to type bare `self` expressions).
func (a *Analyzer) pushSelf(t typesystem.Type, mutable bool) {
	a.selfTypeStack = append(a.selfTypeStack, t)
	a.selfMutableStack = append(a.selfMutableStack, mutable)
	a.resolver.PushSelf(t)
}

func (a *Analyzer) popSelf() {
	a.selfTypeStack = a.selfTypeStack[:len(a.selfTypeStack)-1]
	a.selfMutableStack = a.selfMutableStack[:len(a.selfMutableStack)-1]
	a.resolver.PopSelf()
}

func (a *Analyzer) currentSelf() (typesystem.Type, bool) {
	if len(a.selfTypeStack) == 0 {
		return nil, false
	}
	n := len(a.selfTypeStack) - 1
	return a.selfTypeStack[n], a.selfMutableStack[n]
}

func (a *Analyzer) pushStatic(static bool) { a.staticStack = append(a.staticStack, static) }
func (a *Analyzer) popStatic()             { a.staticStack = a.staticStack[:len(a.staticStack)-1] }
func (a *Analyzer) inStaticContext() bool {
	return len(a.staticStack) > 0 && a.staticStack[len(a.staticStack)-1]
}

func (a *Analyzer) pushReturnType(t typesystem.Type) {
	a.returnTypeStack = append(a.returnTypeStack, t)
}
func (a *Analyzer) popReturnType() { a.returnTypeStack = a.returnTypeStack[:len(a.returnTypeStack)-1] }
func (a *Analyzer) currentReturnType() typesystem.Type {
	if len(a.returnTypeStack) == 0 {
		return typesystem.Void
	}
	return a.returnTypeStack[len(a.returnTypeStack)-1]
}

// lookupMember resolves ownerName's member memberName, checking the
// type's own retained declaration scope first and then every extension
// block that added members to it.
func (a *Analyzer) lookupMember(ownerName, memberName string) (*symbols.Symbol, bool) {
	if scope, ok := a.memberScopes[ownerName]; ok {
		if sym, ok := symbols.LookupIn(scope, memberName); ok {
			return sym, true
		}
	}
	if extra, ok := a.extensionMembers[ownerName]; ok {
		if sym, ok := extra[memberName]; ok {
			return sym, true
		}
	}
	return nil, false
}

func declName(d ast.Declaration) string {
	switch n := d.(type) {
	case *ast.ClassDeclaration:
		return n.Name.Name
	case *ast.StructDeclaration:
		return n.Name.Name
	case *ast.EnumDeclaration:
		return n.Name.Name
	case *ast.ProtocolDeclaration:
		return n.Name.Name
	case *ast.FunctionDeclaration:
		if n.Name != nil {
			return n.Name.Name
		}
		return "operator " + n.Operator
	case *ast.TypeAliasDeclaration:
		return n.Name.Name
	case *ast.VariableDeclaration:
		return bindingGroupName(n.Bindings)
	case *ast.ConstantDeclaration:
		return bindingGroupName(n.Bindings)
	case *ast.ExtensionDeclaration:
		return "extension " + n.ExtendedType.TokenLiteral()
	default:
		return ""
	}
}

func bindingGroupName(bindings []*ast.ValueBindingDeclaration) string {
	if len(bindings) == 0 {
		return ""
	}
	if id, ok := bindings[0].Pattern.(*ast.IdentifierPattern); ok {
		return id.Name
	}
	return ""
}
