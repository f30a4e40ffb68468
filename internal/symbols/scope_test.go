package symbols

import (
	"testing"

	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/token"
	"github.com/funvibe/swifty/internal/typesystem"
)

func TestGlobalsInstalled(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"Int", "Bool", "String", "Array", "Dictionary", "Optional", "Equatable", "Hashable"} {
		sym, ok := r.Lookup(name)
		if !ok {
			t.Errorf("global %q missing", name)
			continue
		}
		if sym.Kind != KindType {
			t.Errorf("global %q has kind %v", name, sym.Kind)
		}
	}
}

func TestLookupWalksOutward(t *testing.T) {
	r := NewRegistry()
	outer := NewPlaceHolderSymbol("x", typesystem.Int, RoleLocalVariable, 0, nil)
	if err := r.AddSymbol(outer); err != nil {
		t.Fatal(err)
	}
	r.Enter(nil)
	inner := NewPlaceHolderSymbol("y", typesystem.Bool, RoleLocalVariable, 0, nil)
	if err := r.AddSymbol(inner); err != nil {
		t.Fatal(err)
	}

	if sym, ok := r.Lookup("x"); !ok || sym != outer {
		t.Error("inner scope should see the outer binding")
	}
	r.Leave()
	if _, ok := r.Lookup("y"); ok {
		t.Error("left scope's binding should no longer resolve")
	}
}

func TestShadowing(t *testing.T) {
	r := NewRegistry()
	outer := NewPlaceHolderSymbol("x", typesystem.Int, RoleLocalVariable, 0, nil)
	_ = r.AddSymbol(outer)
	r.Enter(nil)
	shadow := NewPlaceHolderSymbol("x", typesystem.Bool, RoleLocalVariable, 0, nil)
	if err := r.AddSymbol(shadow); err != nil {
		t.Fatalf("shadowing in a nested scope should be allowed: %v", err)
	}
	if sym, _ := r.Lookup("x"); sym != shadow {
		t.Error("lookup should find the innermost binding first")
	}
}

func TestDefinitionConflict(t *testing.T) {
	r := NewRegistry()
	_ = r.AddSymbol(NewPlaceHolderSymbol("x", typesystem.Int, RoleLocalVariable, 0, nil))
	err := r.AddSymbol(NewPlaceHolderSymbol("x", typesystem.Bool, RoleLocalVariable, 0, nil))
	if err == nil {
		t.Fatal("same-scope redefinition should conflict")
	}
	if _, ok := err.(*DefinitionConflictError); !ok {
		t.Errorf("error type = %T", err)
	}
}

func fnType(params ...typesystem.Type) typesystem.FunctionType {
	return typesystem.FunctionType{Params: params, ReturnType: typesystem.Void}
}

func TestOverloadPromotion(t *testing.T) {
	r := NewRegistry()
	first := NewFunctionSymbol("f", fnType(typesystem.Int), nil)
	if err := r.AddSymbol(first); err != nil {
		t.Fatal(err)
	}
	second := NewFunctionSymbol("f", fnType(typesystem.Bool), nil)
	if err := r.AddSymbol(second); err != nil {
		t.Fatalf("distinct signature should promote, not conflict: %v", err)
	}

	sym, _ := r.Lookup("f")
	if sym.Kind != KindOverloadedFunction {
		t.Fatalf("kind = %v, want OverloadedFunction", sym.Kind)
	}
	if len(sym.Overloads) != 2 {
		t.Fatalf("overloads = %d, want 2", len(sym.Overloads))
	}
	// declaration order preserved for the ranking tie-break
	if !sym.Overloads[0].Type.(typesystem.FunctionType).Params[0].Equal(typesystem.Int) {
		t.Error("first-declared overload should stay first")
	}
}

func TestOverloadIdenticalSignatureConflicts(t *testing.T) {
	r := NewRegistry()
	_ = r.AddSymbol(NewFunctionSymbol("f", fnType(typesystem.Int), nil))
	if err := r.AddSymbol(NewFunctionSymbol("f", fnType(typesystem.Int), nil)); err == nil {
		t.Error("identical signature should be a definition conflict")
	}
}

func TestResolveLazySymbol(t *testing.T) {
	r := NewRegistry()
	decl := &ast.Identifier{Token: token.Token{Type: token.IDENT, Lexeme: "Late"}, Name: "Late"}
	resolved := 0
	r.SetLazyResolver(func(node ast.Node) *Symbol {
		resolved++
		return NewTypeSymbol("Late", &typesystem.StructType{Name: "Late"}, node)
	})
	r.MarkPending("Late", decl)

	sym, ok := r.ResolveLazySymbol("Late")
	if !ok || sym.Name != "Late" {
		t.Fatalf("lazy resolution failed: %v %v", sym, ok)
	}
	if resolved != 1 {
		t.Fatalf("resolver ran %d times, want 1", resolved)
	}
	// second lookup hits the registered symbol, not the resolver
	if _, ok := r.ResolveLazySymbol("Late"); !ok || resolved != 1 {
		t.Error("second resolution should not re-run the registration pass")
	}
}

func TestLazyResolutionCycleDetected(t *testing.T) {
	r := NewRegistry()
	decl := &ast.Identifier{Token: token.Token{Type: token.IDENT, Lexeme: "A"}, Name: "A"}
	var cycles []string
	r.SetCycleHandler(func(name string, node ast.Node) { cycles = append(cycles, name) })
	r.SetLazyResolver(func(node ast.Node) *Symbol {
		// a registration pass that needs its own name again
		r.ResolveLazySymbol("A")
		return NewTypeSymbol("A", &typesystem.StructType{Name: "A"}, node)
	})
	r.MarkPending("A", decl)
	if _, ok := r.ResolveLazySymbol("A"); !ok {
		t.Fatal("outer resolution should still succeed")
	}
	if len(cycles) != 1 || cycles[0] != "A" {
		t.Errorf("cycle handler calls = %v", cycles)
	}
}

func TestEnterChildOfRetainedScope(t *testing.T) {
	r := NewRegistry()
	member := r.Enter(nil)
	_ = r.AddSymbol(NewPlaceHolderSymbol("field", typesystem.Int, RoleProperty, FlagMember, nil))
	r.Leave()

	// simulate re-entering the member scope for a method body
	r.EnterChildOf(member, nil)
	defer r.Leave()
	if _, ok := r.Lookup("field"); !ok {
		t.Error("method scope chained off the member scope should see the field")
	}
}
