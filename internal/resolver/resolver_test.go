package resolver

import (
	"testing"

	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/symbols"
	"github.com/funvibe/swifty/internal/token"
	"github.com/funvibe/swifty/internal/typesystem"
)

func newTestResolver() (*Resolver, *symbols.Registry, *typesystem.Interner) {
	registry := symbols.NewRegistry()
	interner := typesystem.NewInterner()
	return New(registry, interner, "test"), registry, interner
}

func ident(name string, args ...ast.TypeExpr) *ast.TypeIdentifierExpr {
	tok := token.Token{Type: token.IDENT, Lexeme: name, Line: 1, Column: 1}
	return &ast.TypeIdentifierExpr{
		Token:       tok,
		Name:        &ast.Identifier{Token: tok, Name: name},
		GenericArgs: args,
	}
}

func TestResolvePrimitive(t *testing.T) {
	r, _, _ := newTestResolver()
	var diags []*diagnostics.DiagnosticError
	got := r.Resolve(ident("Int"), &diags)
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", diags)
	}
	if !got.Equal(typesystem.Int) {
		t.Errorf("resolved %v, want Int", got)
	}
}

func TestResolveMemoizesPerNode(t *testing.T) {
	r, _, _ := newTestResolver()
	var diags []*diagnostics.DiagnosticError
	node := ident("Int")
	first := r.Resolve(node, &diags)
	second := r.Resolve(node, &diags)
	if first != second {
		t.Error("repeated resolution of the same node should return the identical value")
	}
}

func TestArraySugarCanonicalIdentity(t *testing.T) {
	r, _, _ := newTestResolver()
	var diags []*diagnostics.DiagnosticError
	// [Int] written twice as two distinct syntactic nodes
	a := r.Resolve(&ast.ArrayTypeExpr{ElementType: ident("Int")}, &diags)
	b := r.Resolve(&ast.ArrayTypeExpr{ElementType: ident("Int")}, &diags)
	if a != b {
		t.Errorf("two spellings of [Int] should share one canonical type: %p vs %p", a, b)
	}
	// and the sugar matches the explicit generic spelling
	c := r.Resolve(ident("Array", ident("Int")), &diags)
	if a != c {
		t.Error("[Int] and Array<Int> should resolve to the same identity")
	}
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", diags)
	}
}

func TestOptionalSugar(t *testing.T) {
	r, _, _ := newTestResolver()
	var diags []*diagnostics.DiagnosticError
	opt := r.Resolve(&ast.OptionalTypeExpr{Wrapped: ident("Int")}, &diags)
	wrapped, ok := typesystem.IsOptional(opt)
	if !ok {
		t.Fatalf("T? should resolve to Optional, got %v", opt)
	}
	if !wrapped.Equal(typesystem.Int) {
		t.Errorf("wrapped = %v, want Int", wrapped)
	}
}

func TestGenericArityDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		expr ast.TypeExpr
		code diagnostics.ErrorCode
	}{
		{"missing args", ident("Array"), diagnostics.ErrGenericTypeArgumentRequired},
		{"args on non-generic", ident("Int", ident("Bool")), diagnostics.ErrCannotSpecializeNonGenericType},
		{"too many", ident("Array", ident("Int"), ident("Bool")), diagnostics.ErrTypeArgumentsWithTooMany},
		{"insufficient", ident("Dictionary", ident("Int")), diagnostics.ErrTypeArgumentsWithInsufficient},
		{"undeclared", ident("Nope"), diagnostics.ErrUseOfUndeclaredType},
	}
	for _, tt := range tests {
		r, _, _ := newTestResolver()
		var diags []*diagnostics.DiagnosticError
		r.Resolve(tt.expr, &diags)
		if len(diags) == 0 {
			t.Errorf("%s: expected %s, got none", tt.name, tt.code)
			continue
		}
		if diags[0].Code != tt.code {
			t.Errorf("%s: got %s, want %s", tt.name, diags[0].Code, tt.code)
		}
	}
}

func TestProtocolComposition(t *testing.T) {
	r, _, _ := newTestResolver()
	var diags []*diagnostics.DiagnosticError
	comp := r.Resolve(&ast.ProtocolCompositionTypeExpr{
		Protocols: []ast.TypeExpr{ident("Equatable"), ident("Hashable")},
	}, &diags)
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", diags)
	}
	if comp.Category() != typesystem.CategoryProtocolComposition {
		t.Fatalf("category = %v", comp.Category())
	}
}

func TestProtocolCompositionRejectsNonProtocol(t *testing.T) {
	r, _, _ := newTestResolver()
	var diags []*diagnostics.DiagnosticError
	r.Resolve(&ast.ProtocolCompositionTypeExpr{
		Protocols: []ast.TypeExpr{ident("Equatable"), ident("Int")},
	}, &diags)
	if len(diags) != 1 || diags[0].Code != diagnostics.ErrNonProtocolTypeInComposition {
		t.Fatalf("diagnostics = %v", diags)
	}
}

func TestProtocolCompositionDeduplicatesRepeats(t *testing.T) {
	r, _, _ := newTestResolver()
	var diags []*diagnostics.DiagnosticError
	comp := r.Resolve(&ast.ProtocolCompositionTypeExpr{
		Protocols: []ast.TypeExpr{ident("Equatable"), ident("Equatable")},
	}, &diags)
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", diags)
	}
	if comp.Category() != typesystem.CategoryProtocol {
		t.Errorf("A & A should collapse to the single protocol, got %v", comp.Category())
	}
}

func TestFunctionTypeResolution(t *testing.T) {
	r, _, _ := newTestResolver()
	var diags []*diagnostics.DiagnosticError
	got := r.Resolve(&ast.FunctionTypeExpr{
		Params:     []ast.TypeExpr{ident("Int"), ident("Bool")},
		ReturnType: ident("String"),
	}, &diags)
	ft, ok := got.(typesystem.FunctionType)
	if !ok || len(ft.Params) != 2 || !ft.ReturnType.Equal(typesystem.String) {
		t.Fatalf("resolved %v", got)
	}
}

func TestSelfResolution(t *testing.T) {
	r, _, _ := newTestResolver()
	var diags []*diagnostics.DiagnosticError
	owner := &typesystem.StructType{Name: "Point"}
	r.PushSelf(owner)
	got := r.Resolve(ident("Self"), &diags)
	r.PopSelf()
	if got != typesystem.Type(owner) {
		t.Errorf("Self inside Point = %v", got)
	}
	// outside any nominal body Self stays symbolic
	var diags2 []*diagnostics.DiagnosticError
	got2 := r.Resolve(ident("Self"), &diags2)
	if _, ok := got2.(typesystem.SelfType); !ok {
		t.Errorf("free-standing Self = %T", got2)
	}
}

func TestAliasCollapse(t *testing.T) {
	r, registry, _ := newTestResolver()
	alias := &typesystem.AliasType{Name: "Distance", Target: typesystem.Int}
	if err := registry.AddSymbol(symbols.NewTypeSymbol("Distance", alias, nil)); err != nil {
		t.Fatal(err)
	}
	var diags []*diagnostics.DiagnosticError
	got := r.Resolve(ident("Distance"), &diags)
	if !got.Equal(typesystem.Int) {
		t.Errorf("alias should collapse to Int, got %v", got)
	}
}

func TestSpecializationIdempotence(t *testing.T) {
	interner := typesystem.NewInterner()
	box := &typesystem.ClassType{
		Name:       "Box",
		TypeParams: []typesystem.GenericParameterType{{Name: "T", OwnerName: "Box"}},
	}
	once := Specialize(interner, box, []typesystem.Type{typesystem.Int})
	twice := Specialize(interner, once, []typesystem.Type{typesystem.Int})
	if once != twice {
		t.Errorf("specialize(specialize(T, A), A) should be identical to specialize(T, A)")
	}
}

func TestSpecializationCacheIdentity(t *testing.T) {
	interner := typesystem.NewInterner()
	box := &typesystem.ClassType{
		Name:       "Box",
		TypeParams: []typesystem.GenericParameterType{{Name: "T", OwnerName: "Box"}},
	}
	a := Specialize(interner, box, []typesystem.Type{typesystem.Int})
	b := Specialize(interner, box, []typesystem.Type{typesystem.Int})
	if a != b {
		t.Error("same template and arguments must share one cached specialization")
	}
	c := Specialize(interner, box, []typesystem.Type{typesystem.Bool})
	if a == c {
		t.Error("distinct arguments must not share a specialization")
	}
}

func TestCanSpecializeToBindsParameters(t *testing.T) {
	param := typesystem.GenericParameterType{Name: "T", OwnerName: "f"}
	bindings := map[string]typesystem.Type{}
	template := typesystem.FunctionType{
		Params:     []typesystem.Type{param, param},
		ReturnType: param,
	}
	concrete := typesystem.FunctionType{
		Params:     []typesystem.Type{typesystem.Int, typesystem.Int},
		ReturnType: typesystem.Int,
	}
	if !CanSpecializeTo(template, concrete, bindings) {
		t.Fatal("unification should succeed")
	}
	if !bindings["T"].Equal(typesystem.Int) {
		t.Errorf("T bound to %v, want Int", bindings["T"])
	}
}

func TestCanSpecializeToRejectsConflicts(t *testing.T) {
	param := typesystem.GenericParameterType{Name: "T", OwnerName: "f"}
	bindings := map[string]typesystem.Type{}
	template := typesystem.TupleType{Elements: []typesystem.Type{param, param}}
	concrete := typesystem.TupleType{Elements: []typesystem.Type{typesystem.Int, typesystem.Bool}}
	if CanSpecializeTo(template, concrete, bindings) {
		t.Error("conflicting bindings for T should fail unification")
	}
}
