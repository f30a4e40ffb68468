package analyzer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/funvibe/swifty/internal/analyzer"
	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/lexer"
	"github.com/funvibe/swifty/internal/opresolve"
	"github.com/funvibe/swifty/internal/parser"
	"github.com/funvibe/swifty/internal/pipeline"
)

func analyze(t *testing.T, src string) *pipeline.PipelineContext {
	t.Helper()
	ctx := pipeline.NewPipelineContext(src)
	ctx.FilePath = "test.swy"
	ctx.FileHash = "testhash"
	p := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&opresolve.Processor{},
		&analyzer.Processor{},
	)
	return p.Run(ctx)
}

func codes(ctx *pipeline.PipelineContext) []diagnostics.ErrorCode {
	out := make([]diagnostics.ErrorCode, len(ctx.Errors))
	for i, e := range ctx.Errors {
		out[i] = e.Code
	}
	return out
}

func hasCode(ctx *pipeline.PipelineContext, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	for _, e := range ctx.Errors {
		if e.Code == code {
			return e
		}
	}
	return nil
}

func expectNoErrors(t *testing.T, ctx *pipeline.PipelineContext) {
	t.Helper()
	for _, e := range ctx.Errors {
		if !e.Code.IsWarning() {
			t.Errorf("unexpected diagnostic: %v", e)
		}
	}
}

func TestAssignInNonMutatingStructMethod(t *testing.T) {
	ctx := analyze(t, `struct X { var a = 3
func f() { self.a = 2 } }`)
	diag := hasCode(ctx, diagnostics.ErrCannotAssignToInDeclaration2)
	if diag == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrCannotAssignToInDeclaration2, codes(ctx))
	}
	if len(diag.Args) < 1 || diag.Args[0] != "a" {
		t.Errorf("first argument = %v, want \"a\"", diag.Args)
	}
}

func TestAssignInMutatingStructMethod(t *testing.T) {
	ctx := analyze(t, `struct X { var a = 3
mutating func f() { self.a = 2 } }`)
	expectNoErrors(t, ctx)
}

func TestMutatingOnClassMethod(t *testing.T) {
	ctx := analyze(t, `class C { mutating func f() { } }`)
	diag := hasCode(ctx, diagnostics.ErrInvalidOnClassMethods)
	if diag == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrInvalidOnClassMethods, codes(ctx))
	}
	if len(diag.Args) != 1 || diag.Args[0] != "mutating" {
		t.Errorf("argument = %v, want [\"mutating\"]", diag.Args)
	}
}

func TestMissingReturn(t *testing.T) {
	ctx := analyze(t, `func a(f: Bool) -> Int { if f { return 3 } }`)
	diag := hasCode(ctx, diagnostics.ErrMissingReturn)
	if diag == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrMissingReturn, codes(ctx))
	}
	if len(diag.Args) != 1 || diag.Args[0] != "Int" {
		t.Errorf("argument = %v, want [\"Int\"]", diag.Args)
	}
}

func TestAllPathsReturnIsClean(t *testing.T) {
	ctx := analyze(t, `func a(f: Bool) -> Int { if f { return 3 } else { return 4 } }`)
	expectNoErrors(t, ctx)
}

func TestLetRequiresInitializer(t *testing.T) {
	ctx := analyze(t, `let a`)
	if hasCode(ctx, diagnostics.ErrLetRequiresInitializer) == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrLetRequiresInitializer, codes(ctx))
	}
}

func TestTuplePatternArityMismatch(t *testing.T) {
	ctx := analyze(t, `let (x, y): (Int, Int) = (1, 2, 3)`)
	if hasCode(ctx, diagnostics.ErrTuplePatternMustMatchTupleType) == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrTuplePatternMustMatchTupleType, codes(ctx))
	}
}

func TestAssignToSelfInEnumMethod(t *testing.T) {
	ctx := analyze(t, `enum E { case A
func f() { self = E.A } }`)
	diag := hasCode(ctx, diagnostics.ErrCannotAssignToSelfInMethod1)
	if diag == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrCannotAssignToSelfInMethod1, codes(ctx))
	}
	if len(diag.Args) != 1 || diag.Args[0] != "self" {
		t.Errorf("argument = %v, want [\"self\"]", diag.Args)
	}
}

func TestCodeAfterReturnWarns(t *testing.T) {
	ctx := analyze(t, `func f() -> Int { return 1
var b = 3
return b }`)
	var warnings []*diagnostics.DiagnosticError
	for _, e := range ctx.Errors {
		if e.Code == diagnostics.WarnCodeAfterReturnNeverExecuted {
			warnings = append(warnings, e)
		}
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d unreachable-code warnings, want 1 (%v)", len(warnings), codes(ctx))
	}
	if warnings[0].Token.Line != 2 {
		t.Errorf("warning at line %d, want 2 (the statement after return)", warnings[0].Token.Line)
	}
	if hasCode(ctx, diagnostics.ErrMissingReturn) != nil {
		t.Error("function does return on its live path")
	}
}

func TestDiagnosticDeterminism(t *testing.T) {
	src := `
struct X { var a = 3
func f() { self.a = 2 } }
func g() -> Int { if h() { return 1 } }
func h() -> Bool { return i }
let (p, q): (Int, Int) = (1, 2, 3)
`
	format := func(ctx *pipeline.PipelineContext) string {
		var b strings.Builder
		for _, e := range ctx.Errors {
			fmt.Fprintf(&b, "%s@%d:%d;", e.Code, e.Token.Line, e.Token.Column)
		}
		return b.String()
	}
	first := format(analyze(t, src))
	for i := 0; i < 3; i++ {
		if got := format(analyze(t, src)); got != first {
			t.Fatalf("run %d diverged:\n%s\nvs\n%s", i+2, got, first)
		}
	}
	if first == "" {
		t.Fatal("seed program should produce diagnostics")
	}
}

func TestUnresolvedIdentifierDoesNotCascade(t *testing.T) {
	ctx := analyze(t, `
func f() {
    let x = missing
    let y: Int = x
    let z = y + x
}`)
	var errors []*diagnostics.DiagnosticError
	for _, e := range ctx.Errors {
		if !e.Code.IsWarning() {
			errors = append(errors, e)
		}
	}
	if len(errors) != 1 || errors[0].Code != diagnostics.ErrUseOfUnresolvedIdentifier {
		t.Fatalf("one unresolved name should yield one error, got %v", codes(ctx))
	}
}

func TestTupleExplosion(t *testing.T) {
	ctx := analyze(t, `
func f() {
    let (a, _, b) = (1, true, "s")
    let c = a
    let d = b
}`)
	expectNoErrors(t, ctx)

	fn := ctx.AstRoot.Decls[0].(*ast.FunctionDeclaration)
	group := fn.Body.Statements[0].(*ast.ConstantDeclaration)
	binding := group.Bindings[0]
	// temp + two named leaves; '_' is dropped
	if len(binding.Expanded) != 3 {
		t.Fatalf("expanded bindings = %d, want 3", len(binding.Expanded))
	}
	temp := binding.Expanded[0]
	if temp.Initializer != binding.Initializer {
		t.Error("temporary should hold the original initializer")
	}
	tempName := temp.Pattern.(*ast.IdentifierPattern).Name
	if !strings.HasPrefix(tempName, "$tuple_") {
		t.Errorf("temporary name = %q", tempName)
	}

	leafA := binding.Expanded[1]
	if leafA.Pattern.(*ast.IdentifierPattern).Name != "a" {
		t.Errorf("first leaf = %q, want a", leafA.Pattern.(*ast.IdentifierPattern).Name)
	}
	access := leafA.Initializer.(*ast.MemberAccessExpression)
	if access.Member.Name != "0" {
		t.Errorf("leaf a index = %q, want 0", access.Member.Name)
	}
	if access.Base.(*ast.Identifier).Name != tempName {
		t.Error("leaf initializer should chain off the temporary")
	}

	leafB := binding.Expanded[2]
	if leafB.Pattern.(*ast.IdentifierPattern).Name != "b" {
		t.Errorf("second leaf = %q, want b", leafB.Pattern.(*ast.IdentifierPattern).Name)
	}
	if leafB.Initializer.(*ast.MemberAccessExpression).Member.Name != "2" {
		t.Errorf("leaf b index = %q, want 2", leafB.Initializer.(*ast.MemberAccessExpression).Member.Name)
	}
}

func TestNestedTupleExplosionIndices(t *testing.T) {
	ctx := analyze(t, `
func f() {
    let ((a, b), c) = ((1, 2), 3)
}`)
	expectNoErrors(t, ctx)
	fn := ctx.AstRoot.Decls[0].(*ast.FunctionDeclaration)
	binding := fn.Body.Statements[0].(*ast.ConstantDeclaration).Bindings[0]
	if len(binding.Expanded) != 4 {
		t.Fatalf("expanded = %d, want temp + 3 leaves", len(binding.Expanded))
	}
	// b sits at position (0, 1): its initializer is temp.0.1
	leafB := binding.Expanded[2]
	outer := leafB.Initializer.(*ast.MemberAccessExpression)
	if outer.Member.Name != "1" {
		t.Fatalf("outer index = %q, want 1", outer.Member.Name)
	}
	inner := outer.Base.(*ast.MemberAccessExpression)
	if inner.Member.Name != "0" {
		t.Fatalf("inner index = %q, want 0", inner.Member.Name)
	}
}

func TestNestedBindingPatternForbidden(t *testing.T) {
	ctx := analyze(t, `let (a, let b) = (1, 2)`)
	if hasCode(ctx, diagnostics.ErrNestedBindingPatternForbidden) == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrNestedBindingPatternForbidden, codes(ctx))
	}
}

func TestStaticPropertyOutsideType(t *testing.T) {
	ctx := analyze(t, `func f() { static var a = 1 }`)
	if hasCode(ctx, diagnostics.ErrClassPropertiesOnlyOnType) == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrClassPropertiesOnlyOnType, codes(ctx))
	}
}

func TestOverloadResolution(t *testing.T) {
	ctx := analyze(t, `
func pick(value: Int) -> Int { return value }
func pick(value: Bool) -> Int { return 0 }
func g() -> Int { return pick(value: true) }
`)
	expectNoErrors(t, ctx)

	ctx = analyze(t, `
func pick(value: Int) -> Int { return value }
func pick(value: Bool) -> Int { return 0 }
func g() -> Int { return pick(value: "nope") }
`)
	if hasCode(ctx, diagnostics.ErrNoOverloadMatches) == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrNoOverloadMatches, codes(ctx))
	}
}

func TestGenericFunctionInference(t *testing.T) {
	ctx := analyze(t, `
func first<T>(items: [T]) -> T { return items[0] }
func g() {
    let n: Int = first(items: [1, 2, 3])
}`)
	expectNoErrors(t, ctx)

	ctx = analyze(t, `
func first<T>(items: [T]) -> T { return items[0] }
func g() {
    let s: String = first(items: [1, 2, 3])
}`)
	if hasCode(ctx, diagnostics.ErrCannotConvertExpressionType2) == nil {
		t.Fatalf("pinning the generic return against a wrong context should fail, got %v", codes(ctx))
	}
}

func TestGenericClassMemberProjection(t *testing.T) {
	ctx := analyze(t, `
class Box<T> {
    var value: T
    init(value: T) { }
}
func g(box: Box<Int>) -> Int { return box.value }
func bad(box: Box<Int>) -> String { return box.value }
`)
	var converts []*diagnostics.DiagnosticError
	for _, e := range ctx.Errors {
		if e.Code == diagnostics.ErrCannotConvertExpressionType2 {
			converts = append(converts, e)
		}
	}
	if len(converts) != 1 {
		t.Fatalf("exactly the String projection should fail, got %v", codes(ctx))
	}
}

func TestForInRequiresSequence(t *testing.T) {
	ctx := analyze(t, `
func f() {
    for x in 3 { }
}`)
	if hasCode(ctx, diagnostics.ErrForInRequiresSequence) == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrForInRequiresSequence, codes(ctx))
	}

	ctx = analyze(t, `
func g() {
    for x in [1, 2, 3] { }
    for i in 0 ..< 10 { }
}`)
	expectNoErrors(t, ctx)
}

func TestConditionMustBeBool(t *testing.T) {
	ctx := analyze(t, `func f() { if 1 { } }`)
	if hasCode(ctx, diagnostics.ErrConditionNotBool) == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrConditionNotBool, codes(ctx))
	}
}

func TestSwitchExhaustiveness(t *testing.T) {
	ctx := analyze(t, `
enum Color { case red, green, blue }
func f(c: Color) {
    switch c {
    case .red:
        return
    case .green:
        return
    }
}`)
	if hasCode(ctx, diagnostics.ErrSwitchNotExhaustive) == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrSwitchNotExhaustive, codes(ctx))
	}

	ctx = analyze(t, `
enum Color { case red, green, blue }
func f(c: Color) {
    switch c {
    case .red:
        return
    case .green, .blue:
        return
    }
}`)
	expectNoErrors(t, ctx)
}

func TestForcedUnwrapTyping(t *testing.T) {
	ctx := analyze(t, `
func f(x: Int?) -> Int { return x! }
func bad(y: Int) -> Int { return y! }
`)
	diag := hasCode(ctx, diagnostics.ErrCannotForceUnwrapNonOptional)
	if diag == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrCannotForceUnwrapNonOptional, codes(ctx))
	}
}

func TestNilNeedsOptionalContext(t *testing.T) {
	ctx := analyze(t, `
func f() {
    let x: Int? = nil
    let y: Int = x ?? 0
}`)
	expectNoErrors(t, ctx)
}

func TestStaticMethodMutatingConflict(t *testing.T) {
	ctx := analyze(t, `struct S { static mutating func f() { } }`)
	if hasCode(ctx, diagnostics.ErrStaticMethodCannotBeMutating) == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrStaticMethodCannotBeMutating, codes(ctx))
	}
}

func TestDefinitionConflict(t *testing.T) {
	ctx := analyze(t, `
struct S { }
struct S { }
`)
	if hasCode(ctx, diagnostics.ErrDefinitionConflict) == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrDefinitionConflict, codes(ctx))
	}
}

func TestForwardReferenceResolves(t *testing.T) {
	ctx := analyze(t, `
func area(s: Square) -> Int { return s.side }
struct Square { var side = 0 }
`)
	expectNoErrors(t, ctx)
}

func TestImmutableAssignment(t *testing.T) {
	ctx := analyze(t, `
func f() {
    let x = 1
    x = 2
}`)
	diag := hasCode(ctx, diagnostics.ErrCannotAssignImmutable)
	if diag == nil {
		t.Fatalf("expected %s, got %v", diagnostics.ErrCannotAssignImmutable, codes(ctx))
	}
}

func TestEveryTypedExpressionLandsInTypeMap(t *testing.T) {
	ctx := analyze(t, `
func add(a: Int, b: Int) -> Int { return a + b }
func g() -> Int { return add(a: 1, b: 2) }
`)
	expectNoErrors(t, ctx)
	fn := ctx.AstRoot.Decls[1].(*ast.FunctionDeclaration)
	ret := fn.Body.Statements[0].(*ast.ReturnStatement)
	call := ret.Value.(*ast.FunctionCallExpression)
	got, ok := ctx.TypeMap[ast.Node(call)]
	if !ok {
		t.Fatal("call expression missing from the type map")
	}
	if got.String() != "Int" {
		t.Errorf("call typed as %v, want Int", got)
	}
}
