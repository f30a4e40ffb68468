package parser

import (
	"testing"

	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/lexer"
	"github.com/funvibe/swifty/internal/pipeline"
)

func parseSource(t *testing.T, src string) (*ast.Program, *pipeline.PipelineContext) {
	t.Helper()
	ctx := pipeline.NewPipelineContext(src)
	ctx.FileHash = "testhash"
	p := New(lexer.NewTokenStream(lexer.New(src, ctx.FileHash)), ctx)
	return p.ParseProgram(), ctx
}

func parseClean(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, ctx := parseSource(t, src)
	for _, e := range ctx.Errors {
		t.Errorf("unexpected parse error: %v", e)
	}
	return program
}

func TestStructDeclaration(t *testing.T) {
	program := parseClean(t, `
struct Point {
    var x: Int = 0
    var y: Int = 0
    func describe() -> String { return "point" }
}`)
	if len(program.Decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(program.Decls))
	}
	st, ok := program.Decls[0].(*ast.StructDeclaration)
	if !ok {
		t.Fatalf("got %T, want StructDeclaration", program.Decls[0])
	}
	if st.Name.Name != "Point" || len(st.Members) != 3 {
		t.Errorf("Point has %d members, want 3", len(st.Members))
	}
}

func TestClassWithInheritance(t *testing.T) {
	program := parseClean(t, `class Circle: Shape, Drawable { }`)
	cls := program.Decls[0].(*ast.ClassDeclaration)
	if cls.SuperClass == nil {
		t.Fatal("superclass missing")
	}
	if len(cls.Protocols) != 1 {
		t.Errorf("got %d protocols, want 1", len(cls.Protocols))
	}
}

func TestGenericClassAndNestedGenericType(t *testing.T) {
	program := parseClean(t, `
class Box<T: Equatable> {
    var items: Dictionary<String, Array<Int>> = [:]
}`)
	cls := program.Decls[0].(*ast.ClassDeclaration)
	if len(cls.TypeParams) != 1 || cls.TypeParams[0].Name != "T" {
		t.Fatalf("type params = %v", cls.TypeParams)
	}
	if len(cls.Constraints) != 1 {
		t.Fatalf("constraints = %d, want 1", len(cls.Constraints))
	}
	variable := cls.Members[0].(*ast.VariableDeclaration)
	annot := variable.Bindings[0].TypeAnnotation.(*ast.TypeIdentifierExpr)
	if annot.Name.Name != "Dictionary" || len(annot.GenericArgs) != 2 {
		t.Fatalf("annotation = %v", annot)
	}
	inner, ok := annot.GenericArgs[1].(*ast.TypeIdentifierExpr)
	if !ok || inner.Name.Name != "Array" || len(inner.GenericArgs) != 1 {
		t.Errorf("nested generic argument not split from '>>': %#v", annot.GenericArgs[1])
	}
}

func TestEnumDeclaration(t *testing.T) {
	program := parseClean(t, `
enum Shape {
    case circle(Float)
    case square(Float), point
    func area() -> Float { return 0.0 }
}`)
	en := program.Decls[0].(*ast.EnumDeclaration)
	if len(en.Cases) != 3 {
		t.Fatalf("got %d cases, want 3", len(en.Cases))
	}
	if len(en.Cases[0].AssociatedTypes) != 1 {
		t.Errorf("circle payload count = %d", len(en.Cases[0].AssociatedTypes))
	}
	if len(en.Members) != 1 {
		t.Errorf("members = %d, want 1", len(en.Members))
	}
}

func TestProtocolRequirements(t *testing.T) {
	program := parseClean(t, `
protocol Drawable {
    func draw() -> String
    var name: String { get set }
}`)
	proto := program.Decls[0].(*ast.ProtocolDeclaration)
	if len(proto.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(proto.Members))
	}
	fn := proto.Members[0].(*ast.FunctionDeclaration)
	if fn.Body != nil {
		t.Error("protocol requirement should have no body")
	}
	prop, ok := proto.Members[1].(*ast.ComputedPropertyDeclaration)
	if !ok {
		t.Fatalf("got %T, want ComputedPropertyDeclaration", proto.Members[1])
	}
	if !prop.HasGetter || !prop.HasSetter {
		t.Error("get/set requirement flags not set")
	}
}

func TestBinaryChainIsFlatLeftLeaning(t *testing.T) {
	program := parseClean(t, `let r = 1 + 2 * 3 - 4`)
	binding := program.Decls[0].(*ast.ConstantDeclaration).Bindings[0]
	// ((1 + 2) * 3) - 4: strictly left-leaning, no precedence applied.
	outer, ok := binding.Initializer.(*ast.BinaryOperatorExpression)
	if !ok || outer.Operator != "-" {
		t.Fatalf("outermost operator = %v", binding.Initializer)
	}
	mid, ok := outer.Left.(*ast.BinaryOperatorExpression)
	if !ok || mid.Operator != "*" {
		t.Fatalf("middle operator should be *, got %v", outer.Left)
	}
	inner, ok := mid.Left.(*ast.BinaryOperatorExpression)
	if !ok || inner.Operator != "+" {
		t.Fatalf("innermost operator should be +, got %v", mid.Left)
	}
}

func TestTupleBindingAndAnnotation(t *testing.T) {
	program := parseClean(t, `let (x, y): (Int, Int) = (1, 2)`)
	binding := program.Decls[0].(*ast.ConstantDeclaration).Bindings[0]
	pat, ok := binding.Pattern.(*ast.TuplePattern)
	if !ok || len(pat.Elements) != 2 {
		t.Fatalf("pattern = %#v", binding.Pattern)
	}
	if _, ok := binding.TypeAnnotation.(*ast.TupleTypeExpr); !ok {
		t.Fatalf("annotation = %#v", binding.TypeAnnotation)
	}
	if _, ok := binding.Initializer.(*ast.TupleExpression); !ok {
		t.Fatalf("initializer = %#v", binding.Initializer)
	}
}

func TestFunctionSignatureForms(t *testing.T) {
	program := parseClean(t, `
func move(from start: Int, _ end: Int, by delta: Int = 1) -> Bool { return true }
`)
	fn := program.Decls[0].(*ast.FunctionDeclaration)
	params := fn.Params.Params
	if len(params) != 3 {
		t.Fatalf("params = %d, want 3", len(params))
	}
	if params[0].ExternalName == nil || params[0].ExternalName.Name != "from" || params[0].Name.Name != "start" {
		t.Errorf("param 0 labels wrong: %+v", params[0])
	}
	if params[1].ExternalName == nil || params[1].ExternalName.Name != "_" {
		t.Errorf("param 1 should have wildcard external name")
	}
	if params[2].DefaultValue == nil {
		t.Errorf("param 2 default missing")
	}
}

func TestInoutParameter(t *testing.T) {
	program := parseClean(t, `func bump(value: inout Int) { }`)
	fn := program.Decls[0].(*ast.FunctionDeclaration)
	if !fn.Params.Params[0].IsInout {
		t.Error("inout flag not set")
	}
}

func TestOperatorFunctionDeclaration(t *testing.T) {
	program := parseClean(t, `func + (lhs: Vec, rhs: Vec) -> Vec { return lhs }`)
	fn := program.Decls[0].(*ast.FunctionDeclaration)
	if fn.Name != nil || fn.Operator != "+" {
		t.Fatalf("operator func parsed as %+v", fn)
	}
}

func TestSwitchStatement(t *testing.T) {
	program := parseClean(t, `
func classify(s: Shape) -> Int {
    switch s {
    case .circle(let radius):
        return 1
    case .square(let side), .point:
        return 2
    default:
        return 0
    }
}`)
	fn := program.Decls[0].(*ast.FunctionDeclaration)
	sw := fn.Body.Statements[0].(*ast.SwitchStatement)
	if len(sw.Cases) != 2 || sw.Default == nil {
		t.Fatalf("cases = %d, default = %v", len(sw.Cases), sw.Default)
	}
	first := sw.Cases[0].Patterns[0].(*ast.EnumCasePattern)
	if first.CaseName.Name != "circle" || len(first.Associated) != 1 {
		t.Errorf("first case pattern = %+v", first)
	}
	if _, ok := first.Associated[0].(*ast.LetPattern); !ok {
		t.Errorf("associated binding should be a LetPattern, got %T", first.Associated[0])
	}
	if len(sw.Cases[1].Patterns) != 2 {
		t.Errorf("second case should carry two patterns")
	}
}

func TestForInAndClassicFor(t *testing.T) {
	program := parseClean(t, `
func loop(items: [Int]) {
    for item in items { }
    for var i = 0; i < 10; i += 1 { }
}`)
	fn := program.Decls[0].(*ast.FunctionDeclaration)
	if _, ok := fn.Body.Statements[0].(*ast.ForInStatement); !ok {
		t.Errorf("first loop = %T, want ForInStatement", fn.Body.Statements[0])
	}
	classic, ok := fn.Body.Statements[1].(*ast.ForStatement)
	if !ok {
		t.Fatalf("second loop = %T, want ForStatement", fn.Body.Statements[1])
	}
	if classic.Init == nil || classic.Condition == nil || classic.Step == nil {
		t.Error("classic for clauses missing")
	}
}

func TestClosureForms(t *testing.T) {
	program := parseClean(t, `
let f = { (a: Int, b: Int) -> Int in return a + b }
let g = items.map { x in x }
`)
	fBinding := program.Decls[0].(*ast.ConstantDeclaration).Bindings[0]
	closure, ok := fBinding.Initializer.(*ast.ClosureExpression)
	if !ok || len(closure.Params.Params) != 2 || closure.ReturnType == nil {
		t.Fatalf("typed closure = %#v", fBinding.Initializer)
	}
	gBinding := program.Decls[1].(*ast.ConstantDeclaration).Bindings[0]
	call, ok := gBinding.Initializer.(*ast.FunctionCallExpression)
	if !ok || call.TrailingClosure == nil {
		t.Fatalf("trailing closure call = %#v", gBinding.Initializer)
	}
}

func TestOptionalSugarAndPostfix(t *testing.T) {
	program := parseClean(t, `
func find(name: String) -> Int? { return nil }
let n = find(name: "x")!
`)
	fn := program.Decls[0].(*ast.FunctionDeclaration)
	if _, ok := fn.ReturnType.(*ast.OptionalTypeExpr); !ok {
		t.Errorf("return type = %T, want OptionalTypeExpr", fn.ReturnType)
	}
	binding := program.Decls[1].(*ast.ConstantDeclaration).Bindings[0]
	forced, ok := binding.Initializer.(*ast.ForcedValueExpression)
	if !ok {
		t.Fatalf("initializer = %T, want ForcedValueExpression", binding.Initializer)
	}
	call := forced.Base.(*ast.FunctionCallExpression)
	if call.Arguments[0].Label == nil || call.Arguments[0].Label.Name != "name" {
		t.Error("argument label missing")
	}
}

func TestStringInterpolation(t *testing.T) {
	program := parseClean(t, `let s = "sum: \(a + b)!"`)
	binding := program.Decls[0].(*ast.ConstantDeclaration).Bindings[0]
	interp, ok := binding.Initializer.(*ast.StringInterpolationExpression)
	if !ok {
		t.Fatalf("initializer = %T", binding.Initializer)
	}
	if len(interp.Parts) != 3 {
		t.Fatalf("parts = %d, want 3 (literal, expression, literal)", len(interp.Parts))
	}
	if _, ok := interp.Parts[1].(*ast.BinaryOperatorExpression); !ok {
		t.Errorf("embedded expression = %T", interp.Parts[1])
	}
}

func TestTernaryConditional(t *testing.T) {
	program := parseClean(t, `let m = a > b ? a : b`)
	binding := program.Decls[0].(*ast.ConstantDeclaration).Bindings[0]
	cond, ok := binding.Initializer.(*ast.ConditionalOperatorExpression)
	if !ok {
		t.Fatalf("initializer = %T, want ConditionalOperatorExpression", binding.Initializer)
	}
	if _, ok := cond.Condition.(*ast.BinaryOperatorExpression); !ok {
		t.Errorf("condition = %T", cond.Condition)
	}
}

func TestParseErrorRecovery(t *testing.T) {
	program, ctx := parseSource(t, `
struct Good { var a: Int = 1 }
struct { }
struct AlsoGood { var b: Int = 2 }
`)
	if len(ctx.Errors) == 0 {
		t.Fatal("expected a parse error for the nameless struct")
	}
	var names []string
	for _, d := range program.Decls {
		if st, ok := d.(*ast.StructDeclaration); ok {
			names = append(names, st.Name.Name)
		}
	}
	if len(names) != 2 || names[0] != "Good" || names[1] != "AlsoGood" {
		t.Errorf("recovered declarations = %v", names)
	}
}

func TestExtensionAndSubscript(t *testing.T) {
	program := parseClean(t, `
extension Stack {
    subscript(index: Int) -> Int {
        get { return index }
        set(value) { }
    }
}`)
	ext := program.Decls[0].(*ast.ExtensionDeclaration)
	sub := ext.Members[0].(*ast.SubscriptDeclaration)
	if sub.Getter == nil || sub.Setter == nil {
		t.Error("subscript accessors missing")
	}
	if sub.SetterName == nil || sub.SetterName.Name != "value" {
		t.Errorf("setter name = %v", sub.SetterName)
	}
}

func TestImportDeclarations(t *testing.T) {
	program := parseClean(t, `
import Geometry
import Graphics.Canvas
struct S { }
`)
	if len(program.Imports) != 2 {
		t.Fatalf("imports = %d, want 2", len(program.Imports))
	}
	if len(program.Imports[1].Path) != 2 {
		t.Errorf("nested import path = %d segments", len(program.Imports[1].Path))
	}
}
