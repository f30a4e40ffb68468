package opresolve

import (
	"testing"

	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/config"
	"github.com/funvibe/swifty/internal/lexer"
	"github.com/funvibe/swifty/internal/parser"
	"github.com/funvibe/swifty/internal/pipeline"
	"github.com/funvibe/swifty/internal/prettyprinter"
)

func parseExprStatement(t *testing.T, src string) (*ast.Program, ast.Expression) {
	t.Helper()
	full := "let r = " + src
	ctx := pipeline.NewPipelineContext(full)
	ctx.FileHash = "test"
	p := parser.New(lexer.NewTokenStream(lexer.New(full, ctx.FileHash)), ctx)
	program := p.ParseProgram()
	for _, e := range ctx.Errors {
		t.Fatalf("parse error: %v", e)
	}
	binding := program.Decls[0].(*ast.ConstantDeclaration).Bindings[0]
	return program, binding.Initializer
}

func initializerOf(program *ast.Program) ast.Expression {
	return program.Decls[0].(*ast.ConstantDeclaration).Bindings[0].Initializer
}

// checkPrecedenceInvariant walks the binary tree verifying that no binary
// child binds looser than its parent (equal precedence allowed only under
// a right-associative parent).
func checkPrecedenceInvariant(t *testing.T, e ast.Expression) {
	bin, ok := e.(*ast.BinaryOperatorExpression)
	if !ok {
		return
	}
	parent := config.LookupOperator(bin.Operator, config.FixityInfix)
	for _, child := range []ast.Expression{bin.Left, bin.Right} {
		if cb, ok := child.(*ast.BinaryOperatorExpression); ok {
			ci := config.LookupOperator(cb.Operator, config.FixityInfix)
			if parent != nil && ci != nil {
				if parent.Precedence > ci.Precedence {
					t.Errorf("%q (prec %d) has child %q (prec %d)", bin.Operator, parent.Precedence, cb.Operator, ci.Precedence)
				}
				if parent.Precedence == ci.Precedence && parent.Associativity != config.AssocRight && child == bin.Right {
					// a left-associative tie must lean left
					t.Errorf("%q tie with right child %q under non-right-associative operator", bin.Operator, cb.Operator)
				}
			}
		}
		checkPrecedenceInvariant(t, child)
	}
}

func TestResortAppliesPrecedence(t *testing.T) {
	program, before := parseExprStatement(t, "1 + 2 * 3")
	// parser output is flat: ((1 + 2) * 3)
	if top, ok := before.(*ast.BinaryOperatorExpression); !ok || top.Operator != "*" {
		t.Fatalf("parser should emit a flat chain, got %v", prettyprinter.CodeString(before))
	}
	Resolve(program)
	after := initializerOf(program)
	top, ok := after.(*ast.BinaryOperatorExpression)
	if !ok || top.Operator != "+" {
		t.Fatalf("after re-sort the root should be +, got %v", prettyprinter.CodeString(after))
	}
	right, ok := top.Right.(*ast.BinaryOperatorExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("after re-sort right child should be *, got %v", prettyprinter.CodeString(after))
	}
	checkPrecedenceInvariant(t, after)
}

func TestResortPreservesTokenOrder(t *testing.T) {
	cases := []string{
		"1 + 2 * 3",
		"1 * 2 + 3 * 4",
		"a || b && c == d + e * f",
		"1 + 2 - 3 + 4",
		"x ?? y + z",
		"1 << 2 + 3",
	}
	for _, src := range cases {
		program, before := parseExprStatement(t, src)
		want := prettyprinter.CodeString(before)
		Resolve(program)
		got := prettyprinter.CodeString(initializerOf(program))
		if got != want {
			t.Errorf("%q: in-order walk changed: %q -> %q", src, want, got)
		}
		checkPrecedenceInvariant(t, initializerOf(program))
	}
}

func TestLeftAssociativeTieLeansLeft(t *testing.T) {
	program, _ := parseExprStatement(t, "1 - 2 + 3")
	Resolve(program)
	top := initializerOf(program).(*ast.BinaryOperatorExpression)
	if top.Operator != "+" {
		t.Fatalf("root = %q, want +", top.Operator)
	}
	left, ok := top.Left.(*ast.BinaryOperatorExpression)
	if !ok || left.Operator != "-" {
		t.Errorf("left-associative tie should keep the left lean: %s", prettyprinter.CodeString(top))
	}
}

func TestRightAssociativeStaysRight(t *testing.T) {
	program, _ := parseExprStatement(t, "a ?? b ?? c")
	Resolve(program)
	top := initializerOf(program).(*ast.BinaryOperatorExpression)
	if top.Operator != "??" {
		t.Fatalf("root = %q", top.Operator)
	}
	if _, ok := top.Right.(*ast.BinaryOperatorExpression); !ok {
		t.Errorf("right-associative chain should lean right: %s", prettyprinter.CodeString(top))
	}
}

func TestParenthesesAreBoundaries(t *testing.T) {
	program, _ := parseExprStatement(t, "(1 + 2) * 3")
	Resolve(program)
	top := initializerOf(program).(*ast.BinaryOperatorExpression)
	if top.Operator != "*" {
		t.Fatalf("root = %q, want *", top.Operator)
	}
	if _, ok := top.Left.(*ast.ParenthesizedExpression); !ok {
		t.Errorf("parenthesized group should stay grouped: %s", prettyprinter.CodeString(top))
	}
}

func TestResortInsideStatements(t *testing.T) {
	src := `
func f(a: Int, b: Int) -> Bool {
    if a + b * 2 == 10 { return true }
    return false
}`
	ctx := pipeline.NewPipelineContext(src)
	ctx.FileHash = "test"
	p := parser.New(lexer.NewTokenStream(lexer.New(src, ctx.FileHash)), ctx)
	program := p.ParseProgram()
	Resolve(program)
	fn := program.Decls[0].(*ast.FunctionDeclaration)
	cond := fn.Body.Statements[0].(*ast.IfStatement).Condition.(*ast.BinaryOperatorExpression)
	if cond.Operator != "==" {
		t.Fatalf("condition root = %q, want ==", cond.Operator)
	}
	checkPrecedenceInvariant(t, cond)
}
