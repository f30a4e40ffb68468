package prettyprinter

import (
	"strings"
	"testing"

	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/token"
	"github.com/funvibe/swifty/internal/typesystem"
)

func tok(lexeme string) token.Token {
	return token.Token{Type: token.IDENT, Lexeme: lexeme, Line: 1, Column: 1}
}

func TestCodeStringBinaryInOrder(t *testing.T) {
	// 1 + 2 * 3 shaped two ways must print identically
	one := &ast.IntegerLiteral{Token: tok("1"), Value: 1}
	two := &ast.IntegerLiteral{Token: tok("2"), Value: 2}
	three := &ast.IntegerLiteral{Token: tok("3"), Value: 3}

	leftLean := &ast.BinaryOperatorExpression{
		Token:    tok("*"),
		Left:     &ast.BinaryOperatorExpression{Token: tok("+"), Left: one, Operator: "+", Right: two},
		Operator: "*",
		Right:    three,
	}
	rightLean := &ast.BinaryOperatorExpression{
		Token:    tok("+"),
		Left:     one,
		Operator: "+",
		Right:    &ast.BinaryOperatorExpression{Token: tok("*"), Left: two, Operator: "*", Right: three},
	}
	if CodeString(leftLean) != "1 + 2 * 3" || CodeString(rightLean) != "1 + 2 * 3" {
		t.Errorf("in-order prints differ: %q vs %q", CodeString(leftLean), CodeString(rightLean))
	}
}

func TestCodeStringPostfixForms(t *testing.T) {
	base := &ast.Identifier{Token: tok("value"), Name: "value"}
	forced := &ast.ForcedValueExpression{Token: tok("!"), Base: base}
	if CodeString(forced) != "value!" {
		t.Errorf("forced value = %q", CodeString(forced))
	}
	access := &ast.MemberAccessExpression{Token: tok("."), Base: base, Member: &ast.Identifier{Token: tok("count"), Name: "count"}}
	if CodeString(access) != "value.count" {
		t.Errorf("member access = %q", CodeString(access))
	}
}

func TestTreeStringAnnotatesTypes(t *testing.T) {
	ret := &ast.ReturnStatement{Token: tok("return"), Value: &ast.IntegerLiteral{Token: tok("1"), Value: 1}}
	fn := &ast.FunctionDeclaration{
		Token: tok("func"),
		Name:  &ast.Identifier{Token: tok("f"), Name: "f"},
		Body:  &ast.CodeBlock{Token: tok("{"), Statements: []ast.Statement{ret}},
	}
	program := &ast.Program{Token: tok(""), Decls: []ast.Declaration{fn}}
	types := map[ast.Node]typesystem.Type{fn: typesystem.FunctionType{ReturnType: typesystem.Int}}

	out := TreeString(program, types)
	if !strings.Contains(out, "Function f") {
		t.Errorf("dump missing function header:\n%s", out)
	}
	if !strings.Contains(out, "() -> Int") {
		t.Errorf("dump missing type annotation:\n%s", out)
	}
	if !strings.Contains(out, "Return 1") {
		t.Errorf("dump missing return line:\n%s", out)
	}
}
