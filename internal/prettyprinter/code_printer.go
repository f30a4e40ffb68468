// Package prettyprinter renders the syntax tree back out: CodeString
// prints source-equivalent text (used by tests to compare token order
// across tree transforms), TreeString dumps an indented, type-annotated
// node tree for the CLI's -dump flag.
package prettyprinter

import (
	"fmt"
	"strings"

	"github.com/funvibe/swifty/internal/ast"
)

// CodeString renders an expression as source text with explicit
// parentheses only where the input had them — binary trees print their
// operands in order, so two trees over the same operands and operators
// print identically regardless of shape.
func CodeString(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.IntegerLiteral:
		return fmt.Sprintf("%d", n.Value)
	case *ast.BigIntLiteral:
		return n.Value.String()
	case *ast.FloatLiteral:
		return fmt.Sprintf("%g", n.Value)
	case *ast.StringLiteral:
		return fmt.Sprintf("%q", n.Value)
	case *ast.BooleanLiteral:
		return fmt.Sprintf("%t", n.Value)
	case *ast.NilLiteral:
		return "nil"
	case *ast.SelfExpression:
		return "self"
	case *ast.CompileConstantExpression:
		return "#" + n.Name
	case *ast.StringInterpolationExpression:
		var b strings.Builder
		b.WriteByte('"')
		for _, part := range n.Parts {
			if lit, ok := part.(*ast.StringLiteral); ok {
				b.WriteString(lit.Value)
			} else {
				b.WriteString("\\(")
				b.WriteString(CodeString(part))
				b.WriteByte(')')
			}
		}
		b.WriteByte('"')
		return b.String()
	case *ast.ArrayLiteralExpression:
		return "[" + joinExprs(n.Elements, ", ") + "]"
	case *ast.DictionaryLiteralExpression:
		if len(n.Pairs) == 0 {
			return "[:]"
		}
		parts := make([]string, len(n.Pairs))
		for i, pair := range n.Pairs {
			parts[i] = CodeString(pair.Key) + ": " + CodeString(pair.Value)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ast.TupleExpression:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			if i < len(n.Labels) && n.Labels[i] != "" {
				parts[i] = n.Labels[i] + ": " + CodeString(el)
			} else {
				parts[i] = CodeString(el)
			}
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *ast.ParenthesizedExpression:
		return "(" + CodeString(n.Inner) + ")"
	case *ast.MemberAccessExpression:
		return CodeString(n.Base) + "." + n.Member.Name
	case *ast.SubscriptAccessExpression:
		return CodeString(n.Base) + "[" + joinExprs(n.Arguments, ", ") + "]"
	case *ast.FunctionCallExpression:
		var b strings.Builder
		b.WriteString(CodeString(n.Callee))
		b.WriteByte('(')
		for i, arg := range n.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			if arg.Label != nil {
				b.WriteString(arg.Label.Name)
				b.WriteString(": ")
			}
			b.WriteString(CodeString(arg.Value))
		}
		b.WriteByte(')')
		if n.TrailingClosure != nil {
			b.WriteString(" { ... }")
		}
		return b.String()
	case *ast.ClosureExpression:
		return "{ ... }"
	case *ast.InitializerReferenceExpression:
		return CodeString(n.Base) + ".init"
	case *ast.DynamicTypeExpression:
		return "type(of: " + CodeString(n.Base) + ")"
	case *ast.ForcedValueExpression:
		return CodeString(n.Base) + "!"
	case *ast.OptionalChainingExpression:
		return CodeString(n.Base) + "?"
	case *ast.BinaryOperatorExpression:
		return CodeString(n.Left) + " " + n.Operator + " " + CodeString(n.Right)
	case *ast.UnaryOperatorExpression:
		if n.IsPrefix {
			return n.Operator + CodeString(n.Operand)
		}
		return CodeString(n.Operand) + n.Operator
	case *ast.ConditionalOperatorExpression:
		return CodeString(n.Condition) + " ? " + CodeString(n.Then) + " : " + CodeString(n.Else)
	case nil:
		return "<nil>"
	default:
		return "<" + n.TokenLiteral() + ">"
	}
}

func joinExprs(exprs []ast.Expression, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = CodeString(e)
	}
	return strings.Join(parts, sep)
}
