package prettyprinter

import (
	"fmt"
	"strings"

	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/typesystem"
)

// TreePrinter renders an indented node dump, annotating every node that
// was typed by the analyzer with its resolved type.
type TreePrinter struct {
	types map[ast.Node]typesystem.Type
	b     strings.Builder
	depth int
}

func NewTreePrinter(types map[ast.Node]typesystem.Type) *TreePrinter {
	return &TreePrinter{types: types}
}

// TreeString dumps a whole program.
func TreeString(program *ast.Program, types map[ast.Node]typesystem.Type) string {
	tp := NewTreePrinter(types)
	tp.line(program, "Program")
	tp.depth++
	for _, imp := range program.Imports {
		tp.printNode(imp)
	}
	for _, decl := range program.Decls {
		tp.printNode(decl)
	}
	tp.depth--
	return tp.b.String()
}

func (tp *TreePrinter) line(n ast.Node, format string, args ...interface{}) {
	tp.b.WriteString(strings.Repeat("  ", tp.depth))
	fmt.Fprintf(&tp.b, format, args...)
	if n != nil {
		if t, ok := tp.types[n]; ok && t != nil {
			fmt.Fprintf(&tp.b, " : %s", t)
		}
		info := n.Info()
		fmt.Fprintf(&tp.b, "  @%d:%d", info.Line, info.Column)
	}
	tp.b.WriteByte('\n')
}

func (tp *TreePrinter) nested(fn func()) {
	tp.depth++
	fn()
	tp.depth--
}

func (tp *TreePrinter) printNode(n ast.Node) {
	switch node := n.(type) {
	case nil:
	case *ast.ImportDeclaration:
		names := make([]string, len(node.Path))
		for i, id := range node.Path {
			names[i] = id.Name
		}
		tp.line(node, "Import %s", strings.Join(names, "."))
	case *ast.ClassDeclaration:
		tp.line(node, "Class %s", node.Name.Name)
		tp.nested(func() { tp.printDecls(node.Members) })
	case *ast.StructDeclaration:
		tp.line(node, "Struct %s", node.Name.Name)
		tp.nested(func() { tp.printDecls(node.Members) })
	case *ast.EnumDeclaration:
		tp.line(node, "Enum %s", node.Name.Name)
		tp.nested(func() {
			for _, c := range node.Cases {
				tp.line(c, "Case %s", c.Name.Name)
			}
			tp.printDecls(node.Members)
		})
	case *ast.ProtocolDeclaration:
		tp.line(node, "Protocol %s", node.Name.Name)
		tp.nested(func() { tp.printDecls(node.Members) })
	case *ast.ExtensionDeclaration:
		tp.line(node, "Extension %s", node.ExtendedType.TokenLiteral())
		tp.nested(func() { tp.printDecls(node.Members) })
	case *ast.FunctionDeclaration:
		name := node.Operator
		if node.Name != nil {
			name = node.Name.Name
		}
		tp.line(node, "Function %s", name)
		if node.Body != nil {
			tp.nested(func() { tp.printBlock(node.Body) })
		}
	case *ast.InitDeclaration:
		tp.line(node, "Init")
		if node.Body != nil {
			tp.nested(func() { tp.printBlock(node.Body) })
		}
	case *ast.DeinitDeclaration:
		tp.line(node, "Deinit")
		if node.Body != nil {
			tp.nested(func() { tp.printBlock(node.Body) })
		}
	case *ast.SubscriptDeclaration:
		tp.line(node, "Subscript")
	case *ast.TypeAliasDeclaration:
		tp.line(node, "TypeAlias %s", node.Name.Name)
	case *ast.OperatorDeclaration:
		tp.line(node, "Operator %s %s", node.Fixity, node.Symbol)
	case *ast.ComputedPropertyDeclaration:
		tp.line(node, "ComputedProperty %s", node.Name.Name)
	case *ast.VariableDeclaration:
		tp.line(node, "Variable")
		tp.nested(func() { tp.printBindings(node.Bindings) })
	case *ast.ConstantDeclaration:
		tp.line(node, "Constant")
		tp.nested(func() { tp.printBindings(node.Bindings) })
	case *ast.ExpressionStatement:
		tp.line(node, "ExpressionStatement %s", CodeString(node.Expression))
	case *ast.AssignmentStatement:
		op := node.CompoundOperator + "="
		tp.line(node, "Assignment %s %s %s", CodeString(node.Target), op, CodeString(node.Value))
	case *ast.IfStatement:
		tp.line(node, "If %s", CodeString(node.Condition))
		tp.nested(func() {
			tp.printBlock(node.Then)
			if node.Else != nil {
				tp.printNode(node.Else)
			}
		})
	case *ast.SwitchStatement:
		tp.line(node, "Switch %s", CodeString(node.Subject))
		tp.nested(func() {
			for _, c := range node.Cases {
				tp.line(c, "SwitchCase")
				tp.nested(func() { tp.printBlock(c.Body) })
			}
			if node.Default != nil {
				tp.line(node.Default, "Default")
				tp.nested(func() { tp.printBlock(node.Default) })
			}
		})
	case *ast.ForInStatement:
		tp.line(node, "ForIn %s", CodeString(node.Sequence))
		tp.nested(func() { tp.printBlock(node.Body) })
	case *ast.ForStatement:
		tp.line(node, "ForLoop")
		tp.nested(func() { tp.printBlock(node.Body) })
	case *ast.WhileStatement:
		tp.line(node, "While %s", CodeString(node.Condition))
		tp.nested(func() { tp.printBlock(node.Body) })
	case *ast.DoLoopStatement:
		tp.line(node, "DoLoop %s", CodeString(node.Condition))
		tp.nested(func() { tp.printBlock(node.Body) })
	case *ast.ReturnStatement:
		if node.Value != nil {
			tp.line(node, "Return %s", CodeString(node.Value))
		} else {
			tp.line(node, "Return")
		}
	case *ast.BreakStatement:
		tp.line(node, "Break")
	case *ast.ContinueStatement:
		tp.line(node, "Continue")
	case *ast.FallthroughStatement:
		tp.line(node, "Fallthrough")
	case *ast.LabeledStatement:
		tp.line(node, "Label %s", node.Label.Name)
		tp.nested(func() { tp.printNode(node.Statement) })
	case *ast.CodeBlock:
		tp.printBlock(node)
	case ast.Expression:
		tp.line(node, "%s", CodeString(node))
	default:
		tp.line(node, "%s", n.TokenLiteral())
	}
}

func (tp *TreePrinter) printDecls(decls []ast.Declaration) {
	for _, d := range decls {
		tp.printNode(d)
	}
}

func (tp *TreePrinter) printBlock(block *ast.CodeBlock) {
	for _, stmt := range block.Statements {
		tp.printNode(stmt)
	}
}

func (tp *TreePrinter) printBindings(bindings []*ast.ValueBindingDeclaration) {
	for _, b := range bindings {
		label := "Binding"
		if len(b.Expanded) > 0 {
			label = "Binding (expanded)"
		}
		if b.Initializer != nil {
			tp.line(b, "%s %s = %s", label, b.Pattern.TokenLiteral(), CodeString(b.Initializer))
		} else {
			tp.line(b, "%s %s", label, b.Pattern.TokenLiteral())
		}
		tp.nested(func() {
			for _, e := range b.Expanded {
				if e.Initializer != nil {
					tp.line(e, "Binding %s = %s", e.Pattern.TokenLiteral(), CodeString(e.Initializer))
				} else {
					tp.line(e, "Binding %s", e.Pattern.TokenLiteral())
				}
			}
		})
	}
}
