package pipeline

import (
	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/symbols"
	"github.com/funvibe/swifty/internal/typesystem"
)

// PipelineContext holds all the data passed between pipeline stages: the
// source text and its parsed tree on the way in, the symbol registry and
// per-node type map filled in as the core runs, and the diagnostics
// accumulated along the way.
type PipelineContext struct {
	SourceCode  string
	FilePath    string // Path to the source file (if any)
	FileHash    string // short content hash stamped onto every token
	TokenStream TokenStream
	AstRoot     *ast.Program
	Registry    *symbols.Registry
	Interner    *typesystem.Interner
	TypeMap     map[ast.Node]typesystem.Type // resolved types per expression node
	Errors      []*diagnostics.DiagnosticError
}

// NewPipelineContext creates and initializes a new PipelineContext.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		Registry:   symbols.NewRegistry(),
		Interner:   typesystem.NewInterner(),
		TypeMap:    make(map[ast.Node]typesystem.Type),
		Errors:     []*diagnostics.DiagnosticError{},
	}
}

// HasFatal reports whether any collected diagnostic is an internal
// invariant failure, in which case the unit's results must be discarded.
func (ctx *PipelineContext) HasFatal() bool {
	for _, e := range ctx.Errors {
		if e.Fatal {
			return true
		}
	}
	return false
}
