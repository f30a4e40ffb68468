package parser

import (
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/pipeline"
	"github.com/funvibe/swifty/internal/token"
)

// Processor is the pipeline stage that turns the context's token stream
// into the untyped tree the semantic core consumes.
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		ctx.Errors = append(ctx.Errors, diagnostics.New(
			diagnostics.ErrUnexpectedToken, diagnostics.PhaseParser, token.Token{},
			"token stream", "nil"))
		return ctx
	}
	p := New(ctx.TokenStream, ctx)
	ctx.AstRoot = p.ParseProgram()
	return ctx
}
